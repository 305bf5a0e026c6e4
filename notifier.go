package chartpath

import (
	"log/slog"

	"github.com/anggasct/chartpath/internal/logging"
)

// Notifier walks computed paths and fires the matching notifications on a
// Registry. Every exit and entry is announced first on the node's own
// observable and then on the machine observable of the tree.
type Notifier struct {
	tree     *Tree
	registry *Registry
	logger   *slog.Logger
	hook     func(paths []*Path)
}

// NotifierOption configures a Notifier
type NotifierOption func(*Notifier)

// WithNotifierLogger sets the logger used to trace executed paths
func WithNotifierLogger(logger *slog.Logger) NotifierOption {
	return func(n *Notifier) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// WithConfigurationHook sets a function called between the exit and entry
// phases of Execute, where the engine updates its active configuration.
func WithConfigurationHook(hook func(paths []*Path)) NotifierOption {
	return func(n *Notifier) {
		n.hook = hook
	}
}

// NewNotifier creates a notifier for the tree that fires on registry
func NewNotifier(tree *Tree, registry *Registry, opts ...NotifierOption) *Notifier {
	n := &Notifier{
		tree:     tree,
		registry: registry,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Registry returns the registry notifications are fired on
func (n *Notifier) Registry() *Registry {
	return n.registry
}

// Exit fires exit notifications for the upward segment, leaf first
func (n *Notifier) Exit(p *Path) {
	for _, id := range p.up {
		n.exit(id)
	}
}

// Enter fires entry notifications for the downward segment, outermost first
func (n *Notifier) Enter(p *Path) {
	for _, id := range p.down {
		n.enter(id)
	}
}

// Execute runs one microstep for the transition: it exits every upward
// segment, calls the configuration hook, enters every downward segment and
// finally announces the transition. The paths of all targets share one
// scope, so every entered node's parent is either the scope or entered
// before it. A node shared by the segments of several targets is exited
// and entered once. The computed paths are returned.
func (n *Notifier) Execute(t *Transition) []*Path {
	paths := n.tree.Paths(t)

	for _, p := range paths {
		if p.crossRegion {
			n.logger.Debug("path crosses region",
				"tree", n.tree.name,
				"source", p.nameOf(p.source),
				"target", p.nameOf(p.target),
				"regionsExited", p.names(p.RegionsExited()),
				"regionsEntered", p.names(p.RegionsEntered()))
		}
	}

	exited := make(map[NodeID]bool)
	for _, p := range paths {
		for _, id := range p.up {
			if exited[id] {
				continue
			}
			exited[id] = true
			n.exit(id)
		}
	}

	if n.hook != nil {
		n.hook(paths)
	}

	entered := make(map[NodeID]bool)
	for _, p := range paths {
		for _, id := range p.down {
			if entered[id] {
				continue
			}
			entered[id] = true
			n.enter(id)
		}
	}

	from := n.tree.Ref(t.Source)
	to := Ref{}
	if target := t.Target(); target != NoNode {
		to = n.tree.Ref(target)
	}
	n.registry.FireOnTransition(n.tree.Observable(t.Source), from, to, t)
	n.registry.FireOnTransition(n.tree.MachineObservable(), from, to, t)

	n.logger.Debug("transition executed",
		"tree", n.tree.name,
		"event", t.Event,
		"source", from.Name(),
		"target", to.Name(),
		"paths", len(paths))

	return paths
}

func (n *Notifier) exit(id NodeID) {
	ref := n.tree.Ref(id)
	n.registry.FireOnExit(n.tree.Observable(id), ref)
	n.registry.FireOnExit(n.tree.MachineObservable(), ref)
}

func (n *Notifier) enter(id NodeID) {
	ref := n.tree.Ref(id)
	n.registry.FireOnEntry(n.tree.Observable(id), ref)
	n.registry.FireOnEntry(n.tree.MachineObservable(), ref)
}
