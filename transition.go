package chartpath

// Transition represents a transition between targets of one tree. A
// transition without targets is a stay transition.
type Transition struct {
	Event   string
	Source  NodeID
	Targets []NodeID
}

// NewTransition creates a new transition
func NewTransition(source NodeID, targets ...NodeID) *Transition {
	return &Transition{
		Source:  source,
		Targets: append([]NodeID(nil), targets...),
	}
}

// WithEvent sets the name of the event that triggers the transition
func (t *Transition) WithEvent(event string) *Transition {
	t.Event = event
	return t
}

// Target returns the first target, or NoNode for a stay transition
func (t *Transition) Target() NodeID {
	if len(t.Targets) == 0 {
		return NoNode
	}
	return t.Targets[0]
}

// Paths computes one Path per target. All paths share one scope, the
// scope of the whole transition, so their upward segments are identical
// and every downward segment starts below that scope. A transition
// without targets yields a single stay path.
func (tr *Tree) Paths(t *Transition) []*Path {
	if len(t.Targets) == 0 {
		return []*Path{tr.ComputePath(t.Source, NoNode)}
	}
	scope := tr.transitionScope(t.Source, t.Targets...)
	paths := make([]*Path, 0, len(t.Targets))
	for _, target := range t.Targets {
		paths = append(paths, tr.pathWithin(t.Source, target, scope))
	}
	return paths
}

// Path computes the path of the first target of the transition
func (tr *Tree) Path(t *Transition) *Path {
	return tr.ComputePath(t.Source, t.Target())
}
