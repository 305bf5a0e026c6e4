package chartpath

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// TreeBuilder is the entry point for declaring a tree of transition targets
type TreeBuilder interface {
	// Top-level states
	State(name string) NodeBuilder
	Parallel(name string) NodeBuilder

	// Top-level pseudo targets
	Final(name string) NodeBuilder
	Initial(name string) NodeBuilder

	Build() (*Tree, error)
}

// NodeBuilder declares the children of a node. Every child method returns
// the child's builder; End returns the builder of the enclosing node.
type NodeBuilder interface {
	// Child states
	State(name string) NodeBuilder
	Parallel(name string) NodeBuilder

	// Child pseudo targets
	Final(name string) NodeBuilder
	History(name string) NodeBuilder
	DeepHistory(name string) NodeBuilder
	Initial(name string) NodeBuilder

	// Navigation back to the parent. End on a top-level node returns a
	// builder whose child methods declare further top-level nodes.
	End() NodeBuilder
	// Tree returns the builder that owns this node
	Tree() TreeBuilder
	Build() (*Tree, error)
}

type treeBuilderImpl struct {
	name  string
	nodes []node
	roots []NodeID
	errs  []error
}

// nodeBuilderImpl with id NoNode declares top-level nodes
type nodeBuilderImpl struct {
	tb *treeBuilderImpl
	id NodeID
}

// NewTree creates a builder for a tree with the given name
func NewTree(name string) TreeBuilder {
	return &treeBuilderImpl{name: name}
}

func (tb *treeBuilderImpl) add(parent NodeID, name string, kind Kind, deep bool) *nodeBuilderImpl {
	id := NodeID(len(tb.nodes))
	n := node{
		name:   name,
		kind:   kind,
		parent: parent,
		deep:   deep,
	}

	if parent == NoNode {
		if kind == KindHistory {
			tb.errs = append(tb.errs, NewNodeError(ErrCodeInvalidChild, name, "history must have a parent"))
		}
		tb.roots = append(tb.roots, id)
	} else {
		p := &tb.nodes[parent]
		if p.kind.IsPseudo() {
			tb.errs = append(tb.errs, NewNodeError(ErrCodeInvalidChild, name,
				fmt.Sprintf("%s '%s' cannot have children", p.kind, p.name)))
		}
		n.depth = p.depth + 1
		n.region = p.kind == KindParallel && kind.IsState()
		p.children = append(p.children, id)
	}

	tb.nodes = append(tb.nodes, n)
	return &nodeBuilderImpl{tb: tb, id: id}
}

func (tb *treeBuilderImpl) State(name string) NodeBuilder {
	return tb.add(NoNode, name, KindState, false)
}

func (tb *treeBuilderImpl) Parallel(name string) NodeBuilder {
	return tb.add(NoNode, name, KindParallel, false)
}

func (tb *treeBuilderImpl) Final(name string) NodeBuilder {
	return tb.add(NoNode, name, KindFinal, false)
}

func (tb *treeBuilderImpl) Initial(name string) NodeBuilder {
	return tb.add(NoNode, name, KindInitial, false)
}

// Build validates the declared nodes and freezes them into a Tree
func (tb *treeBuilderImpl) Build() (*Tree, error) {
	errs := append([]error(nil), tb.errs...)
	byName := make(map[string]NodeID, len(tb.nodes))

	for i, n := range tb.nodes {
		if n.name == "" {
			errs = append(errs, NewNodeError(ErrCodeEmptyName, fmt.Sprintf("#%d", i), "node name is empty"))
			continue
		}
		if _, exists := byName[n.name]; exists {
			errs = append(errs, NewDuplicateNodeError(n.name))
			continue
		}
		byName[n.name] = NodeID(i)
	}

	if len(tb.nodes) == 0 {
		errs = append(errs, NewConfigurationError("Tree", "no nodes declared"))
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("building tree '%s': %w", tb.name, errors.Join(errs...))
	}

	nodes := make([]node, len(tb.nodes))
	for i, n := range tb.nodes {
		n.children = append([]NodeID(nil), n.children...)
		nodes[i] = n
	}

	return &Tree{
		id:     uuid.New(),
		name:   tb.name,
		nodes:  nodes,
		roots:  append([]NodeID(nil), tb.roots...),
		byName: byName,
	}, nil
}

func (nb *nodeBuilderImpl) State(name string) NodeBuilder {
	return nb.tb.add(nb.id, name, KindState, false)
}

func (nb *nodeBuilderImpl) Parallel(name string) NodeBuilder {
	return nb.tb.add(nb.id, name, KindParallel, false)
}

func (nb *nodeBuilderImpl) Final(name string) NodeBuilder {
	return nb.tb.add(nb.id, name, KindFinal, false)
}

func (nb *nodeBuilderImpl) History(name string) NodeBuilder {
	return nb.tb.add(nb.id, name, KindHistory, false)
}

func (nb *nodeBuilderImpl) DeepHistory(name string) NodeBuilder {
	return nb.tb.add(nb.id, name, KindHistory, true)
}

func (nb *nodeBuilderImpl) Initial(name string) NodeBuilder {
	return nb.tb.add(nb.id, name, KindInitial, false)
}

func (nb *nodeBuilderImpl) End() NodeBuilder {
	if nb.id == NoNode {
		return nb
	}
	return &nodeBuilderImpl{tb: nb.tb, id: nb.tb.nodes[nb.id].parent}
}

func (nb *nodeBuilderImpl) Tree() TreeBuilder {
	return nb.tb
}

func (nb *nodeBuilderImpl) Build() (*Tree, error) {
	return nb.tb.Build()
}
