package chartpath

import (
	"fmt"

	"github.com/google/uuid"
)

// Tree is an immutable arena of transition targets. Nodes are addressed by
// NodeID and hold the index of their parent, so ancestor walks cost O(depth).
// A tree may have several top-level nodes; nodes under different top-level
// nodes share no ancestor.
type Tree struct {
	id     uuid.UUID
	name   string
	nodes  []node
	roots  []NodeID
	byName map[string]NodeID
}

// ID returns the unique identity assigned to the tree when it was built
func (t *Tree) ID() uuid.UUID {
	return t.id
}

// TreeName returns the name given to the tree builder
func (t *Tree) TreeName() string {
	return t.name
}

// Len returns the number of nodes
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Roots returns the top-level nodes in declaration order
func (t *Tree) Roots() []NodeID {
	return append([]NodeID(nil), t.roots...)
}

// Lookup finds a node by name
func (t *Tree) Lookup(name string) (NodeID, bool) {
	id, ok := t.byName[name]
	return id, ok
}

// Find finds a node by name, returning a NodeError when it is missing
func (t *Tree) Find(name string) (NodeID, error) {
	id, ok := t.byName[name]
	if !ok {
		return NoNode, NewNodeNotFoundError(name)
	}
	return id, nil
}

// MustLookup is like Lookup but panics when the node does not exist
func (t *Tree) MustLookup(name string) NodeID {
	id, err := t.Find(name)
	if err != nil {
		panic(err)
	}
	return id
}

// Ref returns a handle on the node
func (t *Tree) Ref(id NodeID) Ref {
	return Ref{tree: t, id: id}
}

// Observable returns the registry key for the node
func (t *Tree) Observable(id NodeID) Observable {
	return Observable{Tree: t.id, Node: id}
}

// MachineObservable returns the registry key standing for the whole machine
func (t *Tree) MachineObservable() Observable {
	return Observable{Tree: t.id, Node: NoNode}
}

// Name returns the node name
func (t *Tree) Name(id NodeID) string {
	return t.nodes[id].name
}

// Kind returns the node kind
func (t *Tree) Kind(id NodeID) Kind {
	return t.nodes[id].kind
}

// IsState reports whether the node is a state (compound, atomic or parallel)
func (t *Tree) IsState(id NodeID) bool {
	return t.nodes[id].kind.IsState()
}

// IsRegion reports whether the node is a state directly under a parallel state.
// The flag is fixed when the tree is built.
func (t *Tree) IsRegion(id NodeID) bool {
	return t.nodes[id].region
}

// IsDeepHistory reports whether a history node records deep history
func (t *Tree) IsDeepHistory(id NodeID) bool {
	n := t.nodes[id]
	return n.kind == KindHistory && n.deep
}

// Parent returns the parent node, or NoNode for a top-level node
func (t *Tree) Parent(id NodeID) NodeID {
	return t.nodes[id].parent
}

// ParentState returns the nearest ancestor that is a state, skipping
// pseudo targets, or NoNode when there is none.
func (t *Tree) ParentState(id NodeID) NodeID {
	for p := t.nodes[id].parent; p != NoNode; p = t.nodes[p].parent {
		if t.nodes[p].kind.IsState() {
			return p
		}
	}
	return NoNode
}

// Children returns the children of a node in declaration order
func (t *Tree) Children(id NodeID) []NodeID {
	return append([]NodeID(nil), t.nodes[id].children...)
}

// Depth returns the number of ancestors of the node
func (t *Tree) Depth(id NodeID) int {
	return t.nodes[id].depth
}

// IsAncestor reports whether ancestor is a proper ancestor of id
func (t *Tree) IsAncestor(ancestor, id NodeID) bool {
	if ancestor == NoNode || id == NoNode {
		return false
	}
	for p := t.nodes[id].parent; p != NoNode; p = t.nodes[p].parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

// Ancestors returns the proper ancestors of a node, nearest first
func (t *Tree) Ancestors(id NodeID) []NodeID {
	out := make([]NodeID, 0, t.nodes[id].depth)
	for p := t.nodes[id].parent; p != NoNode; p = t.nodes[p].parent {
		out = append(out, p)
	}
	return out
}

// LCA returns the deepest node on both ancestor chains, counting the nodes
// themselves, or NoNode when a and b sit under different top-level nodes.
func (t *Tree) LCA(a, b NodeID) NodeID {
	if a == NoNode || b == NoNode {
		return NoNode
	}
	// lift the deeper node, then climb in lock step
	for t.nodes[a].depth > t.nodes[b].depth {
		a = t.nodes[a].parent
	}
	for t.nodes[b].depth > t.nodes[a].depth {
		b = t.nodes[b].parent
	}
	for a != b {
		a = t.nodes[a].parent
		b = t.nodes[b].parent
	}
	return a
}

// Walk visits every node depth first in declaration order. Returning false
// from fn skips the node's subtree.
func (t *Tree) Walk(fn func(id NodeID) bool) {
	var visit func(id NodeID)
	visit = func(id NodeID) {
		if !fn(id) {
			return
		}
		for _, c := range t.nodes[id].children {
			visit(c)
		}
	}
	for _, r := range t.roots {
		visit(r)
	}
}

func (t *Tree) contains(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// String returns an indented outline of the tree
func (t *Tree) String() string {
	out := fmt.Sprintf("tree %s\n", t.name)
	t.Walk(func(id NodeID) bool {
		n := t.nodes[id]
		line := fmt.Sprintf("%*s%s (%s)", 2*(n.depth+1), "", n.name, n.kind)
		if n.region {
			line += " [region]"
		}
		out += line + "\n"
		return true
	})
	return out
}
