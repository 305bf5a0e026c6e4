package chartpath

import "fmt"

// NodeID addresses a node inside the arena of a Tree
type NodeID int32

// NoNode marks an absent node: a stay transition target, a global scope,
// or the parent of a top-level node.
const NoNode NodeID = -1

// Kind enumerates the variants of a transition target
type Kind int

const (
	// KindState is an atomic or compound state
	KindState Kind = iota
	// KindParallel is an orthogonal composite state whose state children are regions
	KindParallel
	// KindFinal is a final pseudo target
	KindFinal
	// KindHistory is a history pseudo target
	KindHistory
	// KindInitial is an initial pseudo target
	KindInitial
)

// String returns the lower-case name of the kind
func (k Kind) String() string {
	switch k {
	case KindState:
		return "state"
	case KindParallel:
		return "parallel"
	case KindFinal:
		return "final"
	case KindHistory:
		return "history"
	case KindInitial:
		return "initial"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// IsState reports whether targets of this kind are states. Pseudo targets
// are never a transition scope.
func (k Kind) IsState() bool {
	return k == KindState || k == KindParallel
}

// IsPseudo reports whether the kind is a pseudo target
func (k Kind) IsPseudo() bool {
	return !k.IsState()
}

// ParseKind converts a kind name back into a Kind
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "state", "compound", "atomic":
		return KindState, nil
	case "parallel":
		return KindParallel, nil
	case "final":
		return KindFinal, nil
	case "history", "deepHistory", "shallowHistory":
		return KindHistory, nil
	case "initial":
		return KindInitial, nil
	default:
		return KindState, fmt.Errorf("unknown node kind %q", s)
	}
}

type node struct {
	name     string
	kind     Kind
	parent   NodeID
	children []NodeID
	depth    int
	region   bool
	deep     bool
}

// Ref is a handle on a node of a specific tree. It is what listeners
// receive; the zero Ref is invalid.
type Ref struct {
	tree *Tree
	id   NodeID
}

// Tree returns the tree the node belongs to
func (r Ref) Tree() *Tree {
	return r.tree
}

// ID returns the node identifier
func (r Ref) ID() NodeID {
	return r.id
}

// Valid reports whether the handle points at a node
func (r Ref) Valid() bool {
	return r.tree != nil && r.tree.contains(r.id)
}

// Name returns the node name, or an empty string for an invalid Ref
func (r Ref) Name() string {
	if !r.Valid() {
		return ""
	}
	return r.tree.Name(r.id)
}

// Kind returns the node kind
func (r Ref) Kind() Kind {
	if !r.Valid() {
		return KindState
	}
	return r.tree.Kind(r.id)
}

// IsRegion reports whether the node is a region of a parallel state
func (r Ref) IsRegion() bool {
	return r.Valid() && r.tree.IsRegion(r.id)
}

// Observable returns the registry key of the node
func (r Ref) Observable() Observable {
	if r.tree == nil {
		return Observable{Node: r.id}
	}
	return r.tree.Observable(r.id)
}

func (r Ref) String() string {
	if !r.Valid() {
		return "<none>"
	}
	return r.Name()
}
