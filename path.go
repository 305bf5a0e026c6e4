package chartpath

import (
	"slices"
	"strings"
)

// Path is the result of resolving a transition: the targets to exit, the
// targets to enter, and the scope that bounds both. A Path never changes
// after it is computed.
type Path struct {
	tree        *Tree
	source      NodeID
	target      NodeID
	scope       NodeID
	up          []NodeID
	down        []NodeID
	crossRegion bool
}

// ComputePath resolves the exit and entry segments of a transition from
// source to target. A target of NoNode is a stay transition: the scope is
// the source and nothing is exited or entered.
//
// The scope is the least common ancestor of source and target, lifted to the
// nearest state when the ancestor is a pseudo target, and lifted once more
// when it coincides with source or target so that those boundary nodes are
// themselves exited and entered. A NoNode scope is a global transition and
// both segments run up to their top-level nodes.
func (t *Tree) ComputePath(source, target NodeID) *Path {
	if target == NoNode {
		return &Path{tree: t, source: source, target: NoNode, scope: source}
	}
	return t.pathWithin(source, target, t.transitionScope(source, target))
}

// transitionScope returns the scope shared by a transition from source to
// every target: their least common ancestor, lifted to a state and lifted
// once more when it is the source or one of the targets.
func (t *Tree) transitionScope(source NodeID, targets ...NodeID) NodeID {
	lca := source
	for _, target := range targets {
		lca = t.LCA(lca, target)
	}
	if lca == NoNode {
		return NoNode
	}

	scope := lca
	if !t.IsState(scope) {
		scope = t.ParentState(scope)
	}
	if scope != NoNode && (scope == source || slices.Contains(targets, scope)) {
		scope = t.ParentState(scope)
	}
	return scope
}

// pathWithin walks from source and target up to scope, which must be a
// proper ancestor of both or NoNode.
func (t *Tree) pathWithin(source, target, scope NodeID) *Path {
	p := &Path{
		tree:   t,
		source: source,
		target: target,
		scope:  scope,
	}

	for n := source; n != scope; n = t.nodes[n].parent {
		p.up = append(p.up, n)
		if t.nodes[n].region {
			p.crossRegion = true
		}
	}

	for n := target; n != scope; n = t.nodes[n].parent {
		p.down = append(p.down, n)
		if t.nodes[n].region {
			p.crossRegion = true
		}
	}
	slices.Reverse(p.down)

	return p
}

// Tree returns the tree the path was computed over
func (p *Path) Tree() *Tree {
	return p.tree
}

// Source returns the transition source
func (p *Path) Source() NodeID {
	return p.source
}

// Target returns the transition target, NoNode for a stay transition
func (p *Path) Target() NodeID {
	return p.target
}

// Scope returns the lowest state that is neither exited nor entered.
// NoNode means a global, document level transition.
func (p *Path) Scope() NodeID {
	return p.scope
}

// IsStay reports whether the path belongs to a transition without target
func (p *Path) IsStay() bool {
	return p.target == NoNode
}

// IsGlobal reports whether the path has no scope state
func (p *Path) IsGlobal() bool {
	return p.scope == NoNode
}

// UpwardSegment returns the targets to exit, from the source up to the
// child of the scope. This is exit order.
func (p *Path) UpwardSegment() []NodeID {
	return slices.Clone(p.up)
}

// DownwardSegment returns the targets to enter, from the child of the scope
// down to the target. This is entry order.
func (p *Path) DownwardSegment() []NodeID {
	return slices.Clone(p.down)
}

// CrossesRegion reports whether any exited or entered node is a region
func (p *Path) CrossesRegion() bool {
	return p.crossRegion
}

// RegionsExited returns the regions in the upward segment, bottom-up.
// Sibling regions have no defined relative order.
func (p *Path) RegionsExited() []NodeID {
	return p.regions(p.up)
}

// RegionsEntered returns the regions in the downward segment, top-down.
// Sibling regions have no defined relative order.
func (p *Path) RegionsEntered() []NodeID {
	return p.regions(p.down)
}

func (p *Path) regions(seg []NodeID) []NodeID {
	var out []NodeID
	for _, id := range seg {
		if p.tree.nodes[id].region {
			out = append(out, id)
		}
	}
	return out
}

func (p *Path) names(seg []NodeID) []string {
	out := make([]string, len(seg))
	for i, id := range seg {
		out[i] = p.tree.Name(id)
	}
	return out
}

func (p *Path) nameOf(id NodeID) string {
	if id == NoNode {
		return ""
	}
	return p.tree.Name(id)
}

// String renders the path as "exit [a b] scope S enter [c d]"
func (p *Path) String() string {
	var sb strings.Builder
	sb.WriteString("exit [")
	sb.WriteString(strings.Join(p.names(p.up), " "))
	sb.WriteString("] scope ")
	if p.scope == NoNode {
		sb.WriteString("<global>")
	} else {
		sb.WriteString(p.tree.Name(p.scope))
	}
	sb.WriteString(" enter [")
	sb.WriteString(strings.Join(p.names(p.down), " "))
	sb.WriteString("]")
	if p.crossRegion {
		sb.WriteString(" crosses-region")
	}
	return sb.String()
}

// PathReport is a name-based snapshot of a Path for printing and encoding
type PathReport struct {
	Tree           string   `json:"tree" yaml:"tree"`
	Source         string   `json:"source" yaml:"source"`
	Target         string   `json:"target,omitempty" yaml:"target,omitempty"`
	Scope          string   `json:"scope,omitempty" yaml:"scope,omitempty"`
	Global         bool     `json:"global" yaml:"global"`
	Exit           []string `json:"exit" yaml:"exit"`
	Enter          []string `json:"enter" yaml:"enter"`
	CrossesRegion  bool     `json:"crossesRegion" yaml:"crossesRegion"`
	RegionsExited  []string `json:"regionsExited,omitempty" yaml:"regionsExited,omitempty"`
	RegionsEntered []string `json:"regionsEntered,omitempty" yaml:"regionsEntered,omitempty"`
}

// Report returns the name-based snapshot of the path
func (p *Path) Report() PathReport {
	return PathReport{
		Tree:           p.tree.name,
		Source:         p.nameOf(p.source),
		Target:         p.nameOf(p.target),
		Scope:          p.nameOf(p.scope),
		Global:         p.scope == NoNode,
		Exit:           p.names(p.up),
		Enter:          p.names(p.down),
		CrossesRegion:  p.crossRegion,
		RegionsExited:  p.names(p.RegionsExited()),
		RegionsEntered: p.names(p.RegionsEntered()),
	}
}
