package chartpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_Lookup(t *testing.T) {
	tree := createHierarchicalTree(t)

	id, ok := tree.Lookup("A2a")
	require.True(t, ok)
	assert.Equal(t, "A2a", tree.Name(id))

	_, ok = tree.Lookup("missing")
	assert.False(t, ok)

	_, err := tree.Find("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNodeNotFound)
	assert.Equal(t, ErrCodeNodeNotFound, GetErrorCode(err))

	assert.Panics(t, func() { tree.MustLookup("missing") })
}

func TestTree_Structure(t *testing.T) {
	tree := createHierarchicalTree(t)

	root := tree.MustLookup("Root")
	a := tree.MustLookup("A")
	a2 := tree.MustLookup("A2")
	a2a := tree.MustLookup("A2a")

	assert.Equal(t, 6, tree.Len())
	assert.Equal(t, []NodeID{root}, tree.Roots())
	assert.Equal(t, NoNode, tree.Parent(root))
	assert.Equal(t, a2, tree.Parent(a2a))
	assert.Equal(t, []string{"A1", "A2"}, names(tree, tree.Children(a)))
	assert.Equal(t, 3, tree.Depth(a2a))
	assert.Equal(t, []string{"A2", "A", "Root"}, names(tree, tree.Ancestors(a2a)))

	assert.True(t, tree.IsAncestor(root, a2a))
	assert.True(t, tree.IsAncestor(a, a2a))
	assert.False(t, tree.IsAncestor(a2a, a2a))
	assert.False(t, tree.IsAncestor(a2a, a))
	assert.False(t, tree.IsAncestor(NoNode, a))
}

func TestTree_ChildrenAreCopies(t *testing.T) {
	tree := createHierarchicalTree(t)
	a := tree.MustLookup("A")

	children := tree.Children(a)
	children[0] = NoNode

	assert.Equal(t, []string{"A1", "A2"}, names(tree, tree.Children(a)))
}

func TestTree_RegionFlag(t *testing.T) {
	tree := createMixedTree(t)

	regions := map[string]bool{"Left": true, "Right": true, "X": true, "Y": true}
	tree.Walk(func(id NodeID) bool {
		name := tree.Name(id)
		if tree.IsRegion(id) != regions[name] {
			t.Errorf("Expected IsRegion(%s) = %v", name, regions[name])
		}
		return true
	})

	// pseudo children of a parallel state are not regions
	assert.False(t, tree.IsRegion(tree.MustLookup("BusyHistory")))
}

func TestTree_ParentStateSkipsPseudoTargets(t *testing.T) {
	tb := NewTree("pseudo")
	tb.State("Root").History("H")
	tree, err := tb.Build()
	require.NoError(t, err)

	h := tree.MustLookup("H")
	assert.Equal(t, tree.MustLookup("Root"), tree.ParentState(h))
	assert.Equal(t, NoNode, tree.ParentState(tree.MustLookup("Root")))

	mixed := createMixedTree(t)
	assert.Equal(t, mixed.MustLookup("Right"), mixed.ParentState(mixed.MustLookup("H")))
	assert.True(t, mixed.IsDeepHistory(mixed.MustLookup("H")))
	assert.False(t, mixed.IsDeepHistory(mixed.MustLookup("BusyHistory")))
}

func TestTree_LCA(t *testing.T) {
	tree := createMixedTree(t)

	tests := []struct {
		a, b string
		want string
	}{
		{"L1", "X1", "Left"},
		{"X1", "Y", "L2"},
		{"X1", "R1", "Busy"},
		{"Idle", "X1", "Main"},
		{"X1", "L2", "L2"},
		{"L2", "X1", "L2"},
		{"X1", "X1", "X1"},
		{"H", "R1", "Right"},
		{"H", "H", "H"},
		{"Done", "Init", "Main"},
		{"X1", "O1", ""},
		{"Main", "Other", ""},
	}

	for _, tt := range tests {
		got := tree.LCA(tree.MustLookup(tt.a), tree.MustLookup(tt.b))
		if tt.want == "" {
			if got != NoNode {
				t.Errorf("LCA(%s, %s) = %s, expected none", tt.a, tt.b, tree.Name(got))
			}
			continue
		}
		if got == NoNode || tree.Name(got) != tt.want {
			t.Errorf("LCA(%s, %s) = %v, expected %s", tt.a, tt.b, got, tt.want)
		}
	}

	assert.Equal(t, NoNode, tree.LCA(NoNode, tree.MustLookup("X1")))
}

func TestTree_WalkSkipsSubtree(t *testing.T) {
	tree := createHierarchicalTree(t)

	var visited []string
	tree.Walk(func(id NodeID) bool {
		visited = append(visited, tree.Name(id))
		return tree.Name(id) != "A2"
	})

	assert.Equal(t, []string{"Root", "A", "A1", "A2"}, visited)
}

func TestTree_Refs(t *testing.T) {
	tree := createParallelTree(t)
	r1 := tree.Ref(tree.MustLookup("R1"))

	assert.True(t, r1.Valid())
	assert.Equal(t, "R1", r1.Name())
	assert.Equal(t, KindState, r1.Kind())
	assert.True(t, r1.IsRegion())
	assert.Same(t, tree, r1.Tree())
	assert.Equal(t, tree.Observable(r1.ID()), r1.Observable())

	var zero Ref
	assert.False(t, zero.Valid())
	assert.Equal(t, "", zero.Name())
	assert.Equal(t, "<none>", zero.String())
	assert.False(t, tree.Ref(NoNode).Valid())
}

func TestTree_IdentityAndObservables(t *testing.T) {
	t1 := createHierarchicalTree(t)
	t2 := createHierarchicalTree(t)

	assert.NotEqual(t, t1.ID(), t2.ID())
	assert.NotEqual(t, t1.Observable(0), t2.Observable(0))
	assert.True(t, t1.MachineObservable().IsMachine())
	assert.False(t, t1.Observable(0).IsMachine())
}

func TestTree_String(t *testing.T) {
	tree := createParallelTree(t)
	out := tree.String()

	assert.Contains(t, out, "tree parallel")
	assert.Contains(t, out, "A (parallel)")
	assert.Contains(t, out, "R1 (state) [region]")
}

func TestKind(t *testing.T) {
	assert.True(t, KindState.IsState())
	assert.True(t, KindParallel.IsState())
	assert.True(t, KindFinal.IsPseudo())
	assert.True(t, KindHistory.IsPseudo())
	assert.True(t, KindInitial.IsPseudo())
	assert.Equal(t, "parallel", KindParallel.String())
	assert.Equal(t, "kind(42)", Kind(42).String())

	k, err := ParseKind("deepHistory")
	require.NoError(t, err)
	assert.Equal(t, KindHistory, k)

	_, err = ParseKind("choice")
	assert.Error(t, err)
}
