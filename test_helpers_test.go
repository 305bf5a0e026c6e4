package chartpath

import (
	"sync"
	"testing"
)

// createHierarchicalTree builds:
//
//	Root
//	└── A
//	    ├── A1
//	    └── A2
//	        ├── A2a
//	        └── A2b
func createHierarchicalTree(t *testing.T) *Tree {
	t.Helper()
	tree, err := NewTree("hierarchical").
		State("Root").
		State("A").
		State("A1").End().
		State("A2").
		State("A2a").End().
		State("A2b").
		Build()
	if err != nil {
		t.Fatalf("Failed to build tree: %v", err)
	}
	return tree
}

// createParallelTree builds:
//
//	Root
//	└── A (parallel)
//	    ├── R1 (region)
//	    │   └── S1
//	    └── R2 (region)
//	        └── S2
func createParallelTree(t *testing.T) *Tree {
	t.Helper()
	tree, err := NewTree("parallel").
		State("Root").
		Parallel("A").
		State("R1").State("S1").End().End().
		State("R2").State("S2").
		Build()
	if err != nil {
		t.Fatalf("Failed to build tree: %v", err)
	}
	return tree
}

// createMixedTree builds a forest with nested parallel states, history and
// final pseudo targets, and a second top-level state:
//
//	Main
//	├── Init (initial)
//	├── Idle
//	├── Busy (parallel)
//	│   ├── Left (region)
//	│   │   ├── L1
//	│   │   └── L2 (parallel)
//	│   │       ├── X (region)
//	│   │       │   └── X1
//	│   │       └── Y (region)
//	│   ├── Right (region)
//	│   │   ├── H (deep history)
//	│   │   └── R1
//	│   └── BusyHistory (history)
//	└── Done (final)
//	Other
//	└── O1
func createMixedTree(t *testing.T) *Tree {
	t.Helper()
	tb := NewTree("mixed")
	main := tb.State("Main")
	main.Initial("Init")
	main.State("Idle")
	busy := main.Parallel("Busy")
	left := busy.State("Left")
	left.State("L1")
	l2 := left.Parallel("L2")
	l2.State("X").State("X1")
	l2.State("Y")
	right := busy.State("Right")
	right.DeepHistory("H")
	right.State("R1")
	busy.History("BusyHistory")
	main.Final("Done")
	tb.State("Other").State("O1")

	tree, err := tb.Build()
	if err != nil {
		t.Fatalf("Failed to build tree: %v", err)
	}
	return tree
}

func names(tree *Tree, ids []NodeID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = tree.Name(id)
	}
	return out
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// recordingListener captures every notification as a short string
type recordingListener struct {
	mutex  sync.Mutex
	tag    string
	events []string
}

func newRecordingListener(tag string) *recordingListener {
	return &recordingListener{tag: tag}
}

func (l *recordingListener) record(s string) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if l.tag != "" {
		s = l.tag + ":" + s
	}
	l.events = append(l.events, s)
}

func (l *recordingListener) OnEntry(state Ref) {
	l.record("enter " + state.Name())
}

func (l *recordingListener) OnExit(state Ref) {
	l.record("exit " + state.Name())
}

func (l *recordingListener) OnTransition(from Ref, to Ref, transition *Transition) {
	l.record("transition " + from.String() + "->" + to.String())
}

func (l *recordingListener) Events() []string {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return append([]string(nil), l.events...)
}

func (l *recordingListener) Reset() {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.events = nil
}
