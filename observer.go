package chartpath

import (
	"fmt"

	"github.com/google/uuid"
)

// Observable is the key listeners register against: a node of a tree, or
// the machine as a whole when Node is NoNode. Keys are stable values, so
// registrations survive as long as the tree identity does.
type Observable struct {
	Tree uuid.UUID
	Node NodeID
}

// IsMachine reports whether the key stands for the whole machine
func (o Observable) IsMachine() bool {
	return o.Node == NoNode
}

func (o Observable) String() string {
	if o.IsMachine() {
		return fmt.Sprintf("%s/*", o.Tree)
	}
	return fmt.Sprintf("%s/%d", o.Tree, o.Node)
}

// Listener receives notifications while a path is executed. Pointer
// implementations are deduplicated by the Registry; other implementations
// are tracked through the ListenerHandle returned on registration.
type Listener interface {
	// OnEntry is called when a target has been entered
	OnEntry(state Ref)

	// OnExit is called when a target has been exited
	OnExit(state Ref)

	// OnTransition is called once a transition has been taken
	OnTransition(from Ref, to Ref, transition *Transition)
}

// BaseListener provides no-op methods for embedding
type BaseListener struct{}

// OnEntry implements Listener
func (l *BaseListener) OnEntry(state Ref) {}

// OnExit implements Listener
func (l *BaseListener) OnExit(state Ref) {}

// OnTransition implements Listener
func (l *BaseListener) OnTransition(from Ref, to Ref, transition *Transition) {}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	Entry      func(state Ref)
	Exit       func(state Ref)
	Transition func(from Ref, to Ref, transition *Transition)
}

// OnEntry implements Listener
func (f *ListenerFuncs) OnEntry(state Ref) {
	if f.Entry != nil {
		f.Entry(state)
	}
}

// OnExit implements Listener
func (f *ListenerFuncs) OnExit(state Ref) {
	if f.Exit != nil {
		f.Exit(state)
	}
}

// OnTransition implements Listener
func (f *ListenerFuncs) OnTransition(from Ref, to Ref, transition *Transition) {
	if f.Transition != nil {
		f.Transition(from, to, transition)
	}
}
