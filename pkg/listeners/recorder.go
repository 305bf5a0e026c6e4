package listeners

import (
	"sync"

	"github.com/anggasct/chartpath"
)

// Notification is one recorded call
type Notification struct {
	// Kind is "entry", "exit" or "transition"
	Kind  string
	State string
	From  string
	To    string
	Event string
}

// Recorder keeps every notification in arrival order
type Recorder struct {
	mutex   sync.RWMutex
	records []Notification
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// OnEntry implements chartpath.Listener
func (r *Recorder) OnEntry(state chartpath.Ref) {
	r.add(Notification{Kind: "entry", State: state.Name()})
}

// OnExit implements chartpath.Listener
func (r *Recorder) OnExit(state chartpath.Ref) {
	r.add(Notification{Kind: "exit", State: state.Name()})
}

// OnTransition implements chartpath.Listener
func (r *Recorder) OnTransition(from, to chartpath.Ref, transition *chartpath.Transition) {
	n := Notification{Kind: "transition", From: from.Name(), To: to.Name()}
	if transition != nil {
		n.Event = transition.Event
	}
	r.add(n)
}

func (r *Recorder) add(n Notification) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.records = append(r.records, n)
}

// Records returns a copy of all notifications
func (r *Recorder) Records() []Notification {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return append([]Notification(nil), r.records...)
}

// Entered returns the names of entered targets in order
func (r *Recorder) Entered() []string {
	return r.states("entry")
}

// Exited returns the names of exited targets in order
func (r *Recorder) Exited() []string {
	return r.states("exit")
}

// Transitions returns the transition notifications
func (r *Recorder) Transitions() []Notification {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var out []Notification
	for _, n := range r.records {
		if n.Kind == "transition" {
			out = append(out, n)
		}
	}
	return out
}

func (r *Recorder) states(kind string) []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var out []string
	for _, n := range r.records {
		if n.Kind == kind {
			out = append(out, n.State)
		}
	}
	return out
}

// Reset drops all records
func (r *Recorder) Reset() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.records = nil
}
