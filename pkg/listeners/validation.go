package listeners

import (
	"fmt"
	"sync"

	"github.com/anggasct/chartpath"
)

// Validation tracks which targets are active according to the notifications
// it receives and reports entries of already active targets, exits of
// inactive ones and transitions outside an allow list.
type Validation struct {
	active             map[string]bool
	allowedTransitions map[string]map[string]bool
	violations         []string
	mutex              sync.RWMutex
}

// NewValidation creates a validation listener. Targets that are active
// before the first notification are passed in initial.
func NewValidation(initial ...string) *Validation {
	v := &Validation{
		active:             make(map[string]bool),
		allowedTransitions: make(map[string]map[string]bool),
	}
	for _, name := range initial {
		v.active[name] = true
	}
	return v
}

// AddAllowedTransition allows a transition. Once any transition from a
// source is allowed, other targets from that source are violations.
func (v *Validation) AddAllowedTransition(from, to string) {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	if _, exists := v.allowedTransitions[from]; !exists {
		v.allowedTransitions[from] = make(map[string]bool)
	}
	v.allowedTransitions[from][to] = true
}

// OnEntry checks that the target was not already active
func (v *Validation) OnEntry(state chartpath.Ref) {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	name := state.Name()
	if v.active[name] {
		v.violations = append(v.violations, fmt.Sprintf("entered '%s' while already active", name))
	}
	v.active[name] = true
}

// OnExit checks that the target was active
func (v *Validation) OnExit(state chartpath.Ref) {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	name := state.Name()
	if !v.active[name] {
		v.violations = append(v.violations, fmt.Sprintf("exited '%s' while not active", name))
	}
	delete(v.active, name)
}

// OnTransition checks the transition against the allow list
func (v *Validation) OnTransition(from, to chartpath.Ref, transition *chartpath.Transition) {
	if !from.Valid() || !to.Valid() {
		return
	}

	v.mutex.Lock()
	defer v.mutex.Unlock()

	if allowed, exists := v.allowedTransitions[from.Name()]; exists && !allowed[to.Name()] {
		v.violations = append(v.violations, fmt.Sprintf(
			"transition from '%s' to '%s' is not allowed", from.Name(), to.Name()))
	}
}

// Active reports whether a target is active
func (v *Validation) Active(name string) bool {
	v.mutex.RLock()
	defer v.mutex.RUnlock()
	return v.active[name]
}

// Violations returns all recorded violations
func (v *Validation) Violations() []string {
	v.mutex.RLock()
	defer v.mutex.RUnlock()

	result := make([]string, len(v.violations))
	copy(result, v.violations)
	return result
}

// HasViolations returns whether any violation occurred
func (v *Validation) HasViolations() bool {
	v.mutex.RLock()
	defer v.mutex.RUnlock()
	return len(v.violations) > 0
}

// Reset clears violations and the active set
func (v *Validation) Reset() {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	v.active = make(map[string]bool)
	v.violations = nil
}
