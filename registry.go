package chartpath

import (
	"log/slog"
	"reflect"
	"slices"

	"github.com/anggasct/chartpath/internal/logging"
)

// Registry maps observables to the listeners registered against them.
// An observable only has an entry while at least one listener is
// registered for it.
//
// Every registration is identified by a ListenerHandle. Comparable
// listeners, pointers being the usual case, are also deduplicated and can
// be removed by value. Listeners that cannot be compared, such as structs
// holding slices or funcs, are registered anew on every call and can only
// be removed through their handle.
//
// A Registry is not safe for concurrent use; registration and firing are
// expected to be sequenced by the engine that owns it. Listeners must not
// add or remove listeners on the observable that is currently firing.
type Registry struct {
	regs   map[Observable]*listenerSet
	next   uint64
	logger *slog.Logger
}

// ListenerHandle identifies one registration of a listener
type ListenerHandle struct {
	source Observable
	id     uint64
}

// Valid reports whether the handle refers to a registration that was made.
// Registering a nil listener returns an invalid handle.
func (h ListenerHandle) Valid() bool {
	return h.id != 0
}

// Observable returns the key the listener was registered against
func (h ListenerHandle) Observable() Observable {
	return h.source
}

type registration struct {
	id         uint64
	listener   Listener
	comparable bool
}

type listenerSet struct {
	order []registration
	ids   map[Listener]uint64
}

// RegistryOption configures a Registry
type RegistryOption func(*Registry)

// WithLogger sets the logger used for registration and listener failures
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry creates an empty registry
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		regs:   make(map[Observable]*listenerSet),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AddListener registers a listener for an observable and returns the
// handle of the registration. Adding a comparable listener that is already
// registered has no effect and returns its existing handle.
func (r *Registry) AddListener(source Observable, listener Listener) ListenerHandle {
	if listener == nil {
		return ListenerHandle{}
	}

	set, ok := r.regs[source]
	if !ok {
		set = &listenerSet{ids: make(map[Listener]uint64)}
		r.regs[source] = set
	}

	canCompare := isComparable(listener)
	if canCompare {
		if id, exists := set.ids[listener]; exists {
			return ListenerHandle{source: source, id: id}
		}
	}

	r.next++
	reg := registration{id: r.next, listener: listener, comparable: canCompare}
	set.order = append(set.order, reg)
	if canCompare {
		set.ids[listener] = reg.id
	}
	r.logger.Debug("listener added", "observable", source.String(), "listeners", len(set.order))
	return ListenerHandle{source: source, id: reg.id}
}

// RemoveListener deregisters a comparable listener. The observable's entry
// is dropped as soon as its last listener is removed. Listeners that cannot
// be compared are left in place; remove them with Remove.
func (r *Registry) RemoveListener(source Observable, listener Listener) {
	if listener == nil {
		return
	}
	if !isComparable(listener) {
		r.logger.Debug("listener is not comparable, remove it by handle", "observable", source.String())
		return
	}

	set, ok := r.regs[source]
	if !ok {
		return
	}
	if id, exists := set.ids[listener]; exists {
		r.remove(source, set, id)
	}
}

// Remove deregisters the registration identified by the handle. Removing
// an invalid or already removed handle has no effect.
func (r *Registry) Remove(h ListenerHandle) {
	if !h.Valid() {
		return
	}
	if set, ok := r.regs[h.source]; ok {
		r.remove(h.source, set, h.id)
	}
}

func (r *Registry) remove(source Observable, set *listenerSet, id uint64) {
	i := slices.IndexFunc(set.order, func(reg registration) bool { return reg.id == id })
	if i < 0 {
		return
	}

	reg := set.order[i]
	set.order = slices.Delete(set.order, i, i+1)
	if reg.comparable {
		delete(set.ids, reg.listener)
	}

	if len(set.order) == 0 {
		delete(r.regs, source)
	}
	r.logger.Debug("listener removed", "observable", source.String(), "listeners", len(set.order))
}

// isComparable reports whether the listener can be used as a map key
// without panicking.
func isComparable(listener Listener) bool {
	return reflect.ValueOf(listener).Comparable()
}

// Len returns the number of observables that have listeners
func (r *Registry) Len() int {
	return len(r.regs)
}

// Has reports whether the observable has an entry
func (r *Registry) Has(source Observable) bool {
	_, ok := r.regs[source]
	return ok
}

// Listeners returns the number of listeners registered for the observable
func (r *Registry) Listeners(source Observable) int {
	if set, ok := r.regs[source]; ok {
		return len(set.order)
	}
	return 0
}

// FireOnEntry informs the observable's listeners that a target was entered
func (r *Registry) FireOnEntry(source Observable, state Ref) {
	for _, l := range r.snapshot(source) {
		r.safeCall(source, "OnEntry", func() { l.OnEntry(state) })
	}
}

// FireOnExit informs the observable's listeners that a target was exited
func (r *Registry) FireOnExit(source Observable, state Ref) {
	for _, l := range r.snapshot(source) {
		r.safeCall(source, "OnExit", func() { l.OnExit(state) })
	}
}

// FireOnTransition informs the observable's listeners that a transition was taken
func (r *Registry) FireOnTransition(source Observable, from Ref, to Ref, transition *Transition) {
	for _, l := range r.snapshot(source) {
		r.safeCall(source, "OnTransition", func() { l.OnTransition(from, to, transition) })
	}
}

// snapshot copies the listener list so firing never observes a set that a
// callback changed underneath it.
func (r *Registry) snapshot(source Observable) []Listener {
	set, ok := r.regs[source]
	if !ok {
		return nil
	}
	listeners := make([]Listener, len(set.order))
	for i, reg := range set.order {
		listeners[i] = reg.listener
	}
	return listeners
}

func (r *Registry) safeCall(source Observable, method string, fn func()) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("listener panic", "observable", source.String(), "method", method, "panic", rec)
		}
	}()
	fn()
}
