package listeners

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/anggasct/chartpath"
)

// Metrics counts notifications with prometheus counters
type Metrics struct {
	entries     *prometheus.CounterVec
	exits       *prometheus.CounterVec
	transitions *prometheus.CounterVec
}

// NewMetrics creates the counters under the given namespace. Call Register
// to expose them.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		entries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "state_entries_total",
			Help:      "Number of times a state was entered.",
		}, []string{"tree", "state"}),
		exits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "state_exits_total",
			Help:      "Number of times a state was exited.",
		}, []string{"tree", "state"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_total",
			Help:      "Number of transitions taken.",
		}, []string{"tree", "from", "to"}),
	}
}

// Register registers the counters with reg
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Collectors returns the underlying collectors
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.entries, m.exits, m.transitions}
}

// OnEntry records state entry
func (m *Metrics) OnEntry(state chartpath.Ref) {
	m.entries.WithLabelValues(treeName(state), state.Name()).Inc()
}

// OnExit records state exit
func (m *Metrics) OnExit(state chartpath.Ref) {
	m.exits.WithLabelValues(treeName(state), state.Name()).Inc()
}

// OnTransition records transitions
func (m *Metrics) OnTransition(from, to chartpath.Ref, transition *chartpath.Transition) {
	m.transitions.WithLabelValues(treeName(from), from.Name(), to.Name()).Inc()
}

// Entries returns the entry counter for a state
func (m *Metrics) Entries(tree, state string) prometheus.Counter {
	return m.entries.WithLabelValues(tree, state)
}

// Exits returns the exit counter for a state
func (m *Metrics) Exits(tree, state string) prometheus.Counter {
	return m.exits.WithLabelValues(tree, state)
}

// Transitions returns the transition counter for a pair of states
func (m *Metrics) Transitions(tree, from, to string) prometheus.Counter {
	return m.transitions.WithLabelValues(tree, from, to)
}
