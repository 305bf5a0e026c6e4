// Package listeners provides ready-made chartpath listeners for logging,
// metrics, validation and recording.
package listeners

import (
	"context"
	"log/slog"

	"github.com/anggasct/chartpath"
)

// Logging writes one structured record per notification
type Logging struct {
	logger *slog.Logger
	level  slog.Level
}

// NewLogging creates a logging listener that writes at the given level
func NewLogging(logger *slog.Logger, level slog.Level) *Logging {
	if logger == nil {
		logger = slog.Default()
	}
	return &Logging{
		logger: logger,
		level:  level,
	}
}

// NewDefaultLogging creates a logging listener on slog.Default at info level
func NewDefaultLogging() *Logging {
	return NewLogging(slog.Default(), slog.LevelInfo)
}

// OnEntry logs state entry
func (l *Logging) OnEntry(state chartpath.Ref) {
	l.logger.Log(context.Background(), l.level, "state entered",
		"tree", treeName(state),
		"state", state.Name(),
		"kind", state.Kind().String(),
		"region", state.IsRegion())
}

// OnExit logs state exit
func (l *Logging) OnExit(state chartpath.Ref) {
	l.logger.Log(context.Background(), l.level, "state exited",
		"tree", treeName(state),
		"state", state.Name(),
		"kind", state.Kind().String(),
		"region", state.IsRegion())
}

// OnTransition logs transitions
func (l *Logging) OnTransition(from, to chartpath.Ref, transition *chartpath.Transition) {
	event := ""
	if transition != nil {
		event = transition.Event
	}
	l.logger.Log(context.Background(), l.level, "transition taken",
		"tree", treeName(from),
		"from", from.String(),
		"to", to.String(),
		"event", event)
}

func treeName(r chartpath.Ref) string {
	if r.Tree() == nil {
		return ""
	}
	return r.Tree().TreeName()
}
