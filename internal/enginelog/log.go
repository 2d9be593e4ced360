// Package enginelog provides structured, leveled diagnostics for the
// coordinator and mediator, distinct from GameState's human-readable
// action log. Engine diagnostics are operational (phase transitions,
// rejected events, replay divergence); the action log is battle data
// that gets serialized with the save file.
package enginelog

import "github.com/sirupsen/logrus"

// Logger wraps a *logrus.Logger pre-configured with the fields common to
// every engine diagnostic line.
type Logger struct {
	*logrus.Logger
}

// New creates an engine logger writing structured (text) output at the
// given level.
func New(level logrus.Level) *Logger {
	l := logrus.New()
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return &Logger{Logger: l}
}

// WithGame returns an entry scoped to a single game id.
func (l *Logger) WithGame(gameID string) *logrus.Entry {
	return l.WithField("game_id", gameID)
}
