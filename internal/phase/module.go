// Package phase defines the common contract every phase sub-module
// (setup, recovery, movement, shooting, combat) implements, and the
// ordered turn sequence the state machine walks.
package phase

import (
	"github.com/jruiznavarro/skirmishcore/internal/core"
	"github.com/jruiznavarro/skirmishcore/internal/engineerr"
	"github.com/jruiznavarro/skirmishcore/internal/event"
	"github.com/jruiznavarro/skirmishcore/internal/phasectx"
	"github.com/jruiznavarro/skirmishcore/internal/view"
)

// Outcome is the result of processing one event against a module.
type Outcome struct {
	StateChanged bool
	Delta        *phasectx.Delta
}

// Module is the contract every phase sub-module implements.
type Module interface {
	Phase() core.PhaseTag
	SupportedEvents() map[event.Type]bool
	ProcessEvent(evt event.GameEvent, state *core.GameState, ctx *phasectx.Context) (Outcome, error)
	BuildScreen(state *core.GameState, ctx *phasectx.Context) view.Command
	OnEnter(state *core.GameState, ctx *phasectx.Context) *phasectx.Delta
	OnExit(state *core.GameState, ctx *phasectx.Context)
}

// Sequence is the ordered list of phases a turn walks through after
// setup. Setup is handled specially by the state machine (see
// internal/statemachine) since it alternates per-player before turn 1
// rather than advancing within a turn.
var Sequence = []core.PhaseTag{
	core.PhaseRecovery,
	core.PhaseMovement,
	core.PhaseShooting,
	core.PhaseCombat,
}

// EventSet builds a supported-event lookup set from a list, the common
// construction every module's SupportedEvents uses.
func EventSet(types ...event.Type) map[event.Type]bool {
	set := make(map[event.Type]bool, len(types))
	for _, t := range types {
		set[t] = true
	}
	return set
}

// RequireSupported returns UnsupportedEventError if evt.Type is absent
// from supported.
func RequireSupported(supported map[event.Type]bool, evt event.GameEvent) error {
	if !supported[evt.Type] {
		return engineerr.UnsupportedEvent("event " + string(evt.Type) + " is not accepted in this phase")
	}
	return nil
}
