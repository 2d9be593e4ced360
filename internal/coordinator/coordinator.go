// Package coordinator implements the PhaseCoordinator: the central
// dispatcher that routes events to the active phase module, applies
// context deltas, emits screen commands, and drives undo-by-replay.
package coordinator

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jruiznavarro/skirmishcore/internal/core"
	"github.com/jruiznavarro/skirmishcore/internal/engineerr"
	"github.com/jruiznavarro/skirmishcore/internal/enginelog"
	"github.com/jruiznavarro/skirmishcore/internal/event"
	"github.com/jruiznavarro/skirmishcore/internal/phase"
	"github.com/jruiznavarro/skirmishcore/internal/phasectx"
	"github.com/jruiznavarro/skirmishcore/internal/rout"
	"github.com/jruiznavarro/skirmishcore/internal/statemachine"
	"github.com/jruiznavarro/skirmishcore/internal/view"
	"github.com/jruiznavarro/skirmishcore/pkg/dice"
)

// Result is the outcome of processing one event.
type Result struct {
	Success bool
	Error   *engineerr.EngineError
	StateChanged bool
	Screen  view.Command
}

// Coordinator owns the live game state, the applied-event history, the
// transient phase context, and the initial snapshot used for undo.
type Coordinator struct {
	State    *core.GameState
	Context  *phasectx.Context
	History  []event.GameEvent
	Snapshot *core.Snapshot
	Roller   *dice.Roller

	modules map[core.PhaseTag]phase.Module
	log     *enginelog.Logger
	now     func() time.Time
}

// New constructs a coordinator around an already-built GameState, its
// originating snapshot, a deterministic roller, and the registered
// phase modules (keyed by phase.Module.Phase()).
func New(state *core.GameState, snapshot *core.Snapshot, roller *dice.Roller, modules []phase.Module, log *enginelog.Logger) *Coordinator {
	byTag := make(map[core.PhaseTag]phase.Module, len(modules))
	for _, m := range modules {
		byTag[m.Phase()] = m
	}
	return &Coordinator{
		State:    state,
		Context:  phasectx.New(),
		Snapshot: snapshot,
		Roller:   roller,
		modules:  byTag,
		log:      log,
		now:      time.Now,
	}
}

func (c *Coordinator) activeModule() (phase.Module, error) {
	m, ok := c.modules[c.State.Phase]
	if !ok {
		return nil, engineerr.Precondition("no phase module registered for phase " + string(c.State.Phase))
	}
	return m, nil
}

// ProcessEvent is the coordinator's single entry point. ADVANCE_PHASE,
// UNDO and CONFIRM_ROUT_TEST are handled in-house; every other event is
// dispatched to the active phase module.
func (c *Coordinator) ProcessEvent(evt event.GameEvent) Result {
	if c.State.Ended {
		return c.errorResult(engineerr.Precondition("the game has ended"))
	}

	switch evt.Type {
	case event.AdvancePhase:
		return c.advancePhase(evt)
	case event.Undo:
		return c.undo(evt)
	case event.ConfirmRoutTest:
		return c.confirmRoutTest(evt)
	}

	module, err := c.activeModule()
	if err != nil {
		return c.errorResult(err)
	}
	if !module.SupportedEvents()[evt.Type] {
		return c.errorResult(engineerr.UnsupportedEvent("event " + string(evt.Type) + " is not accepted in this phase"))
	}

	c.History = append(c.History, evt)
	outcome, procErr := module.ProcessEvent(evt, c.State, c.Context)
	if procErr != nil {
		c.History = c.History[:len(c.History)-1]
		c.logf().WithField("event_type", evt.Type).WithError(procErr).Debug("event rejected")
		return c.errorResult(procErr)
	}
	c.Context.Merge(outcome.Delta)

	screen := module.BuildScreen(c.State, c.Context)
	return Result{Success: true, StateChanged: outcome.StateChanged, Screen: screen}
}

// undo implements UndoToEvent (spec.md §4.7.1): rebuild from the
// initial snapshot and replay every prior event up to and including the
// target, relying on the seeded roller to reproduce identical rolls.
func (c *Coordinator) undo(evt event.GameEvent) Result {
	p, ok := evt.Payload.(event.UndoPayload)
	if !ok {
		return c.errorResult(engineerr.Precondition("malformed UNDO payload"))
	}

	targetIdx := -1
	for i, h := range c.History {
		if h.ID == p.ToEventID {
			targetIdx = i
			break
		}
	}
	if targetIdx < 0 {
		return c.errorResult(engineerr.NotFound("no such event in history: " + p.ToEventID))
	}

	toReplay := append([]event.GameEvent(nil), c.History[:targetIdx+1]...)
	c.resetToSnapshot()

	for _, replayed := range toReplay {
		res := c.ProcessEvent(replayed)
		if !res.Success {
			return Result{Success: false, Error: engineerr.Replay(replayed.ID, res.Error)}
		}
	}

	c.logf().WithField("to_event", p.ToEventID).Info("undo replay complete")
	return Result{Success: true, StateChanged: true, Screen: c.GetCurrentScreen()}
}

// UndoLastEvents targets the (count+1)th event from the end of history,
// or resets fully if count covers the whole history.
func (c *Coordinator) UndoLastEvents(count int) Result {
	if count >= len(c.History) {
		c.resetToSnapshot()
		return Result{Success: true, StateChanged: true, Screen: c.GetCurrentScreen()}
	}
	targetEvt := c.History[len(c.History)-count-1]
	return c.undo(event.GameEvent{Type: event.Undo, Payload: event.UndoPayload{ToEventID: targetEvt.ID}})
}

// ResetToInitialState rebuilds from the snapshot and clears history.
func (c *Coordinator) ResetToInitialState() {
	c.resetToSnapshot()
}

func (c *Coordinator) resetToSnapshot() {
	p1, p2 := c.Snapshot.Rebuild()
	gameID, scenario, startedAt := c.State.GameID, c.Snapshot.Scenario, c.State.StartedAt
	c.State = core.NewGameState(gameID, scenario, c.Snapshot.Seed, startedAt, p1, p2)
	c.Context = phasectx.New()
	c.History = nil
	c.Roller.Reseed(c.Snapshot.Seed)
}

func (c *Coordinator) confirmRoutTest(evt event.GameEvent) Result {
	if c.Context.SubState != phasectx.SubStateRoutTest || c.Context.PendingRoutTest == nil {
		return c.errorResult(engineerr.Precondition("no rout test is pending"))
	}
	c.History = append(c.History, evt)

	warbandIdx := *c.Context.PendingRoutTest
	res := rout.Resolve(c.Roller, c.State, warbandIdx)
	c.State.AppendLog(0, routLogText(res), c.now())

	c.Context.Merge(&phasectx.Delta{
		SubState:             subStatePtr(phasectx.SubStateMain),
		ClearPendingRoutTest: true,
	})

	if c.State.Ended {
		return Result{Success: true, StateChanged: true, Screen: c.gameOverScreen()}
	}
	module, err := c.activeModule()
	if err != nil {
		return c.errorResult(err)
	}
	return Result{Success: true, StateChanged: true, Screen: module.BuildScreen(c.State, c.Context)}
}

func routLogText(res rout.Result) string {
	if res.Success {
		return res.LeaderName + " rallies the warband; the line holds"
	}
	return res.LeaderName + " fails the rout test; the warband flees the field"
}

func subStatePtr(s phasectx.SubState) *phasectx.SubState { return &s }

func (c *Coordinator) advancePhase(evt event.GameEvent) Result {
	current, err := c.activeModule()
	if err != nil {
		return c.errorResult(err)
	}
	tr := statemachine.Advance(c.State.Turn, c.State.Phase, c.State.CurrentPlayer)
	next, ok := c.modules[tr.Phase]
	if !ok {
		return c.errorResult(engineerr.Precondition("no phase module registered for phase " + string(tr.Phase)))
	}
	c.History = append(c.History, evt)

	current.OnExit(c.State, c.Context)
	statemachine.Apply(c.State, tr)
	c.Context.Reset()

	if delta := next.OnEnter(c.State, c.Context); delta != nil {
		c.Context.Merge(delta)
	}
	c.State.AppendLog(c.State.CurrentPlayer, "advanced to "+string(c.State.Phase), c.now())
	c.logf().WithField("phase", c.State.Phase).WithField("turn", c.State.Turn).Info("phase advanced")

	return Result{Success: true, StateChanged: true, Screen: next.BuildScreen(c.State, c.Context)}
}

func (c *Coordinator) logf() *logrus.Entry {
	if c.log == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return c.log.WithGame(c.State.GameID)
}

func (c *Coordinator) errorResult(err *engineerr.EngineError) Result {
	return Result{Success: false, Error: err}
}

// GetCurrentScreen returns the game-over screen if the battle has
// ended, else delegates to the active phase module.
func (c *Coordinator) GetCurrentScreen() view.Command {
	if c.State.Ended {
		return c.gameOverScreen()
	}
	module, err := c.activeModule()
	if err != nil {
		return view.Command{Screen: view.ScreenError, Data: view.ErrorData{Message: err.Error(), Kind: string(err.Kind)}}
	}
	return module.BuildScreen(c.State, c.Context)
}

func (c *Coordinator) gameOverScreen() view.Command {
	return view.Command{
		Screen: view.ScreenGameOver,
		Data: view.GameOverData{
			Winner: c.State.Winner,
			Reason: c.State.EndReason,
			Turn:   c.State.Turn,
			OutOfActionTally: [2]int{
				c.State.Warbands[0].OutOfActionCount,
				c.State.Warbands[1].OutOfActionCount,
			},
		},
		Turn:          c.State.Turn,
		Phase:         c.State.Phase,
		CurrentPlayer: c.State.CurrentPlayer,
		GameID:        c.State.GameID,
	}
}
