// Package mediator sits between UI/network and the PhaseCoordinator: it
// owns turn validation, event-id/timestamp stamping, listener fan-out,
// optional network broadcast, and AI auto-play.
package mediator

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jruiznavarro/skirmishcore/internal/aistrategy"
	"github.com/jruiznavarro/skirmishcore/internal/coordinator"
	"github.com/jruiznavarro/skirmishcore/internal/enginelog"
	"github.com/jruiznavarro/skirmishcore/internal/engineerr"
	"github.com/jruiznavarro/skirmishcore/internal/event"
	"github.com/jruiznavarro/skirmishcore/internal/netadapter"
	"github.com/jruiznavarro/skirmishcore/internal/view"
)

// LocalPlayer identifies the seat this process drives.
type LocalPlayer struct {
	ID           string
	PlayerNumber int
}

// ScreenListener and ErrorListener are the mediator's fan-out callbacks.
type ScreenListener func(view.Command)
type ErrorListener func(*engineerr.EngineError)

// Mediator wraps a Coordinator with turn validation, id/timestamp
// stamping, listener fan-out, and an optional network adapter.
type Mediator struct {
	Coordinator *coordinator.Coordinator

	localPlayer    LocalPlayer
	turnValidation bool

	screenListeners []ScreenListener
	errorListeners  []ErrorListener

	network netadapter.NetworkAdapter

	aiStrategies map[int]aistrategy.Strategy

	log *enginelog.Logger
	now func() time.Time
}

// New constructs a mediator around an already-built coordinator. Turn
// validation defaults on; disable it for hotseat play with DisableTurnValidation.
func New(c *coordinator.Coordinator, local LocalPlayer, log *enginelog.Logger) *Mediator {
	return &Mediator{
		Coordinator:    c,
		localPlayer:    local,
		turnValidation: true,
		log:            log,
		now:            time.Now,
	}
}

// DisableTurnValidation turns off the "not your turn" check, for
// hotseat mode where one seat drives both players.
func (m *Mediator) DisableTurnValidation() { m.turnValidation = false }

// OnScreenCommand registers a listener notified on every successful
// event application.
func (m *Mediator) OnScreenCommand(l ScreenListener) { m.screenListeners = append(m.screenListeners, l) }

// OnError registers a listener notified on every rejected event.
func (m *Mediator) OnError(l ErrorListener) { m.errorListeners = append(m.errorListeners, l) }

// Connect attaches a network adapter; events it receives are submitted
// bypassing turn validation, since the peer is the legitimate other player.
func (m *Mediator) Connect(adapter netadapter.NetworkAdapter) {
	m.network = adapter
	adapter.OnMessage(func(msg netadapter.Message) {
		if msg.Type != netadapter.MessageEvent {
			return
		}
		m.apply(msg.Event, applyOpts{bypassValidation: true, broadcast: false})
	})
}

// EnableAI installs a heuristic strategy that auto-plays for the given
// player number: after each successful screen emit, if that player is
// now active, the strategy's chosen event is submitted immediately.
// Each player number has its own strategy slot, so both seats can be
// AI-controlled at once (aivai mode).
func (m *Mediator) EnableAI(strategy aistrategy.Strategy, forPlayer int) {
	if m.aiStrategies == nil {
		m.aiStrategies = make(map[int]aistrategy.Strategy)
	}
	m.aiStrategies[forPlayer] = strategy
}

// DisableAI turns off auto-play for the given player number.
func (m *Mediator) DisableAI(forPlayer int) { delete(m.aiStrategies, forPlayer) }

// SubmitEvent stamps an id/timestamp onto the event (type, payload),
// turn-validates it (unless bypassed by network delivery), submits it
// to the coordinator, broadcasts over the network adapter, and fans out
// the resulting screen or error to listeners.
func (m *Mediator) SubmitEvent(evtType event.Type, payload any) coordinator.Result {
	evt := event.GameEvent{
		ID:        uuid.NewString(),
		Timestamp: m.now(),
		PlayerID:  m.localPlayer.ID,
		Type:      evtType,
		Payload:   payload,
	}
	return m.apply(evt, applyOpts{bypassValidation: false, broadcast: true})
}

// applyOpts controls how an event flows through apply: events received
// from a peer bypass turn validation (the peer is the legitimate other
// player) and are never rebroadcast; locally-originated events
// (human or AI) are validated and broadcast.
type applyOpts struct {
	bypassValidation bool
	broadcast        bool
}

func (m *Mediator) apply(evt event.GameEvent, opts applyOpts) coordinator.Result {
	if !opts.bypassValidation && m.turnValidation && !m.isAuthorized() {
		err := engineerr.TurnValidation("not your turn")
		m.notifyError(err)
		return coordinator.Result{Success: false, Error: err}
	}

	res := m.Coordinator.ProcessEvent(evt)
	if !res.Success {
		m.logf().WithField("event_type", evt.Type).WithError(res.Error).Debug("mediator rejected event")
		m.notifyError(res.Error)
		return res
	}

	if opts.broadcast && m.network != nil {
		_ = m.network.Send(netadapter.Message{Type: netadapter.MessageEvent, Event: evt})
	}
	m.notifyScreen(res.Screen)
	m.maybeAutoPlay(res.Screen)
	return res
}

// isAuthorized: only the active player may submit, including
// ACKNOWLEDGE -- this protocol has no spectator events.
func (m *Mediator) isAuthorized() bool {
	return m.Coordinator.State.CurrentPlayer == m.localPlayer.PlayerNumber
}

func (m *Mediator) maybeAutoPlay(screen view.Command) {
	strategy, ok := m.aiStrategies[screen.CurrentPlayer]
	if !ok {
		return
	}
	next := strategy.NextEvent(screen, aiPlayerID(screen.CurrentPlayer))
	next.ID = uuid.NewString()
	next.Timestamp = m.now()
	// The AI drives a seat that may not be localPlayer's own; its
	// submissions bypass turn validation but still broadcast, since a
	// connected peer needs to see the AI's moves too.
	m.apply(next, applyOpts{bypassValidation: true, broadcast: true})
}

func aiPlayerID(playerNumber int) string {
	if playerNumber == 1 {
		return "ai-player-1"
	}
	return "ai-player-2"
}

func (m *Mediator) notifyScreen(cmd view.Command) {
	for _, l := range m.screenListeners {
		l(cmd)
	}
}

func (m *Mediator) notifyError(err *engineerr.EngineError) {
	for _, l := range m.errorListeners {
		l(err)
	}
}

func (m *Mediator) logf() *logrus.Entry {
	if m.log == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return m.log.WithGame(m.Coordinator.State.GameID)
}
