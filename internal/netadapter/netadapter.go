// Package netadapter defines the transport-agnostic peer-connection
// interface the mediator broadcasts over. The core never implements a
// transport itself; concrete adapters (see netws) satisfy this
// interface.
package netadapter

import (
	"github.com/jruiznavarro/skirmishcore/internal/core"
	"github.com/jruiznavarro/skirmishcore/internal/event"
)

// Status is the adapter's connection lifecycle state.
type Status string

const (
	StatusDisconnected Status = "disconnected"
	StatusConnecting   Status = "connecting"
	StatusConnected    Status = "connected"
	StatusError        Status = "error"
)

// MessageType distinguishes a single relayed event from a full
// state resynchronization.
type MessageType string

const (
	MessageEvent     MessageType = "event"
	MessageStateSync MessageType = "state_sync"
)

// Message is the wire envelope exchanged between peers.
type Message struct {
	Type    MessageType
	Event   event.GameEvent
	State   *core.GameState
	History []event.GameEvent
}

// NetworkAdapter is a thin abstraction over a two-party channel: a
// host/guest offer-answer handshake followed by ordered, reliable,
// duplicate-free message delivery. Reconnection is handled by the host
// rebroadcasting a state_sync and the guest atomically replacing its
// state and history.
type NetworkAdapter interface {
	InitAsHost() (offer []byte, err error)
	InitAsGuest(offer []byte) (answer []byte, err error)
	CompleteConnection(answer []byte) error

	Send(msg Message) error
	OnMessage(listener func(Message))
	OnStatusChange(listener func(Status))
}
