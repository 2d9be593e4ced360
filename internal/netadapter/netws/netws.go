// Package netws implements netadapter.NetworkAdapter over a websocket
// connection (gorilla/websocket), satisfying the two-party channel the
// mediator broadcasts GameEvents across.
package netws

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/jruiznavarro/skirmishcore/internal/netadapter"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// wireMessage is the JSON envelope carried over the socket; it mirrors
// netadapter.Message but keeps GameEvent/GameState payloads opaque to
// this package so it never needs to know their shape.
type wireMessage struct {
	Type    netadapter.MessageType `json:"type"`
	Payload json.RawMessage        `json:"payload"`
}

// Adapter is a NetworkAdapter backed by a single websocket connection.
// Construct one with NewHost (listens for the guest's dial) or NewGuest
// (dials a host's address).
type Adapter struct {
	addr string

	mu   sync.Mutex
	conn *websocket.Conn

	onMessage      func(netadapter.Message)
	onStatusChange func(netadapter.Status)

	writeMu sync.Mutex
}

// NewHost builds an adapter that will listen on addr when InitAsHost is
// called (addr may be "host:0" to pick a free port).
func NewHost(addr string) *Adapter { return &Adapter{addr: addr} }

// NewGuest builds an adapter with no listening address; it dials out
// to whatever offer InitAsGuest receives.
func NewGuest() *Adapter { return &Adapter{} }

// InitAsHost starts listening on the configured address and blocks
// until the guest's dial completes, returning the listen address as
// the opaque offer blob the guest must be given out of band.
func (a *Adapter) InitAsHost() ([]byte, error) {
	a.setStatus(netadapter.StatusConnecting)
	listener, err := net.Listen("tcp", a.addr)
	if err != nil {
		a.setStatus(netadapter.StatusError)
		return nil, fmt.Errorf("netws: listen: %w", err)
	}

	connCh := make(chan *websocket.Conn, 1)
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		connCh <- conn
	})
	server := &http.Server{Handler: mux}
	go server.Serve(listener)

	conn := <-connCh
	go server.Shutdown(context.Background())

	a.setConn(conn)
	a.setStatus(netadapter.StatusConnected)
	go a.readLoop()
	return []byte(listener.Addr().String()), nil
}

// InitAsGuest dials the host's address (the offer returned by
// InitAsHost) and returns the same address back as the answer, since
// this transport needs no further negotiation once connected.
func (a *Adapter) InitAsGuest(offer []byte) ([]byte, error) {
	a.setStatus(netadapter.StatusConnecting)
	url := "ws://" + string(offer) + "/"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		a.setStatus(netadapter.StatusError)
		return nil, fmt.Errorf("netws: dial: %w", err)
	}
	a.setConn(conn)
	a.setStatus(netadapter.StatusConnected)
	go a.readLoop()
	return offer, nil
}

// CompleteConnection is a no-op for this transport: the websocket
// handshake itself is the completion signal.
func (a *Adapter) CompleteConnection(answer []byte) error { return nil }

// Send marshals the message and writes it as a single text frame.
func (a *Adapter) Send(msg netadapter.Message) error {
	conn := a.getConn()
	if conn == nil {
		return fmt.Errorf("netws: not connected")
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("netws: marshal message: %w", err)
	}
	wire := wireMessage{Type: msg.Type, Payload: payload}
	body, err := json.Marshal(wire)
	if err != nil {
		return fmt.Errorf("netws: marshal envelope: %w", err)
	}

	a.writeMu.Lock()
	defer a.writeMu.Unlock()
	return conn.WriteMessage(websocket.TextMessage, body)
}

// OnMessage registers the listener invoked for every inbound message.
func (a *Adapter) OnMessage(listener func(netadapter.Message)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onMessage = listener
}

// OnStatusChange registers the listener invoked on connection status
// transitions.
func (a *Adapter) OnStatusChange(listener func(netadapter.Status)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onStatusChange = listener
}

func (a *Adapter) readLoop() {
	conn := a.getConn()
	for {
		_, body, err := conn.ReadMessage()
		if err != nil {
			a.setStatus(netadapter.StatusDisconnected)
			return
		}
		var wire wireMessage
		if err := json.Unmarshal(body, &wire); err != nil {
			continue
		}
		var msg netadapter.Message
		if err := json.Unmarshal(wire.Payload, &msg); err != nil {
			continue
		}
		if listener := a.getOnMessage(); listener != nil {
			listener(msg)
		}
	}
}

func (a *Adapter) setConn(conn *websocket.Conn) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.conn = conn
}

func (a *Adapter) getConn() *websocket.Conn {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.conn
}

func (a *Adapter) getOnMessage() func(netadapter.Message) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.onMessage
}

func (a *Adapter) setStatus(s netadapter.Status) {
	a.mu.Lock()
	listener := a.onStatusChange
	a.mu.Unlock()
	if listener != nil {
		listener(s)
	}
}

var _ netadapter.NetworkAdapter = (*Adapter)(nil)
