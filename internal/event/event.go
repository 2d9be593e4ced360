// Package event defines the external intent protocol submitted to the
// engine: the tagged union of GameEvent types and their payloads.
package event

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Type identifies the kind of event submitted to the engine.
type Type string

const (
	SelectWarrior   Type = "SELECT_WARRIOR"
	Deselect        Type = "DESELECT"
	SelectTarget    Type = "SELECT_TARGET"
	ConfirmPosition Type = "CONFIRM_POSITION"
	ConfirmMove     Type = "CONFIRM_MOVE"
	ConfirmCharge   Type = "CONFIRM_CHARGE"
	RecoveryAction  Type = "RECOVERY_ACTION"
	SetModifier     Type = "SET_MODIFIER"
	ConfirmShot     Type = "CONFIRM_SHOT"
	ConfirmMelee    Type = "CONFIRM_MELEE"
	Acknowledge     Type = "ACKNOWLEDGE"
	ConfirmRoutTest Type = "CONFIRM_ROUT_TEST"
	AdvancePhase    Type = "ADVANCE_PHASE"
	Undo            Type = "UNDO"
)

// GameEvent is a single unit of player (or AI, or peer) intent submitted
// to the engine.
type GameEvent struct {
	ID        string
	Timestamp time.Time
	PlayerID  string
	Type      Type
	Payload   any
}

// gameEventWire is GameEvent's JSON shape with Payload kept raw so it
// can be decoded into the concrete struct its Type names.
type gameEventWire struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	PlayerID  string          `json:"playerId"`
	Type      Type            `json:"type"`
	Payload   json.RawMessage `json:"payload"`
}

// MarshalJSON encodes the event with its concrete payload under the
// "payload" key, letting UnmarshalJSON dispatch on "type" to reconstruct it.
func (e GameEvent) MarshalJSON() ([]byte, error) {
	payload, err := json.Marshal(e.Payload)
	if err != nil {
		return nil, fmt.Errorf("event: marshal payload for %s: %w", e.Type, err)
	}
	return json.Marshal(gameEventWire{
		ID: e.ID, Timestamp: e.Timestamp, PlayerID: e.PlayerID, Type: e.Type, Payload: payload,
	})
}

// UnmarshalJSON decodes the envelope then dispatches the raw payload
// into the concrete payload type named by Type, so a round-tripped
// GameEvent carries the same payload struct it started with.
func (e *GameEvent) UnmarshalJSON(data []byte) error {
	var wire gameEventWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	e.ID, e.Timestamp, e.PlayerID, e.Type = wire.ID, wire.Timestamp, wire.PlayerID, wire.Type

	payload, err := decodePayload(wire.Type, wire.Payload)
	if err != nil {
		return err
	}
	e.Payload = payload
	return nil
}

// payloadPrototype returns an addressable zero value of the payload
// struct a given event Type carries, for a decoder to fill in.
func payloadPrototype(t Type) (any, error) {
	switch t {
	case SelectWarrior:
		return &SelectWarriorPayload{}, nil
	case Deselect:
		return &DeselectPayload{}, nil
	case SelectTarget:
		return &SelectTargetPayload{}, nil
	case ConfirmPosition:
		return &ConfirmPositionPayload{}, nil
	case ConfirmMove:
		return &ConfirmMovePayload{}, nil
	case ConfirmCharge:
		return &ConfirmChargePayload{}, nil
	case RecoveryAction:
		return &RecoveryActionPayload{}, nil
	case SetModifier:
		return &SetModifierPayload{}, nil
	case ConfirmShot:
		return &ConfirmShotPayload{}, nil
	case ConfirmMelee:
		return &ConfirmMeleePayload{}, nil
	case Acknowledge:
		return &AcknowledgePayload{}, nil
	case ConfirmRoutTest:
		return &ConfirmRoutTestPayload{}, nil
	case AdvancePhase:
		return &AdvancePhasePayload{}, nil
	case Undo:
		return &UndoPayload{}, nil
	default:
		return nil, fmt.Errorf("event: unknown event type %q", t)
	}
}

// derefPayload unwraps a decoded payload pointer back to the value type
// callers construct by hand (e.g. event.SelectWarriorPayload{...}).
func derefPayload(t Type, dst any) (any, error) {
	switch p := dst.(type) {
	case *SelectWarriorPayload:
		return *p, nil
	case *DeselectPayload:
		return *p, nil
	case *SelectTargetPayload:
		return *p, nil
	case *ConfirmPositionPayload:
		return *p, nil
	case *ConfirmMovePayload:
		return *p, nil
	case *ConfirmChargePayload:
		return *p, nil
	case *RecoveryActionPayload:
		return *p, nil
	case *SetModifierPayload:
		return *p, nil
	case *ConfirmShotPayload:
		return *p, nil
	case *ConfirmMeleePayload:
		return *p, nil
	case *AcknowledgePayload:
		return *p, nil
	case *ConfirmRoutTestPayload:
		return *p, nil
	case *AdvancePhasePayload:
		return *p, nil
	case *UndoPayload:
		return *p, nil
	default:
		return nil, fmt.Errorf("event: unreachable payload type for %s", t)
	}
}

func decodePayload(t Type, raw json.RawMessage) (any, error) {
	dst, err := payloadPrototype(t)
	if err != nil {
		return nil, err
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, dst); err != nil {
			return nil, fmt.Errorf("event: decode payload for %s: %w", t, err)
		}
	}
	return derefPayload(t, dst)
}

// EncodeMsgpack implements msgpack.CustomEncoder so a GameEvent round-
// trips through the compact state_sync wire format the same way it
// does through JSON: the concrete payload type is preserved.
func (e GameEvent) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeMulti(gameEventWire{
		ID:        e.ID,
		Timestamp: e.Timestamp,
		PlayerID:  e.PlayerID,
		Type:      e.Type,
	}, e.Payload)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (e *GameEvent) DecodeMsgpack(dec *msgpack.Decoder) error {
	var header struct {
		ID        string
		Timestamp time.Time
		PlayerID  string
		Type      Type
	}
	var rawPayload msgpack.RawMessage
	if err := dec.DecodeMulti(&header, &rawPayload); err != nil {
		return fmt.Errorf("event: decode msgpack envelope: %w", err)
	}
	e.ID, e.Timestamp, e.PlayerID, e.Type = header.ID, header.Timestamp, header.PlayerID, header.Type

	dst, err := payloadPrototype(e.Type)
	if err != nil {
		return err
	}
	if len(rawPayload) > 0 {
		if err := msgpack.Unmarshal(rawPayload, dst); err != nil {
			return fmt.Errorf("event: decode msgpack payload for %s: %w", e.Type, err)
		}
	}
	payload, err := derefPayload(e.Type, dst)
	if err != nil {
		return err
	}
	e.Payload = payload
	return nil
}
