// Package persist saves and loads a battle: the authoritative
// GameState, its originating snapshot, and the full event history,
// serialized as JSON for on-disk saves. The vmihailenco/msgpack codec
// is offered separately for compact network state-sync payloads; save
// files are always JSON so they stay human-diffable.
package persist

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/jruiznavarro/skirmishcore/internal/core"
	"github.com/jruiznavarro/skirmishcore/internal/event"
)

// SaveFile is the on-disk shape of a saved battle.
type SaveFile struct {
	Snapshot *core.Snapshot    `json:"snapshot"`
	State    *core.GameState   `json:"state"`
	History  []event.GameEvent `json:"history"`
}

// MarshalJSON serializes a save file for disk storage.
func MarshalJSON(f SaveFile) ([]byte, error) {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("persist: marshal save file: %w", err)
	}
	return data, nil
}

// UnmarshalJSON deserializes a save file previously written by
// MarshalJSON, reconstructing concrete event payload types.
func UnmarshalJSON(data []byte) (SaveFile, error) {
	var f SaveFile
	if err := json.Unmarshal(data, &f); err != nil {
		return SaveFile{}, fmt.Errorf("persist: unmarshal save file: %w", err)
	}
	return f, nil
}

// StateSyncMessage is the compact network payload sent on reconnect: the
// host's authoritative state and history, msgpack-encoded for lower
// bandwidth than the JSON save format.
type StateSyncMessage struct {
	State   *core.GameState   `msgpack:"state"`
	History []event.GameEvent `msgpack:"history"`
}

// MarshalStateSync encodes a state_sync payload for the network adapter.
func MarshalStateSync(state *core.GameState, history []event.GameEvent) ([]byte, error) {
	data, err := msgpack.Marshal(StateSyncMessage{State: state, History: history})
	if err != nil {
		return nil, fmt.Errorf("persist: marshal state sync: %w", err)
	}
	return data, nil
}

// UnmarshalStateSync decodes a state_sync payload received from a peer.
func UnmarshalStateSync(data []byte) (StateSyncMessage, error) {
	var msg StateSyncMessage
	if err := msgpack.Unmarshal(data, &msg); err != nil {
		return StateSyncMessage{}, fmt.Errorf("persist: unmarshal state sync: %w", err)
	}
	return msg, nil
}
