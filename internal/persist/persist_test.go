package persist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jruiznavarro/skirmishcore/internal/core"
	"github.com/jruiznavarro/skirmishcore/internal/event"
)

func sampleWarband(playerNumber int, base core.WarriorID) *core.Warband {
	return &core.Warband{PlayerNumber: playerNumber, Warriors: []*core.Warrior{
		core.NewWarrior(base, "A", core.ArchetypeHenchman, core.Profile{W: 1}, core.Equipment{}, nil),
	}}
}

func sampleSaveFile() SaveFile {
	p1 := sampleWarband(1, 1)
	p2 := sampleWarband(2, 10)
	snapshot := core.NewSnapshot("skirmish", 42, p1, p2)
	state := core.NewGameState("g1", "skirmish", 42, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), p1, p2)
	history := []event.GameEvent{
		{ID: "e1", Type: event.SelectWarrior, PlayerID: "p1", Payload: event.SelectWarriorPayload{WarriorID: 1}},
		{ID: "e2", Type: event.ConfirmMelee, PlayerID: "p1", Payload: event.ConfirmMeleePayload{TargetID: 10, WeaponKey: "sword"}},
	}
	return SaveFile{Snapshot: snapshot, State: state, History: history}
}

func TestMarshalUnmarshalJSON_RoundTrip(t *testing.T) {
	original := sampleSaveFile()

	data, err := MarshalJSON(original)
	require.NoError(t, err)

	decoded, err := UnmarshalJSON(data)
	require.NoError(t, err)

	assert.Equal(t, original.State.GameID, decoded.State.GameID)
	assert.Equal(t, original.Snapshot.Seed, decoded.Snapshot.Seed)
	require.Len(t, decoded.History, 2)
	assert.Equal(t, event.SelectWarriorPayload{WarriorID: 1}, decoded.History[0].Payload)
	assert.Equal(t, event.ConfirmMeleePayload{TargetID: 10, WeaponKey: "sword"}, decoded.History[1].Payload)
}

func TestStateSync_MsgpackRoundTrip(t *testing.T) {
	original := sampleSaveFile()

	data, err := MarshalStateSync(original.State, original.History)
	require.NoError(t, err)

	decoded, err := UnmarshalStateSync(data)
	require.NoError(t, err)

	assert.Equal(t, original.State.GameID, decoded.State.GameID)
	require.Len(t, decoded.History, 2)
	assert.Equal(t, event.ConfirmMeleePayload{TargetID: 10, WeaponKey: "sword"}, decoded.History[1].Payload)
}
