package event

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jruiznavarro/skirmishcore/internal/core"
)

func TestGameEvent_JSONRoundTrip_PreservesConcretePayloadType(t *testing.T) {
	original := GameEvent{
		ID:        "e1",
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		PlayerID:  "p1",
		Type:      ConfirmMelee,
		Payload:   ConfirmMeleePayload{TargetID: core.WarriorID(7), WeaponKey: "axe"},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded GameEvent
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, original.ID, decoded.ID)
	assert.True(t, original.Timestamp.Equal(decoded.Timestamp))
	assert.Equal(t, original.Type, decoded.Type)
	assert.Equal(t, original.Payload, decoded.Payload)
}

func TestGameEvent_JSONRoundTrip_EmptyPayload(t *testing.T) {
	original := GameEvent{ID: "e2", Type: AdvancePhase, Payload: AdvancePhasePayload{}}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded GameEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, AdvancePhasePayload{}, decoded.Payload)
}

func TestGameEvent_UnmarshalJSON_RejectsUnknownType(t *testing.T) {
	raw := []byte(`{"id":"e3","type":"NOT_A_REAL_EVENT","payload":{}}`)
	var decoded GameEvent
	err := json.Unmarshal(raw, &decoded)
	assert.Error(t, err)
}
