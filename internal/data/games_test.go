package data

import (
	"CourtsideApi/internal/assert"
	"encoding/json"
	"testing"
)

func TestGameStatusMarshalJSON(t *testing.T) {
	tests := []struct {
		name   string
		status GameStatus
		want   string
	}{
		{name: "Scheduled", status: GameScheduled, want: `"scheduled"`},
		{name: "Active", status: GameActive, want: `"active"`},
		{name: "Paused", status: GamePaused, want: `"paused"`},
		{name: "Completed", status: GameCompleted, want: `"completed"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.status)
			assert.NilError(t, err)
			assert.Equal(t, string(got), tt.want)
		})
	}
}

func TestGameStatusMarshalJSONInvalid(t *testing.T) {
	_, err := json.Marshal(GameStatus(99))
	if err == nil {
		t.Fatal("expected error for invalid game status")
	}
}
