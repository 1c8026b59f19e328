package pins

import (
	"CourtsideApi/internal/assert"
	"encoding/json"
	"strings"
	"testing"
)

func TestGeneratePin(t *testing.T) {
	for i := 0; i < 100; i++ {
		pin := GeneratePin(6)

		assert.Equal(t, len(pin), 6)
		for _, r := range pin {
			if !strings.ContainsRune(string(letterRunes), r) {
				t.Fatalf("pin %q contains unexpected rune %q", pin, r)
			}
		}
	}
}

func TestPinMarshalJSON(t *testing.T) {
	pin := Pin{ID: 1, Pin: "a1b2c3", Scope: PinScopeLeagues}

	got, err := json.Marshal(pin)

	assert.NilError(t, err)
	assert.Equal(t, string(got), `"a1b2c3"`)
}
