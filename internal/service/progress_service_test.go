package service

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galaxia-edu/galaxia-backend/internal/config"
)

func TestComputeLevel_ViaLactea(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  int
	}{
		{"zero score", 0, 1},
		{"just below first goal", 989, 1},
		{"first goal reached", 990, 2},
		{"between goals", 1500, 2},
		{"second goal reached", 2000, 3},
		{"fourth goal reached", 5000, 5},
		{"last goal reached caps out", 7500, 5},
		{"beyond the table", 99999, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeLevel(config.ViaLacteaGoals, tt.score))
		})
	}
}

func TestComputeLevel_BothTracksShareThresholds(t *testing.T) {
	for _, score := range []int{0, 990, 2000, 3500, 5000, 7500} {
		assert.Equal(t,
			ComputeLevel(config.ViaLacteaGoals, score),
			ComputeLevel(config.AndromedaGoals, score),
			"score %d", score)
	}
}

func TestGetPhases(t *testing.T) {
	svc := NewProgressService(nil, zerolog.Nop())

	phases, err := svc.GetPhases("via_lactea")
	require.NoError(t, err)
	require.Contains(t, phases, "via_lactea_fase_1")
	assert.Equal(t, "Galáxia Via Láctea", phases["via_lactea_fase_1"].Name)

	_, err = svc.GetPhases("orion")
	assert.ErrorIs(t, err, ErrUnknownGame)
}

func TestPlaceName(t *testing.T) {
	assert.Equal(t, "Netuno", placeName(config.ViaLacteaGoals, 1))
	assert.Equal(t, "Terra", placeName(config.ViaLacteaGoals, 5))
	assert.Equal(t, "Sirius", placeName(config.AndromedaGoals, 1))
	// Out-of-table levels fall back to the first stop.
	assert.Equal(t, "Netuno", placeName(config.ViaLacteaGoals, 42))
}
