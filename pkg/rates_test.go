package deadtime

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectedRate(t *testing.T) {
	assert.InDelta(t, 500, DetectedRate(1e-3, 1000, false), 1e-9)
	assert.InDelta(t, 1000*math.Exp(-1), DetectedRate(1e-3, 1000, true), 1e-9)
	assert.Equal(t, 1000.0, DetectedRate(0, 1000, true))
	assert.Less(t, DetectedRate(2e-3, 1000, true), DetectedRate(2e-3, 1000, false))
}

func TestIncidentRate(t *testing.T) {
	r, err := IncidentRate(1e-3, 500)
	require.NoError(t, err)
	assert.InDelta(t, 1000, r, 1e-9)

	for _, incident := range []float64{10, 300, 5000} {
		r, err := IncidentRate(2.5e-3, DetectedRate(2.5e-3, incident, false))
		require.NoError(t, err)
		assert.InDelta(t, incident, r, 1e-6*incident)
	}

	_, err = IncidentRate(1e-2, 200)
	assert.Error(t, err)
}
