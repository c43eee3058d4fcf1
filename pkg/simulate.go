package deadtime

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// SimulatePoisson draws the arrival times of a Poisson process of the given
// rate (counts/s) between tstart and tstop.
func SimulatePoisson(rate float64, tstart float64, tstop float64, rng *rand.Rand) ([]float64, error) {
	if !(rate > 0) || math.IsInf(rate, 0) {
		return nil, &ErrInvalidParameter{Name: "rate", Value: rate}
	}
	if tstop < tstart {
		return nil, fmt.Errorf("invalid interval: stop %g before start %g", tstop, tstart)
	}

	expected := int(rate*(tstop-tstart)) + 1
	times := make([]float64, 0, expected)
	t := tstart
	for {
		t += rng.ExpFloat64() / rate
		if t >= tstop {
			break
		}
		times = append(times, t)
	}
	return times, nil
}
