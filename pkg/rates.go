package deadtime

import (
	"fmt"
	"math"
)

// DetectedRate is the expected registered count rate for an incident rate
// and a fixed dead time.
func DetectedRate(deadTime float64, incidentRate float64, paralyzable bool) float64 {
	if paralyzable {
		return incidentRate * math.Exp(-incidentRate*deadTime)
	}
	return incidentRate / (1 + incidentRate*deadTime)
}

// IncidentRate inverts DetectedRate for the non-paralyzable model.
func IncidentRate(deadTime float64, detectedRate float64) (float64, error) {
	busy := detectedRate * deadTime
	if busy >= 1 {
		return 0, fmt.Errorf("detected rate %g counts/s saturates a %g s dead time", detectedRate, deadTime)
	}
	return detectedRate / (1 - busy), nil
}
