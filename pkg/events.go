package deadtime

// EventList is a list of photon arrival times with optional per-event
// columns and observation metadata.
type EventList struct {
	Time []float64
	// PI is the pulse invariant channel of each event.
	PI         []int
	Energy     []float64
	MJDRef     float64
	Instrument string
}

func (ev *EventList) Validate() error {
	if ev.PI != nil && len(ev.PI) != len(ev.Time) {
		return &ErrColumnLength{Column: "pi", Length: len(ev.PI), Want: len(ev.Time)}
	}
	if ev.Energy != nil && len(ev.Energy) != len(ev.Time) {
		return &ErrColumnLength{Column: "energy", Length: len(ev.Energy), Want: len(ev.Time)}
	}
	return nil
}

// FilterEventList applies Filter to the arrival times of ev and returns a new
// event list with the retained times and the same metadata. Per-event columns
// are not carried over; a warning is added to the result when any is set.
func FilterEventList(ev *EventList, deadTime float64, opts Options) (*EventList, *Result, error) {
	if err := ev.Validate(); err != nil {
		return nil, nil, err
	}
	result, err := Filter(ev.Time, deadTime, opts)
	if err != nil {
		return nil, nil, err
	}

	lost := make([]string, 0, 2)
	if len(ev.PI) > 0 {
		lost = append(lost, "PI")
	}
	if len(ev.Energy) > 0 {
		lost = append(lost, "Energy")
	}
	if len(lost) > 0 {
		warning := &ErrFieldsLost{Fields: lost}
		logger.Warning(warning.Error(), "events")
		result.Warnings = append(result.Warnings, warning)
	}

	filtered := &EventList{
		Time:       result.Events,
		MJDRef:     ev.MJDRef,
		Instrument: ev.Instrument,
	}
	return filtered, result, nil
}
