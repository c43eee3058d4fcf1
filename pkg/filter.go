package deadtime

import (
	"cmp"
	"math"
	"math/rand/v2"

	"golang.org/x/exp/slices"
)

// NormalSource draws standard normal deviates. *rand.Rand satisfies it.
type NormalSource interface {
	NormFloat64() float64
}

// Options tunes a Filter call. The zero value selects the non-paralyzable
// model with a fixed dead time and no background.
type Options struct {
	Paralyzable bool
	// DtSigma is the standard deviation of the Gaussian jitter added to the
	// dead time of each event. Zero disables the jitter.
	DtSigma    float64
	Background []float64
	// ReturnDiagnostics fills Result.Diagnostics.
	ReturnDiagnostics bool
	// Rand is the random stream used for the jitter. When nil a private
	// generator seeded with Seed is created for the call.
	Rand NormalSource
	Seed uint64
}

// Diagnostics describes a filtering pass over the merged, time sorted stream.
type Diagnostics struct {
	// Mask marks the retained events of the merged stream.
	Mask               []bool
	RetainedBackground []float64
	Times              []float64
	IsSource           []bool
	// Order maps each sorted position to its input index. Source events are
	// numbered first, background events follow.
	Order     []int
	DeadTimes []float64
	// SourceMask and BackgroundMask are Mask restricted to each stream, in
	// sorted order.
	SourceMask     []bool
	BackgroundMask []bool
}

type Result struct {
	// Events are the retained source events, sorted by time.
	Events        []float64
	SourceIn      int
	BackgroundIn  int
	BackgroundOut int
	// Warnings lists recoverable conditions met while filtering. The result
	// is still valid when it is not empty.
	Warnings    []error
	Diagnostics *Diagnostics
}

type taggedEvent struct {
	time   float64
	source bool
	index  int
}

// Filter simulates the dead time of a detector on the events and returns the
// ones it would register. Events and the optional background are merged,
// sorted stably and scanned once; the slices passed in are not modified.
//
// In the non-paralyzable model only registered events start a new dead
// period. In the paralyzable model every incoming event does, registered or
// not.
func Filter(events []float64, deadTime float64, opts Options) (*Result, error) {
	if err := checkTimes("source", events); err != nil {
		return nil, err
	}
	if err := checkTimes("background", opts.Background); err != nil {
		return nil, err
	}
	if math.IsNaN(deadTime) || math.IsInf(deadTime, 0) {
		return nil, &ErrInvalidParameter{Name: "dead time", Value: deadTime}
	}
	if math.IsNaN(opts.DtSigma) || math.IsInf(opts.DtSigma, 0) || opts.DtSigma < 0 {
		return nil, &ErrInvalidParameter{Name: "dead time sigma", Value: opts.DtSigma}
	}

	result := &Result{
		SourceIn:     len(events),
		BackgroundIn: len(opts.Background),
	}
	if deadTime < 0 {
		warning := &ErrNegativeDeadTime{DeadTime: deadTime}
		logger.Warning(warning.Error(), "filter")
		result.Warnings = append(result.Warnings, warning)
	}

	merged := mergeEvents(events, opts.Background)
	mask := make([]bool, len(merged))
	deadTimes := make([]float64, len(merged))

	if deadTime <= 0 {
		for i := range mask {
			mask[i] = true
		}
	} else {
		jitter := opts.normalSource()
		nextAllowed := math.Inf(-1)
		for i, ev := range merged {
			d := deadTime
			if jitter != nil {
				d = math.Max(0, deadTime+opts.DtSigma*jitter.NormFloat64())
			}
			deadTimes[i] = d
			accepted := ev.time >= nextAllowed
			if accepted || opts.Paralyzable {
				nextAllowed = ev.time + d
			}
			mask[i] = accepted
		}
	}

	result.Events = make([]float64, 0, len(events))
	retainedBkg := make([]float64, 0)
	for i, ev := range merged {
		if !mask[i] {
			continue
		}
		if ev.source {
			result.Events = append(result.Events, ev.time)
		} else {
			retainedBkg = append(retainedBkg, ev.time)
		}
	}

	result.BackgroundOut = len(retainedBkg)

	if opts.ReturnDiagnostics {
		result.Diagnostics = newDiagnostics(merged, mask, deadTimes, retainedBkg)
	}
	return result, nil
}

func (o Options) normalSource() NormalSource {
	if o.DtSigma == 0 {
		return nil
	}
	if o.Rand != nil {
		return o.Rand
	}
	return rand.New(rand.NewPCG(o.Seed, o.Seed^0x9e3779b97f4a7c15))
}

func checkTimes(stream string, times []float64) error {
	for i, t := range times {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return &ErrInvalidTime{Stream: stream, Index: i, Value: t}
		}
	}
	return nil
}

func mergeEvents(events []float64, background []float64) []taggedEvent {
	merged := make([]taggedEvent, 0, len(events)+len(background))
	for i, t := range events {
		merged = append(merged, taggedEvent{time: t, source: true, index: i})
	}
	for i, t := range background {
		merged = append(merged, taggedEvent{time: t, source: false, index: len(events) + i})
	}
	// Stable, so simultaneous events keep their input order.
	slices.SortStableFunc(merged, func(a, b taggedEvent) int {
		return cmp.Compare(a.time, b.time)
	})
	return merged
}

func newDiagnostics(merged []taggedEvent, mask []bool, deadTimes []float64, retainedBkg []float64) *Diagnostics {
	diag := &Diagnostics{
		Mask:               mask,
		RetainedBackground: retainedBkg,
		Times:              make([]float64, len(merged)),
		IsSource:           make([]bool, len(merged)),
		Order:              make([]int, len(merged)),
		DeadTimes:          deadTimes,
		SourceMask:         make([]bool, 0, len(merged)),
		BackgroundMask:     make([]bool, 0),
	}
	for i, ev := range merged {
		diag.Times[i] = ev.time
		diag.IsSource[i] = ev.source
		diag.Order[i] = ev.index
		if ev.source {
			diag.SourceMask = append(diag.SourceMask, mask[i])
		} else {
			diag.BackgroundMask = append(diag.BackgroundMask, mask[i])
		}
	}
	return diag
}

// Retained returns the number of events registered from both streams.
func (d *Diagnostics) Retained() int {
	n := 0
	for _, m := range d.Mask {
		if m {
			n++
		}
	}
	return n
}

// DeadFraction is the fraction of source events lost to dead time.
func (r *Result) DeadFraction() float64 {
	if r.SourceIn == 0 {
		return 0
	}
	return 1 - float64(len(r.Events))/float64(r.SourceIn)
}
