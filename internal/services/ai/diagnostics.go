package ai

import "time"

// DurationWindow caps the rolling sample of calculation durations
const DurationWindow = 32

// Diagnostics accumulates one controller's counters. It is observational
// only; nothing reads it to change a result.
type Diagnostics struct {
	// Moves counts calls that produced a placement
	Moves int
	// Passes counts calls that produced no move at all
	Passes int
	// Timeouts counts calls whose computation overran the effective limit
	Timeouts int
	// Fallbacks counts calls where the strategy's result was discarded
	// and the first legal move substituted
	Fallbacks int
	// Durations holds the most recent calculation times, newest last,
	// capped at DurationWindow entries
	Durations []time.Duration
}

// record appends a calculation duration, dropping the oldest past the cap
func (d *Diagnostics) record(elapsed time.Duration) {
	d.Durations = append(d.Durations, elapsed)
	if len(d.Durations) > DurationWindow {
		d.Durations = d.Durations[len(d.Durations)-DurationWindow:]
	}
}

// Calls returns the total completed computations
func (d Diagnostics) Calls() int {
	return d.Moves + d.Passes
}

// AverageDuration returns the mean over the rolling duration window
func (d Diagnostics) AverageDuration() time.Duration {
	if len(d.Durations) == 0 {
		return 0
	}
	var total time.Duration
	for _, dur := range d.Durations {
		total += dur
	}
	return total / time.Duration(len(d.Durations))
}
