package ai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDiagnosticsDurationWindowIsCapped(t *testing.T) {
	var d Diagnostics
	for i := 0; i < DurationWindow+10; i++ {
		d.record(time.Duration(i) * time.Millisecond)
	}

	assert.Len(t, d.Durations, DurationWindow)
	// Oldest entries fall off the front; the newest is the last recorded.
	assert.Equal(t, 10*time.Millisecond, d.Durations[0])
	assert.Equal(t, time.Duration(DurationWindow+9)*time.Millisecond, d.Durations[len(d.Durations)-1])
}

func TestDiagnosticsAggregates(t *testing.T) {
	var d Diagnostics
	assert.Equal(t, time.Duration(0), d.AverageDuration())

	d.record(2 * time.Millisecond)
	d.record(4 * time.Millisecond)
	d.Moves = 3
	d.Passes = 2

	assert.Equal(t, 3*time.Millisecond, d.AverageDuration())
	assert.Equal(t, 5, d.Calls())
}
