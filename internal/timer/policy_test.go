package timer

import (
	"testing"

	"github.com/alexanderramin/pomo/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNextSession_AfterWork(t *testing.T) {
	settings := testutil.NewTestSettings(
		testutil.WithDurations(1500, 300, 900),
		testutil.WithCadence(4),
	)

	tests := []struct {
		name         string
		ordinal      int
		wantDuration int
		wantLong     bool
	}{
		{"first session gets short break", 1, 300, false},
		{"second session gets short break", 2, 300, false},
		{"third session gets short break", 3, 300, false},
		{"fourth session gets long break", 4, 900, true},
		{"fifth session gets short break", 5, 300, false},
		{"eighth session gets long break", 8, 900, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NextSession(true, tt.ordinal, settings)
			assert.False(t, d.NextIsWork)
			assert.Equal(t, tt.wantDuration, d.NextDuration)
			assert.Equal(t, tt.wantLong, d.IsLongBreak)
		})
	}
}

func TestNextSession_AfterBreak(t *testing.T) {
	settings := testutil.NewTestSettings(testutil.WithDurations(1500, 300, 900))

	for _, ordinal := range []int{1, 2, 4, 7} {
		d := NextSession(false, ordinal, settings)
		assert.True(t, d.NextIsWork)
		assert.Equal(t, 1500, d.NextDuration)
		assert.False(t, d.IsLongBreak, "a break never leads into another break")
	}
}

func TestNextSession_AutoStartFlags(t *testing.T) {
	settings := testutil.NewTestSettings(testutil.WithAutoStart(true, false))

	afterWork := NextSession(true, 1, settings)
	assert.True(t, afterWork.ShouldAutoStart, "breaks auto-start per AutoStartBreaks")

	afterBreak := NextSession(false, 1, settings)
	assert.False(t, afterBreak.ShouldAutoStart, "pomodoros follow AutoStartPomodoros")
}

// Every multiple of the cadence earns a long break, and nothing else does.
func TestNextSession_LongBreakCadence(t *testing.T) {
	for _, cadence := range []int{1, 2, 3, 4, 6} {
		settings := testutil.NewTestSettings(testutil.WithCadence(cadence))
		for ordinal := 1; ordinal <= 3*cadence; ordinal++ {
			d := NextSession(true, ordinal, settings)
			assert.Equal(t, ordinal%cadence == 0, d.IsLongBreak,
				"cadence %d, ordinal %d", cadence, ordinal)
		}
	}
}
