package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{-5, "00:00"},
		{59, "00:59"},
		{60, "01:00"},
		{1500, "25:00"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{3661, "1:01:01"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Clock(tt.seconds), "seconds=%d", tt.seconds)
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0m"},
		{45, "45s"},
		{300, "5m"},
		{1500, "25m"},
		{3600, "1h"},
		{7500, "2h 5m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSeconds(tt.seconds), "seconds=%d", tt.seconds)
	}
}

func TestHumanDate(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "Today", HumanDate(now))
	assert.Equal(t, "Yesterday", HumanDate(now.AddDate(0, 0, -1)))

	old := time.Date(2026, 1, 15, 12, 0, 0, 0, time.Local)
	assert.Equal(t, "Jan 15, 2026", HumanDate(old))
}

func TestHumanTimestamp(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "Just now", HumanTimestamp(now.Add(-30*time.Second)))
	assert.Equal(t, "5m ago", HumanTimestamp(now.Add(-5*time.Minute)))
	assert.Equal(t, "3h ago", HumanTimestamp(now.Add(-3*time.Hour)))
}

func TestRenderProgress(t *testing.T) {
	out := RenderProgress(0.5, 10)
	assert.Contains(t, out, "50%")
	assert.Contains(t, out, filledBlock)
	assert.Contains(t, out, emptyBlock)

	assert.Contains(t, RenderProgress(-1, 10), "  0%")
	assert.Contains(t, RenderProgress(2, 10), "100%")
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "TITLE"},
		[][]string{
			{"a1", "Write report"},
			{"b2", "Review"},
		},
	)
	lines := len(splitLines(out))
	assert.Equal(t, 4, lines, "header, separator, and one line per row")
	assert.Contains(t, out, "Write report")

	assert.Empty(t, RenderTable(nil, nil))
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, r := range s {
		if r == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
