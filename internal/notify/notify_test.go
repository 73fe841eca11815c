package notify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBell_WritesBellAndText(t *testing.T) {
	var buf bytes.Buffer
	NewBell(&buf).Notify("Break time!", "Take a short break.")

	assert.Equal(t, "\aBreak time! Take a short break.\n", buf.String())
}

func TestBell_NilWriterIsSilent(t *testing.T) {
	assert.NotPanics(t, func() {
		(&Bell{}).Notify("Break time!", "Take a short break.")
	})
}
