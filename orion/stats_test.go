package orion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameTimesRecord(t *testing.T) {
	var times FrameTimes

	report := false
	for idx := range 60 {
		d := 16 * time.Millisecond
		if idx == 10 {
			d = 40 * time.Millisecond
		}

		report = times.Record(d)
		if idx < 59 {
			assert.False(t, report)
		}
	}

	assert.True(t, report)
	assert.EqualValues(t, 60, times.FrameCount)
	assert.Equal(t, 16*time.Millisecond, times.Delta)
	assert.Equal(t, 40*time.Millisecond, times.MaxDuration)
	assert.InDelta(t, 62.5, times.FPS(), 1.0)
}

func TestFrameTimesRecordSeconds(t *testing.T) {
	var times FrameTimes

	times.RecordSeconds(0.016)

	assert.Equal(t, 16*time.Millisecond, times.Delta)
	assert.InDelta(t, 62.5, times.FPS(), 0.001)
}

func TestFrameTimesEmpty(t *testing.T) {
	var times FrameTimes
	assert.Equal(t, 0.0, times.FPS())
}
