package orion

import (
	"time"
)

// FrameTimes collects statistics over the durations of recent frames.
type FrameTimes struct {
	FrameCount      uint64
	AverageDuration time.Duration
	MaxDuration     time.Duration

	// Delta time to previous frame
	Delta time.Duration
}

// Record adds the duration of one frame. It returns true every 60 frames,
// which is a good moment to report the statistics.
func (t *FrameTimes) Record(d time.Duration) bool {
	const window = 64

	t.Delta = d
	t.MaxDuration = max(t.MaxDuration, d)

	if t.FrameCount < window/2 {
		t.AverageDuration = d
	} else {
		t.AverageDuration = ((window-1)*t.AverageDuration + d) / window
	}

	t.FrameCount += 1

	return t.FrameCount%60 == 0
}

// RecordSeconds is like Record for a duration given in seconds.
func (t *FrameTimes) RecordSeconds(seconds float64) bool {
	return t.Record(time.Duration(seconds * float64(time.Second)))
}

func (t *FrameTimes) FPS() float64 {
	if t.AverageDuration <= 0 {
		return 0
	}

	return 1.0 / t.AverageDuration.Seconds()
}
