package core

import "time"

// FrameThrottle limits a display-refresh driven callback to a target frame
// rate. Hosts call Ready on every refresh; it reports true at most once per
// frame interval and carries the leftover time into the next interval so the
// effective cadence does not drift.
type FrameThrottle struct {
	interval time.Duration
	last     time.Time
}

// NewFrameThrottle constructs a throttle targeting the given frames per second.
func NewFrameThrottle(fps int) *FrameThrottle {
	ft := &FrameThrottle{}
	ft.SetFPS(fps)
	return ft
}

// SetFPS changes the target rate. It is safe to call from the main loop.
func (f *FrameThrottle) SetFPS(fps int) {
	if fps <= 0 {
		fps = 60
	}
	f.interval = time.Second / time.Duration(fps)
}

// Interval reports the duration of one frame at the target rate.
func (f *FrameThrottle) Interval() time.Duration { return f.interval }

// Ready reports whether a frame should be processed at now. The first call
// always runs.
func (f *FrameThrottle) Ready(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
		return true
	}
	elapsed := now.Sub(f.last)
	if elapsed < f.interval {
		return false
	}
	f.last = now.Add(-(elapsed % f.interval))
	return true
}

// Reset forgets the last frame time so the next Ready call runs immediately.
func (f *FrameThrottle) Reset() { f.last = time.Time{} }
