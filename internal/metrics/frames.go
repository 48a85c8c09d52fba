// Frame counters and image-difference metrics for the live preview
package metrics

import (
	"fmt"
	"sync/atomic"
	"time"
)

// FrameStats counts redraw requests and their outcomes. Safe for concurrent use.
type FrameStats struct {
	requests  atomic.Int64
	frames    atomic.Int64
	skipped   atomic.Int64
	lastFrame atomic.Int64
}

// Snapshot is a point-in-time copy of FrameStats.
type Snapshot struct {
	Requests  int64
	Frames    int64
	Skipped   int64
	LastFrame time.Duration
}

func (s Snapshot) String() string {
	return fmt.Sprintf("requests=%d frames=%d skipped=%d last=%s", s.Requests, s.Frames, s.Skipped, s.LastFrame)
}

func (fs *FrameStats) RecordRequest() { fs.requests.Add(1) }
func (fs *FrameStats) RecordSkipped() { fs.skipped.Add(1) }

// RecordFrame counts a completed draw and its duration.
func (fs *FrameStats) RecordFrame(d time.Duration) {
	fs.frames.Add(1)
	fs.lastFrame.Store(int64(d))
}

func (fs *FrameStats) Snapshot() Snapshot {
	return Snapshot{
		Requests:  fs.requests.Load(),
		Frames:    fs.frames.Load(),
		Skipped:   fs.skipped.Load(),
		LastFrame: time.Duration(fs.lastFrame.Load()),
	}
}

func (fs *FrameStats) Reset() {
	fs.requests.Store(0)
	fs.frames.Store(0)
	fs.skipped.Store(0)
	fs.lastFrame.Store(0)
}
