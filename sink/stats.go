package sink

import (
	"sync/atomic"

	"github.com/philipp01105/bridgelog/core"
)

// Stats tracks sink statistics
type Stats struct {
	InfoTotal    uint64
	ErrorTotal   uint64
	ErrsTotal    uint64
	FailedWrites uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementChannel atomically increments the counter for a channel
func (s *Stats) IncrementChannel(ch core.Channel) {
	if ch == core.ErrorChannel {
		atomic.AddUint64(&s.ErrorTotal, 1)
		return
	}
	atomic.AddUint64(&s.InfoTotal, 1)
}

// IncrementErrs atomically increments the reported error counter
func (s *Stats) IncrementErrs() {
	atomic.AddUint64(&s.ErrsTotal, 1)
}

// IncrementFailed atomically increments the failed write counter
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.FailedWrites, 1)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Info   uint64
	Error  uint64
	Errs   uint64
	Failed uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Info:   atomic.LoadUint64(&s.InfoTotal),
		Error:  atomic.LoadUint64(&s.ErrorTotal),
		Errs:   atomic.LoadUint64(&s.ErrsTotal),
		Failed: atomic.LoadUint64(&s.FailedWrites),
	}
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.InfoTotal, 0)
	atomic.StoreUint64(&s.ErrorTotal, 0)
	atomic.StoreUint64(&s.ErrsTotal, 0)
	atomic.StoreUint64(&s.FailedWrites, 0)
}
