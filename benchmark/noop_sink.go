package benchmark

import (
	"sync/atomic"

	"github.com/philipp01105/bridgelog/core"
)

// noopSink counts calls and drops them
type noopSink struct {
	calls atomic.Uint64
}

func (s *noopSink) LogInfo(_ *core.Source, msg string) {
	_ = len(msg)
	s.calls.Add(1)
}

func (s *noopSink) LogError(_ *core.Source, msg string) {
	_ = len(msg)
	s.calls.Add(1)
}

func (s *noopSink) LogErr(error) {
	s.calls.Add(1)
}
