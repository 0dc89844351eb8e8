// Package sinktest provides a Sink that records calls for tests.
package sinktest

import (
	"sync"

	"github.com/philipp01105/bridgelog/core"
	"github.com/philipp01105/bridgelog/sink"
)

// Kind identifies which Sink entry point a Call went through
type Kind int

const (
	// Info is a LogInfo call
	Info Kind = iota
	// Error is a LogError call
	Error
	// Err is a LogErr call
	Err
)

// Call is one recorded Sink invocation
type Call struct {
	Kind    Kind
	Source  *core.Source
	Message string
	Err     error
}

var _ sink.Sink = (*Recorder)(nil)

// Recorder is a Sink that keeps every call in memory. It is safe for
// concurrent use.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

// New creates an empty Recorder
func New() *Recorder {
	return &Recorder{}
}

func (r *Recorder) add(c Call) {
	r.mu.Lock()
	r.calls = append(r.calls, c)
	r.mu.Unlock()
}

// LogInfo records an informational call
func (r *Recorder) LogInfo(source *core.Source, msg string) {
	r.add(Call{Kind: Info, Source: source, Message: msg})
}

// LogError records an error call
func (r *Recorder) LogError(source *core.Source, msg string) {
	r.add(Call{Kind: Error, Source: source, Message: msg})
}

// LogErr records a reported error
func (r *Recorder) LogErr(err error) {
	r.add(Call{Kind: Err, Err: err})
}

// Calls returns a copy of every recorded call, oldest first
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Len returns the number of recorded calls
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// Messages returns the message of every LogInfo and LogError call
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, c := range r.calls {
		if c.Kind != Err {
			out = append(out, c.Message)
		}
	}
	return out
}

// Reset forgets every recorded call
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.mu.Unlock()
}
