package sink

import (
	"io"

	"go.uber.org/multierr"

	"github.com/philipp01105/bridgelog/core"
)

// Multi sends every call to multiple sinks
type Multi struct {
	sinks []Sink
}

// NewMulti creates a new multi-sink. Nil children are skipped.
func NewMulti(sinks ...Sink) *Multi {
	m := &Multi{sinks: make([]Sink, 0, len(sinks))}
	for _, s := range sinks {
		if s != nil {
			m.sinks = append(m.sinks, s)
		}
	}
	return m
}

// LogInfo forwards to every child
func (m *Multi) LogInfo(source *core.Source, msg string) {
	for _, s := range m.sinks {
		s.LogInfo(source, msg)
	}
}

// LogError forwards to every child
func (m *Multi) LogError(source *core.Source, msg string) {
	for _, s := range m.sinks {
		s.LogError(source, msg)
	}
}

// LogErr forwards to every child
func (m *Multi) LogErr(err error) {
	for _, s := range m.sinks {
		s.LogErr(err)
	}
}

// Close closes every child that is an io.Closer and returns the combined errors
func (m *Multi) Close() error {
	var err error
	for _, s := range m.sinks {
		if c, ok := s.(io.Closer); ok {
			err = multierr.Append(err, c.Close())
		}
	}
	return err
}
