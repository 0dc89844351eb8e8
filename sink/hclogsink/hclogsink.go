// Package hclogsink forwards bridgelog calls to a go-hclog Logger.
package hclogsink

import (
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/philipp01105/bridgelog/core"
	"github.com/philipp01105/bridgelog/sink"
)

var _ sink.Sink = (*Sink)(nil)

// Sink maps the attribution source onto hclog's logger name, so a call
// attributed to org.example.Widget is emitted by a sub-logger named
// after it. Named sub-loggers are built once per source name.
type Sink struct {
	log   hclog.Logger
	named sync.Map // map[string]hclog.Logger
}

// New wraps l. A nil l yields a no-op sink.
func New(l hclog.Logger) *Sink {
	if l == nil {
		l = hclog.NewNullLogger()
	}
	return &Sink{log: l}
}

func (s *Sink) loggerFor(source *core.Source) hclog.Logger {
	if source == nil || source.Name == "" {
		return s.log
	}
	if l, ok := s.named.Load(source.Name); ok {
		return l.(hclog.Logger)
	}
	l, _ := s.named.LoadOrStore(source.Name, s.log.Named(source.Name))
	return l.(hclog.Logger)
}

// LogInfo implements sink.Sink
func (s *Sink) LogInfo(source *core.Source, msg string) {
	s.loggerFor(source).Info(msg)
}

// LogError implements sink.Sink
func (s *Sink) LogError(source *core.Source, msg string) {
	s.loggerFor(source).Error(msg)
}

// LogErr implements sink.Sink
func (s *Sink) LogErr(err error) {
	if err == nil {
		return
	}
	s.log.Error(err.Error(), "error", err)
}
