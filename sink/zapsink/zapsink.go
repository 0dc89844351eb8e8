// Package zapsink forwards bridgelog calls to a zap.Logger.
package zapsink

import (
	"go.uber.org/zap"

	"github.com/philipp01105/bridgelog/core"
	"github.com/philipp01105/bridgelog/sink"
)

// SourceKey is the field name carrying the attribution source
const SourceKey = "source"

var _ sink.Sink = (*Sink)(nil)

// Sink forwards the informational channel to Info, the error channel to
// Error and reported errors to Error with a zap.Error field.
type Sink struct {
	log *zap.Logger
}

// New wraps l. A nil l yields a no-op sink. With zap.AddCaller the
// reported caller is the bridgelog logging call, not this package.
func New(l *zap.Logger) *Sink {
	if l == nil {
		l = zap.NewNop()
	}
	return &Sink{log: l.WithOptions(zap.AddCallerSkip(sink.CallerDepth + 1))}
}

func sourceFields(source *core.Source) []zap.Field {
	if source == nil {
		return nil
	}
	return []zap.Field{zap.String(SourceKey, source.Name)}
}

// LogInfo implements sink.Sink
func (s *Sink) LogInfo(source *core.Source, msg string) {
	s.log.Info(msg, sourceFields(source)...)
}

// LogError implements sink.Sink
func (s *Sink) LogError(source *core.Source, msg string) {
	s.log.Error(msg, sourceFields(source)...)
}

// LogErr implements sink.Sink
func (s *Sink) LogErr(err error) {
	if err == nil {
		return
	}
	s.log.Error(err.Error(), zap.Error(err))
}

// Close flushes any buffered zap output
func (s *Sink) Close() error {
	return s.log.Sync()
}
