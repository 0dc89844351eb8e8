// Package logradapter lets code written against go-logr/logr log through
// a bridgelog Factory.
//
// Verbosity maps onto levels: V(0) is INFO, V(1) is DEBUG and anything
// higher is TRACE. Error always logs at ERROR and reports the error to
// the sink after the message. WithName appends a dotted segment to the
// logger name, so names stay in the hierarchy the level configuration
// resolves against.
package logradapter

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/philipp01105/bridgelog/core"
	"github.com/philipp01105/bridgelog/logger"
)

const missingValue = "(MISSING)"

// Sink is a logr.LogSink backed by a bridgelog Logger
type Sink struct {
	factory *logger.Factory
	logger  *logger.Logger
	values  []core.Field
}

var _ logr.LogSink = (*Sink)(nil)

// New returns a logr.Logger writing to the logger called name in f
func New(f *logger.Factory, name string) logr.Logger {
	return logr.New(NewSink(f, name))
}

// NewSink creates the LogSink behind New
func NewSink(f *logger.Factory, name string) *Sink {
	return &Sink{factory: f, logger: f.Logger(name)}
}

// Init implements logr.LogSink
func (s *Sink) Init(logr.RuntimeInfo) {}

// Enabled reports whether V(level) calls are emitted
func (s *Sink) Enabled(level int) bool {
	return s.logger.IsEnabled(VerbosityToCore(level))
}

// Info logs msg at the level V(level) maps to
func (s *Sink) Info(level int, msg string, keysAndValues ...any) {
	lvl := VerbosityToCore(level)
	if !s.logger.IsEnabled(lvl) {
		return
	}
	s.logger.LogErr(lvl, s.render(msg, keysAndValues), nil)
}

// Error logs msg at ERROR and reports err
func (s *Sink) Error(err error, msg string, keysAndValues ...any) {
	if !s.logger.IsErrorEnabled() {
		return
	}
	s.logger.LogErr(core.ErrorLevel, s.render(msg, keysAndValues), err)
}

// WithValues returns a Sink that adds keysAndValues to every message
func (s *Sink) WithValues(keysAndValues ...any) logr.LogSink {
	values := make([]core.Field, len(s.values), len(s.values)+len(keysAndValues)/2+1)
	copy(values, s.values)
	return &Sink{
		factory: s.factory,
		logger:  s.logger,
		values:  appendPairs(values, keysAndValues),
	}
}

// WithName returns a Sink for the child logger name.<name>
func (s *Sink) WithName(name string) logr.LogSink {
	child := name
	if parent := s.logger.Name(); parent != "" {
		child = parent + "." + name
	}
	return &Sink{
		factory: s.factory,
		logger:  s.factory.Logger(child),
		values:  s.values,
	}
}

func (s *Sink) render(msg string, keysAndValues []any) string {
	if len(keysAndValues) == 0 {
		return core.AppendFields(msg, s.values)
	}
	fields := make([]core.Field, len(s.values), len(s.values)+len(keysAndValues)/2+1)
	copy(fields, s.values)
	return core.AppendFields(msg, appendPairs(fields, keysAndValues))
}

// VerbosityToCore converts a logr verbosity to a core.Level
func VerbosityToCore(v int) core.Level {
	switch {
	case v <= 0:
		return core.InfoLevel
	case v == 1:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

func appendPairs(fields []core.Field, kv []any) []core.Field {
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		if i+1 >= len(kv) {
			fields = append(fields, core.Field{Key: key, Type: core.StringType, Str: missingValue})
			break
		}
		fields = append(fields, core.FieldOf(key, kv[i+1]))
	}
	return fields
}
