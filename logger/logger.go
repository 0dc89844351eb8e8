package logger

import (
	"strings"

	"github.com/philipp01105/bridgelog/core"
	"github.com/philipp01105/bridgelog/formatter"
	"github.com/philipp01105/bridgelog/sink"
)

const nameSeparator = " - "

// Logger is a named logger bound to one sink. Its threshold and display
// flags are fixed at construction, so it is safe for concurrent use
// without locking.
type Logger struct {
	name      string
	threshold core.Level

	// source is what calls are attributed to; nil defers to the sink's
	// ambient attribution
	source *core.Source
	// resolved is set when a source was found for name, even if it is
	// then withheld as ambient
	resolved bool

	showLogName bool
	showLevel   bool
	sink        sink.Sink
}

// Name returns the dotted name of the logger
func (l *Logger) Name() string {
	return l.name
}

// Level returns the effective threshold of the logger
func (l *Logger) Level() core.Level {
	return l.threshold
}

// Source returns the source calls are attributed to, nil when the sink
// chooses.
func (l *Logger) Source() *core.Source {
	return l.source
}

// IsEnabled reports whether a call at level would be emitted. Only the
// five call levels can be enabled; ALL and OFF never are.
func (l *Logger) IsEnabled(level core.Level) bool {
	if level < core.TraceLevel || level > core.ErrorLevel {
		return false
	}
	return level.Enabled(l.threshold)
}

// Log formats and emits a message at level. A trailing error argument
// that has no placeholder is reported separately.
func (l *Logger) Log(level core.Level, format string, args ...interface{}) {
	if !l.IsEnabled(level) {
		return
	}
	t := formatter.Format(format, args...)
	l.emit(level, t.Message, t.Err)
}

// LogErr emits msg unformatted at level and reports err after it.
func (l *Logger) LogErr(level core.Level, msg string, err error) {
	if !l.IsEnabled(level) {
		return
	}
	l.emit(level, msg, err)
}

// LogErrf formats against every one of args and reports err after the
// message. An error among args is rendered as text, never extracted.
func (l *Logger) LogErrf(level core.Level, err error, format string, args ...interface{}) {
	if !l.IsEnabled(level) {
		return
	}
	t := formatter.FormatWithError(format, args, err)
	l.emit(level, t.Message, t.Err)
}

// emit renders the final text and forwards it. Callers have already
// checked the level. Exported logging methods must call emit directly:
// sink methods run sink.CallerDepth frames below the logging call.
func (l *Logger) emit(level core.Level, msg string, err error) {
	if l.sink == nil {
		return
	}
	text := l.text(level, msg)
	if core.ChannelFor(level) == core.ErrorChannel {
		l.sink.LogError(l.source, text)
	} else {
		l.sink.LogInfo(l.source, text)
	}
	if !core.IsNilError(err) {
		l.sink.LogErr(err)
	}
}

func (l *Logger) text(level core.Level, msg string) string {
	withLevel := l.showLevel
	withName := l.showLogName && !l.resolved
	if !withLevel && !withName {
		return msg
	}

	var b strings.Builder
	b.Grow(len(l.name) + len(msg) + 8)
	if withLevel {
		b.WriteString(level.String())
		b.WriteByte(' ')
	}
	if withName {
		b.WriteString(l.name)
		b.WriteString(nameSeparator)
	}
	b.WriteString(msg)
	return b.String()
}

// IsTraceEnabled reports whether Trace calls are emitted
func (l *Logger) IsTraceEnabled() bool {
	return core.TraceLevel.Enabled(l.threshold)
}

// Trace logs a trace message
func (l *Logger) Trace(msg string) {
	if !core.TraceLevel.Enabled(l.threshold) {
		return
	}
	l.emit(core.TraceLevel, msg, nil)
}

// Tracef logs a trace message with {} placeholders
func (l *Logger) Tracef(format string, args ...interface{}) {
	if !core.TraceLevel.Enabled(l.threshold) {
		return
	}
	t := formatter.Format(format, args...)
	l.emit(core.TraceLevel, t.Message, t.Err)
}

// TraceErr logs a trace message and reports err
func (l *Logger) TraceErr(msg string, err error) {
	if !core.TraceLevel.Enabled(l.threshold) {
		return
	}
	l.emit(core.TraceLevel, msg, err)
}

// IsDebugEnabled reports whether Debug calls are emitted
func (l *Logger) IsDebugEnabled() bool {
	return core.DebugLevel.Enabled(l.threshold)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	if !core.DebugLevel.Enabled(l.threshold) {
		return
	}
	l.emit(core.DebugLevel, msg, nil)
}

// Debugf logs a debug message with {} placeholders
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !core.DebugLevel.Enabled(l.threshold) {
		return
	}
	t := formatter.Format(format, args...)
	l.emit(core.DebugLevel, t.Message, t.Err)
}

// DebugErr logs a debug message and reports err
func (l *Logger) DebugErr(msg string, err error) {
	if !core.DebugLevel.Enabled(l.threshold) {
		return
	}
	l.emit(core.DebugLevel, msg, err)
}

// IsInfoEnabled reports whether Info calls are emitted
func (l *Logger) IsInfoEnabled() bool {
	return core.InfoLevel.Enabled(l.threshold)
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	if !core.InfoLevel.Enabled(l.threshold) {
		return
	}
	l.emit(core.InfoLevel, msg, nil)
}

// Infof logs an info message with {} placeholders
func (l *Logger) Infof(format string, args ...interface{}) {
	if !core.InfoLevel.Enabled(l.threshold) {
		return
	}
	t := formatter.Format(format, args...)
	l.emit(core.InfoLevel, t.Message, t.Err)
}

// InfoErr logs an info message and reports err
func (l *Logger) InfoErr(msg string, err error) {
	if !core.InfoLevel.Enabled(l.threshold) {
		return
	}
	l.emit(core.InfoLevel, msg, err)
}

// IsWarnEnabled reports whether Warn calls are emitted
func (l *Logger) IsWarnEnabled() bool {
	return core.WarnLevel.Enabled(l.threshold)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) {
	if !core.WarnLevel.Enabled(l.threshold) {
		return
	}
	l.emit(core.WarnLevel, msg, nil)
}

// Warnf logs a warning message with {} placeholders
func (l *Logger) Warnf(format string, args ...interface{}) {
	if !core.WarnLevel.Enabled(l.threshold) {
		return
	}
	t := formatter.Format(format, args...)
	l.emit(core.WarnLevel, t.Message, t.Err)
}

// WarnErr logs a warning message and reports err
func (l *Logger) WarnErr(msg string, err error) {
	if !core.WarnLevel.Enabled(l.threshold) {
		return
	}
	l.emit(core.WarnLevel, msg, err)
}

// IsErrorEnabled reports whether Error calls are emitted
func (l *Logger) IsErrorEnabled() bool {
	return core.ErrorLevel.Enabled(l.threshold)
}

// Error logs an error message on the sink's error channel
func (l *Logger) Error(msg string) {
	if !core.ErrorLevel.Enabled(l.threshold) {
		return
	}
	l.emit(core.ErrorLevel, msg, nil)
}

// Errorf logs an error message with {} placeholders
func (l *Logger) Errorf(format string, args ...interface{}) {
	if !core.ErrorLevel.Enabled(l.threshold) {
		return
	}
	t := formatter.Format(format, args...)
	l.emit(core.ErrorLevel, t.Message, t.Err)
}

// ErrorErr logs an error message and reports err
func (l *Logger) ErrorErr(msg string, err error) {
	if !core.ErrorLevel.Enabled(l.threshold) {
		return
	}
	l.emit(core.ErrorLevel, msg, err)
}
