package core

import "strings"

// Level represents the severity threshold of a logger or the severity of a call
type Level int8

const (
	// AllLevel enables every call; only valid as a threshold
	AllLevel Level = iota - 1
	// TraceLevel for very fine grained diagnostics
	TraceLevel
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// OffLevel disables every call; only valid as a threshold
	OffLevel
)

// String returns the label of the level
func (l Level) String() string {
	switch l {
	case AllLevel:
		return "ALL"
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case OffLevel:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// Enabled reports whether a call at level l passes the given threshold.
func (l Level) Enabled(threshold Level) bool {
	return l >= threshold
}

// ParseLevel converts a level keyword to a Level. Matching is
// case-insensitive and ignores surrounding whitespace. The second return
// value is false when the keyword is not recognized.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return AllLevel, true
	case "trace":
		return TraceLevel, true
	case "debug":
		return DebugLevel, true
	case "info":
		return InfoLevel, true
	case "warn":
		return WarnLevel, true
	case "error":
		return ErrorLevel, true
	case "off":
		return OffLevel, true
	default:
		return InfoLevel, false
	}
}

// Levels returns the five levels a call can be made at, least severe first.
func Levels() []Level {
	return []Level{TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel}
}
