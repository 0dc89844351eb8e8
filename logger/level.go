package logger

import "github.com/philipp01105/bridgelog/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	AllLevel   = core.AllLevel
	TraceLevel = core.TraceLevel
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
	OffLevel   = core.OffLevel
)

// ParseLevel converts a level keyword to a Level, falling back to
// InfoLevel for anything it does not recognize.
func ParseLevel(s string) Level {
	level, _ := core.ParseLevel(s)
	return level
}
