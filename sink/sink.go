package sink

import "github.com/philipp01105/bridgelog/core"

// CallerDepth is the number of frames between a logging call and the
// Sink method it ends in: the exported Logger method and its dispatch.
// Sinks that record the caller skip CallerDepth frames above their own.
const CallerDepth = 2

// Sink is the host diagnostic outlet a logger forwards to. Loggers call
// every method exactly CallerDepth frames below the logging call.
type Sink interface {
	// LogInfo emits msg on the informational channel
	LogInfo(source *core.Source, msg string)

	// LogError emits msg on the error channel
	LogError(source *core.Source, msg string)

	// LogErr reports err on its own, after the message it belongs to
	LogErr(err error)
}

// Discard is a Sink that drops every call
var Discard Sink = discard{}

type discard struct{}

func (discard) LogInfo(*core.Source, string)  {}
func (discard) LogError(*core.Source, string) {}
func (discard) LogErr(error)                  {}
