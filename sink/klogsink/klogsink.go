// Package klogsink forwards bridgelog calls to klog.
package klogsink

import (
	"k8s.io/klog/v2"

	"github.com/philipp01105/bridgelog/core"
	"github.com/philipp01105/bridgelog/sink"
)

// callDepth skips the sink method itself and the logger frames above
// it, so klog reports the file and line of the logging call.
const callDepth = sink.CallerDepth + 1

var _ sink.Sink = Sink{}

// Sink writes through klog's structured InfoS/ErrorS calls with the
// attribution source as a "source" key.
type Sink struct{}

// New creates a klog sink. klog itself is configured through its own
// flags and klog.SetOutput.
func New() Sink {
	return Sink{}
}

func keysAndValues(source *core.Source) []interface{} {
	if source == nil {
		return nil
	}
	return []interface{}{"source", source.Name}
}

// LogInfo implements sink.Sink
func (Sink) LogInfo(source *core.Source, msg string) {
	klog.InfoSDepth(callDepth, msg, keysAndValues(source)...)
}

// LogError implements sink.Sink
func (Sink) LogError(source *core.Source, msg string) {
	klog.ErrorSDepth(callDepth, nil, msg, keysAndValues(source)...)
}

// LogErr implements sink.Sink
func (Sink) LogErr(err error) {
	if err == nil {
		return
	}
	klog.ErrorSDepth(callDepth, err, "reported error")
}
