// Package sink provides the Sink interface that bridgelog forwards every
// enabled call to, and its built-in implementations.
//
// A host sink knows two channels, informational and error, plus a third
// entry point that reports an error value on its own. Each call carries
// an optional attribution Source; a nil Source asks the sink to use
// whatever ambient attribution it has.
//
// Every Sink call is synchronous. Sinks never return errors to the
// caller: a write failure is counted in Stats and otherwise dropped, so
// logging can never take the host down.
//
// Built-in sinks:
//
//   - Console writes one formatted line per call to any io.Writer
//     (default: stderr).
//   - Multi fans a call out to several child sinks.
//   - zapsink, hclogsink and klogsink forward to the zap, go-hclog and
//     klog loggers respectively.
//   - sinktest.Recorder records calls for assertions in tests.
package sink
