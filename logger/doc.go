// Package logger is the public API of bridgelog. Most users only need to
// import this package.
//
// Loggers come from a Factory and are cached by name, so asking for the
// same name twice returns the same *Logger. A Logger is immutable after
// construction: its threshold is resolved once from the configuration
// store (see config.Store.EffectiveLevel) and never re-read.
//
// The package keeps a default Factory, built on first use from the
// environment and the process-wide configuration store, writing to
// stderr. Simple programs can log without any setup:
//
//	log := logger.Get("org.example.billing")
//	log.Infof("charged {} for {}", amount, customer)
//
// For custom wiring, use the Builder:
//
//	factory := logger.NewBuilder().
//	    WithStore(config.Load(config.WithResource("app.properties"))).
//	    WithSink(zapsink.New(zl)).
//	    WithResolver(registry).
//	    WithAmbient(attribution.Implements(reflect.TypeFor[Screen]())).
//	    Build()
//
// Messages use {} placeholders. When the last argument is an error and
// has no placeholder of its own, it is not rendered into the text but
// reported to the sink after the message:
//
//	log.Warnf("retrying {}", host, err)
//
// Level checks happen before any formatting, so disabled calls never
// evaluate their arguments. IsDebugEnabled and friends use the same
// check for guarding expensive argument construction.
package logger
