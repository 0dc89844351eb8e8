package logger

import (
	"sync"

	"github.com/philipp01105/bridgelog/config"
	"github.com/philipp01105/bridgelog/sink"
)

var (
	defaultFactory *Factory
	defaultMu      sync.RWMutex
)

// Default returns the default factory, building it on first use. It
// reads its bootstrap settings from the environment, loads the
// process-wide config.Default store and writes to stderr.
func Default() *Factory {
	defaultMu.RLock()
	f := defaultFactory
	defaultMu.RUnlock()
	if f != nil {
		return f
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultFactory == nil {
		defaultFactory = newDefaultFactory()
	}
	return defaultFactory
}

func newDefaultFactory() *Factory {
	console := sink.NewConsole(sink.ConsoleConfig{})

	var opts []config.Option
	settings, err := config.LoadSettings()
	if err != nil {
		console.LogError(nil, err.Error())
	} else {
		opts = settings.Options()
		if settings.Verbose {
			opts = append(opts, config.WithDiagnostics(console))
		}
	}

	return NewBuilder().
		WithStore(config.Default(opts...)).
		WithSink(console).
		Build()
}

// SetDefault sets the default factory
func SetDefault(f *Factory) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultFactory = f
}

// Get returns the logger for name from the default factory
func Get(name string) *Logger {
	return Default().Logger(name)
}

// For returns the logger named after the type of v from the default
// factory
func For(v any) *Logger {
	return Default().LoggerFor(v)
}
