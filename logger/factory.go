package logger

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/philipp01105/bridgelog/attribution"
	"github.com/philipp01105/bridgelog/config"
	"github.com/philipp01105/bridgelog/sink"
)

// Factory creates and caches Loggers by name. All Loggers of a Factory
// share its Store, Sink, Resolver and ambient Predicate.
type Factory struct {
	store    *config.Store
	sink     sink.Sink
	resolver attribution.Resolver
	ambient  attribution.Predicate

	loggers sync.Map // map[string]*Logger
}

// Builder provides a fluent API for building Factory instances
type Builder struct {
	store    *config.Store
	sink     sink.Sink
	resolver attribution.Resolver
	ambient  attribution.Predicate
}

// NewBuilder creates a new factory builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithStore sets the configuration store. Without one the process-wide
// config.Default store is used.
func (b *Builder) WithStore(s *config.Store) *Builder {
	b.store = s
	return b
}

// WithSink sets the sink every logger forwards to. Without one loggers
// write to a console sink on stderr.
func (b *Builder) WithSink(s sink.Sink) *Builder {
	b.sink = s
	return b
}

// WithResolver sets how logger names are mapped to sources
func (b *Builder) WithResolver(r attribution.Resolver) *Builder {
	b.resolver = r
	return b
}

// WithAmbient sets which sources are withheld in favor of the sink's
// ambient attribution
func (b *Builder) WithAmbient(p attribution.Predicate) *Builder {
	b.ambient = p
	return b
}

// Build creates the Factory instance
func (b *Builder) Build() *Factory {
	f := &Factory{
		store:    b.store,
		sink:     b.sink,
		resolver: b.resolver,
		ambient:  b.ambient,
	}
	if f.store == nil {
		f.store = config.Default()
	}
	if f.sink == nil {
		f.sink = sink.NewConsole(sink.ConsoleConfig{})
	}
	if f.resolver == nil {
		f.resolver = attribution.Nop
	}
	if f.ambient == nil {
		f.ambient = attribution.Never
	}
	return f
}

// Store returns the configuration store of the factory
func (f *Factory) Store() *config.Store {
	return f.store
}

// Sink returns the sink loggers of the factory forward to
func (f *Factory) Sink() sink.Sink {
	return f.sink
}

// Logger returns the logger for name, creating it on first use. Every
// call with the same name returns the same *Logger.
func (f *Factory) Logger(name string) *Logger {
	if l, ok := f.loggers.Load(name); ok {
		return l.(*Logger)
	}
	l, _ := f.loggers.LoadOrStore(name, f.newLogger(name))
	return l.(*Logger)
}

// LoggerFor returns the logger named after the dotted type name of v.
// v may also be a reflect.Type.
func (f *Factory) LoggerFor(v any) *Logger {
	var name string
	if t, ok := v.(reflect.Type); ok {
		name = attribution.TypeName(t)
	} else {
		name = attribution.NameOf(v)
	}
	if name == "" {
		name = fmt.Sprintf("%T", v)
	}
	return f.Logger(name)
}

func (f *Factory) newLogger(name string) *Logger {
	l := &Logger{
		name:        name,
		threshold:   f.store.EffectiveLevel(name),
		showLogName: f.store.ShowLogName(),
		showLevel:   f.store.ShowLevel(),
		sink:        f.sink,
	}
	if src, ok := attribution.Resolve(f.resolver, name); ok {
		l.resolved = true
		if !attribution.IsAmbient(f.ambient, src) {
			l.source = src
		}
	}
	return l
}
