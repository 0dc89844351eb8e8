package config

import "github.com/philipp01105/bridgelog/sink"

const (
	// DefaultResource is the resource name looked up when none is given
	DefaultResource = "bridgelog.properties"
	// DefaultPrefix is the key prefix used when none is given
	DefaultPrefix = "bridgelog"
)

// Options controls how a Store is loaded
type Options struct {
	// Resource is the name of the configuration resource
	Resource string
	// Prefix is prepended, with a dot, to every recognized key
	Prefix string
	// ContextLoader is searched first; nil skips it
	ContextLoader ResourceLoader
	// SystemLoader is searched when ContextLoader has nothing (default: SystemLoader())
	SystemLoader ResourceLoader
	// Overrides take precedence over the resource (default: EnvOverrides)
	Overrides OverrideSource
	// Diagnostics receives the bootstrap lines written during load (default: sink.Discard)
	Diagnostics sink.Sink
}

// Option configures Options
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		Resource:    DefaultResource,
		Prefix:      DefaultPrefix,
		Overrides:   EnvOverrides{},
		Diagnostics: sink.Discard,
	}
}

// WithResource sets the configuration resource name
func WithResource(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.Resource = name
		}
	}
}

// WithPrefix sets the key prefix
func WithPrefix(prefix string) Option {
	return func(o *Options) {
		if prefix != "" {
			o.Prefix = prefix
		}
	}
}

// WithContextLoader sets the loader searched first
func WithContextLoader(l ResourceLoader) Option {
	return func(o *Options) {
		o.ContextLoader = l
	}
}

// WithSystemLoader replaces the fallback loader
func WithSystemLoader(l ResourceLoader) Option {
	return func(o *Options) {
		o.SystemLoader = l
	}
}

// WithOverrides replaces the override source. A nil source disables overrides.
func WithOverrides(src OverrideSource) Option {
	return func(o *Options) {
		o.Overrides = src
	}
}

// WithDiagnostics sets the sink that receives bootstrap diagnostics
func WithDiagnostics(s sink.Sink) Option {
	return func(o *Options) {
		if s != nil {
			o.Diagnostics = s
		}
	}
}
