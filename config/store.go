package config

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/philipp01105/bridgelog/sink"
)

// Store holds the loaded configuration. It is immutable after Load and
// safe for concurrent use.
type Store struct {
	prefix      string
	values      map[string]string
	overrides   OverrideSource
	location    string
	showLogName bool
	showLevel   bool
}

// Load builds a Store. It never fails: a missing or broken resource
// leaves the store with built-in defaults and is reported to the
// diagnostics sink.
func Load(opts ...Option) *Store {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.SystemLoader == nil {
		o.SystemLoader = SystemLoader()
	}

	s := &Store{
		prefix:    o.Prefix,
		values:    make(map[string]string),
		overrides: o.Overrides,
	}
	s.load(o)

	s.showLogName = s.GetBool(s.Key("showLogName"), true)
	o.Diagnostics.LogInfo(nil, "Show log-name: "+strconv.FormatBool(s.showLogName))

	s.showLevel = s.GetBool(s.Key("showLevel"), false)
	o.Diagnostics.LogInfo(nil, "Show level: "+strconv.FormatBool(s.showLevel))

	return s
}

func (s *Store) load(o Options) {
	diag := o.Diagnostics

	rc, location, err := ChainLoader{o.ContextLoader, o.SystemLoader}.Open(o.Resource)
	if errors.Is(err, ErrResourceNotFound) {
		diag.LogError(nil, "Missing: "+o.Resource)
		return
	}
	if err != nil {
		diag.LogError(nil, "Failed to load: "+o.Resource)
		diag.LogErr(err)
		return
	}
	defer rc.Close()

	diag.LogInfo(nil, "Reading "+o.Resource+": "+location)
	values, err := parseResource(o.Resource, rc)
	if err != nil {
		diag.LogError(nil, "Failed to load: "+o.Resource)
		diag.LogErr(err)
		return
	}

	s.values = values
	s.location = location
	diag.LogInfo(nil, "Configuration: "+s.describe())
}

// describe renders the loaded values as {k=v, k=v} in key order
func (s *Store) describe() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range s.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(s.values[k])
	}
	b.WriteByte('}')
	return b.String()
}

// Key returns the full key for a suffix under the store's prefix
func (s *Store) Key(suffix string) string {
	return s.prefix + "." + suffix
}

// Prefix returns the key prefix
func (s *Store) Prefix() string {
	return s.prefix
}

// Location returns where the resource was read from, or "" when none was loaded
func (s *Store) Location() string {
	return s.location
}

// Keys returns the keys read from the resource, sorted
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the override for key if one is set, else the resource
// value. An override source that cannot be queried counts as unset.
func (s *Store) Get(key string) (string, bool) {
	if s.overrides != nil {
		if v, ok := safeLookup(s.overrides, key); ok {
			return v, true
		}
	}
	v, ok := s.values[key]
	return v, ok
}

// GetBool is Get coerced to a bool. def is returned when the key is
// absent or its value is not a boolean.
func (s *Store) GetBool(key string, def bool) bool {
	v, ok := s.Get(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(v)))
	if err != nil {
		return def
	}
	return b
}

// ShowLogName reports whether a logger name is prefixed to messages of
// loggers that have no attribution source
func (s *Store) ShowLogName() bool {
	return s.showLogName
}

// ShowLevel reports whether the level label is prefixed to messages
func (s *Store) ShowLevel() bool {
	return s.showLevel
}

var (
	defaultStore     *Store
	defaultStoreOnce sync.Once
)

// Default returns the process-wide Store, loading it with opts on first
// use. Later calls return the same Store and ignore opts.
func Default(opts ...Option) *Store {
	defaultStoreOnce.Do(func() {
		defaultStore = Load(opts...)
	})
	return defaultStore
}

// Empty returns a Store with no resource and no overrides, useful as
// an explicit all-defaults configuration.
func Empty() *Store {
	return Load(
		WithContextLoader(nil),
		WithSystemLoader(DirLoader(nil)),
		WithOverrides(nil),
		WithDiagnostics(sink.Discard),
	)
}
