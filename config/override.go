package config

import (
	"os"
	"strings"
)

// OverrideSource supplies process-wide values that take precedence over
// the loaded resource.
type OverrideSource interface {
	Lookup(key string) (string, bool)
}

// EnvOverrides looks keys up in the process environment, first under the
// exact key and then under its upper-snake spelling, so
// "bridgelog.logger.org.example" is also found as BRIDGELOG_LOGGER_ORG_EXAMPLE.
type EnvOverrides struct{}

// Lookup implements OverrideSource
func (EnvOverrides) Lookup(key string) (string, bool) {
	if v, ok := os.LookupEnv(key); ok {
		return v, true
	}
	return os.LookupEnv(EnvName(key))
}

// EnvName returns the upper-snake environment spelling of a dotted key.
func EnvName(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, key)
}

// MapOverrides is an in-memory OverrideSource, the equivalent of a set of
// system properties handed over by an embedding host.
type MapOverrides map[string]string

// Lookup implements OverrideSource
func (m MapOverrides) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// ChainOverrides consults each source in order; the first hit wins.
type ChainOverrides []OverrideSource

// Lookup implements OverrideSource
func (c ChainOverrides) Lookup(key string) (string, bool) {
	for _, src := range c {
		if v, ok := safeLookup(src, key); ok {
			return v, true
		}
	}
	return "", false
}

// safeLookup queries src and treats a panicking source as having no value.
func safeLookup(src OverrideSource, key string) (v string, ok bool) {
	if src == nil {
		return "", false
	}
	defer func() {
		if recover() != nil {
			v, ok = "", false
		}
	}()
	return src.Lookup(key)
}
