package config

import (
	"strings"

	"github.com/philipp01105/bridgelog/core"
)

// LoggerKey returns the key that sets the level of the named logger
func (s *Store) LoggerKey(name string) string {
	return s.prefix + ".logger." + name
}

// LevelKey returns the key of the global level
func (s *Store) LevelKey() string {
	return s.Key("level")
}

// EffectiveLevel resolves the threshold of the named logger. The name is
// shortened one dotted segment at a time, most specific first; the first
// key holding a recognized level keyword wins. Unrecognized keywords are
// skipped. When no prefix matches, the global level applies, and INFO
// when that is unset or unrecognized too.
func (s *Store) EffectiveLevel(name string) core.Level {
	n := name
	for {
		if lvl, ok := s.levelAt(s.LoggerKey(n)); ok {
			return lvl
		}
		i := strings.LastIndexByte(n, '.')
		if i < 0 {
			break
		}
		n = n[:i]
	}

	if lvl, ok := s.levelAt(s.LevelKey()); ok {
		return lvl
	}
	return core.InfoLevel
}

func (s *Store) levelAt(key string) (core.Level, bool) {
	v, ok := s.Get(key)
	if !ok {
		return core.InfoLevel, false
	}
	return core.ParseLevel(v)
}
