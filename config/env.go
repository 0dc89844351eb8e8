package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings are the bootstrap settings read from the environment before
// the configuration resource is located.
type Settings struct {
	ConfigFile string   `env:"BRIDGELOG_CONFIG_FILE" envDefault:"bridgelog.properties"`
	ConfigPath []string `env:"BRIDGELOG_CONFIG_PATH" envSeparator:":"`
	Prefix     string   `env:"BRIDGELOG_PREFIX" envDefault:"bridgelog"`
	Verbose    bool     `env:"BRIDGELOG_VERBOSE"`
}

// LoadSettings parses Settings from the process environment.
func LoadSettings() (*Settings, error) {
	var settings Settings
	if err := env.Parse(&settings); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEnvSettingsNotValid, err.Error())
	}
	return &settings, nil
}

// Options converts the settings into load options.
func (s *Settings) Options() []Option {
	opts := []Option{
		WithResource(s.ConfigFile),
		WithPrefix(s.Prefix),
	}
	if len(s.ConfigPath) > 0 {
		opts = append(opts, WithContextLoader(DirLoader(s.ConfigPath)))
	}
	return opts
}
