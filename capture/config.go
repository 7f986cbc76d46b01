package capture

import (
	"github.com/roadrunner-server/errors"
)

// Config is used to parse the correlator plugin configuration
type Config struct {
	// ReplaceGlobal installs the capture core on the process-global zap
	// logger. Enabled by default; offline stores can opt out.
	ReplaceGlobal *bool `mapstructure:"replace_global"`
	// Capacity pre-sizes the store's backing slice.
	Capacity int `mapstructure:"capacity"`
}

func (c *Config) InitDefault() error {
	if c.Capacity < 0 {
		return errors.Str("capacity should not be negative")
	}

	if c.ReplaceGlobal == nil {
		replace := true
		c.ReplaceGlobal = &replace
	}

	return nil
}
