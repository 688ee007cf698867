// SPDX-License-Identifier: MIT

package internal

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/nml/matrix"
)

// Config defines the command's configuration.
type Config struct {
	Precision int          `toml:"precision"` // binary digits for Almost; 0 keeps the default
	Epsilon   float64      `toml:"epsilon"`   // absolute tolerance; overrides precision when > 0
	Verbose   bool         `toml:"verbose"`
	Verify    VerifyConfig `toml:"verify"`
}

// VerifyConfig holds the settings of the verify command.
type VerifyConfig struct {
	MaxSize int     `toml:"max_size"` // square sizes 1..MaxSize are checked
	Trials  int     `toml:"trials"`   // random matrices per size
	Seed    uint64  `toml:"seed"`
	Min     float64 `toml:"min"` // bounds of the uniform element distribution
	Max     float64 `toml:"max"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Verify: VerifyConfig{
			MaxSize: 6,
			Trials:  20,
			Seed:    1,
			Min:     -10,
			Max:     10,
		},
	}
}

// ReadConfig reads the config from a toml file on top of DefaultConfig.
// If the name is empty, the default configuration is returned.
func ReadConfig(name string) (*Config, error) {
	config := DefaultConfig()
	if name == "" {
		return config, nil
	}
	if _, err := toml.DecodeFile(name, config); err != nil {
		return nil, fmt.Errorf("readConfig %s: %v", name, err)
	}
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("readConfig %s: %v", name, err)
	}
	return config, nil
}

func (c *Config) validate() error {
	if c.Precision < 0 || c.Precision > matrix.MaxPrecision {
		return fmt.Errorf("precision %d not in [0,%d]", c.Precision, matrix.MaxPrecision)
	}
	if c.Epsilon < 0 {
		return fmt.Errorf("negative epsilon %g", c.Epsilon)
	}
	if c.Verify.MaxSize < 1 || c.Verify.Trials < 1 {
		return fmt.Errorf("verify: max_size and trials must be positive")
	}
	if c.Verify.Min >= c.Verify.Max {
		return fmt.Errorf("verify: empty range [%g,%g)", c.Verify.Min, c.Verify.Max)
	}
	return nil
}

// Options translates the tolerance settings into matrix options.
func (c *Config) Options() []matrix.Option {
	switch {
	case c.Epsilon > 0:
		return []matrix.Option{matrix.WithEpsilon(c.Epsilon)}
	case c.Precision > 0:
		return []matrix.Option{matrix.WithPrecision(c.Precision)}
	default:
		return nil
	}
}

// UpdateInConfig updates the value in dest with val if the according
// value is not the zero-type for the underlying type.  Dest must be a
// pointer type to either int, uint64, float64 or bool.  Otherwise the
// function panics.
func UpdateInConfig(dest, val interface{}) {
	switch dest := dest.(type) {
	case *int:
		if v := val.(int); v != 0 {
			*dest = v
		}
	case *uint64:
		if v := val.(uint64); v != 0 {
			*dest = v
		}
	case *float64:
		if v := val.(float64); v != 0 {
			*dest = v
		}
	case *bool:
		if v := val.(bool); v {
			*dest = v
		}
	default:
		panic("bad type")
	}
}
