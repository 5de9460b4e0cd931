package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Configuration is the build configuration a target is compiled for.
type Configuration int

const (
	// ConfigurationDebug disables optimization and enables runtime assertions.
	ConfigurationDebug Configuration = iota
	// ConfigurationDevelopment is a lightly optimized build with assertions.
	ConfigurationDevelopment
	// ConfigurationShipping is the fully optimized release build.
	ConfigurationShipping
)

// String returns the canonical name of the configuration.
func (c Configuration) String() string {
	switch c {
	case ConfigurationDebug:
		return "Debug"
	case ConfigurationDevelopment:
		return "Development"
	case ConfigurationShipping:
		return "Shipping"
	default:
		return "Unknown"
	}
}

// HasAssertions reports whether the configuration keeps runtime assertions and profiling hooks.
func (c Configuration) HasAssertions() bool {
	return c == ConfigurationDebug || c == ConfigurationDevelopment
}

// ParseConfiguration parses a configuration name case-insensitively.
func ParseConfiguration(s string) (Configuration, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return ConfigurationDebug, nil
	case "development", "":
		return ConfigurationDevelopment, nil
	case "shipping":
		return ConfigurationShipping, nil
	default:
		return 0, zerr.With(ErrUnsupportedConfiguration, "configuration", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Configuration) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Configuration) UnmarshalText(text []byte) error {
	parsed, err := ParseConfiguration(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// BuildConfiguration couples a configuration with the size optimization preference.
type BuildConfiguration struct {
	Configuration   Configuration
	OptimizeForSize bool
}
