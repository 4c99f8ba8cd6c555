package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTiming(); err != nil {
		return err
	}
	if err := c.validateGrammar(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateTiming() error {
	if c.Timing.MinDurationSeconds <= 0 {
		return errors.New("timing.min_duration_seconds must be positive")
	}
	if c.Timing.MinDurationSeconds > 10 {
		return errors.New("timing.min_duration_seconds must be 10 or less")
	}
	return nil
}

func (c *Config) validateGrammar() error {
	if c.Grammar.Enabled && c.Grammar.URL == "" {
		return errors.New("grammar.url must be set when grammar correction is enabled")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
