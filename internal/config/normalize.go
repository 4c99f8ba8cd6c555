package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeGrammar()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.JournalPath) == "" {
		c.Paths.JournalPath = defaultJournalPath
	}
	if c.Paths.JournalPath, err = expandPath(c.Paths.JournalPath); err != nil {
		return fmt.Errorf("paths.journal_path: %w", err)
	}
	if strings.TrimSpace(c.Paths.DictionaryPath) != "" {
		if c.Paths.DictionaryPath, err = expandPath(c.Paths.DictionaryPath); err != nil {
			return fmt.Errorf("paths.dictionary_path: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeGrammar() {
	c.Grammar.URL = strings.TrimRight(strings.TrimSpace(c.Grammar.URL), "/")
	if strings.TrimSpace(c.Grammar.Language) == "" {
		c.Grammar.Language = defaultGrammarLanguage
	}
	if c.Grammar.TimeoutSeconds <= 0 {
		c.Grammar.TimeoutSeconds = defaultGrammarTimeoutSeconds
	}
	if c.Grammar.CacheSize <= 0 {
		c.Grammar.CacheSize = defaultGrammarCacheSize
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
