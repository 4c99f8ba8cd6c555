package config

const (
	defaultJournalPath           = "~/.local/share/subfix/journal.db"
	defaultMinDurationSeconds    = 0.5
	defaultContextWindow         = 3
	defaultGrammarLanguage       = "en"
	defaultGrammarTimeoutSeconds = 10
	defaultGrammarCacheSize      = 1024
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			JournalPath: defaultJournalPath,
		},
		Timing: Timing{
			MinDurationSeconds: defaultMinDurationSeconds,
			ContextWindow:      defaultContextWindow,
		},
		Grammar: Grammar{
			Language:       defaultGrammarLanguage,
			TimeoutSeconds: defaultGrammarTimeoutSeconds,
			CacheSize:      defaultGrammarCacheSize,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
