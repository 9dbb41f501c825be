package types

import "time"

// HTTPConfig holds shared HTTP settings used when fetching the wordlist.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "bip39-filter/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// MaxRetries is the number of retries on HTTP 429 (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// WordlistConfig locates the BIP39 wordlist.
type WordlistConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// Path is the wordlist file. Empty selects the XDG cache file.
	Path string `json:"path" yaml:"path" mapstructure:"path"`

	// URL is where the wordlist is fetched from when the file is missing.
	URL string `json:"url" yaml:"url" mapstructure:"url"`

	// Offline disables fetching; a missing file is then a data source error.
	Offline bool `json:"offline" yaml:"offline" mapstructure:"offline"`

	// Strict requires exactly 2048 words.
	Strict bool `json:"strict" yaml:"strict" mapstructure:"strict"`
}

// TagsConfig locates the part-of-speech lookup.
type TagsConfig struct {
	// Path is a YAML/JSON mapping of word to tag, or a SQLite database
	// (.db, .sqlite, .sqlite3). Empty means every word is untagged.
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// OutputFormat selects how a result is printed.
type OutputFormat string

const (
	FormatLines   OutputFormat = "lines"
	FormatColumns OutputFormat = "columns"
	FormatJSON    OutputFormat = "json"
	FormatYAML    OutputFormat = "yaml"
)

// UIMode selects the interactive front end.
type UIMode string

const (
	UIAuto  UIMode = "auto"
	UITUI   UIMode = "tui"
	UIPlain UIMode = "plain"
)

// Config groups all settings for a bip39-filter run.
type Config struct {
	Wordlist WordlistConfig `json:"wordlist" yaml:"wordlist" mapstructure:"wordlist"`
	Tags     TagsConfig     `json:"tags" yaml:"tags" mapstructure:"tags"`
	Format   OutputFormat   `json:"format" yaml:"format" mapstructure:"format"`
	UI       UIMode         `json:"ui" yaml:"ui" mapstructure:"ui"`
	LogLevel string         `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}
