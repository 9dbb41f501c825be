// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/bip39-filter/internal/corpus"
	"github.com/pdiddy/bip39-filter/internal/logging"
	"github.com/pdiddy/bip39-filter/internal/output"
	"github.com/pdiddy/bip39-filter/pkg/types"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultUserAgent  = "bip39-filter/0.1"
	defaultMaxRetries = 5
)

// configureViper sets defaults and environment binding. Every key has a
// default so BIP39_FILTER_* variables are seen by Unmarshal.
func configureViper(v *viper.Viper) {
	v.SetDefault("wordlist.path", "")
	v.SetDefault("wordlist.url", corpus.DefaultURL)
	v.SetDefault("wordlist.offline", false)
	v.SetDefault("wordlist.strict", true)
	v.SetDefault("wordlist.timeout", defaultTimeout)
	v.SetDefault("wordlist.user_agent", defaultUserAgent)
	v.SetDefault("wordlist.max_retries", defaultMaxRetries)
	v.SetDefault("tags.path", "")
	v.SetDefault("format", string(types.FormatLines))
	v.SetDefault("ui", string(types.UIAuto))
	v.SetDefault("log_level", logging.DefaultLevel)

	v.SetEnvPrefix("BIP39_FILTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// bindFlag ties a config key to a flag so an explicit flag overrides the
// config file and environment.
func bindFlag(key string, flags *pflag.FlagSet, name string) {
	if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", name, err))
	}
}

// loadConfig reads v into a Config and validates the enumerated settings.
func loadConfig(v *viper.Viper) (types.Config, error) {
	var c types.Config
	if err := v.Unmarshal(&c); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}

	format, err := output.ParseFormat(string(c.Format))
	if err != nil {
		return types.Config{}, err
	}
	c.Format = format

	ui, err := parseUIMode(string(c.UI))
	if err != nil {
		return types.Config{}, err
	}
	c.UI = ui

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return types.Config{}, err
	}
	if c.Wordlist.MaxRetries < 0 {
		return types.Config{}, fmt.Errorf("wordlist.max_retries must not be negative, got %d", c.Wordlist.MaxRetries)
	}
	return c, nil
}

func parseUIMode(s string) (types.UIMode, error) {
	switch m := types.UIMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return types.UIAuto, nil
	case types.UIAuto, types.UITUI, types.UIPlain:
		return m, nil
	default:
		return "", fmt.Errorf("unsupported ui %q: use auto, tui, or plain", s)
	}
}
