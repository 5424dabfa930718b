// Copyright 2026 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package unitext

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cast"

	"github.com/dolthub/go-unitext/casemap"
	"github.com/dolthub/go-unitext/internal/regex"
)

const (
	regexEngineKey    = "UNITEXT_REGEX_ENGINE"
	defaultLocaleKey  = "UNITEXT_DEFAULT_LOCALE"
	regexCacheSizeKey = "UNITEXT_REGEX_CACHE_SIZE"
	regexTimeoutKey   = "UNITEXT_REGEX_TIMEOUT"

	defaultRegexCacheSize = 128
)

// Config holds the package wide settings.
type Config struct {
	// RegexEngine is the engine NewRegex compiles with. Empty means the
	// registry default.
	RegexEngine string
	// DefaultLocale is used by the case mapping functions when they are
	// given an empty locale.
	DefaultLocale string
	// RegexCacheSize is the capacity of the cache used by MatchString.
	RegexCacheSize int
	// RegexTimeout bounds a single match on engines that support it.
	RegexTimeout time.Duration
}

// DefaultConfig returns the settings used when no environment variable is
// set.
func DefaultConfig() Config {
	return Config{
		DefaultLocale:  "C",
		RegexCacheSize: defaultRegexCacheSize,
	}
}

var (
	configMu sync.RWMutex
	config   = DefaultConfig()
)

// LoadConfig builds a Config from the UNITEXT_* environment variables.
// Invalid values are logged and replaced by their defaults, one variable at a
// time, so the result always passes Configure.
func LoadConfig() Config {
	c := DefaultConfig()

	if v, ok := os.LookupEnv(regexEngineKey); ok {
		name := strings.TrimSpace(v)
		if name != "" && !regex.Registered(name) {
			logger.WithField(EngineLogField, name).Warnf("unknown regex engine given to %s environment variable, available: %v", regexEngineKey, RegexEngines())
		} else {
			c.RegexEngine = name
		}
	}

	if v, ok := os.LookupEnv(defaultLocaleKey); ok {
		locale := strings.TrimSpace(v)
		if locale == "" {
			locale = c.DefaultLocale
		}
		if _, st := casemap.ParseLocale(locale); st.Failure() {
			logger.WithField(LocaleLogField, locale).Warnf("invalid value given to %s environment variable: %s", defaultLocaleKey, st.Name())
		} else {
			c.DefaultLocale = locale
		}
	}

	if v, ok := os.LookupEnv(regexCacheSizeKey); ok {
		n, err := cast.ToIntE(strings.TrimSpace(v))
		if err != nil || n <= 0 {
			logger.Warnf("invalid value %q given to %s environment variable", v, regexCacheSizeKey)
		} else {
			c.RegexCacheSize = n
		}
	}

	if v, ok := os.LookupEnv(regexTimeoutKey); ok {
		d, err := parseTimeout(strings.TrimSpace(v))
		if err != nil {
			logger.Warnf("invalid value %q given to %s environment variable", v, regexTimeoutKey)
		} else {
			c.RegexTimeout = d
		}
	}

	return c
}

// parseTimeout accepts Go durations ("250ms") and bare numbers of
// milliseconds.
func parseTimeout(v string) (time.Duration, error) {
	if ms, err := cast.ToInt64E(v); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	return cast.ToDurationE(v)
}

// Configure validates c and makes it the active configuration.
func Configure(c Config) error {
	if c.RegexEngine != "" && !regex.Registered(c.RegexEngine) {
		return ErrUnknownEngine.New(c.RegexEngine, RegexEngines())
	}

	if c.DefaultLocale == "" {
		c.DefaultLocale = "C"
	}
	if _, st := casemap.ParseLocale(c.DefaultLocale); st.Failure() {
		return ErrInvalidLocale.New(c.DefaultLocale, st.Name())
	}

	if c.RegexCacheSize <= 0 {
		return ErrInvalidCacheSize.New(c.RegexCacheSize)
	}

	configMu.Lock()
	regex.SetDefault(c.RegexEngine)
	regex.SetMatchTimeout(c.RegexTimeout)
	resized := config.RegexCacheSize != c.RegexCacheSize
	config = c
	configMu.Unlock()

	if resized {
		resetDefaultCache()
	}

	logger.WithField(EngineLogField, regex.Default()).Debug("unitext configured")
	return nil
}

// CurrentConfig returns the active configuration.
func CurrentConfig() Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return config
}

func init() {
	if err := Configure(LoadConfig()); err != nil {
		logger.WithError(err).Warn("ignoring environment configuration")
	}
}
