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
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	require := require.New(t)

	t.Setenv(regexEngineKey, " re2 ")
	t.Setenv(defaultLocaleKey, "tr_TR")
	t.Setenv(regexCacheSizeKey, "32")
	t.Setenv(regexTimeoutKey, "250")

	c := LoadConfig()
	require.Equal(Config{
		RegexEngine:    "re2",
		DefaultLocale:  "tr_TR",
		RegexCacheSize: 32,
		RegexTimeout:   250 * time.Millisecond,
	}, c)

	t.Setenv(regexTimeoutKey, "2s")
	require.Equal(2*time.Second, LoadConfig().RegexTimeout)
}

func TestLoadConfigInvalid(t *testing.T) {
	require := require.New(t)

	t.Setenv(regexCacheSizeKey, "lots")
	t.Setenv(regexTimeoutKey, "soon")

	c := LoadConfig()
	require.Equal(defaultRegexCacheSize, c.RegexCacheSize)
	require.Equal(time.Duration(0), c.RegexTimeout)

	t.Setenv(regexCacheSizeKey, "-3")
	require.Equal(defaultRegexCacheSize, LoadConfig().RegexCacheSize)
}

func TestLoadConfigFallsBackPerVariable(t *testing.T) {
	require := require.New(t)
	defer func() { require.NoError(Configure(DefaultConfig())) }()

	hook := test.NewGlobal()
	defer hook.Reset()

	t.Setenv(regexEngineKey, "nope")
	t.Setenv(defaultLocaleKey, "tr_TR")
	t.Setenv(regexCacheSizeKey, "16")

	c := LoadConfig()
	require.Equal("", c.RegexEngine)
	require.Equal("tr_TR", c.DefaultLocale)
	require.Equal(16, c.RegexCacheSize)

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Data[EngineLogField] == "nope" {
			warned = true
		}
	}
	require.True(warned)

	require.NoError(Configure(c))
	require.Equal("tr_TR", CurrentConfig().DefaultLocale)

	out, err := ToUpper("istanbul", "")
	require.NoError(err)
	require.Equal("İSTANBUL", out)

	t.Setenv(regexEngineKey, "re2")
	t.Setenv(defaultLocaleKey, "!!")
	c = LoadConfig()
	require.Equal("re2", c.RegexEngine)
	require.Equal("C", c.DefaultLocale)
	require.Equal(16, c.RegexCacheSize)
	require.NoError(Configure(c))
}

func TestConfigure(t *testing.T) {
	require := require.New(t)
	defer func() { require.NoError(Configure(DefaultConfig())) }()

	c := DefaultConfig()
	c.RegexEngine = "regexp2"
	c.RegexCacheSize = 8
	require.NoError(Configure(c))
	require.Equal(c, CurrentConfig())

	re, err := NewRegex("a", RegexFlags_None)
	require.NoError(err)
	require.Equal("regexp2", re.Engine())
	require.NoError(re.Close())

	c.RegexEngine = "nope"
	require.True(ErrUnknownEngine.Is(Configure(c)))

	c = DefaultConfig()
	c.DefaultLocale = "!!"
	require.True(ErrInvalidLocale.Is(Configure(c)))

	c = DefaultConfig()
	c.RegexCacheSize = 0
	require.True(ErrInvalidCacheSize.Is(Configure(c)))

	c = DefaultConfig()
	c.DefaultLocale = ""
	require.NoError(Configure(c))
	require.Equal("C", CurrentConfig().DefaultLocale)
}
