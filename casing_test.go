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
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToLowerToUpper(t *testing.T) {
	testCases := []struct {
		name     string
		f        func(in, locale string) (string, error)
		in       string
		locale   string
		expected string
	}{
		{"lower ascii", ToLower, "HeLLo", "", "hello"},
		{"upper ascii", ToUpper, "HeLLo", "C", "HELLO"},
		{"empty", ToLower, "", "C", ""},
		{"lower accents", ToLower, "ÀÉÎÕÜ", "es_ES", "àéîõü"},
		{"upper expands", ToUpper, "straße", "de_DE.UTF-8", "STRASSE"},
		{"turkish upper", ToUpper, "iyi", "tr_TR", "İYİ"},
		{"turkish lower", ToLower, "IŞIK", "tr", "ışık"},
		{"root lower dotted I", ToLower, "İ", "C", "i̇"},
		{"greek final sigma", ToLower, "ΟΔΟΣ", "el_GR", "οδος"},
		{"catalan", ToUpper, "col·lecció", "ca", "COL·LECCIÓ"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.f(tt.in, tt.locale)
			require.NoError(t, err)
			require.Equal(t, tt.expected, out)
		})
	}
}

func TestCaseMappingLongInput(t *testing.T) {
	in := strings.Repeat("Ǆ Ξ ß ", 500)
	out, err := ToUpper(in, "C")
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("Ǆ Ξ SS ", 500), out)
}

func TestToTitleFoldCase(t *testing.T) {
	require := require.New(t)

	out, err := ToTitle("the quick brown fox", "en_US")
	require.NoError(err)
	require.Equal("The Quick Brown Fox", out)

	out, err = FoldCase("Straße ΟΔΟΣ", FoldDefault)
	require.NoError(err)
	require.Equal("strasse οδοσ", out)
}

func TestFoldCaseTurkic(t *testing.T) {
	testCases := []struct {
		in       string
		opts     FoldOptions
		expected string
	}{
		{"KIZ İKİ", FoldDefault, "kiz i\u0307ki\u0307"},
		{"KIZ İKİ", FoldTurkic, "kız iki"},
		{"ıi", FoldTurkic, "ıi"},
		{"Straße", FoldTurkic, "strasse"},
		{"", FoldTurkic, ""},
	}

	for _, tt := range testCases {
		t.Run(tt.in, func(t *testing.T) {
			out, err := FoldCase(tt.in, tt.opts)
			require.NoError(t, err)
			require.Equal(t, tt.expected, out)
		})
	}
}

func TestCaseMappingInvalidLocale(t *testing.T) {
	require := require.New(t)

	_, err := ToLower("ABC", "!!")
	require.Error(err)
	require.True(ErrCaseMapping.Is(err))
	require.Contains(err.Error(), "lowering")
	require.Contains(err.Error(), "!!")
	require.Equal(1, strings.Count(err.Error(), "U_ILLEGAL_ARGUMENT_ERROR"), err.Error())

	_, err = ToUpper("100%", "!!")
	require.Error(err)
	require.Contains(err.Error(), "the string 100%.")

	_, err = ToUpper("abc", "!!")
	require.True(ErrCaseMapping.Is(err))
	require.Contains(err.Error(), "uppercasing")
}

func TestDefaultLocale(t *testing.T) {
	require := require.New(t)
	defer func() { require.NoError(Configure(DefaultConfig())) }()

	c := DefaultConfig()
	c.DefaultLocale = "tr_TR"
	require.NoError(Configure(c))

	out, err := ToUpper("istanbul", "")
	require.NoError(err)
	require.Equal("İSTANBUL", out)

	out, err = ToUpper("istanbul", "C")
	require.NoError(err)
	require.Equal("ISTANBUL", out)
}
