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

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCaseCommands(t *testing.T) {
	testCases := []struct {
		args     []string
		stdin    string
		expected string
	}{
		{[]string{"upper", "-l", "tr_TR", "istanbul"}, "", "İSTANBUL\n"},
		{[]string{"lower", "--locale", "tr", "IŞIK", "KAR"}, "", "ışık\nkar\n"},
		{[]string{"title", "hello world"}, "", "Hello World\n"},
		{[]string{"fold", "Straße"}, "", "strasse\n"},
		{[]string{"fold", "--turkic", "DİYARBAKIR"}, "", "diyarbakır\n"},
		{[]string{"fold", "-t"}, "ISPARTA\n", "ısparta\n"},
		{[]string{"upper"}, "abc\ndef\n", "ABC\nDEF\n"},
	}

	for _, tt := range testCases {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := run(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			require.Equal(t, tt.expected, out)
		})
	}
}

func TestMatchCommand(t *testing.T) {
	require := require.New(t)

	out, err := run(t, "", "match", "-f", "i", "[a-z]+", "Hello", "Hello1")
	require.NoError(err)
	require.Equal("Hello\ttrue\nHello1\tfalse\n", out)

	out, err = run(t, "abc\n123\n", "match", "--engine", "go", `\d+`)
	require.NoError(err)
	require.Equal("abc\tfalse\n123\ttrue\n", out)

	_, err = run(t, "", "match", "-f", "q", "a", "a")
	require.Error(err)

	_, err = run(t, "", "match", "a(", "a")
	require.Error(err)

	_, err = run(t, "", "match")
	require.Error(err)
}

func TestEnginesCommand(t *testing.T) {
	out, err := run(t, "", "engines")
	require.NoError(t, err)
	require.Contains(t, out, "icu\n")
	require.Contains(t, out, "go\n")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := run(t, "", "--log-level", "loud", "engines")
	require.Error(t, err)
}
