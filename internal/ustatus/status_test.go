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

package ustatus

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusName(t *testing.T) {
	require := require.New(t)

	require.Equal("U_ZERO_ERROR", ZeroError.Name())
	require.Equal("U_BUFFER_OVERFLOW_ERROR", BufferOverflow.Name())
	require.Equal("U_REGEX_RULE_SYNTAX", RegexRuleSyntax.Name())
	require.Equal("[BOGUS UErrorCode]", Status(4242).Name())
}

func TestStatusSuccess(t *testing.T) {
	require := require.New(t)

	require.True(ZeroError.Success())
	require.True(UsingDefaultWarning.Success())
	require.False(UsingDefaultWarning.Failure())
	require.True(IllegalArgument.Failure())
	require.NoError(ZeroError.Err())
	require.NoError(StringNotTerminated.Err())
	require.Equal(BufferOverflow, BufferOverflow.Err())
}

func TestFromError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected Status
	}{
		{"nil", nil, ZeroError},
		{"status", InvalidCharFound, InvalidCharFound},
		{"wrapped", fmt.Errorf("converting: %w", BufferOverflow), BufferOverflow},
		{"by name", fmt.Errorf("error U_REGEX_MISMATCHED_PAREN at offset 3"), RegexMismatchedParen},
		{"unknown", fmt.Errorf("something else"), RegexInternal},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, FromError(tt.err, RegexInternal))
		})
	}
}

func TestWrap(t *testing.T) {
	require := require.New(t)

	require.NoError(Wrap(ZeroError, nil))
	require.Equal(BufferOverflow, Wrap(BufferOverflow, nil))

	cause := fmt.Errorf("missing )")
	err := Wrap(RegexMismatchedParen, cause)
	require.Equal("U_REGEX_MISMATCHED_PAREN: missing )", err.Error())
	require.ErrorIs(err, cause)
	require.ErrorIs(err, RegexMismatchedParen)
	require.Equal(RegexMismatchedParen, FromError(err, RegexInternal))
}
