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

// Package ustatus holds the status codes reported by the Unicode service
// providers. Codes and names follow ICU's UErrorCode so that messages read the
// same whichever provider produced them.
package ustatus

import (
	"errors"
	"strings"
)

// Status is a provider status code. Negative values are warnings, zero is
// success and positive values are failures.
type Status int32

const (
	UsingDefaultWarning       Status = -127
	StringNotTerminated       Status = -124
	ZeroError                 Status = 0
	IllegalArgument           Status = 1
	MissingResource           Status = 2
	InvalidFormat             Status = 3
	InternalProgram           Status = 5
	MemoryAllocation          Status = 7
	IndexOutOfBounds          Status = 8
	InvalidCharFound          Status = 10
	TruncatedCharFound        Status = 11
	IllegalCharFound          Status = 12
	BufferOverflow            Status = 15
	UnsupportedError          Status = 16
	RegexInternal             Status = 0x10300
	RegexRuleSyntax           Status = 0x10301
	RegexInvalidState         Status = 0x10302
	RegexBadEscapeSequence    Status = 0x10303
	RegexPropertySyntax       Status = 0x10304
	RegexUnimplemented        Status = 0x10305
	RegexMismatchedParen      Status = 0x10306
	RegexNumberTooBig         Status = 0x10307
	RegexBadInterval          Status = 0x10308
	RegexMaxLtMin             Status = 0x10309
	RegexInvalidBackRef       Status = 0x1030a
	RegexInvalidFlag          Status = 0x1030b
	RegexLookBehindLimit      Status = 0x1030c
	RegexSetContainsString    Status = 0x1030d
	RegexMissingCloseBracket  Status = 0x1030f
	RegexInvalidRange         Status = 0x10310
	RegexStackOverflow        Status = 0x10311
	RegexTimeOut              Status = 0x10312
	RegexStoppedByCaller      Status = 0x10313
	RegexPatternTooBig        Status = 0x10314
	RegexInvalidCaptureGroup  Status = 0x10315
)

var names = map[Status]string{
	UsingDefaultWarning:      "U_USING_DEFAULT_WARNING",
	StringNotTerminated:      "U_STRING_NOT_TERMINATED_WARNING",
	ZeroError:                "U_ZERO_ERROR",
	IllegalArgument:          "U_ILLEGAL_ARGUMENT_ERROR",
	MissingResource:          "U_MISSING_RESOURCE_ERROR",
	InvalidFormat:            "U_INVALID_FORMAT_ERROR",
	InternalProgram:          "U_INTERNAL_PROGRAM_ERROR",
	MemoryAllocation:         "U_MEMORY_ALLOCATION_ERROR",
	IndexOutOfBounds:         "U_INDEX_OUTOFBOUNDS_ERROR",
	InvalidCharFound:         "U_INVALID_CHAR_FOUND",
	TruncatedCharFound:       "U_TRUNCATED_CHAR_FOUND",
	IllegalCharFound:         "U_ILLEGAL_CHAR_FOUND",
	BufferOverflow:           "U_BUFFER_OVERFLOW_ERROR",
	UnsupportedError:         "U_UNSUPPORTED_ERROR",
	RegexInternal:            "U_REGEX_INTERNAL_ERROR",
	RegexRuleSyntax:          "U_REGEX_RULE_SYNTAX",
	RegexInvalidState:        "U_REGEX_INVALID_STATE",
	RegexBadEscapeSequence:   "U_REGEX_BAD_ESCAPE_SEQUENCE",
	RegexPropertySyntax:      "U_REGEX_PROPERTY_SYNTAX",
	RegexUnimplemented:       "U_REGEX_UNIMPLEMENTED",
	RegexMismatchedParen:     "U_REGEX_MISMATCHED_PAREN",
	RegexNumberTooBig:        "U_REGEX_NUMBER_TOO_BIG",
	RegexBadInterval:         "U_REGEX_BAD_INTERVAL",
	RegexMaxLtMin:            "U_REGEX_MAX_LT_MIN",
	RegexInvalidBackRef:      "U_REGEX_INVALID_BACK_REF",
	RegexInvalidFlag:         "U_REGEX_INVALID_FLAG",
	RegexLookBehindLimit:     "U_REGEX_LOOK_BEHIND_LIMIT",
	RegexSetContainsString:   "U_REGEX_SET_CONTAINS_STRING",
	RegexMissingCloseBracket: "U_REGEX_MISSING_CLOSE_BRACKET",
	RegexInvalidRange:        "U_REGEX_INVALID_RANGE",
	RegexStackOverflow:       "U_REGEX_STACK_OVERFLOW",
	RegexTimeOut:             "U_REGEX_TIME_OUT",
	RegexStoppedByCaller:     "U_REGEX_STOPPED_BY_CALLER",
	RegexPatternTooBig:       "U_REGEX_PATTERN_TOO_BIG",
	RegexInvalidCaptureGroup: "U_REGEX_INVALID_CAPTURE_GROUP_NAME",
}

// Name returns the symbolic name of the status, the way u_errorName does.
func (s Status) Name() string {
	if n, ok := names[s]; ok {
		return n
	}
	return "[BOGUS UErrorCode]"
}

// Success reports whether s is not a failure. Warnings count as success.
func (s Status) Success() bool { return s <= ZeroError }

// Failure reports whether s is a failure code.
func (s Status) Failure() bool { return s > ZeroError }

// Error implements the error interface.
func (s Status) Error() string { return s.Name() }

// Err returns s as an error, or nil if s is not a failure.
func (s Status) Err() error {
	if s.Failure() {
		return s
	}
	return nil
}

// FromError extracts the status carried by err. Errors that do not wrap a
// Status are matched against the status names appearing in their message, and
// fall back to def.
func FromError(err error, def Status) Status {
	if err == nil {
		return ZeroError
	}

	var s Status
	if errors.As(err, &s) {
		return s
	}

	msg := err.Error()
	found, foundLen := def, 0
	for code, name := range names {
		// longest name wins so the result does not depend on map order
		if code.Failure() && len(name) > foundLen && strings.Contains(msg, name) {
			found, foundLen = code, len(name)
		}
	}
	return found
}

type statusError struct {
	status Status
	err    error
}

func (e *statusError) Error() string {
	return e.status.Name() + ": " + e.err.Error()
}

func (e *statusError) Unwrap() []error {
	return []error{e.status, e.err}
}

// Wrap attaches s to a provider error so that both the status and the
// provider's message survive. A nil err yields s.Err().
func Wrap(s Status, err error) error {
	if err == nil {
		return s.Err()
	}
	return &statusError{status: s, err: err}
}
