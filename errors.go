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

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrCaseMapping is returned when the case mapping provider fails.
	// The arguments are the operation, the locale, the input and the status.
	ErrCaseMapping = errors.NewKind("Error %s (with locale %s) the string %s. Error message: %s")

	// ErrInvalidLocale is returned when a configured locale cannot be parsed.
	ErrInvalidLocale = errors.NewKind("invalid locale %q: %s")

	// ErrRegexConvert is returned when a pattern cannot be converted to the
	// UTF-16 form the regex engines compile from.
	ErrRegexConvert = errors.NewKind("Error creating regex: could not convert pattern %q: %s")

	// ErrRegexCompile is returned when the engine rejects a pattern.
	ErrRegexCompile = errors.NewKind("Error creating regex %q: %s")

	// ErrRegexMatch is returned when the engine fails while matching.
	ErrRegexMatch = errors.NewKind("Error matching regex %q: %s")

	// ErrRegexClosed is returned when matching with a regex that was closed.
	ErrRegexClosed = errors.NewKind("regex %q is closed")

	// ErrUnknownEngine is returned when a configuration names a regex engine
	// that is not registered.
	ErrUnknownEngine = errors.NewKind("unknown regex engine %q, available: %v")

	// ErrInvalidCacheSize is returned for a regex cache without capacity.
	ErrInvalidCacheSize = errors.NewKind("regex cache size must be positive, got %d")
)

// ErrInvalidRegexFlag is returned by ParseRegexFlags for an unknown letter.
var ErrInvalidRegexFlag = errors.NewKind("invalid regex flag %q")
