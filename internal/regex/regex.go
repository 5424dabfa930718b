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

// Package regex keeps the registry of regular expression engines. Every
// engine receives the pattern as UTF-16 code units, the representation ICU
// compiles from, and matches UTF-8 subjects against the whole input.
package regex

import (
	"time"

	"github.com/go-kit/kit/metrics/discard"
	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/go-unitext/internal/ustatus"
)

var (
	// ErrRegexAlreadyRegistered is returned when there is a previously
	// registered regex engine with the same name.
	ErrRegexAlreadyRegistered = errors.NewKind("Regex engine already registered: %s")
	// ErrRegexNameEmpty returned when the name is "".
	ErrRegexNameEmpty = errors.NewKind("Regex engine name cannot be empty")
	// ErrRegexNotFound returned when the regex engine is not registered.
	ErrRegexNotFound = errors.NewKind("Regex engine not found: %s")

	registry      map[string]Constructor
	defaultEngine string
	matchTimeout  time.Duration
)

// Flags are the ICU UREGEX_* match mode bits.
type Flags uint32

const (
	UnixLines             Flags = 1
	CaseInsensitive       Flags = 2
	Comments              Flags = 4
	Multiline             Flags = 8
	Literal               Flags = 16
	DotAll                Flags = 32
	UWord                 Flags = 256
	ErrorOnUnknownEscapes Flags = 512

	allFlags = UnixLines | CaseInsensitive | Comments | Multiline | Literal |
		DotAll | UWord | ErrorOnUnknownEscapes
)

// Matcher interface is used to compare regexes with strings.
type Matcher interface {
	// Match reports whether the whole text matches the regular expression.
	Match(text string) (bool, error)
}

// Disposer interface is used to release resources.
// The interface should be implemented by all go binding for native C libraries
type Disposer interface {
	Dispose()
}

// DisposableMatcher implements both Disposer and Matcher
type DisposableMatcher interface {
	Matcher
	Disposer
}

// Constructor compiles a UTF-16 pattern into a Matcher.
type Constructor func(pattern []uint16, flags Flags) (Matcher, Disposer, error)

var (
	// CompileHistogram describes a regexp compile time.
	CompileHistogram = discard.NewHistogram()

	// MatchHistogram describes a regexp match time.
	MatchHistogram = discard.NewHistogram()
)

// Register add a new regex engine to the registry.
func Register(name string, c Constructor) error {
	if registry == nil {
		registry = make(map[string]Constructor)
	}

	if name == "" {
		return ErrRegexNameEmpty.New()
	}

	_, ok := registry[name]
	if ok {
		return ErrRegexAlreadyRegistered.New(name)
	}

	registry[name] = c

	return nil
}

// Engines returns the list of regex engines names.
func Engines() []string {
	var names []string

	for n := range registry {
		names = append(names, n)
	}

	return names
}

// Registered reports whether an engine with the given name exists.
func Registered(name string) bool {
	_, ok := registry[name]
	return ok
}

// New creates a new Matcher with the specified regex engine.
func New(name string, pattern []uint16, flags Flags) (Matcher, Disposer, error) {
	n, ok := registry[name]
	if !ok {
		return nil, nil, ErrRegexNotFound.New(name)
	}

	if flags&^allFlags != 0 {
		return nil, nil, ustatus.RegexInvalidFlag
	}

	return n(pattern, flags)
}

type disposableMatcher struct {
	m Matcher
	d Disposer
}

func (dm *disposableMatcher) Match(s string) (bool, error) {
	return dm.m.Match(s)
}

func (dm *disposableMatcher) Dispose() {
	dm.d.Dispose()
}

func NewDisposableMatcher(name string, pattern []uint16, flags Flags) (DisposableMatcher, error) {
	m, d, err := New(name, pattern, flags)

	if err != nil {
		return nil, err
	}

	return &disposableMatcher{m, d}, nil
}

// Default returns the default regex engine.
func Default() string {
	if defaultEngine != "" {
		return defaultEngine
	}
	if _, ok := registry["icu"]; ok {
		return "icu"
	}

	return "go"
}

// SetDefault sets the regex engine returned by Default.
func SetDefault(name string) {
	defaultEngine = name
}

// SetMatchTimeout bounds the time a single match may take on engines that
// support it. Zero means no limit.
func SetMatchTimeout(d time.Duration) {
	matchTimeout = d
}

func observeCompile(pattern string, start time.Time) {
	CompileHistogram.With("regex", pattern, "duration", "seconds").Observe(time.Since(start).Seconds())
}

func observeMatch(s string, start time.Time) {
	MatchHistogram.With("string", s, "duration", "seconds").Observe(time.Since(start).Seconds())
}
