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
	"runtime"
	"sort"
	"sync"

	"github.com/dolthub/go-unitext/internal/regex"
	"github.com/dolthub/go-unitext/internal/ustring"
)

// RegexFlags are the ICU match mode bits accepted by NewRegex.
type RegexFlags = regex.Flags

const (
	RegexFlags_None                     RegexFlags = 0
	RegexFlags_Unix_Lines                          = regex.UnixLines
	RegexFlags_Case_Insensitive                    = regex.CaseInsensitive
	RegexFlags_Comments                            = regex.Comments
	RegexFlags_Multiline                           = regex.Multiline
	RegexFlags_Literal                             = regex.Literal
	RegexFlags_Dot_All                             = regex.DotAll
	RegexFlags_Unicode_Word                        = regex.UWord
	RegexFlags_Error_On_Unknown_Escapes            = regex.ErrorOnUnknownEscapes
)

// Regex is a compiled regular expression. It can be matched against any
// number of strings, concurrently, until Close is called.
type Regex struct {
	pattern string
	flags   RegexFlags
	engine  string

	mu sync.RWMutex
	m  regex.DisposableMatcher
}

// NewRegex compiles pattern with the configured regex engine.
func NewRegex(pattern string, flags RegexFlags) (*Regex, error) {
	engine := CurrentConfig().RegexEngine
	if engine == "" {
		engine = regex.Default()
	}
	return NewRegexWithEngine(engine, pattern, flags)
}

// NewRegexWithEngine compiles pattern with the named engine.
func NewRegexWithEngine(engine, pattern string, flags RegexFlags) (*Regex, error) {
	log := logger.WithField(PatternLogField, pattern).WithField(EngineLogField, engine)

	upattern, st := ustring.NewUChars(pattern)
	if st.Failure() {
		log.WithError(st).Debug("could not convert regex pattern")
		return nil, ErrRegexConvert.New(pattern, st.Name())
	}

	m, err := regex.NewDisposableMatcher(engine, upattern, flags)
	if err != nil {
		if regex.ErrRegexNotFound.Is(err) {
			return nil, err
		}
		log.WithError(err).Debug("could not compile regex")
		return nil, ErrRegexCompile.New(pattern, err.Error())
	}

	r := &Regex{pattern: pattern, flags: flags, engine: engine, m: m}
	runtime.SetFinalizer(r, (*Regex).leaked)
	return r, nil
}

// MustCompile is like NewRegex but panics if the pattern cannot be compiled.
func MustCompile(pattern string, flags RegexFlags) *Regex {
	r, err := NewRegex(pattern, flags)
	if err != nil {
		panic(err.Error())
	}
	return r
}

// Match reports whether s matches the expression in its entirety.
func (r *Regex) Match(s string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.m == nil {
		return false, ErrRegexClosed.New(r.pattern)
	}

	ok, err := r.m.Match(s)
	if err != nil {
		return false, ErrRegexMatch.New(r.pattern, err.Error())
	}
	return ok, nil
}

// Close releases the resources held by the engine. Calling Close more than
// once is a no-op.
func (r *Regex) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.m != nil {
		r.m.Dispose()
		r.m = nil
	}
	runtime.SetFinalizer(r, nil)
	return nil
}

// String returns the source pattern.
func (r *Regex) String() string { return r.pattern }

// Flags returns the flags the pattern was compiled with.
func (r *Regex) Flags() RegexFlags { return r.flags }

// Engine returns the name of the engine that compiled the pattern.
func (r *Regex) Engine() string { return r.engine }

func (r *Regex) leaked() {
	logger.WithField(PatternLogField, r.pattern).Error("Detected leaked Regex instance")
	r.dispose()
}

// release hands the handle over to the garbage collector: the engine
// resources are freed once nothing references r anymore.
func (r *Regex) release() {
	runtime.SetFinalizer(r, nil)
	runtime.SetFinalizer(r, (*Regex).dispose)
}

func (r *Regex) dispose() {
	if r.m != nil {
		r.m.Dispose()
		r.m = nil
	}
}

var flagLetters = map[rune]RegexFlags{
	'd': RegexFlags_Unix_Lines,
	'i': RegexFlags_Case_Insensitive,
	'x': RegexFlags_Comments,
	'm': RegexFlags_Multiline,
	'l': RegexFlags_Literal,
	's': RegexFlags_Dot_All,
	'w': RegexFlags_Unicode_Word,
	'e': RegexFlags_Error_On_Unknown_Escapes,
}

// ParseRegexFlags reads flags written as letters, in the style of inline
// regex modifiers: "i" case insensitive, "m" multiline, "s" dot all,
// "x" comments, "l" literal, "d" unix lines, "w" unicode word boundaries and
// "e" error on unknown escapes.
func ParseRegexFlags(s string) (RegexFlags, error) {
	var flags RegexFlags
	for _, c := range s {
		f, ok := flagLetters[c]
		if !ok {
			return 0, ErrInvalidRegexFlag.New(string(c))
		}
		flags |= f
	}
	return flags, nil
}

// RegexEngines returns the names of the registered regex engines, sorted.
func RegexEngines() []string {
	engines := regex.Engines()
	sort.Strings(engines)
	return engines
}
