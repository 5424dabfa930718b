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

package regex

import (
	"errors"
	"strings"
	"time"

	"vitess.io/vitess/go/mysql/icuregex"

	"github.com/dolthub/go-unitext/internal/ustatus"
	"github.com/dolthub/go-unitext/internal/ustring"
)

// ICU holds a Matcher backed by the pure Go port of the ICU regex engine.
// The compiled pattern is immutable, each Match runs its own matcher.
type ICU struct {
	pat *icuregex.Pattern
}

// Match implements Matcher interface.
func (r *ICU) Match(s string) (bool, error) {
	defer observeMatch(s, time.Now())

	m := icuregex.NewMatcher(r.pat)
	m.Reset([]rune(s))
	ok, err := m.Matches()
	if err != nil {
		return false, ustatus.Wrap(icuStatus(err, ustatus.RegexInternal), err)
	}
	return ok, nil
}

// Dispose implements Disposer interface.
func (*ICU) Dispose() {}

// NewICU creates a new Matcher using the ICU engine. ICU flag bits are passed
// through unchanged, except Literal which is applied by quoting the pattern.
func NewICU(pattern []uint16, flags Flags) (Matcher, Disposer, error) {
	defer observeCompile(ustring.ToUTF8(pattern), time.Now())

	runes := ustring.Runes(pattern)
	if flags&Literal != 0 {
		runes = []rune(quoteICU(string(runes)))
		flags &^= Literal
	}

	pat, err := icuregex.Compile(runes, icuregex.RegexpFlag(flags))
	if err != nil {
		return nil, nil, ustatus.Wrap(icuStatus(err, ustatus.RegexRuleSyntax), err)
	}

	r := ICU{
		pat: pat,
	}
	return &r, &r, nil
}

func init() {
	err := Register("icu", NewICU)
	if err != nil {
		panic(err.Error())
	}
}

var icuCompileStatus = map[icuregex.CompileErrorCode]ustatus.Status{
	icuregex.InternalError:           ustatus.RegexInternal,
	icuregex.RuleSyntax:              ustatus.RegexRuleSyntax,
	icuregex.BadEscapeSequence:       ustatus.RegexBadEscapeSequence,
	icuregex.PropertySyntax:          ustatus.RegexPropertySyntax,
	icuregex.Unimplemented:           ustatus.RegexUnimplemented,
	icuregex.MismatchedParen:         ustatus.RegexMismatchedParen,
	icuregex.NumberTooBig:            ustatus.RegexNumberTooBig,
	icuregex.BadInterval:             ustatus.RegexBadInterval,
	icuregex.MaxLtMin:                ustatus.RegexMaxLtMin,
	icuregex.InvalidBackRef:          ustatus.RegexInvalidBackRef,
	icuregex.InvalidFlag:             ustatus.RegexInvalidFlag,
	icuregex.LookBehindLimit:         ustatus.RegexLookBehindLimit,
	icuregex.MissingCloseBracket:     ustatus.RegexMissingCloseBracket,
	icuregex.InvalidRange:            ustatus.RegexInvalidRange,
	icuregex.PatternTooBig:           ustatus.RegexPatternTooBig,
	icuregex.InvalidCaptureGroupName: ustatus.RegexInvalidCaptureGroup,
}

var icuMatchStatus = map[icuregex.MatchErrorCode]ustatus.Status{
	icuregex.StackOverflow:      ustatus.RegexStackOverflow,
	icuregex.TimeOut:            ustatus.RegexTimeOut,
	icuregex.InternalMatchError: ustatus.RegexInternal,
}

// icuStatus returns the status carried by an icuregex error, or def when err
// holds no code known to this package.
func icuStatus(err error, def ustatus.Status) ustatus.Status {
	var cerr *icuregex.CompileError
	if errors.As(err, &cerr) {
		if st, ok := icuCompileStatus[cerr.Code]; ok {
			return st
		}
		return def
	}
	var merr *icuregex.MatchError
	if errors.As(err, &merr) {
		if st, ok := icuMatchStatus[merr.Code]; ok {
			return st
		}
		return def
	}
	return ustatus.FromError(err, def)
}

// quoteICU turns s into an ICU pattern matching s literally.
func quoteICU(s string) string {
	return `\Q` + strings.ReplaceAll(s, `\E`, `\E\\E\Q`) + `\E`
}
