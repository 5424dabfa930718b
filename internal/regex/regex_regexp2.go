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
	"strings"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/dolthub/go-unitext/internal/ustatus"
	"github.com/dolthub/go-unitext/internal/ustring"
)

// Regexp2 holds a Matcher backed by the backtracking regexp2 engine.
type Regexp2 struct {
	reg *regexp2.Regexp
}

// Match implements Matcher interface.
func (r *Regexp2) Match(s string) (bool, error) {
	defer observeMatch(s, time.Now())

	ok, err := r.reg.MatchString(s)
	if err != nil {
		if strings.Contains(err.Error(), "timeout") {
			return false, ustatus.Wrap(ustatus.RegexTimeOut, err)
		}
		return false, ustatus.Wrap(ustatus.RegexInternal, err)
	}
	return ok, nil
}

// Dispose implements Disposer interface.
func (*Regexp2) Dispose() {}

// NewRegexp2 creates a new Matcher using the regexp2 engine.
func NewRegexp2(pattern []uint16, flags Flags) (Matcher, Disposer, error) {
	expr := ustring.ToUTF8(pattern)
	defer observeCompile(expr, time.Now())

	if flags&(UWord|UnixLines|ErrorOnUnknownEscapes) != 0 {
		return nil, nil, ustatus.RegexUnimplemented
	}

	opts := regexp2.None
	if flags&CaseInsensitive != 0 {
		opts |= regexp2.IgnoreCase
	}
	if flags&Multiline != 0 {
		opts |= regexp2.Multiline
	}
	if flags&DotAll != 0 {
		opts |= regexp2.Singleline
	}
	if flags&Comments != 0 {
		opts |= regexp2.IgnorePatternWhitespace
	}
	if flags&Literal != 0 {
		expr = regexp2.Escape(expr)
	}

	reg, err := regexp2.Compile(`\A(?:`+expr+`)\z`, opts)
	if err != nil {
		return nil, nil, ustatus.Wrap(ustatus.RegexRuleSyntax, err)
	}
	if matchTimeout > 0 {
		reg.MatchTimeout = matchTimeout
	}

	r := Regexp2{
		reg: reg,
	}
	return &r, &r, nil
}

func init() {
	err := Register("regexp2", NewRegexp2)
	if err != nil {
		panic(err.Error())
	}
}
