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
	"regexp"
	"strings"
	"time"

	"github.com/dolthub/go-unitext/internal/ustatus"
	"github.com/dolthub/go-unitext/internal/ustring"
)

// Go holds go regex engine Matcher.
type Go struct {
	reg *regexp.Regexp
}

// Match implements Matcher interface.
func (r *Go) Match(s string) (bool, error) {
	defer observeMatch(s, time.Now())

	return r.reg.MatchString(s), nil
}

// Dispose implements Disposer interface.
func (*Go) Dispose() {}

// NewGo creates a new Matcher using go regex engine.
func NewGo(pattern []uint16, flags Flags) (Matcher, Disposer, error) {
	defer observeCompile(ustring.ToUTF8(pattern), time.Now())

	expr, err := re2Syntax(ustring.ToUTF8(pattern), flags, regexp.QuoteMeta)
	if err != nil {
		return nil, nil, err
	}

	reg, err := regexp.Compile(expr)
	if err != nil {
		return nil, nil, ustatus.Wrap(ustatus.RegexRuleSyntax, err)
	}

	r := Go{
		reg: reg,
	}
	return &r, &r, nil
}

// re2Syntax translates ICU match flags into RE2 inline flags and anchors the
// expression so that it has to match the whole input.
func re2Syntax(pattern string, flags Flags, quote func(string) string) (string, error) {
	if flags&(Comments|UWord|UnixLines|ErrorOnUnknownEscapes) != 0 {
		return "", ustatus.RegexUnimplemented
	}

	if flags&Literal != 0 {
		pattern = quote(pattern)
	}

	var sb strings.Builder
	var inline string
	if flags&CaseInsensitive != 0 {
		inline += "i"
	}
	if flags&Multiline != 0 {
		inline += "m"
	}
	if flags&DotAll != 0 {
		inline += "s"
	}
	if inline != "" {
		sb.WriteString("(?" + inline + ")")
	}
	sb.WriteString(`\A(?:`)
	sb.WriteString(pattern)
	sb.WriteString(`)\z`)
	return sb.String(), nil
}

func init() {
	err := Register("go", NewGo)
	if err != nil {
		panic(err.Error())
	}
}
