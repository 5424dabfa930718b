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
	"time"

	"github.com/wasilibs/go-re2"

	"github.com/dolthub/go-unitext/internal/ustatus"
	"github.com/dolthub/go-unitext/internal/ustring"
)

// RE2 holds a Matcher backed by the RE2 library compiled to WebAssembly.
type RE2 struct {
	reg *re2.Regexp
}

// Match implements Matcher interface.
func (r *RE2) Match(s string) (bool, error) {
	defer observeMatch(s, time.Now())

	return r.reg.MatchString(s), nil
}

// Dispose implements Disposer interface. go-re2 frees the wasm side of a
// compiled pattern from its own finalizer.
func (*RE2) Dispose() {}

// NewRE2 creates a new Matcher using the RE2 engine.
func NewRE2(pattern []uint16, flags Flags) (Matcher, Disposer, error) {
	defer observeCompile(ustring.ToUTF8(pattern), time.Now())

	expr, err := re2Syntax(ustring.ToUTF8(pattern), flags, re2.QuoteMeta)
	if err != nil {
		return nil, nil, err
	}

	reg, err := re2.Compile(expr)
	if err != nil {
		return nil, nil, ustatus.Wrap(ustatus.RegexRuleSyntax, err)
	}

	r := RE2{
		reg: reg,
	}
	return &r, &r, nil
}

func init() {
	err := Register("re2", NewRE2)
	if err != nil {
		panic(err.Error())
	}
}
