//go:build cgo && unitext_icu4c

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
	"context"
	"sync"
	"time"

	icu "github.com/dolthub/go-icu-regex"
	"github.com/sirupsen/logrus"

	"github.com/dolthub/go-unitext/internal/ustatus"
	"github.com/dolthub/go-unitext/internal/ustring"
)

// icu4cBufferSize is the initial size of the UTF-16 buffer ICU4C converts the
// match string into. It grows on demand.
const icu4cBufferSize = 1024

// ICU4C holds a Matcher backed by the system ICU library through cgo. The
// underlying handle keeps the current subject, so matches are serialized.
type ICU4C struct {
	mu sync.Mutex
	re icu.Regex
}

// Match implements Matcher interface.
func (r *ICU4C) Match(s string) (bool, error) {
	defer observeMatch(s, time.Now())

	r.mu.Lock()
	defer r.mu.Unlock()

	ctx := context.Background()
	if err := r.re.SetMatchString(ctx, s); err != nil {
		return false, ustatus.Wrap(ustatus.FromError(err, ustatus.RegexInternal), err)
	}
	ok, err := r.re.Matches(ctx, 0, 0)
	if err != nil {
		return false, ustatus.Wrap(ustatus.FromError(err, ustatus.RegexInternal), err)
	}
	return ok, nil
}

// Dispose implements Disposer interface.
func (r *ICU4C) Dispose() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.re.Close(); err != nil {
		logrus.WithError(err).Warn("closing ICU4C regex")
	}
}

func icu4cFlags(flags Flags) icu.RegexFlags {
	out := icu.RegexFlags_None
	for bit, f := range map[Flags]icu.RegexFlags{
		CaseInsensitive:       icu.RegexFlags_Case_Insensitive,
		Comments:              icu.RegexFlags_Comments,
		DotAll:                icu.RegexFlags_Dot_All,
		Literal:               icu.RegexFlags_Literal,
		Multiline:             icu.RegexFlags_Multiline,
		UnixLines:             icu.RegexFlags_Unix_Lines,
		UWord:                 icu.RegexFlags_Unicode_Word,
		ErrorOnUnknownEscapes: icu.RegexFlags_Error_On_Unknown_Escapes,
	} {
		if flags&bit != 0 {
			out |= f
		}
	}
	return out
}

// NewICU4C creates a new Matcher using ICU4C. Matches is a find operation
// in this binding, so the pattern is anchored to the whole input.
func NewICU4C(pattern []uint16, flags Flags) (Matcher, Disposer, error) {
	expr := ustring.ToUTF8(pattern)
	defer observeCompile(expr, time.Now())

	if flags&Literal != 0 {
		expr = quoteICU(expr)
		flags &^= Literal
	}

	re := icu.CreateRegex(icu4cBufferSize)
	if err := re.SetRegexString(context.Background(), `\A(?:`+expr+`)\z`, icu4cFlags(flags)); err != nil {
		_ = re.Close()
		return nil, nil, ustatus.Wrap(ustatus.FromError(err, ustatus.RegexRuleSyntax), err)
	}

	r := &ICU4C{re: re}
	return r, r, nil
}

func init() {
	// go-icu-regex panics when a Regex is finalized without Close. Log the
	// leak instead.
	icu.SetRegexLeakHandler(func() {
		logrus.Error("Detected leaked go-icu-regex.Regex instance")
	})

	err := Register("icu4c", NewICU4C)
	if err != nil {
		panic(err.Error())
	}
}
