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

// Package casemap implements locale-sensitive case mapping with the
// pre-flighting contract of ICU's ucasemap functions: every mapping returns
// the length it needs, and a destination too small for the result yields
// ustatus.BufferOverflow so the caller can allocate and try again.
//
// The Unicode mapping rules themselves come from golang.org/x/text/cases.
package casemap

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/dolthub/go-unitext/internal/ustatus"
)

// Options modify the behaviour of a CaseMap.
type Options uint32

const (
	// TitleNoLowercase keeps the non-initial letters of each word as they are
	// when title casing.
	TitleNoLowercase Options = 0x100
	// FoldExcludeSpecialI folds I to dotless ı and İ to i, as Turkish and
	// Azeri do, instead of the default I to i and İ to i̇.
	FoldExcludeSpecialI Options = 0x1
	// NoFinalSigma disables the Greek final sigma rule when lowercasing.
	NoFinalSigma Options = 0x200
)

const scratchSize = 256

// CaseMap maps text for one locale. It holds no mutable state and is safe
// for concurrent use.
type CaseMap struct {
	locale string
	tag    language.Tag
	opts   Options
}

// ParseLocale resolves a locale identifier into a language tag. It accepts
// BCP 47 tags as well as POSIX identifiers such as "tr_TR.UTF-8@euro". The
// empty string, "C" and "POSIX" name the root locale. A well-formed but
// unknown locale falls back to root with ustatus.UsingDefaultWarning.
func ParseLocale(locale string) (language.Tag, ustatus.Status) {
	switch locale {
	case "", "C", "POSIX", "root":
		return language.Und, ustatus.ZeroError
	}

	id := locale
	if i := strings.IndexAny(id, ".@"); i >= 0 {
		id = id[:i]
	}
	id = strings.ReplaceAll(id, "_", "-")
	if id == "" {
		return language.Und, ustatus.IllegalArgument
	}

	tag, err := language.Parse(id)
	if err != nil {
		if _, ok := err.(language.ValueError); ok {
			return language.Und, ustatus.UsingDefaultWarning
		}
		return language.Und, ustatus.IllegalArgument
	}
	return tag, ustatus.ZeroError
}

// Open returns a CaseMap for the given locale.
func Open(locale string, opts Options) (*CaseMap, error) {
	tag, st := ParseLocale(locale)
	if st.Failure() {
		return nil, st
	}
	return &CaseMap{locale: locale, tag: tag, opts: opts}, nil
}

// Locale returns the locale identifier the map was opened with.
func (c *CaseMap) Locale() string { return c.locale }

// Tag returns the language tag resolved from the locale.
func (c *CaseMap) Tag() language.Tag { return c.tag }

// ToLower writes the lowercase mapping of src into dst.
func (c *CaseMap) ToLower(dst, src []byte) (int, error) {
	var opts []cases.Option
	if c.opts&NoFinalSigma != 0 {
		opts = append(opts, cases.HandleFinalSigma(false))
	}
	return Apply(cases.Lower(c.tag, opts...), dst, src)
}

// ToUpper writes the uppercase mapping of src into dst.
func (c *CaseMap) ToUpper(dst, src []byte) (int, error) {
	return Apply(cases.Upper(c.tag), dst, src)
}

// ToTitle writes the titlecase mapping of src into dst.
func (c *CaseMap) ToTitle(dst, src []byte) (int, error) {
	var opts []cases.Option
	if c.opts&TitleNoLowercase != 0 {
		opts = append(opts, cases.NoLower)
	}
	return Apply(cases.Title(c.tag, opts...), dst, src)
}

// FoldCase writes the full case folding of src into dst. Folding does not
// depend on the locale, only on the FoldExcludeSpecialI option.
func (c *CaseMap) FoldCase(dst, src []byte) (int, error) {
	if c.opts&FoldExcludeSpecialI != 0 {
		return Apply(transform.Chain(runes.Map(turkicI), cases.Fold()), dst, src)
	}
	return Apply(cases.Fold(), dst, src)
}

func turkicI(r rune) rune {
	switch r {
	case 'I':
		return 'ı'
	case 'İ':
		return 'i'
	}
	return r
}

// Apply runs t over src following the pre-flighting contract. The required
// length is measured first without writing to dst. If dst cannot hold the
// result the length is returned with ustatus.BufferOverflow, otherwise the
// result is written to dst[:n].
func Apply(t transform.Transformer, dst, src []byte) (int, error) {
	n, err := measure(t, src)
	if err != nil {
		return 0, err
	}
	if n > len(dst) {
		return n, ustatus.BufferOverflow
	}
	if n == 0 {
		return 0, nil
	}

	t.Reset()
	nDst, nSrc, err := t.Transform(dst, src, true)
	if err != nil || nDst != n || nSrc != len(src) {
		return n, ustatus.InternalProgram
	}
	return n, nil
}

// measure counts the bytes t produces for src by running it against a fixed
// scratch buffer.
func measure(t transform.Transformer, src []byte) (int, error) {
	var scratch [scratchSize]byte

	t.Reset()
	n := 0
	for {
		nDst, nSrc, err := t.Transform(scratch[:], src, true)
		n += nDst
		src = src[nSrc:]

		switch err {
		case nil:
			return n, nil
		case transform.ErrShortDst:
			if nDst == 0 && nSrc == 0 {
				return n, ustatus.InternalProgram
			}
		default:
			return n, ustatus.IllegalArgument
		}
	}
}
