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
	"github.com/dolthub/go-unitext/casemap"
	"github.com/dolthub/go-unitext/internal/ustatus"
)

type mapFunc func(cm *casemap.CaseMap, dst, src []byte) (int, error)

// ToLower returns in converted to lowercase using the rules of locale. An
// empty locale means the configured default locale, "C" unless changed.
func ToLower(in, locale string) (string, error) {
	return mapCase("lowering", (*casemap.CaseMap).ToLower, in, locale, 0)
}

// ToUpper returns in converted to uppercase using the rules of locale.
func ToUpper(in, locale string) (string, error) {
	return mapCase("uppercasing", (*casemap.CaseMap).ToUpper, in, locale, 0)
}

// ToTitle returns in converted to titlecase using the rules of locale.
func ToTitle(in, locale string) (string, error) {
	return mapCase("titlecasing", (*casemap.CaseMap).ToTitle, in, locale, 0)
}

// FoldOptions select the case folding variant used by FoldCase.
type FoldOptions uint32

const (
	// FoldDefault applies the default Unicode case folding.
	FoldDefault FoldOptions = 0
	// FoldTurkic folds I to dotless ı and İ to i, for Turkish and Azeri text.
	FoldTurkic = FoldOptions(casemap.FoldExcludeSpecialI)
)

// FoldCase returns the locale independent case folding of in, suitable for
// caseless comparison.
func FoldCase(in string, opts FoldOptions) (string, error) {
	return mapCase("folding", (*casemap.CaseMap).FoldCase, in, "C", casemap.Options(opts))
}

// mapCase opens a case map, pre-flights the mapping to learn the output size,
// allocates it and fills it. Provider statuses become ErrCaseMapping.
func mapCase(op string, f mapFunc, in, locale string, opts casemap.Options) (string, error) {
	if locale == "" {
		locale = CurrentConfig().DefaultLocale
	}

	fail := func(err error) (string, error) {
		st := ustatus.FromError(err, ustatus.IllegalArgument)
		logger.WithField(LocaleLogField, locale).WithError(err).Debugf("error %s string", op)
		return "", ErrCaseMapping.New(op, locale, in, st.Name())
	}

	cm, err := casemap.Open(locale, opts)
	if err != nil {
		return fail(err)
	}

	src := []byte(in)
	n, err := f(cm, nil, src)
	if err != nil && ustatus.FromError(err, ustatus.IllegalArgument) != ustatus.BufferOverflow {
		return fail(err)
	}
	if n == 0 {
		return "", nil
	}

	out := make([]byte, n+1)
	n, err = f(cm, out, src)
	if err != nil {
		return fail(err)
	}
	return string(out[:n]), nil
}
