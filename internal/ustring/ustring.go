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

// Package ustring converts between Go's UTF-8 strings and the UTF-16 code
// units consumed by ICU style engines. Every conversion follows the
// pre-flighting contract: the required length is always returned, and a
// destination that is too small yields ustatus.BufferOverflow.
package ustring

import (
	"encoding/binary"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"github.com/dolthub/go-unitext/internal/ustatus"
)

// ReplacementChar is written in place of ill-formed input by the lenient
// conversions.
const ReplacementChar = '\uFFFD'

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Length returns the number of UTF-16 code units needed to hold src. When
// lenient is false, ill-formed UTF-8 yields ustatus.InvalidCharFound along with
// the length counted up to the offending byte.
func Length(src string, lenient bool) (int, ustatus.Status) {
	n := 0
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		if r == utf8.RuneError && size <= 1 {
			if !lenient {
				return n, ustatus.InvalidCharFound
			}
			n++
			i++
			continue
		}
		n += utf16.RuneLen(r)
		i += size
	}
	return n, ustatus.ZeroError
}

// FromUTF8 converts src into dst. It returns the number of code units the
// conversion needs, which may exceed len(dst). Ill-formed input is an error.
func FromUTF8(dst []uint16, src string) (int, ustatus.Status) {
	return fromUTF8(dst, src, false)
}

// FromUTF8Lenient is like FromUTF8 but substitutes ReplacementChar for each
// ill-formed byte instead of failing.
func FromUTF8Lenient(dst []uint16, src string) (int, ustatus.Status) {
	return fromUTF8(dst, src, true)
}

func fromUTF8(dst []uint16, src string, lenient bool) (int, ustatus.Status) {
	n, st := Length(src, lenient)
	if st.Failure() {
		return n, st
	}
	if n > len(dst) {
		return n, ustatus.BufferOverflow
	}
	if n == 0 {
		return 0, ustatus.ZeroError
	}

	return n, fill(dst[:n], src, utf16le.NewEncoder())
}

func fill(dst []uint16, src string, enc *encoding.Encoder) ustatus.Status {
	buf, err := enc.Bytes([]byte(src))
	if err != nil {
		return ustatus.InvalidCharFound
	}
	if len(buf) != 2*len(dst) {
		return ustatus.InternalProgram
	}
	for i := range dst {
		dst[i] = binary.LittleEndian.Uint16(buf[2*i:])
	}
	return ustatus.ZeroError
}

// NewUChars allocates a UTF-16 copy of src. It pre-flights the conversion to
// learn the exact size, allocates once and fills leniently.
func NewUChars(src string) ([]uint16, ustatus.Status) {
	n, st := FromUTF8Lenient(nil, src)
	if st == ustatus.BufferOverflow {
		st = ustatus.ZeroError
	}
	if st.Failure() {
		return nil, st
	}

	out := make([]uint16, n)
	if _, st = FromUTF8Lenient(out, src); st.Failure() {
		return nil, st
	}
	return out, ustatus.ZeroError
}

// ToUTF8 converts UTF-16 code units back into a Go string. Unpaired
// surrogates become ReplacementChar.
func ToUTF8(src []uint16) string {
	if len(src) == 0 {
		return ""
	}

	buf := make([]byte, 2*len(src))
	for i, u := range src {
		binary.LittleEndian.PutUint16(buf[2*i:], u)
	}
	out, err := utf16le.NewDecoder().Bytes(buf)
	if err != nil {
		return string(Runes(src))
	}
	return string(out)
}

// Runes decodes UTF-16 code units into code points.
func Runes(src []uint16) []rune {
	return utf16.Decode(src)
}
