// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package strsplit provides a lazy delimiter-splitting iterator over a
// string. Pieces are substrings of the haystack — no copying — and are
// produced one at a time, so callers that stop early never pay for the
// rest of the scan.
//
// The [Delimiter] interface abstracts what counts as a boundary; [Str],
// [Rune], [Runes], and [Func] cover the common cases. An empty [Str] delimiter matches between
// every pair of codepoints and at both ends, so splitting "abc" by ""
// yields "", "a", "b", "c", "".
package strsplit

import (
	"iter"
	"slices"
	"strings"
	"unicode/utf8"
)

// Delimiter locates the next boundary in s.
// FindNext returns the byte offsets [start, end) of the leftmost match and
// ok=true, or ok=false when s contains no further boundary. A start == end
// result is an empty match; the iterator then advances one codepoint at a
// time so iteration always terminates.
type Delimiter interface {
	FindNext(s string) (start, end int, ok bool)
}

// Str is a literal substring delimiter.
// The empty string matches everywhere with an empty match.
type Str string

// FindNext implements [Delimiter].
func (d Str) FindNext(s string) (int, int, bool) {
	if len(d) == 0 {
		return 0, 0, true
	}
	i := strings.Index(s, string(d))
	if i < 0 {
		return 0, 0, false
	}
	return i, i + len(d), true
}

// Rune is a single-codepoint delimiter.
type Rune rune

// FindNext implements [Delimiter].
func (d Rune) FindNext(s string) (int, int, bool) {
	i := strings.IndexRune(s, rune(d))
	if i < 0 {
		return 0, 0, false
	}
	return i, i + utf8.RuneLen(rune(d)), true
}

// Runes is a codepoint-set delimiter: the leftmost occurrence of any of its
// runes is the boundary.
type Runes []rune

// FindNext implements [Delimiter].
func (d Runes) FindNext(s string) (int, int, bool) {
	for i, r := range s {
		if slices.Contains(d, r) {
			return i, i + utf8.RuneLen(r), true
		}
	}
	return 0, 0, false
}

// Func is a predicate delimiter: the leftmost rune it reports true for is
// the boundary.
type Func func(rune) bool

// FindNext implements [Delimiter].
func (d Func) FindNext(s string) (int, int, bool) {
	i := strings.IndexFunc(s, d)
	if i < 0 {
		return 0, 0, false
	}
	_, k := utf8.DecodeRuneInString(s[i:])
	return i, i + k, true
}

// Splitter iterates over the pieces of a haystack between boundaries.
// The zero value is exhausted; construct with [Split].
type Splitter struct {
	remainder string
	delimiter Delimiter
	done      bool
	// leadingEmpty tracks whether an empty match at the current position
	// should still yield the empty piece before the boundary, so empty
	// delimiters produce the leading "" exactly once per boundary run.
	leadingEmpty bool
}

// Split creates a lazy splitter over haystack.
func Split(haystack string, d Delimiter) *Splitter {
	return &Splitter{
		remainder:    haystack,
		delimiter:    d,
		leadingEmpty: true,
	}
}

// Next returns the next piece and true, or ("", false) once the haystack is
// exhausted. A delimiter at the very end of the haystack yields a final
// empty piece.
func (it *Splitter) Next() (string, bool) {
	if it.done || it.delimiter == nil {
		return "", false
	}
	s := it.remainder
	start, end, ok := it.delimiter.FindNext(s)
	if !ok {
		it.done = true
		it.leadingEmpty = true
		return s, true
	}
	if start == end {
		// Empty match: yield the piece before the boundary once, then
		// advance one codepoint per call.
		if it.leadingEmpty {
			it.leadingEmpty = false
			return s[:0], true
		}
		if s == "" {
			it.done = true
			return s, true
		}
		_, k := utf8.DecodeRuneInString(s)
		it.remainder = s[k:]
		return s[:k], true
	}
	it.leadingEmpty = true
	it.remainder = s[end:]
	return s[:start], true
}

// All adapts the splitter to a range-over-func sequence.
// The sequence is single-use: it consumes the splitter as it goes.
func (it *Splitter) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for piece, ok := it.Next(); ok; piece, ok = it.Next() {
			if !yield(piece) {
				return
			}
		}
	}
}

// Collect drains the splitter into a slice.
func (it *Splitter) Collect() []string {
	var out []string
	for piece, ok := it.Next(); ok; piece, ok = it.Next() {
		out = append(out, piece)
	}
	return out
}

// Until returns the piece of haystack before the first boundary, or the
// whole haystack when no boundary occurs.
func Until(haystack string, d Delimiter) string {
	piece, _ := Split(haystack, d).Next()
	return piece
}
