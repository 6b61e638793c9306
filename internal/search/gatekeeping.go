// Copyright 2024 The ftfy-go Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package search

import (
	"unicode"

	"github.com/mojibake-go/ftfy/internal/charclass"
)

// accepted runs the three gatekeeping heuristics layered on top of the
// plain badness comparison: a candidate that passed the score test can
// still be rejected here as a known false-positive shape.
func accepted(orig, result string) bool {
	if crossesScriptBoundary(orig, result) {
		return false
	}
	if leavesAccentedCapitalEllipsis(result) {
		return false
	}
	if !validCyrillicRepair(orig, result) {
		return false
	}
	return true
}

// crossesScriptBoundary rejects a step that introduces fewer than two CJK
// codepoints into an otherwise-Latin string, or vice versa: a single such
// codepoint is far more often a coincidence than a real repair.
func crossesScriptBoundary(orig, result string) bool {
	origCJK := countCategory(orig, charclass.CJK)
	origLatin := countCategory(orig, charclass.LatinLetter) + countCategory(orig, charclass.AccentedLetter)
	resultCJK := countCategory(result, charclass.CJK)
	resultLatin := countCategory(result, charclass.LatinLetter) + countCategory(result, charclass.AccentedLetter)

	newCJK := resultCJK - origCJK
	if newCJK > 0 && newCJK < 2 && origLatin > 0 {
		return true
	}
	newLatin := resultLatin - origLatin
	if newLatin > 0 && newLatin < 2 && origCJK > 0 {
		return true
	}
	return false
}

// leavesAccentedCapitalEllipsis rejects results that still contain a
// single accented capital letter immediately followed by closing
// punctuation such as an ellipsis -- a common false-positive shape (É…,
// Ê…, Ó…) that a real repair would not leave behind.
func leavesAccentedCapitalEllipsis(result string) bool {
	runes := []rune(result)
	for i := 0; i < len(runes)-1; i++ {
		r := runes[i]
		if charclass.Category(r) != charclass.AccentedLetter || !unicode.IsUpper(r) {
			continue
		}
		next := runes[i+1]
		if next == '…' || next == '.' || next == '!' || next == '?' || next == ')' {
			return true
		}
	}
	return false
}

// validCyrillicRepair enforces that a repair introducing Cyrillic text
// from a Latin string produces at least two Cyrillic letters and leaves
// no Latin letters in the result.
func validCyrillicRepair(orig, result string) bool {
	if hasCyrillic(orig) {
		return true
	}
	resultCyrillicCount := cyrillicCount(result)
	if resultCyrillicCount == 0 {
		return true
	}
	if resultCyrillicCount < 2 {
		return false
	}
	return countCategory(result, charclass.LatinLetter) == 0
}

func countCategory(s string, c charclass.Class) int {
	n := 0
	for _, r := range s {
		if charclass.Category(r) == c {
			n++
		}
	}
	return n
}

func hasCyrillic(s string) bool {
	for _, r := range s {
		if unicode.In(r, unicode.Cyrillic) {
			return true
		}
	}
	return false
}

func cyrillicCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.In(r, unicode.Cyrillic) {
			n++
		}
	}
	return n
}
