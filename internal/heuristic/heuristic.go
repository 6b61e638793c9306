// Copyright 2024 The ftfy-go Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package heuristic scores how implausible a string's codepoint bigrams
// are. It is the objective the encoding-repair search minimizes.
package heuristic

import "github.com/mojibake-go/ftfy/internal/charclass"

// CommonCodepointBonus is subtracted, per occurrence, from the raw bigram
// score for codepoints that are common enough in correctly-decoded text
// (non-breaking space, degree sign, byte-order mark) that their presence
// should not count against a candidate as strongly as the raw bigram table
// alone would score it. Exposed as a var, not a const, so regression tests
// can retune it without touching the scoring code.
var CommonCodepointBonus = 1

var weight [numClasses][numClasses]int

func init() {
	set := func(a, b charclass.Class, w int) {
		weight[a][b] = w
		weight[b][a] = w
	}
	set(charclass.C1Control, charclass.LatinLetter, 2)
	set(charclass.C1Control, charclass.AccentedLetter, 2)
	set(charclass.C1Control, charclass.OtherLetter, 2)
	set(charclass.C1Control, charclass.Punctuation, 1)
	set(charclass.C1Control, charclass.Quote, 1)
	set(charclass.C1Control, charclass.Digit, 1)
	weight[charclass.C1Control][charclass.C1Control] = 1

	set(charclass.AccentedLetter, charclass.AccentedLetter, 1)
	set(charclass.LatinLetter, charclass.CJK, 2)
	set(charclass.AccentedLetter, charclass.CJK, 2)
	set(charclass.OtherLetter, charclass.CJK, 1)

	weight[charclass.Whitespace][charclass.Whitespace] = 1
	set(charclass.Unassigned, charclass.LatinLetter, 1)
	set(charclass.Unassigned, charclass.AccentedLetter, 1)
	set(charclass.Unassigned, charclass.Punctuation, 1)
}

const numClasses = int(charclass.Unassigned) + 1

// Badness sums the per-bigram penalties of adjacent codepoints in s,
// projected through charclass.Category, plus a handful of rune-level
// overrides for the specific UTF-8 -> Windows-1252 mojibake prefixes that a
// coarse class bigram can't distinguish from innocuous text (Ã followed by
// a high-half byte, â€ followed by punctuation). It short-circuits to 0
// when s contains no codepoint in the mojibake candidate set, since no
// repair plan could change such a string regardless of its score.
func Badness(s string) int {
	if !charclass.AnyInMojibakeSet(s) {
		return 0
	}

	score := 0
	havePrev := false
	var prev rune
	for _, r := range s {
		if havePrev {
			score += bigramWeight(prev, r)
		}
		prev = r
		havePrev = true
	}
	return score
}

// IsBad reports whether Badness(s) is strictly positive.
func IsBad(s string) bool {
	return Badness(s) > 0
}

// AdjustedBadness is Badness with CommonCodepointBonus subtracted once per
// occurrence of a "common" codepoint (NBSP, degree sign, BOM), floored at
// zero. internal/search compares candidates on this score rather than raw
// Badness, so that recovering one of these common but visually unremarkable
// codepoints doesn't get outweighed by an unrelated bigram penalty
// elsewhere in the same candidate.
func AdjustedBadness(s string) int {
	score := Badness(s)
	bonus := CommonCodepointBonus * commonCodepointCount(s)
	score -= bonus
	if score < 0 {
		return 0
	}
	return score
}

func commonCodepointCount(s string) int {
	n := 0
	for _, r := range s {
		switch r {
		case 0x00A0, 0x00B0, 0xFEFF:
			n++
		}
	}
	return n
}

func bigramWeight(prev, cur rune) int {
	if w, ok := specialPairWeight(prev, cur); ok {
		return w
	}
	return weight[charclass.Category(prev)][charclass.Category(cur)]
}

// specialPairWeight recognizes the handful of rune pairs that are the
// telltale start of a UTF-8-decoded-as-Windows-1252 sequence: "Ã" (U+00C3,
// the lead byte 0xC3 under Latin-1 identity) followed by a byte that would
// be a valid UTF-8 continuation byte once re-encoded, and "â€" (U+00E2
// U+20AC), the lead two bytes of the common 3-byte "â€<x>" mis-decode of a
// smart quote or dash.
func specialPairWeight(prev, cur rune) (int, bool) {
	switch {
	case prev == 'Ã' && looksLikeUTF8Continuation(cur):
		return 4, true
	case prev == 'â' && cur == '€':
		return 2, true
	case prev == '€' && isPunctLike(cur):
		return 3, true
	}
	return 0, false
}

func looksLikeUTF8Continuation(r rune) bool {
	if r >= 0x00A0 && r <= 0x00BF {
		return true
	}
	for _, mapped := range charclass.Windows1252HighHalf {
		if mapped == r {
			return true
		}
	}
	return false
}

func isPunctLike(r rune) bool {
	switch charclass.Category(r) {
	case charclass.Punctuation, charclass.Quote, charclass.AccentedLetter:
		return true
	default:
		return false
	}
}
