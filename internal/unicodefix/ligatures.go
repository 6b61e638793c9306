// Copyright 2024 The ftfy-go Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unicodefix

import (
	"strings"

	"golang.org/x/text/width"
)

// latinLigatures breaks apart ligatures and digraphs of Latin letters that
// usually represent a copy/paste glitch rather than intentional
// typography. Ligatures used intentionally in other scripts, and Latin
// ligatures like "æ" that are frequently intentional, are left alone.
var latinLigatures = map[rune]string{
	'Ĳ': "IJ", 'ĳ': "ij",
	'ŉ': "ʼn",
	'Ǳ': "DZ", 'ǲ': "Dz", 'ǳ': "dz",
	'Ǆ': "DŽ", 'ǅ': "Dž", 'ǆ': "dž",
	'Ǉ': "LJ", 'ǈ': "Lj", 'ǉ': "lj",
	'Ǌ': "NJ", 'ǋ': "Nj", 'ǌ': "nj",
	'\ufb00': "ff", '\ufb01': "fi", '\ufb02': "fl",
	'\ufb03': "ffi", '\ufb04': "ffl", '\ufb05': "\u017ft", '\ufb06': "st",
}

// FixLatinLigatures replaces single-character ligatures of Latin letters,
// such as 'ﬁ', with the plain letters they contain, such as 'fi'.
func FixLatinLigatures(s string) string {
	if !strings.ContainsFunc(s, hasLigatureReplacement) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if rep, ok := latinLigatures[r]; ok {
			b.WriteString(rep)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func hasLigatureReplacement(r rune) bool {
	_, ok := latinLigatures[r]
	return ok
}

// FixCharacterWidth replaces fullwidth Latin characters and halfwidth
// Katakana with their standard-width forms, via golang.org/x/text/width's
// fold transform.
func FixCharacterWidth(s string) string {
	return width.Fold.String(s)
}
