// Copyright 2024 The ftfy-go Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unicodefix

import "strings"

// singleQuotes and doubleQuotes are the curly quote codepoints
// UncurlQuotes folds to their straight ASCII equivalents: the single-quote
// family (modifier letter apostrophe, left/right/low/reversed single
// quotation marks) and the double-quote family (left/right/low/reversed
// double quotation marks).
const (
	singleQuotes = "ʼ‘’‚‛"
	doubleQuotes = "“”„‟"
)

// UncurlQuotes replaces curly quotation marks, and the MODIFIER LETTER
// APOSTROPHE, with straight ASCII quotes; angled quotes (‹ › « ») are left
// as they are. It is not a step of the encoding search: package fixer runs
// it after encoding repair in each pass, so the next pass's search sees the
// straightened text.
func UncurlQuotes(s string) string {
	if !strings.ContainsAny(s, singleQuotes+doubleQuotes) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case strings.ContainsRune(singleQuotes, r):
			b.WriteByte('\'')
		case strings.ContainsRune(doubleQuotes, r):
			b.WriteByte('"')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
