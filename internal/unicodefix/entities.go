// Copyright 2024 The ftfy-go Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package unicodefix implements textual cleanups that sit outside the
// encoding-repair core -- HTML entity decoding, terminal-escape stripping,
// curly-quote folding, line-break normalization, control-character and
// BOM removal, ligature and full/half-width folding, and Unicode
// normal-form selection. Package fixer composes these with the core into
// the full iterative driver.
package unicodefix

import (
	"golang.org/x/net/html"

	"github.com/mojibake-go/ftfy/internal/lazyregexp"
)

// entityRE matches a run that looks like an HTML/XML character reference
// ending in a semicolon: &name; or &#123; or &#x7B;. Restricting to the
// semicolon-terminated form keeps this unambiguous -- "this&not that"
// should never turn into "this¬ that" -- mirroring the reference
// implementation's own note that unescape_html only decodes escapes ending
// in a semicolon.
var entityRE = lazyregexp.New(`&#[0-9]+;|&#[xX][0-9a-fA-F]+;|&[A-Za-z][A-Za-z0-9]*;`)

// UnescapeHTML decodes named and numeric HTML/XML entities such as &amp;,
// &#233;, and &#xE9; into the characters they represent. Only the
// semicolon-terminated form is decoded, so plain text containing a bare
// ampersand is left untouched.
func UnescapeHTML(s string) string {
	if !entityRE.MatchString(s) {
		return s
	}
	return entityRE.ReplaceAllStringFunc(s, func(match string) string {
		decoded := html.UnescapeString(match)
		if decoded == match {
			return match
		}
		return decoded
	})
}
