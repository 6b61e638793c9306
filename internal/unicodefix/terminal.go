// Copyright 2024 The ftfy-go Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unicodefix

import "github.com/mojibake-go/ftfy/internal/lazyregexp"

// ansiEscapeRE matches an "ANSI" terminal escape sequence: ESC '[',
// zero or more digits/semicolons, then a single letter.
var ansiEscapeRE = lazyregexp.New("\x1b\\[[0-9;]*[a-zA-Z]")

// StripTerminalEscapes removes ANSI CSI terminal escape sequences, such as
// those used to color text in a Unix terminal.
func StripTerminalEscapes(s string) string {
	return ansiEscapeRE.ReplaceAllLiteralString(s, "")
}
