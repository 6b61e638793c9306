// Copyright 2024 The ftfy-go Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unicodefix

import "strings"

// lineBreakReplacer folds every Unicode line-break form fix_line_breaks
// recognizes -- CRLF, lone CR, NEL, vertical tab, form feed, line
// separator, and paragraph separator -- to a single Unix "\n".
var lineBreakReplacer = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	"", "\n",
	"", "\n",
	"", "\n",
	" ", "\n",
	" ", "\n",
)

// FixLineBreaks normalizes CRLF, lone CR, NEL (U+0085), vertical tab
// (U+000B), form feed (U+000C), U+2028 LINE SEPARATOR, and U+2029
// PARAGRAPH SEPARATOR to a single "\n".
func FixLineBreaks(s string) string {
	return lineBreakReplacer.Replace(s)
}
