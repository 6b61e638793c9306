// Copyright 2024 The ftfy-go Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unicodefix

import "strings"

// RemoveBOM strips a leading U+FEFF BYTE ORDER MARK, wherever a decoder
// left one sitting at the start of the text.
func RemoveBOM(s string) string {
	return strings.TrimPrefix(s, "\uFEFF")
}

// RemoveControlChars deletes control characters that have no displayed
// effect on text -- C0 controls other than tab/newline, DEL, and the
// C1 range -- while leaving TAB, LF, and CR alone so FixLineBreaks still
// has something to normalize.
func RemoveControlChars(s string) string {
	if !strings.ContainsFunc(s, isRemovableControl) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isRemovableControl(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isRemovableControl(r rune) bool {
	switch r {
	case '\t', '\n', '\r':
		return false
	}
	return (r < 0x20) || r == 0x7F || (r >= 0x80 && r <= 0x9F)
}
