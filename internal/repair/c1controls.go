// Copyright 2024 The ftfy-go Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package repair

import (
	"strings"

	"github.com/mojibake-go/ftfy/internal/codec"
)

// FixC1Controls re-interprets any C1 control character (U+0080..U+009F)
// still present in s as its Windows-1252 equivalent, matching what web
// browsers do with mislabeled Latin-1 text: U+0085 becomes the horizontal
// ellipsis, U+0091..U+0094 become curly quotes, and so on.
func FixC1Controls(s string) string {
	if !strings.ContainsFunc(s, isC1Control) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isC1Control(r) {
			decoded, err := codec.Decode(codec.SloppyWindows1252, []byte{byte(r)})
			if err == nil {
				b.WriteString(decoded)
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isC1Control(r rune) bool {
	return r >= 0x80 && r <= 0x9F
}
