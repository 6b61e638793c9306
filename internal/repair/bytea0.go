// Copyright 2024 The ftfy-go Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package repair

import (
	"strings"

	"github.com/mojibake-go/ftfy/internal/codec"
	"github.com/mojibake-go/ftfy/internal/lazyregexp"
)

// alteredUTF8RE recognizes UTF-8 lead/continuation byte sequences that
// would be valid if it weren't for a single byte 0xA0 that some Windows-1252
// process turned into a plain space. Go's regexp package has no lookaround,
// but none of these six alternatives need it, so they port directly from
// the byte ranges ftfy's ALTERED_UTF8_RE documents.
var alteredUTF8RE = lazyregexp.New(
	`[\xc2\xc3\xc5\xce\xd0\xd9][ ]` +
		`|[\xe2\xe3][ ][\x80-\x84\x86-\x9f\xa1-\xbf]` +
		`|[\xe0-\xe3][\x80-\x84\x86-\x9f\xa1-\xbf][ ]` +
		`|\xf0[ ][\x80-\xbf][\x80-\xbf]` +
		`|\xf0[\x80-\xbf][ ][\x80-\xbf]` +
		`|\xf0[\x80-\xbf][\x80-\xbf][ ]`,
)

// RestoreByteA0 finds byte sequences in b that would decode cleanly as
// UTF-8 if a single space (0x20) were actually the non-breaking-space byte
// 0xA0, and puts the 0xA0 back. This undoes a common second mangling where
// something already decided "byte A0, that's basically a space".
//
// The original algorithm's exception for a bare 0xC3 followed by a space --
// skip it unless the following word is one of a few short Portuguese
// contractions -- is a negative lookahead, which Go's regexp package can't
// express either; it's applied here as an explicit byte-level check before
// the regexp pass runs.
func RestoreByteA0(b []byte) []byte {
	b = restoreGraveWordSpace(b)
	// Go's regexp reads []byte input as UTF-8, so the pattern runs over a
	// Latin-1 view of b (one rune per byte) for its \xNN escapes to match
	// raw bytes.
	view, _ := codec.Decode(codec.Latin1, b)
	fixed := alteredUTF8RE.ReplaceAllStringFunc(view, func(match string) string {
		return strings.ReplaceAll(match, " ", " ")
	})
	out, _ := codec.Encode(codec.Latin1, fixed)
	return out
}

var graveWordExceptions = [][]byte{
	[]byte(" "),
	[]byte("quele"),
	[]byte("quela"),
	[]byte("quilo"),
	[]byte("s "),
}

// restoreGraveWordSpace rewrites a lone "\xc3 " (byte 0xC3 followed by a
// single space) into "\xc3\xa0 ", unless what follows the space is one of
// the Portuguese contraction exceptions the original algorithm carves out.
func restoreGraveWordSpace(b []byte) []byte {
	out := make([]byte, 0, len(b)+4)
	for i := 0; i < len(b); i++ {
		if b[i] == 0xC3 && i+1 < len(b) && b[i+1] == ' ' && !hasGraveWordException(b[i+2:]) {
			out = append(out, 0xC3, 0xA0, ' ')
			i++
			continue
		}
		out = append(out, b[i])
	}
	return out
}

func hasGraveWordException(rest []byte) bool {
	for _, exc := range graveWordExceptions {
		if len(rest) >= len(exc) && string(rest[:len(exc)]) == string(exc) {
			return true
		}
	}
	return false
}

// lossyUTF8RE matches UTF-8 (and CESU-8) sequences where some continuation
// bytes have been replaced by the ASCII SUBSTITUTE byte 0x1A, or
// occasionally '?', because a sloppy codec encoded an already-lost U+FFFD
// that way rather than refusing to encode it at all.
var lossyUTF8RE = lazyregexp.New(
	`[\xc2-\xdf][\x1a]` +
		`|[\xc2-\xc3][?]` +
		`|\xed[\xa0-\xaf][\x1a?]\xed[\xb0-\xbf][\x1a?\x80-\xbf]` +
		`|\xed[\xa0-\xaf][\x1a?\x80-\xbf]\xed[\xb0-\xbf][\x1a?]` +
		`|[\xe0-\xef][\x1a?][\x1a\x80-\xbf]` +
		`|[\xe0-\xef][\x1a\x80-\xbf][\x1a?]` +
		`|[\xf0-\xf4][\x1a?][\x1a\x80-\xbf][\x1a\x80-\xbf]` +
		`|[\xf0-\xf4][\x1a\x80-\xbf][\x1a?][\x1a\x80-\xbf]` +
		`|[\xf0-\xf4][\x1a\x80-\xbf][\x1a\x80-\xbf][\x1a?]` +
		`|\x1a`,
)

// replacementUTF8 is the UTF-8 encoding of U+FFFD.
var replacementUTF8 = []byte{0xEF, 0xBF, 0xBD}

// ReplaceLossySequences replaces each matched mojibake run that contains a
// quarantined byte 0x1A with a single UTF-8-encoded U+FFFD, so the
// remainder of b can still be decoded cleanly as UTF-8.
func ReplaceLossySequences(b []byte) []byte {
	// Matched over a Latin-1 view of b, as in RestoreByteA0.
	view, _ := codec.Decode(codec.Latin1, b)
	repl, _ := codec.Decode(codec.Latin1, replacementUTF8)
	out, _ := codec.Encode(codec.Latin1, lossyUTF8RE.ReplaceAllLiteralString(view, repl))
	return out
}

// EncodeForLossyRepair mirrors encoding s as sloppy-windows-1252, except
// that a U+FFFD already present in s -- meaning a byte was destroyed
// before it reached us -- is mapped to the ASCII SUBSTITUTE byte 0x1A
// first, the same trick the sloppy codecs use to let ReplaceLossySequences
// see it as part of a UTF-8 shape instead of refusing to encode it.
func EncodeForLossyRepair(s string) ([]byte, error) {
	return codec.Encode(codec.SloppyWindows1252, strings.ReplaceAll(s, "�", "\x1a"))
}
