// Copyright 2024 The ftfy-go Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// utf8VariantsCodec decodes standard UTF-8 plus the CESU-8 / Java modified
// UTF-8 pattern of a surrogate pair each encoded as its own 3-byte
// sequence (ED A0-AF xx ED B0-BF xx), combining it into the non-BMP
// codepoint it represents. A lone half of such a pair is tolerated and
// passed through as the raw 3-byte form rather than rejected, so that a
// later fix_surrogates repair (internal/repair) or a second
// utf8VariantsCodec.DecodeFromBytes call on a differently-split string can
// still stitch it together. Encoding always emits standard UTF-8, because
// the 3-byte surrogate form's bytes are themselves already well-formed
// UTF-8 bit patterns; the only thing nonstandard about them is the
// surrogate code point they (individually) encode.
type utf8VariantsCodec struct{}

func (utf8VariantsCodec) EncodeToBytes(s string) ([]byte, error) {
	return []byte(s), nil
}

func (utf8VariantsCodec) DecodeFromBytes(b []byte) (string, error) {
	out := make([]byte, 0, len(b))
	i := 0
	for i < len(b) {
		if i+6 <= len(b) {
			if hi, n := decodeRuneTolerant(b[i : i+3]); n == 3 && IsHighSurrogate(hi) {
				if lo, n2 := decodeRuneTolerant(b[i+3 : i+6]); n2 == 3 && IsLowSurrogate(lo) {
					combined, _ := CombineSurrogatePair(hi, lo)
					var buf [utf8.UTFMax]byte
					n3 := utf8.EncodeRune(buf[:], combined)
					out = append(out, buf[:n3]...)
					i += 6
					continue
				}
			}
		}

		r, size := decodeRuneTolerant(b[i:])
		if r == utf8.RuneError && size == 1 {
			return "", errors.Newf("codec: invalid byte 0x%02X in utf-8-variants input", b[i])
		}
		if IsSurrogate(r) {
			var buf [3]byte
			n := EncodeRuneTolerant(buf[:], r)
			out = append(out, buf[:n]...)
		} else {
			out = append(out, b[i:i+size]...)
		}
		i += size
	}
	return string(out), nil
}

// IsSurrogate, IsHighSurrogate, IsLowSurrogate classify a rune value by the
// UTF-16 surrogate ranges. Go's rune type places no restriction on holding
// such a value; only utf8.EncodeRune refuses to emit it as UTF-8, which is
// exactly why EncodeRuneTolerant exists below.
func IsSurrogate(r rune) bool     { return r >= 0xD800 && r <= 0xDFFF }
func IsHighSurrogate(r rune) bool { return r >= 0xD800 && r <= 0xDBFF }
func IsLowSurrogate(r rune) bool  { return r >= 0xDC00 && r <= 0xDFFF }

// CombineSurrogatePair stitches a validated high/low surrogate pair into
// the non-BMP scalar value they represent.
func CombineSurrogatePair(hi, lo rune) (rune, bool) {
	if !IsHighSurrogate(hi) || !IsLowSurrogate(lo) {
		return 0, false
	}
	return 0x10000 + (hi-0xD800)<<10 + (lo - 0xDC00), true
}

// EncodeRuneTolerant behaves like utf8.EncodeRune except that a surrogate
// rune is written as its raw 3-byte CESU-8 form instead of the U+FFFD
// replacement utf8.EncodeRune would otherwise produce. dst must have
// length at least 3.
func EncodeRuneTolerant(dst []byte, r rune) int {
	if IsSurrogate(r) {
		dst[0] = 0xE0 | byte(r>>12)
		dst[1] = 0x80 | byte((r>>6)&0x3F)
		dst[2] = 0x80 | byte(r&0x3F)
		return 3
	}
	return utf8.EncodeRune(dst, r)
}

// decodeRuneTolerant is utf8.DecodeRune's bit math without the check that
// rejects an encoded surrogate half: it reports an in-range surrogate rune
// instead of utf8.RuneError so the caller (here, and internal/repair's
// surrogate stitcher) can decide whether to combine, pass through, or
// reject it.
func decodeRuneTolerant(b []byte) (rune, int) {
	if len(b) == 0 {
		return utf8.RuneError, 0
	}
	b0 := b[0]
	switch {
	case b0 < 0x80:
		return rune(b0), 1
	case b0 < 0xC0:
		return utf8.RuneError, 1
	case b0 < 0xE0:
		if len(b) < 2 || !isContByte(b[1]) {
			return utf8.RuneError, 1
		}
		r := rune(b0&0x1F)<<6 | rune(b[1]&0x3F)
		if r < 0x80 {
			return utf8.RuneError, 1
		}
		return r, 2
	case b0 < 0xF0:
		if len(b) < 3 || !isContByte(b[1]) || !isContByte(b[2]) {
			return utf8.RuneError, 1
		}
		r := rune(b0&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F)
		if r < 0x800 {
			return utf8.RuneError, 1
		}
		return r, 3
	case b0 < 0xF8:
		if len(b) < 4 || !isContByte(b[1]) || !isContByte(b[2]) || !isContByte(b[3]) {
			return utf8.RuneError, 1
		}
		r := rune(b0&0x07)<<18 | rune(b[1]&0x3F)<<12 | rune(b[2]&0x3F)<<6 | rune(b[3]&0x3F)
		if r < 0x10000 || r > utf8.MaxRune {
			return utf8.RuneError, 1
		}
		return r, 4
	default:
		return utf8.RuneError, 1
	}
}

// DecodeRuneTolerant exposes decodeRuneTolerant to the rest of the module:
// utf8.DecodeRune's bit math without the check that rejects an encoded
// surrogate half, for callers (internal/repair's surrogate stitcher) that
// need to walk CESU-8-tolerant bytes rune by rune.
func DecodeRuneTolerant(b []byte) (rune, int) {
	return decodeRuneTolerant(b)
}

func isContByte(b byte) bool {
	return b&0xC0 == 0x80
}
