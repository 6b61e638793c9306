// Copyright 2024 The ftfy-go Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package repair implements the narrow, named auxiliary transforms the
// search engine tries alongside plain encode/decode steps: fix_surrogates,
// fix_c1_controls, restore_byte_a0, replace_lossy_sequences, and
// decode_inconsistent_utf8.
package repair

import (
	"strings"

	"github.com/mojibake-go/ftfy/internal/codec"
)

// FixSurrogates replaces 16-bit surrogate codepoints carried in s (via the
// CESU-8-tolerant encoding codec.UTF8Variants produces) with the character
// they represent when properly paired. A lone high or low surrogate has no
// partner to combine with; it is passed through unchanged, in the same
// transient 3-byte CESU form it arrived in, rather than dropped or replaced,
// leaving the decision of what to do with it to the caller.
func FixSurrogates(s string) string {
	if !containsSurrogate(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	rs := []byte(s)
	i := 0
	for i < len(rs) {
		r, n := codec.DecodeRuneTolerant(rs[i:])
		if n == 0 {
			break
		}
		if codec.IsHighSurrogate(r) {
			if i+n < len(rs) {
				lo, n2 := codec.DecodeRuneTolerant(rs[i+n:])
				if n2 > 0 && codec.IsLowSurrogate(lo) {
					combined, ok := codec.CombineSurrogatePair(r, lo)
					if ok {
						b.WriteRune(combined)
						i += n + n2
						continue
					}
				}
			}
			writeLoneSurrogate(&b, r)
			i += n
			continue
		}
		if codec.IsLowSurrogate(r) {
			writeLoneSurrogate(&b, r)
			i += n
			continue
		}
		b.WriteRune(r)
		i += n
	}
	return b.String()
}

func writeLoneSurrogate(b *strings.Builder, r rune) {
	var buf [4]byte
	n := codec.EncodeRuneTolerant(buf[:], r)
	b.Write(buf[:n])
}

func containsSurrogate(s string) bool {
	rs := []byte(s)
	for i := 0; i < len(rs); {
		r, n := codec.DecodeRuneTolerant(rs[i:])
		if n == 0 {
			break
		}
		if codec.IsSurrogate(r) {
			return true
		}
		i += n
	}
	return false
}
