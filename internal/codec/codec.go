// Copyright 2024 The ftfy-go Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package codec adapts golang.org/x/text's charmap encodings into the
// strict, string-at-a-time encode/decode primitives the repair search
// needs, and adds two variants no library in the example pack implements:
// sloppy Windows codepages that round-trip their undefined byte slots as
// Latin-1, and a UTF-8 variant tolerant of CESU-8 / Java modified UTF-8
// surrogate pairs.
package codec

import (
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/encoding/charmap"
)

// ID names one of the closed set of encodings the repair search knows
// about.
type ID string

// The closed set of encoding identifiers the repair search knows how to
// name a step after.
const (
	UTF8              ID = "utf-8"
	UTF8Variants      ID = "utf-8-variants"
	Latin1            ID = "latin-1"
	SloppyWindows1250 ID = "sloppy-windows-1250"
	SloppyWindows1251 ID = "sloppy-windows-1251"
	SloppyWindows1252 ID = "sloppy-windows-1252"
	SloppyWindows1253 ID = "sloppy-windows-1253"
	SloppyWindows1254 ID = "sloppy-windows-1254"
	SloppyWindows1257 ID = "sloppy-windows-1257"
	MacRoman          ID = "macroman"
	CP437             ID = "cp437"
)

// Encoding is the strict, whole-string codec primitive the search engine
// consumes. EncodeToBytes turns a Go string (already-decoded Unicode) into
// the raw bytes it would have been in this encoding; DecodeFromBytes turns
// raw bytes in this encoding into a Go string. Both fail the moment a
// rune/byte can't be represented: the search treats that failure as
// "reject this candidate", never as a user-visible error.
type Encoding interface {
	EncodeToBytes(s string) ([]byte, error)
	DecodeFromBytes(b []byte) (string, error)
}

var registry = map[ID]Encoding{
	UTF8:         utf8Codec{},
	UTF8Variants: utf8VariantsCodec{},
	Latin1:       &charmapCodec{name: string(Latin1), cm: charmap.ISO8859_1},
	MacRoman:     &charmapCodec{name: string(MacRoman), cm: charmap.Macintosh},
	CP437:        &charmapCodec{name: string(CP437), cm: charmap.CodePage437},

	SloppyWindows1250: &charmapCodec{name: string(SloppyWindows1250), cm: charmap.Windows1250, sloppy: sloppyUndefined1250},
	SloppyWindows1251: &charmapCodec{name: string(SloppyWindows1251), cm: charmap.Windows1251, sloppy: sloppyUndefined1251},
	SloppyWindows1252: &charmapCodec{name: string(SloppyWindows1252), cm: charmap.Windows1252, sloppy: sloppyUndefined1252},
	SloppyWindows1253: &charmapCodec{name: string(SloppyWindows1253), cm: charmap.Windows1253, sloppy: sloppyUndefined1253},
	SloppyWindows1254: &charmapCodec{name: string(SloppyWindows1254), cm: charmap.Windows1254, sloppy: sloppyUndefined1254},
	SloppyWindows1257: &charmapCodec{name: string(SloppyWindows1257), cm: charmap.Windows1257, sloppy: sloppyUndefined1257},
}

// Get fetches the Encoding registered under id.
func Get(id ID) (Encoding, bool) {
	enc, ok := registry[id]
	return enc, ok
}

// PrimaryOrder is the fixed priority order the search tries first encode
// steps in: sloppy-windows-1252 over utf-8 is by far the most common way
// text gets mangled in the wild, with low-signal encodings (cp437,
// macroman) tried last.
var PrimaryOrder = []ID{
	SloppyWindows1252,
	Latin1,
	SloppyWindows1250,
	SloppyWindows1251,
	SloppyWindows1253,
	SloppyWindows1254,
	SloppyWindows1257,
	MacRoman,
	CP437,
}

// sloppy-windows-125x undefined byte slots: the bytes each strict Windows
// codepage leaves unmapped, which round-trip as their own Latin-1
// codepoint under the sloppy variant. The 1252 set is the one most example
// corpora document explicitly (see lloeki/fix_latin's cp1252 table); the
// rest mirror the published Windows codepage undefined-slot lists.
var (
	sloppyUndefined1250 = []byte{0x81, 0x83, 0x88, 0x90, 0x98}
	sloppyUndefined1251 = []byte{0x98}
	sloppyUndefined1252 = []byte{0x81, 0x8D, 0x8F, 0x90, 0x9D}
	sloppyUndefined1253 = []byte{0x81, 0x88, 0x8A, 0x8C, 0x8D, 0x8E, 0x8F, 0x90, 0x98, 0x9A, 0x9C, 0x9D, 0x9E, 0x9F, 0xAA, 0xD2, 0xFF}
	sloppyUndefined1254 = []byte{0x81, 0x8D, 0x8E, 0x8F, 0x90, 0x9D, 0x9E}
	sloppyUndefined1257 = []byte{0x81, 0x83, 0x88, 0x8A, 0x8C, 0x90, 0x98, 0x9A, 0x9C, 0x9F, 0xA1, 0xA5}
)

// charmapCodec adapts a golang.org/x/text/encoding/charmap.Charmap into
// Encoding, using its low-level byte<->rune lookups directly rather than
// its streaming encoding.Encoding/transform.Transformer so every undecoded
// byte (or unencodable rune) becomes a hard error instead of a silent
// replacement character: a codec that quietly substitutes U+FFFD would
// make a bad candidate look better than it is to the search.
type charmapCodec struct {
	name   string
	cm     *charmap.Charmap
	sloppy []byte // undefined byte slots that round-trip as Latin-1 identity
}

func (c *charmapCodec) isSloppyByte(b byte) bool {
	for _, s := range c.sloppy {
		if s == b {
			return true
		}
	}
	return false
}

func (c *charmapCodec) DecodeFromBytes(b []byte) (string, error) {
	var sb []rune
	for _, by := range b {
		r := c.cm.DecodeByte(by)
		if r == unicode.ReplacementChar {
			if c.isSloppyByte(by) {
				r = rune(by)
			} else {
				return "", errors.Newf("codec: byte 0x%02X is not representable in %s", by, c.name)
			}
		}
		sb = append(sb, r)
	}
	return string(sb), nil
}

func (c *charmapCodec) EncodeToBytes(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if b, ok := c.cm.EncodeRune(r); ok {
			out = append(out, b)
			continue
		}
		if by, ok := reverseSloppy(c.sloppy, r); ok {
			out = append(out, by)
			continue
		}
		return nil, errors.Newf("codec: rune %U is not representable in %s", r, c.name)
	}
	return out, nil
}

func reverseSloppy(sloppy []byte, r rune) (byte, bool) {
	if r > 0xFF {
		return 0, false
	}
	for _, b := range sloppy {
		if rune(b) == r {
			return b, true
		}
	}
	return 0, false
}

// utf8Codec is strict standard UTF-8: any invalid byte fails the whole
// decode, and encoding is just the identity []byte(s) conversion since a
// Go string is always addressed by its UTF-8 bytes.
type utf8Codec struct{}

func (utf8Codec) DecodeFromBytes(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", errors.New("codec: invalid UTF-8")
	}
	return string(b), nil
}

func (utf8Codec) EncodeToBytes(s string) ([]byte, error) {
	return []byte(s), nil
}
