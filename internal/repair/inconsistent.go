// Copyright 2024 The ftfy-go Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package repair

import (
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/mojibake-go/ftfy/internal/codec"
	"github.com/mojibake-go/ftfy/internal/heuristic"
)

// utf8DetectorPattern recognizes runs of characters that look like they
// decode to UTF-8 lead/continuation bytes under a Latin-1-like encoding --
// the shape of mojibake that decode_inconsistent_utf8 hunts for inside
// otherwise-fine text. Go's stdlib regexp (RE2) can't express the
// surrounding negative lookbehind the original algorithm relies on to
// avoid re-decoding a character that was already decoded correctly;
// dlclark/regexp2 supports .NET-style lookaround and, unlike the byte-level
// patterns in bytea0.go, this one only ever sees valid decoded Unicode
// text, so matching it rune-by-rune carries none of the raw-byte risk that
// ruled regexp2 out there.
const utf8DetectorPattern = `(?<![\x80-\xbf–—‘-„†‡•…‰‹›€™])` +
	`(?:[\xc2-\xdf][\x80-\xbf ]|[\xe0-\xef][\x80-\xbf ]{2}|[\xf0-\xf4][\x80-\xbf ]{3})+`

var utf8DetectorRE = regexp2.MustCompile(utf8DetectorPattern, regexp2.None)

// LooksLikeMojibake reports whether s contains a run the UTF-8 detector
// would flag as plausible mojibake, even when the bigram badness score
// alone is too weak a signal (an isolated "Ã " or "Ã»" surrounded by
// otherwise ordinary text).
func LooksLikeMojibake(s string) bool {
	m, err := utf8DetectorRE.FindStringMatch(s)
	return err == nil && m != nil
}

// DecodeInconsistentUTF8 finds substrings of text that look like mojibake
// even though the rest of text does not, and re-applies fix to just that
// substring. fix is the full encoding-repair search, injected by the
// caller (internal/search) to avoid an import cycle between this package
// and the package that would otherwise own the recursive call.
func DecodeInconsistentUTF8(text string, fix func(string) string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return text
	}
	m, err := utf8DetectorRE.FindRunesMatch(runes)
	if err != nil || m == nil {
		return text
	}
	var out []rune
	pos := 0
	for m != nil {
		start, length := m.Index, m.Length
		out = append(out, runes[pos:start]...)
		substr := string(runes[start : start+length])
		if length < len(runes) && heuristic.IsBad(substr) {
			out = append(out, []rune(fix(substr))...)
		} else {
			out = append(out, runes[start:start+length]...)
		}
		pos = start + length
		m, err = utf8DetectorRE.FindNextMatch(m)
		if err != nil {
			break
		}
	}
	out = append(out, runes[pos:]...)
	return string(out)
}

// partialUTF8Punct lists the small set of Windows-1252 punctuation mojibake
// sequences (smart quotes, en/em dashes, ellipsis) that fix_partial_utf8_punct_in_1252
// treats as safe to decode even without strong surrounding evidence.
var partialUTF8Punct = []string{
	"â€œ", "â€", "â€™", "â€˜", "â€¦", "â€", "â€", "â€¢",
}

// FixPartialUTF8PunctIn1252 decodes just the known-safe Windows-1252
// punctuation mojibake shapes in text, leaving everything else untouched.
// It is the narrower, context-free sibling of DecodeInconsistentUTF8.
func FixPartialUTF8PunctIn1252(text string) string {
	if !strings.Contains(text, "â€") {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	rest := text
	for {
		idx, matchLen, ok := findPartialUTF8Punct(rest)
		if !ok {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:idx])
		match := rest[idx : idx+matchLen]
		if fixed, ok := reencodeAsWindows1252UTF8(match); ok {
			b.WriteString(fixed)
		} else {
			b.WriteString(match)
		}
		rest = rest[idx+matchLen:]
	}
	return b.String()
}

func findPartialUTF8Punct(s string) (idx, length int, ok bool) {
	best := -1
	bestLen := 0
	for _, p := range partialUTF8Punct {
		if i := strings.Index(s, p); i != -1 && (best == -1 || i < best) {
			best = i
			bestLen = len(p)
		}
	}
	if best == -1 {
		return 0, 0, false
	}
	return best, bestLen, true
}

func reencodeAsWindows1252UTF8(s string) (string, bool) {
	b, err := codec.Encode(codec.SloppyWindows1252, s)
	if err != nil {
		return "", false
	}
	out, err := codec.Decode(codec.UTF8, b)
	if err != nil {
		return "", false
	}
	return out, true
}
