// Copyright 2024 The ftfy-go Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package repair

import (
	"testing"

	"github.com/mojibake-go/ftfy/internal/codec"
)

func TestFixSurrogatesCombinesPair(t *testing.T) {
	in := string(append(encodeBytes(0xD83D), encodeBytes(0xDE00)...))
	got := FixSurrogates(in)
	want := string(rune(0x1F600))
	if got != want {
		t.Errorf("FixSurrogates(pair) = %q, want %q", got, want)
	}
}

func TestFixSurrogatesPassesLoneSurrogateThrough(t *testing.T) {
	in := string(encodeBytes(0xD83D))
	got := FixSurrogates(in)
	if got != in {
		t.Errorf("FixSurrogates(lone) = %q, want unchanged %q", got, in)
	}
}

func TestFixC1ControlsReinterpretsAsWindows1252(t *testing.T) {
	got := FixC1Controls("ab")
	want := "a…b"
	if got != want {
		t.Errorf("FixC1Controls = %q, want %q", got, want)
	}
}

func TestRestoreByteA0InsertsNBSP(t *testing.T) {
	in := []byte("\xc3\xa0\xc3 perturber")
	got := RestoreByteA0(in)
	want := []byte("\xc3\xa0\xc3\xa0 perturber")
	if string(got) != string(want) {
		t.Errorf("RestoreByteA0 = %q, want %q", got, want)
	}
}

// TestRestoreByteA0SkipsGraveWordExceptions checks that a contraction such
// as "àquele" is not given an extra 0xA0 in front of a kept space: the
// grave-word rewrite skips it, and the altered-UTF-8 pass turns the space
// itself back into 0xA0.
func TestRestoreByteA0SkipsGraveWordExceptions(t *testing.T) {
	in := []byte("\xc3 quele")
	got := RestoreByteA0(in)
	want := []byte("\xc3\xa0quele")
	if string(got) != string(want) {
		t.Errorf("RestoreByteA0(%q) = %q, want %q", in, got, want)
	}
}

func TestReplaceLossySequencesQuarantines(t *testing.T) {
	in := []byte("\xe2\x80\x9c")
	in[2] = 0x1a
	got := ReplaceLossySequences(in)
	want := []byte{0xEF, 0xBF, 0xBD}
	if string(got) != string(want) {
		t.Errorf("ReplaceLossySequences = %v, want %v", got, want)
	}
}

func TestDecodeInconsistentUTF8LeavesCleanTextAlone(t *testing.T) {
	in := "plain ascii text"
	got := DecodeInconsistentUTF8(in, func(s string) string { return s })
	if got != in {
		t.Errorf("DecodeInconsistentUTF8 changed clean text: %q", got)
	}
}

func TestFixPartialUTF8PunctIn1252DecodesSmartQuote(t *testing.T) {
	got := FixPartialUTF8PunctIn1252("say â€œhiâ€")
	if got == "say â€œhiâ€" {
		t.Error("expected the smart-quote mojibake to be decoded")
	}
}

func encodeBytes(r rune) []byte {
	buf := make([]byte, 3)
	n := codec.EncodeRuneTolerant(buf, r)
	return buf[:n]
}
