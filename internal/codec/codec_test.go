// Copyright 2024 The ftfy-go Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import "testing"

func TestPrimaryRepairPlan(t *testing.T) {
	got, err := EncodeDecode(SloppyWindows1252, UTF8, "schÃ¶n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "schön" {
		t.Errorf("got %q, want %q", got, "schön")
	}
}

func TestSloppyWindows1252RoundTripsUndefinedBytes(t *testing.T) {
	enc, ok := Get(SloppyWindows1252)
	if !ok {
		t.Fatal("sloppy-windows-1252 not registered")
	}
	for _, b := range sloppyUndefined1252 {
		s, err := enc.DecodeFromBytes([]byte{b})
		if err != nil {
			t.Fatalf("decode 0x%02X: %v", b, err)
		}
		if r := []rune(s); len(r) != 1 || r[0] != rune(b) {
			t.Errorf("decode 0x%02X = %q, want Latin-1 identity", b, s)
		}
		back, err := enc.EncodeToBytes(s)
		if err != nil {
			t.Fatalf("encode %q: %v", s, err)
		}
		if len(back) != 1 || back[0] != b {
			t.Errorf("round-trip of 0x%02X produced %v", b, back)
		}
	}
}

func TestDecodeRejectsUnknownEncoding(t *testing.T) {
	if _, err := Decode(ID("nonsense"), []byte("x")); err == nil {
		t.Error("expected error for unknown encoding id")
	}
}

func TestUTF8StrictRejectsInvalidBytes(t *testing.T) {
	if _, err := Decode(UTF8, []byte{0xC3, 0x28}); err == nil {
		t.Error("expected error decoding invalid UTF-8")
	}
}

func TestUTF8VariantsDecodesCESU8SurrogatePair(t *testing.T) {
	// U+1F600 encoded as a CESU-8 surrogate pair: D83D DE00, each half
	// individually encoded as its own (invalid-as-standalone) 3-byte
	// UTF-8 sequence.
	b := []byte{0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80}
	got, err := Decode(UTF8Variants, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := string(rune(0x1F600))
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestUTF8VariantsPassesThroughLoneSurrogate(t *testing.T) {
	b := []byte{0xED, 0xA0, 0xBD} // lone high surrogate U+D83D
	got, err := Decode(UTF8Variants, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("expected lone surrogate to pass through as 3 raw bytes, got %d bytes", len(got))
	}
}

func TestCombineSurrogatePair(t *testing.T) {
	r, ok := CombineSurrogatePair(0xD83D, 0xDE00)
	if !ok || r != 0x1F600 {
		t.Errorf("CombineSurrogatePair(0xD83D, 0xDE00) = (%U, %v), want (U+1F600, true)", r, ok)
	}
	if _, ok := CombineSurrogatePair(0x0041, 0xDE00); ok {
		t.Error("expected failure combining a non-surrogate with a surrogate")
	}
}
