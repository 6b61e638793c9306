// Copyright 2024 The ftfy-go Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package charclass

import "testing"

func TestCategory(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want Class
	}{
		{"space", ' ', Space},
		{"tab", '\t', Whitespace},
		{"ascii letter", 'a', LatinLetter},
		{"accented letter", 'é', AccentedLetter},
		{"cjk", '語', CJK},
		{"cyrillic", 'я', OtherLetter},
		{"digit", '7', Digit},
		{"c1 control", rune(0x85), C1Control},
		{"ascii control", rune(0x01), ASCIIControl},
		{"curly quote", '“', Quote},
		{"straight quote", '\'', Quote},
		{"box drawing", '─', BoxDrawing},
		{"currency", '€', Currency},
		{"punctuation", '.', Punctuation},
		{"replacement char", '�', Unassigned},
		{"combining mark", '́', Mark},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Category(test.r); got != test.want {
				t.Errorf("Category(%q) = %v, want %v", test.r, got, test.want)
			}
		})
	}
}

func TestInMojibakeSet(t *testing.T) {
	if !InMojibakeSet(rune(0xC3)) {
		t.Error("U+00C3 should be in the mojibake set")
	}
	if !InMojibakeSet('€') {
		t.Error("U+20AC (windows-1252 high-half) should be in the mojibake set")
	}
	if InMojibakeSet('a') {
		t.Error("plain ASCII letter should not be in the mojibake set")
	}
}

func TestAnyInMojibakeSet(t *testing.T) {
	if !AnyInMojibakeSet("schÃ¶n") {
		t.Error("expected at least one mojibake-set codepoint in \"schÃ¶n\"")
	}
	if AnyInMojibakeSet("hello world") {
		t.Error("plain ASCII text should have no mojibake-set codepoints")
	}
}
