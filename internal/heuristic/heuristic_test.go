// Copyright 2024 The ftfy-go Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package heuristic

import "testing"

func TestBadnessShortCircuitsOutsideMojibakeSet(t *testing.T) {
	if Badness("hello world, 2024!") != 0 {
		t.Error("plain ASCII text should score 0")
	}
}

func TestBadnessDetectsKnownPrefix(t *testing.T) {
	if Badness("schÃ¶n") <= 0 {
		t.Error("expected positive badness for \"schÃ¶n\"")
	}
}

func TestBadnessTripleMojibake(t *testing.T) {
	if Badness("â€œquotedâ€") <= 0 {
		t.Error("expected positive badness for a smart-quote mojibake triple")
	}
}

func TestIsBad(t *testing.T) {
	if IsBad("plain text") {
		t.Error("plain text should not be flagged as bad")
	}
	if !IsBad("voilÃ  le travail") {
		t.Error("expected mojibake text to be flagged as bad")
	}
}

func TestAdjustedBadnessFloorsAtZero(t *testing.T) {
	// Badness is 0 and the NBSP earns one bonus point, so the raw adjusted
	// score would be -1.
	if got := AdjustedBadness("café "); got != 0 {
		t.Errorf("AdjustedBadness(caf\\u00e9\\u00a0) = %d, want 0", got)
	}
}
