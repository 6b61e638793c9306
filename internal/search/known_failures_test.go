// Copyright 2024 The ftfy-go Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mojibake-go/ftfy/internal/codec"
	"github.com/mojibake-go/ftfy/internal/model"
)

// These record inputs the search is known not to repair: cases where the
// badness heuristic genuinely cannot tell the mojibake reading from the
// intended one, or where two layers of mis-decoding land on a string that
// looks less bad than the original. They exist so a future change to the
// heuristic or search order that happens to fix one of these is noticed,
// not silently lost.

// TestKnownFailureLatin1MacRomanMixup: MacRoman and Latin-1 assign
// completely different glyphs to the high half of the byte range, and no
// encode/decode pair in the search maps one back onto the other. Here
// MacRoman's é (0x8E) read as Latin-1 is the C1 control U+008E, which the
// C1-control repair reads as Windows-1252's Ž rather than é.
func TestKnownFailureLatin1MacRomanMixup(t *testing.T) {
	t.Skip("known failure: Latin-1/MacRoman mixups don't reliably raise badness")

	orig := "café society"
	macRoman, ok := codec.Get(codec.MacRoman)
	require.True(t, ok, "macroman codec not registered")
	b, err := macRoman.EncodeToBytes(orig)
	require.NoError(t, err)
	latin1, ok := codec.Get(codec.Latin1)
	require.True(t, ok, "latin-1 codec not registered")
	mojibake, err := latin1.DecodeFromBytes(b)
	require.NoError(t, err)

	got := FixEncoding(mojibake, model.DefaultConfig())
	require.Equal(t, orig, got)
}

// TestKnownFailureTwoLevelInconsistentMojibake: text that was run through
// two different, inconsistent rounds of encode/decode confusion within the
// same string (some runs sloppy-windows-1252, others latin-1) can settle
// on a local minimum the search's single linear PrimaryOrder walk doesn't
// escape, since fixing one run's encoding can raise the other run's local
// badness contribution.
func TestKnownFailureTwoLevelInconsistentMojibake(t *testing.T) {
	t.Skip("known failure: two-level inconsistent mojibake within one string")

	orig := "café — naïve"
	w1252, ok := codec.Get(codec.SloppyWindows1252)
	require.True(t, ok, "sloppy-windows-1252 codec not registered")
	latin1, ok := codec.Get(codec.Latin1)
	require.True(t, ok, "latin-1 codec not registered")

	split := strings.Index(orig, " — ")
	require.Positive(t, split)
	firstHalf, secondHalf := orig[:split], orig[split:]

	firstBytes, err := w1252.EncodeToBytes(firstHalf)
	require.NoError(t, err)
	firstMojibake, err := latin1.DecodeFromBytes(firstBytes)
	require.NoError(t, err)

	mojibake := firstMojibake + secondHalf

	got := FixEncoding(mojibake, model.DefaultConfig())
	require.Equal(t, orig, got)
}
