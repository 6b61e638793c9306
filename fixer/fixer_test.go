// Copyright 2024 The ftfy-go Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRepeatedMojibakeReachesFixedPoint checks a string that has been
// mis-decoded three times over, which the encoding-repair core alone
// cannot fully unwind in one pass -- it needs the driver's own outer loop
// to reach the fully-repaired string.
func TestRepeatedMojibakeReachesFixedPoint(t *testing.T) {
	in := "The Mona Lisa doesnÃƒÂ¢Ã¢â€šÂ¬Ã¢â€žÂ¢t have eyebrows."
	want := "The Mona Lisa doesn’t have eyebrows."
	got := Fix(in, DefaultConfig())
	assert.Equal(t, want, got)
}

// TestCurlyQuoteMojibake checks mis-decoded curly quotes: the encoding
// repair alone recovers the curly-quote glyphs, then UncurlQuotes folds
// them to straight ASCII, which belongs to the driver rather than the
// core.
func TestCurlyQuoteMojibake(t *testing.T) {
	in := "â€œmismatched quotesâ€¦"
	cfg := DefaultConfig()

	withoutUncurl := cfg
	withoutUncurl.UncurlQuotes = false
	assert.Equal(t, "“mismatched quotes…", Fix(in, withoutUncurl))

	assert.Equal(t, "\"mismatched quotes…", Fix(in, cfg))
}

func TestFixIdempotent(t *testing.T) {
	cfg := DefaultConfig()
	for _, in := range []string{
		"schÃ¶n",
		"The Mona Lisa doesnÃƒÂ¢Ã¢â€šÂ¬Ã¢â€žÂ¢t have eyebrows.",
		"hello, world",
		"Broken text&hellip; itâ€™s ﬂubberiﬁc!",
	} {
		once := Fix(in, cfg)
		twice := Fix(once, cfg)
		assert.Equal(t, once, twice, "not idempotent for %q", in)
	}
}

func TestUnescapeHTMLAutoSkipsLiteralAngleBracket(t *testing.T) {
	cfg := DefaultConfig()
	in := "<b>bold&amp;</b>"
	got := Fix(in, cfg)
	assert.Contains(t, got, "&amp;")
}

func TestFixComposesLigaturesWidthAndEntities(t *testing.T) {
	cfg := DefaultConfig()
	got := Fix("Broken text&hellip; it&#x2019;s ﬂubberiﬁc!", cfg)
	assert.Equal(t, "Broken text… it's flubberific!", got)
}

func TestFixAndExplainReturnsNonEmptyPlanWhenChanged(t *testing.T) {
	result, err := FixAndExplain("schÃ¶n", DefaultConfig())
	assert.NoError(t, err)
	assert.Equal(t, "schön", result.Fixed)
	assert.NotEmpty(t, result.Plan)
}

func TestFixAndExplainNoOpOnCleanText(t *testing.T) {
	result, err := FixAndExplain("hello, world", DefaultConfig())
	assert.NoError(t, err)
	assert.Equal(t, "hello, world", result.Fixed)
	assert.Empty(t, result.Plan)
}
