// Copyright 2024 The ftfy-go Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mojibake-go/ftfy/internal/codec"
	"github.com/mojibake-go/ftfy/internal/model"
)

func TestFixEncodingCommonMojibake(t *testing.T) {
	cfg := model.DefaultConfig()
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"schoen", "schÃ¶n", "schön"},
		{"thai_and_note", "(Ã Â¸â¡'Ã¢ÅÂ£')Ã Â¸â¡", "(ง'⌣')ง"},
		{"byte_a0_grave", "Ã  perturber la rÃ©flexion", "à perturber la réflexion"},
		{"lossy_sequences", "Ã¢€œlossy decodingÃ¢€�", "“lossy decoding�"},
		{"isolated_a_grave", "voilÃ  le travail", "voilà le travail"},
		{"isolated_u_circumflex", "aoÃ»t", "août"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := FixEncoding(c.in, cfg)
			assert.Equal(t, c.want, got)
		})
	}
}

// TestFixEncodingRepairsMismatchedQuoteMojibake checks a mojibake'd curly
// open quote and a mojibake'd ellipsis whose leading "â" was itself
// mis-decoded once more (as "Ã¢"): both are repaired, and the plain ASCII
// text between them is left untouched.
func TestFixEncodingRepairsMismatchedQuoteMojibake(t *testing.T) {
	cfg := model.DefaultConfig()
	in := "Ã¢€œmismatched quotesÃ¢€¦"
	want := "“mismatched quotes…"
	assert.Equal(t, want, FixEncoding(in, cfg))
}

func TestFixEncodingLeavesCleanTextAlone(t *testing.T) {
	cfg := model.DefaultConfig()
	cases := []struct {
		name string
		in   string
	}{
		{"cp437_box_drawing", "╔╤a╜a═a╜a═a"},
		{"accented_capital_ellipsis", "IL Y MARQUÉ…"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			result := FixEncodingAndExplain(c.in, cfg)
			assert.Equal(t, c.in, result.Fixed)
			assert.Empty(t, result.Plan)
		})
	}
}

func TestFixEncodingAndExplainReturnsAPlanForRepairedText(t *testing.T) {
	cfg := model.DefaultConfig()
	result := FixEncodingAndExplain("schÃ¶n", cfg)
	assert.Equal(t, "schön", result.Fixed)
	if assert.Len(t, result.Plan, 2) {
		assert.Equal(t, model.StepEncode, result.Plan[0].Kind)
		assert.Equal(t, model.StepDecode, result.Plan[1].Kind)
	}
}

func TestApplyPlanReproducesFixEncodingAndExplain(t *testing.T) {
	cfg := model.DefaultConfig()
	in := "schÃ¶n"
	result := FixEncodingAndExplain(in, cfg)

	replayed, err := ApplyPlan(in, result.Plan)
	assert.NoError(t, err)
	assert.Equal(t, result.Fixed, replayed)
}

// TestApplyPlanSkipsStepThatCannotApplyToThisString replays a plan computed
// from one string against a different string where the encode half of the
// plan hits a rune sloppy-windows-1252 can't represent. That step must be
// skipped, not treated as fatal, since a plan is expected to be replayed
// across a corpus of strings it was never computed from.
func TestApplyPlanSkipsStepThatCannotApplyToThisString(t *testing.T) {
	cfg := model.DefaultConfig()
	trained := FixEncodingAndExplain("schÃ¶n", cfg)
	require.NotEmpty(t, trained.Plan)
	require.Equal(t, model.StepEncode, trained.Plan[0].Kind)
	require.Equal(t, codec.SloppyWindows1252, trained.Plan[0].Encoding)

	unrelated := "日本語"
	_, err := codec.Encode(codec.SloppyWindows1252, unrelated)
	require.Error(t, err, "test assumption: this string must not be representable in the plan's encode step")

	replayed, err := ApplyPlan(unrelated, trained.Plan)
	require.NoError(t, err)
	assert.Equal(t, unrelated, replayed, "an inapplicable step should be skipped, leaving the string untouched")
}

// TestApplyPlanRejectsMalformedPlan checks that a lone encode step with no
// matching decode step is still a hard error: unlike a step that merely
// can't apply to a particular string, a plan shaped like this could never
// legally apply to any string.
func TestApplyPlanRejectsMalformedPlan(t *testing.T) {
	_, err := ApplyPlan("hello", model.Plan{model.EncodeStep(codec.SloppyWindows1252)})
	assert.Error(t, err)
}
