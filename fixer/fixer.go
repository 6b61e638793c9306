// Copyright 2024 The ftfy-go Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixer

import (
	"strings"

	"github.com/mojibake-go/ftfy"
	"github.com/mojibake-go/ftfy/internal/unicodefix"
)

// The fixer-level transform names appended to a Plan's explanation. These
// are not part of the encoding-repair core's closed Transform set (see
// ftfy.Transform); the driver names its own steps the same way so a
// consumer of ExplainedText.Plan can print a single uniform log regardless
// of which layer produced each step.
const (
	TransformRemoveTerminalEscapes ftfy.Transform = "remove_terminal_escapes"
	TransformFixLatinLigatures     ftfy.Transform = "fix_latin_ligatures"
	TransformFixCharacterWidth     ftfy.Transform = "fix_character_width"
	TransformFixLineBreaks         ftfy.Transform = "fix_line_breaks"
	TransformRemoveControlChars    ftfy.Transform = "remove_control_chars"
	TransformRemoveBOM             ftfy.Transform = "remove_bom"
	TransformNormalize             ftfy.Transform = "normalize"
)

// Fix runs FixAndExplain and returns just the fixed string.
func Fix(s string, cfg Config) string {
	result, _ := FixAndExplain(s, cfg)
	return result.Fixed
}

// FixAndExplain runs the whole iterative driver to a fixed point:
//
//	start → maybe apply line-break/control/BOM/entity/terminal/C1/surrogate fixes
//	      → encoding repair (the ftfy core)
//	      → normalization (if requested)
//	      → character-width / latin-ligature / quote uncurl (if requested)
//	      → if changed and iterations remain: loop back to start
//	      → done
//
// It always succeeds; the error return exists for forward compatibility
// with a future auxiliary transform that might need it; today it is
// always nil.
func FixAndExplain(s string, cfg Config) (ftfy.ExplainedText, error) {
	var plan ftfy.Plan
	unescapeHTML := shouldUnescapeHTML(s, cfg.UnescapeHTML)

	for iter := 0; iter < cfg.maxIterationsOrDefault(); iter++ {
		before := s

		s = applyNamed(s, &plan, TransformRemoveBOM, cfg.RemoveControlChars, unicodefix.RemoveBOM)
		s = applyNamed(s, &plan, TransformFixLineBreaks, cfg.FixLineBreaks, unicodefix.FixLineBreaks)
		s = applyNamed(s, &plan, ftfy.TransformUnescapeHTML, unescapeHTML, unicodefix.UnescapeHTML)
		s = applyNamed(s, &plan, TransformRemoveTerminalEscapes, cfg.RemoveTerminalEscapes, unicodefix.StripTerminalEscapes)
		// Decode C1 controls into their likely Windows-1252 characters before
		// RemoveControlChars gets a chance to delete that same byte range
		// outright.
		s = applyNamed(s, &plan, ftfy.TransformFixC1Controls, cfg.FixC1Controls, fixC1ControlsAlways)
		s = applyNamed(s, &plan, TransformRemoveControlChars, cfg.RemoveControlChars, unicodefix.RemoveControlChars)
		s = applyNamed(s, &plan, ftfy.TransformFixSurrogates, true, fixSurrogatesAlways)

		if cfg.FixEncoding {
			explained := ftfy.FixEncodingAndExplain(s, cfg.Config)
			if explained.Fixed != s {
				plan = append(plan, explained.Plan...)
				s = explained.Fixed
			}
		}

		if cfg.Normalization != unicodefix.NoNormalization {
			s = applyNamed(s, &plan, TransformNormalize, true, func(t string) string {
				return unicodefix.Normalize(t, cfg.Normalization)
			})
		}

		s = applyNamed(s, &plan, TransformFixCharacterWidth, cfg.FixCharacterWidth, unicodefix.FixCharacterWidth)
		s = applyNamed(s, &plan, TransformFixLatinLigatures, cfg.FixLatinLigatures, unicodefix.FixLatinLigatures)
		s = applyNamed(s, &plan, ftfy.TransformUncurlQuotes, cfg.UncurlQuotes, unicodefix.UncurlQuotes)

		if s == before {
			return ftfy.ExplainedText{Fixed: s, Plan: plan}, nil
		}
	}
	return ftfy.ExplainedText{Fixed: s, Plan: plan}, nil
}

func applyNamed(s string, plan *ftfy.Plan, name ftfy.Transform, enabled bool, fn func(string) string) string {
	if !enabled {
		return s
	}
	fixed := fn(s)
	if fixed != s {
		*plan = append(*plan, ftfy.TransformStep(name))
	}
	return fixed
}

func shouldUnescapeHTML(s string, mode UnescapeHTMLMode) bool {
	switch mode {
	case UnescapeHTMLAlways:
		return true
	case UnescapeHTMLNever:
		return false
	default:
		return !strings.Contains(s, "<")
	}
}

// fixC1ControlsAlways and fixSurrogatesAlways delegate to internal/repair
// via ftfy's own core, since those transforms are also candidate steps the
// search can try; the driver applies them unconditionally on top so text
// with no other mojibake still gets them.
func fixC1ControlsAlways(s string) string {
	return applyPlanBestEffort(s, ftfy.TransformStep(ftfy.TransformFixC1Controls))
}

func fixSurrogatesAlways(s string) string {
	return applyPlanBestEffort(s, ftfy.TransformStep(ftfy.TransformFixSurrogates))
}

func applyPlanBestEffort(s string, step ftfy.Step) string {
	fixed, err := ftfy.ApplyPlan(s, ftfy.Plan{step})
	if err != nil {
		return s
	}
	return fixed
}
