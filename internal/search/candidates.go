// Copyright 2024 The ftfy-go Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package search implements the encoding-repair search: the engine that
// tries an ordered list of encode/decode repair plans plus the auxiliary
// repairs from internal/repair, accepting a plan only when it strictly
// reduces the badness score (or, for the narrow auxiliary repairs, does not
// raise it) and no gatekeeping heuristic objects.
package search

import (
	"strings"

	"github.com/mojibake-go/ftfy/internal/codec"
	"github.com/mojibake-go/ftfy/internal/model"
	"github.com/mojibake-go/ftfy/internal/repair"
)

// candidate is one step the engine can try against the current string.
// steps is what gets appended to the plan on acceptance: two steps for an
// (encode, decode) pair, one for a named auxiliary transform.
type candidate struct {
	steps  model.Plan
	apply  func(s string) (string, error)
	narrow bool // accepted when new_score <= best_score, not just strictly less
}

// candidates builds this round's ordered list of steps to try against s,
// skipping auxiliary repairs whose cheap trigger check says they can't
// possibly apply.
func candidates(s string, cfg model.Config, recurse func(string) string) []candidate {
	var out []candidate

	for _, encID := range codec.PrimaryOrder {
		for _, decID := range []codec.ID{codec.UTF8, codec.UTF8Variants} {
			encID, decID := encID, decID
			out = append(out, candidate{
				steps: model.Plan{model.EncodeStep(encID), model.DecodeStep(decID)},
				apply: func(s string) (string, error) {
					return codec.EncodeDecode(encID, decID, s)
				},
			})
		}
	}

	if containsSurrogate(s) {
		out = append(out, candidate{
			steps: model.Plan{model.TransformStep(model.TransformFixSurrogates)},
			apply: func(s string) (string, error) { return repair.FixSurrogates(s), nil },
		})
	}

	if cfg.FixC1Controls && hasC1Control(s) {
		out = append(out, candidate{
			steps: model.Plan{model.TransformStep(model.TransformFixC1Controls)},
			apply: func(s string) (string, error) { return repair.FixC1Controls(s), nil },
		})
	}

	if cfg.RestoreByteA0 && strings.Contains(s, "Ã") {
		out = append(out, candidate{
			steps: model.Plan{model.TransformStep(model.TransformRestoreByteA0)},
			apply: func(s string) (string, error) {
				b, err := codec.Encode(codec.SloppyWindows1252, s)
				if err != nil {
					return "", err
				}
				b = repair.RestoreByteA0(b)
				return codec.Decode(codec.UTF8, b)
			},
			narrow: true,
		})
	}

	if cfg.ReplaceLossySequences && strings.ContainsRune(s, '�') {
		out = append(out, candidate{
			steps: model.Plan{model.TransformStep(model.TransformReplaceLossySequences)},
			apply: func(s string) (string, error) {
				b, err := repair.EncodeForLossyRepair(s)
				if err != nil {
					return "", err
				}
				b = repair.ReplaceLossySequences(b)
				return codec.Decode(codec.UTF8, b)
			},
			narrow: true,
		})
	}

	if cfg.DecodeInconsistentUTF8 && repair.LooksLikeMojibake(s) {
		out = append(out, candidate{
			steps: model.Plan{model.TransformStep(model.TransformDecodeInconsistentUTF8)},
			apply: func(s string) (string, error) {
				return repair.DecodeInconsistentUTF8(s, recurse), nil
			},
			narrow: true,
		})
	}

	if strings.Contains(s, "â€") {
		out = append(out, candidate{
			steps: model.Plan{model.TransformStep(model.TransformFixPartialUTF8PunctIn1252)},
			apply: func(s string) (string, error) {
				return repair.FixPartialUTF8PunctIn1252(s), nil
			},
			narrow: true,
		})
	}

	return out
}

func containsSurrogate(s string) bool {
	rs := []byte(s)
	for i := 0; i < len(rs); {
		r, n := codec.DecodeRuneTolerant(rs[i:])
		if n == 0 {
			break
		}
		if codec.IsSurrogate(r) {
			return true
		}
		i += n
	}
	return false
}

func hasC1Control(s string) bool {
	for _, r := range s {
		if r >= 0x80 && r <= 0x9F {
			return true
		}
	}
	return false
}
