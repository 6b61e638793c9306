// Copyright 2024 The ftfy-go Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package search

import (
	"github.com/cockroachdb/errors"

	"github.com/mojibake-go/ftfy/internal/codec"
	"github.com/mojibake-go/ftfy/internal/model"
	"github.com/mojibake-go/ftfy/internal/repair"
)

// ApplyPlan re-applies a previously computed plan to s, which need not be
// the string the plan was originally computed from. Encode/decode steps are
// always paired in the plans this package produces, so ApplyPlan walks them
// two at a time. A step that is individually inapplicable to this
// particular s -- an encode step hitting a byte the target encoding can't
// represent, say -- is expected when replaying a plan across a different
// string than the one it was computed from: that step is skipped and s is
// left as it was, and the rest of the plan still runs. The error return is
// reserved for a malformed plan itself (a lone encode or decode step, or an
// unrecognized step kind), which can never legally apply to any string.
func ApplyPlan(s string, plan model.Plan) (string, error) {
	cfg := model.DefaultConfig()
	recurse := func(sub string) string { return FixEncoding(sub, cfg) }

	i := 0
	for i < len(plan) {
		step := plan[i]
		switch step.Kind {
		case model.StepEncode:
			if i+1 >= len(plan) || plan[i+1].Kind != model.StepDecode {
				return "", errors.Newf("search: encode step at %d has no matching decode step", i)
			}
			if result, err := codec.EncodeDecode(step.Encoding, plan[i+1].Encoding, s); err == nil {
				s = result
			}
			i += 2
		case model.StepDecode:
			return "", errors.Newf("search: unexpected decode step at %d with no preceding encode", i)
		case model.StepTransform:
			if result, err := applyTransform(step.Transform, s, recurse); err == nil {
				s = result
			}
			i++
		default:
			return "", errors.Newf("search: unknown step kind at %d", i)
		}
	}
	return s, nil
}

func applyTransform(t model.Transform, s string, recurse func(string) string) (string, error) {
	switch t {
	case model.TransformFixSurrogates:
		return repair.FixSurrogates(s), nil
	case model.TransformFixC1Controls:
		return repair.FixC1Controls(s), nil
	case model.TransformRestoreByteA0:
		b, err := codec.Encode(codec.SloppyWindows1252, s)
		if err != nil {
			return "", err
		}
		return codec.Decode(codec.UTF8, repair.RestoreByteA0(b))
	case model.TransformReplaceLossySequences:
		b, err := repair.EncodeForLossyRepair(s)
		if err != nil {
			return "", err
		}
		return codec.Decode(codec.UTF8, repair.ReplaceLossySequences(b))
	case model.TransformDecodeInconsistentUTF8:
		return repair.DecodeInconsistentUTF8(s, recurse), nil
	case model.TransformFixPartialUTF8PunctIn1252:
		return repair.FixPartialUTF8PunctIn1252(s), nil
	default:
		return "", errors.Newf("search: unsupported transform %q in plan", t)
	}
}
