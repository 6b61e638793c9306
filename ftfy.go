// Copyright 2024 The ftfy-go Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ftfy fixes mojibake: text that was encoded in one character
// encoding and decoded as if it were another, producing a visually garbled
// but often losslessly-reversible sequence of codepoints.
//
// This package is the encoding-repair core. Given an already-decoded
// Unicode string, it decides whether the string looks like mojibake,
// searches for a sequence of encode/decode operations that plausibly
// recovers the original text, and applies that plan only when a badness
// score strictly decreases (or, for the narrow auxiliary repairs, does not
// rise) and no heuristic objects. It never touches
// bytes, HTML entities, curly quotes, or any of the other textual cleanups
// a full text-fixing driver composes around it -- see package fixer for
// that.
package ftfy

import (
	"github.com/mojibake-go/ftfy/internal/codec"
	"github.com/mojibake-go/ftfy/internal/heuristic"
	"github.com/mojibake-go/ftfy/internal/model"
	"github.com/mojibake-go/ftfy/internal/search"
)

// StepKind tags which shape a Step takes: encoding a string to bytes,
// decoding bytes to a string, or naming an auxiliary transform.
type StepKind = model.StepKind

const (
	StepEncode    = model.StepEncode
	StepDecode    = model.StepDecode
	StepTransform = model.StepTransform
)

// Transform names one of the narrow auxiliary repairs a Step can carry
// when its Kind is StepTransform.
type Transform = model.Transform

const (
	TransformUnescapeHTML              = model.TransformUnescapeHTML
	TransformUncurlQuotes              = model.TransformUncurlQuotes
	TransformFixSurrogates             = model.TransformFixSurrogates
	TransformFixC1Controls             = model.TransformFixC1Controls
	TransformRestoreByteA0             = model.TransformRestoreByteA0
	TransformReplaceLossySequences     = model.TransformReplaceLossySequences
	TransformDecodeInconsistentUTF8    = model.TransformDecodeInconsistentUTF8
	TransformFixPartialUTF8PunctIn1252 = model.TransformFixPartialUTF8PunctIn1252
)

// Encoding is one of the closed set of encoding identifiers the core
// knows how to encode/decode as part of a repair plan.
type Encoding = codec.ID

// The closed set of encoding identifiers the core can name a repair step
// after.
const (
	UTF8              = codec.UTF8
	UTF8Variants      = codec.UTF8Variants
	Latin1            = codec.Latin1
	SloppyWindows1250 = codec.SloppyWindows1250
	SloppyWindows1251 = codec.SloppyWindows1251
	SloppyWindows1252 = codec.SloppyWindows1252
	SloppyWindows1253 = codec.SloppyWindows1253
	SloppyWindows1254 = codec.SloppyWindows1254
	SloppyWindows1257 = codec.SloppyWindows1257
	MacRoman          = codec.MacRoman
	CP437             = codec.CP437
)

// Step is one transformation in a repair Plan.
type Step = model.Step

// EncodeStep builds a Step that encodes a string as id's bytes.
func EncodeStep(id Encoding) Step { return model.EncodeStep(id) }

// DecodeStep builds a Step that decodes bytes as id.
func DecodeStep(id Encoding) Step { return model.DecodeStep(id) }

// TransformStep builds a Step naming an auxiliary repair.
func TransformStep(t Transform) Step { return model.TransformStep(t) }

// Plan is an ordered sequence of Steps, re-applicable to another string via
// ApplyPlan to mimic the same repair.
type Plan = model.Plan

// ExplainedText is the (fixed string, plan that achieves it) pair the core
// search returns.
type ExplainedText = model.ExplainedText

// Config holds the options the encoding-repair core itself reads.
type Config = model.Config

// DefaultConfig returns the core's default configuration: every auxiliary
// repair enabled, default iteration cap.
func DefaultConfig() Config { return model.DefaultConfig() }

// FixEncoding runs the encoding-repair search to a fixed point and returns
// just the repaired string. It never fails: if no candidate plan improves
// the string, it returns s unchanged.
func FixEncoding(s string, cfg Config) string {
	return search.FixEncoding(s, cfg)
}

// FixEncodingAndExplain is FixEncoding, but also returns the plan of
// encode/decode/transform steps that produced the fix. The plan is empty
// when no step improved the string.
func FixEncodingAndExplain(s string, cfg Config) ExplainedText {
	return search.FixEncodingAndExplain(s, cfg)
}

// ApplyPlan re-executes plan against s, which need not be the string the
// plan was computed from. Individual steps may legally fail against s (a
// byte can't be represented in the target encoding, say); such a step is
// skipped, leaving s unchanged for that step, and the rest of the plan
// still runs. The error return is reserved for a plan that is malformed
// on its face -- a lone encode or decode step, or an unrecognized step
// kind -- which can never legally apply to any string.
func ApplyPlan(s string, plan Plan) (string, error) {
	return search.ApplyPlan(s, plan)
}

// Badness scores how implausible s's codepoint bigrams are. It is the
// objective FixEncoding's search minimizes; it never mutates s and is safe
// to call concurrently.
func Badness(s string) int {
	return heuristic.Badness(s)
}

// IsBad reports whether Badness(s) is strictly positive.
func IsBad(s string) bool {
	return heuristic.IsBad(s)
}

// SetLogger installs a Trace-level diagnostic logger for the encoding
// search: which candidate step was tried, accepted, or rejected and why.
// Logging never changes FixEncoding's return value. Pass nil to silence
// diagnostics again.
func SetLogger(l search.Logger) {
	search.SetLogger(l)
}
