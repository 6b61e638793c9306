// Copyright 2024 The ftfy-go Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package model holds the types shared between internal/search and the
// root ftfy package, so that neither has to import the other. ftfy
// re-exports these as type aliases in its public API.
package model

import "github.com/mojibake-go/ftfy/internal/codec"

// StepKind tags which shape a Step takes.
type StepKind int

const (
	StepEncode StepKind = iota
	StepDecode
	StepTransform
)

func (k StepKind) String() string {
	switch k {
	case StepEncode:
		return "encode"
	case StepDecode:
		return "decode"
	case StepTransform:
		return "transform"
	default:
		return "unknown"
	}
}

// Transform names the auxiliary repairs a Step can name when Kind is
// StepTransform.
type Transform string

const (
	TransformUnescapeHTML               Transform = "unescape_html"
	TransformUncurlQuotes               Transform = "uncurl_quotes"
	TransformFixSurrogates              Transform = "fix_surrogates"
	TransformFixC1Controls              Transform = "fix_c1_controls"
	TransformRestoreByteA0              Transform = "restore_byte_a0"
	TransformReplaceLossySequences      Transform = "replace_lossy_sequences"
	TransformDecodeInconsistentUTF8     Transform = "decode_inconsistent_utf8"
	TransformFixPartialUTF8PunctIn1252  Transform = "fix_partial_utf8_punct_in_1252"
)

// Step is one transformation in a repair Plan: either an encode/decode
// round-trip through a named encoding, or a named auxiliary transform.
type Step struct {
	Kind      StepKind
	Encoding  codec.ID  // set when Kind == StepEncode or StepDecode
	Transform Transform // set when Kind == StepTransform
}

func EncodeStep(id codec.ID) Step    { return Step{Kind: StepEncode, Encoding: id} }
func DecodeStep(id codec.ID) Step    { return Step{Kind: StepDecode, Encoding: id} }
func TransformStep(t Transform) Step { return Step{Kind: StepTransform, Transform: t} }

// String renders a Step the way a plan is displayed for explanation output.
func (s Step) String() string {
	switch s.Kind {
	case StepEncode:
		return "encode(" + string(s.Encoding) + ")"
	case StepDecode:
		return "decode(" + string(s.Encoding) + ")"
	case StepTransform:
		return "transform(" + string(s.Transform) + ")"
	default:
		return "unknown"
	}
}

// Plan is an ordered sequence of Steps.
type Plan []Step

// ExplainedText is the (fixed string, plan that achieves it) pair the core
// search returns.
type ExplainedText struct {
	Fixed string
	Plan  Plan
}

// Config holds the options the encoding-repair core itself reads. The
// driver-level config (fixer.Config) embeds this for the fields it
// doesn't own itself.
type Config struct {
	// DecodeInconsistentUTF8 allows the decode_inconsistent_utf8 auxiliary
	// repair as a candidate step.
	DecodeInconsistentUTF8 bool

	// FixC1Controls allows the fix_c1_controls transform as a candidate
	// step.
	FixC1Controls bool

	// RestoreByteA0 allows the restore_byte_a0 auxiliary repair as a
	// candidate step.
	RestoreByteA0 bool

	// ReplaceLossySequences allows the U+FFFD quarantining transform as a
	// candidate step.
	ReplaceLossySequences bool

	// MaxIterations hard-caps search depth. Zero means "use the default".
	MaxIterations int
}

// DefaultMaxIterations is the hard cap on search depth used when
// Config.MaxIterations is left at zero, keeping the search from spinning
// forever on adversarial or pathological input.
const DefaultMaxIterations = 16

// DefaultConfig returns the core's default configuration: every auxiliary
// repair enabled, default iteration cap.
func DefaultConfig() Config {
	return Config{
		DecodeInconsistentUTF8: true,
		FixC1Controls:          true,
		RestoreByteA0:          true,
		ReplaceLossySequences:  true,
		MaxIterations:          DefaultMaxIterations,
	}
}

// MaxIterationsOrDefault returns c.MaxIterations, or DefaultMaxIterations if unset.
func (c Config) MaxIterationsOrDefault() int {
	if c.MaxIterations <= 0 {
		return DefaultMaxIterations
	}
	return c.MaxIterations
}
