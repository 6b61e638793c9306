// Copyright 2024 The ftfy-go Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fixer is the thin driver that composes the ftfy encoding-repair
// core with the textual cleanups that sit outside it (HTML entity decode,
// terminal-escape stripping, curly-quote uncurl, C1 controls, line-break
// and control-character normalization, ligature/width folding, and
// Unicode normal-form selection), iterating the whole pipeline to a fixed
// point.
package fixer

import (
	"github.com/mojibake-go/ftfy"
	"github.com/mojibake-go/ftfy/internal/unicodefix"
)

// UnescapeHTMLMode selects when the driver decodes HTML entities.
type UnescapeHTMLMode int

const (
	// UnescapeHTMLAuto decodes entities unless the segment contains a
	// literal '<', which suggests the input is actual HTML markup whose
	// entities should be left for an HTML parser to handle.
	UnescapeHTMLAuto UnescapeHTMLMode = iota
	UnescapeHTMLAlways
	UnescapeHTMLNever
)

// Config holds the driver-level options, embedding ftfy.Config for the
// options the encoding-repair core itself reads.
type Config struct {
	ftfy.Config

	UnescapeHTML          UnescapeHTMLMode
	FixEncoding           bool
	RemoveTerminalEscapes bool
	FixLatinLigatures     bool
	FixCharacterWidth     bool
	UncurlQuotes          bool
	FixLineBreaks         bool
	RemoveControlChars    bool
	Normalization         unicodefix.NormalForm

	// MaxIterations caps how many times the whole state machine loops
	// before giving up on reaching a fixed point. Zero means "use the
	// default" (16, matching ftfy.Config's core-level default).
	MaxIterations int
}

// DefaultMaxIterations mirrors ftfy's core-level default: the driver
// should not loop indefinitely on pathological input.
const DefaultMaxIterations = 16

// DefaultConfig returns every fixer-level cleanup enabled, NFC
// normalization, and the core defaults from ftfy.DefaultConfig.
func DefaultConfig() Config {
	return Config{
		Config:                ftfy.DefaultConfig(),
		UnescapeHTML:          UnescapeHTMLAuto,
		FixEncoding:           true,
		RemoveTerminalEscapes: true,
		FixLatinLigatures:     true,
		FixCharacterWidth:     true,
		UncurlQuotes:          true,
		FixLineBreaks:         true,
		RemoveControlChars:    true,
		Normalization:         unicodefix.NFC,
		MaxIterations:         DefaultMaxIterations,
	}
}

func (c Config) maxIterationsOrDefault() int {
	if c.MaxIterations <= 0 {
		return DefaultMaxIterations
	}
	return c.MaxIterations
}
