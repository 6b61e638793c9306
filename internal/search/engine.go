// Copyright 2024 The ftfy-go Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package search

import (
	"github.com/mojibake-go/ftfy/internal/charclass"
	"github.com/mojibake-go/ftfy/internal/heuristic"
	"github.com/mojibake-go/ftfy/internal/model"
	"github.com/mojibake-go/ftfy/internal/repair"
)

// FixEncodingAndExplain runs the encoding-repair search to a fixed point
// and returns both the repaired string and the plan that produced it.
func FixEncodingAndExplain(s string, cfg model.Config) model.ExplainedText {
	if !charclass.AnyInMojibakeSet(s) {
		return model.ExplainedText{Fixed: s, Plan: nil}
	}

	score := heuristic.Badness(s)
	if score == 0 && !repair.LooksLikeMojibake(s) {
		return model.ExplainedText{Fixed: s, Plan: nil}
	}

	fixed, plan := run(s, cfg, 0)
	return model.ExplainedText{Fixed: fixed, Plan: plan}
}

// FixEncoding is the projection of FixEncodingAndExplain onto just the
// repaired string.
func FixEncoding(s string, cfg model.Config) string {
	return FixEncodingAndExplain(s, cfg).Fixed
}

func run(s string, cfg model.Config, depth int) (string, model.Plan) {
	if depth >= cfg.MaxIterationsOrDefault() {
		return s, nil
	}

	bestScore := heuristic.AdjustedBadness(s)
	recurse := func(sub string) string {
		return FixEncoding(sub, cfg)
	}

	var (
		bestResult string
		bestSteps  model.Plan
		found      bool
	)

	for _, c := range candidates(s, cfg, recurse) {
		result, err := c.apply(s)
		if err != nil {
			activeLogger.Tracef("search: candidate %v rejected: %v", c.steps, err)
			continue
		}
		if result == s {
			continue
		}
		newScore := heuristic.AdjustedBadness(result)

		if c.narrow {
			if newScore > bestScore {
				activeLogger.Tracef("search: candidate %v rejected: score %d > %d", c.steps, newScore, bestScore)
				continue
			}
		} else if newScore >= bestScore {
			activeLogger.Tracef("search: candidate %v rejected: score %d >= %d", c.steps, newScore, bestScore)
			continue
		}
		if !accepted(s, result) {
			activeLogger.Tracef("search: candidate %v rejected by gatekeeping heuristics", c.steps)
			continue
		}
		if !found || newScore < heuristic.AdjustedBadness(bestResult) {
			bestResult = result
			bestSteps = c.steps
			found = true
		}
	}

	if !found {
		return s, nil
	}
	activeLogger.Tracef("search: accepted %v at depth %d", bestSteps, depth)

	rest, restPlan := run(bestResult, cfg, depth+1)
	plan := append(model.Plan{}, bestSteps...)
	plan = append(plan, restPlan...)
	return rest, plan
}
