// Copyright 2024 The ftfy-go Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command ftfy is a small CLI front-end over package fixer, for fixing
// text piped in from stdin or read from files on disk.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli"

	"github.com/mojibake-go/ftfy"
	"github.com/mojibake-go/ftfy/fixer"
)

func main() {
	app := cli.NewApp()
	app.Name = "ftfy"
	app.Usage = "fix mojibake and other broken Unicode in text"
	app.Version = "0.1.0"
	app.ArgsUsage = "[file ...]"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "explain",
			Usage: "print the repair plan to stderr as JSON",
		},
		cli.BoolFlag{
			Name:  "encoding-only",
			Usage: "run only the encoding-repair core, skipping entity/quote/ligature cleanups",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "ftfy:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg := fixer.DefaultConfig()

	readers, err := inputs(c.Args())
	if err != nil {
		return err
	}

	for _, r := range readers {
		b, err := io.ReadAll(r)
		r.Close()
		if err != nil {
			return errors.Wrap(err, "ftfy: reading input")
		}
		if err := fixOne(string(b), cfg, c.Bool("explain"), c.Bool("encoding-only")); err != nil {
			return err
		}
	}
	return nil
}

func fixOne(text string, cfg fixer.Config, explain, encodingOnly bool) error {
	if encodingOnly {
		result := ftfy.FixEncodingAndExplain(text, cfg.Config)
		fmt.Print(result.Fixed)
		if explain {
			return printPlan(result.Plan)
		}
		return nil
	}

	result, err := fixer.FixAndExplain(text, cfg)
	if err != nil {
		return errors.Wrap(err, "ftfy: fixing text")
	}
	fmt.Print(result.Fixed)
	if explain {
		return printPlan(result.Plan)
	}
	return nil
}

func printPlan(plan ftfy.Plan) error {
	type step struct {
		Kind      string `json:"kind"`
		Encoding  string `json:"encoding,omitempty"`
		Transform string `json:"transform,omitempty"`
	}
	out := make([]step, 0, len(plan))
	for _, s := range plan {
		out = append(out, step{
			Kind:      s.Kind.String(),
			Encoding:  string(s.Encoding),
			Transform: string(s.Transform),
		})
	}
	enc := json.NewEncoder(os.Stderr)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func inputs(args cli.Args) ([]io.ReadCloser, error) {
	if len(args) == 0 {
		return []io.ReadCloser{io.NopCloser(os.Stdin)}, nil
	}
	readers := make([]io.ReadCloser, 0, len(args))
	for _, name := range args {
		f, err := os.Open(name)
		if err != nil {
			return nil, errors.Wrapf(err, "ftfy: opening %s", name)
		}
		readers = append(readers, f)
	}
	return readers, nil
}
