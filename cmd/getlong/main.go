// This file is part of go-getlong.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// getlong - Parses command line arguments against an HCL or JSON definitions
// file and prints the result.
//
//	getlong [--debug] [--format json|hcl] --schema FILE [--] ARGS...
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/DavidGamba/go-getlong"
	"github.com/DavidGamba/go-getlong/internal/option"
	"github.com/DavidGamba/go-getlong/render"
	"github.com/DavidGamba/go-getlong/specfile"
)

const usage = `SYNOPSIS:
    getlong [--debug] [--format json|hcl] --schema <file> [--] <args>...

OPTIONS:
    --schema|-s <file>      HCL (.hcl) or JSON (.json) option definitions.

    --format|-f <format>    Output format: json or hcl (default: json).

    --debug                 Print debug logs to stderr.

    --help|-h|-?            Show this help.

Parsing of getlong's own options stops at the first operand, use '--' when
the first arg to parse starts with '-'.
`

func main() {
	os.Exit(program(os.Args, os.Stdout, os.Stderr))
}

func program(args []string, stdout, stderr io.Writer) int {
	config := getlong.DefaultConfig()
	config.RequireOrder = true
	p := getlong.MustNew(config,
		getlong.Flag("help", "h", "?"),
		getlong.Flag("debug"),
		getlong.String("format", "f"),
		getlong.String("schema", "s"),
	)
	res := p.Parse(args[1:])
	if !res.OK {
		for _, d := range res.Diagnostics {
			fmt.Fprintf(stderr, "ERROR: %s\n", d)
		}
		fmt.Fprintf(stderr, "\n%s", usage)
		return 1
	}
	if res.Called("help") {
		fmt.Fprint(stdout, usage)
		return 0
	}
	if res.Called("debug") {
		getlong.Logger.SetOutput(stderr)
		option.Logger.SetOutput(stderr)
		specfile.Logger.SetOutput(stderr)
	}

	format := "json"
	if v, ok := res.Value("format"); ok {
		format = v.(string)
	}
	if format != "json" && format != "hcl" {
		fmt.Fprintf(stderr, "ERROR: unknown format '%s'\n", format)
		return 1
	}
	schema, ok := res.Value("schema")
	if !ok {
		fmt.Fprintf(stderr, "ERROR: missing --schema\n\n%s", usage)
		return 1
	}

	f, err := specfile.Load(schema.(string))
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %s\n", err)
		return 1
	}
	parser, err := f.Parser()
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %s\n", err)
		return 1
	}

	out := parser.Parse(res.Operands)
	var b []byte
	switch format {
	case "hcl":
		b = render.HCL(out)
	default:
		b, err = render.JSON(out)
		if err != nil {
			fmt.Fprintf(stderr, "ERROR: %s\n", err)
			return 1
		}
	}
	_, _ = stdout.Write(b)

	if !out.OK {
		for _, d := range out.Diagnostics {
			fmt.Fprintf(stderr, "ERROR: %s\n", d)
		}
		return 1
	}
	return 0
}
