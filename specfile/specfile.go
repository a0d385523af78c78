// This file is part of go-getlong.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package specfile - Loads option definitions and parser configuration from HCL or JSON files.

HCL form:

	config {
	  bundling = true
	}

	option "width" {
	  aliases     = ["w"]
	  type        = "integer" # flag, string, integer or float. Default flag.
	  arity       = "required" # none, required or optional. Derived from the type when absent.
	  destination = "list"     # scalar, list or map. Default scalar.
	}

	option "cache" {
	  negatable = true
	}

JSON form:

	{
	  "config": {"bundling": true},
	  "options": [
	    {"name": "width", "aliases": ["w"], "type": "integer", "destination": "list"},
	    {"name": "cache", "negatable": true}
	  ]
	}

Config keys that are not given keep the value from getlong.DefaultConfig.
*/
package specfile

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/DavidGamba/go-getlong"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// ErrorUnsupportedFormat - The file extension is not .hcl or .json.
var ErrorUnsupportedFormat = errors.New("unsupported file format")

// ErrorInvalidValue - An option attribute has a value outside of its allowed set.
var ErrorInvalidValue = errors.New("invalid value")

// File - Decoded definitions file.
type File struct {
	Config  getlong.Config
	Options []getlong.OptionSpec
}

// Parser - Compiles the definitions.
// The error, if any, is the getlong SchemaError *Diagnostic.
func (f *File) Parser() (*getlong.Parser, error) {
	return getlong.New(f.Config, f.Options...)
}

// configDef - Every key is optional, nil keeps the default.
type configDef struct {
	CaseInsensitive      *bool `hcl:"case_insensitive,optional" json:"case_insensitive"`
	AutoAbbreviate       *bool `hcl:"auto_abbreviate,optional" json:"auto_abbreviate"`
	Bundling             *bool `hcl:"bundling,optional" json:"bundling"`
	BundlingOverride     *bool `hcl:"bundling_override,optional" json:"bundling_override"`
	RequireOrder         *bool `hcl:"require_order,optional" json:"require_order"`
	AllowSingleDashWords *bool `hcl:"allow_single_dash_words,optional" json:"allow_single_dash_words"`
	PassThrough          *bool `hcl:"pass_through,optional" json:"pass_through"`
}

type optionDef struct {
	Name        string   `hcl:"name,label" json:"name"`
	Aliases     []string `hcl:"aliases,optional" json:"aliases"`
	Type        string   `hcl:"type,optional" json:"type"`
	Arity       string   `hcl:"arity,optional" json:"arity"`
	Destination string   `hcl:"destination,optional" json:"destination"`
	Negatable   bool     `hcl:"negatable,optional" json:"negatable"`
}

// Load - Reads the file and decodes it based on its extension.
func Load(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}
	return Parse(path, src)
}

// Parse - Decodes the given source, the filename extension determines the format.
func Parse(filename string, src []byte) (*File, error) {
	Logger.Printf("parse definitions: %s\n", filename)
	switch filepath.Ext(filename) {
	case ".hcl":
		return parseHCL(filename, src)
	case ".json":
		return parseJSON(filename, src)
	}
	return nil, fmt.Errorf("%w: '%s'", ErrorUnsupportedFormat, filename)
}

func newFile(filename string, c *configDef, defs []*optionDef) (*File, error) {
	f := &File{
		Config:  c.apply(getlong.DefaultConfig()),
		Options: make([]getlong.OptionSpec, 0, len(defs)),
	}
	for _, def := range defs {
		spec, err := def.spec()
		if err != nil {
			return nil, fmt.Errorf("%s: option '%s': %w", filename, def.Name, err)
		}
		f.Options = append(f.Options, spec)
	}
	Logger.Printf("definitions %s: %d options, config: %+v\n", filename, len(f.Options), f.Config)
	return f, nil
}

func (c *configDef) apply(config getlong.Config) getlong.Config {
	if c == nil {
		return config
	}
	set := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	set(&config.CaseInsensitive, c.CaseInsensitive)
	set(&config.AutoAbbreviate, c.AutoAbbreviate)
	set(&config.Bundling, c.Bundling)
	set(&config.BundlingOverride, c.BundlingOverride)
	set(&config.RequireOrder, c.RequireOrder)
	set(&config.AllowSingleDashWords, c.AllowSingleDashWords)
	set(&config.PassThrough, c.PassThrough)
	return config
}

func (def *optionDef) spec() (getlong.OptionSpec, error) {
	spec := getlong.OptionSpec{
		Names:     append([]string{def.Name}, def.Aliases...),
		Negatable: def.Negatable,
	}

	switch def.Type {
	case "", getlong.FlagType.String():
		spec.Type = getlong.FlagType
	case getlong.StringType.String():
		spec.Type = getlong.StringType
	case getlong.IntType.String():
		spec.Type = getlong.IntType
	case getlong.FloatType.String():
		spec.Type = getlong.FloatType
	default:
		return spec, fmt.Errorf("%w for type: '%s'", ErrorInvalidValue, def.Type)
	}

	switch def.Arity {
	case "":
		if spec.Type != getlong.FlagType {
			spec.Arity = getlong.ArityRequired
		}
	case getlong.ArityNone.String():
		spec.Arity = getlong.ArityNone
	case getlong.ArityRequired.String():
		spec.Arity = getlong.ArityRequired
	case getlong.ArityOptional.String():
		spec.Arity = getlong.ArityOptional
	default:
		return spec, fmt.Errorf("%w for arity: '%s'", ErrorInvalidValue, def.Arity)
	}

	// Callbacks can't be declared in a file, there is no handler to call.
	switch def.Destination {
	case "", getlong.Scalar.String():
		spec.Destination = getlong.Scalar
	case getlong.List.String():
		spec.Destination = getlong.List
	case getlong.Map.String():
		spec.Destination = getlong.Map
	default:
		return spec, fmt.Errorf("%w for destination: '%s'", ErrorInvalidValue, def.Destination)
	}
	return spec, nil
}
