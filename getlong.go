// This file is part of go-getlong.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package getlong - Go option parsing engine inspired on the flexibility of Perl’s
GetOpt::Long.

It operates on any given slice of strings and a list of option definitions,
and returns a Result with the option values, the remaining operands and every
problem found while parsing.

Usage

The following is a basic example:

	import "github.com/DavidGamba/go-getlong"

	p, err := getlong.New(getlong.DefaultConfig(),
		getlong.Flag("verbose", "v"),
		getlong.Int("width", "w"),
		getlong.String("define", "D").SetMap(),
	)
	if err != nil {
		// Definition error, fix the program!
	}

	result := p.Parse(os.Args[1:])
	if !result.OK {
		for _, d := range result.Diagnostics {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", d)
		}
		os.Exit(1)
	}
	if result.Called("verbose") {
		// ... do something
	}
	width := result.Values["width"].(int)

Features

* Support for `--long` options and for `-long` options when bundling is off.

* Bundling of single letter options, `-abc` is `-a -b -c`, and `-w80` is `-w 80`.

* Case insensitive matching and unique abbreviations of option words.

* Multiple aliases for the same option. e.g. `help`, `man`.

* Flag, string, int and float64 values delivered as a scalar, appended to a
list, inserted into a key=value map or passed to a handler.

* Supports passing `--` to stop parsing arguments (everything after goes to the operands).

* Permute (default) or require order parsing.

Errors

Errors in the option definitions are returned by New.
Parse never fails, errors in the given args are collected as Diagnostics so
all of them can be reported at once.
*/
package getlong

import (
	"fmt"
	"io"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/DavidGamba/go-getlong/internal/option"
	"github.com/DavidGamba/go-getlong/internal/sliceiterator"
	"github.com/DavidGamba/go-getlong/text"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Parser - Compiled option definitions and configuration.
// It is not modified by Parse so it can be shared across goroutines.
type Parser struct {
	config Config
	schema *schema
}

// New - Validates the option definitions and returns a Parser.
// The error, if any, is a *Diagnostic of kind SchemaError.
func New(config Config, specs ...OptionSpec) (*Parser, error) {
	s, err := newSchema(config, specs)
	if err != nil {
		return nil, err
	}
	return &Parser{config: config, schema: s}, nil
}

// MustNew - Same as New but panics on definition errors.
// This is not an error because the programmer has to fix this!
func MustNew(config Config, specs ...OptionSpec) *Parser {
	p, err := New(config, specs...)
	if err != nil {
		panic(err)
	}
	return p
}

// Parse - Single call form of New and Parser.Parse.
// Definition errors are returned as the only diagnostic of the result and no args are parsed.
func Parse(args []string, specs []OptionSpec, config Config) *Result {
	p, err := New(config, specs...)
	if err != nil {
		res := newResult()
		d, ok := err.(*Diagnostic)
		if !ok {
			d = &Diagnostic{Kind: SchemaError, Message: err.Error(), Err: err}
		}
		res.report(d)
		return res
	}
	return p.Parse(args)
}

// Config - Returns a copy of the parser configuration.
func (p *Parser) Config() Config {
	return p.config
}

// Options - Returns a copy of the option definitions.
func (p *Parser) Options() []OptionSpec {
	specs := make([]OptionSpec, len(p.schema.specs))
	copy(specs, p.schema.specs)
	return specs
}

// parseState - Data for a single Parse call.
type parseState struct {
	p     *Parser
	res   *Result
	store option.Store
	it    *sliceiterator.Iterator
}

// Parse - Parses the given args, normally os.Args[1:].
func (p *Parser) Parse(args []string) *Result {
	// Ensure consistent response for empty and nil slices
	if args == nil {
		args = []string{}
	}
	Logger.Printf("Parse args: %v(%d)\n", args, len(args))

	st := &parseState{
		p:   p,
		res: newResult(),
		it:  sliceiterator.New(args),
	}
	st.store = option.Store(st.res.Values)

ARGS_LOOP:
	for st.it.Next() {
		arg := st.it.Value()

		// handle terminator
		if arg == "--" {
			st.operands(st.it.Rest())
			break ARGS_LOOP
		}

		tok, is := isOption(arg)
		if !is {
			st.operand(arg)
			if p.config.RequireOrder {
				st.operands(st.it.Rest())
				break ARGS_LOOP
			}
			continue ARGS_LOOP
		}

		if stop := st.option(tok); stop {
			break ARGS_LOOP
		}
	}

	st.res.OK = len(st.res.Diagnostics) == 0
	Logger.Printf("Parse values: %v, operands: %v, ok: %v\n", st.res.Values, st.res.Operands, st.res.OK)
	return st.res
}

// option - Decides if the arg is an option word or a bundle of letters and handles it.
// It returns true when parsing has to stop.
func (st *parseState) option(tok optionToken) bool {
	config := st.p.config
	if tok.Dashes == "--" || !config.Bundling {
		return st.word(tok)
	}
	if config.BundlingOverride {
		if e := st.p.schema.exactWord(tok.Name); e != nil {
			Logger.Printf("bundling override: '%s'\n", tok.Name)
			st.wordEntry(tok, e)
			return false
		}
	}
	if config.AllowSingleDashWords {
		first, _ := utf8.DecodeRuneInString(tok.Name)
		if st.p.schema.letter(string(first)) == nil {
			return st.word(tok)
		}
	}
	return st.bundle(tok)
}

func (st *parseState) word(tok optionToken) bool {
	e, candidates := st.p.schema.lookupWord(tok.Name, st.p.config.AutoAbbreviate)
	if e == nil {
		return st.unknown(tok.Verbatim, tok.Verbatim, tok.Name, candidates)
	}
	st.wordEntry(tok, e)
	return false
}

// unknown - Reports or passes through an option that doesn't match the definitions.
// With RequireOrder, passing through stops the parsing.
func (st *parseState) unknown(token, passed, name string, candidates []string) bool {
	if st.p.config.PassThrough {
		Logger.Printf("pass through: '%s'\n", passed)
		st.operand(passed)
		if st.p.config.RequireOrder {
			st.operands(st.it.Rest())
			return true
		}
		return false
	}
	if len(candidates) > 1 {
		st.res.report(&Diagnostic{
			Kind:    AmbiguousAbbreviation,
			Option:  name,
			Token:   token,
			Names:   candidates,
			Message: fmt.Sprintf(text.ErrorAmbiguousArgument, name, candidates),
		})
		return false
	}
	st.res.report(&Diagnostic{
		Kind:    UnknownOption,
		Option:  name,
		Token:   token,
		Message: fmt.Sprintf(text.ErrorUnknownOption, name),
	})
	return false
}

func (st *parseState) wordEntry(tok optionToken, e *entry) {
	switch e.spec.Arity {
	case ArityNone:
		if tok.HasArg {
			st.res.report(&Diagnostic{
				Kind:    UnexpectedValue,
				Option:  e.alias,
				Token:   tok.Verbatim,
				Message: fmt.Sprintf(text.ErrorUnexpectedArgument, e.alias, tok.Arg),
			})
			return
		}
		st.storeValue(e, tok.Verbatim, !e.negated)
	case ArityRequired:
		if tok.HasArg {
			st.deliver(e, tok.Verbatim, tok.Arg)
			return
		}
		st.required(e, tok.Verbatim)
	case ArityOptional:
		if tok.HasArg {
			st.optional(e, tok.Verbatim, tok.Arg)
			return
		}
		// Numeric options only take the next arg when it is a number.
		if v, ok, _ := st.nextArgument(e); ok && (!e.spec.Type.numeric() || option.IsNumber(e.spec.Type.optionType(), v)) {
			st.it.Next()
			st.deliver(e, tok.Verbatim, v)
			return
		}
		st.optional(e, tok.Verbatim, "")
	}
}

// optional - An empty argument gets the empty value of the type.
func (st *parseState) optional(e *entry, token, raw string) {
	if raw == "" {
		st.storeValue(e, token, option.EmptyValue(e.spec.Type.optionType()))
		return
	}
	st.deliver(e, token, raw)
}

// bundle - Handles the arg letter by letter.
//
// A value taking letter gets the rest of the arg as its argument. Numeric
// options only take the leading number and the letters after it continue to
// be handled as a bundle, so `-w80L24x` is `-w 80 -L 24 -x`.
func (st *parseState) bundle(tok optionToken) bool {
	letters := []rune(tok.Letters())
	for i := 0; i < len(letters); i++ {
		l := string(letters[i])
		e := st.p.schema.letter(l)
		if e == nil {
			// Remaining letters are passed together.
			if stop := st.unknown(tok.Verbatim, "-"+string(letters[i:]), l, nil); stop || st.p.config.PassThrough {
				return stop
			}
			continue
		}
		if e.spec.Arity == ArityNone {
			st.storeValue(e, tok.Verbatim, !e.negated)
			continue
		}

		rest := string(letters[i+1:])
		if strings.HasPrefix(rest, "=") {
			if e.spec.Arity == ArityOptional {
				st.optional(e, tok.Verbatim, strings.TrimPrefix(rest, "="))
			} else {
				st.deliver(e, tok.Verbatim, strings.TrimPrefix(rest, "="))
			}
			return false
		}
		if rest != "" {
			if n := leadingNumber(e.spec.Type, rest); n != "" && e.spec.Destination != Map {
				st.deliver(e, tok.Verbatim, n)
				i += utf8.RuneCountInString(n)
				continue
			}
			st.deliver(e, tok.Verbatim, rest)
			return false
		}

		// The next arg is only consumed when the argument is required, an
		// optional one would take what could be the next option.
		if e.spec.Arity == ArityRequired {
			st.required(e, tok.Verbatim)
		} else {
			st.optional(e, tok.Verbatim, "")
		}
		return false
	}
	return false
}

// nextArgument - Peeks at the next arg to see if it can be used as the argument of the option.
// It is refused when it is the terminator or looks like an option, negative numbers are accepted for numeric options.
func (st *parseState) nextArgument(e *entry) (value string, ok bool, refused bool) {
	v, exists := st.it.PeekNextValue()
	if !exists {
		return "", false, false
	}
	if v == "--" || (looksLikeOption(v) && !option.IsNumber(e.spec.Type.optionType(), v)) {
		return "", false, true
	}
	return v, true, false
}

func (st *parseState) required(e *entry, token string) {
	v, ok, refused := st.nextArgument(e)
	if !ok {
		msg := text.ErrorMissingArgument
		if refused {
			msg = text.ErrorArgumentWithDash
		}
		st.res.report(&Diagnostic{
			Kind:    MissingValue,
			Option:  e.alias,
			Token:   token,
			Message: fmt.Sprintf(msg, e.alias),
		})
		return
	}
	st.it.Next()
	st.deliver(e, token, v)
}

// deliver - Converts the raw argument and stores it.
func (st *parseState) deliver(e *entry, token, raw string) {
	optType := e.spec.Type.optionType()
	if e.spec.Destination == Map {
		k, v, err := option.SplitKeyValue(e.alias, raw)
		if err != nil {
			st.res.report(&Diagnostic{Kind: MalformedKeyedValue, Option: e.alias, Token: token, Message: err.Error(), Err: err})
			return
		}
		value, err := option.Convert(optType, e.alias, v)
		if err != nil {
			st.res.report(&Diagnostic{Kind: TypeCoercionError, Option: e.alias, Token: token, Message: err.Error(), Err: err})
			return
		}
		st.store.SetKey(e.name(), k, value)
		st.res.called[e.name()] = true
		return
	}
	value, err := option.Convert(optType, e.alias, raw)
	if err != nil {
		st.res.report(&Diagnostic{Kind: TypeCoercionError, Option: e.alias, Token: token, Message: err.Error(), Err: err})
		return
	}
	st.storeValue(e, token, value)
}

func (st *parseState) storeValue(e *entry, token string, value interface{}) {
	name := e.name()
	switch e.spec.Destination {
	case List:
		st.store.Append(name, value)
	case Callback:
		if err := call(e.spec.Handler, name, value); err != nil {
			st.res.report(&Diagnostic{
				Kind:    CallbackError,
				Option:  e.alias,
				Token:   token,
				Message: fmt.Sprintf(text.ErrorCallback, e.alias, err),
				Err:     err,
			})
			return
		}
	default:
		st.store.Set(name, value)
	}
	st.res.called[name] = true
}

func (st *parseState) operand(arg string) {
	st.res.Operands = append(st.res.Operands, arg)
	op := st.p.schema.operand
	if op == nil {
		return
	}
	if err := call(op.Handler, OperandName, arg); err != nil {
		st.res.report(&Diagnostic{
			Kind:    CallbackError,
			Option:  OperandName,
			Token:   arg,
			Message: fmt.Sprintf(text.ErrorOperandCallback, arg, err),
			Err:     err,
		})
	}
}

func (st *parseState) operands(args []string) {
	for _, arg := range args {
		st.operand(arg)
	}
}

// call - Runs the handler converting a panic into an error.
func call(fn Handler, name string, value interface{}) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf(text.ErrorCallbackPanic, r)
		}
	}()
	return fn(name, value)
}
