// This file is part of go-getlong.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getlong

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/DavidGamba/go-getlong/text"
)

// entry - A name or alias pointing to its option definition.
type entry struct {
	alias   string // name as defined, used in messages
	spec    *OptionSpec
	negated bool // no<name> or no-<name> alias of a negatable flag
}

func (e *entry) name() string {
	return e.spec.Name()
}

// schema - Flat structure where every name and alias is a key pointing to the option.
//
// Single character names live in letters, these are the ones available for
// bundling. With bundling they are matched exactly, otherwise they follow the
// same case rule as words. Longer names live in words, keyed by their case
// folded form when matching is case insensitive.
type schema struct {
	caseInsensitive bool
	foldLetters     bool
	specs           []OptionSpec
	letters         map[string]*entry
	words           map[string]*entry
	wordKeys        []string // sorted words keys for abbreviation matching
	operand         *OptionSpec
}

func isLetter(name string) bool {
	return utf8.RuneCountInString(name) == 1
}

func (s *schema) key(name string) string {
	if s.caseInsensitive {
		return strings.ToLower(name)
	}
	return name
}

func (s *schema) letterKey(l string) string {
	if s.foldLetters {
		return strings.ToLower(l)
	}
	return l
}

func schemaError(names []string, format string, a ...interface{}) *Diagnostic {
	return &Diagnostic{
		Kind:    SchemaError,
		Option:  names[0],
		Names:   names,
		Message: fmt.Sprintf(format, a...),
	}
}

// newSchema - Validates the definitions and builds the lookup maps.
// The returned error is a SchemaError *Diagnostic.
func newSchema(config Config, specs []OptionSpec) (*schema, error) {
	s := &schema{
		caseInsensitive: config.CaseInsensitive,
		foldLetters:     config.CaseInsensitive && !config.Bundling,
		specs:           make([]OptionSpec, len(specs)),
		letters:         map[string]*entry{},
		words:           map[string]*entry{},
	}
	for i, spec := range specs {
		spec.Names = append([]string{}, spec.Names...)
		s.specs[i] = spec
	}

	for i := range s.specs {
		spec := &s.specs[i]
		if len(spec.Names) == 0 || spec.Names[0] == "" {
			return nil, schemaError([]string{""}, text.ErrorEmptyName)
		}
		if spec.Names[0] == OperandName {
			if s.operand != nil {
				return nil, schemaError([]string{OperandName}, text.ErrorDuplicateName, OperandName, OperandName)
			}
			if len(spec.Names) > 1 || spec.Destination != Callback || spec.Handler == nil {
				return nil, schemaError([]string{OperandName}, text.ErrorConflictingDefinition, OperandName, "the operand definition only takes a handler")
			}
			s.operand = spec
			continue
		}
		if err := spec.validate(); err != nil {
			return nil, schemaError(spec.Names, text.ErrorConflictingDefinition, spec.Name(), err)
		}
		for _, name := range spec.Names {
			if err := s.add(&entry{alias: name, spec: spec}); err != nil {
				return nil, err
			}
			if spec.Negatable {
				for _, prefix := range []string{"no", "no-"} {
					if err := s.add(&entry{alias: prefix + name, spec: spec, negated: true}); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	for k := range s.words {
		s.wordKeys = append(s.wordKeys, k)
	}
	sort.Strings(s.wordKeys)
	Logger.Printf("schema letters: %d, words: %v\n", len(s.letters), s.wordKeys)
	return s, nil
}

func (s *schema) add(e *entry) error {
	name := e.alias
	if name == "" {
		return schemaError([]string{e.name(), ""}, text.ErrorEmptyName)
	}
	if strings.HasPrefix(name, "-") || strings.Contains(name, "=") || name == OperandName {
		return schemaError([]string{e.name(), name}, text.ErrorInvalidName, name)
	}
	m, k := s.words, s.key(name)
	if isLetter(name) {
		m, k = s.letters, s.letterKey(name)
	}
	if v, ok := m[k]; ok {
		return schemaError([]string{name, v.name()}, text.ErrorDuplicateName, name, v.name())
	}
	m[k] = e
	return nil
}

// letter - Single character match.
func (s *schema) letter(l string) *entry {
	return s.letters[s.letterKey(l)]
}

// exactWord - Full match of the given option text.
func (s *schema) exactWord(name string) *entry {
	if isLetter(name) {
		return s.letter(name)
	}
	return s.words[s.key(name)]
}

// lookupWord - Returns the entry for the given option text.
// When there is no single match it returns the sorted candidate names.
func (s *schema) lookupWord(name string, abbreviate bool) (*entry, []string) {
	if e := s.exactWord(name); e != nil {
		return e, nil
	}
	if !abbreviate {
		return nil, nil
	}
	prefix := s.key(name)
	candidates := []string{}
	// Aliases of the same option are not ambiguous.
	matches := []*entry{}
	for _, k := range s.wordKeys {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		e := s.words[k]
		candidates = append(candidates, e.alias)
		found := false
		for _, m := range matches {
			if m.spec == e.spec && m.negated == e.negated {
				found = true
				break
			}
		}
		if !found {
			matches = append(matches, e)
		}
	}
	Logger.Printf("lookup '%s' candidates: %v\n", name, candidates)
	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return matches[0], nil
	}
	sort.Strings(candidates)
	return nil, candidates
}
