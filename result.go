// This file is part of go-getlong.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getlong

import (
	"errors"
)

// Result - Outcome of a single Parse call.
type Result struct {
	// Values keyed by the option primary name.
	//
	//	Scalar: bool, string, int or float64
	//	List:   []bool, []string, []int or []float64
	//	Map:    map[string]string, map[string]int or map[string]float64
	//
	// Callback options store nothing.
	Values map[string]interface{}

	// Operands - Non option args in the order they were given.
	Operands []string

	// OK - false when there is at least one diagnostic.
	OK bool

	// Diagnostics - Every problem found, in scan order.
	Diagnostics []*Diagnostic

	called map[string]bool
}

func newResult() *Result {
	return &Result{
		Values:      map[string]interface{}{},
		Operands:    []string{},
		Diagnostics: []*Diagnostic{},
		called:      map[string]bool{},
	}
}

// Called - Indicates if the option, given by its primary name, was successfully delivered at least one value.
func (r *Result) Called(name string) bool {
	return r.called[name]
}

// Value - Returns the value of the given option and whether it was set.
//
// Type assertions are required in cases where the compiler can't determine the type by context.
// For example: `r.Value("flag").(bool)`.
func (r *Result) Value(name string) (interface{}, bool) {
	v, ok := r.Values[name]
	return v, ok
}

// Err - Returns all diagnostics joined or nil when the result is OK.
func (r *Result) Err() error {
	if len(r.Diagnostics) == 0 {
		return nil
	}
	errs := make([]error, 0, len(r.Diagnostics))
	for _, d := range r.Diagnostics {
		errs = append(errs, d)
	}
	return errors.Join(errs...)
}

func (r *Result) report(d *Diagnostic) {
	Logger.Printf("diagnostic %s: %s\n", d.Kind, d.Message)
	r.Diagnostics = append(r.Diagnostics, d)
}
