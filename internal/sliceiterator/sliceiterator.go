// This file is part of go-getlong.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package sliceiterator - builds an iterator over the cli args to allow
// peeking and consuming the next value.
package sliceiterator

// Iterator - iterator data
type Iterator struct {
	data []string
	idx  int
}

// New - builds a string Iterator.
// The slice is not copied and must not be modified while iterating.
func New(s []string) *Iterator {
	return &Iterator{data: s, idx: -1}
}

// Next - moves the index forward and returns a bool to indicate if there is another value.
func (a *Iterator) Next() bool {
	if a.idx < len(a.data) {
		a.idx++
	}
	return a.idx < len(a.data)
}

// Value - returns value at current index or an empty string if you are trying
// to read the value before starting or after having fully read the list.
func (a *Iterator) Value() string {
	if a.idx < 0 || a.idx >= len(a.data) {
		return ""
	}
	return a.data[a.idx]
}

// PeekNextValue - Returns the next value and indicates whether or not it is valid.
func (a *Iterator) PeekNextValue() (string, bool) {
	if a.idx+1 >= len(a.data) {
		return "", false
	}
	return a.data[a.idx+1], true
}

// Rest - Consumes and returns all values after the current one.
func (a *Iterator) Rest() []string {
	if a.idx+1 >= len(a.data) {
		a.idx = len(a.data)
		return []string{}
	}
	rest := a.data[a.idx+1:]
	a.idx = len(a.data)
	return rest
}
