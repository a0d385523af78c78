// This file is part of go-getlong.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package render - Converts a parse Result into a cty value for JSON or HCL output.
package render

import (
	"fmt"

	"github.com/DavidGamba/go-getlong"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// attributes - Top level keys in output order.
var attributes = []string{"ok", "values", "operands", "diagnostics"}

var diagnosticType = cty.Object(map[string]cty.Type{
	"kind":    cty.String,
	"option":  cty.String,
	"token":   cty.String,
	"message": cty.String,
})

// Value - Returns the result as an object with the ok, values, operands and diagnostics attributes.
func Value(r *getlong.Result) cty.Value {
	values := map[string]cty.Value{}
	for name, v := range r.Values {
		values[name] = toCty(v)
	}

	diags := make([]cty.Value, 0, len(r.Diagnostics))
	for _, d := range r.Diagnostics {
		diags = append(diags, cty.ObjectVal(map[string]cty.Value{
			"kind":    cty.StringVal(d.Kind.String()),
			"option":  cty.StringVal(d.Option),
			"token":   cty.StringVal(d.Token),
			"message": cty.StringVal(d.Message),
		}))
	}

	return cty.ObjectVal(map[string]cty.Value{
		"ok":          cty.BoolVal(r.OK),
		"values":      cty.ObjectVal(values),
		"operands":    stringList(r.Operands),
		"diagnostics": list(diagnosticType, diags),
	})
}

// JSON - Renders the result as a JSON object.
func JSON(r *getlong.Result) ([]byte, error) {
	v := Value(r)
	b, err := ctyjson.Marshal(v, v.Type())
	if err != nil {
		return nil, fmt.Errorf("failed to render JSON: %w", err)
	}
	return append(b, '\n'), nil
}

// HCL - Renders the result as HCL attributes.
func HCL(r *getlong.Result) []byte {
	v := Value(r)
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	for _, name := range attributes {
		body.SetAttributeValue(name, v.GetAttr(name))
	}
	return hclwrite.Format(f.Bytes())
}

func toCty(v interface{}) cty.Value {
	switch e := v.(type) {
	case bool:
		return cty.BoolVal(e)
	case string:
		return cty.StringVal(e)
	case int:
		return cty.NumberIntVal(int64(e))
	case float64:
		return cty.NumberFloatVal(e)
	case []bool:
		l := make([]cty.Value, 0, len(e))
		for _, b := range e {
			l = append(l, cty.BoolVal(b))
		}
		return list(cty.Bool, l)
	case []string:
		return stringList(e)
	case []int:
		l := make([]cty.Value, 0, len(e))
		for _, i := range e {
			l = append(l, cty.NumberIntVal(int64(i)))
		}
		return list(cty.Number, l)
	case []float64:
		l := make([]cty.Value, 0, len(e))
		for _, f := range e {
			l = append(l, cty.NumberFloatVal(f))
		}
		return list(cty.Number, l)
	case map[string]string:
		m := map[string]cty.Value{}
		for k, s := range e {
			m[k] = cty.StringVal(s)
		}
		return mapOf(cty.String, m)
	case map[string]int:
		m := map[string]cty.Value{}
		for k, i := range e {
			m[k] = cty.NumberIntVal(int64(i))
		}
		return mapOf(cty.Number, m)
	case map[string]float64:
		m := map[string]cty.Value{}
		for k, f := range e {
			m[k] = cty.NumberFloatVal(f)
		}
		return mapOf(cty.Number, m)
	}
	return cty.StringVal(fmt.Sprint(v))
}

func stringList(s []string) cty.Value {
	l := make([]cty.Value, 0, len(s))
	for _, e := range s {
		l = append(l, cty.StringVal(e))
	}
	return list(cty.String, l)
}

// list - cty.ListVal panics on empty lists.
func list(t cty.Type, l []cty.Value) cty.Value {
	if len(l) == 0 {
		return cty.ListValEmpty(t)
	}
	return cty.ListVal(l)
}

func mapOf(t cty.Type, m map[string]cty.Value) cty.Value {
	if len(m) == 0 {
		return cty.MapValEmpty(t)
	}
	return cty.MapVal(m)
}
