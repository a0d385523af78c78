// This file is part of go-getlong.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package specfile

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed definitions.schema.json
var schemaData []byte

var compiled *jsonschema.Schema

func init() {
	var err error
	compiled, err = jsonschema.CompileString("definitions.schema.json", string(schemaData))
	if err != nil {
		panic(fmt.Errorf("compile definitions schema: %w", err))
	}
}

// jsonRoot - Top level keys of a JSON definitions file.
type jsonRoot struct {
	Config  *configDef   `json:"config"`
	Options []*optionDef `json:"options"`
}

func parseJSON(filename string, src []byte) (*File, error) {
	var data interface{}
	if err := json.Unmarshal(src, &data); err != nil {
		return nil, fmt.Errorf("failed to parse JSON file %s: %w", filename, err)
	}
	if err := compiled.Validate(data); err != nil {
		return nil, fmt.Errorf("failed to validate JSON file %s: %w", filename, err)
	}

	var root jsonRoot
	if err := json.Unmarshal(src, &root); err != nil {
		return nil, fmt.Errorf("failed to decode JSON file %s: %w", filename, err)
	}
	return newFile(filename, root.Config, root.Options)
}
