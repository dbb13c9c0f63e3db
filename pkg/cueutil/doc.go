// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides schema-checked CUE parsing.
//
// Callers embed a CUE schema, hand over raw file bytes, and get back a
// decoded Go value together with the unified CUE value. Validation failures
// carry the offending file and CUE path so commands can print them to users
// without further translation.
//
//	//go:embed config_schema.cue
//	var schema string
//
//	res, err := cueutil.ParseAndDecode[map[string]any](schema, data, "#Config",
//	    cueutil.WithFilename(path),
//	    cueutil.WithConcrete(false),
//	)
//	if err != nil {
//	    return err
//	}
//	merge(*res.Value)
package cueutil
