// Copyright 2026 The Chipselect Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/fernhill/chipselect/lib/chipselect"
)

// optionRecord mirrors one entry of the seed options file.
type optionRecord struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Icon     string `json:"icon"`
	Disabled bool   `json:"disabled"`
}

// parseOptions strips JSONC comments and trailing commas from data,
// then unmarshals the result into options. Records without a label
// use their value as the label.
func parseOptions(data []byte) ([]chipselect.Option, error) {
	stripped := jsonc.ToJSON(data)

	var records []optionRecord
	if err := json.Unmarshal(stripped, &records); err != nil {
		return nil, fmt.Errorf("parsing options: %w", err)
	}

	options := make([]chipselect.Option, 0, len(records))
	for index, record := range records {
		if record.Value == "" {
			return nil, fmt.Errorf("option %d: missing value", index)
		}
		label := record.Label
		if label == "" {
			label = record.Value
		}
		options = append(options, chipselect.Option{
			Value:    record.Value,
			Label:    label,
			Icon:     record.Icon,
			Disabled: record.Disabled,
		})
	}
	return options, nil
}

// loadOptions reads a JSONC seed file from disk.
func loadOptions(path string) ([]chipselect.Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading options file: %w", err)
	}
	options, err := parseOptions(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return options, nil
}

// defaultOptions is the built-in seed list used when no options file
// is given.
func defaultOptions() []chipselect.Option {
	return []chipselect.Option{
		{Value: "go", Label: "Go", Icon: "🐹"},
		{Value: "rust", Label: "Rust", Icon: "🦀"},
		{Value: "python", Label: "Python", Icon: "🐍"},
		{Value: "typescript", Label: "TypeScript", Icon: "🟦"},
		{Value: "zig", Label: "Zig", Icon: "⚡"},
		{Value: "haskell", Label: "Haskell", Icon: "λ"},
		{Value: "erlang", Label: "Erlang", Icon: "📡"},
		{Value: "fortran", Label: "Fortran", Icon: "🗿", Disabled: true},
		{Value: "ocaml", Label: "OCaml", Icon: "🐫"},
		{Value: "lua", Label: "Lua", Icon: "🌙"},
	}
}
