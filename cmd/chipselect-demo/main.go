// Copyright 2026 The Chipselect Authors
// SPDX-License-Identifier: Apache-2.0

// chipselect-demo is a standalone host for the chipselect widget: it
// seeds the selector with options, forwards every terminal event to
// it, records each change notification, and prints the final
// selection to stdout on exit.
//
// Options are loaded from a JSONC file (--options) or fall back to a
// built-in seed list. The color theme follows the terminal background
// (dark or light) and can be overridden field-by-field from a YAML
// file (--theme).
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/fernhill/chipselect/lib/chipselect"
	"github.com/fernhill/chipselect/lib/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var optionsPath string
	var themePath string
	var placeholder string
	var initialValues []string
	var noCreate bool
	var closeOnSelect bool
	var maxHeight int
	var width int

	flagSet := pflag.NewFlagSet("chipselect-demo", pflag.ContinueOnError)
	flagSet.StringVar(&optionsPath, "options", "", "path to a JSONC file with seed options (default: built-in list)")
	flagSet.StringVar(&themePath, "theme", "", "path to a YAML theme override file")
	flagSet.StringVar(&placeholder, "placeholder", "search or create…", "input placeholder while nothing is selected")
	flagSet.StringSliceVar(&initialValues, "values", nil, "initial selection (option values)")
	flagSet.BoolVar(&noCreate, "no-create", false, "disable creating new options from the query")
	flagSet.BoolVar(&closeOnSelect, "close-on-select", false, "close the panel after each pick")
	flagSet.IntVar(&maxHeight, "max-height", 0, "maximum visible candidate rows (0 = default)")
	flagSet.IntVar(&width, "width", 0, "widget width in cells (0 = default)")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	options := defaultOptions()
	if optionsPath != "" {
		loaded, err := loadOptions(optionsPath)
		if err != nil {
			return err
		}
		options = loaded
	}

	theme := tui.DefaultTheme
	if !termenv.HasDarkBackground() {
		theme = tui.LightTheme
	}
	if themePath != "" {
		overridden, err := loadTheme(themePath, theme)
		if err != nil {
			return err
		}
		theme = overridden
	}

	selector := chipselect.New(chipselect.Config{
		Options:        options,
		Values:         initialValues,
		Placeholder:    placeholder,
		DisableCreate:  noCreate,
		CloseOnSelect:  closeOnSelect,
		MaxPanelHeight: maxHeight,
		Width:          width,
		Theme:          theme,
	})

	program := tea.NewProgram(newDemoModel(selector), tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := program.Run()
	if err != nil {
		return err
	}

	// Echo the final selection, one value per line, so the demo can
	// be piped the way a real host would consume the result.
	for _, value := range final.(demoModel).values {
		fmt.Println(value)
	}
	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `chipselect demo — searchable multi-select combobox for the terminal.

Type to filter, ↑/↓ to move, Enter to pick, Backspace on an empty
query to remove the last chip, Esc to close the panel (again to
quit), Ctrl+C to quit. Click a chip's × to remove it; click outside
the widget to close the panel.

Usage:
  chipselect-demo [flags]

Flags:
%s`, flagSet.FlagUsages())
}
