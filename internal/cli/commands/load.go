package commands

import (
	"fmt"

	"smartlog/pkg/parser"
	"smartlog/pkg/smart"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// loadLogs expands glob arguments, reads every matching file, and parses
// the concatenated text. Returns the matched paths alongside the result
// so reports can name their sources.
func loadLogs(args []string) (*parser.Result, []string, error) {
	files, err := parser.ExpandGlobs(args)
	if err != nil {
		return nil, nil, fmt.Errorf("expanding log paths: %w", err)
	}

	text, err := parser.ReadAll(files)
	if err != nil {
		return nil, nil, err
	}

	return parser.Parse(text), files, nil
}

// loadNames loads the attribute name table: the built-in table when path
// is empty, otherwise the built-in table merged with the YAML overrides
// at path.
func loadNames(path string) (smart.Table, error) {
	if path == "" {
		return smart.Known(), nil
	}
	names, err := smart.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading names: %w", err)
	}
	return names, nil
}
