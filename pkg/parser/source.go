package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ExpandGlobs expands a list of file paths and glob patterns into a
// deduplicated, sorted list of paths. Patterns that match nothing are
// returned as-is so the caller gets a useful file-not-found error when it
// tries to read them.
func ExpandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			result = append(result, path)
		}
	}

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			add(pattern)
			continue
		}
		for _, match := range matches {
			add(match)
		}
	}

	sort.Strings(result)
	return result, nil
}

// ReadAll reads every named file and returns the concatenated text,
// joined with newlines so rows never run together across file boundaries.
// This is the file-content provider for Parse; failing to read any file
// is the one systemic error the pipeline surfaces.
func ReadAll(paths []string) (string, error) {
	texts := make([]string, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided paths are expected
		if err != nil {
			return "", fmt.Errorf("reading log file: %w", err)
		}
		texts = append(texts, string(data))
	}
	return strings.Join(texts, "\n"), nil
}
