package smart

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML key-to-name mapping and merges it over the built-in
// table, so a names file only needs to list the keys it wants to add or
// rename. The file is a flat mapping:
//
//	"194": Drive Temperature
//	"250": Vendor Specific Counter
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided names path is expected
	if err != nil {
		return nil, fmt.Errorf("reading names file: %w", err)
	}

	overrides := Table{}
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parsing names file: %w", err)
	}

	if err := validate(overrides); err != nil {
		return nil, fmt.Errorf("validating names file: %w", err)
	}

	table := Known()
	for key, name := range overrides {
		table[key] = name
	}
	return table, nil
}

func validate(t Table) error {
	for key, name := range t {
		if key == "" {
			return fmt.Errorf("empty attribute key (named %q)", name)
		}
		if name == "" {
			return fmt.Errorf("attribute %q: name must not be empty", key)
		}
	}
	return nil
}
