package parser

import (
	"fmt"
)

// Kind selects which value sequence of an attribute a selection includes.
type Kind string

const (
	KindRaw  Kind = "raw"
	KindNorm Kind = "norm"
	KindBoth Kind = "both"
)

// ParseKind converts a user-supplied kind string.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindRaw, KindNorm, KindBoth:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("invalid kind %q (must be raw, norm, or both)", s)
	}
}

// Selection is a read-only projection of a Result restricted to chosen
// attributes and value kinds. Building or consuming a Selection never
// mutates the Result it came from.
type Selection struct {
	Entries []SelectionEntry
}

// SelectionEntry is one chartable sequence: a single attribute's raw or
// normalized samples. Samples aliases the Result's storage and must not
// be modified.
type SelectionEntry struct {
	Key     string
	Kind    Kind // KindRaw or KindNorm, never KindBoth
	Samples []Sample
}

// Select builds a Selection for the given attribute keys and value kind.
// A nil or empty keys slice selects every attribute in model order;
// explicit keys are kept in the order given. Keys the Result has never
// seen are skipped silently, as are sequences with no samples.
func (r *Result) Select(keys []string, kind Kind) Selection {
	if len(keys) == 0 {
		keys = r.attrs
	}

	var sel Selection
	for _, key := range keys {
		s, ok := r.series[key]
		if !ok {
			continue
		}
		if (kind == KindNorm || kind == KindBoth) && len(s.Norm) > 0 {
			sel.Entries = append(sel.Entries, SelectionEntry{Key: key, Kind: KindNorm, Samples: s.Norm})
		}
		if (kind == KindRaw || kind == KindBoth) && len(s.Raw) > 0 {
			sel.Entries = append(sel.Entries, SelectionEntry{Key: key, Kind: KindRaw, Samples: s.Raw})
		}
	}
	return sel
}
