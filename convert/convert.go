// Package convert translates analyzer tag strings into Universal Dependencies
// part of speech tags and features.
package convert

import (
	"fmt"
	"sort"
	"strings"
)

// UnknownPOS is the UD tag for tags without a known part of speech.
const UnknownPOS = "X"

// TagConverter converts the tag string of a morphological analyzer.
// Converters are stateless and never fail: unknown input maps to
// UnknownPOS and to an empty feature string.
type TagConverter interface {
	// ConvertPOS returns the UD part of speech of tags
	ConvertPOS(tags string) string

	// ConvertMorphologicalTags returns the UD features of tags in the
	// form Key=Value|Key=Value, sorted by key.
	ConvertMorphologicalTags(tags string) string
}

// Kind names a tag set.
type Kind string

const (
	Mystem      Kind = "mystem"
	OpenCorpora Kind = "opencorpora"
)

// New returns the converter for the tag set kind.
func New(kind Kind) (TagConverter, error) {
	switch kind {
	case Mystem:
		return MystemConverter{}, nil
	case OpenCorpora:
		return OpenCorporaConverter{}, nil
	}

	return nil, fmt.Errorf("unknown tag set: %q", kind)
}

// feature is a UD feature key and value
type feature struct {
	key   string
	value string
}

// features renders the features of grammemes found in table. The first
// value of each key wins.
func features(grammemes []string, table map[string]feature) string {
	byKey := make(map[string]string)
	for _, g := range grammemes {
		f, ok := table[g]
		if !ok {
			continue
		}
		if _, exists := byKey[f.key]; exists {
			continue
		}
		byKey[f.key] = f.value
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+byKey[k])
	}

	return strings.Join(pairs, "|")
}
