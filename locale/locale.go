// Package locale loads the JSON source-of-truth translation files and
// flattens them into the per-language maps consumed by the platform
// generators.
package locale

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/luxview/l10ngen/errors"
)

// English is the source language; it defines the key universe for the
// Xcode string catalog.
const English = "en"

// metaSection is reserved for file metadata and never contains translations.
const metaSection = "meta"

// Map is a flattened translation map for one language: dot-joined key path
// to string value.
type Map map[string]string

// Set maps a language code (the locale file's stem) to its flattened,
// alias-expanded translation map. A Set is built once and never mutated.
type Set map[string]Map

// LoadAll reads every *.json file in dir, flattens it, and applies the
// legacy key aliases. Any unreadable or malformed file fails the whole run.
func LoadAll(dir string) (Set, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.ErrNoLocales.WithArgs(dir)
	}

	set := make(Set, len(files))
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.ErrFailedToReadLocale.WithArgs(file, err)
		}

		var doc map[string]interface{}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.ErrFailedToParseLocale.WithArgs(file, err)
		}

		flat := make(Map)
		for section, content := range doc {
			if section == metaSection {
				continue
			}
			if obj, ok := content.(map[string]interface{}); ok {
				flatten(section, obj, flat)
			}
		}

		set[languageFromPath(file)] = applyAliases(flat)
	}

	return set, nil
}

// flatten walks nested sections depth first, joining keys with dots. Only
// string leaves are kept; other leaf types are dropped.
func flatten(prefix string, obj map[string]interface{}, out Map) {
	for key, value := range obj {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]interface{}:
			flatten(full, v, out)
		case string:
			out[full] = v
		}
	}
}

// Languages returns the set's language codes in sorted order.
func (s Set) Languages() []string {
	codes := make([]string, 0, len(s))
	for code := range s {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// languageFromPath extracts the language code from a locale file path.
func languageFromPath(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".json")
}
