package platforms

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/luxview/l10ngen/errors"
	"github.com/luxview/l10ngen/locale"
	"github.com/luxview/l10ngen/messages"
	"github.com/luxview/l10ngen/options"
)

// harmonyDoc mirrors the HarmonyOS string.json resource layout.
type harmonyDoc struct {
	String []harmonyString `json:"string"`
}

type harmonyString struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// GenerateHarmony writes one string.json per language under the HarmonyOS
// resource root. Values are JSON-native, no extra escaping. A missing root
// is a warning, not an error.
func GenerateHarmony(cfg *options.AppConfig, root string, locales locale.Set) error {
	resRoot := filepath.Join(root, harmonyResRoot)
	fmt.Println(cfg.TR.T(messages.Keys.AppHarmony.Generating, resRoot))

	if info, err := os.Stat(resRoot); err != nil || !info.IsDir() {
		fmt.Println(cfg.TR.T(messages.Keys.AppHarmony.MissingRoot))
		return nil
	}

	for _, lang := range locales.Languages() {
		translations := locales[lang]
		folder := mapCode(harmonyFolders, lang)

		dir := filepath.Join(resRoot, folder, "element")
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.ErrFailedToCreateOutputDir.WithArgs(dir, err)
		}

		keys := make([]string, 0, len(translations))
		for key := range translations {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		doc := harmonyDoc{String: make([]harmonyString, 0, len(keys))}
		for _, key := range keys {
			doc.String = append(doc.String, harmonyString{
				Name:  resourceName(key),
				Value: translations[key],
			})
		}

		outPath := filepath.Join(dir, "string.json")
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return errors.ErrFailedToMarshal.WithArgs(outPath, err)
		}
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			return errors.ErrFailedToWriteOutput.WithArgs(outPath, err)
		}

		fmt.Println(cfg.TR.T(messages.Keys.AppHarmony.GeneratedFile, folder, len(translations)))
	}

	return nil
}
