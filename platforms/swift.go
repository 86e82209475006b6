package platforms

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/luxview/l10ngen/errors"
	"github.com/luxview/l10ngen/locale"
	"github.com/luxview/l10ngen/messages"
	"github.com/luxview/l10ngen/options"
	"github.com/luxview/l10ngen/templates"
)

// catalogDoc mirrors the .xcstrings document layout.
type catalogDoc struct {
	SourceLanguage string                  `json:"sourceLanguage"`
	Version        string                  `json:"version"`
	Strings        map[string]catalogEntry `json:"strings"`
}

type catalogEntry struct {
	ExtractionState string                  `json:"extractionState"`
	Localizations   map[string]localization `json:"localizations"`
}

type localization struct {
	StringUnit stringUnit `json:"stringUnit"`
}

type stringUnit struct {
	State string `json:"state"`
	Value string `json:"value"`
}

// GenerateSwift writes the Xcode string catalog and the legacy Swift
// fallback source file. It fails when the English locale is missing.
func GenerateSwift(cfg *options.AppConfig, root string, locales locale.Set) error {
	outPath := filepath.Join(root, swiftCatalogPath)
	fmt.Println(cfg.TR.T(messages.Keys.AppSwift.Generating, outPath))

	doc, err := buildCatalog(locales)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return errors.ErrFailedToCreateOutputDir.WithArgs(filepath.Dir(outPath), err)
	}

	// encoding/json emits map keys sorted, which keeps the catalog
	// deterministic across runs.
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.ErrFailedToMarshal.WithArgs(outPath, err)
	}

	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return errors.ErrFailedToWriteOutput.WithArgs(outPath, err)
	}

	fmt.Println(cfg.TR.T(messages.Keys.AppSwift.Generated, len(doc.Strings), len(locales)))

	return generateFallback(cfg, root, locales)
}

// buildCatalog assembles the string-catalog document. The English map
// defines the key universe; languages lacking a key contribute no
// localization for it.
func buildCatalog(locales locale.Set) (*catalogDoc, error) {
	english, ok := locales[locale.English]
	if !ok {
		return nil, errors.ErrMissingEnglish
	}

	doc := &catalogDoc{
		SourceLanguage: locale.English,
		Version:        "1.0",
		Strings:        make(map[string]catalogEntry, len(english)),
	}

	languages := locales.Languages()
	for key := range english {
		entry := catalogEntry{
			ExtractionState: "manual",
			Localizations:   make(map[string]localization),
		}
		for _, lang := range languages {
			value, ok := locales[lang][key]
			if !ok {
				continue
			}
			entry.Localizations[mapCode(swiftLangCodes, lang)] = localization{
				StringUnit: stringUnit{State: "translated", Value: value},
			}
		}
		doc.Strings[key] = entry
	}

	return doc, nil
}

// generateFallback renders Localization.swift with hardcoded dictionaries
// for consumers that cannot use the string catalog.
func generateFallback(cfg *options.AppConfig, root string, locales locale.Set) error {
	outPath := filepath.Join(root, swiftFallbackPath)
	fmt.Println(cfg.TR.T(messages.Keys.AppSwift.GeneratingFallback, filepath.Base(outPath)))

	data := templates.FallbackData{
		Timestamp: time.Now().Format(time.RFC3339),
	}
	for _, lang := range locales.Languages() {
		translations := locales[lang]
		fl := templates.FallbackLanguage{Code: lang}

		keys := make([]string, 0, len(translations))
		for key := range translations {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			fl.Entries = append(fl.Entries, templates.FallbackEntry{
				Key:   key,
				Value: escapeSwift(translations[key]),
			})
		}
		data.Languages = append(data.Languages, fl)
	}
	for _, p := range fallbackPrefixes {
		data.Prefixes = append(data.Prefixes, templates.FallbackPrefix{Prefix: p.Prefix, Code: p.Code})
	}

	tmpl, err := template.New("fallback").Parse(templates.FallbackFileTemplate)
	if err != nil {
		return errors.ErrFailedToExecuteTemplate.WithArgs(outPath, err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return errors.ErrFailedToExecuteTemplate.WithArgs(outPath, err)
	}

	if err := os.WriteFile(outPath, []byte(buf.String()), 0644); err != nil {
		return errors.ErrFailedToWriteOutput.WithArgs(outPath, err)
	}

	return nil
}

// escapeSwift escapes a value for embedding in a Swift string literal.
// Backslashes must be escaped before quotes.
func escapeSwift(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}
