package platforms

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/luxview/l10ngen/errors"
	"github.com/luxview/l10ngen/locale"
	"github.com/luxview/l10ngen/messages"
	"github.com/luxview/l10ngen/options"
)

// androidTemplate renders one strings.xml resource file. Values are escaped
// before templating, so text/template's lack of XML escaping is intentional.
const androidTemplate = `<?xml version="1.0" encoding="utf-8"?>
<!-- Auto-generated from locales/{{.Lang}}.json - DO NOT EDIT -->
<resources>
{{- range .Strings}}
    <string name="{{.Name}}">{{.Value}}</string>
{{- end}}
</resources>
`

type androidModel struct {
	Lang    string
	Strings []androidString
}

type androidString struct {
	Name  string
	Value string
}

// GenerateAndroid writes one strings.xml per language under the Android
// resource root. A missing root is a warning, not an error; the remaining
// platforms still run.
func GenerateAndroid(cfg *options.AppConfig, root string, locales locale.Set) error {
	resRoot := filepath.Join(root, androidResRoot)
	fmt.Println(cfg.TR.T(messages.Keys.AppAndroid.Generating, resRoot))

	if info, err := os.Stat(resRoot); err != nil || !info.IsDir() {
		fmt.Println(cfg.TR.T(messages.Keys.AppAndroid.MissingRoot))
		return nil
	}

	tmpl := template.Must(template.New("android").Parse(androidTemplate))

	for _, lang := range locales.Languages() {
		translations := locales[lang]

		valuesDir := "values"
		if qualifier := mapCode(androidQualifiers, lang); qualifier != "" {
			valuesDir = "values-" + qualifier
		}
		dir := filepath.Join(resRoot, valuesDir)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.ErrFailedToCreateOutputDir.WithArgs(dir, err)
		}

		keys := make([]string, 0, len(translations))
		for key := range translations {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		model := androidModel{Lang: lang}
		for _, key := range keys {
			model.Strings = append(model.Strings, androidString{
				Name:  resourceName(key),
				Value: escapeAndroid(translations[key]),
			})
		}

		outPath := filepath.Join(dir, "strings.xml")
		var buf strings.Builder
		if err := tmpl.Execute(&buf, model); err != nil {
			return errors.ErrFailedToExecuteTemplate.WithArgs(outPath, err)
		}
		if err := os.WriteFile(outPath, []byte(buf.String()), 0644); err != nil {
			return errors.ErrFailedToWriteOutput.WithArgs(outPath, err)
		}

		fmt.Println(cfg.TR.T(messages.Keys.AppAndroid.GeneratedFile,
			filepath.Join(valuesDir, "strings.xml"), len(translations)))
	}

	return nil
}

// escapeAndroid escapes a value for strings.xml. The ampersand pass must run
// first so the entities introduced by the angle-bracket passes are not
// double-escaped; quotes are backslash-escaped last.
func escapeAndroid(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "'", `\'`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}
