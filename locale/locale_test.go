package locale

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		input  map[string]interface{}
		want   Map
	}{
		{
			name:   "single level",
			prefix: "app",
			input:  map[string]interface{}{"title": "LuxView"},
			want:   Map{"app.title": "LuxView"},
		},
		{
			name:   "deep nesting joins with dots",
			prefix: "",
			input: map[string]interface{}{
				"a": map[string]interface{}{
					"b": map[string]interface{}{
						"c": "x",
					},
				},
			},
			want: Map{"a.b.c": "x"},
		},
		{
			name:   "non-string leaves are dropped",
			prefix: "app",
			input: map[string]interface{}{
				"title":   "LuxView",
				"count":   float64(3),
				"flag":    true,
				"entries": []interface{}{"a", "b"},
				"nothing": nil,
			},
			want: Map{"app.title": "LuxView"},
		},
		{
			name:   "siblings at mixed depth",
			prefix: "ui",
			input: map[string]interface{}{
				"tabs": map[string]interface{}{
					"general": "General",
				},
				"title": "Editor",
			},
			want: Map{"ui.tabs.general": "General", "ui.title": "Editor"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := make(Map)
			flatten(tt.prefix, tt.input, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()

	writeLocale(t, dir, "en.json", `{
		"meta": {"version": "2", "author": "team"},
		"app": {"welcome": {"title": "Welcome"}, "count": 5},
		"note": "top-level strings outside a section are ignored"
	}`)
	writeLocale(t, dir, "de.json", `{
		"app": {"welcome": {"title": "Willkommen"}}
	}`)

	set, err := LoadAll(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"de", "en"}, set.Languages())

	en := set["en"]
	assert.Equal(t, "Welcome", en["app.welcome.title"])
	// alias from the legacy key schema
	assert.Equal(t, "Welcome", en["welcome.title"])
	// the meta section never contributes keys
	for key := range en {
		assert.NotContains(t, key, "meta.")
	}
	// non-string leaf dropped
	assert.NotContains(t, en, "app.count")
	// non-object top-level values are not sections
	assert.NotContains(t, en, "note")

	assert.Equal(t, "Willkommen", set["de"]["app.welcome.title"])
}

func TestLoadAllMalformedJSONIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeLocale(t, dir, "en.json", `{"app": {"x": "ok"}}`)
	writeLocale(t, dir, "de.json", `{not json`)

	_, err := LoadAll(dir)
	require.Error(t, err)
}

func TestLoadAllEmptyDir(t *testing.T) {
	_, err := LoadAll(t.TempDir())
	require.Error(t, err)
}

func TestLanguageFromPath(t *testing.T) {
	assert.Equal(t, "pt-BR", languageFromPath(filepath.Join("locales", "pt-BR.json")))
	assert.Equal(t, "en", languageFromPath("en.json"))
}

func writeLocale(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}
