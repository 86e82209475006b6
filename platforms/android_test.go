package platforms

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxview/l10ngen/locale"
)

func TestEscapeAndroid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "all special characters, ampersand first",
			in:   `a & b <c> 'd' "e"`,
			want: `a &amp; b &lt;c&gt; \'d\' \"e\"`,
		},
		{
			name: "entities introduced by escaping are not re-escaped",
			in:   `x < y`,
			want: `x &lt; y`,
		},
		{
			name: "pre-existing entity text is escaped once",
			in:   `&lt;`,
			want: `&amp;lt;`,
		},
		{
			name: "plain text unchanged",
			in:   `Mounting height`,
			want: `Mounting height`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeAndroid(tt.in))
		})
	}
}

func TestGenerateAndroid(t *testing.T) {
	root := t.TempDir()
	resRoot := filepath.Join(root, androidResRoot)
	require.NoError(t, os.MkdirAll(resRoot, 0755))

	set := locale.Set{
		"en":    {"b.x": "1", "a.x": "2", "app.welcome-note": "Dave's <Shop>"},
		"de":    {"a.x": "zwei"},
		"zh":    {"a.x": "二"},
		"pt-BR": {"a.x": "dois"},
	}

	require.NoError(t, GenerateAndroid(newTestConfig(t), root, set))

	// English is the unqualified default resource set
	data, err := os.ReadFile(filepath.Join(resRoot, "values", "strings.xml"))
	require.NoError(t, err)
	xml := string(data)

	assert.Contains(t, xml, `<?xml version="1.0" encoding="utf-8"?>`)
	// dots and hyphens become underscores in resource names
	assert.Contains(t, xml, `<string name="app_welcome_note">Dave\'s &lt;Shop&gt;</string>`)
	// keys are emitted in lexicographic order
	assert.Less(t, strings.Index(xml, `name="a_x"`), strings.Index(xml, `name="b_x"`))

	// qualified resource sets per language
	assert.FileExists(t, filepath.Join(resRoot, "values-de", "strings.xml"))
	assert.FileExists(t, filepath.Join(resRoot, "values-zh-rCN", "strings.xml"))
	assert.FileExists(t, filepath.Join(resRoot, "values-pt-rBR", "strings.xml"))
}

func TestGenerateAndroidMissingRootSkips(t *testing.T) {
	root := t.TempDir()
	set := locale.Set{"en": {"a.x": "1"}}

	require.NoError(t, GenerateAndroid(newTestConfig(t), root, set))

	_, err := os.Stat(filepath.Join(root, androidResRoot))
	assert.True(t, os.IsNotExist(err))
}
