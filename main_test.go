package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/napalu/goopt/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxview/l10ngen/options"
)

// Full default invocation against a project where the Android resource root
// is absent: the run must still succeed and produce the Swift and HarmonyOS
// outputs.
func TestRunSkipsAbsentAndroidRoot(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "locales"), 0755))
	writeFile(t, filepath.Join(root, "locales", "en.json"), `{"app": {"x": "Hello"}}`)
	writeFile(t, filepath.Join(root, "locales", "de.json"), `{"app": {"x": "Hallo"}}`)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "LuxViewHarmony/entry/src/main/resources"), 0755))

	chdir(t, root)

	bundle, err := i18n.NewBundle()
	require.NoError(t, err)
	cfg := &options.AppConfig{TR: bundle}

	require.NoError(t, run(cfg))

	assert.FileExists(t, filepath.Join(root, "LuxViewApp/LuxViewApp/Localizable.xcstrings"))
	assert.FileExists(t, filepath.Join(root, "LuxViewApp/LuxViewApp/Localization.swift"))
	assert.FileExists(t, filepath.Join(root, "LuxViewHarmony/entry/src/main/resources/base/element/string.json"))
	assert.FileExists(t, filepath.Join(root, "LuxViewHarmony/entry/src/main/resources/de_DE/element/string.json"))

	_, statErr := os.Stat(filepath.Join(root, "LuxViewAndroid"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunFailsWithoutProjectRoot(t *testing.T) {
	chdir(t, t.TempDir())

	bundle, err := i18n.NewBundle()
	require.NoError(t, err)

	require.Error(t, run(&options.AppConfig{TR: bundle}))
}

func TestRunPlatformSelection(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "locales"), 0755))
	writeFile(t, filepath.Join(root, "locales", "en.json"), `{"app": {"x": "Hello"}}`)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "LuxViewHarmony/entry/src/main/resources"), 0755))

	chdir(t, root)

	bundle, err := i18n.NewBundle()
	require.NoError(t, err)
	cfg := &options.AppConfig{HarmonyOS: true, TR: bundle}

	require.NoError(t, run(cfg))

	// only the selected platform is generated
	assert.FileExists(t, filepath.Join(root, "LuxViewHarmony/entry/src/main/resources/base/element/string.json"))
	_, statErr := os.Stat(filepath.Join(root, "LuxViewApp"))
	assert.True(t, os.IsNotExist(statErr))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
