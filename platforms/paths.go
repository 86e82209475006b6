// Package platforms writes the per-platform localization files from a loaded
// locale set.
package platforms

import (
	"os"
	"path/filepath"

	"github.com/luxview/l10ngen/errors"
)

// Fixed project layout. Every output location is resolved against the
// project root.
const (
	// LocalesDir holds the JSON source-of-truth translation files.
	LocalesDir = "locales"

	swiftCatalogPath  = "LuxViewApp/LuxViewApp/Localizable.xcstrings"
	swiftFallbackPath = "LuxViewApp/LuxViewApp/Localization.swift"
	androidResRoot    = "LuxViewAndroid/app/src/main/res"
	harmonyResRoot    = "LuxViewHarmony/entry/src/main/resources"
)

// FindProjectRoot walks up from startDir to the nearest directory containing
// the locales source directory.
func FindProjectRoot(startDir string) (string, error) {
	dir := startDir
	for {
		if info, err := os.Stat(filepath.Join(dir, LocalesDir)); err == nil && info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.ErrProjectRootNotFound.WithArgs(LocalesDir, startDir)
		}
		dir = parent
	}
}
