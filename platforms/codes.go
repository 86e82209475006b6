package platforms

import "strings"

// Per-platform language code mappings. Codes absent from a table pass
// through unchanged.

// swiftLangCodes maps source language codes to string-catalog locale tags.
var swiftLangCodes = map[string]string{
	"en":    "en",
	"de":    "de",
	"zh":    "zh-Hans",
	"fr":    "fr",
	"it":    "it",
	"ru":    "ru",
	"es":    "es",
	"pt-BR": "pt-BR",
}

// androidQualifiers maps source language codes to Android resource
// qualifiers. English is the default, unqualified values/ resource set.
var androidQualifiers = map[string]string{
	"en":    "",
	"de":    "de",
	"zh":    "zh-rCN",
	"fr":    "fr",
	"it":    "it",
	"ru":    "ru",
	"es":    "es",
	"pt-BR": "pt-rBR",
}

// harmonyFolders maps source language codes to HarmonyOS resource folders.
// English is the default "base" folder.
var harmonyFolders = map[string]string{
	"en":    "base",
	"de":    "de_DE",
	"zh":    "zh_CN",
	"fr":    "fr_FR",
	"it":    "it_IT",
	"ru":    "ru_RU",
	"es":    "es_ES",
	"pt-BR": "pt_BR",
}

// languagePrefix pairs a system language prefix with the locale it resolves
// to in the generated Swift fallback.
type languagePrefix struct {
	Prefix string
	Code   string
}

// fallbackPrefixes is the preference order for runtime language resolution
// in the generated Swift fallback when the user has no explicit override.
var fallbackPrefixes = []languagePrefix{
	{"de", "de"},
	{"zh", "zh"},
	{"fr", "fr"},
	{"it", "it"},
	{"ru", "ru"},
	{"es", "es"},
	{"pt", "pt-BR"},
}

func mapCode(table map[string]string, code string) string {
	if mapped, ok := table[code]; ok {
		return mapped
	}
	return code
}

// resourceName converts a dot-joined key to a valid resource identifier for
// Android and HarmonyOS.
var resourceName = strings.NewReplacer(".", "_", "-", "_").Replace
