// Package templates holds the text templates for generated source files.
package templates

// FallbackData feeds FallbackFileTemplate.
type FallbackData struct {
	Timestamp string
	Languages []FallbackLanguage
	Prefixes  []FallbackPrefix
}

// FallbackLanguage is one language dictionary in the generated Swift file.
type FallbackLanguage struct {
	Code    string
	Entries []FallbackEntry
}

// FallbackEntry is a single key/value pair; Value must already be escaped
// for embedding in a Swift string literal.
type FallbackEntry struct {
	Key   string
	Value string
}

// FallbackPrefix maps a preferred-language prefix to the locale it selects.
type FallbackPrefix struct {
	Prefix string
	Code   string
}

// FallbackFileTemplate renders the legacy Localization.swift fallback with
// hardcoded dictionaries and runtime language resolution.
const FallbackFileTemplate = `// Auto-generated from locales/*.json - DO NOT EDIT MANUALLY
// Generated: {{.Timestamp}}
// Run: l10ngen --swift

import Foundation

/// Localization helper for the app
struct L10n {
    private static let translations: [String: [String: String]] = [
{{- range .Languages}}
        "{{.Code}}": [
{{- range .Entries}}
            "{{.Key}}": "{{.Value}}",
{{- end}}
        ],
{{- end}}
    ]

    /// Get localized string for a specific language
    static func string(_ key: String, language: String) -> String {
        return translations[language]?[key] ?? translations["en"]?[key] ?? key
    }

    /// Get current language from user preferences or system locale
    static var currentLanguage: String {
        // Check if user has set a specific language in preferences
        let userDefault = UserDefaults.standard.string(forKey: "appLanguage") ?? "system"
        if userDefault != "system" {
            return userDefault
        }
        // Fall back to system language
        let preferred = Locale.preferredLanguages.first ?? "en"
{{- range .Prefixes}}
        if preferred.hasPrefix("{{.Prefix}}") { return "{{.Code}}" }
{{- end}}
        return "en"
    }

    /// Get localized string using current language
    static func string(_ key: String) -> String {
        return string(key, language: currentLanguage)
    }
}
`
