package options

import (
	"github.com/napalu/goopt/v2/i18n"
)

// AppConfig is the tool's command line surface. The three platform flags
// select which generators run; when none is set every platform is generated.
type AppConfig struct {
	Swift     bool            `goopt:"name:swift;desc:Generate the Xcode string catalog and Swift fallback;descKey:app.app_config.swift_desc"`
	Kotlin    bool            `goopt:"name:kotlin;desc:Generate Android strings.xml resources;descKey:app.app_config.kotlin_desc"`
	HarmonyOS bool            `goopt:"name:harmonyos;desc:Generate HarmonyOS string.json resources;descKey:app.app_config.harmonyos_desc"`
	Verbose   bool            `goopt:"short:v;desc:Enable verbose output;descKey:app.app_config.verbose_desc"`
	Language  string          `goopt:"short:l;desc:Language for output (en, de, fr);descKey:app.app_config.language_desc"`
	Help      bool            `goopt:"short:h;desc:Show help;descKey:app.app_config.help_desc"`
	TR        i18n.Translator `ignore:"true"` // Translator for messages
}

// All reports whether every platform should run, the default when no
// platform flag is given.
func (c *AppConfig) All() bool {
	return !c.Swift && !c.Kotlin && !c.HarmonyOS
}
