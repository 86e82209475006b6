package main

//go:generate goopt-i18n-gen -i "locales/*.json" generate -o messages/messages.go -p messages

import (
	"embed"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/napalu/goopt/v2"
	"github.com/napalu/goopt/v2/i18n"
	"golang.org/x/text/language"

	"github.com/luxview/l10ngen/locale"
	"github.com/luxview/l10ngen/messages"
	"github.com/luxview/l10ngen/options"
	"github.com/luxview/l10ngen/platforms"
)

//go:embed locales/*.json
var localesFS embed.FS

func main() {
	cfg := &options.AppConfig{}

	// Create i18n bundle for the tool's own messages
	bundle, err := i18n.NewBundleWithFS(localesFS, "locales")
	if err != nil {
		log.Fatalf("Failed to create i18n bundle: %v", err)
	}
	cfg.TR = bundle

	parser, err := goopt.NewParserFromStruct(cfg,
		goopt.WithFlagNameConverter(goopt.ToKebabCase),
		goopt.WithUserBundle(bundle))
	if err != nil {
		log.Fatalf("Failed to create parser: %v", err)
	}

	success := parser.Parse(os.Args)

	// Handle language switching
	if cfg.Language != "" && cfg.Language != bundle.GetDefaultLanguage().String() {
		lang := parseLanguage(cfg.Language)
		if lang != language.Und {
			bundle.SetDefaultLanguage(lang)
			// update goopt system bundle so goopt's own messages follow
			i18n.Default().SetDefaultLanguage(lang)
		}
	}

	if cfg.Help {
		parser.PrintUsageWithGroups(os.Stdout)
		os.Exit(0)
	}

	if !success {
		for _, err := range parser.GetErrors() {
			fmt.Fprintln(os.Stderr, cfg.TR.T(messages.Keys.AppError.ParseError, err))
		}
		parser.PrintUsageWithGroups(os.Stderr)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, cfg.TR.T(messages.Keys.AppError.GenerationFailed, err))
		os.Exit(1)
	}
}

// run loads the locale set once and feeds it to every selected generator,
// in a fixed order: Swift, Android, HarmonyOS.
func run(cfg *options.AppConfig) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	root, err := platforms.FindProjectRoot(wd)
	if err != nil {
		return err
	}

	localesDir := filepath.Join(root, platforms.LocalesDir)
	fmt.Println(cfg.TR.T(messages.Keys.AppLoader.Loading, localesDir))

	set, err := locale.LoadAll(localesDir)
	if err != nil {
		return err
	}

	languages := set.Languages()
	fmt.Println(cfg.TR.T(messages.Keys.AppLoader.Loaded, len(set), strings.Join(languages, ", ")))
	if cfg.Verbose {
		for _, lang := range languages {
			fmt.Println(cfg.TR.T(messages.Keys.AppLoader.LanguageKeys, lang, len(set[lang])))
		}
	}
	fmt.Println()

	if cfg.All() || cfg.Swift {
		if err := platforms.GenerateSwift(cfg, root, set); err != nil {
			return err
		}
		fmt.Println()
	}

	if cfg.All() || cfg.Kotlin {
		if err := platforms.GenerateAndroid(cfg, root, set); err != nil {
			return err
		}
		fmt.Println()
	}

	if cfg.All() || cfg.HarmonyOS {
		if err := platforms.GenerateHarmony(cfg, root, set); err != nil {
			return err
		}
		fmt.Println()
	}

	fmt.Println(cfg.TR.T(messages.Keys.App.Done))
	return nil
}

func parseLanguage(lang string) language.Tag {
	switch strings.ToLower(lang) {
	case "en":
		return language.English
	case "de":
		return language.German
	case "fr":
		return language.French
	default:
		return language.Und
	}
}
