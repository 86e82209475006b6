package errors

import (
	"github.com/luxview/l10ngen/messages"
	"github.com/napalu/goopt/v2/i18n"
)

var (
	// ErrProjectRootNotFound is returned when no ancestor of the working
	// directory contains the locales source directory
	ErrProjectRootNotFound = i18n.NewError(messages.Keys.AppError.ProjectRootNotFound)

	// ErrFailedToReadLocale is returned when a locale file cannot be read
	ErrFailedToReadLocale = i18n.NewError(messages.Keys.AppError.FailedToReadLocale)

	// ErrFailedToParseLocale is returned when a locale file is not valid JSON
	ErrFailedToParseLocale = i18n.NewError(messages.Keys.AppError.FailedToParseLocale)

	// ErrNoLocales is returned when the locales directory contains no JSON files
	ErrNoLocales = i18n.NewError(messages.Keys.AppError.NoLocales)

	// ErrMissingEnglish is returned when the string-catalog generator runs
	// without an English locale
	ErrMissingEnglish = i18n.NewError(messages.Keys.AppError.MissingEnglish)

	// ErrFailedToCreateOutputDir is returned when output directory creation fails
	ErrFailedToCreateOutputDir = i18n.NewError(messages.Keys.AppError.FailedToCreateOutputDir)

	// ErrFailedToMarshal is returned when marshaling an output document fails
	ErrFailedToMarshal = i18n.NewError(messages.Keys.AppError.FailedToMarshal)

	// ErrFailedToWriteOutput is returned when writing an output file fails
	ErrFailedToWriteOutput = i18n.NewError(messages.Keys.AppError.FailedToWriteOutput)

	// ErrFailedToExecuteTemplate is returned when rendering a generated source
	// file fails
	ErrFailedToExecuteTemplate = i18n.NewError(messages.Keys.AppError.FailedToExecuteTemplate)
)
