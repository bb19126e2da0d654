// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var supported = []language.Tag{language.English, language.Korean}

var (
	matcher = language.NewMatcher(supported)
	builtin = buildCatalog()
)

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range korean {
		if err := b.SetString(language.Korean, key, msg); err != nil {
			panic(err)
		}
	}
	return b
}

// Tag resolves a locale name ("en", "ko", "ko-KR", ...) to a supported tag.
// Unknown or empty locales resolve to English.
func Tag(locale string) language.Tag {
	if locale == "" {
		return language.English
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.English
	}
	return supported[idx]
}

// Supported lists the locale names with a translation.
func Supported() []string {
	out := make([]string, 0, len(supported))
	for _, t := range supported {
		out = append(out, t.String())
	}
	return out
}

// NewPrinter returns a printer for locale. Keys without a translation print
// the key itself as the format string.
func NewPrinter(locale string) *message.Printer {
	return message.NewPrinter(Tag(locale), message.Catalog(builtin))
}
