// Copyright (c) 2026 Keymaster Team
// Strengthmeter - password strength indicator
// This source code is licensed under the MIT license found in the LICENSE file.

// package i18n provides localisation for strengthmeter's user-facing text.
// Translation files are embedded YAML catalogs loaded through go-i18n.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/toeirei/strengthmeter/internal/logging"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundle      *i18n.Bundle
	localizer   *i18n.Localizer
	currentLang string
)

// displayNames maps locale codes to names shown in language pickers.
var displayNames = map[string]string{
	"en": "English",
	"de": "Deutsch",
}

// Init loads every embedded catalog and selects lang. Unknown languages fall
// back to English.
func Init(lang string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	loadCatalogs(bundle, localeFS)

	if lang == "" {
		lang = "en"
	}
	currentLang = lang
	localizer = i18n.NewLocalizer(bundle, lang, language.English.String())
}

// loadCatalogs parses every YAML file under locales/ in fsys into b. A
// catalog that cannot be read or parsed is skipped with a warning.
func loadCatalogs(b *i18n.Bundle, fsys fs.FS) int {
	files, err := fs.ReadDir(fsys, "locales")
	if err != nil {
		logging.Warnf("i18n: cannot list locales: %v", err)
		return 0
	}
	loaded := 0
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join("locales", f.Name()))
		if err != nil {
			logging.Warnf("i18n: cannot read %s: %v", f.Name(), err)
			continue
		}
		if _, err := b.ParseMessageFileBytes(data, f.Name()); err != nil {
			logging.Warnf("i18n: cannot parse %s: %v", f.Name(), err)
			continue
		}
		loaded++
	}
	return loaded
}

// GetLang returns the active language code.
func GetLang() string {
	if localizer == nil {
		Init("en")
	}
	return currentLang
}

// GetAvailableLocales returns the embedded locale codes with display names.
func GetAvailableLocales() map[string]string {
	out := map[string]string{}
	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		logging.Warnf("i18n: cannot list locales: %v", err)
	}
	for _, f := range files {
		code := strings.TrimSuffix(f.Name(), path.Ext(f.Name()))
		name, ok := displayNames[code]
		if !ok {
			name = code
		}
		out[code] = name
	}
	return out
}

// IsAvailable reports whether lang has an embedded catalog.
func IsAvailable(lang string) bool {
	_, ok := GetAvailableLocales()[lang]
	return ok
}

// T translates messageID. A single map argument is used as template data;
// any other arguments are applied to the translation with fmt.Sprintf.
// Unknown IDs are returned unchanged.
func T(messageID string, args ...any) string {
	if localizer == nil {
		Init("en")
	}

	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		if data, ok := args[0].(map[string]any); ok {
			cfg.TemplateData = data
			args = nil
		}
	}

	msg, err := localizer.Localize(cfg)
	if err != nil {
		return messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}
