// Copyright (c) 2026 Keymaster Team
// Strengthmeter - password strength indicator
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the locale catalogs for missing or orphaned keys.
// It scans the Go sources for i18n.T calls and key prefixes and compares
// them against internal/i18n/locales/*.yaml.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/toeirei/strengthmeter/internal/logging"
	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

var (
	// i18n.T("some.key") or a bare "some.key" literal
	keyRe = regexp.MustCompile(`i18n\.T\("([^"]+)"|"([a-z]+\.[a-z._]+)"`)
	// "tier." + tier.Key(): every key below the prefix counts as used
	prefixRe = regexp.MustCompile(`"([a-z_]+\.)"\s*\+`)
)

// usage is what the sources reference.
type usage struct {
	keys     map[string]struct{}
	prefixes []string
}

func (u usage) uses(key string) bool {
	if _, ok := u.keys[key]; ok {
		return true
	}
	for _, p := range u.prefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}

// report is the outcome of one lint run.
type report struct {
	Orphaned []string
	Missing  map[string][]string // locale file -> keys
}

func (r report) failed() bool { return len(r.Missing) > 0 }

func main() {
	r, err := lint(projectRoot, filepath.Join(projectRoot, localesDir))
	if err != nil {
		logging.Errorf("i18n lint: %v", err)
		os.Exit(1)
	}
	for _, k := range r.Orphaned {
		logging.Warnf("orphaned key %s", k)
	}
	files := make([]string, 0, len(r.Missing))
	for f := range r.Missing {
		files = append(files, f)
	}
	sort.Strings(files)
	for _, f := range files {
		for _, k := range r.Missing[f] {
			logging.Errorf("%s: missing key %s", f, k)
		}
	}
	if r.failed() {
		os.Exit(1)
	}
	logging.Infof("all locale files are consistent")
}

func lint(root, locales string) (report, error) {
	used, err := findUsage(root)
	if err != nil {
		return report{}, fmt.Errorf("scan sources: %w", err)
	}
	primary, err := loadKeysFromLocale(filepath.Join(locales, primaryLocale))
	if err != nil {
		return report{}, fmt.Errorf("load primary locale: %w", err)
	}

	r := report{Missing: map[string][]string{}}
	for key := range primary {
		if !used.uses(key) {
			r.Orphaned = append(r.Orphaned, key)
		}
	}
	sort.Strings(r.Orphaned)

	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return report{}, err
	}
	for _, file := range files {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return report{}, fmt.Errorf("load %s: %w", file, err)
		}
		var missing []string
		for key := range primary {
			if _, ok := keys[key]; !ok {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			r.Missing[filepath.Base(file)] = missing
		}
	}
	return r, nil
}

// findUsage scans non-test .go files below root, skipping tools and
// underscore-prefixed directories.
func findUsage(root string) (usage, error) {
	u := usage{keys: map[string]struct{}{}}
	seen := map[string]bool{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "tools" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range keyRe.FindAllStringSubmatch(string(content), -1) {
			switch {
			case m[1] != "":
				u.keys[m[1]] = struct{}{}
			case m[2] != "":
				u.keys[m[2]] = struct{}{}
			}
		}
		for _, m := range prefixRe.FindAllStringSubmatch(string(content), -1) {
			if !seen[m[1]] {
				seen[m[1]] = true
				u.prefixes = append(u.prefixes, m[1])
			}
		}
		return nil
	})
	return u, err
}

// loadKeysFromLocale reads a YAML file and returns a flat set of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML turns nested maps into dot-separated keys.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			p := k
			if prefix != "" {
				p = prefix + "." + k
			}
			flattenYAML(p, val, keys)
		}
	case []any:
		for i, val := range v {
			flattenYAML(fmt.Sprintf("%s[%d]", prefix, i), val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
