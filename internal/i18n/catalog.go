package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed locales/*.json
var localeFS embed.FS

// Catalog maps a language code to its flattened table ("login.button" -> "Login").
type Catalog map[string]map[string]string

// DefaultCatalog loads the embedded tables for every supported language.
func DefaultCatalog() (Catalog, error) {
	return LoadCatalog(localeFS, "locales", SupportedLanguages, DefaultLanguage)
}

// LoadCatalog reads <dir>/<lang>.json for each language and fails unless all
// tables define exactly the same keys as the table of def.
func LoadCatalog(fsys fs.FS, dir string, langs []string, def string) (Catalog, error) {
	cat := make(Catalog, len(langs))
	for _, lang := range langs {
		data, err := fs.ReadFile(fsys, path.Join(dir, lang+".json"))
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s table: %w", lang, err)
		}
		table, err := parseTable(data)
		if err != nil {
			return nil, fmt.Errorf("i18n: parse %s table: %w", lang, err)
		}
		cat[lang] = table
	}
	if err := cat.checkParity(def); err != nil {
		return nil, err
	}
	return cat, nil
}

// Keys returns the sorted keys of lang.
func (c Catalog) Keys(lang string) []string {
	keys := make([]string, 0, len(c[lang]))
	for k := range c[lang] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (c Catalog) checkParity(def string) error {
	base, ok := c[def]
	if !ok {
		return fmt.Errorf("i18n: no table for default language %q", def)
	}
	var problems []string
	for lang, table := range c {
		if lang == def {
			continue
		}
		if missing := diff(base, table); len(missing) > 0 {
			problems = append(problems, fmt.Sprintf("%s is missing %s", lang, strings.Join(missing, ", ")))
		}
		if extra := diff(table, base); len(extra) > 0 {
			problems = append(problems, fmt.Sprintf("%s has extra %s", lang, strings.Join(extra, ", ")))
		}
	}
	if len(problems) > 0 {
		sort.Strings(problems)
		return fmt.Errorf("i18n: translation tables differ: %s", strings.Join(problems, "; "))
	}
	return nil
}

// diff returns the sorted keys of a that are absent from b.
func diff(a, b map[string]string) []string {
	var out []string
	for k := range a {
		if _, ok := b[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func parseTable(data []byte) (map[string]string, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	table := make(map[string]string)
	if err := flatten("", raw, table); err != nil {
		return nil, err
	}
	return table, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) error {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			if err := flatten(key, val, out); err != nil {
				return err
			}
		default:
			return fmt.Errorf("key %q: want string or object, got %T", key, v)
		}
	}
	return nil
}
