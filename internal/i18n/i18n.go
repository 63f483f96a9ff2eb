// Package i18n provides the UI string tables. Tables are embedded YAML, one
// file per language; unknown languages and unknown keys fall back rather than
// fail.
package i18n

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed en.yaml ru.yaml
var tablesFS embed.FS

const Default = "en"

var tables = map[string]map[string]string{}

func init() {
	for _, lang := range []string{"en", "ru"} {
		raw, err := tablesFS.ReadFile(lang + ".yaml")
		if err != nil {
			panic(fmt.Sprintf("i18n: missing table %s: %v", lang, err))
		}
		m := map[string]string{}
		if err := yaml.Unmarshal(raw, &m); err != nil {
			panic(fmt.Sprintf("i18n: bad table %s: %v", lang, err))
		}
		tables[lang] = m
	}
}

// Languages lists the supported language codes, default first.
func Languages() []string {
	return []string{"en", "ru"}
}

func Supported(lang string) bool {
	_, ok := tables[lang]
	return ok
}

// Translator resolves keys against one language's table, falling back to the
// default table and finally to the key itself.
type Translator struct {
	lang string
}

func New(lang string) Translator {
	if !Supported(lang) {
		lang = Default
	}
	return Translator{lang: lang}
}

func (tr Translator) Lang() string { return tr.lang }

// T resolves key, substituting {name} placeholders from the kv pairs
// (name1, value1, name2, value2, ...).
func (tr Translator) T(key string, kv ...string) string {
	text, ok := tables[tr.lang][key]
	if !ok {
		text, ok = tables[Default][key]
	}
	if !ok {
		return key
	}
	for i := 0; i+1 < len(kv); i += 2 {
		text = strings.ReplaceAll(text, "{"+kv[i]+"}", kv[i+1])
	}
	return text
}
