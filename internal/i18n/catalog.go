// Package i18n loads the message catalogs and resolves message identifiers
// to display text for one locale at a time.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// BaseLocale is the source locale every other locale falls back to.
const BaseLocale = "en"

// ErrMissingMessage is returned when a message identifier has no text.
var ErrMissingMessage = errors.New("missing message")

// pluralForms lists the CLDR plural categories a catalog value may define,
// in selection order.
var pluralForms = []struct {
	name string
	form plural.Form
}{
	{"zero", plural.Zero},
	{"one", plural.One},
	{"two", plural.Two},
	{"few", plural.Few},
	{"many", plural.Many},
	{"other", plural.Other},
}

//go:embed locales/*/*.json
var embeddedFS embed.FS

// Bundle holds the messages of every loaded locale.
type Bundle struct {
	locales map[string]map[string]string
	plurals map[string]map[string]map[string]string
	tags    map[string]language.Tag
	names   []string // base locale first, then sorted
	matcher language.Matcher
	catalog *catalog.Builder

	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// LoadEmbedded loads the catalogs compiled into the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS loads every locales/<locale>/<namespace>.json file in fsys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.json")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, errors.New("no catalog files found")
	}
	sort.Strings(paths)

	b := &Bundle{
		locales: map[string]map[string]string{},
		plurals: map[string]map[string]map[string]string{},
		tags:    map[string]language.Tag{},
		md:      goldmark.New(),
		policy:  bluemonday.UGCPolicy().AddTargetBlankToFullyQualifiedLinks(true),
	}
	for _, p := range paths {
		if err := b.addFile(fsys, p); err != nil {
			return nil, err
		}
	}
	if _, ok := b.locales[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	if err := b.index(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bundle) addFile(fsys fs.FS, p string) error {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return fmt.Errorf("read catalog %s: %w", p, err)
	}
	var messages map[string]json.RawMessage
	if err := json.Unmarshal(data, &messages); err != nil {
		return fmt.Errorf("parse catalog %s: %w", p, err)
	}

	locale := path.Base(path.Dir(p))
	if _, err := language.Parse(locale); err != nil {
		return fmt.Errorf("catalog %s: invalid locale %q: %w", p, locale, err)
	}
	all, ok := b.locales[locale]
	if !ok {
		all = map[string]string{}
		b.locales[locale] = all
	}
	for key, raw := range messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", p)
		}
		if _, exists := all[key]; exists {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %q", p, key, locale)
		}
		text, forms, err := parseValue(raw)
		if err != nil {
			return fmt.Errorf("catalog %s: key %q: %w", p, key, err)
		}
		all[key] = text
		if forms != nil {
			if b.plurals[locale] == nil {
				b.plurals[locale] = map[string]map[string]string{}
			}
			b.plurals[locale][key] = forms
		}
	}
	return nil
}

// parseValue accepts either a plain string or an object of plural forms
// such as {"one": "%d word", "other": "%d words"}. The "other" form doubles
// as the plain text of a plural message.
func parseValue(raw json.RawMessage) (string, map[string]string, error) {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text, nil, nil
	}
	var forms map[string]string
	if err := json.Unmarshal(raw, &forms); err != nil {
		return "", nil, errors.New("value must be a string or an object of plural forms")
	}
	for name := range forms {
		if !knownForm(name) {
			return "", nil, fmt.Errorf("unknown plural form %q", name)
		}
	}
	other, ok := forms["other"]
	if !ok {
		return "", nil, errors.New(`plural message needs an "other" form`)
	}
	return other, forms, nil
}

func knownForm(name string) bool {
	for _, f := range pluralForms {
		if f.name == name {
			return true
		}
	}
	return false
}

// pluralMessage selects a form on the first argument.
func pluralMessage(forms map[string]string) catalog.Message {
	var cases []any
	for _, f := range pluralForms {
		if text, ok := forms[f.name]; ok {
			cases = append(cases, f.form, text)
		}
	}
	return plural.Selectf(1, "%d", cases...)
}

// index builds the language matcher and the x/text catalog used for
// formatted messages.
func (b *Bundle) index() error {
	b.names = append(b.names, BaseLocale)
	for locale := range b.locales {
		if locale != BaseLocale {
			b.names = append(b.names, locale)
		}
	}
	sort.Strings(b.names[1:])

	b.catalog = catalog.NewBuilder(catalog.Fallback(language.MustParse(BaseLocale)))
	supported := make([]language.Tag, 0, len(b.names))
	for _, locale := range b.names {
		tag := language.MustParse(locale)
		b.tags[locale] = tag
		supported = append(supported, tag)
		for key, value := range b.locales[locale] {
			if forms, ok := b.plurals[locale][key]; ok {
				if err := b.catalog.Set(tag, key, pluralMessage(forms)); err != nil {
					return fmt.Errorf("register %s/%s: %w", locale, key, err)
				}
				continue
			}
			if err := b.catalog.SetString(tag, key, value); err != nil {
				return fmt.Errorf("register %s/%s: %w", locale, key, err)
			}
		}
	}
	b.matcher = language.NewMatcher(supported)
	return nil
}

// Locales returns the available locales, base locale first.
func (b *Bundle) Locales() []string {
	return append([]string(nil), b.names...)
}

// HasLocale reports whether the locale has a catalog.
func (b *Bundle) HasLocale(locale string) bool {
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Message returns the text for id in locale, falling back to the base locale.
func (b *Bundle) Message(locale, id string) (string, bool) {
	if v, ok := b.locales[locale][id]; ok {
		return v, true
	}
	v, ok := b.locales[BaseLocale][id]
	return v, ok
}

// Missing returns the ids that locale does not define itself.
func (b *Bundle) Missing(locale string, ids []string) []string {
	var out []string
	for _, id := range ids {
		if _, ok := b.locales[locale][id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

// Unresolved returns the ids that no locale resolves to non-empty text.
func (b *Bundle) Unresolved(ids []string) []string {
	var out []string
	for _, id := range ids {
		found := false
		for _, messages := range b.locales {
			if strings.TrimSpace(messages[id]) != "" {
				found = true
				break
			}
		}
		if !found {
			out = append(out, id)
		}
	}
	return out
}

// Match returns the supported locale that best fits an Accept-Language
// header value.
func (b *Bundle) Match(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return BaseLocale
	}
	_, idx, conf := b.matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(b.names) {
		return BaseLocale
	}
	return b.names[idx]
}
