package i18n

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
	"golang.org/x/text/message"
)

// Localizer resolves message identifiers for a single locale. Lookups that
// fail are remembered and reported by Err, so a page can be rendered in one
// pass and rejected afterwards.
type Localizer struct {
	bundle  *Bundle
	locale  string
	printer *message.Printer
	base    *message.Printer
	errs    []error
}

// Localizer returns a localizer for locale. Unknown locales use the base
// locale.
func (b *Bundle) Localizer(locale string) *Localizer {
	if !b.HasLocale(locale) {
		locale = BaseLocale
	}
	return &Localizer{
		bundle:  b,
		locale:  locale,
		printer: message.NewPrinter(b.tags[locale], message.Catalog(b.catalog)),
		base:    message.NewPrinter(b.tags[BaseLocale], message.Catalog(b.catalog)),
	}
}

// Locale returns the catalog locale in use.
func (l *Localizer) Locale() string {
	return l.locale
}

// Lang returns the BCP 47 tag for the html lang attribute.
func (l *Localizer) Lang() string {
	return l.bundle.tags[l.locale].String()
}

// T returns the plain text for id.
func (l *Localizer) T(id string) string {
	text, ok := l.lookup(id)
	if !ok {
		return id
	}
	return text
}

// Sprintf formats the message id with args using locale number formatting.
func (l *Localizer) Sprintf(id string, args ...any) string {
	if _, ok := l.lookup(id); !ok {
		return id
	}
	if _, own := l.bundle.locales[l.locale][id]; own {
		return l.printer.Sprintf(id, args...)
	}
	return l.base.Sprintf(id, args...)
}

// HTML renders the inline Markdown of message id as sanitized HTML. Text
// that Markdown reads as anything other than a single paragraph is escaped
// verbatim, so the result always fits inside an inline context.
func (l *Localizer) HTML(id string) template.HTML {
	text, ok := l.lookup(id)
	if !ok {
		return template.HTML(template.HTMLEscapeString(id))
	}
	src := []byte(text)
	doc := l.bundle.md.Parser().Parse(gmtext.NewReader(src))
	para := doc.FirstChild()
	if doc.ChildCount() != 1 || para.Kind() != ast.KindParagraph {
		return template.HTML(template.HTMLEscapeString(text))
	}

	var buf bytes.Buffer
	for n := para.FirstChild(); n != nil; n = n.NextSibling() {
		if err := l.bundle.md.Renderer().Render(&buf, src, n); err != nil {
			l.errs = append(l.errs, fmt.Errorf("render %s (%s): %w", id, l.locale, err))
			return template.HTML(template.HTMLEscapeString(text))
		}
	}
	return template.HTML(l.bundle.policy.Sanitize(strings.TrimSpace(buf.String())))
}

// Err returns every lookup failure since the localizer was created.
func (l *Localizer) Err() error {
	return errors.Join(l.errs...)
}

func (l *Localizer) lookup(id string) (string, bool) {
	text, ok := l.bundle.Message(l.locale, id)
	if !ok || strings.TrimSpace(text) == "" {
		l.errs = append(l.errs, fmt.Errorf("%w: %s (%s)", ErrMissingMessage, id, l.locale))
		return "", false
	}
	return text, true
}
