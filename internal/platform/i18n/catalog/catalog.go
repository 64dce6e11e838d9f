// Package catalog provides locale message catalogs for player-facing copy.
// Catalogs are registered in code by the owning package; lookup falls back
// to the base locale through language matching.
package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/louisbranch/emberfall/internal/platform/errors"
)

// BaseLocale is the canonical source locale for catalogs.
const BaseLocale = "en-US"

// Bundle holds the messages of every registered locale.
type Bundle struct {
	locales map[string]map[string]string
	order   []string
	tags    []language.Tag
	matcher language.Matcher
}

// New builds a bundle from locale to key to message maps. The base locale is
// required; locale names must be valid BCP 47 tags.
func New(locales map[string]map[string]string) (*Bundle, error) {
	if _, ok := locales[BaseLocale]; !ok {
		return nil, errors.New(errors.CodeCatalogInvalid, "base locale "+BaseLocale+" is required")
	}

	order := make([]string, 0, len(locales))
	for locale := range locales {
		order = append(order, locale)
	}
	sort.Strings(order)
	// The matcher prefers earlier tags; the base locale goes first so
	// unmatched requests resolve to it.
	sort.SliceStable(order, func(i, j int) bool {
		if order[i] == BaseLocale {
			return true
		}
		if order[j] == BaseLocale {
			return false
		}
		return order[i] < order[j]
	})

	bundle := &Bundle{locales: map[string]map[string]string{}, order: order}
	for _, locale := range order {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, errors.Wrap(errors.CodeCatalogInvalid, "parse locale "+locale, err)
		}
		bundle.tags = append(bundle.tags, tag)

		messages := make(map[string]string, len(locales[locale]))
		for key, value := range locales[locale] {
			trimmed := strings.TrimSpace(key)
			if trimmed == "" {
				return nil, errors.New(errors.CodeCatalogInvalid, "catalog "+locale+": message key cannot be blank")
			}
			messages[trimmed] = value
		}
		bundle.locales[locale] = messages
	}
	bundle.matcher = language.NewMatcher(bundle.tags)
	return bundle, nil
}

// Locales returns the registered locale names, base locale first.
func (b *Bundle) Locales() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// HasLocale reports whether the locale is registered exactly.
func (b *Bundle) HasLocale(locale string) bool {
	_, ok := b.locales[locale]
	return ok
}

// Message returns the message for an exact locale and key.
func (b *Bundle) Message(locale, key string) (string, bool) {
	messages, ok := b.locales[locale]
	if !ok {
		return "", false
	}
	value, ok := messages[key]
	return value, ok
}

// Resolve matches the requested locale against the registered locales and
// returns the message for key, falling back to the base locale. A key absent
// from every candidate resolves to the key itself so missing copy stays
// visible instead of vanishing.
func (b *Bundle) Resolve(locale, key string) string {
	requested, err := language.Parse(locale)
	matched := BaseLocale
	if err == nil {
		_, index, _ := b.matcher.Match(requested)
		matched = b.order[index]
	}
	if value, ok := b.Message(matched, key); ok {
		return value
	}
	if value, ok := b.Message(BaseLocale, key); ok {
		return value
	}
	return key
}

// Register registers every catalog message with x/text/message so printers
// created with message.NewPrinter resolve them.
func (b *Bundle) Register() error {
	for i, locale := range b.order {
		tag := b.tags[i]
		messages := b.locales[locale]
		keys := make([]string, 0, len(messages))
		for key := range messages {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if err := message.SetString(tag, key, messages[key]); err != nil {
				return errors.Wrap(errors.CodeCatalogInvalid, "register "+locale+" "+key, err)
			}
		}
	}
	return nil
}
