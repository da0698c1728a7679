// Package messages provides the localized interface strings used by the page templates.
package messages

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Translator looks up the localized form of an English message key
type Translator interface {
	Translate(key, lang string) string
}

//go:embed catalogue.yaml
var builtinCatalogue []byte

// Catalogue maps language code to English key to translation
type Catalogue struct {
	entries map[string]map[string]string
}

// NewCatalogue returns the built-in catalogue
func NewCatalogue() (*Catalogue, error) {
	c := &Catalogue{entries: make(map[string]map[string]string)}
	if err := c.Merge(builtinCatalogue); err != nil {
		return nil, fmt.Errorf("failed to load built-in catalogue: %w", err)
	}
	return c, nil
}

// Merge adds the translations of a YAML document, overriding existing ones
func (c *Catalogue) Merge(data []byte) error {
	var doc map[string]map[string]string
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse catalogue: %w", err)
	}

	for lang, entries := range doc {
		if c.entries[lang] == nil {
			c.entries[lang] = make(map[string]string, len(entries))
		}
		for key, value := range entries {
			c.entries[lang][key] = value
		}
	}

	return nil
}

// MergeFile merges a YAML catalogue file
func (c *Catalogue) MergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read catalogue %s: %w", path, err)
	}
	return c.Merge(data)
}

// Translate returns the translation of key, or key itself when none is known.
// Regional variants such as "pt_BR" fall back to their base language.
func (c *Catalogue) Translate(key, lang string) string {
	if value, ok := c.entries[lang][key]; ok && value != "" {
		return value
	}
	if base, _, found := strings.Cut(lang, "_"); found {
		if value, ok := c.entries[base][key]; ok && value != "" {
			return value
		}
	}
	return key
}

var rtlLanguages = map[string]bool{
	"ar": true,
	"fa": true,
	"he": true,
	"ur": true,
}

// IsRTL reports whether the language is written right to left
func IsRTL(lang string) bool {
	base, _, _ := strings.Cut(lang, "_")
	return rtlLanguages[base]
}
