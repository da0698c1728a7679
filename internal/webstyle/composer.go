// Package webstyle assembles the HTML pages of the site: header, footer,
// navigation trail, boxes, error boxes and the detailed record container.
//
// Fragments passed in as template.HTML are inserted verbatim. Every plain
// string ends up escaped for the context it is rendered in.
package webstyle

import (
	"bytes"
	"context"
	"html/template"
	"net/url"
	"strings"
	"time"

	"websubmit/portal/internal/config"
	"websubmit/portal/internal/messages"

	log "github.com/sirupsen/logrus"
)

// RecordService is the part of the record store the templates read from
type RecordService interface {
	FieldValues(ctx context.Context, recid int64, tag string) ([]string, error)
	IsPublic(ctx context.Context, recid int64) (bool, error)
	FormatRecord(ctx context.Context, recid int64, format string) (string, error)
}

// Composer renders pages for one site
type Composer struct {
	site    config.SiteConfig
	tr      messages.Translator
	records RecordService
	now     func() time.Time
}

func NewComposer(site config.SiteConfig, tr messages.Translator, records RecordService) *Composer {
	return &Composer{
		site:    site,
		tr:      tr,
		records: records,
		now:     time.Now,
	}
}

// Site returns the site configuration the composer renders with
func (c *Composer) Site() config.SiteConfig {
	return c.site
}

func (c *Composer) t(lang, key string) string {
	return c.tr.Translate(key, lang)
}

func (c *Composer) lang(lang string) string {
	if lang == "" {
		return c.site.DefaultLanguage
	}
	return lang
}

// execute renders a named template. The templates are fixed at build time, so a
// failure here is a programming error; it is logged and the partial output returned.
func (c *Composer) execute(name string, data any) template.HTML {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		log.WithField("template", name).Errorf("❌ Failed to render template: %v", err)
	}
	return template.HTML(buf.String())
}

// siteLink builds "<base><path>?ln=<lang>"
func siteLink(base, path, lang string) string {
	return strings.TrimRight(base, "/") + path + "?" + url.Values{"ln": {lang}}.Encode()
}

// Translate looks a message up in the composer's catalogue
func (c *Composer) Translate(lang, key string) string {
	return c.t(c.lang(lang), key)
}
