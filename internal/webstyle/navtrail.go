package webstyle

import (
	"html/template"

	"websubmit/portal/internal/domain"
)

type navTrailData struct {
	Prolog, Epilog string
	Separator      template.HTML
	Items          []domain.NavLink
}

// NavTrailBox renders the breadcrumb: Home, the previous links, then the page title.
// The home page itself (title equal to the site name) gets no trail.
func (c *Composer) NavTrailBox(lang, title string, previous []domain.NavLink, separator template.HTML, prolog, epilog string) template.HTML {
	lang = c.lang(lang)
	if title == c.site.LocalName(lang) {
		return ""
	}

	items := make([]domain.NavLink, 0, len(previous)+2)
	items = append(items, domain.NavLink{Label: c.t(lang, "Home"), URL: siteLink(c.site.URL, "", lang)})
	items = append(items, previous...)
	if title != "" {
		items = append(items, domain.NavLink{Label: title})
	}

	return c.execute("navtrail", navTrailData{
		Prolog:    prolog,
		Epilog:    epilog,
		Separator: separator,
		Items:     items,
	})
}
