package webstyle

import (
	"html/template"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"websubmit/portal/internal/messages"
)

// HeaderOptions are the inputs of PageHeader
type HeaderOptions struct {
	Lang            string
	HeaderTitle     string // not yet escaped
	Description     string // not yet escaped
	Keywords        string // not yet escaped
	UserInfoBox     template.HTML
	UserActivities  template.HTML
	AdminActivities template.HTML
	NavTrailBox     template.HTML
	PageHeaderAdd   template.HTML
	MetaHeaderAdd   template.HTML
	UID             int64
	SecurePage      bool
	NavMenuID       string
	RSSURL          string
	BodyCSSClasses  []string
}

// PageOptions are the inputs of Page
type PageOptions struct {
	Lang              string
	Description       string
	Keywords          string
	UserInfoBox       template.HTML
	UserActivities    template.HTML
	AdminActivities   template.HTML
	NavTrailBox       template.HTML
	PageHeaderAdd     template.HTML
	BoxLeftTop        template.HTML
	BoxLeftTopAdd     template.HTML
	BoxLeftBottom     template.HTML
	BoxLeftBottomAdd  template.HTML
	BoxRightTop       template.HTML
	BoxRightTopAdd    template.HTML
	BoxRightBottom    template.HTML
	BoxRightBottomAdd template.HTML
	TitlePrologue     template.HTML
	Title             string // not yet escaped
	TitleEpilogue     template.HTML
	Body              template.HTML
	LastUpdated       string
	PageFooterAdd     template.HTML
	UID               int64
	SecurePage        bool
	NavMenuID         string
	MetaHeaderAdd     template.HTML
	RSSURL            string
	HideTitle         bool
	BodyCSSClasses    []string
}

type headerData struct {
	Lang, LangISO       string
	RTL                 bool
	PageTitle           string
	SupportEmail        string
	CSSURL, CSSSkin     string
	SiteName, SiteURL   string
	RSSURL              string
	Description         string
	Keywords            string
	MetaHeaderAdd       template.HTML
	BodyClass           string
	InspectTemplates    bool
	UserInfoBox         template.HTML
	HomeURL             string
	SearchURL           string
	SubmitURL           string
	HelpURL             string
	SearchSelected      string
	SubmitSelected      string
	PersonalizeSelected string
	HelpSelected        string
	AdminSelected       string
	MsgSearch           string
	MsgSubmit           string
	MsgHelp             string
	UserActivities      template.HTML
	AdminActivities     template.HTML
	NavTrailBox         template.HTML
	PageHeaderAdd       template.HTML
}

type bodyData struct {
	BoxLeftTop, BoxLeftTopAdd, BoxLeftBottom, BoxLeftBottomAdd     template.HTML
	BoxRightTop, BoxRightTopAdd, BoxRightBottom, BoxRightBottomAdd template.HTML
	TitlePrologue, TitleEpilogue, Body                             template.HTML
	Headline                                                       string
}

type footerData struct {
	PageFooterAdd   template.HTML
	SiteName        string
	SearchURL       string
	SubmitURL       string
	AccountURL      string
	HelpURL         string
	MsgSearch       string
	MsgSubmit       string
	MsgPersonalize  string
	MsgHelp         string
	MsgPoweredBy    string
	MsgMaintainedBy string
	SoftwareName    string
	SoftwareURL     string
	Version         string
	SupportEmail    string
	LastUpdated     string
	LanguageBox     template.HTML
}

// Page creates a complete page: header, body boxes and footer
func (c *Composer) Page(r *http.Request, opts PageOptions) template.HTML {
	lang := c.lang(opts.Lang)

	header := c.PageHeader(r, HeaderOptions{
		Lang:            lang,
		HeaderTitle:     opts.Title,
		Description:     opts.Description,
		Keywords:        opts.Keywords,
		UserInfoBox:     opts.UserInfoBox,
		UserActivities:  opts.UserActivities,
		AdminActivities: opts.AdminActivities,
		NavTrailBox:     opts.NavTrailBox,
		PageHeaderAdd:   opts.PageHeaderAdd,
		MetaHeaderAdd:   opts.MetaHeaderAdd,
		UID:             opts.UID,
		SecurePage:      opts.SecurePage,
		NavMenuID:       opts.NavMenuID,
		RSSURL:          opts.RSSURL,
		BodyCSSClasses:  opts.BodyCSSClasses,
	})

	headline := ""
	if opts.Title != "" && !opts.HideTitle {
		headline = opts.Title
		if opts.Title == c.site.LocalName(lang) {
			headline = c.t(lang, "Home")
		}
	}

	body := c.execute("pagebody", bodyData{
		BoxLeftTop:        opts.BoxLeftTop,
		BoxLeftTopAdd:     opts.BoxLeftTopAdd,
		BoxLeftBottom:     opts.BoxLeftBottom,
		BoxLeftBottomAdd:  opts.BoxLeftBottomAdd,
		BoxRightTop:       opts.BoxRightTop,
		BoxRightTopAdd:    opts.BoxRightTopAdd,
		BoxRightBottom:    opts.BoxRightBottom,
		BoxRightBottomAdd: opts.BoxRightBottomAdd,
		TitlePrologue:     opts.TitlePrologue,
		TitleEpilogue:     opts.TitleEpilogue,
		Body:              opts.Body,
		Headline:          headline,
	})

	footer := c.PageFooter(r, lang, opts.LastUpdated, opts.PageFooterAdd)

	return header + body + footer
}

// PageHeader creates everything from the doctype to the end of the page header block
func (c *Composer) PageHeader(r *http.Request, opts HeaderOptions) template.HTML {
	lang := c.lang(opts.Lang)
	siteName := c.site.LocalName(lang)

	pageTitle := opts.HeaderTitle + " - " + siteName
	if opts.HeaderTitle == siteName {
		pageTitle = siteName
	}

	classes := make([]string, 0, len(opts.BodyCSSClasses)+1)
	classes = append(classes, opts.BodyCSSClasses...)
	if opts.NavMenuID != "" {
		classes = append(classes, opts.NavMenuID)
	}

	cssURL := c.site.URL
	if opts.SecurePage {
		cssURL = c.site.SecureURL
	}
	cssSkin := ""
	if c.site.TemplateSkin != "" && c.site.TemplateSkin != "default" {
		cssSkin = "_" + c.site.TemplateSkin
	}

	rssURL := opts.RSSURL
	if rssURL == "" {
		rssURL = strings.TrimRight(c.site.URL, "/") + "/rss"
	}

	return c.execute("pageheader", headerData{
		Lang:                lang,
		LangISO:             isoLanguage(lang),
		RTL:                 messages.IsRTL(lang),
		PageTitle:           pageTitle,
		SupportEmail:        c.site.SupportEmail,
		CSSURL:              strings.TrimRight(cssURL, "/"),
		CSSSkin:             cssSkin,
		SiteName:            siteName,
		SiteURL:             strings.TrimRight(c.site.URL, "/"),
		RSSURL:              rssURL,
		Description:         opts.Description,
		Keywords:            opts.Keywords,
		MetaHeaderAdd:       opts.MetaHeaderAdd,
		BodyClass:           strings.Join(classes, " "),
		InspectTemplates:    c.site.InspectTemplates,
		UserInfoBox:         opts.UserInfoBox,
		HomeURL:             siteLink(c.site.URL, "", lang),
		SearchURL:           siteLink(c.site.URL, "/", lang),
		SubmitURL:           siteLink(c.site.URL, "/submit", lang),
		HelpURL:             siteLink(c.site.URL, "/help/", lang),
		SearchSelected:      selected(opts.NavMenuID == "search"),
		SubmitSelected:      selected(opts.NavMenuID == "submit"),
		PersonalizeSelected: selected(strings.HasPrefix(opts.NavMenuID, "your")),
		HelpSelected:        selected(opts.NavMenuID == "help"),
		AdminSelected:       selected(strings.HasPrefix(opts.NavMenuID, "admin")),
		MsgSearch:           c.t(lang, "Search"),
		MsgSubmit:           c.t(lang, "Submit"),
		MsgHelp:             c.t(lang, "Help"),
		UserActivities:      opts.UserActivities,
		AdminActivities:     opts.AdminActivities,
		NavTrailBox:         opts.NavTrailBox,
		PageHeaderAdd:       opts.PageHeaderAdd,
	})
}

// PageFooter creates the page footer and closes the document
func (c *Composer) PageFooter(r *http.Request, lang, lastUpdated string, footerAdd template.HTML) template.HTML {
	lang = c.lang(lang)

	msgLastUpdated := ""
	if lastUpdated != "" && lastUpdated != "$Date$" {
		if strings.HasPrefix(lastUpdated, "$Date: ") || strings.HasPrefix(lastUpdated, "$Id: ") {
			lastUpdated = convertCVSDate(lastUpdated)
		}
		msgLastUpdated = c.t(lang, "Last updated") + ": " + lastUpdated
	}

	return c.execute("pagefooter", footerData{
		PageFooterAdd:   footerAdd,
		SiteName:        c.site.LocalName(lang),
		SearchURL:       siteLink(c.site.URL, "/", lang),
		SubmitURL:       siteLink(c.site.URL, "/submit", lang),
		AccountURL:      siteLink(c.site.SecureURL, "/youraccount/display", lang),
		HelpURL:         siteLink(c.site.URL, "/help/", lang),
		MsgSearch:       c.t(lang, "Search"),
		MsgSubmit:       c.t(lang, "Submit"),
		MsgPersonalize:  c.t(lang, "Personalize"),
		MsgHelp:         c.t(lang, "Help"),
		MsgPoweredBy:    c.t(lang, "Powered by"),
		MsgMaintainedBy: c.t(lang, "Maintained by"),
		SoftwareName:    c.site.SoftwareName,
		SoftwareURL:     c.site.SoftwareURL,
		Version:         c.site.Version,
		SupportEmail:    c.site.SupportEmail,
		LastUpdated:     msgLastUpdated,
		LanguageBox:     c.LanguageSelectionBox(r, lang),
	})
}

type languagePart struct {
	Name    string
	URL     string
	Current bool
}

// LanguageSelectionBox links the current page in every other configured language.
// It is empty when the site has fewer than two languages.
func (c *Composer) LanguageSelectionBox(r *http.Request, lang string) template.HTML {
	lang = c.lang(lang)
	if len(c.site.Languages) < 2 {
		return ""
	}

	var base *url.URL
	var query url.Values
	if r != nil && r.URL != nil {
		base = &url.URL{Path: r.URL.Path}
		query = r.URL.Query()
	}

	parts := make([]languagePart, 0, len(c.site.Languages))
	for _, l := range c.site.Languages {
		part := languagePart{Name: l.Name, Current: l.Code == lang}
		if !part.Current && base != nil {
			args := url.Values{}
			for k, v := range query {
				args[k] = v
			}
			args.Set("ln", l.Code)
			u := *base
			u.RawQuery = args.Encode()
			part.URL = u.String()
		}
		parts = append(parts, part)
	}

	return c.execute("languagebox", struct {
		Intro string
		Parts []languagePart
	}{
		Intro: c.t(lang, "This site is also available in the following languages:"),
		Parts: parts,
	})
}

func selected(on bool) string {
	if on {
		return "selected"
	}
	return ""
}

// isoLanguage strips the region: "pt_BR" becomes "pt"
func isoLanguage(lang string) string {
	iso, _, _ := strings.Cut(lang, "_")
	return iso
}

var cvsDatePattern = regexp.MustCompile(`(\d{4})[/-](\d{2})[/-](\d{2}) (\d{2}):(\d{2}):(\d{2})`)

// convertCVSDate turns "$Date: 2006/12/19 13:58:09 $" or a "$Id: ... $" keyword into
// "19 Dec 2006, 13:58". Strings without a recognizable date are returned unchanged.
func convertCVSDate(keyword string) string {
	m := cvsDatePattern.FindString(keyword)
	if m == "" {
		return keyword
	}
	t, err := time.Parse("2006/01/02 15:04:05", strings.ReplaceAll(m, "-", "/"))
	if err != nil {
		return keyword
	}
	return t.Format("02 Jan 2006, 15:04")
}
