package webstyle

import (
	"context"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"websubmit/portal/internal/domain"

	log "github.com/sirupsen/logrus"
)

// RecordTopOptions configures DetailedRecordTop. A nil count hides the
// number next to its tab.
type RecordTopOptions struct {
	Lang            string
	ShowShortRecord bool
	Citations       *int
	References      *int
	Discussions     *int
}

// RecordBottomOptions configures DetailedRecordBottom
type RecordBottomOptions struct {
	Lang             string
	ShowSimilar      bool
	CreationDate     string
	ModificationDate string
}

type tabData struct {
	Label   string
	URL     string
	Class   string
	Count   string
	Enabled bool
}

// DetailedRecordTop opens the tabbed box of a detailed record page. With fewer than
// two tabs only the restriction flag (possibly empty) is returned.
func (c *Composer) DetailedRecordTop(ctx context.Context, recid int64, tabs []domain.Tab, opts RecordTopOptions) template.HTML {
	lang := c.lang(opts.Lang)

	var restriction template.HTML
	public, err := c.records.IsPublic(ctx, recid)
	if err != nil {
		log.Warnf("⚠️ Could not check restriction of record %d, flagging it: %v", recid, err)
	}
	if err != nil || !public {
		restriction = c.execute("restrictionflag", c.t(lang, "Restricted"))
	}

	if len(tabs) < 2 {
		return restriction
	}

	items := make([]tabData, 0, len(tabs))
	for i, tab := range tabs {
		// Later matches override earlier ones
		count := ""
		if opts.Citations != nil && strings.Count(tab.URL, "/citation") == 1 {
			count = fmt.Sprintf("(%d)", *opts.Citations)
		}
		if opts.References != nil && strings.Count(tab.URL, "/references") == 1 {
			count = fmt.Sprintf("(%d)", *opts.References)
		}
		if opts.Discussions != nil && strings.Count(tab.URL, "/comments") == 1 {
			count = fmt.Sprintf("(%d)", *opts.Discussions)
		}

		classes := make([]string, 0, 3)
		if tab.Selected {
			classes = append(classes, "on")
		}
		if i == 0 {
			classes = append(classes, "first")
		}
		if !tab.Enabled {
			classes = append(classes, "disabled")
		}

		items = append(items, tabData{
			Label:   tab.Label,
			URL:     tab.URL,
			Class:   strings.Join(classes, " "),
			Count:   count,
			Enabled: tab.Enabled,
		})
	}

	var brief template.HTML
	if opts.ShowShortRecord {
		formatted, err := c.records.FormatRecord(ctx, recid, "hs")
		if err != nil {
			log.Warnf("⚠️ Could not format record %d: %v", recid, err)
		}
		brief = template.HTML(formatted)
	}

	return c.execute("recordtop", struct {
		RestrictionFlag template.HTML
		Tabs            []tabData
		ShowBrief       bool
		Brief           template.HTML
	}{
		RestrictionFlag: restriction,
		Tabs:            items,
		ShowBrief:       opts.ShowShortRecord,
		Brief:           brief,
	})
}

// DetailedRecordBottom closes the box opened by DetailedRecordTop, adding the record
// dates, the similar records link and the archived copy disclaimer.
func (c *Composer) DetailedRecordBottom(ctx context.Context, recid int64, tabs []domain.Tab, opts RecordBottomOptions) template.HTML {
	if len(tabs) < 2 {
		return ""
	}
	lang := c.lang(opts.Lang)

	collection := c.firstFieldValue(ctx, recid, domain.TagCollection, "record")
	original := c.firstFieldValue(ctx, recid, domain.TagURL, "")

	similarURL := ""
	if opts.ShowSimilar && !c.site.HideSimilarRecords {
		args := url.Values{
			"p":  {fmt.Sprintf("recid:%d", recid)},
			"rm": {"wrd"},
			"ln": {lang},
		}
		similarURL = strings.TrimRight(c.site.URL, "/") + "/search?" + args.Encode()
	}

	dates := ""
	if opts.CreationDate != "" {
		dates = fmt.Sprintf(c.t(lang, "Record created %s, last modified %s"), opts.CreationDate, opts.ModificationDate)
	}

	return c.execute("recordbottom", struct {
		Dates        string
		SimilarURL   string
		SimilarLabel string
		Disclaimer   string
		OriginalURL  string
	}{
		Dates:        dates,
		SimilarURL:   similarURL,
		SimilarLabel: c.t(lang, "Similar records"),
		Disclaimer: fmt.Sprintf("The content of this %s is an archived copy and not the original, to go to the original click",
			strings.ToLower(collection)),
		OriginalURL: original,
	})
}

// DetailedRecordMiniPanel is the actions dock at the bottom of detailed record pages
func (c *Composer) DetailedRecordMiniPanel(lang string, files, reviews, actions template.HTML) template.HTML {
	return c.execute("minipanel", struct {
		Files, Reviews, Actions template.HTML
	}{files, reviews, actions})
}

func (c *Composer) firstFieldValue(ctx context.Context, recid int64, tag, fallback string) string {
	values, err := c.records.FieldValues(ctx, recid, tag)
	if err != nil {
		log.Warnf("⚠️ Could not read %s of record %d: %v", tag, recid, err)
		return fallback
	}
	if len(values) == 0 || values[0] == "" {
		return fallback
	}
	return values[0]
}
