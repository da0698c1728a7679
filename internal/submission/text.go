package submission

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlainText strips markup from a record field so it can go into a text email
func PlainText(value string) string {
	if !strings.ContainsAny(value, "<&") {
		return strings.TrimSpace(value)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(value))
	if err != nil {
		return strings.TrimSpace(value)
	}
	return strings.TrimSpace(doc.Text())
}
