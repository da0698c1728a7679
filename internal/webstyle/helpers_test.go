package webstyle

import (
	"context"
	"html/template"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"websubmit/portal/internal/config"
	"websubmit/portal/internal/messages"
)

type fakeRecords struct {
	public    bool
	publicErr error
	fields    map[string][]string
	fieldErr  error
	brief     string
}

func (f *fakeRecords) FieldValues(ctx context.Context, recid int64, tag string) ([]string, error) {
	if f.fieldErr != nil {
		return nil, f.fieldErr
	}
	return f.fields[tag], nil
}

func (f *fakeRecords) IsPublic(ctx context.Context, recid int64) (bool, error) {
	return f.public, f.publicErr
}

func (f *fakeRecords) FormatRecord(ctx context.Context, recid int64, format string) (string, error) {
	return f.brief, nil
}

func testSite() config.SiteConfig {
	return config.SiteConfig{
		Name:            "Atlantis Institute",
		NameIntl:        map[string]string{"fr": "Institut Atlantis"},
		URL:             "http://atlantis.example.org",
		SecureURL:       "https://atlantis.example.org",
		SupportEmail:    "info@atlantis.example.org",
		Version:         "1.2.0",
		SoftwareName:    "WebSubmit Portal",
		SoftwareURL:     "http://atlantis.example.org/about",
		TemplateSkin:    "default",
		DefaultLanguage: "en",
		Languages: []config.Language{
			{Code: "en", Name: "English"},
			{Code: "fr", Name: "Français"},
		},
		RecordPath: "record",
	}
}

func newTestComposer(t *testing.T, site config.SiteConfig, records RecordService) *Composer {
	t.Helper()
	catalogue, err := messages.NewCatalogue()
	require.NoError(t, err)
	if records == nil {
		records = &fakeRecords{public: true}
	}
	c := NewComposer(site, catalogue, records)
	c.now = func() time.Time { return time.Date(2024, 3, 5, 10, 20, 30, 0, time.UTC) }
	return c
}

func parse(t *testing.T, out template.HTML) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(out)))
	require.NoError(t, err)
	return doc
}

func intPtr(n int) *int {
	return &n
}
