package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"websubmit/portal/internal/config"
	"websubmit/portal/internal/domain"
	"websubmit/portal/internal/messages"
	"websubmit/portal/internal/webstyle"
)

type noRecords struct{}

func (noRecords) FieldValues(ctx context.Context, recid int64, tag string) ([]string, error) {
	return nil, nil
}

func (noRecords) IsPublic(ctx context.Context, recid int64) (bool, error) { return true, nil }

func (noRecords) FormatRecord(ctx context.Context, recid int64, format string) (string, error) {
	return "", nil
}

type fakeScheduler struct {
	sent []domain.Email
	err  error
}

func (f *fakeScheduler) ScheduleSend(ctx context.Context, email domain.Email) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, email)
	return "1-0", nil
}

func newTestServer(t *testing.T) (*Server, *fakeScheduler) {
	t.Helper()
	catalogue, err := messages.NewCatalogue()
	require.NoError(t, err)

	site := config.SiteConfig{
		Name:            "Atlantis Institute",
		NameIntl:        map[string]string{"fr": "Institut Atlantis"},
		URL:             "http://atlantis.example.org",
		SecureURL:       "https://atlantis.example.org",
		SupportEmail:    "info@atlantis.example.org",
		AdminEmail:      "admin@atlantis.example.org",
		DefaultLanguage: "en",
		Languages:       []config.Language{{Code: "en", Name: "English"}, {Code: "fr", Name: "Français"}},
	}
	scheduler := &fakeScheduler{}
	return New(config.ServerConfig{Host: "localhost", Port: 0}, webstyle.NewComposer(site, catalogue, noRecords{}), scheduler), scheduler
}

func serve(t *testing.T, h http.Handler, req *http.Request) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	return rec, doc
}

func TestHome(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		name     string
		target   string
		title    string
		headline string
	}{
		{"default language", "/", "Atlantis Institute", "Home"},
		{"french", "/?ln=fr", "Institut Atlantis", "Accueil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, doc := serve(t, s.Handler(), httptest.NewRequest("GET", tt.target, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.title, doc.Find("title").Text())
			assert.Equal(t, tt.headline, doc.Find("h1.headline").Text())
			assert.Equal(t, 0, doc.Find("a.navtrail").Length())
		})
	}
}

func TestUnknownPath(t *testing.T) {
	s, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/nothing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func errorForm() *http.Request {
	form := url.Values{
		"header":  {"Error: boom"},
		"url":     {"URI: http://example.com/record/1"},
		"client":  {"Client: 192.0.2.1"},
		"referer": {"http://example.com/record/1"},
	}
	req := httptest.NewRequest("POST", "/error/send", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestErrorSend(t *testing.T) {
	s, scheduler := newTestServer(t)

	rec, doc := serve(t, s.Handler(), errorForm())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, doc.Find("span.quicknote").Text(), "The error report has been sent.")

	require.Len(t, scheduler.sent, 1)
	sent := scheduler.sent[0]
	assert.Equal(t, []string{"admin@atlantis.example.org"}, sent.To)
	assert.Equal(t, "Error report: Error: boom", sent.Subject)
	assert.Contains(t, sent.Body, "Client: 192.0.2.1\n")
	assert.Contains(t, sent.Body, "Referer: http://example.com/record/1")
}

func TestErrorSend_SchedulerFailure(t *testing.T) {
	s, scheduler := newTestServer(t)
	scheduler.err = errors.New("queue down")

	rec, doc := serve(t, s.Handler(), errorForm())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, doc.Text(), "The server encountered an error while dealing with your request.")
}

func TestErrorSend_WrongMethod(t *testing.T) {
	s, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/error/send", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRecoverer_RendersErrorBox(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("kaboom")
	}))

	req := httptest.NewRequest("GET", "/record/1?ln=en", nil)
	req.Header.Set("User-Agent", "TestAgent/1.0")
	rec, doc := serve(t, h, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Error *errors.errorString kaboom", doc.Find(`input[name="header"]`).AttrOr("value", ""))
	assert.Equal(t, "Browser: TestAgent/1.0", doc.Find(`input[name="browser"]`).AttrOr("value", ""))
	assert.Equal(t, "\nSystem Error: *errors.errorString kaboom\n", doc.Find(`input[name="sys_error"]`).AttrOr("value", ""))
	assert.Empty(t, doc.Find(`input[name="traceback"]`).AttrOr("value", "missing"))
}
