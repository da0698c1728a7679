// Package errorreport carries error reports to the administrators: the form
// posted by the error box, and failures registered by background steps.
package errorreport

import (
	"fmt"
	"net/url"
	"strings"
)

// Report holds the fields of the error box form
type Report struct {
	Header    string
	URL       string
	Time      string
	Browser   string
	Client    string
	Error     string
	SysError  string
	Traceback string
	Referer   string
}

var formFields = []string{"header", "url", "time", "browser", "client", "error", "sys_error", "traceback", "referer"}

func (r Report) values() []string {
	return []string{r.Header, r.URL, r.Time, r.Browser, r.Client, r.Error, r.SysError, r.Traceback, r.Referer}
}

// FormData returns the report as the error box form would post it
func (r Report) FormData() map[string]string {
	data := make(map[string]string, len(formFields))
	for i, v := range r.values() {
		data[formFields[i]] = v
	}
	return data
}

// FromForm reads a report from posted form values. Missing fields stay empty.
func FromForm(form url.Values) Report {
	return Report{
		Header:    form.Get("header"),
		URL:       form.Get("url"),
		Time:      form.Get("time"),
		Browser:   form.Get("browser"),
		Client:    form.Get("client"),
		Error:     form.Get("error"),
		SysError:  form.Get("sys_error"),
		Traceback: form.Get("traceback"),
		Referer:   form.Get("referer"),
	}
}

// Subject is the subject line of the report email
func (r Report) Subject() string {
	header := strings.TrimSpace(r.Header)
	if header == "" {
		header = "unknown error"
	}
	return "Error report: " + header
}

// Body is the plain text email body of the report
func (r Report) Body() string {
	var sb strings.Builder
	for _, line := range []string{r.Header, r.URL, r.Time, r.Browser, r.Client} {
		if line != "" {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	sb.WriteString(r.Error)
	sb.WriteString(r.SysError)
	sb.WriteString(r.Traceback)
	if r.Referer != "" {
		fmt.Fprintf(&sb, "\nReferer: %s\n", r.Referer)
	}
	return sb.String()
}
