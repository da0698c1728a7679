package webstyle

import (
	"fmt"
	"html/template"
	"net"
	"net/http"
	"strings"

	"websubmit/portal/internal/domain"

	log "github.com/sirupsen/logrus"
)

// Verbosity thresholds of ErrorBox
const (
	VerboseErrors    = 1 // show the error list and the system error
	VerboseTraceback = 9 // also show the stack trace
)

// ErrorBoxInput carries everything the error box shows. The failure being
// reported is passed explicitly in Cause and Stack.
type ErrorBoxInput struct {
	Lang    string
	Title   string // empty derives the title from Errors
	Verbose int
	Request *http.Request
	Errors  []domain.ErrorEntry
	Cause   error
	Stack   string
}

type errorBoxData struct {
	Header         string
	Contact        template.HTML
	Host, Page     string
	TimeLabel      string
	Time           string
	Browser        string
	ClientLabel    string
	Client         string
	Error          string
	SysError       string
	Traceback      string
	ReportURL      string
	SendErrorLabel string
	SendLabel      string
	Referer        string
}

// RequestInfoFrom extracts the reported request context. It never fails:
// anything it cannot read is domain.NotAvailable.
func RequestInfoFrom(r *http.Request) (info domain.RequestInfo) {
	info = domain.RequestInfo{
		Host:      domain.NotAvailable,
		URI:       domain.NotAvailable,
		Client:    domain.NotAvailable,
		UserAgent: domain.NotAvailable,
	}
	if r == nil {
		return info
	}

	defer func() {
		if rec := recover(); rec != nil {
			log.Warnf("⚠️ Could not read request context for error box: %v", rec)
			info = domain.RequestInfo{
				Host:      domain.NotAvailable,
				URI:       domain.NotAvailable,
				Client:    domain.NotAvailable,
				UserAgent: domain.NotAvailable,
			}
		}
	}()

	if ua := r.Header.Get("User-Agent"); ua != "" {
		info.UserAgent = ua
	}
	if r.Host != "" {
		info.Host = r.Host
		if host, _, err := net.SplitHostPort(r.Host); err == nil {
			info.Host = host
		}
	}
	if r.RequestURI != "" {
		info.URI = r.RequestURI
	} else if r.URL != nil {
		info.URI = r.URL.RequestURI()
	}
	if r.RemoteAddr != "" {
		info.Client = r.RemoteAddr
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			info.Client = host
		}
	}

	return info
}

// ErrorBox renders the error report block together with a form that sends it
// to the administrator.
func (c *Composer) ErrorBox(in ErrorBoxInput) template.HTML {
	lang := c.lang(in.Lang)
	na := c.t(lang, "N/A")

	title := in.Title
	if title == "" {
		if len(in.Errors) > 0 {
			title = c.t(lang, "Error") + ": " + in.Errors[0].Message
		} else {
			title = c.t(lang, "Internal Error")
		}
	}

	info := RequestInfoFrom(in.Request)
	localize := func(v string) string {
		if v == domain.NotAvailable {
			return na
		}
		return v
	}
	host, page, client := localize(info.Host), localize(info.URI), localize(info.Client)
	browser := c.t(lang, "Browser") + ": " + localize(info.UserAgent)

	var errorText, sysError, traceback string
	if in.Verbose >= VerboseErrors {
		if in.Cause != nil {
			sysError = fmt.Sprintf("\n%s: %T %v\n", c.t(lang, "System Error"), in.Cause, in.Cause)
		}
		if len(in.Errors) > 0 {
			lines := make([]string, 0, len(in.Errors))
			for _, e := range in.Errors {
				lines = append(lines, e.Code+" : "+e.Message)
			}
			errorText = c.t(lang, "Error") + ": " + strings.Join(lines, "\n      ") + "\n"
		} else {
			errorText = c.t(lang, "Error") + ": " + na
		}
	}
	if in.Verbose >= VerboseTraceback {
		traceback = "\n" + c.t(lang, "Traceback") + ": \n" + in.Stack
	}

	header := title
	if in.Cause != nil {
		header = fmt.Sprintf("%s %T %v", title, in.Cause, in.Cause)
	}

	referer := na
	if page != na {
		referer = "http://" + host + page
	}

	return c.execute("errorbox", errorBoxData{
		Header:         header,
		Contact:        c.withLink(lang, "Please contact %s quoting the following information:", mailtoLink(c.site.SupportEmail)),
		Host:           host,
		Page:           page,
		TimeLabel:      c.t(lang, "Time"),
		Time:           c.now().Format("02/Jan/2006:15:04:05 -0700"),
		Browser:        browser,
		ClientLabel:    c.t(lang, "Client"),
		Client:         client,
		Error:          errorText,
		SysError:       sysError,
		Traceback:      traceback,
		ReportURL:      strings.TrimRight(c.site.URL, "/") + "/error/send",
		SendErrorLabel: c.t(lang, "Please send an error report to the administrator."),
		SendLabel:      c.t(lang, "Send error report"),
		Referer:        referer,
	})
}
