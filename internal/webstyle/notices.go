package webstyle

import (
	"fmt"
	"html/template"
)

// ErrorPage is the body of the generic "something went wrong" page
func (c *Composer) ErrorPage(lang, status string, adminAlerted bool) template.HTML {
	lang = c.lang(lang)

	alerted := ""
	if adminAlerted {
		alerted = c.t(lang, "The system administrators have been alerted.")
	}

	return c.execute("errorpage", struct {
		Status  string
		Message string
		Alerted string
		Doubts  template.HTML
	}{
		Status:  status,
		Message: c.t(lang, "The server encountered an error while dealing with your request."),
		Alerted: alerted,
		Doubts:  c.withLink(lang, "In case of doubt, please contact %s.", mailtoLink(c.site.SupportEmail)),
	})
}

// WarningMessage renders msg as a centered red warning
func (c *Composer) WarningMessage(lang, msg string) template.HTML {
	return c.execute("warningmessage", msg)
}

// WriteWarning renders msg as a quick note, optionally prefixed by its kind
func (c *Composer) WriteWarning(msg, kind string, prologue, epilogue template.HTML) template.HTML {
	return c.execute("writewarning", struct {
		Message, Kind      string
		Prologue, Epilogue template.HTML
	}{msg, kind, prologue, epilogue})
}

// withLink translates a message holding one %s and puts an HTML link in its place
func (c *Composer) withLink(lang, key string, link template.HTML) template.HTML {
	return template.HTML(fmt.Sprintf(template.HTMLEscapeString(c.t(lang, key)), link))
}

func mailtoLink(address string) template.HTML {
	return template.HTML(fmt.Sprintf(`<a href="mailto:%s">%s</a>`,
		template.HTMLEscapeString(address), template.HTMLEscapeString(address)))
}
