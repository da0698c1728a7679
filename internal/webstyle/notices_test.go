package webstyle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorPage(t *testing.T) {
	c := newTestComposer(t, testSite(), nil)

	alerted := parse(t, c.ErrorPage("en", "500", true))
	assert.Contains(t, alerted.Text(), "The system administrators have been alerted.")
	assert.Equal(t, "mailto:info@atlantis.example.org", alerted.Find("a").AttrOr("href", ""))

	quiet := parse(t, c.ErrorPage("en", "500", false))
	assert.NotContains(t, quiet.Text(), "alerted")
	assert.Contains(t, quiet.Text(), "The server encountered an error while dealing with your request.")
}

func TestWarningMessage(t *testing.T) {
	c := newTestComposer(t, testSite(), nil)

	out := c.WarningMessage("en", "Disk <full>")

	assert.Equal(t, `<center><font color="red">Disk &lt;full&gt;</font></center>`, string(out))
}

func TestWriteWarning(t *testing.T) {
	c := newTestComposer(t, testSite(), nil)

	assert.Equal(t, "\n<p><span class=\"quicknote\">Warning: Slow down</span></p>",
		string(c.WriteWarning("Slow down", "Warning", "<p>", "</p>")))
	assert.Equal(t, "\n<span class=\"quicknote\">Slow down</span>",
		string(c.WriteWarning("Slow down", "", "", "")))
}
