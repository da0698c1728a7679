package webstyle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"websubmit/portal/internal/domain"
)

const sep = `<span class="sep">&gt;</span>`

func TestNavTrailBox_HomePageIsEmpty(t *testing.T) {
	c := newTestComposer(t, testSite(), nil)

	assert.Empty(t, c.NavTrailBox("en", "Atlantis Institute", nil, sep, "", ""))
	assert.Empty(t, c.NavTrailBox("fr", "Institut Atlantis", nil, sep, "", ""))
}

func TestNavTrailBox_SingleItemHasNoSeparator(t *testing.T) {
	c := newTestComposer(t, testSite(), nil)

	out := c.NavTrailBox("en", "", nil, sep, "", "")

	assert.NotContains(t, string(out), "sep")
	doc := parse(t, out)
	link := doc.Find("a.navtrail")
	assert.Equal(t, 1, link.Length())
	assert.Equal(t, "Home", link.Text())
	assert.Equal(t, "http://atlantis.example.org?ln=en", link.AttrOr("href", ""))
}

func TestNavTrailBox_LinksAndTitle(t *testing.T) {
	c := newTestComposer(t, testSite(), nil)

	out := c.NavTrailBox("en", "Blog <Archive>", []domain.NavLink{
		{Label: "Submit", URL: "http://atlantis.example.org/submit"},
	}, sep, "", "")

	doc := parse(t, out)
	assert.Equal(t, 2, doc.Find("a.navtrail").Length())
	assert.Equal(t, 2, doc.Find("span.sep").Length())
	assert.Contains(t, string(out), "Blog &lt;Archive&gt;")
	assert.Equal(t, "Home>Submit>Blog <Archive>", doc.Text())
}

func TestNavTrailBox_PrologAndEpilogAreEscaped(t *testing.T) {
	c := newTestComposer(t, testSite(), nil)

	out := c.NavTrailBox("en", "Help", nil, sep, "<div>", "</div>")

	assert.Contains(t, string(out), "&lt;div&gt;")
	assert.Contains(t, string(out), "&lt;/div&gt;")
}

func TestNavTrailBox_Localized(t *testing.T) {
	c := newTestComposer(t, testSite(), nil)

	doc := parse(t, c.NavTrailBox("fr", "Aide", nil, sep, "", ""))
	assert.Equal(t, "Accueil", doc.Find("a.navtrail").First().Text())
}
