package submission

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"websubmit/portal/internal/config"
)

func submittedFixture(copyToAdmin bool) (*SubmittedNotifier, *fakeScheduler) {
	scheduler := &fakeScheduler{}
	n := NewSubmittedNotifier(testSite(), config.SubmissionConfig{CopyMailsToAdmin: copyToAdmin},
		scheduler, &fakeSequence{id: 3}, &recordingRegistrar{})
	return n, scheduler
}

func TestSubmittedNotifier_Notify(t *testing.T) {
	n, scheduler := submittedFixture(false)
	dir := writeMarkers(t, map[string]string{
		"SN_EMAIL": "author@example.org\n",
		"SN_TITLE": "My\nBlog",
		"BSI_URL":  "http://blog.example.com/\n",
	})

	note, err := n.Notify(context.Background(), SubmittedParams{
		Curdir:    dir,
		RefNum:    "BLOG-2024-001",
		RecID:     99,
		TitleFile: "SN_TITLE",
		EmailFile: "SN_EMAIL",
	})
	require.NoError(t, err)
	assert.True(t, note.Dispatched)

	require.Len(t, scheduler.sent, 1)
	sent := scheduler.sent[0]
	assert.Equal(t, []string{"author@example.org"}, sent.To)
	assert.Equal(t, "Blog record submission done: [BLOG-2024-001]", sent.Subject)
	assert.Equal(t, "\nThe blog record with reference number [BLOG-2024-001] has been correctly submitted\n\n"+
		"It will be soon accessible here: <http://atlantis.example.org/record/99>\n"+
		"\nThank you for using Atlantis Institute Submission Interface.\n", sent.Body)
	assert.Equal(t, []string{"-I", "3"}, sent.TaskArgs)
}

func TestSubmittedNotifier_NoEmailFile(t *testing.T) {
	n, scheduler := submittedFixture(false)

	note, err := n.Notify(context.Background(), SubmittedParams{Curdir: t.TempDir(), RefNum: "BLOG-1", EmailFile: "SN_EMAIL"})
	require.NoError(t, err)

	assert.False(t, note.Dispatched)
	assert.Empty(t, scheduler.sent)
}

func TestSubmittedNotifier_AdminCopy(t *testing.T) {
	n, scheduler := submittedFixture(true)

	_, err := n.Notify(context.Background(), SubmittedParams{Curdir: t.TempDir(), RefNum: "BLOG-1"})
	require.NoError(t, err)

	require.Len(t, scheduler.sent, 1)
	assert.True(t, scheduler.sent[0].CopyToAdmin)
}
