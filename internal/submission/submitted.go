package submission

import (
	"context"
	"fmt"
	"strings"

	"websubmit/portal/internal/config"
	"websubmit/portal/internal/domain"
	"websubmit/portal/internal/mailer"
	"websubmit/portal/internal/state"

	log "github.com/sirupsen/logrus"
)

// URLFile holds the URL of the submitted blog
const URLFile = "BSI_URL"

// SubmittedParams identify the blog record that was just submitted
type SubmittedParams struct {
	Curdir    string
	RefNum    string
	RecID     int64
	TitleFile string
	EmailFile string
}

// SubmittedNotifier acknowledges a blog submission to its submitter
type SubmittedNotifier struct {
	notifier
}

func NewSubmittedNotifier(
	site config.SiteConfig,
	submission config.SubmissionConfig,
	scheduler mailer.Scheduler,
	sequence state.SequenceAllocator,
	registrar Registrar,
) *SubmittedNotifier {
	return &SubmittedNotifier{notifier: notifier{
		site:       site,
		submission: submission,
		scheduler:  scheduler,
		sequence:   sequence,
		registrar:  registrar,
	}}
}

func (n *SubmittedNotifier) Notify(ctx context.Context, p SubmittedParams) (*Notification, error) {
	wd := WorkDir{Path: p.Curdir}

	seq, err := n.allocate(ctx, p.Curdir)
	if err != nil {
		return nil, err
	}

	title := "-"
	if p.TitleFile != "" {
		if m := readMarker(ctx, n.registrar, "SubmittedNotifier", wd, p.TitleFile); m.Found {
			title = oneLine(m.Value)
		}
	}
	blogURL := oneLine(readMarker(ctx, n.registrar, "SubmittedNotifier", wd, URLFile).Value)

	var recipient string
	if p.EmailFile != "" {
		recipient = strings.TrimSpace(oneLine(readMarker(ctx, n.registrar, "SubmittedNotifier", wd, p.EmailFile).Value))
	}

	note := &Notification{
		SequenceID: seq,
		Email: domain.Email{
			From:        n.from(),
			To:          mailer.SplitAddresses(recipient),
			Subject:     fmt.Sprintf("Blog record submission done: [%s]", p.RefNum),
			Body:        n.submittedBody(p.RefNum, p.RecID),
			CopyToAdmin: n.submission.CopyMailsToAdmin,
			TaskArgs:    sequenceArgs(seq),
		},
	}

	log.WithFields(log.Fields{
		"refnum": p.RefNum,
		"title":  title,
		"url":    blogURL,
	}).Info("📝 Submission acknowledgement composed")

	if err := n.dispatch(ctx, note); err != nil {
		return note, fmt.Errorf("failed to send acknowledgement for %s: %w", p.RefNum, err)
	}
	return note, nil
}

func (n *SubmittedNotifier) submittedBody(refnum string, recid int64) string {
	body := fmt.Sprintf("\nThe blog record with reference number [%s] has been correctly submitted\n\n", refnum)
	body += fmt.Sprintf("It will be soon accessible here: <%s/%s/%d>\n",
		strings.TrimRight(n.site.URL, "/"), n.site.RecordPath, recid)
	body += fmt.Sprintf("\nThank you for using %s Submission Interface.\n", n.site.Name)
	return body
}
