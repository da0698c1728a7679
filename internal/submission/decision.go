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

// Legacy marker file names, used when no name is configured
const (
	DefaultDecisionFile = "decision"
	DefaultCommentsFile = "COM"
)

// DecisionParams identify the submission a referee decided on
type DecisionParams struct {
	Curdir          string
	Doctype         string
	RefNum          string
	RecID           int64
	CategoryPattern string // e.g. "TEST-<CATEG>-.*"
	DecisionFile    string // empty or "NULL" falls back to DefaultDecisionFile
	CommentsFile    string // empty or "NULL" falls back to DefaultCommentsFile
}

// FinalDecisionNotifier tells the submitter, the referees and the acting user
// whether a blog record deletion was approved.
type FinalDecisionNotifier struct {
	notifier
	records    FieldLookup
	recipients *RecipientResolver
}

func NewFinalDecisionNotifier(
	site config.SiteConfig,
	submission config.SubmissionConfig,
	scheduler mailer.Scheduler,
	sequence state.SequenceAllocator,
	records FieldLookup,
	recipients *RecipientResolver,
	registrar Registrar,
) *FinalDecisionNotifier {
	return &FinalDecisionNotifier{
		notifier: notifier{
			site:       site,
			submission: submission,
			scheduler:  scheduler,
			sequence:   sequence,
			registrar:  registrar,
		},
		records:    records,
		recipients: recipients,
	}
}

func (n *FinalDecisionNotifier) Notify(ctx context.Context, p DecisionParams) (*Notification, error) {
	wd := WorkDir{Path: p.Curdir}

	seq, err := n.allocate(ctx, p.Curdir)
	if err != nil {
		return nil, err
	}

	comment := strings.TrimSpace(readMarker(ctx, n.registrar, "FinalDecisionNotifier", wd,
		Resolve(p.CommentsFile, DefaultCommentsFile)).Value)
	decisionFile := Resolve(p.DecisionFile, DefaultDecisionFile)
	decisionMarker := readMarker(ctx, n.registrar, "FinalDecisionNotifier", wd, decisionFile)
	// A configured decision file must exist; only the legacy file may be absent
	if !decisionMarker.Found && decisionFile != DefaultDecisionFile {
		n.registrar.Register(ctx, fmt.Sprintf("Error in submission step FinalDecisionNotifier. Tried to open decision file [%s] but was unable to.",
			wd.File(decisionFile)), ErrMarkerMissing)
	}
	decision := domain.Decision(strings.TrimSpace(decisionMarker.Value))

	category := ResolveCategory(p.CategoryPattern, p.RefNum)
	to := n.recipients.Resolve(ctx, wd, p.Doctype, category, p.RecID)

	title := n.joinedField(ctx, p.RecID, domain.TagTitle)
	blogURL := n.joinedField(ctx, p.RecID, domain.TagURL)

	subject, body := DecisionMail(decision, title, blogURL, comment)

	note := &Notification{
		SequenceID: seq,
		Email: domain.Email{
			From:        n.from(),
			To:          to,
			Subject:     subject,
			Body:        body,
			CopyToAdmin: n.submission.CopyMailsToAdmin,
			TaskArgs:    sequenceArgs(seq),
		},
	}

	log.WithFields(log.Fields{
		"refnum":     p.RefNum,
		"category":   category,
		"decision":   decision.String(),
		"recipients": len(to),
	}).Info("📝 Referee decision composed")

	if err := n.dispatch(ctx, note); err != nil {
		return note, fmt.Errorf("failed to send decision for %s: %w", p.RefNum, err)
	}
	return note, nil
}

// DecisionMail composes the subject and body of the decision email. The subject names
// the record by title, or by URL when it has no title.
func DecisionMail(decision domain.Decision, title, blogURL, comment string) (subject, body string) {
	id := title
	if id == "" {
		id = blogURL
	}

	if decision.Approved() {
		subject = fmt.Sprintf("Blog record deletion approved: [%s]", id)
		body = fmt.Sprintf("\nThe deletion of the blog record with URL [%s] and title '%s' has been approved.\n", blogURL, title)
		body += "\nThis blog record and all its comments and posts will be no longer available in the repository.\n"
	} else {
		subject = fmt.Sprintf("Blog record deletion has been rejected: [%s]", id)
		body = fmt.Sprintf("\nThe deletion of the blog record with URL [%s] and title '%s' has been rejected.\n", blogURL, title)
	}

	if comment != "" {
		body += fmt.Sprintf("\nComments from the referee: \n%s\n", comment)
	}
	return subject, body
}

// joinedField concatenates the plain text of every value of a field
func (n *FinalDecisionNotifier) joinedField(ctx context.Context, recid int64, tag string) string {
	values, err := n.records.FieldValues(ctx, recid, tag)
	if err != nil {
		n.registrar.Register(ctx, fmt.Sprintf("Error reading %s of record %d.", tag, recid), err)
		return ""
	}
	var sb strings.Builder
	for _, v := range values {
		sb.WriteString(PlainText(v))
	}
	return sb.String()
}
