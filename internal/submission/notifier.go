package submission

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"websubmit/portal/internal/config"
	"websubmit/portal/internal/domain"
	"websubmit/portal/internal/mailer"
	"websubmit/portal/internal/state"

	log "github.com/sirupsen/logrus"
)

// Notification is what a notifier composed and whether it was handed to the scheduler
type Notification struct {
	Email      domain.Email
	SequenceID int64
	Dispatched bool
	TaskID     string
}

// notifier holds what both notification steps share
type notifier struct {
	site       config.SiteConfig
	submission config.SubmissionConfig
	scheduler  mailer.Scheduler
	sequence   state.SequenceAllocator
	registrar  Registrar
}

func (n *notifier) from() string {
	return mailer.FromAddress(n.site.Name, n.site.SupportEmail)
}

// dispatch schedules the email when it has recipients or an admin copy is configured
func (n *notifier) dispatch(ctx context.Context, note *Notification) error {
	if len(note.Email.To) == 0 && !n.submission.CopyMailsToAdmin {
		log.WithField("subject", note.Email.Subject).Info("📭 No recipients, notification not sent")
		return nil
	}

	id, err := n.scheduler.ScheduleSend(ctx, note.Email)
	if errors.Is(err, mailer.ErrNoRecipients) {
		log.WithField("subject", note.Email.Subject).Warn("⚠️ Admin copy requested but no admin address configured")
		return nil
	}
	if err != nil {
		return err
	}

	note.Dispatched = true
	note.TaskID = id
	return nil
}

func sequenceArgs(id int64) []string {
	return []string{"-I", strconv.FormatInt(id, 10)}
}

func (n *notifier) allocate(ctx context.Context, curdir string) (int64, error) {
	id, err := n.sequence.Allocate(ctx, curdir)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate sequence id: %w", err)
	}
	return id, nil
}
