package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"websubmit/portal/internal/domain"
	"websubmit/portal/internal/domain/task"
	"websubmit/portal/internal/queue"

	log "github.com/sirupsen/logrus"
)

// ErrNoRecipients is returned when an email has neither recipients nor an admin copy
var ErrNoRecipients = errors.New("email has no recipients")

// Scheduler hands emails over to the external delivery service
type Scheduler interface {
	ScheduleSend(ctx context.Context, email domain.Email) (string, error)
}

type queueScheduler struct {
	queue      queue.Queue
	adminEmail string
}

func NewScheduler(q queue.Queue, adminEmail string) Scheduler {
	return &queueScheduler{
		queue:      q,
		adminEmail: adminEmail,
	}
}

// ScheduleSend enqueues the email. With CopyToAdmin set the admin address is added as Bcc.
func (s *queueScheduler) ScheduleSend(ctx context.Context, email domain.Email) (string, error) {
	email.To = SplitAddresses(strings.Join(email.To, ","))
	if email.CopyToAdmin && s.adminEmail != "" {
		email.Bcc = append(email.Bcc, s.adminEmail)
	}

	if len(email.To) == 0 && len(email.Bcc) == 0 {
		return "", ErrNoRecipients
	}

	id, err := s.queue.AddTask(ctx, &task.ScheduledEmailTask{Email: email})
	if err != nil {
		return "", fmt.Errorf("failed to schedule email %q: %w", email.Subject, err)
	}

	log.WithFields(log.Fields{
		"subject":    email.Subject,
		"recipients": len(email.To),
		"task_id":    id,
	}).Info("📧 Email scheduled")

	return id, nil
}

// SplitAddresses splits a comma separated address list, dropping blanks and duplicates
func SplitAddresses(list string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, addr := range strings.Split(list, ",") {
		addr = strings.TrimSpace(addr)
		if addr == "" || seen[addr] {
			continue
		}
		seen[addr] = true
		out = append(out, addr)
	}
	return out
}

// FromAddress builds the sender used by submission notifications
func FromAddress(siteName, supportEmail string) string {
	return fmt.Sprintf("%s Submission Engine <%s>", siteName, supportEmail)
}
