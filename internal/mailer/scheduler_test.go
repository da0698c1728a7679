package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"websubmit/portal/internal/domain"
	"websubmit/portal/internal/domain/task"
)

type fakeQueue struct {
	tasks []task.Task
	err   error
}

func (f *fakeQueue) AddTask(ctx context.Context, t task.Task) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.tasks = append(f.tasks, t)
	return "1-0", nil
}

func (f *fakeQueue) EnsureStreamsExist(ctx context.Context) error { return nil }

func TestScheduleSend_Enqueues(t *testing.T) {
	q := &fakeQueue{}
	s := NewScheduler(q, "admin@example.org")

	id, err := s.ScheduleSend(context.Background(), domain.Email{
		From:    "x",
		To:      []string{"a@example.org, b@example.org", "a@example.org"},
		Subject: "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "1-0", id)

	require.Len(t, q.tasks, 1)
	sent := q.tasks[0].(*task.ScheduledEmailTask).Email
	assert.Equal(t, []string{"a@example.org", "b@example.org"}, sent.To)
	assert.Empty(t, sent.Bcc)
}

func TestScheduleSend_CopyToAdmin(t *testing.T) {
	q := &fakeQueue{}
	s := NewScheduler(q, "admin@example.org")

	_, err := s.ScheduleSend(context.Background(), domain.Email{Subject: "s", CopyToAdmin: true})
	require.NoError(t, err)

	sent := q.tasks[0].(*task.ScheduledEmailTask).Email
	assert.Empty(t, sent.To)
	assert.Equal(t, []string{"admin@example.org"}, sent.Bcc)
}

func TestScheduleSend_NoRecipients(t *testing.T) {
	q := &fakeQueue{}
	s := NewScheduler(q, "admin@example.org")

	_, err := s.ScheduleSend(context.Background(), domain.Email{Subject: "s"})
	assert.ErrorIs(t, err, ErrNoRecipients)
	assert.Empty(t, q.tasks)
}

func TestScheduleSend_QueueError(t *testing.T) {
	s := NewScheduler(&fakeQueue{err: errors.New("redis down")}, "")

	_, err := s.ScheduleSend(context.Background(), domain.Email{To: []string{"a@example.org"}})
	assert.ErrorContains(t, err, "redis down")
}

func TestSplitAddresses(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitAddresses(" a, ,b,a,"))
	assert.Empty(t, SplitAddresses(""))
}

func TestFromAddress(t *testing.T) {
	assert.Equal(t, "Atlantis Submission Engine <info@atlantis.org>", FromAddress("Atlantis", "info@atlantis.org"))
}
