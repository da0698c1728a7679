package task

import "websubmit/portal/internal/domain"

// ScheduledEmailTask asks the scheduler to deliver one email
type ScheduledEmailTask struct {
	Email domain.Email `json:"email"`
}

func (t *ScheduledEmailTask) TaskType() string {
	return "ScheduledEmailTask"
}

func (t *ScheduledEmailTask) TaskValue() ([]byte, error) {
	return DefaultTaskValue(t)
}
