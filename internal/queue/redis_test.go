package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"websubmit/portal/internal/domain/task"
)

func TestStreamName(t *testing.T) {
	q := &RedisQueue{streamPrefix: "websubmit:stream:"}

	assert.Equal(t, "websubmit:stream:ScheduledEmailTask", q.StreamName((&task.ScheduledEmailTask{}).TaskType()))
	assert.Equal(t, "websubmit:stream:RecordUploadTask", q.StreamName((&task.RecordUploadTask{}).TaskType()))
}

func TestTaskTypesCoverEveryTask(t *testing.T) {
	assert.ElementsMatch(t, []string{
		(&task.ScheduledEmailTask{}).TaskType(),
		(&task.RecordUploadTask{}).TaskType(),
	}, TaskTypes)
}
