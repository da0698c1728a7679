package submission

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"websubmit/portal/internal/domain/task"
)

func TestRecordUploader_InsertModify(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  string
	}{
		{"formatted record preferred", map[string]string{"recmysqlfmt": "<record>fmt</record>", "recmysql": "<record>raw</record>"}, "<record>fmt</record>"},
		{"plain record", map[string]string{"recmysql": "<record>raw</record>"}, "<record>raw</record>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			curdir := writeMarkers(t, tt.files)
			tmp := t.TempDir()
			q := &fakeQueue{}
			u := NewRecordUploader(q, &fakeSequence{id: 8}, tmp)
			u.now = func() time.Time { return time.Date(2024, 3, 5, 10, 20, 30, 0, time.UTC) }

			id, err := u.InsertModify(context.Background(), curdir, "BLOG-1")
			require.NoError(t, err)
			assert.Equal(t, "7-0", id)

			require.Len(t, q.tasks, 1)
			upload := q.tasks[0].(*task.RecordUploadTask)
			assert.Equal(t, tmp, filepath.Dir(upload.File))
			assert.True(t, strings.HasPrefix(filepath.Base(upload.File), "BLOG-1_2024-03-05_10:20:30"))
			assert.Equal(t, []string{"-c", upload.File, "-P", "3", "-I", "8"}, upload.Args)
			assert.Equal(t, int64(8), upload.SequenceID)

			copied, err := os.ReadFile(upload.File)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(copied))

			stored, err := os.ReadFile(filepath.Join(curdir, UploadIDFile))
			require.NoError(t, err)
			assert.Equal(t, "7-0", string(stored))
		})
	}
}

func TestRecordUploader_MissingRecord(t *testing.T) {
	q := &fakeQueue{}
	u := NewRecordUploader(q, &fakeSequence{id: 1}, t.TempDir())

	_, err := u.InsertModify(context.Background(), t.TempDir(), "BLOG-1")
	assert.ErrorIs(t, err, ErrRecordFileNotFound)
	assert.Empty(t, q.tasks)
}

func TestRecordUploader_QueueFailure(t *testing.T) {
	curdir := writeMarkers(t, map[string]string{"recmysql": "x"})
	u := NewRecordUploader(&fakeQueue{err: errors.New("redis down")}, &fakeSequence{id: 1}, t.TempDir())

	_, err := u.InsertModify(context.Background(), curdir, "BLOG-1")
	assert.ErrorContains(t, err, "redis down")
	assert.NoFileExists(t, filepath.Join(curdir, UploadIDFile))
}
