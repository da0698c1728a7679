package submission

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"websubmit/portal/internal/domain/task"
	"websubmit/portal/internal/queue"
	"websubmit/portal/internal/state"

	log "github.com/sirupsen/logrus"
)

// Record files produced by the conversion step, in order of preference
const (
	FormattedRecordFile = "recmysqlfmt"
	RecordFile          = "recmysql"
	UploadIDFile        = "bibupload_id"
)

var ErrRecordFileNotFound = errors.New("could not find record file")

// RecordUploader queues the converted record of a submission for upload in correct mode
type RecordUploader struct {
	queue    queue.Queue
	sequence state.SequenceAllocator
	tmpDir   string
	now      func() time.Time
}

func NewRecordUploader(q queue.Queue, sequence state.SequenceAllocator, tmpDir string) *RecordUploader {
	return &RecordUploader{
		queue:    q,
		sequence: sequence,
		tmpDir:   tmpDir,
		now:      time.Now,
	}
}

// InsertModify copies the record file out of curdir and queues it for upload.
// The id of the queued task is written to UploadIDFile and returned.
func (u *RecordUploader) InsertModify(ctx context.Context, curdir, refnum string) (string, error) {
	wd := WorkDir{Path: curdir}

	seq, err := u.sequence.Allocate(ctx, curdir)
	if err != nil {
		return "", fmt.Errorf("failed to allocate sequence id: %w", err)
	}

	source := ""
	for _, name := range []string{FormattedRecordFile, RecordFile} {
		if _, err := os.Stat(wd.File(name)); err == nil {
			source = wd.File(name)
			break
		}
	}
	if source == "" {
		return "", ErrRecordFileNotFound
	}

	prefix := fmt.Sprintf("%s_%s", refnum, u.now().Format("2006-01-02_15:04:05"))
	final, err := copyToTemp(source, u.tmpDir, prefix)
	if err != nil {
		return "", fmt.Errorf("failed to copy %s: %w", source, err)
	}

	id, err := u.queue.AddTask(ctx, &task.RecordUploadTask{
		File:       final,
		Mode:       "-c",
		Priority:   3,
		SequenceID: seq,
		Submitter:  "websubmit.InsertModifyRecord",
		Args:       []string{"-c", final, "-P", "3", "-I", strconv.FormatInt(seq, 10)},
	})
	if err != nil {
		return "", fmt.Errorf("failed to queue upload of %s: %w", final, err)
	}

	if err := wd.Write(UploadIDFile, id); err != nil {
		return id, fmt.Errorf("failed to store upload id: %w", err)
	}

	log.WithFields(log.Fields{
		"refnum":  refnum,
		"file":    final,
		"task_id": id,
	}).Info("📤 Record queued for upload")

	return id, nil
}

func copyToTemp(source, dir, prefix string) (string, error) {
	in, err := os.Open(source)
	if err != nil {
		return "", err
	}
	defer in.Close()

	out, err := os.CreateTemp(dir, prefix+"*")
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", err
	}
	return out.Name(), nil
}
