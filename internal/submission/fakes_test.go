package submission

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"websubmit/portal/internal/config"
	"websubmit/portal/internal/domain"
	"websubmit/portal/internal/domain/task"
)

type fakeScheduler struct {
	sent []domain.Email
	err  error
}

func (f *fakeScheduler) ScheduleSend(ctx context.Context, email domain.Email) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, email)
	return "42-0", nil
}

type fakeSequence struct {
	id  int64
	err error
}

func (f *fakeSequence) Allocate(ctx context.Context, curdir string) (int64, error) {
	return f.id, f.err
}

type fakeRoles map[string][]domain.RoleUser

func (f fakeRoles) RoleUsers(ctx context.Context, role string) ([]domain.RoleUser, error) {
	return f[role], nil
}

type failingRoles struct{}

func (failingRoles) RoleUsers(ctx context.Context, role string) ([]domain.RoleUser, error) {
	return nil, errors.New("role service down")
}

type fakeFields map[string][]string

func (f fakeFields) FieldValues(ctx context.Context, recid int64, tag string) ([]string, error) {
	return f[tag], nil
}

type recordingRegistrar struct {
	prefixes []string
}

func (r *recordingRegistrar) Register(ctx context.Context, prefix string, err error) {
	r.prefixes = append(r.prefixes, prefix)
}

type fakeQueue struct {
	tasks []task.Task
	err   error
}

func (f *fakeQueue) AddTask(ctx context.Context, t task.Task) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.tasks = append(f.tasks, t)
	return "7-0", nil
}

func (f *fakeQueue) EnsureStreamsExist(ctx context.Context) error { return nil }

func testSite() config.SiteConfig {
	return config.SiteConfig{
		Name:         "Atlantis Institute",
		URL:          "http://atlantis.example.org",
		SupportEmail: "info@atlantis.example.org",
		RecordPath:   "record",
	}
}

func writeMarkers(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}
