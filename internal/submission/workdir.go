// Package submission holds the workflow steps run inside a submission's
// working directory: referee decision and acknowledgement mails, and the
// hand-over of the converted record to the uploader.
package submission

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrMarkerMissing is registered when a marker file that must exist is absent
var ErrMarkerMissing = errors.New("marker file does not exist")

// Marker is the content of one marker file. Found is false when the file does not exist.
type Marker struct {
	Value string
	Found bool
}

// WorkDir is the directory a single submission exchanges its marker files through
type WorkDir struct {
	Path string
}

// Read returns the content of the named marker file. A missing file is not an
// error; an unreadable one is.
func (w WorkDir) Read(name string) (Marker, error) {
	data, err := os.ReadFile(filepath.Join(w.Path, name))
	if errors.Is(err, os.ErrNotExist) {
		return Marker{}, nil
	}
	if err != nil {
		return Marker{}, err
	}
	return Marker{Value: string(data), Found: true}, nil
}

// Write stores value in the named marker file
func (w WorkDir) Write(name, value string) error {
	return os.WriteFile(filepath.Join(w.Path, name), []byte(value), 0o644)
}

// File returns the path of a marker file
func (w WorkDir) File(name string) string {
	return filepath.Join(w.Path, name)
}

// Resolve returns the configured marker file name, or fallback when none is configured
func Resolve(param, fallback string) string {
	if param == "" || param == "NULL" {
		return fallback
	}
	return param
}

// Registrar records non-fatal failures for the administrators
type Registrar interface {
	Register(ctx context.Context, prefix string, err error)
}

// readMarker reads a marker file, registering and swallowing read failures
func readMarker(ctx context.Context, reg Registrar, step string, wd WorkDir, name string) Marker {
	m, err := wd.Read(name)
	if err != nil {
		reg.Register(ctx, fmt.Sprintf("Error in submission step %s. Tried to open file [%s] but was unable to.",
			step, wd.File(name)), err)
		return Marker{}
	}
	return m
}

// oneLine joins the lines of a marker value with spaces
func oneLine(value string) string {
	return strings.ReplaceAll(value, "\n", " ")
}
