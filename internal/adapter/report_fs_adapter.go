// Package adapter contains the infrastructure the reporting lifecycle talks to:
// the report directories, the failure manifest, the report generator, the test
// runner and the browser session.
package adapter

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	m "github.com/awhisler/wdioTest/internal/model"
)

// ReportFSAdapter hides direct `os` access so the lifecycle logic can be
// tested without touching the disk.
//
//nolint:interfacebloat // the lifecycle needs each of these primitives.
type ReportFSAdapter interface {
	// Exists reports whether path is present. Errors other than not-exist are returned.
	Exists(path m.Path) (bool, error)

	// MkdirAll creates path and any missing parents.
	MkdirAll(path m.Path) error

	// RemoveAll removes path and everything below it. A missing path is not an error.
	RemoveAll(path m.Path) error

	// Remove deletes a single file. A missing file is not an error.
	Remove(path m.Path) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content, creating parent directories.
	WriteFile(path m.Path, content []byte) error

	// CopyFile copies src to dst, creating dst's parent directories.
	CopyFile(src, dst m.Path) error
}

// LocalReportFSAdapter is the os-backed ReportFSAdapter.
type LocalReportFSAdapter struct{}

// NewLocalReportFSAdapter constructs a LocalReportFSAdapter.
func NewLocalReportFSAdapter() *LocalReportFSAdapter {
	return &LocalReportFSAdapter{}
}

// Exists stats path.
func (a *LocalReportFSAdapter) Exists(path m.Path) (bool, error) {
	_, err := os.Stat(string(path))
	if err == nil {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, err
}

// MkdirAll creates the directory tree.
func (a *LocalReportFSAdapter) MkdirAll(path m.Path) error {
	return os.MkdirAll(string(path), 0o750)
}

// RemoveAll removes a directory and all its contents.
func (a *LocalReportFSAdapter) RemoveAll(path m.Path) error {
	return os.RemoveAll(string(path))
}

// Remove deletes a file, ignoring a missing one.
func (a *LocalReportFSAdapter) Remove(path m.Path) error {
	err := os.Remove(string(path))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}

// ReadFile loads file contents from disk.
func (a *LocalReportFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - paths come from the configured report layout
	return os.ReadFile(string(path))
}

// WriteFile writes content to path.
func (a *LocalReportFSAdapter) WriteFile(path m.Path, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, 0o600)
}

// CopyFile copies a single file.
func (a *LocalReportFSAdapter) CopyFile(src, dst m.Path) error {
	// #nosec G304 - src is a report artifact, not user input
	sourceFile, err := os.Open(string(src))
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	if err := os.MkdirAll(filepath.Dir(string(dst)), 0o750); err != nil {
		return err
	}

	// #nosec G304 - dst is inside the results directory
	destFile, err := os.Create(string(dst))
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		_ = destFile.Close()
		return err
	}

	return destFile.Close()
}
