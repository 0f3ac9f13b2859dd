package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/choonghwanlee/folio/internal/portfolio"
)

const (
	dirPermissions = 0o755

	// ContentFileName is the YAML document holding the portfolio copy.
	ContentFileName = "content.yaml"
)

// Manager centralizes where the portfolio content lives on disk.
type Manager struct {
	basePath string
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to ~/.folio (or another location determined by
// ResolveBasePath).
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// BasePath returns the root directory.
func (m *Manager) BasePath() string {
	return m.basePath
}

// ContentPath resolves the absolute path of the content file. The file may
// not exist yet.
func (m *Manager) ContentPath() string {
	return filepath.Join(m.basePath, ContentFileName)
}

// LoadContent reads the content file, falling back to the built-in portfolio
// when it does not exist.
func (m *Manager) LoadContent() (portfolio.Content, error) {
	if m == nil {
		return portfolio.Content{}, errors.New("files.Manager is nil")
	}
	return portfolio.Load(m.ContentPath())
}

// EnsureContentFile guarantees the directory tree exists and the content file
// is present. An existing non-empty file is left untouched unless overwrite is
// set. It returns the path and whether the file was written.
func (m *Manager) EnsureContentFile(content portfolio.Content, overwrite bool) (string, bool, error) {
	if m == nil {
		return "", false, errors.New("files.Manager is nil")
	}

	path := m.ContentPath()
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return "", false, fmt.Errorf("create directories: %w", err)
	}

	if !overwrite {
		info, err := os.Stat(path)
		switch {
		case err == nil && info.Size() > 0:
			return path, false, nil
		case err != nil && !errors.Is(err, os.ErrNotExist):
			return "", false, fmt.Errorf("stat content file: %w", err)
		}
	}

	if err := portfolio.Save(path, content); err != nil {
		return "", false, err
	}
	return path, true, nil
}
