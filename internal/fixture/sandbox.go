// Package fixture provides small on-disk test helpers shared across the
// module's package tests, adapted from the teacher's internal/testutil
// sandbox helper.
package fixture

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Sandbox is an isolated temporary directory for writing config files,
// migration fixtures and other on-disk test inputs.
type Sandbox struct {
	Root string
}

// NewSandbox creates a Sandbox rooted at a fresh temporary directory.
func NewSandbox() (*Sandbox, error) {
	dir, err := os.MkdirTemp("", "eventify_fixture")
	if err != nil {
		return nil, err
	}
	return &Sandbox{Root: dir}, nil
}

// Path returns the absolute path for a file within the sandbox.
func (s *Sandbox) Path(name string) string {
	return filepath.Join(s.Root, name)
}

// WriteFile writes data to the named file inside the sandbox.
func (s *Sandbox) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(s.Path(name), data, perm)
}

// ReadFile reads the named file back from the sandbox.
func (s *Sandbox) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(s.Path(name))
}

// Cleanup removes the sandbox and everything inside it.
func (s *Sandbox) Cleanup() error {
	return os.RemoveAll(s.Root)
}
