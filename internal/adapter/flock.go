package adapter

import (
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// FileLock is a non-blocking exclusive lock shared between processes
//
//go:generate mockgen -source=flock.go -destination=../mocks/flock.go -package=mocks -mock_names=FileLock=MockFileLock
type FileLock interface {
	// TryLock acquires the lock without blocking and reports whether it was acquired
	TryLock() (bool, error)
	Unlock() error
	Path() string
}

// NewFileLock returns a lock backed by the file at path, creating its directory if needed
func NewFileLock(path string) (FileLock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return flock.New(path), nil
}
