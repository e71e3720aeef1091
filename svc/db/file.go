package db

import (
	"context"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
)

// File backs the Store contract with one file per key under a directory.
// A lock file guards the directory so a second running instance cannot
// interleave writes with this one.
type File struct {
	dir  string
	lock *flock.Flock
}

func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrap(err, "create store dir")
	}
	lock := flock.New(filepath.Join(dir, ".lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, errors.Wrap(err, "acquire store lock")
	}
	if !ok {
		return nil, errors.New("store locked by another running instance")
	}
	return &File{dir: dir, lock: lock}, nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *File) Get(_ context.Context, key string) (string, bool, error) {
	raw, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "read store file")
	}
	return string(raw), true, nil
}

func (f *File) Set(_ context.Context, key, value string) error {
	// Write-then-rename so a crash mid-write never leaves a torn blob.
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o600); err != nil {
		return errors.Wrap(err, "write store file")
	}
	if err := os.Rename(tmp, f.path(key)); err != nil {
		return errors.Wrap(err, "replace store file")
	}
	return nil
}

func (f *File) Close() error {
	return errors.Wrap(f.lock.Unlock(), "release store lock")
}
