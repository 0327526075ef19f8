package store

import (
	"errors"
	"os"
	"path/filepath"
)

// readFile reads the file at path into b; a missing file is not an error.
func readFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// writeTemp writes b to a fresh temp file next to path and returns its name.
// The file is synced and closed; on any error it is removed.
func writeTemp(path string, b []byte, mode os.FileMode) (string, error) {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return "", err
	}
	tmp := f.Name()

	fail := func(err error) (string, error) {
		_ = f.Close()
		_ = os.Remove(tmp)
		return "", err
	}
	if _, err := f.Write(b); err != nil {
		return fail(err)
	}
	if err := f.Chmod(mode); err != nil {
		return fail(err)
	}
	if err := f.Sync(); err != nil {
		return fail(err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return "", err
	}
	return tmp, nil
}

// stash moves an existing file at path aside and returns where it went. It
// returns "" when there is nothing to move.
func stash(path string) (string, error) {
	if _, err := os.Lstat(path); errors.Is(err, os.ErrNotExist) {
		return "", nil
	} else if err != nil {
		return "", err
	}
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".bak-*")
	if err != nil {
		return "", err
	}
	backup := f.Name()
	_ = f.Close()
	if err := os.Rename(path, backup); err != nil {
		_ = os.Remove(backup)
		return "", err
	}
	return backup, nil
}

// unstash puts a stashed file back. A no-op for an empty backup name.
func unstash(backup, path string) {
	if backup == "" {
		return
	}
	_ = os.Rename(backup, path)
}
