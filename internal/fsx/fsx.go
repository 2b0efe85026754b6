package fsx

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"syscall"
	"time"
)

// renameFunc is swappable so tests can simulate EXDEV without a second
// filesystem.
var renameFunc = os.Rename

// WriteAtomic writes data to path through a temp file in the same directory
// followed by a rename, so a crash mid-write can never leave a truncated
// file at path. Parent directories are created as needed.
func WriteAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	_ = syncDirBestEffort(dir)
	return nil
}

// Move renames source to target, falling back to copy-then-remove when the
// two sit on different filesystems. The target must not exist; Move never
// overwrites.
func Move(source, target string) error {
	if _, err := os.Lstat(target); err == nil {
		return os.ErrExist
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := renameFunc(source, target); err != nil {
		if !isCrossDevice(err) {
			return err
		}
		if err := copyFile(source, target); err != nil {
			return err
		}
		return os.Remove(source)
	}
	return nil
}

func isCrossDevice(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}

func copyFile(source, target string) error {
	info, err := os.Stat(source)
	if err != nil {
		return err
	}
	input, err := os.Open(source)
	if err != nil {
		return err
	}
	defer input.Close()

	output, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(output, input); err != nil {
		_ = output.Close()
		_ = os.Remove(target)
		return err
	}
	if err := output.Close(); err != nil {
		return err
	}
	_ = os.Chtimes(target, time.Now(), info.ModTime())
	return nil
}

func syncDirBestEffort(dir string) error {
	// Directory fsync semantics are unreliable on Windows; skip.
	if runtime.GOOS == "windows" {
		return nil
	}
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
