// Package fsys is the filesystem surface the organizer depends on.
//
// Production code uses OS. Tests wrap it to inject failures such as a rename
// that crosses devices or a copy that dies halfway.
package fsys

import (
	"errors"
	"io/fs"
	"os"
	"syscall"

	"foldean/internal/fileutil"
)

// FS is the set of filesystem operations a run performs.
type FS interface {
	Lstat(path string) (fs.FileInfo, error)
	ReadDir(path string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error
	Rename(oldPath, newPath string) error
	// Copy duplicates contents and metadata of src at dst, which must not
	// exist. A failed copy leaves no file at dst.
	Copy(src, dst string) error
	Remove(path string) error
}

// OS implements FS against the real filesystem.
type OS struct{}

func (OS) Lstat(path string) (fs.FileInfo, error) { return os.Lstat(path) }

func (OS) ReadDir(path string) ([]fs.DirEntry, error) { return os.ReadDir(path) }

func (OS) MkdirAll(path string, perm fs.FileMode) error { return os.MkdirAll(path, perm) }

func (OS) Rename(oldPath, newPath string) error { return os.Rename(oldPath, newPath) }

func (OS) Copy(src, dst string) error { return fileutil.CopyFileVerified(src, dst) }

func (OS) Remove(path string) error { return os.Remove(path) }

// Exists reports whether anything, including a dangling symlink, occupies path.
func Exists(fsys FS, path string) (bool, error) {
	_, err := fsys.Lstat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// IsCrossDevice reports whether err came from renaming across filesystems.
func IsCrossDevice(err error) bool {
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return errors.Is(linkErr.Err, syscall.EXDEV)
	}
	return errors.Is(err, syscall.EXDEV)
}
