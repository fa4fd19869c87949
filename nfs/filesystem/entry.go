package filesystem

import (
	"os"
	"path/filepath"
	"time"
)

// Entry is a handle to a file or directory found on the searched filesystem.
// The zero value describes nothing: it has no name, a zero ModTime and is
// not a directory.
type Entry struct {
	path string
	info os.FileInfo
}

// Name returns the base name of the entry
func (e *Entry) Name() string {
	if e == nil {
		return ""
	}
	if e.info == nil {
		if e.path == "" {
			return ""
		}
		return filepath.Base(e.path)
	}
	return e.info.Name()
}

// Path returns the absolute path of the entry
func (e *Entry) Path() string {
	if e == nil {
		return ""
	}
	return e.path
}

// ModTime returns the last modification time
func (e *Entry) ModTime() time.Time {
	if e == nil || e.info == nil {
		return time.Time{}
	}
	return e.info.ModTime()
}

// IsDir reports whether the entry is a directory
func (e *Entry) IsDir() bool {
	return e != nil && e.info != nil && e.info.IsDir()
}

// Info returns the underlying file info. For symlinks this describes the
// link target.
func (e *Entry) Info() os.FileInfo {
	if e == nil {
		return nil
	}
	return e.info
}

// newerThan reports whether e is strictly newer than other. Any entry is
// newer than a nil one.
func (e *Entry) newerThan(other *Entry) bool {
	return other == nil || e.ModTime().After(other.ModTime())
}
