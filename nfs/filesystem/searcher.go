package filesystem

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/newestfile/nfs/filesystem/common"
	"github.com/ZanzyTHEbar/newestfile/nfs/filesystem/filter"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// FileSearcher finds the most recently modified file below a directory.
//
// Every call does a fresh depth-first walk. Problems with a single
// directory (missing, not a directory, not listable) are not errors: that
// subtree simply contributes nothing to the result.
//
// A FileSearcher holds no per-search state and may be shared between
// goroutines.
type FileSearcher struct {
	fs        afero.Fs
	log       zerolog.Logger
	pathUtils *common.PathUtils
}

// Option configures a FileSearcher
type Option func(*FileSearcher)

// WithFs sets the filesystem to search. Defaults to the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(s *FileSearcher) {
		if fs != nil {
			s.fs = fs
		}
	}
}

// WithLogger sets the logger used for traversal diagnostics. Defaults to a
// disabled logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *FileSearcher) {
		s.log = log
	}
}

// NewFileSearcher creates a searcher with the given options applied
func NewFileSearcher(opts ...Option) *FileSearcher {
	s := &FileSearcher{
		fs:        afero.NewOsFs(),
		log:       zerolog.Nop(),
		pathUtils: common.NewPathUtils(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OpenDirectory resolves path to a directory handle. It returns nil when the
// path is empty, does not exist or is not a directory.
func (s *FileSearcher) OpenDirectory(path string) *Entry {
	if err := s.pathUtils.ValidatePath(path); err != nil {
		s.log.Debug().Str("path", path).Err(err).Msg("invalid search root")
		return nil
	}

	abs := s.pathUtils.NormalizePath(path)
	info, err := s.fs.Stat(abs)
	if err != nil {
		s.log.Debug().Str("path", abs).Err(err).Msg("search root not accessible")
		return nil
	}
	if !info.IsDir() {
		s.log.Debug().Str("path", abs).Err(common.ErrNotDirectory).Msg("search root rejected")
		return nil
	}
	return &Entry{path: abs, info: info}
}

// FindNewest returns the newest file below the directory at root that the
// filter accepts, or nil. A nil filter accepts every file.
func (s *FileSearcher) FindNewest(root string, nameFilter filter.NameFilter) *Entry {
	return s.FindNewestIn(s.OpenDirectory(root), nameFilter)
}

// FindNewestIn is FindNewest for an already resolved directory handle
func (s *FileSearcher) FindNewestIn(dir *Entry, nameFilter filter.NameFilter) *Entry {
	if dir == nil || dir.info == nil || !dir.IsDir() {
		return nil
	}
	return s.newestIn(dir.path, nameFilter, make(map[string]bool))
}

// FindNewestAsString returns the absolute path of the newest file below
// root. ok is false when nothing was found.
func (s *FileSearcher) FindNewestAsString(root string, nameFilter filter.NameFilter) (path string, ok bool) {
	return entryPath(s.FindNewest(root, nameFilter))
}

// FindNewestInAsString is FindNewestAsString for a directory handle
func (s *FileSearcher) FindNewestInAsString(dir *Entry, nameFilter filter.NameFilter) (path string, ok bool) {
	return entryPath(s.FindNewestIn(dir, nameFilter))
}

// newestIn reduces one directory level.
//
// Files and subtree results share a single newest slot. The filter is only
// consulted for a plain file that already beat the slot, and a level whose
// newest candidate was rejected returns nil. So a newer file that does not
// match hides older matching files at the same level. Callers depend on
// this; do not "fix" it here.
//
// visited holds the resolved path of every directory entered during this
// search, so directory symlinks are followed at most once and never loop.
func (s *FileSearcher) newestIn(dir string, nameFilter filter.NameFilter, visited map[string]bool) *Entry {
	key := s.realPath(dir)
	if visited[key] {
		s.log.Debug().Str("path", dir).Str("target", key).Msg("directory already searched")
		return nil
	}
	visited[key] = true

	children, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		s.log.Debug().Str("path", dir).Err(err).Msg("skipping unreadable directory")
		return nil
	}

	var newest *Entry
	accepted := false

	for _, info := range children {
		child, isDir, ok := s.resolve(dir, info)
		if !ok {
			continue
		}

		if isDir {
			latest := s.newestIn(child.path, nameFilter, visited)
			if latest != nil && latest.newerThan(newest) {
				newest = latest
				accepted = true
			}
			continue
		}

		if child.newerThan(newest) {
			newest = child
			accepted = nameFilter == nil || nameFilter.Accept(dir, child.Name())
		}
	}

	if !accepted {
		return nil
	}
	return newest
}

// resolve builds the handle for a listed child. Symlinks are followed for
// classification and keep the link's own path; dangling links are skipped.
func (s *FileSearcher) resolve(dir string, info os.FileInfo) (child *Entry, isDir, ok bool) {
	path := filepath.Join(dir, info.Name())

	if info.Mode()&os.ModeSymlink == 0 {
		return &Entry{path: path, info: info}, info.IsDir(), true
	}

	target, err := s.fs.Stat(path)
	if err != nil {
		s.log.Debug().Str("path", path).Err(err).Msg("skipping dangling symlink")
		return nil, false, false
	}
	return &Entry{path: path, info: target}, target.IsDir(), true
}

// realPath resolves symlinks on the OS filesystem. Other afero backends
// have no symlinks, so the cleaned path is already canonical.
func (s *FileSearcher) realPath(path string) string {
	if _, ok := s.fs.(*afero.OsFs); ok {
		if resolved, err := filepath.EvalSymlinks(path); err == nil {
			return resolved
		}
	}
	return filepath.Clean(path)
}

func entryPath(e *Entry) (string, bool) {
	if e == nil {
		return "", false
	}
	return e.Path(), true
}

var defaultSearcher = NewFileSearcher()

// FindNewest searches root on the OS filesystem. See FileSearcher.FindNewest.
func FindNewest(root string, nameFilter filter.NameFilter) *Entry {
	return defaultSearcher.FindNewest(root, nameFilter)
}

// FindNewestAsString searches root on the OS filesystem and returns the
// absolute path of the newest file.
func FindNewestAsString(root string, nameFilter filter.NameFilter) (string, bool) {
	return defaultSearcher.FindNewestAsString(root, nameFilter)
}
