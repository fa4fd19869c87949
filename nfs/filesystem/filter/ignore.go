package filter

import (
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/newestfile/nfs/filesystem/common"

	ignore "github.com/sabhiram/go-gitignore"
	"github.com/spf13/afero"
)

// IgnoreNameFilter rejects files matched by gitignore-style rules.
// Rules are evaluated against the path relative to base; files outside base
// are matched by name alone.
type IgnoreNameFilter struct {
	base      string
	matcher   *ignore.GitIgnore
	pathUtils *common.PathUtils
}

// NewIgnoreNameFilter compiles gitignore lines rooted at base
func NewIgnoreNameFilter(base string, lines ...string) *IgnoreNameFilter {
	return &IgnoreNameFilter{
		base:      base,
		matcher:   ignore.CompileIgnoreLines(lines...),
		pathUtils: common.NewPathUtils(),
	}
}

// LoadIgnoreNameFilter reads an ignore file from fs. Rules are rooted at
// the directory holding the file.
func LoadIgnoreNameFilter(fs afero.Fs, path string) (*IgnoreNameFilter, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, common.WrapError(err, "failed to read ignore file %s", path)
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	return NewIgnoreNameFilter(filepath.Dir(path), lines...), nil
}

// Accept reports whether the file is not ignored
func (f *IgnoreNameFilter) Accept(dir, name string) bool {
	candidate := name
	if f.base != "" {
		if rel, ok := f.pathUtils.RelativeSlashPath(f.base, filepath.Join(dir, name)); ok {
			candidate = rel
		}
	}
	return !f.matcher.MatchesPath(candidate)
}
