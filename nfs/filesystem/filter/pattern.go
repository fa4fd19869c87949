package filter

import (
	"regexp"
	"sync"

	"github.com/ZanzyTHEbar/newestfile/nfs/filesystem/common"
)

// PatternNameFilter accepts names that match a regular expression in full.
// A filter without a pattern rejects every name.
type PatternNameFilter struct {
	mu       sync.RWMutex
	pattern  *regexp.Regexp
	anchored *regexp.Regexp
}

// NewPatternNameFilter creates a filter from a compiled pattern. A nil
// pattern gives an inert filter.
func NewPatternNameFilter(pattern *regexp.Regexp) *PatternNameFilter {
	f := &PatternNameFilter{}
	f.SetPattern(pattern)
	return f
}

// CompilePatternNameFilter compiles source and creates a filter from it
func CompilePatternNameFilter(source string) (*PatternNameFilter, error) {
	f := &PatternNameFilter{}
	if err := f.SetPatternString(source); err != nil {
		return nil, err
	}
	return f, nil
}

// MustCompilePatternNameFilter is like CompilePatternNameFilter but panics
// on an invalid source.
func MustCompilePatternNameFilter(source string) *PatternNameFilter {
	f, err := CompilePatternNameFilter(source)
	if err != nil {
		panic(err)
	}
	return f
}

// SetPattern replaces the pattern. nil clears it.
func (f *PatternNameFilter) SetPattern(pattern *regexp.Regexp) {
	var anchored *regexp.Regexp
	if pattern != nil {
		// the source already compiled once, so the anchored form compiles too
		anchored = regexp.MustCompile(anchor(pattern.String()))
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.pattern = pattern
	f.anchored = anchored
}

// SetPatternString compiles source and replaces the pattern. On error the
// previous pattern stays in place.
func (f *PatternNameFilter) SetPatternString(source string) error {
	pattern, err := regexp.Compile(source)
	if err != nil {
		return common.NewInvalidPatternError(source, err)
	}
	f.SetPattern(pattern)
	return nil
}

// Pattern returns the current pattern, or nil when none is set
func (f *PatternNameFilter) Pattern() *regexp.Regexp {
	if f == nil {
		return nil
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.pattern
}

// Accept reports whether name matches the whole pattern. dir is ignored.
func (f *PatternNameFilter) Accept(dir, name string) bool {
	if f == nil {
		return false
	}
	f.mu.RLock()
	anchored := f.anchored
	f.mu.RUnlock()

	if anchored == nil {
		return false
	}
	return anchored.MatchString(name)
}

func anchor(source string) string {
	return `^(?:` + source + `)$`
}
