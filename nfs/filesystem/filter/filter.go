// Package filter provides the name filters used to restrict which files a
// newest-file search may return.
package filter

// NameFilter decides whether a file name inside a directory is eligible.
// dir is the directory that contains the candidate, name is its base name.
type NameFilter interface {
	Accept(dir, name string) bool
}

// NameFilterFunc adapts an ordinary function to the NameFilter interface
type NameFilterFunc func(dir, name string) bool

// Accept calls f(dir, name)
func (f NameFilterFunc) Accept(dir, name string) bool {
	return f(dir, name)
}

type allFilter []NameFilter

// All returns a filter that accepts a name only when every given filter
// accepts it. Nil filters are skipped; with none left everything is accepted.
func All(filters ...NameFilter) NameFilter {
	out := make(allFilter, 0, len(filters))
	for _, f := range filters {
		if f != nil {
			out = append(out, f)
		}
	}
	return out
}

func (a allFilter) Accept(dir, name string) bool {
	for _, f := range a {
		if !f.Accept(dir, name) {
			return false
		}
	}
	return true
}
