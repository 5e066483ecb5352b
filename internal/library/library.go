package library

import (
	"slices"
	"strings"
)

// authorSeparator joins multiple authors for single-line display.
const authorSeparator = ", "

// Library is one attribution entry. Values are never mutated after Load.
type Library struct {
	Name        string
	Authors     []string
	Version     string
	Licenses    []string
	Website     string
	SCM         string
	Description string
}

// Author returns the authors joined for display, or "" when there are none.
func (l Library) Author() string {
	authors := make([]string, 0, len(l.Authors))
	for _, a := range l.Authors {
		if a = strings.TrimSpace(a); a != "" {
			authors = append(authors, a)
		}
	}
	return strings.Join(authors, authorSeparator)
}

// HasAuthor reports whether the record names at least one non-blank author.
func (l Library) HasAuthor() bool {
	return l.Author() != ""
}

// HasVersion reports whether the record carries a non-blank version.
func (l Library) HasVersion() bool {
	return strings.TrimSpace(l.Version) != ""
}

// LicenseIDs returns the declared license ids trimmed, without blanks or
// repeats, in declaration order.
func (l Library) LicenseIDs() []string {
	ids := make([]string, 0, len(l.Licenses))
	for _, id := range l.Licenses {
		if id = strings.TrimSpace(id); id != "" && !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// HasLicenses reports whether the record carries at least one non-blank license id.
func (l Library) HasLicenses() bool {
	return len(l.LicenseIDs()) > 0
}

// Equal reports structural equality.
func (l Library) Equal(other Library) bool {
	return l.Name == other.Name &&
		l.Version == other.Version &&
		l.Website == other.Website &&
		l.SCM == other.SCM &&
		l.Description == other.Description &&
		slices.Equal(l.Authors, other.Authors) &&
		slices.Equal(l.Licenses, other.Licenses)
}

// Libraries is an ordered sequence of records; index order is display order.
type Libraries []Library

// Equal reports whether both sequences hold structurally equal records in the same order.
func (s Libraries) Equal(other Libraries) bool {
	return slices.EqualFunc(s, other, Library.Equal)
}

// Clone returns a deep copy so callers sharing a load result never alias slices.
func (s Libraries) Clone() Libraries {
	if s == nil {
		return nil
	}
	out := make(Libraries, len(s))
	for i, lib := range s {
		lib.Authors = slices.Clone(lib.Authors)
		lib.Licenses = slices.Clone(lib.Licenses)
		out[i] = lib
	}
	return out
}
