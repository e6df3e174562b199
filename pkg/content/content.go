// Package content defines the authored learning content that contentlint
// validates: lessons, courses and interview question banks.
//
// Records are read-only snapshots decoded once per run from YAML or JSON
// files. Required-field presence is captured while decoding so validators
// can report every missing field instead of failing on the first.
package content

import (
	"fmt"
	"regexp"
)

// Kind identifies which content tree a record came from.
type Kind int

// Content kinds.
const (
	KindLesson Kind = iota
	KindCourse
	KindInterviewQuestion
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindLesson:
		return "lesson"
	case KindCourse:
		return "course"
	case KindInterviewQuestion:
		return "interviewQuestion"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// AllKinds returns the kinds in pipeline order.
func AllKinds() []Kind {
	return []Kind{KindLesson, KindCourse, KindInterviewQuestion}
}

// Record is implemented by every top-level content document.
type Record interface {
	RecordID() string
	RecordKind() Kind
	SourcePath() string
	MissingFields() []string
}

// IDPattern is the accepted shape of every content ID.
var IDPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// ValidID reports whether id matches IDPattern.
func ValidID(id string) bool {
	return IDPattern.MatchString(id)
}

// presence records which required keys a mapping declared with a
// non-empty value. It is embedded in every record that has required fields.
type presence struct {
	missing []string
}

// MissingFields returns required keys that were absent, null or empty
// strings, in declaration order of the required list.
func (p presence) MissingFields() []string {
	return p.missing
}

// Missing reports whether the named field was missing.
func (p presence) Missing(field string) bool {
	for _, f := range p.missing {
		if f == field {
			return true
		}
	}
	return false
}
