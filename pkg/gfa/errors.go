package gfa

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrFormat is matched by every *FormatError, so callers can
// check with errors.Is.
var ErrFormat = errors.New("not properly formatted")

// FormatKind says what was wrong with a line.
type FormatKind uint8

const (
	MissingName      FormatKind = iota // S line without a name
	MissingLinkField                   // L line with fewer than four fields
	BadStrand                          // strand neither + nor -
	DuplicateName                      // only in strict mode
)

var kindNames = [...]string{
	MissingName:      "segment has no name",
	MissingLinkField: "link is missing a field",
	BadStrand:        "invalid strand",
	DuplicateName:    "duplicate segment name",
}

func (k FormatKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("FormatKind(%d)", uint8(k))
}

// FormatError is a line we could not use. Line counts from 1.
// Text is the offending field, or the whole line if a field is missing.
type FormatError struct {
	Line int
	Kind FormatKind
	Text string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%v, line %d: %v %q", ErrFormat, e.Line, e.Kind, e.Text)
}

// Is lets errors.Is(err, ErrFormat) work.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }
