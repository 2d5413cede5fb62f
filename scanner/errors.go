package scanner

import (
	"errors"
	"fmt"

	"github.com/npillmayer/tippex/location"
)

// ErrUnterminated is the error class of scans ending within a construct.
// Use errors.Is to check for it, or errors.As to get the details from an
// *UnterminatedError.
var ErrUnterminated = errors.New("unterminated construct")

// UnterminatedError is returned by Find if the input ends while the scanner is
// still inside a construct. Offset denotes the opening delimiter of the
// construct.
type UnterminatedError struct {
	Construct string // "string literal", "template literal", …
	Offset    int    // byte offset of the opening delimiter
	Line      int    // 1-based
	Column    int    // 1-based, in runes
	Snippet   string // source lines around the offending position
}

func newUnterminated(text string, construct string, offset int) *UnterminatedError {
	pos := location.Locate(text, offset)
	return &UnterminatedError{
		Construct: construct,
		Offset:    pos.Offset,
		Line:      pos.Line,
		Column:    pos.Column,
		Snippet:   location.Snippet(text, pos.Offset),
	}
}

func (e *UnterminatedError) Error() string {
	return fmt.Sprintf("unexpected end of input: unterminated %s starting at %d:%d\n%s",
		e.Construct, e.Line, e.Column, e.Snippet)
}

// Is makes errors.Is(err, ErrUnterminated) hold.
func (e *UnterminatedError) Is(target error) bool {
	return target == ErrUnterminated
}
