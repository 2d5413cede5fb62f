package tippex

import (
	"fmt"
	"strings"
)

// --- Span types ------------------------------------------------------------

// SpanType is a category for spans found by the scanner.
type SpanType int

// Span types. A template literal is split into chunks at every `${`
// interpolation; the last segment of a template literal is of type
// TemplateEnd, all segments followed by an interpolation are of type
// TemplateChunk.
const (
	Line          SpanType = iota // line comment
	Block                         // block comment
	String                        // single or double quoted string
	Regex                         // regular expression literal
	TemplateChunk                 // template segment followed by `${`
	TemplateEnd                   // template segment terminating the literal
	JSX                           // JSX text between tags
	numberOfTypes
)

var typeNames = [...]string{"line", "block", "string", "regex", "templateChunk", "templateEnd", "jsx"}

func (t SpanType) String() string {
	if t < 0 || t >= numberOfTypes {
		return fmt.Sprintf("SpanType(%d)", int(t))
	}
	return typeNames[t]
}

// --- Type sets -------------------------------------------------------------

// TypeSet is a set of span types, used to select which kinds of spans a
// scanner should record.
type TypeSet uint16

// Frequently used type sets.
const (
	NoTypes   TypeSet = 0
	AllTypes  TypeSet = 1<<numberOfTypes - 1
	Comments  TypeSet = 1<<Line | 1<<Block
	Templates TypeSet = 1<<TemplateChunk | 1<<TemplateEnd
)

// Types creates a type set from a list of span types.
func Types(types ...SpanType) TypeSet {
	var set TypeSet
	for _, t := range types {
		set = set.With(t)
	}
	return set
}

// Has is true if t is a member of set.
func (set TypeSet) Has(t SpanType) bool {
	return t >= 0 && t < numberOfTypes && set&(1<<t) != 0
}

// With returns a copy of set with t included.
func (set TypeSet) With(t SpanType) TypeSet {
	if t < 0 || t >= numberOfTypes {
		return set
	}
	return set | 1<<t
}

// Without returns a copy of set with t removed.
func (set TypeSet) Without(t SpanType) TypeSet {
	if t < 0 || t >= numberOfTypes {
		return set
	}
	return set &^ (1 << t)
}

func (set TypeSet) String() string {
	var names []string
	for t := Line; t < numberOfTypes; t++ {
		if set.Has(t) {
			names = append(names, t.String())
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}

// ParseTypes reads a comma separated list of type names. Besides the names
// of the single span types, it understands "template" (both template types),
// "comment" (line and block comments), "all" and "none".
func ParseTypes(list string) (TypeSet, error) {
	var set TypeSet
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		switch name {
		case "":
			continue
		case "all":
			set |= AllTypes
		case "none":
		case "template":
			set |= Templates
		case "comment":
			set |= Comments
		default:
			found := false
			for t := Line; t < numberOfTypes; t++ {
				if strings.EqualFold(name, t.String()) {
					set = set.With(t)
					found = true
					break
				}
			}
			if !found {
				return set, fmt.Errorf("unknown span type %q", name)
			}
		}
	}
	return set, nil
}

// --- Spans -----------------------------------------------------------------

// Span is a region of source text found by the scanner. Start is the
// offset of the first content character, i.e. the position just behind an
// opening delimiter; End is the position of the closing delimiter, i.e.
// one behind the last content character. Delimiters are never part of a
// span. Offsets are byte offsets.
//
// Value holds the content, text[Start:End].
type Span struct {
	Start int
	End   int
	Value string
	Type  SpanType
}

// Len returns the length of the span's content.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains is true if offset pos lies within the span.
func (s Span) Contains(pos int) bool {
	return s.Start <= pos && pos < s.End
}

// Lengths of the opening and closing delimiters of spans, by type. A
// template segment following an interpolation is opened by the `}` closing
// the interpolation; a TemplateChunk is closed by `${`. JSX text has no
// delimiters, a line comment is ended by the line break, which is code.
var delimiters = [...][2]int{
	Line:          {2, 0},
	Block:         {2, 2},
	String:        {1, 1},
	Regex:         {1, 1},
	TemplateChunk: {1, 2},
	TemplateEnd:   {1, 1},
	JSX:           {0, 0},
}

// Outer returns the region of the span including its delimiters.
func (s Span) Outer() (start, end int) {
	if s.Type < 0 || s.Type >= numberOfTypes {
		return s.Start, s.End
	}
	d := delimiters[s.Type]
	return s.Start - d[0], s.End + d[1]
}

// Covers is true if offset pos lies within the span or on one of its
// delimiters.
func (s Span) Covers(pos int) bool {
	start, end := s.Outer()
	return start <= pos && pos < end
}

func (s Span) String() string {
	return fmt.Sprintf("%s(%d…%d)", s.Type, s.Start, s.End)
}
