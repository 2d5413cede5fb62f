/*
Package location maps byte offsets in a text to line and column positions,
and renders source snippets for diagnostics.

Lines and columns are 1-based. Columns count runes, not bytes, so a caret
placed by Snippet lines up with the character at the offset for UTF-8
encoded input.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package location

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Position is a 1-based line/column pair together with the byte offset it
// was computed from.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Resolve returns the 1-based line and column of offset within text.
// Offsets outside the text are clamped.
func Resolve(text string, offset int) (line, column int) {
	offset = clamp(text, offset)
	line = 1 + strings.Count(text[:offset], "\n")
	lineStart := strings.LastIndexByte(text[:offset], '\n') + 1
	column = 1 + utf8.RuneCountInString(text[lineStart:offset])
	return
}

// Locate is like Resolve, but returns a Position.
func Locate(text string, offset int) Position {
	line, col := Resolve(text, offset)
	return Position{Offset: clamp(text, offset), Line: line, Column: col}
}

// Snippet renders the line containing offset, framed by the lines before
// and after it, with a caret pointing at offset:
//
//	2 | const a = 1;
//	3 | const b = 'oops;
//	  |           ^
//	4 | const c = 3;
//
func Snippet(text string, offset int) string {
	offset = clamp(text, offset)
	lines := strings.Split(text, "\n")
	line, col := Resolve(text, offset)
	first, last := line-1, line+1
	if first < 1 {
		first = 1
	}
	if last > len(lines) {
		last = len(lines)
	}
	width := len(fmt.Sprint(last))
	var b strings.Builder
	for l := first; l <= last; l++ {
		src := strings.TrimRight(lines[l-1], "\r")
		fmt.Fprintf(&b, "%*d | %s\n", width, l, src)
		if l == line {
			fmt.Fprintf(&b, "%*s | %s^\n", width, "", caretPadding(src, col))
		}
	}
	return b.String()
}

// caretPadding keeps tabs in place so that the caret lines up with the
// source line on a terminal.
func caretPadding(src string, col int) string {
	var b strings.Builder
	n := 1
	for _, r := range src {
		if n >= col {
			break
		}
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
		n++
	}
	for ; n < col; n++ {
		b.WriteByte(' ')
	}
	return b.String()
}

func clamp(text string, offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(text) {
		return len(text)
	}
	return offset
}
