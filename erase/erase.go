/*
Package erase blanks out comments, strings, template literals, regex literals
and JSX text in JavaScript source.

Every byte of a span's content is replaced by a space, except for line
breaks. Carriage returns count as line breaks as well, so CRLF line endings
survive. Delimiters are left in place. The result therefore has exactly the
length and line structure of the input, and offsets, lines and columns of
the remaining code are unchanged. Erasing is idempotent.

	erased, err := erase.Erase(`const answer = 42; // line comment`)
	// erased == "const answer = 42; //             "

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package erase

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tippex"
	"github.com/npillmayer/tippex/scanner"
)

// tracer traces with key 'tippex.erase'.
func tracer() tracing.Trace {
	return tracing.Select("tippex.erase")
}

// Erase scans text and blanks out the content of all spans found. Scanner
// options select the span types to erase, e.g.
//
//	erase.Erase(src, scanner.Record(tippex.Comments))
//
// will remove comments only and leave strings intact.
func Erase(text string, opts ...scanner.Option) (string, error) {
	spans, err := scanner.Find(text, opts...)
	if err != nil {
		return "", err
	}
	return Spans(text, spans), nil
}

// Spans blanks out the content of spans in text. Spans have to be ordered
// and non-overlapping, as returned by scanner.Find.
func Spans(text string, spans []tippex.Span) string {
	var b strings.Builder
	b.Grow(len(text))
	pos := 0
	for _, span := range spans {
		if span.Start < pos || span.End > len(text) {
			tracer().Errorf("erase: skipping misplaced span %v", span)
			continue
		}
		b.WriteString(text[pos:span.Start])
		blank(&b, text[span.Start:span.End])
		pos = span.End
	}
	b.WriteString(text[pos:])
	tracer().Debugf("erased %d spans", len(spans))
	return b.String()
}

// blank writes s with every byte replaced by a space, except for line breaks.
func blank(b *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n', '\r':
			b.WriteByte(s[i])
		default:
			b.WriteByte(' ')
		}
	}
}
