/*
Package scanner finds comments, string literals, template literals, regular
expression literals and JSX text in JavaScript source.

The scanner is a single-pass state machine over the bytes of the input. It
does not build a syntax tree. Two ambiguities of JavaScript's lexical
grammar are resolved by looking at the token immediately preceding the
character in question:

■ A slash may start a regular expression literal or be a division operator.
A regex is permitted at the start of the input, after a punctuator which
expects an operand (`=`, `(`, `,`, `&&`, …) and after keywords like `return`
or `typeof`. After `)` the scanner looks up the matching `(`: if the
parenthesized group is the condition of an `if`, `while`, `for` or `with`,
a regex may follow, otherwise it is a division.

■ A `<` may start a JSX element or be a comparison. A JSX element is assumed
wherever a regex would be permitted, provided the `<` is immediately
followed by a letter or by `>` (a fragment).

Both are heuristics. Known limitation: `}`, `++` and `--` immediately
followed by a slash are always treated as closing an expression.

Find returns an error of type *UnterminatedError if the input ends within a
construct (string, regex, template literal, block comment, JSX element).
An unterminated line comment is closed at the end of the input.

	spans, err := scanner.Find(src, scanner.Skip(tippex.JSX))
	if err != nil {
		// do error handling
	}
	for _, span := range spans {
		fmt.Printf("%s: %q\n", span, span.Value)
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tippex.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("tippex.scanner")
}
