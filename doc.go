/*
Package tippex finds the parts of JavaScript source text which are not code:
comments, string literals, template literals, regular expression literals
and JSX text.

Naive regular expressions over JavaScript source trip over these regions all
the time: an `import` statement inside a comment, a `//` inside a string, a
`}` inside a regex. Tippex runs a single-pass character scanner with an
explicit state machine over the input and reports the regions as spans,
without building a syntax tree. Package structure is as follows:

■ scanner: Package scanner implements the state machine (Find) together with
the heuristics resolving the regex/division and JSX/comparison ambiguities.

■ erase: Package erase blanks out the content of spans, preserving the length
of the text and its line structure.

■ match: Package match runs a regular expression over the original text,
accepting only matches outside of spans, and replaces accepted matches.

■ location: Package location maps byte offsets to line and column positions
for diagnostics.

■ cmd/tippex: Command tippex offers find, erase, match and replace on the
command line and in an interactive session.

The base package contains the data types which are used throughout all the
other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tippex
