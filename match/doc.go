/*
Package match runs regular expressions over JavaScript source, ignoring
matches which start within comments, strings, template literals, regex
literals or JSX text.

Patterns are matched against the original text, so captured groups contain
the original characters. A match is accepted if its start offset does not
lie within a span found by package scanner.

	re := regexp.MustCompile(`import (\w+) from '([^']+)'`)
	err := match.Match(src, re, func(groups []string, offset int, text string) error {
		fmt.Printf("%s imported from %s at %d\n", groups[1], groups[2], offset)
		return nil
	})

Any type with a FindAllStringSubmatchIndex method may serve as a pattern,
e.g. *regexp.Regexp from the standard library or *coregex.Regex.

Global and once-only patterns

Patterns are global by default: the callback is invoked for every accepted
match. A pattern wrapped by Once stops after the first accepted match.
Matching always iterates over all matches internally, because a match
within a span must not hide an acceptable one further down. Match normalizes
once-only patterns silently; with option Strict it rejects them with
ErrNotGlobal instead. Replace always replaces all accepted matches.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package match

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tippex.match'.
func tracer() tracing.Trace {
	return tracing.Select("tippex.match")
}
