/*
Command tippex finds, erases and matches non-code regions of JavaScript
source files: comments, strings, template literals, regex literals and JSX
text.

Usage:

	tippex [flags] find FILE
	tippex [flags] erase FILE
	tippex [flags] match PATTERN FILE
	tippex [flags] replace PATTERN TEMPLATE FILE

Flags:

	-trace  trace level [Debug|Info|Error], default Error
	-types  comma separated list of span types (line, block, comment, string,
	        regex, template, templateChunk, templateEnd, jsx, all), default all
	-engine regular expression engine for patterns [std|coregex], default std

For replace, `$0` in TEMPLATE denotes the complete match and `$1`…`$9` the
captured groups.

Called without a command, tippex starts an interactive session, where every
input line is a command followed by a JavaScript snippet, e.g.

	tippex> erase x = 'abc' // comment
	tippex> match \w+ a = b // c

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tippex.cli'
func tracer() tracing.Trace {
	return tracing.Select("tippex.cli")
}
