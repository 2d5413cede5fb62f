package scanner

import (
	"fmt"

	"github.com/npillmayer/tippex"
)

// state is a state of the scanner's state machine.
type state int8

const (
	stBase               state = iota // code
	stSlash                           // after '/' in code
	stRegex                           // inside a regex literal
	stRegexClass                      // inside a character class of a regex literal
	stString                          // inside a quoted string
	stEscaped                         // after a backslash
	stTemplate                        // inside a template literal
	stTemplateDollar                  // after '$' in a template literal
	stLineComment                     // inside a line comment
	stBlockComment                    // inside a block comment
	stBlockCommentEnding              // after '*' in a block comment
	stJSXTagStart                     // after '<' opening a JSX tag
	stJSXTag                          // inside a JSX tag
	stJSXTagSlash                     // after '/' inside a JSX tag
	stJSX                             // JSX text between tags
)

var stateNames = [...]string{
	"base", "slash", "regex", "regexCharacter", "string", "escaped", "template",
	"templateDollar", "lineComment", "blockComment", "blockCommentEnding",
	"jsxTagStart", "jsxTag", "jsxTagSlash", "jsx",
}

func (st state) String() string {
	if st < 0 || int(st) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(st))
	}
	return stateNames[st]
}

// constructName is used for error messages.
func constructName(st state) string {
	switch st {
	case stString:
		return "string literal"
	case stSlash, stRegex, stRegexClass:
		return "regular expression"
	case stTemplate, stTemplateDollar:
		return "template literal"
	case stBlockComment, stBlockCommentEnding:
		return "block comment"
	case stJSXTagStart, stJSXTag, stJSXTagSlash, stJSX:
		return "JSX element"
	}
	return st.String()
}

// dispatch is the transition function of the state machine: it consumes
// character c at offset i in state st and returns the follow-up state.
func (s *jsScanner) dispatch(st state, c byte, i int) state {
	switch st {
	case stBase:
		return s.base(c, i)
	case stSlash:
		return s.slash(c, i)
	case stRegex:
		return s.regex(c, i)
	case stRegexClass:
		return s.regexClass(c, i)
	case stString:
		return s.quoted(c, i)
	case stEscaped:
		return s.escapedFrom
	case stTemplate:
		return s.template(c, i)
	case stTemplateDollar:
		return s.templateDollar(c, i)
	case stLineComment:
		return s.lineComment(c, i)
	case stBlockComment:
		if c == '*' {
			return stBlockCommentEnding
		}
		return stBlockComment
	case stBlockCommentEnding:
		return s.blockCommentEnding(c, i)
	case stJSXTagStart:
		return s.jsxTagStart(c, i)
	case stJSXTag:
		return s.jsxTag(c, i)
	case stJSXTagSlash:
		return s.jsxTagSlash(c, i)
	case stJSX:
		return s.jsx(c, i)
	}
	panic(fmt.Sprintf("scanner in illegal state %d", st))
}

func (s *jsScanner) base(c byte, i int) state {
	switch c {
	case '(':
		s.parens.Push(i)
	case ')':
		if open, ok := s.parens.Pop(); ok {
			s.parenMatch[i] = open.(int)
		}
	case '{':
		s.pushResume(stBase, i)
	case '}':
		s.significant(i)
		s.start = i + 1
		return s.popResume()
	case '"', '\'':
		s.opened, s.start, s.quote = i, i+1, c
		s.pushResume(stBase, i)
		return stString
	case '`':
		s.opened, s.start = i, i+1
		return stTemplate
	case '/':
		s.opened = i
		s.regexAllowed = s.regexPermitted()
		return stSlash
	case '<':
		if s.jsxPermitted(i) {
			s.jsxOpened = i
			return stJSXTagStart
		}
	}
	if !isWhitespace(c) {
		s.significant(i)
	}
	return stBase
}

// slash decides between comment, regex literal and division. A division
// slash does not consume c; it is handed back to base.
func (s *jsScanner) slash(c byte, i int) state {
	switch {
	case c == '/':
		s.start, s.afterComment = i+1, stBase
		return stLineComment
	case c == '*':
		s.start, s.afterComment = i+1, stBase
		return stBlockComment
	case s.regexAllowed:
		s.start = i
		return s.regex(c, i)
	}
	s.significant(i - 1)
	return s.base(c, i)
}

func (s *jsScanner) regex(c byte, i int) state {
	switch c {
	case '[':
		return stRegexClass
	case '\\':
		s.escapedFrom = stRegex
		return stEscaped
	case '/':
		s.push(tippex.Regex, s.start, i)
		s.literalEnd(i)
		return stBase
	}
	return stRegex
}

// regexClass is a bracketed character class, where '/' does not terminate
// the regex.
func (s *jsScanner) regexClass(c byte, i int) state {
	switch c {
	case ']':
		return stRegex
	case '\\':
		s.escapedFrom = stRegexClass
		return stEscaped
	}
	return stRegexClass
}

func (s *jsScanner) quoted(c byte, i int) state {
	switch c {
	case '\\':
		s.escapedFrom = stString
		return stEscaped
	case s.quote:
		s.push(tippex.String, s.start, i)
		s.literalEnd(i)
		return s.popResume()
	}
	return stString
}

func (s *jsScanner) template(c byte, i int) state {
	switch c {
	case '$':
		return stTemplateDollar
	case '\\':
		s.escapedFrom = stTemplate
		return stEscaped
	case '`':
		s.push(tippex.TemplateEnd, s.start, i)
		s.literalEnd(i)
		return stBase
	}
	return stTemplate
}

// templateDollar opens an interpolation on '{'. Any other character is
// handed back to template.
func (s *jsScanner) templateDollar(c byte, i int) state {
	if c == '{' {
		s.push(tippex.TemplateChunk, s.start, i-1)
		s.pushResume(stTemplate, s.opened)
		s.significant(i)
		return stBase
	}
	return s.template(c, i)
}

func (s *jsScanner) lineComment(c byte, i int) state {
	if c == '\n' {
		s.push(tippex.Line, s.start, i)
		return s.afterComment
	}
	return stLineComment
}

func (s *jsScanner) blockCommentEnding(c byte, i int) state {
	switch c {
	case '/':
		s.push(tippex.Block, s.start, i-1)
		return s.afterComment
	case '*':
		return stBlockCommentEnding
	}
	return stBlockComment
}

// --- JSX -------------------------------------------------------------------

// jsxTagStart follows a '<'. A closing tag decrements the nesting depth, any
// other tag increments it.
func (s *jsScanner) jsxTagStart(c byte, i int) state {
	if c == '/' {
		s.jsxDepth--
		return stJSXTag
	}
	s.jsxDepth++
	return s.jsxTag(c, i)
}

func (s *jsScanner) jsxTag(c byte, i int) state {
	switch c {
	case '"', '\'':
		s.opened, s.start, s.quote = i, i+1, c
		s.pushResume(stJSXTag, s.jsxOpened)
		return stString
	case '{': // attribute expression
		s.pushResume(stJSXTag, s.jsxOpened)
		s.jsxDepth = 0
		s.significant(i)
		return stBase
	case '>':
		return s.jsxTagEnd(i)
	case '/':
		return stJSXTagSlash
	}
	return stJSXTag
}

// jsxTagSlash follows a '/' inside a tag, which either ends a self-closing
// tag or opens a comment. Scanning continues within the tag after the
// comment.
func (s *jsScanner) jsxTagSlash(c byte, i int) state {
	switch c {
	case '>':
		s.jsxDepth--
		return s.jsxTagEnd(i)
	case '/':
		s.opened, s.start, s.afterComment = i-1, i+1, stJSXTag
		return stLineComment
	case '*':
		s.opened, s.start, s.afterComment = i-1, i+1, stJSXTag
		return stBlockComment
	}
	return s.jsxTag(c, i)
}

// jsxTagEnd is called for the '>' closing a tag. If the outermost element is
// complete, scanning continues with code.
func (s *jsScanner) jsxTagEnd(i int) state {
	if s.jsxDepth <= 0 {
		s.jsxDepth = 0
		s.literalEnd(i)
		return stBase
	}
	s.start = i + 1
	return stJSX
}

func (s *jsScanner) jsx(c byte, i int) state {
	switch c {
	case '{':
		s.pushJSXText(i)
		s.pushResume(stJSX, s.jsxOpened)
		s.jsxDepth = 0
		s.significant(i)
		return stBase
	case '<':
		s.pushJSXText(i)
		return stJSXTagStart
	}
	return stJSX
}

// pushJSXText records JSX text up to i. Empty runs of text between two tags
// are not recorded.
func (s *jsScanner) pushJSXText(i int) {
	if i > s.start {
		s.push(tippex.JSX, s.start, i)
	}
}
