package scanner

// --- Character classes -----------------------------------------------------

func isPunctuatorChar(c byte) bool {
	switch c {
	case '{', '}', '(', ')', '[', ']', '.', ';', ',', '<', '>', '=', '+', '-',
		'*', '%', '&', '|', '^', '!', '~', '?', ':', '/':
		return true
	}
	return false
}

// isKeywordChar is true for characters which may be part of an identifier,
// keyword or number. Bytes of multi-byte UTF-8 sequences count as
// identifier characters.
func isKeywordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '_' || c == '$' || c >= 0x80
}

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// --- Trailing tokens -------------------------------------------------------

// trailingToken returns the token run ending at end (exclusive): either all
// of the punctuator characters or all of the keyword characters immediately
// before end.
func trailingToken(text string, end int) string {
	if end <= 0 {
		return ""
	}
	a := end
	if isPunctuatorChar(text[end-1]) {
		for a > 0 && isPunctuatorChar(text[a-1]) {
			a--
		}
	} else {
		for a > 0 && isKeywordChar(text[a-1]) {
			a--
		}
	}
	return text[a:end]
}

// precedingClass classifies the last significant token.
func (s *jsScanner) precedingClass() tokenClass {
	if s.lastSig < 0 {
		return classNone
	}
	if s.afterLiteral {
		return classOther
	}
	end := s.lastSig + 1
	tok := trailingToken(s.text, end)
	if tok == "" { // a character we know nothing about, e.g. '#' or '@'
		return classOther
	}
	if start := end - len(tok); start > 0 && s.text[start-1] == '.' && isKeywordChar(tok[0]) {
		return classIdent // property name, as in `x.in`
	}
	return classifyToken(tok)
}

// regexPermitted decides whether a slash at the current position may start a
// regex literal.
func (s *jsScanner) regexPermitted() bool {
	switch s.precedingClass() {
	case classNone, classKeyword, classPunctuator:
		return true
	case classAmbiguous:
		return !s.tokenClosesExpression()
	}
	return false
}

// tokenClosesExpression resolves the ambiguous tokens `)`, `}`, `++` and
// `--`. A `)` closes an expression unless the parenthesized group is the
// condition of a control statement:
//
//	if (x) /re/.test(y)     // regex
//	f(x) / 2                // division
//
// TODO handle `}`, `++` and `--` immediately followed by a slash
func (s *jsScanner) tokenClosesExpression() bool {
	if s.text[s.lastSig] != ')' {
		return true
	}
	open, ok := s.parenMatch[s.lastSig]
	if !ok {
		return true
	}
	b := open
	for b > 0 && isWhitespace(s.text[b-1]) {
		b--
	}
	a := b
	for a > 0 && isKeywordChar(s.text[a-1]) {
		a--
	}
	switch s.text[a:b] {
	case "if", "while", "for", "with":
		return false
	}
	return true
}

// jsxPermitted decides whether a '<' at offset i opens a JSX element. This is
// the case where an expression is expected and the '<' is followed by a tag
// name or by '>' (a fragment).
func (s *jsScanner) jsxPermitted(i int) bool {
	if i+1 >= len(s.text) {
		return false
	}
	if next := s.text[i+1]; !isLetter(next) && next != '>' {
		return false
	}
	if i > 0 && s.text[i-1] == '<' { // shift operator
		return false
	}
	switch s.precedingClass() {
	case classNone, classKeyword, classPunctuator:
		return true
	}
	return false
}
