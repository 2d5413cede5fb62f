package scanner

import (
	"strings"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tokenClass is the category of the token preceding a '/' or '<'.
type tokenClass int

const (
	classNone       tokenClass = iota // no token
	classOther                        // a token after which an operator is expected
	classIdent                        // identifier or number
	classKeyword                      // keyword after which an expression is expected
	classPunctuator                   // punctuator after which an expression is expected
	classAmbiguous                    // `}`, `)`, `++`, `--`: may end an expression or a statement
)

var classNames = [...]string{"none", "other", "ident", "keyword", "punctuator", "ambiguous"}

func (tc tokenClass) String() string {
	return classNames[tc]
}

// Keywords which syntactically permit a following expression.
var exprKeywords = []string{
	"case", "default", "delete", "do", "else", "in", "instanceof",
	"new", "return", "throw", "typeof", "void",
}

// Punctuators after which an expression is expected.
var exprPunctuators = []string{
	"{", "(", "[", ";", ",", "<", ">", "<=", ">=", "==", "!=", "===", "!==",
	"+", "-", "*", "**", "%", "<<", ">>", ">>>", "&", "|", "^", "!", "~",
	"&&", "||", "??", "?", ":", "=", "+=", "-=", "*=", "**=", "%=", "<<=",
	">>=", ">>>=", "&=", "|=", "^=", "/=", "&&=", "||=", "??=", "/", "=>", "...",
}

var ambiguousPunctuators = []string{"}", ")", "++", "--"}

// Punctuators after which an operator is expected.
var otherPunctuators = []string{".", "?.", "]"}

var classifier struct {
	once  sync.Once
	lexer *lexmachine.Lexer
	err   error
}

// classifierLexer returns the DFA classifying trailing tokens. It is compiled
// on first use.
func classifierLexer() (*lexmachine.Lexer, error) {
	classifier.once.Do(func() {
		lexer := lexmachine.NewLexer()
		// keywords are added before identifiers: on matches of equal length
		// the pattern added first wins
		for _, kw := range exprKeywords {
			lexer.Add([]byte(kw), makeClassToken(classKeyword))
		}
		lexer.Add([]byte(`([a-zA-Z0-9_]|\$)+`), makeClassToken(classIdent))
		for _, p := range exprPunctuators {
			lexer.Add(literalPattern(p), makeClassToken(classPunctuator))
		}
		for _, p := range ambiguousPunctuators {
			lexer.Add(literalPattern(p), makeClassToken(classAmbiguous))
		}
		for _, p := range otherPunctuators {
			lexer.Add(literalPattern(p), makeClassToken(classOther))
		}
		if err := lexer.Compile(); err != nil {
			tracer().Errorf("error compiling token classifier DFA: %v", err)
			classifier.err = err
			return
		}
		classifier.lexer = lexer
	})
	return classifier.lexer, classifier.err
}

// literalPattern escapes every character of a punctuator.
func literalPattern(lit string) []byte {
	return []byte("\\" + strings.Join(strings.Split(lit, ""), "\\"))
}

func makeClassToken(tc tokenClass) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(tc), string(m.Bytes), m), nil
	}
}

// classifyToken splits a run of punctuator characters or keyword characters
// into tokens and returns the class of the last one. Characters the DFA does
// not know are skipped.
func classifyToken(run string) tokenClass {
	if run == "" {
		return classNone
	}
	if !isASCII(run) { // no keyword or punctuator contains non-ASCII characters
		return classIdent
	}
	lexer, err := classifierLexer()
	if err != nil {
		return classOther
	}
	scan, err := lexer.Scanner([]byte(run))
	if err != nil {
		return classOther
	}
	last := classOther
	for tok, err, eof := scan.Next(); !eof; tok, err, eof = scan.Next() {
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				scan.TC = ui.FailTC
				last = classOther
				continue
			}
			tracer().Errorf("classifier: %v", err)
			return classOther
		}
		last = tokenClass(tok.(*lexmachine.Token).Type)
	}
	tracer().Debugf("token %q classified as %s", run, last)
	return last
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
