package scanner

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/tippex"
)

// --- Options ---------------------------------------------------------------

// Option configures a scan.
type Option func(c *config)

type config struct {
	record tippex.TypeSet // span types to report
}

func defaultConfig() config {
	return config{record: tippex.AllTypes}
}

// Record sets the span types a scan will report. Spans of other types are
// still scanned, as the state machine has to stay synchronized, but they
// will not show up in the result.
func Record(types tippex.TypeSet) Option {
	return func(c *config) {
		c.record = types
	}
}

// Skip removes span types from the set of types to report.
func Skip(types ...tippex.SpanType) Option {
	return func(c *config) {
		for _, t := range types {
			c.record = c.record.Without(t)
		}
	}
}

// --- Find ------------------------------------------------------------------

// Find scans text and returns the spans of comments, strings, template
// literals, regex literals and JSX text, in ascending order of position.
// Spans never overlap.
//
// If text ends within a construct, Find returns the spans found so far
// together with an *UnterminatedError.
func Find(text string, opts ...Option) ([]tippex.Span, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	s := newScanner(text, cfg)
	tracer().Debugf("scanning %d bytes, recording %s", len(text), cfg.record)
	for i := 0; i < len(text); i++ {
		s.state = s.dispatch(s.state, text[i], i)
	}
	if err := s.finish(); err != nil {
		tracer().Errorf("scanner error: %v", err)
		return s.found, err
	}
	tracer().Debugf("found %d spans", len(s.found))
	return s.found, nil
}

// --- Scanner context -------------------------------------------------------

// resumePoint is pushed onto the resume stack at every `{`. The matching `}`
// pops it and continues scanning in state `state`.
type resumePoint struct {
	state  state
	opened int // offset of the construct to resume, for error messages
	depth  int // JSX tag depth to restore
}

// jsScanner holds all of the context of a single scan. The state machine
// proper is a function of (state, char, index) operating on this context,
// see states.go.
type jsScanner struct {
	text   string
	record tippex.TypeSet
	found  []tippex.Span
	state  state
	//
	start        int   // offset of the first content character of the current span
	opened       int   // offset of the opening delimiter of the current construct
	quote        byte  // quote character of the current string
	escapedFrom  state // state to return to after an escaped character
	afterComment state // state to return to after a comment
	//
	resume     *arraystack.Stack // of resumePoint
	parens     *arraystack.Stack // of offsets of unmatched '('
	parenMatch map[int]int       // offset of ')' ⇒ offset of matching '('
	//
	lastSig      int  // offset of the last significant character, -1 at start of input
	afterLiteral bool // last significant character closed a literal
	regexAllowed bool // decision for the current slash
	jsxDepth     int  // nesting depth of JSX tags
	jsxOpened    int  // offset of the outermost '<' of the current JSX element
}

func newScanner(text string, cfg config) *jsScanner {
	return &jsScanner{
		text:       text,
		record:     cfg.record,
		state:      stBase,
		resume:     arraystack.New(),
		parens:     arraystack.New(),
		parenMatch: make(map[int]int),
		lastSig:    -1,
	}
}

// push records a span, if its type has been selected.
func (s *jsScanner) push(typ tippex.SpanType, start, end int) {
	if !s.record.Has(typ) {
		return
	}
	span := tippex.Span{Start: start, End: end, Value: s.text[start:end], Type: typ}
	tracer().Debugf("found %v", span)
	s.found = append(s.found, span)
}

// significant marks the character at offset i as the last significant one,
// i.e. the end of the token a following slash or '<' has to be judged against.
func (s *jsScanner) significant(i int) {
	s.lastSig = i
	s.afterLiteral = false
}

// literalEnd marks the closing delimiter of a literal at i. Literals are
// values, therefore a slash after a literal is a division.
func (s *jsScanner) literalEnd(i int) {
	s.lastSig = i
	s.afterLiteral = true
}

func (s *jsScanner) pushResume(st state, opened int) {
	s.resume.Push(resumePoint{state: st, opened: opened, depth: s.jsxDepth})
}

// popResume pops the resume stack and restores the context saved with the
// resume point. A '}' without a matching '{' leaves the scanner in base state.
func (s *jsScanner) popResume() state {
	top, ok := s.resume.Pop()
	if !ok {
		return stBase
	}
	rp := top.(resumePoint)
	s.jsxDepth = rp.depth
	switch rp.state {
	case stTemplate:
		s.opened = rp.opened
	case stJSX, stJSXTag:
		s.jsxOpened = rp.opened
	}
	return rp.state
}

// finish handles end of input.
func (s *jsScanner) finish() error {
	switch s.state {
	case stLineComment:
		s.push(tippex.Line, s.start, len(s.text))
		if s.afterComment == stJSXTag {
			return newUnterminated(s.text, constructName(stJSXTag), s.jsxOpened)
		}
		return nil
	case stBase:
		for _, v := range s.resume.Values() { // innermost first
			rp := v.(resumePoint)
			if rp.state != stBase {
				return newUnterminated(s.text, constructName(rp.state), rp.opened)
			}
		}
		return nil
	case stSlash:
		if !s.regexAllowed {
			return nil
		}
		return newUnterminated(s.text, constructName(stRegex), s.opened)
	case stEscaped:
		return newUnterminated(s.text, constructName(s.escapedFrom), s.opened)
	case stJSXTagStart, stJSXTag, stJSXTagSlash, stJSX:
		return newUnterminated(s.text, constructName(s.state), s.jsxOpened)
	}
	return newUnterminated(s.text, constructName(s.state), s.opened)
}
