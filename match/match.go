package match

import (
	"errors"
	"strings"

	"github.com/npillmayer/tippex"
	"github.com/npillmayer/tippex/scanner"
)

// MatchFunc is called for every accepted match. groups[0] is the complete
// match, followed by the captured groups (empty for groups not
// participating in the match). offset is the start of the match in text.
type MatchFunc func(groups []string, offset int, text string) error

// ReplaceFunc is like MatchFunc, but returns the replacement for a match.
type ReplaceFunc func(groups []string, offset int, text string) (string, error)

// --- Options ---------------------------------------------------------------

// Option configures matching.
type Option func(c *config)

type config struct {
	strict bool
	scan   []scanner.Option
}

// Strict rejects once-only patterns with ErrNotGlobal instead of
// normalizing them.
func Strict() Option {
	return func(c *config) {
		c.strict = true
	}
}

// Scan passes options to the scanner, e.g. to let matches within strings
// be accepted:
//
//	match.Match(src, re, f, match.Scan(scanner.Skip(tippex.String)))
//
func Scan(opts ...scanner.Option) Option {
	return func(c *config) {
		c.scan = append(c.scan, opts...)
	}
}

func configure(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// --- Matching --------------------------------------------------------------

// Match calls f for each match of p in text which does not start within a
// comment, string, template literal, regex literal or JSX text, delimiters
// included. Matches are
// visited in ascending order. If p is once-only, f is called for the first
// accepted match only.
//
// An error returned by f stops matching and is returned unchanged.
func Match(text string, p Pattern, f MatchFunc, opts ...Option) error {
	cfg := configure(opts)
	if p == nil {
		return errors.New("match: pattern is nil")
	}
	if cfg.strict && !IsGlobal(p) {
		tracer().Errorf("match: %v", ErrNotGlobal)
		return ErrNotGlobal
	}
	once := !IsGlobal(p)
	return accepted(text, Global(p), cfg, func(loc []int) (bool, error) {
		if err := f(groups(text, loc), loc[0], text); err != nil {
			return false, err
		}
		return !once, nil
	})
}

// Result is an accepted match.
type Result struct {
	Start, End int      // position of the complete match
	Groups     []string // complete match, followed by captured groups
}

// All returns all accepted matches of p in text. A once-only pattern
// returns at most one result.
func All(text string, p Pattern, opts ...Option) ([]Result, error) {
	var results []Result
	err := Match(text, p, func(g []string, offset int, _ string) error {
		results = append(results, Result{Start: offset, End: offset + len(g[0]), Groups: g})
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// accepted iterates over all matches of p, skipping those which start
// within a span or on one of its delimiters. visit returns false to stop the iteration.
func accepted(text string, p Pattern, cfg config, visit func(loc []int) (bool, error)) error {
	spans, err := scanner.Find(text, cfg.scan...)
	if err != nil {
		return err
	}
	cursor := spanCursor{spans: spans}
	for _, loc := range p.FindAllStringSubmatchIndex(text, -1) {
		if len(loc) < 2 || loc[0] < 0 {
			continue
		}
		if span, inside := cursor.covering(loc[0]); inside {
			tracer().Debugf("skipping match at %d within %v", loc[0], span)
			continue
		}
		tracer().Debugf("accepting match %q at %d", text[loc[0]:loc[1]], loc[0])
		cont, err := visit(loc)
		if err != nil || !cont {
			return err
		}
	}
	return nil
}

// spanCursor walks the ordered list of spans alongside the ascending matches.
type spanCursor struct {
	spans []tippex.Span
	inx   int
}

// covering advances the cursor to the first span whose delimited region
// ends behind pos and reports whether this region contains pos. pos must
// not decrease between calls.
func (c *spanCursor) covering(pos int) (tippex.Span, bool) {
	for c.inx < len(c.spans) {
		if _, end := c.spans[c.inx].Outer(); end > pos {
			break
		}
		c.inx++
	}
	if c.inx == len(c.spans) {
		return tippex.Span{}, false
	}
	span := c.spans[c.inx]
	return span, span.Covers(pos)
}

func groups(text string, loc []int) []string {
	g := make([]string, len(loc)/2)
	for i := range g {
		if loc[2*i] >= 0 && loc[2*i+1] >= loc[2*i] {
			g[i] = text[loc[2*i]:loc[2*i+1]]
		}
	}
	return g
}

// --- Replacing -------------------------------------------------------------

type replacement struct {
	start, end int
	content    string
}

// Replace replaces every match of p in text which does not start within a
// comment, string, template literal, regex literal or JSX text by the
// result of f. Replace always replaces all accepted matches, even for
// once-only patterns; option Strict rejects them.
//
// An error returned by f stops replacing and is returned unchanged,
// together with an empty string.
func Replace(text string, p Pattern, f ReplaceFunc, opts ...Option) (string, error) {
	cfg := configure(opts)
	if p == nil {
		return "", errors.New("match: pattern is nil")
	}
	if cfg.strict && !IsGlobal(p) {
		tracer().Errorf("replace: %v", ErrNotGlobal)
		return "", ErrNotGlobal
	}
	var repl []replacement
	err := accepted(text, Global(p), cfg, func(loc []int) (bool, error) {
		content, err := f(groups(text, loc), loc[0], text)
		if err != nil {
			return false, err
		}
		repl = append(repl, replacement{start: loc[0], end: loc[1], content: content})
		return true, nil
	})
	if err != nil {
		return "", err
	}
	tracer().Debugf("replacing %d matches", len(repl))
	return splice(text, repl), nil
}

// splice copies text, substituting replacements. Replacements are ordered
// and do not overlap.
func splice(text string, repl []replacement) string {
	if len(repl) == 0 {
		return text
	}
	var b strings.Builder
	pos := 0
	for _, r := range repl {
		b.WriteString(text[pos:r.start])
		b.WriteString(r.content)
		pos = r.end
	}
	b.WriteString(text[pos:])
	return b.String()
}
