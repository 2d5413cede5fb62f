package match

import "errors"

// Pattern is a regular expression able to iterate over all matches of a
// text. *regexp.Regexp and *coregex.Regex are patterns.
//
// Every match is returned as a slice of index pairs, the first pair
// denoting the complete match, followed by one pair for each capture group.
// Groups which do not participate in a match have indices of -1.
type Pattern interface {
	FindAllStringSubmatchIndex(s string, n int) [][]int
}

// ErrNotGlobal is returned in strict mode for once-only patterns.
var ErrNotGlobal = errors.New("pattern must be configured for global matching")

// globalPattern is implemented by patterns which know whether they are
// global.
type globalPattern interface {
	Global() bool
}

// oncePattern marks a pattern as once-only.
type oncePattern struct {
	Pattern
}

func (oncePattern) Global() bool {
	return false
}

// Once wraps p as a once-only pattern: Match will report only the first
// accepted match.
func Once(p Pattern) Pattern {
	if p == nil || !IsGlobal(p) {
		return p
	}
	return oncePattern{Pattern: p}
}

// Global returns p configured for global matching. It does not modify p.
func Global(p Pattern) Pattern {
	if o, ok := p.(oncePattern); ok {
		return o.Pattern
	}
	return p
}

// IsGlobal reports whether p is configured for global matching. Patterns
// which do not tell are global.
func IsGlobal(p Pattern) bool {
	if g, ok := p.(globalPattern); ok {
		return g.Global()
	}
	return true
}
