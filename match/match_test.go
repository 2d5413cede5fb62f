package match

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/coregx/coregex"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tippex"
	"github.com/npillmayer/tippex/scanner"
)

var imports = "import a from './a.js';\n" +
	"import b from './b.js' // import c from './c.js'\n" +
	"const s = \"import d from './d.js'\";\n" +
	"/* import e from './e.js' */\n" +
	"import f from './f.js';\n"

var requires = "var a = require('./a.js');\n" +
	"var b = require('./b.js') // import c from './c.js'\n" +
	"const s = \"import d from './d.js'\";\n" +
	"/* import e from './e.js' */\n" +
	"var f = require('./f.js');\n"

const importPattern = `import (\w+) from '([^']+)'`

type imported struct {
	match, name, source string
}

func collect(t *testing.T, p Pattern, opts ...Option) []imported {
	var results []imported
	err := Match(imports, p, func(groups []string, offset int, text string) error {
		if len(groups) != 3 {
			t.Errorf("expected 3 groups, have %d", len(groups))
		}
		if text != imports || !strings.HasPrefix(text[offset:], groups[0]) {
			t.Errorf("offset %d does not point to match %q", offset, groups[0])
		}
		results = append(results, imported{groups[0], groups[1], groups[2]})
		return nil
	}, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return results
}

func TestMatchImports(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tippex.match")
	defer teardown()
	//
	results := collect(t, regexp.MustCompile(importPattern))
	expected := []imported{
		{"import a from './a.js'", "a", "./a.js"},
		{"import b from './b.js'", "b", "./b.js"},
		{"import f from './f.js'", "f", "./f.js"},
	}
	if len(results) != len(expected) {
		t.Fatalf("expected %d matches, have %v", len(expected), results)
	}
	for i, r := range results {
		if r != expected[i] {
			t.Errorf("match #%d: expected %v, have %v", i, expected[i], r)
		}
	}
}

func TestMatchOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tippex.match")
	defer teardown()
	//
	results := collect(t, Once(regexp.MustCompile(importPattern)))
	if len(results) != 1 || results[0].name != "a" {
		t.Errorf("expected only the first import, have %v", results)
	}
	// first match is in a comment, first accepted match follows
	var offsets []int
	err := Match("// x\nx = 1; x = 2", Once(regexp.MustCompile(`x`)), func(_ []string, offset int, _ string) error {
		offsets = append(offsets, offset)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(offsets) != 1 || offsets[0] != 5 {
		t.Errorf("expected single match at 5, have %v", offsets)
	}
}

func TestMatchCoregex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tippex.match")
	defer teardown()
	//
	results := collect(t, coregex.MustCompile(importPattern))
	if len(results) != 3 {
		t.Fatalf("expected 3 matches, have %v", results)
	}
	if results[1].name != "b" || results[1].source != "./b.js" {
		t.Errorf("unexpected second match %v", results[1])
	}
}

func TestStrictPattern(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tippex.match")
	defer teardown()
	//
	re := regexp.MustCompile(importPattern)
	if !IsGlobal(re) || IsGlobal(Once(re)) || !IsGlobal(Global(Once(re))) {
		t.Errorf("global flag not reported correctly")
	}
	err := Match(imports, Once(re), func([]string, int, string) error { return nil }, Strict())
	if !errors.Is(err, ErrNotGlobal) {
		t.Errorf("expected ErrNotGlobal, have %v", err)
	}
	_, err = Replace(imports, Once(re), func(g []string, _ int, _ string) (string, error) {
		return g[0], nil
	}, Strict())
	if !errors.Is(err, ErrNotGlobal) {
		t.Errorf("expected ErrNotGlobal for replace, have %v", err)
	}
	if err = Match(imports, re, func([]string, int, string) error { return nil }, Strict()); err != nil {
		t.Errorf("expected global pattern to pass strict mode, have %v", err)
	}
}

func TestScanOptions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tippex.match")
	defer teardown()
	//
	results := collect(t, regexp.MustCompile(importPattern), Scan(scanner.Skip(tippex.String)))
	if len(results) != 4 || results[2].name != "d" {
		t.Errorf("expected import within string to be accepted, have %v", results)
	}
}

func TestMatchErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tippex.match")
	defer teardown()
	//
	stop := errors.New("stop")
	calls := 0
	err := Match(imports, regexp.MustCompile(importPattern), func([]string, int, string) error {
		calls++
		return stop
	})
	if err != stop || calls != 1 {
		t.Errorf("expected callback error after first call, have %v after %d calls", err, calls)
	}
	err = Match("x = 'abc", regexp.MustCompile(`x`), func([]string, int, string) error { return nil })
	if !errors.Is(err, scanner.ErrUnterminated) {
		t.Errorf("expected scanner error, have %v", err)
	}
}

func TestGroups(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tippex.match")
	defer teardown()
	//
	results, err := All("a; b; 'a'", regexp.MustCompile(`(a)|(b)`))
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, have %v", results)
	}
	if g := results[1].Groups; len(g) != 3 || g[0] != "b" || g[1] != "" || g[2] != "b" {
		t.Errorf("unexpected groups %q", g)
	}
	if results[1].Start != 3 || results[1].End != 4 {
		t.Errorf("unexpected position (%d…%d)", results[1].Start, results[1].End)
	}
}

func TestReplace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tippex.match")
	defer teardown()
	//
	toRequire := func(g []string, _ int, _ string) (string, error) {
		return fmt.Sprintf("var %s = require('%s')", g[1], g[2]), nil
	}
	result, err := Replace(imports, regexp.MustCompile(importPattern), toRequire)
	if err != nil {
		t.Fatal(err)
	}
	if result != requires {
		t.Errorf("unexpected result:\n%s", result)
	}
	// Replace is exhaustive for once-only patterns, too
	result, err = Replace(imports, Once(coregex.MustCompile(importPattern)), toRequire)
	if err != nil {
		t.Fatal(err)
	}
	if result != requires {
		t.Errorf("unexpected result for once-only pattern:\n%s", result)
	}
}

func TestReplaceError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tippex.match")
	defer teardown()
	//
	fail := errors.New("fail")
	result, err := Replace(imports, regexp.MustCompile(importPattern), func(g []string, _ int, _ string) (string, error) {
		if g[1] == "b" {
			return "", fail
		}
		return "x", nil
	})
	if err != fail || result != "" {
		t.Errorf("expected callback error and empty result, have %v, %q", err, result)
	}
}

func TestReplaceIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tippex.match")
	defer teardown()
	//
	texts := []string{
		imports,
		"`a${ `b${c}d` }e` + <a href='x'>{/* c */ y}</a> // end",
		"if (x) /foo/.test(y) // z\nw = 'v' / 2",
	}
	identity := func(g []string, _ int, _ string) (string, error) {
		return g[0], nil
	}
	for _, pattern := range []string{`\w+`, `x*`, `.`, `\b`, `'[^']*'`, `(?s).*`} {
		for i, text := range texts {
			result, err := Replace(text, regexp.MustCompile(pattern), identity)
			if err != nil {
				t.Errorf("pattern %q, text %d: unexpected error %v", pattern, i, err)
				continue
			}
			if result != text {
				t.Errorf("pattern %q, text %d: identity replacement changed text to %q", pattern, i, result)
			}
		}
	}
}

func TestMatchExclusion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tippex.match")
	defer teardown()
	//
	text := "`a${ `b${c}d` }e` + <a href='x'>{/* c */ y}</a> // end"
	spans, err := scanner.Find(text)
	if err != nil {
		t.Fatal(err)
	}
	results, err := All(text, regexp.MustCompile(`\w|\s`))
	if err != nil {
		t.Fatal(err)
	}
	if len(results) == 0 {
		t.Fatal("expected some matches")
	}
	for _, r := range results {
		for _, span := range spans {
			if span.Covers(r.Start) {
				t.Errorf("match at %d accepted within %v", r.Start, span)
			}
		}
	}
	// delimiters belong to their spans
	for i, c := range []struct{ text, pattern string }{
		{"x = 1; // TODO fix me", `//.*`},
		{"x = 'secret' + y", `'\w+'`},
		{"a = /abc/.test(s)", `/abc/`},
		{"s = \"a\" + \"b\"", `" \+ "`},
		{"'abc'", `'`},
		{"t = `a${b}`", `\$\{b\}`},
		{"/* a */ b", `\*/ b`},
	} {
		results, err := All(c.text, regexp.MustCompile(c.pattern))
		if err != nil {
			t.Fatal(err)
		}
		if len(results) != 0 {
			t.Errorf("%d: expected match on delimiter to be rejected, have %v", i, results)
		}
	}
	// matches starting in code may extend into a span
	results, err = All("x = 'abc'", regexp.MustCompile(`= 'a`))
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Start != 2 {
		t.Errorf("expected match extending into string, have %v", results)
	}
}
