package location

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestResolve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tippex.location")
	defer teardown()
	//
	text := "ab\ncdé\nf"
	for i, test := range []struct {
		offset    int
		line, col int
	}{
		{offset: 0, line: 1, col: 1},
		{offset: 2, line: 1, col: 3},
		{offset: 3, line: 2, col: 1},
		{offset: 5, line: 2, col: 3},
		{offset: 7, line: 2, col: 4}, // behind the two-byte 'é'
		{offset: 8, line: 3, col: 1},
		{offset: 9, line: 3, col: 2},
		{offset: 100, line: 3, col: 2},
		{offset: -4, line: 1, col: 1},
	} {
		line, col := Resolve(text, test.offset)
		if line != test.line || col != test.col {
			t.Errorf("test %d: expected %d:%d for offset %d, have %d:%d",
				i, test.line, test.col, test.offset, line, col)
		}
	}
}

func TestLocate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tippex.location")
	defer teardown()
	//
	pos := Locate("x\ny", 2)
	if pos.String() != "2:1" || pos.Offset != 2 {
		t.Errorf("expected position 2:1 @2, have %s @%d", pos, pos.Offset)
	}
}

func TestSnippet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tippex.location")
	defer teardown()
	//
	text := "const a = 1;\nconst b = 'oops;\nconst c = 3;\nconst d = 4;"
	offset := strings.Index(text, "'")
	expected := "1 | const a = 1;\n" +
		"2 | const b = 'oops;\n" +
		"  |           ^\n" +
		"3 | const c = 3;\n"
	if s := Snippet(text, offset); s != expected {
		t.Errorf("unexpected snippet:\n%s\nexpected:\n%s", s, expected)
	}
	// first line has no predecessor
	if s := Snippet("x = `\ny", 4); s != "1 | x = `\n  |     ^\n2 | y\n" {
		t.Errorf("unexpected snippet for first line:\n%s", s)
	}
}
