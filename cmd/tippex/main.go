package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/chzyer/readline"
	"github.com/coregx/coregex"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/tippex"
	"github.com/npillmayer/tippex/erase"
	"github.com/npillmayer/tippex/match"
	"github.com/npillmayer/tippex/scanner"
)

var errUsage = errors.New("usage: tippex [flags] find|erase FILE | match PATTERN FILE | replace PATTERN TEMPLATE FILE")

// traceKeys are the trace keys of the library packages.
var traceKeys = []string{"tippex.cli", "tippex.scanner", "tippex.erase", "tippex.match"}

func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	types := flag.String("types", "all", "Span types to find or erase")
	engine := flag.String("engine", "std", "Regular expression engine [std|coregex]")
	flag.Parse()
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(traceLevel(*tlevel))
	}
	//
	// set up the tool
	set, err := tippex.ParseTypes(*types)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	compile, err := compiler(*engine)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	tool := &Tool{record: set, compile: compile}
	tracer().Infof("Recording span types %s, engine is %s", set, *engine)
	//
	// run a single command or go into interactive mode
	if flag.NArg() == 0 {
		if err := tool.REPL(); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(3)
		}
		return
	}
	cmd, params, filename, err := splitArgs(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	input, err := readInput(filename)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	out, err := tool.Execute(cmd, params, input)
	if errors.Is(err, errUsage) {
		fmt.Fprintln(os.Stderr, errUsage.Error())
		os.Exit(2)
	} else if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	fmt.Print(out)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// splitArgs separates a command line into command, parameters and input
// file. The input file is always the last argument.
func splitArgs(args []string) (cmd string, params []string, filename string, err error) {
	if len(args) < 2 {
		return "", nil, "", errUsage
	}
	return args[0], args[1 : len(args)-1], args[len(args)-1], nil
}

func readInput(filename string) (string, error) {
	if filename == "-" {
		filename = os.Stdin.Name()
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("unable to read input: %w", err)
	}
	return string(b), nil
}

// compiler selects the regular expression engine for patterns.
func compiler(engine string) (func(string) (match.Pattern, error), error) {
	switch strings.ToLower(engine) {
	case "std", "":
		return func(p string) (match.Pattern, error) {
			return regexp.Compile(p)
		}, nil
	case "coregex":
		return func(p string) (match.Pattern, error) {
			return coregex.Compile(p)
		}, nil
	}
	return nil, fmt.Errorf("unknown regular expression engine %q", engine)
}

// Tool executes commands.
type Tool struct {
	record  tippex.TypeSet
	compile func(string) (match.Pattern, error)
	repl    *readline.Instance
	tree    bool // render spans as a tree instead of returning them
}

// Execute runs command cmd with arguments args on input and returns the output.
func (tool *Tool) Execute(cmd string, args []string, input string) (string, error) {
	tracer().Debugf("command %s %v on %d bytes", cmd, args, len(input))
	switch cmd {
	case "find":
		if len(args) != 0 {
			return "", errUsage
		}
		spans, err := scanner.Find(input, scanner.Record(tool.record))
		if err != nil {
			return "", err
		}
		return tool.renderSpans(spans), nil
	case "erase":
		if len(args) != 0 {
			return "", errUsage
		}
		return erase.Erase(input, scanner.Record(tool.record))
	case "match":
		if len(args) != 1 {
			return "", errUsage
		}
		p, err := tool.compile(args[0])
		if err != nil {
			return "", err
		}
		var b strings.Builder
		err = match.Match(input, p, func(groups []string, offset int, _ string) error {
			fmt.Fprintf(&b, "%d: %q\n", offset, groups[0])
			return nil
		}, match.Scan(scanner.Record(tool.record)))
		return b.String(), err
	case "replace":
		if len(args) != 2 {
			return "", errUsage
		}
		p, err := tool.compile(args[0])
		if err != nil {
			return "", err
		}
		template := args[1]
		return match.Replace(input, p, func(groups []string, _ int, _ string) (string, error) {
			return expand(template, groups), nil
		}, match.Scan(scanner.Record(tool.record)))
	}
	return "", errUsage
}

// expand replaces $0…$9 in template by the corresponding groups.
func expand(template string, groups []string) string {
	var b strings.Builder
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c == '$' && i+1 < len(template) && template[i+1] >= '0' && template[i+1] <= '9' {
			if n := int(template[i+1] - '0'); n < len(groups) {
				b.WriteString(groups[n])
			}
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// renderSpans lists spans, one per line. In interactive mode the spans are
// displayed as a tree on the terminal instead.
func (tool *Tool) renderSpans(spans []tippex.Span) string {
	ll := pterm.LeveledList{pterm.LeveledListItem{Level: 0, Text: fmt.Sprintf("%d spans", len(spans))}}
	var b strings.Builder
	for _, span := range spans {
		line := fmt.Sprintf("%v %q", span, span.Value)
		ll = append(ll, pterm.LeveledListItem{Level: 1, Text: line})
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if !tool.tree {
		return b.String()
	}
	tracer().Debugf("|ll| = %d", len(ll))
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
	return ""
}

// --- Interactive mode ------------------------------------------------------

// REPL starts interactive mode. Every input line is a command, followed by
// its arguments and a JavaScript snippet.
func (tool *Tool) REPL() error {
	repl, err := readline.New("tippex> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	tool.repl = repl
	tool.tree = true
	pterm.Info.Println("Welcome to tippex")
	tracer().Infof("Quit with <ctrl>D")
	for {
		line, err := tool.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		out, err := tool.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if out != "" {
			pterm.Println(out)
		}
	}
	println("Good bye!")
	return nil
}

// Eval evaluates a single line of interactive input.
func (tool *Tool) Eval(line string) (string, error) {
	cmd, rest := splitWord(line)
	var args []string
	switch cmd {
	case "match":
		var p string
		p, rest = splitWord(rest)
		args = []string{p}
	case "replace":
		var p, tmpl string
		p, rest = splitWord(rest)
		tmpl, rest = splitWord(rest)
		args = []string{p, tmpl}
	}
	out, err := tool.Execute(cmd, args, rest)
	if err == nil && cmd == "erase" {
		out = "|" + out + "|"
	}
	return out, err
}

func splitWord(s string) (string, string) {
	s = strings.TrimLeft(s, " \t")
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
