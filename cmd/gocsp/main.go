// Command gocsp loads a textual constraint model, propagates it to a
// fixed point, and prints the narrowed domains.
//
// Usage:
//
//	gocsp [-stats] [-v] <file.csp>
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	"github.com/gitrdm/gocsp/internal/modelfile"
	"github.com/gitrdm/gocsp/pkg/csp"
)

func main() {
	stats := flag.Bool("stats", false, "print propagation statistics")
	verbose := flag.Bool("v", false, "trace propagation steps")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: gocsp [-stats] [-v] <file.csp>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	if *verbose {
		commonlog.Configure(1, nil)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		color.Red("failed to read file: %s", err)
		os.Exit(1)
	}

	file, err := modelfile.Parse(path, string(source))
	if err != nil {
		reportParseError(string(source), err)
		os.Exit(1)
	}

	monitor := csp.NewMonitor()
	model, err := csp.New(csp.WithMonitor(monitor))
	if err != nil {
		color.Red("failed to create model: %s", err)
		os.Exit(1)
	}

	vars, err := file.Build(model)
	if err != nil {
		color.Red("✗ %s", err)
		os.Exit(1)
	}

	// print in declaration order; the map itself is unordered
	for _, st := range file.Statements {
		if st.Var != nil {
			fmt.Println(vars[st.Var.Name])
		}
	}
	color.Green("✓ propagated %s to a fixed point", path)

	if *stats {
		fmt.Print(monitor.Snapshot())
	}
}

// reportParseError prints a friendly caret-style parse error message.
func reportParseError(src string, err error) {
	pe, ok := err.(participle.Error)
	if !ok {
		color.Red("unexpected error: %s", err)
		return
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		color.Red("syntax error at unknown location: %s", err)
		return
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", pos.Column-1) + "^"

	color.Red("✗ syntax error in %s at line %d, column %d:", pos.Filename, pos.Line, pos.Column)
	fmt.Println(line)
	color.HiRed(caret)
	fmt.Printf("→ %s\n", pe.Message())
}
