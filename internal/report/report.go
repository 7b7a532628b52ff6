package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/funvibe/minijava/internal/diagnostics"
	"github.com/funvibe/minijava/internal/symbols"
)

// Reporter renders the analysis results for the console: the token table,
// the variable table, the unused-variable list and the type-checking
// diagnostics.
type Reporter struct {
	out     io.Writer
	heading func(format string, a ...interface{}) string
	errText func(format string, a ...interface{}) string
	warn    func(format string, a ...interface{}) string
	good    func(format string, a ...interface{}) string
}

// New creates a Reporter. Mode is "auto", "always" or "never"; auto
// enables color only when out is a terminal.
func New(out io.Writer, mode string) *Reporter {
	enabled := mode == "always"
	if mode == "auto" {
		if f, ok := out.(*os.File); ok {
			enabled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
	}

	plain := fmt.Sprintf
	r := &Reporter{out: out, heading: plain, errText: plain, warn: plain, good: plain}
	if enabled {
		r.heading = color.New(color.FgCyan, color.Bold).SprintfFunc()
		r.errText = color.New(color.FgRed).SprintfFunc()
		r.warn = color.New(color.FgYellow).SprintfFunc()
		r.good = color.New(color.FgGreen).SprintfFunc()
	}
	return r
}

func (r *Reporter) Section(title string) {
	fmt.Fprintln(r.out, r.heading("========================================"))
	fmt.Fprintln(r.out, r.heading("%s", title))
	fmt.Fprintln(r.out, r.heading("========================================"))
}

// TokenTable prints the full token log in recognition order.
func (r *Reporter) TokenTable(tokens []symbols.TokenEntry) {
	fmt.Fprintf(r.out, "%-5s %-20s %-15s %5s %7s\n", "No.", "Token Type", "Lexeme", "Line", "Column")
	for i, entry := range tokens {
		fmt.Fprintf(r.out, "%-5d %-20s %-15s %5d %7d\n", i+1, entry.Type, entry.Lexeme, entry.Line, entry.Column)
	}
}

// VariableTable prints every variable still visible in the open frames.
func (r *Reporter) VariableTable(vars []*symbols.VariableInfo) {
	fmt.Fprintf(r.out, "%-16s %-9s %5s %6s %6s\n", "Variable Name", "Type", "Line", "Scope", "Used")
	for _, info := range vars {
		used := "No"
		if info.Used {
			used = "Yes"
		}
		fmt.Fprintf(r.out, "%-16s %-9s %5d %6d %6s\n", info.Name, info.Type, info.Line, info.ScopeLevel, used)
	}
}

// UnusedVariables prints the unused-variable warnings, if any.
func (r *Reporter) UnusedVariables(vars []*symbols.VariableInfo) {
	if len(vars) == 0 {
		return
	}
	r.Section("WARNINGS: UNUSED VARIABLES")
	for _, info := range vars {
		fmt.Fprintln(r.out, r.warn(" -> %s (line %d)", info.Name, info.Line))
	}
	fmt.Fprintln(r.out)
}

// TypeCheckResults prints the accumulated errors and warnings, or a green
// all-clear.
func (r *Reporter) TypeCheckResults(errors, warnings []*diagnostics.Diagnostic) {
	r.Section("TYPE CHECKING RESULTS")

	if len(errors) == 0 && len(warnings) == 0 {
		fmt.Fprintln(r.out, r.good("No type errors found!"))
		fmt.Fprintln(r.out)
		return
	}

	if len(errors) > 0 {
		fmt.Fprintln(r.out, r.errText("TYPE ERRORS:"))
		for _, d := range errors {
			fmt.Fprintln(r.out, r.errText("  %s", d.String()))
		}
	}
	if len(warnings) > 0 {
		fmt.Fprintln(r.out, r.warn("TYPE WARNINGS:"))
		for _, d := range warnings {
			fmt.Fprintln(r.out, r.warn("  %s", d.String()))
		}
	}
	fmt.Fprintln(r.out)
}

// Fatal prints an unrecoverable failure (lexical, syntax or symbol error).
func (r *Reporter) Fatal(err error) {
	fmt.Fprintln(r.out, r.errText("ERROR: %v", err))
}
