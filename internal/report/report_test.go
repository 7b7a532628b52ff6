package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/funvibe/minijava/internal/diagnostics"
	"github.com/funvibe/minijava/internal/report"
	"github.com/funvibe/minijava/internal/symbols"
	"github.com/funvibe/minijava/internal/token"
)

func TestTypeCheckResults(t *testing.T) {
	var buf bytes.Buffer
	r := report.New(&buf, "never")

	errs := []*diagnostics.Diagnostic{
		diagnostics.NewError(diagnostics.ErrA002, token.Token{Line: 5}, "Type mismatch: cannot assign String to int in variable 'x'"),
	}
	warns := []*diagnostics.Diagnostic{
		diagnostics.NewWarning(diagnostics.WarnA101, token.Token{Line: 7}, "Cannot determine type of if condition"),
	}
	r.TypeCheckResults(errs, warns)

	out := buf.String()
	if !strings.Contains(out, "TYPE ERRORS:") {
		t.Error("errors section missing")
	}
	if !strings.Contains(out, "[A002] Line 5: Type mismatch") {
		t.Errorf("error line missing from:\n%s", out)
	}
	if !strings.Contains(out, "[A101] Line 7: Cannot determine type") {
		t.Errorf("warning line missing from:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("color escapes present with mode=never")
	}
}

func TestTypeCheckResultsAllClear(t *testing.T) {
	var buf bytes.Buffer
	r := report.New(&buf, "never")

	r.TypeCheckResults(nil, nil)

	if !strings.Contains(buf.String(), "No type errors found!") {
		t.Errorf("all-clear missing from:\n%s", buf.String())
	}
}

func TestVariableTable(t *testing.T) {
	var buf bytes.Buffer
	r := report.New(&buf, "never")

	r.VariableTable([]*symbols.VariableInfo{
		{Name: "counter", Type: "int", Line: 2, Used: true, ScopeLevel: 0},
		{Name: "flag", Type: "boolean", Line: 3},
	})

	out := buf.String()
	for _, want := range []string{"counter", "int", "Yes", "flag", "boolean", "No"} {
		if !strings.Contains(out, want) {
			t.Errorf("%q missing from variable table:\n%s", want, out)
		}
	}
}

func TestUnusedVariablesSilentWhenEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := report.New(&buf, "never")

	r.UnusedVariables(nil)

	if buf.Len() != 0 {
		t.Errorf("empty unused list produced output:\n%s", buf.String())
	}
}
