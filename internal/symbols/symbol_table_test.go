package symbols_test

import (
	"errors"
	"testing"

	"github.com/funvibe/minijava/internal/symbols"
	"github.com/funvibe/minijava/internal/token"
)

func TestDeclareAndLookup(t *testing.T) {
	st := symbols.NewSymbolTable()

	if err := st.Declare("x", "int", 1); err != nil {
		t.Fatalf("Declare failed: %v", err)
	}

	info, ok := st.Lookup("x")
	if !ok {
		t.Fatal("Lookup(x) = not found, want found")
	}
	if info.Type != "int" || info.Line != 1 || info.ScopeLevel != 0 {
		t.Errorf("got %+v, want type=int line=1 scopeLevel=0", info)
	}
	if info.Used {
		t.Error("freshly declared variable marked used")
	}
}

func TestRedeclarationSameFrame(t *testing.T) {
	st := symbols.NewSymbolTable()

	if err := st.Declare("x", "int", 1); err != nil {
		t.Fatalf("first Declare failed: %v", err)
	}

	err := st.Declare("x", "int", 2)
	if err == nil {
		t.Fatal("second Declare in same frame succeeded, want RedeclarationError")
	}
	var redecl *symbols.RedeclarationError
	if !errors.As(err, &redecl) {
		t.Fatalf("got %T, want *RedeclarationError", err)
	}
	if redecl.Line != 2 {
		t.Errorf("error references line %d, want 2", redecl.Line)
	}
}

func TestShadowingAllowed(t *testing.T) {
	st := symbols.NewSymbolTable()

	if err := st.Declare("x", "int", 1); err != nil {
		t.Fatalf("outer Declare failed: %v", err)
	}
	st.EnterScope()
	if err := st.Declare("x", "String", 2); err != nil {
		t.Fatalf("shadowing Declare failed: %v", err)
	}

	info, ok := st.Lookup("x")
	if !ok || info.Type != "String" {
		t.Errorf("inner lookup = %+v, want the String shadow", info)
	}
	if info.ScopeLevel != 1 {
		t.Errorf("shadow scopeLevel = %d, want 1", info.ScopeLevel)
	}

	st.ExitScope()
	info, ok = st.Lookup("x")
	if !ok || info.Type != "int" {
		t.Errorf("outer lookup after exit = %+v, want the int original", info)
	}
}

func TestShadowVisibilityAfterExit(t *testing.T) {
	st := symbols.NewSymbolTable()

	st.EnterScope()
	if err := st.Declare("y", "int", 5); err != nil {
		t.Fatalf("Declare failed: %v", err)
	}
	st.ExitScope()

	if _, ok := st.Lookup("y"); ok {
		t.Error("Lookup(y) after exit = found, want not found")
	}
	if st.IsDeclared("y") {
		t.Error("IsDeclared(y) after exit = true, want false")
	}
}

func TestMarkUsed(t *testing.T) {
	st := symbols.NewSymbolTable()

	if err := st.Declare("x", "int", 1); err != nil {
		t.Fatalf("Declare failed: %v", err)
	}
	if err := st.MarkUsed("x"); err != nil {
		t.Fatalf("MarkUsed failed: %v", err)
	}
	info, _ := st.Lookup("x")
	if !info.Used {
		t.Error("Used = false after MarkUsed")
	}
}

func TestMarkUsedUndeclared(t *testing.T) {
	st := symbols.NewSymbolTable()

	err := st.MarkUsed("ghost")
	if err == nil {
		t.Fatal("MarkUsed(ghost) succeeded, want UseBeforeDeclarationError")
	}
	var useErr *symbols.UseBeforeDeclarationError
	if !errors.As(err, &useErr) {
		t.Fatalf("got %T, want *UseBeforeDeclarationError", err)
	}
}

func TestMarkUsedResolvesOuterFrame(t *testing.T) {
	st := symbols.NewSymbolTable()

	if err := st.Declare("x", "int", 1); err != nil {
		t.Fatalf("Declare failed: %v", err)
	}
	st.EnterScope()
	if err := st.MarkUsed("x"); err != nil {
		t.Fatalf("MarkUsed from inner frame failed: %v", err)
	}
	st.ExitScope()

	info, _ := st.Lookup("x")
	if !info.Used {
		t.Error("outer variable not marked used from inner frame")
	}
}

func TestExitScopeGuardsGlobalFrame(t *testing.T) {
	st := symbols.NewSymbolTable()

	// Unbalanced exits must not pop the global frame.
	st.ExitScope()
	st.ExitScope()

	if st.ScopeLevel() != 0 {
		t.Errorf("ScopeLevel = %d, want 0", st.ScopeLevel())
	}
	if err := st.Declare("x", "int", 1); err != nil {
		t.Fatalf("Declare after unbalanced exits failed: %v", err)
	}
}

func TestScopeLevels(t *testing.T) {
	st := symbols.NewSymbolTable()

	if st.ScopeLevel() != 0 {
		t.Fatalf("initial ScopeLevel = %d, want 0", st.ScopeLevel())
	}
	st.EnterScope()
	st.EnterScope()
	if st.ScopeLevel() != 2 {
		t.Fatalf("ScopeLevel after two enters = %d, want 2", st.ScopeLevel())
	}
	if err := st.Declare("deep", "int", 3); err != nil {
		t.Fatalf("Declare failed: %v", err)
	}
	info, _ := st.Lookup("deep")
	if info.ScopeLevel != 2 {
		t.Errorf("ScopeLevel recorded = %d, want 2", info.ScopeLevel)
	}
	st.ExitScope()
	st.ExitScope()
	if st.ScopeLevel() != 0 {
		t.Fatalf("ScopeLevel after exits = %d, want 0", st.ScopeLevel())
	}
}

// Unused reporting reads the frames open at call time: a variable whose
// scope has closed is excluded even if it was never referenced.
func TestUnusedVariablesSnapshot(t *testing.T) {
	st := symbols.NewSymbolTable()

	if err := st.Declare("global", "int", 1); err != nil {
		t.Fatalf("Declare failed: %v", err)
	}
	st.EnterScope()
	if err := st.Declare("local", "int", 2); err != nil {
		t.Fatalf("Declare failed: %v", err)
	}
	st.ExitScope()

	unused := st.UnusedVariables()
	if len(unused) != 1 {
		t.Fatalf("got %d unused variables, want 1", len(unused))
	}
	if unused[0].Name != "global" {
		t.Errorf("unused[0] = %s, want global (local's frame is closed)", unused[0].Name)
	}
}

func TestUnusedVariablesExcludesUsed(t *testing.T) {
	st := symbols.NewSymbolTable()

	st.Declare("a", "int", 1)
	st.Declare("b", "int", 2)
	st.MarkUsed("a")

	unused := st.UnusedVariables()
	if len(unused) != 1 || unused[0].Name != "b" {
		t.Errorf("unused = %v, want just b", names(unused))
	}
}

func TestTokenLogOrder(t *testing.T) {
	st := symbols.NewSymbolTable()

	st.AddToken(token.Token{Type: token.INT, Lexeme: "int", Line: 1, Column: 1})
	st.AddToken(token.Token{Type: token.IDENT, Lexeme: "x", Line: 1, Column: 5})
	st.AddToken(token.Token{Type: token.SEMICOLON, Lexeme: ";", Line: 1, Column: 6})

	tokens := st.Tokens()
	if len(tokens) != 3 {
		t.Fatalf("got %d tokens, want 3", len(tokens))
	}
	if tokens[0].Lexeme != "int" || tokens[1].Lexeme != "x" || tokens[2].Lexeme != ";" {
		t.Errorf("token log out of order: %v", tokens)
	}
}

func names(vars []*symbols.VariableInfo) []string {
	out := make([]string, len(vars))
	for i, v := range vars {
		out[i] = v.Name
	}
	return out
}
