package symbols

import (
	"fmt"
	"sort"

	"github.com/funvibe/minijava/internal/token"
)

// VariableInfo records one declared variable: its declared type, the line
// of the declaration, whether it has been referenced, and the scope depth
// at which it was declared.
type VariableInfo struct {
	Name       string
	Type       string
	Line       int
	Used       bool
	ScopeLevel int
}

// TokenEntry is one record of the append-only token log fed by the lexer.
type TokenEntry struct {
	Type   string
	Lexeme string
	Line   int
	Column int
}

// RedeclarationError is fatal: the same name was declared twice in one
// open frame. Shadowing an outer frame is not a redeclaration.
type RedeclarationError struct {
	Name string
	Line int // line of the offending (second) declaration
}

func (e *RedeclarationError) Error() string {
	return fmt.Sprintf("Line %d: variable '%s' already declared in this scope", e.Line, e.Name)
}

// UseBeforeDeclarationError is fatal: an identifier was referenced with no
// matching declaration in any open frame.
type UseBeforeDeclarationError struct {
	Name string
}

func (e *UseBeforeDeclarationError) Error() string {
	return fmt.Sprintf("variable '%s' used before declaration", e.Name)
}

// SymbolTable maintains the lexical scope stack and the token log for one
// compilation unit. Frame 0 is the global scope and is never popped. The
// parser mutates the table while it builds the AST: declarations and scope
// boundaries are recorded in the order source constructs are recognized.
type SymbolTable struct {
	tokens []TokenEntry
	scopes []map[string]*VariableInfo
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		scopes: []map[string]*VariableInfo{make(map[string]*VariableInfo)},
	}
}

// AddToken appends one record to the token log.
func (st *SymbolTable) AddToken(tok token.Token) {
	st.tokens = append(st.tokens, TokenEntry{
		Type:   string(tok.Type),
		Lexeme: tok.Lexeme,
		Line:   tok.Line,
		Column: tok.Column,
	})
}

// Tokens returns the token log in recognition order.
func (st *SymbolTable) Tokens() []TokenEntry {
	return st.tokens
}

// EnterScope pushes a new empty frame.
func (st *SymbolTable) EnterScope() {
	st.scopes = append(st.scopes, make(map[string]*VariableInfo))
}

// ExitScope pops the innermost frame. Popping the global frame is a no-op:
// the guard protects against unbalanced exits but does not report them, so
// callers must still match enters and exits themselves.
func (st *SymbolTable) ExitScope() {
	if len(st.scopes) > 1 {
		st.scopes = st.scopes[:len(st.scopes)-1]
	}
}

// ScopeLevel returns the current depth (0 = global).
func (st *SymbolTable) ScopeLevel() int {
	return len(st.scopes) - 1
}

// Declare inserts a variable into the innermost frame. Declaring a name
// that already exists in the innermost frame fails with
// *RedeclarationError; a matching name in an outer frame shadows instead.
func (st *SymbolTable) Declare(name, typ string, line int) error {
	current := st.scopes[len(st.scopes)-1]
	if _, exists := current[name]; exists {
		return &RedeclarationError{Name: name, Line: line}
	}
	current[name] = &VariableInfo{
		Name:       name,
		Type:       typ,
		Line:       line,
		ScopeLevel: st.ScopeLevel(),
	}
	return nil
}

// Lookup searches frames from innermost to outermost and returns the first
// match.
func (st *SymbolTable) Lookup(name string) (*VariableInfo, bool) {
	for i := len(st.scopes) - 1; i >= 0; i-- {
		if info, ok := st.scopes[i][name]; ok {
			return info, true
		}
	}
	return nil, false
}

// IsDeclared reports whether name resolves in any open frame.
func (st *SymbolTable) IsDeclared(name string) bool {
	_, ok := st.Lookup(name)
	return ok
}

// ExistsInCurrentScope reports whether name is declared in the innermost
// frame only.
func (st *SymbolTable) ExistsInCurrentScope(name string) bool {
	_, ok := st.scopes[len(st.scopes)-1][name]
	return ok
}

// MarkUsed flags a variable as referenced. Referencing a name absent from
// every open frame fails with *UseBeforeDeclarationError.
func (st *SymbolTable) MarkUsed(name string) error {
	info, ok := st.Lookup(name)
	if !ok {
		return &UseBeforeDeclarationError{Name: name}
	}
	info.Used = true
	return nil
}

// UnusedVariables returns every unreferenced variable in the frames open
// at call time, outermost first. Variables whose scope has already closed
// are gone from the stack and therefore never reported; after a full parse
// only the global frame remains, so the report covers globals only.
func (st *SymbolTable) UnusedVariables() []*VariableInfo {
	var unused []*VariableInfo
	for _, scope := range st.scopes {
		for _, info := range scope {
			if !info.Used {
				unused = append(unused, info)
			}
		}
	}
	sortByLine(unused)
	return unused
}

// Variables returns every variable in the frames open at call time,
// outermost first, sorted by declaration line within each frame.
func (st *SymbolTable) Variables() []*VariableInfo {
	var all []*VariableInfo
	for _, scope := range st.scopes {
		var frame []*VariableInfo
		for _, info := range scope {
			frame = append(frame, info)
		}
		sortByLine(frame)
		all = append(all, frame...)
	}
	return all
}

func sortByLine(vars []*VariableInfo) {
	sort.Slice(vars, func(i, j int) bool {
		if vars[i].Line != vars[j].Line {
			return vars[i].Line < vars[j].Line
		}
		return vars[i].Name < vars[j].Name
	})
}
