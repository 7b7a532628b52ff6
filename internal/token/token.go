package token

type Type string

// Token is a single lexeme recognized in the source, with its 1-based
// position. Literal holds the decoded value for literals (e.g. the string
// contents without quotes); for everything else it equals Lexeme.
type Token struct {
	Type    Type
	Lexeme  string
	Literal string
	Line    int
	Column  int
}

const (
	ILLEGAL Type = "ILLEGAL"
	EOF     Type = "EOF"

	IDENT Type = "IDENT"

	INT_LIT    Type = "INT_LIT"
	LONG_LIT   Type = "LONG_LIT"
	FLOAT_LIT  Type = "FLOAT_LIT"
	DOUBLE_LIT Type = "DOUBLE_LIT"
	CHAR_LIT   Type = "CHAR_LIT"
	STRING_LIT Type = "STRING_LIT"

	// Operators
	ASSIGN   Type = "="
	PLUS     Type = "+"
	MINUS    Type = "-"
	ASTERISK Type = "*"
	SLASH    Type = "/"
	PERCENT  Type = "%"
	BANG     Type = "!"
	INCR     Type = "++"
	DECR     Type = "--"

	EQ     Type = "=="
	NOT_EQ Type = "!="
	LT     Type = "<"
	GT     Type = ">"
	LT_EQ  Type = "<="
	GT_EQ  Type = ">="
	AND    Type = "&&"
	OR     Type = "||"

	// Delimiters
	COMMA     Type = ","
	SEMICOLON Type = ";"
	DOT       Type = "."
	LPAREN    Type = "("
	RPAREN    Type = ")"
	LBRACE    Type = "{"
	RBRACE    Type = "}"
	LBRACKET  Type = "["
	RBRACKET  Type = "]"

	// Keywords
	CLASS   Type = "CLASS"
	PUBLIC  Type = "PUBLIC"
	PRIVATE Type = "PRIVATE"
	STATIC  Type = "STATIC"
	VOID    Type = "VOID"
	RETURN  Type = "RETURN"
	IF      Type = "IF"
	ELSE    Type = "ELSE"
	WHILE   Type = "WHILE"
	DO      Type = "DO"
	FOR     Type = "FOR"
	NEW     Type = "NEW"
	TRUE    Type = "TRUE"
	FALSE   Type = "FALSE"

	// Primitive type keywords
	BYTE    Type = "BYTE"
	SHORT   Type = "SHORT"
	INT     Type = "INT"
	LONG    Type = "LONG"
	FLOAT   Type = "FLOAT"
	DOUBLE  Type = "DOUBLE"
	CHAR    Type = "CHAR"
	BOOLEAN Type = "BOOLEAN"
	STRING  Type = "STRING"
)

var keywords = map[string]Type{
	"class":   CLASS,
	"public":  PUBLIC,
	"private": PRIVATE,
	"static":  STATIC,
	"void":    VOID,
	"return":  RETURN,
	"if":      IF,
	"else":    ELSE,
	"while":   WHILE,
	"do":      DO,
	"for":     FOR,
	"new":     NEW,
	"true":    TRUE,
	"false":   FALSE,
	"byte":    BYTE,
	"short":   SHORT,
	"int":     INT,
	"long":    LONG,
	"float":   FLOAT,
	"double":  DOUBLE,
	"char":    CHAR,
	"boolean": BOOLEAN,
	"String":  STRING,
}

// LookupIdent maps an identifier to its keyword token type, or IDENT.
func LookupIdent(ident string) Type {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return IDENT
}

// typeKeywords maps type-keyword token types to the type names the
// semantic phase works with.
var typeKeywords = map[Type]string{
	BYTE:    "byte",
	SHORT:   "short",
	INT:     "int",
	LONG:    "long",
	FLOAT:   "float",
	DOUBLE:  "double",
	CHAR:    "char",
	BOOLEAN: "boolean",
	STRING:  "String",
}

// TypeName returns the source-level type name for a type keyword
// ("int", "String", ...) and false for any other token type.
func TypeName(tt Type) (string, bool) {
	name, ok := typeKeywords[tt]
	return name, ok
}

// IsTypeKeyword reports whether tt starts a declaration ("int x", ...).
func IsTypeKeyword(tt Type) bool {
	_, ok := typeKeywords[tt]
	return ok
}
