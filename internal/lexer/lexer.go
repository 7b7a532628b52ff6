package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/funvibe/minijava/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
		l.ch = r
		l.position = l.readPosition
		l.readPosition += w
		l.column++
		return
	}

	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	var tok token.Token

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = l.twoCharToken(token.EQ, "==")
		} else {
			tok = l.newToken(token.ASSIGN)
		}
	case '+':
		if l.peekChar() == '+' {
			l.readChar()
			tok = l.twoCharToken(token.INCR, "++")
		} else {
			tok = l.newToken(token.PLUS)
		}
	case '-':
		if l.peekChar() == '-' {
			l.readChar()
			tok = l.twoCharToken(token.DECR, "--")
		} else {
			tok = l.newToken(token.MINUS)
		}
	case '*':
		tok = l.newToken(token.ASTERISK)
	case '/':
		tok = l.newToken(token.SLASH)
	case '%':
		tok = l.newToken(token.PERCENT)
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = l.twoCharToken(token.NOT_EQ, "!=")
		} else {
			tok = l.newToken(token.BANG)
		}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = l.twoCharToken(token.LT_EQ, "<=")
		} else {
			tok = l.newToken(token.LT)
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = l.twoCharToken(token.GT_EQ, ">=")
		} else {
			tok = l.newToken(token.GT)
		}
	case '&':
		if l.peekChar() == '&' {
			l.readChar()
			tok = l.twoCharToken(token.AND, "&&")
		} else {
			tok = l.newToken(token.ILLEGAL)
		}
	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			tok = l.twoCharToken(token.OR, "||")
		} else {
			tok = l.newToken(token.ILLEGAL)
		}
	case ',':
		tok = l.newToken(token.COMMA)
	case ';':
		tok = l.newToken(token.SEMICOLON)
	case '.':
		tok = l.newToken(token.DOT)
	case '(':
		tok = l.newToken(token.LPAREN)
	case ')':
		tok = l.newToken(token.RPAREN)
	case '{':
		tok = l.newToken(token.LBRACE)
	case '}':
		tok = l.newToken(token.RBRACE)
	case '[':
		tok = l.newToken(token.LBRACKET)
	case ']':
		tok = l.newToken(token.RBRACKET)
	case '"':
		return l.readString()
	case '\'':
		return l.readCharLiteral()
	case 0:
		tok = token.Token{Type: token.EOF, Lexeme: "", Literal: "", Line: l.line, Column: l.column}
	default:
		if isLetter(l.ch) {
			return l.readIdentifier()
		}
		if unicode.IsDigit(l.ch) {
			return l.readNumber()
		}
		tok = l.newToken(token.ILLEGAL)
	}

	l.readChar()
	return tok
}

func (l *Lexer) newToken(tt token.Type) token.Token {
	lexeme := string(l.ch)
	return token.Token{Type: tt, Lexeme: lexeme, Literal: lexeme, Line: l.line, Column: l.column}
}

func (l *Lexer) twoCharToken(tt token.Type, lexeme string) token.Token {
	return token.Token{Type: tt, Lexeme: lexeme, Literal: lexeme, Line: l.line, Column: l.column - 1}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
			l.readChar()
		}
		if l.ch == '/' && l.peekChar() == '/' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}
		if l.ch == '/' && l.peekChar() == '*' {
			l.readChar()
			l.readChar()
			for l.ch != 0 && !(l.ch == '*' && l.peekChar() == '/') {
				l.readChar()
			}
			if l.ch != 0 {
				l.readChar() // '*'
				l.readChar() // '/'
			}
			continue
		}
		return
	}
}

func (l *Lexer) readIdentifier() token.Token {
	line, column := l.line, l.column
	start := l.position
	for isLetter(l.ch) || unicode.IsDigit(l.ch) {
		l.readChar()
	}
	lexeme := l.input[start:l.position]
	return token.Token{
		Type:    token.LookupIdent(lexeme),
		Lexeme:  lexeme,
		Literal: lexeme,
		Line:    line,
		Column:  column,
	}
}

// readNumber handles Java-style numeric literals: an optional fraction,
// and the L/f/d suffixes selecting long, float and double.
func (l *Lexer) readNumber() token.Token {
	line, column := l.line, l.column
	start := l.position
	isFloating := false

	for unicode.IsDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && unicode.IsDigit(l.peekChar()) {
		isFloating = true
		l.readChar()
		for unicode.IsDigit(l.ch) {
			l.readChar()
		}
	}

	tt := token.INT_LIT
	if isFloating {
		tt = token.DOUBLE_LIT
	}

	lexeme := l.input[start:l.position]
	literal := lexeme
	switch l.ch {
	case 'L', 'l':
		tt = token.LONG_LIT
		l.readChar()
		lexeme = l.input[start:l.position]
	case 'f', 'F':
		tt = token.FLOAT_LIT
		l.readChar()
		lexeme = l.input[start:l.position]
	case 'd', 'D':
		tt = token.DOUBLE_LIT
		l.readChar()
		lexeme = l.input[start:l.position]
	}

	return token.Token{Type: tt, Lexeme: lexeme, Literal: literal, Line: line, Column: column}
}

func (l *Lexer) readString() token.Token {
	line, column := l.line, l.column
	var sb strings.Builder
	l.readChar() // consume opening quote
	for l.ch != '"' && l.ch != 0 {
		if l.ch == '\\' {
			l.readChar()
			sb.WriteRune(unescape(l.ch))
		} else {
			sb.WriteRune(l.ch)
		}
		l.readChar()
	}
	if l.ch == 0 {
		return token.Token{Type: token.ILLEGAL, Lexeme: "unterminated string", Literal: sb.String(), Line: line, Column: column}
	}
	l.readChar() // consume closing quote
	literal := sb.String()
	return token.Token{Type: token.STRING_LIT, Lexeme: `"` + literal + `"`, Literal: literal, Line: line, Column: column}
}

func (l *Lexer) readCharLiteral() token.Token {
	line, column := l.line, l.column
	l.readChar() // consume opening quote
	var value rune
	if l.ch == '\\' {
		l.readChar()
		value = unescape(l.ch)
	} else {
		value = l.ch
	}
	l.readChar()
	if l.ch != '\'' {
		return token.Token{Type: token.ILLEGAL, Lexeme: "unterminated char literal", Literal: string(value), Line: line, Column: column}
	}
	l.readChar() // consume closing quote
	return token.Token{Type: token.CHAR_LIT, Lexeme: "'" + string(value) + "'", Literal: string(value), Line: line, Column: column}
}

func unescape(ch rune) rune {
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	default:
		return ch
	}
}

func isLetter(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_' || ch == '$'
}
