// Package lexer tokenizes Ruby Hash#inspect / pp output for the rhp grammar.
package lexer

import (
	"strings"

	"github.com/devtext/texttools/rhp/rhperr"
	"github.com/devtext/texttools/rhp/token"
)

var operatorSymbols = []string{
	"<=>", "===", "==", "!=", "<=", ">=", "<<", ">>", "[]=", "[]",
	"+@", "-@", "+", "-", "*", "**", "/", "%", "<", ">", "!", "~", "&", "|", "^", "=~",
}

// Lexer scans a source string into tokens one at a time.
type Lexer struct {
	src    string
	pos    int
	line   int
	column int
}

// New constructs a Lexer over src.
func New(src string) *Lexer {
	return &Lexer{src: src, line: 1, column: 1}
}

func (l *Lexer) peekByte() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peekByteAt(off int) byte {
	if l.pos+off >= len(l.src) {
		return 0
	}
	return l.src[l.pos+off]
}

func (l *Lexer) advance() byte {
	c := l.src[l.pos]
	l.pos++
	if c == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return c
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) {
		c := l.peekByte()
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			l.advance()
			continue
		}
		break
	}
}

func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isIdentStart(c byte) bool { return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isIdentChar(c byte) bool  { return isIdentStart(c) || isDigit(c) }

// NextToken returns the next token in the source, or a token of type EOF at
// the end of input. A malformed literal produces a *rhperr.ParseError.
func (l *Lexer) NextToken() (token.Token, error) {
	l.skipWhitespace()

	line, col := l.line, l.column
	if l.pos >= len(l.src) {
		return token.Token{Type: token.EOF, Line: line, Column: col}, nil
	}

	c := l.peekByte()

	switch {
	case c == '{':
		return l.lexLBrace(line, col)
	case c == '}':
		l.advance()
		return token.Token{Type: token.RBRACE, Literal: "}", Line: line, Column: col}, nil
	case c == '[':
		return l.lexLBracket(line, col)
	case c == ']':
		l.advance()
		return token.Token{Type: token.RBRACKET, Literal: "]", Line: line, Column: col}, nil
	case c == ',':
		l.advance()
		return token.Token{Type: token.COMMA, Literal: ",", Line: line, Column: col}, nil
	case c == '>':
		l.advance()
		return token.Token{Type: token.GT, Literal: ">", Line: line, Column: col}, nil
	case c == '@':
		l.advance()
		return token.Token{Type: token.AT, Literal: "@", Line: line, Column: col}, nil
	case c == '=' && l.peekByteAt(1) == '>':
		l.advance()
		l.advance()
		return token.Token{Type: token.HASH_ROCKET, Literal: "=>", Line: line, Column: col}, nil
	case c == '=':
		l.advance()
		return token.Token{Type: token.EQ, Literal: "=", Line: line, Column: col}, nil
	case c == '.':
		return l.lexDots(line, col)
	case c == ':':
		return l.lexColonOrSymbol(line, col)
	case c == '\'':
		return l.lexSingleQuoted(line, col)
	case c == '"':
		return l.lexDoubleQuoted(line, col)
	case c == '#' && l.peekByteAt(1) == '<':
		return l.lexObjectHead(line, col)
	case c == '-' && isDigit(l.peekByteAt(1)):
		return l.lexNumber(line, col)
	case c == '-' && strings.HasPrefix(l.src[l.pos:], "-Infinity"):
		l.pos += len("-Infinity")
		l.column += len("-Infinity")
		return token.Token{Type: token.NEG_INFINITY, Literal: "-Infinity", Line: line, Column: col}, nil
	case isDigit(c):
		return l.lexNumber(line, col)
	case isIdentStart(c):
		return l.lexIdentOrKeyword(line, col)
	default:
		l.advance()
		return token.Token{}, &rhperr.ParseError{Msg: "unexpected character", Line: line, Column: col, Found: string(c)}
	}
}

func (l *Lexer) lexLBrace(line, col int) (token.Token, error) {
	if strings.HasPrefix(l.src[l.pos:], "{...}") {
		l.pos += 5
		l.column += 5
		return token.Token{Type: token.CYCLIC_HASH, Literal: "{...}", Line: line, Column: col}, nil
	}
	l.advance()
	return token.Token{Type: token.LBRACE, Literal: "{", Line: line, Column: col}, nil
}

func (l *Lexer) lexLBracket(line, col int) (token.Token, error) {
	if strings.HasPrefix(l.src[l.pos:], "[...]") {
		l.pos += 5
		l.column += 5
		return token.Token{Type: token.CYCLIC_ARR, Literal: "[...]", Line: line, Column: col}, nil
	}
	l.advance()
	return token.Token{Type: token.LBRACKET, Literal: "[", Line: line, Column: col}, nil
}

func (l *Lexer) lexDots(line, col int) (token.Token, error) {
	if strings.HasPrefix(l.src[l.pos:], "...") {
		l.pos += 3
		l.column += 3
		return token.Token{Type: token.DOTDOTDOT, Literal: "...", Line: line, Column: col}, nil
	}
	if strings.HasPrefix(l.src[l.pos:], "..") {
		l.pos += 2
		l.column += 2
		return token.Token{Type: token.DOTDOT, Literal: "..", Line: line, Column: col}, nil
	}
	l.advance()
	return token.Token{}, &rhperr.ParseError{Msg: "unexpected '.'", Line: line, Column: col, Found: "."}
}

// lexColonOrSymbol handles ':' — either a bare COLON (JSON-style key
// separator) or the start of a SYMBOL literal.
func (l *Lexer) lexColonOrSymbol(line, col int) (token.Token, error) {
	l.advance() // consume ':'
	next := l.peekByte()

	switch {
	case next == '\'':
		l.advance()
		body, ok := l.scanUntilUnescaped('\'')
		if !ok {
			return token.Token{}, &rhperr.ParseError{Msg: "unterminated quoted symbol", Line: line, Column: col, Found: "EOF"}
		}
		return token.Token{Type: token.SYMBOL, Literal: decodeSingleQuoted(body), Quoted: true, Line: line, Column: col}, nil
	case next == '"':
		l.advance()
		body, ok := l.scanUntilUnescaped('"')
		if !ok {
			return token.Token{}, &rhperr.ParseError{Msg: "unterminated quoted symbol", Line: line, Column: col, Found: "EOF"}
		}
		decoded, _ := decodeDoubleQuoted(body)
		return token.Token{Type: token.SYMBOL, Literal: string(decoded), Quoted: true, Line: line, Column: col}, nil
	case isIdentStart(next):
		start := l.pos
		for l.pos < len(l.src) && isIdentChar(l.peekByte()) {
			l.advance()
		}
		if l.peekByte() == '?' || l.peekByte() == '!' || l.peekByte() == '=' {
			l.advance()
		}
		return token.Token{Type: token.SYMBOL, Literal: l.src[start:l.pos], Line: line, Column: col}, nil
	default:
		for _, op := range operatorSymbols {
			if strings.HasPrefix(l.src[l.pos:], op) {
				l.pos += len(op)
				l.column += len(op)
				return token.Token{Type: token.SYMBOL, Literal: op, Line: line, Column: col}, nil
			}
		}
		// Not a symbol start (e.g. whitespace, digit): bare colon, used as a
		// JSON-style hash key separator.
		return token.Token{Type: token.COLON, Literal: ":", Line: line, Column: col}, nil
	}
}

func (l *Lexer) scanUntilUnescaped(quote byte) (string, bool) {
	start := l.pos
	for l.pos < len(l.src) {
		c := l.peekByte()
		if c == '\\' && l.pos+1 < len(l.src) {
			l.advance()
			l.advance()
			continue
		}
		if c == quote {
			body := l.src[start:l.pos]
			l.advance()
			return body, true
		}
		l.advance()
	}
	return "", false
}

func (l *Lexer) lexSingleQuoted(line, col int) (token.Token, error) {
	l.advance()
	body, ok := l.scanUntilUnescaped('\'')
	if !ok {
		return token.Token{}, &rhperr.ParseError{Msg: "unterminated string literal", Line: line, Column: col, Found: "EOF"}
	}
	return token.Token{Type: token.STRING, Literal: decodeSingleQuoted(body), RawQuote: '\'', Line: line, Column: col}, nil
}

func (l *Lexer) lexDoubleQuoted(line, col int) (token.Token, error) {
	l.advance()
	body, ok := l.scanUntilUnescaped('"')
	if !ok {
		return token.Token{}, &rhperr.ParseError{Msg: "unterminated string literal", Line: line, Column: col, Found: "EOF"}
	}
	decoded, hasBinary := decodeDoubleQuoted(body)
	return token.Token{Type: token.STRING, Literal: string(decoded), RawQuote: '"', HasBinary: hasBinary, Line: line, Column: col}, nil
}

func (l *Lexer) lexObjectHead(line, col int) (token.Token, error) {
	l.advance() // '#'
	l.advance() // '<'
	start := l.pos
	for l.pos < len(l.src) {
		c := l.peekByte()
		if c == ' ' || c == '>' {
			break
		}
		l.advance()
	}
	return token.Token{Type: token.OBJECT_HEAD, Literal: l.src[start:l.pos], Line: line, Column: col}, nil
}

func (l *Lexer) lexNumber(line, col int) (token.Token, error) {
	start := l.pos
	// A leading '-' stays part of the literal text.
	if l.peekByte() == '-' {
		l.advance()
	}

	if l.peekByte() == '0' && (l.peekByteAt(1) == 'b' || l.peekByteAt(1) == 'B') {
		l.advance()
		l.advance()
		digStart := l.pos
		for isBinDigitOrUnderscore(l.peekByte()) {
			l.advance()
		}
		if l.pos == digStart {
			return token.Token{}, &rhperr.ParseError{Msg: "invalid binary literal", Line: line, Column: col, Found: l.src[start:l.pos]}
		}
		return token.Token{Type: token.INT, Literal: l.src[start:l.pos], NumFmt: token.FormatBinary, Line: line, Column: col}, nil
	}

	if l.peekByte() == '0' && (l.peekByteAt(1) == 'o' || l.peekByteAt(1) == 'O') {
		l.advance()
		l.advance()
		digStart := l.pos
		for isOctDigitOrUnderscore(l.peekByte()) {
			l.advance()
		}
		if l.pos == digStart {
			return token.Token{}, &rhperr.ParseError{Msg: "invalid octal literal", Line: line, Column: col, Found: l.src[start:l.pos]}
		}
		return token.Token{Type: token.INT, Literal: l.src[start:l.pos], NumFmt: token.FormatOctal, Line: line, Column: col}, nil
	}

	if l.peekByte() == '0' && (l.peekByteAt(1) == 'x' || l.peekByteAt(1) == 'X') {
		l.advance()
		l.advance()
		digStart := l.pos
		for isHexDigitOrUnderscore(l.peekByte()) {
			l.advance()
		}
		if l.pos == digStart {
			return token.Token{}, &rhperr.ParseError{Msg: "invalid hex literal", Line: line, Column: col, Found: l.src[start:l.pos]}
		}
		return token.Token{Type: token.INT, Literal: l.src[start:l.pos], NumFmt: token.FormatHex, Line: line, Column: col}, nil
	}

	// Legacy octal vs decimal zero: a leading '0' followed directly by digits.
	if l.peekByte() == '0' && isDigit(l.peekByteAt(1)) {
		digStart := l.pos
		for isDigit(l.peekByte()) || l.peekByte() == '_' {
			l.advance()
		}
		if l.peekByte() == '.' && isDigit(l.peekByteAt(1)) {
			// It's actually a float like 0123.45 — fall through to float scanning
			// using the digits already consumed as the integer part.
			return l.lexFloatContinuation(start, line, col)
		}
		raw := l.src[digStart:l.pos]
		for _, r := range raw {
			if r == '8' || r == '9' {
				return token.Token{}, &rhperr.ParseError{Msg: "invalid legacy octal literal (contains 8 or 9)", Line: line, Column: col, Found: l.src[start:l.pos]}
			}
		}
		return token.Token{Type: token.INT, Literal: l.src[start:l.pos], NumFmt: token.FormatOctal, Line: line, Column: col}, nil
	}

	// Decimal integer / float / scientific.
	for isDigit(l.peekByte()) || l.peekByte() == '_' {
		l.advance()
	}

	return l.lexFloatContinuation(start, line, col)
}

func (l *Lexer) lexFloatContinuation(start, line, col int) (token.Token, error) {
	format := token.FormatDecimal
	if l.peekByte() == '.' && isDigit(l.peekByteAt(1)) {
		format = token.FormatFloat
		l.advance()
		for isDigit(l.peekByte()) || l.peekByte() == '_' {
			l.advance()
		}
	}
	if (l.peekByte() == 'e' || l.peekByte() == 'E') && (isDigit(l.peekByteAt(1)) ||
		((l.peekByteAt(1) == '+' || l.peekByteAt(1) == '-') && isDigit(l.peekByteAt(2)))) {
		format = token.FormatScientific
		l.advance()
		if l.peekByte() == '+' || l.peekByte() == '-' {
			l.advance()
		}
		for isDigit(l.peekByte()) {
			l.advance()
		}
	}
	_ = start
	tok := token.Token{Type: token.FLOAT, Literal: l.src[start:l.pos], NumFmt: format, Line: line, Column: col}
	if format == token.FormatDecimal {
		tok.Type = token.INT
	}
	return tok, nil
}

func isBinDigitOrUnderscore(c byte) bool { return c == '0' || c == '1' || c == '_' }
func isOctDigitOrUnderscore(c byte) bool { return (c >= '0' && c <= '7') || c == '_' }
func isHexDigitOrUnderscore(c byte) bool { return isHexDigit(c) || c == '_' }

func (l *Lexer) lexIdentOrKeyword(line, col int) (token.Token, error) {
	start := l.pos
	for l.pos < len(l.src) && isIdentChar(l.peekByte()) {
		l.advance()
	}
	if l.peekByte() == '?' || l.peekByte() == '!' {
		l.advance()
	}
	word := l.src[start:l.pos]

	switch word {
	case "nil":
		return token.Token{Type: token.NIL, Literal: word, Line: line, Column: col}, nil
	case "true":
		return token.Token{Type: token.TRUE, Literal: word, Line: line, Column: col}, nil
	case "false":
		return token.Token{Type: token.FALSE, Literal: word, Line: line, Column: col}, nil
	case "Infinity":
		return token.Token{Type: token.INFINITY, Literal: word, Line: line, Column: col}, nil
	case "NaN":
		return token.Token{Type: token.NAN, Literal: word, Line: line, Column: col}, nil
	default:
		return token.Token{Type: token.IDENT, Literal: word, Line: line, Column: col}, nil
	}
}
