// Package parser implements a recursive-descent reduction of rhp's lexical
// tokens into the ast package's tagged-sum tree.
package parser

import (
	"strings"

	"github.com/devtext/texttools/rhp/ast"
	"github.com/devtext/texttools/rhp/lexer"
	"github.com/devtext/texttools/rhp/rhperr"
	"github.com/devtext/texttools/rhp/token"
)

// Options controls grammar-level behavior. Coercion-layer options live in the
// rhp package's Options type; only the options that affect parsing/AST shape
// are duplicated here.
type Options struct {
	MaxDepth          int
	AllowImplicitHash bool
}

// DefaultOptions returns the grammar defaults (maxDepth 500, implicit hashes
// allowed), matching rhp.DefaultOptions().
func DefaultOptions() Options {
	return Options{MaxDepth: 500, AllowImplicitHash: true}
}

// Parser reduces a token stream into an AST.
type Parser struct {
	lex   *lexer.Lexer
	cur   token.Token
	opts  Options
	depth int
}

// New constructs a Parser over src.
func New(src string, opts Options) (*Parser, error) {
	p := &Parser{lex: lexer.New(src), opts: opts}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) advance() error {
	tok, err := p.lex.NextToken()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *Parser) pos() ast.Pos { return ast.Pos{Line: p.cur.Line, Column: p.cur.Column} }

func (p *Parser) expect(t token.Type) (token.Token, error) {
	if p.cur.Type != t {
		return token.Token{}, p.unexpected(t.String())
	}
	tok := p.cur
	if err := p.advance(); err != nil {
		return token.Token{}, err
	}
	return tok, nil
}

func (p *Parser) unexpected(expected ...string) error {
	return &rhperr.ParseError{
		Msg:      "unexpected token",
		Line:     p.cur.Line,
		Column:   p.cur.Column,
		Found:    p.cur.Literal,
		Expected: expected,
	}
}

func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.opts.MaxDepth {
		return &rhperr.RecursionLimitExceeded{MaxDepth: p.opts.MaxDepth, Line: p.cur.Line, Column: p.cur.Column}
	}
	return nil
}

func (p *Parser) leave() { p.depth-- }

// ParseDocument parses a complete top-level document: a Hash/Array/scalar
// literal, or (when AllowImplicitHash is set) a brace-less sequence of pairs.
func (p *Parser) ParseDocument() (ast.Node, error) {
	if p.cur.Type == token.EOF {
		return nil, &rhperr.ParseError{Msg: "empty input", Line: p.cur.Line, Column: p.cur.Column, Found: "EOF"}
	}

	node, err := p.parseTopLevel()
	if err != nil {
		return nil, err
	}

	if p.cur.Type != token.EOF {
		return nil, p.unexpected("EOF")
	}
	return node, nil
}

func (p *Parser) parseTopLevel() (ast.Node, error) {
	switch p.cur.Type {
	case token.LBRACE, token.CYCLIC_HASH:
		return p.parseHash()
	case token.LBRACKET, token.CYCLIC_ARR:
		return p.parseArray()
	case token.OBJECT_HEAD:
		return p.parseObjectLike()
	default:
		return p.parseTopLevelScalarOrImplicitHash()
	}
}

// parseTopLevelScalarOrImplicitHash parses a single keyable primary, then
// decides — based on the token immediately following it — whether this is a
// bare scalar/range or the first pair of a brace-less implicit hash.
func (p *Parser) parseTopLevelScalarOrImplicitHash() (ast.Node, error) {
	first, wasIdent, err := p.parseKeyable()
	if err != nil {
		return nil, err
	}

	switch {
	case p.cur.Type == token.DOTDOT || p.cur.Type == token.DOTDOTDOT:
		return p.parseRangeFrom(first)

	case p.cur.Type == token.HASH_ROCKET || (wasIdent && p.cur.Type == token.COLON):
		if !p.opts.AllowImplicitHash {
			return nil, &rhperr.ParseError{Msg: "implicit (brace-less) hashes are not allowed", Line: p.cur.Line, Column: p.cur.Column, Found: p.cur.Literal}
		}
		return p.parseImplicitHash(first)

	default:
		return first, nil
	}
}

func (p *Parser) parseImplicitHash(firstKey ast.Node) (ast.Node, error) {
	pos := firstKey.Position()
	h := &ast.Hash{Pos: pos}

	value, err := p.parsePairValue()
	if err != nil {
		return nil, err
	}
	h.Pairs = append(h.Pairs, ast.Pair{Key: firstKey, Value: value})

	for p.cur.Type == token.COMMA {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Type == token.EOF {
			break // trailing comma
		}
		key, wasIdent, err := p.parseKeyable()
		if err != nil {
			return nil, err
		}
		if !(p.cur.Type == token.HASH_ROCKET || (wasIdent && p.cur.Type == token.COLON)) {
			return nil, p.unexpected("=>", ":")
		}
		val, err := p.parsePairValue()
		if err != nil {
			return nil, err
		}
		h.Pairs = append(h.Pairs, ast.Pair{Key: key, Value: val})
	}

	return h, nil
}

// parsePairValue consumes the separator (=> or :) then parses the value.
func (p *Parser) parsePairValue() (ast.Node, error) {
	if p.cur.Type != token.HASH_ROCKET && p.cur.Type != token.COLON {
		return nil, p.unexpected("=>", ":")
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p.ParseValue()
}

// parseKeyable parses a key-position literal: symbol, string, integer,
// true, false, nil, or a bare identifier (JSON-style key candidate). It
// returns whether the parsed node was a bare identifier, since that changes
// which separator token is legal afterward.
func (p *Parser) parseKeyable() (node ast.Node, wasIdent bool, err error) {
	pos := p.pos()
	switch p.cur.Type {
	case token.IDENT:
		lit := p.cur.Literal
		if err := p.advance(); err != nil {
			return nil, false, err
		}
		return &ast.Symbol{Value: lit, Pos: pos}, true, nil
	case token.SYMBOL:
		lit, quoted := p.cur.Literal, p.cur.Quoted
		if err := p.advance(); err != nil {
			return nil, false, err
		}
		return &ast.Symbol{Value: lit, Quoted: quoted, Pos: pos}, false, nil
	case token.STRING:
		lit, q, hb := p.cur.Literal, p.cur.RawQuote, p.cur.HasBinary
		if err := p.advance(); err != nil {
			return nil, false, err
		}
		qk := ast.QuoteDouble
		if q == '\'' {
			qk = ast.QuoteSingle
		}
		return &ast.String{Value: lit, Quote: qk, HasBinary: hb, Pos: pos}, false, nil
	case token.INT, token.FLOAT:
		n, err := p.parseNumberToken()
		return n, false, err
	case token.TRUE:
		if err := p.advance(); err != nil {
			return nil, false, err
		}
		return &ast.Boolean{Value: true, Pos: pos}, false, nil
	case token.FALSE:
		if err := p.advance(); err != nil {
			return nil, false, err
		}
		return &ast.Boolean{Value: false, Pos: pos}, false, nil
	case token.NIL:
		if err := p.advance(); err != nil {
			return nil, false, err
		}
		return &ast.Nil{Pos: pos}, false, nil
	default:
		return nil, false, p.unexpected("symbol", "string", "number", "true", "false", "nil", "identifier")
	}
}

func (p *Parser) parseNumberToken() (*ast.Number, error) {
	pos := p.pos()
	raw, format := p.cur.Literal, p.cur.NumFmt
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.Number{Raw: stripUnderscores(raw), Format: format, Pos: pos}, nil
}

func stripUnderscores(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}
	return strings.ReplaceAll(s, "_", "")
}

// ParseValue parses any value-position node: scalars, hashes, arrays,
// ranges, sets, bigdecimals, cyclic refs, or object inspects.
func (p *Parser) ParseValue() (ast.Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	pos := p.pos()

	switch p.cur.Type {
	case token.LBRACE, token.CYCLIC_HASH:
		return p.parseHash()
	case token.LBRACKET, token.CYCLIC_ARR:
		return p.parseArray()
	case token.OBJECT_HEAD:
		return p.parseObjectLike()
	case token.NIL:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Nil{Pos: pos}, nil
	case token.TRUE, token.FALSE:
		v := p.cur.Type == token.TRUE
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Boolean{Value: v, Pos: pos}, nil
	case token.INFINITY:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.NonFinite{Kind: ast.PositiveInfinity, Pos: pos}, nil
	case token.NEG_INFINITY:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.NonFinite{Kind: ast.NegativeInfinity, Pos: pos}, nil
	case token.NAN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.NonFinite{Kind: ast.NotANumber, Pos: pos}, nil
	case token.SYMBOL:
		lit, quoted := p.cur.Literal, p.cur.Quoted
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Symbol{Value: lit, Quoted: quoted, Pos: pos}, nil
	case token.STRING:
		lit, q, hb := p.cur.Literal, p.cur.RawQuote, p.cur.HasBinary
		if err := p.advance(); err != nil {
			return nil, err
		}
		qk := ast.QuoteDouble
		if q == '\'' {
			qk = ast.QuoteSingle
		}
		str := &ast.String{Value: lit, Quote: qk, HasBinary: hb, Pos: pos}
		return p.maybeRange(str)
	case token.INT, token.FLOAT:
		n, err := p.parseNumberToken()
		if err != nil {
			return nil, err
		}
		return p.maybeRange(n)
	default:
		return nil, p.unexpected("value")
	}
}

func (p *Parser) maybeRange(begin ast.Node) (ast.Node, error) {
	if p.cur.Type == token.DOTDOT || p.cur.Type == token.DOTDOTDOT {
		return p.parseRangeFrom(begin)
	}
	return begin, nil
}

func (p *Parser) parseRangeFrom(begin ast.Node) (ast.Node, error) {
	exclude := p.cur.Type == token.DOTDOTDOT
	pos := begin.Position()
	if err := p.advance(); err != nil {
		return nil, err
	}
	end, err := p.ParseValue()
	if err != nil {
		return nil, err
	}
	return &ast.Range{Begin: begin, End: end, ExcludeEnd: exclude, Pos: pos}, nil
}

func (p *Parser) parseHash() (ast.Node, error) {
	pos := p.pos()
	if p.cur.Type == token.CYCLIC_HASH {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.CyclicRef{Kind: ast.CyclicHash, Pos: pos}, nil
	}

	if err := p.advance(); err != nil { // consume '{'
		return nil, err
	}

	h := &ast.Hash{Pos: pos}
	if p.cur.Type == token.RBRACE {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return h, nil
	}

	for {
		key, wasIdent, err := p.parseKeyable()
		if err != nil {
			return nil, err
		}
		if !(p.cur.Type == token.HASH_ROCKET || (wasIdent && p.cur.Type == token.COLON)) {
			return nil, p.unexpected("=>", ":")
		}
		val, err := p.parsePairValue()
		if err != nil {
			return nil, err
		}
		h.Pairs = append(h.Pairs, ast.Pair{Key: key, Value: val})

		if p.cur.Type == token.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
			if p.cur.Type == token.RBRACE {
				break // trailing comma
			}
			continue
		}
		break
	}

	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return h, nil
}

func (p *Parser) parseArray() (ast.Node, error) {
	pos := p.pos()
	if p.cur.Type == token.CYCLIC_ARR {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.CyclicRef{Kind: ast.CyclicArray, Pos: pos}, nil
	}

	if err := p.advance(); err != nil { // consume '['
		return nil, err
	}

	arr := &ast.Array{Pos: pos}
	if p.cur.Type == token.RBRACKET {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return arr, nil
	}

	for {
		val, err := p.ParseValue()
		if err != nil {
			return nil, err
		}
		arr.Elements = append(arr.Elements, val)

		if p.cur.Type == token.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
			if p.cur.Type == token.RBRACKET {
				break // trailing comma
			}
			continue
		}
		break
	}

	if _, err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	return arr, nil
}

// parseObjectLike dispatches a "#<...>" literal to the Set, BigDecimal, or
// generic ObjectInspect sub-grammar based on the class name prefix captured
// in the OBJECT_HEAD token.
func (p *Parser) parseObjectLike() (ast.Node, error) {
	pos := p.pos()
	head := p.cur.Literal
	if err := p.advance(); err != nil { // consume OBJECT_HEAD
		return nil, err
	}

	className, rest, hasColon := splitOnce(head, ':')

	switch {
	case className == "Set" && hasColon && rest == "":
		return p.parseSetBody(pos)
	case className == "BigDecimal" && hasColon:
		return p.parseBigDecimalBody(pos, rest)
	default:
		return p.parseGenericObjectInspect(pos, className, rest)
	}
}

func splitOnce(s string, sep byte) (before, after string, found bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}

func (p *Parser) parseSetBody(pos ast.Pos) (ast.Node, error) {
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}
	set := &ast.Set{Pos: pos}
	if p.cur.Type != token.RBRACE {
		for {
			v, err := p.ParseValue()
			if err != nil {
				return nil, err
			}
			set.Elements = append(set.Elements, v)
			if p.cur.Type == token.COMMA {
				if err := p.advance(); err != nil {
					return nil, err
				}
				if p.cur.Type == token.RBRACE {
					break
				}
				continue
			}
			break
		}
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.GT); err != nil {
		return nil, err
	}
	return set, nil
}

// parseBigDecimalBody parses the remainder of a
// "BigDecimal:ADDR,'VALUE',PRECISION(ALLOC)" literal, captured whole in rest
// because the lexer's object-head scan stops only at whitespace or '>', and
// Ruby's BigDecimal#inspect output contains neither within this span.
func (p *Parser) parseBigDecimalBody(pos ast.Pos, rest string) (ast.Node, error) {
	if _, err := p.expect(token.GT); err != nil {
		return nil, err
	}

	firstQuote := strings.IndexByte(rest, '\'')
	if firstQuote < 0 {
		return nil, &rhperr.ParseError{Msg: "malformed BigDecimal literal", Line: pos.Line, Column: pos.Column, Found: rest}
	}
	lastQuote := strings.LastIndexByte(rest, '\'')
	if lastQuote <= firstQuote {
		return nil, &rhperr.ParseError{Msg: "malformed BigDecimal literal", Line: pos.Line, Column: pos.Column, Found: rest}
	}
	value := expandScientificDecimal(rest[firstQuote+1 : lastQuote])

	precision := 0
	tail := rest[lastQuote+1:]
	tail = strings.TrimPrefix(tail, ",")
	if paren := strings.IndexByte(tail, '('); paren >= 0 {
		tail = tail[:paren]
	}
	precision = parseIntSafe(tail)

	return &ast.BigDecimal{Value: value, Precision: precision, Pos: pos}, nil
}

func parseIntSafe(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return n
		}
		n = n*10 + int(s[i]-'0')
	}
	return n
}

// expandScientificDecimal converts a BigDecimal scientific form
// "<digits>.<digits>E<exponent>" into a positional decimal string.
func expandScientificDecimal(s string) string {
	eIdx := strings.IndexAny(s, "eE")
	if eIdx < 0 {
		return s
	}
	mantissa := s[:eIdx]
	exp := parseSignedIntSafe(s[eIdx+1:])

	neg := strings.HasPrefix(mantissa, "-")
	mantissa = strings.TrimPrefix(mantissa, "-")

	dotIdx := strings.IndexByte(mantissa, '.')
	intPart, fracPart := mantissa, ""
	if dotIdx >= 0 {
		intPart, fracPart = mantissa[:dotIdx], mantissa[dotIdx+1:]
	}
	digits := intPart + fracPart
	pointPos := len(intPart) + exp
	// Leading zeros (as in "0.1E1") carry no value; dropping them keeps a
	// spurious "0" off the front of the integer part.
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return "0"
	}
	pointPos -= len(digits) - len(trimmed)
	digits = trimmed

	var out string
	switch {
	case pointPos <= 0:
		out = "0." + strings.Repeat("0", -pointPos) + digits
	case pointPos >= len(digits):
		out = digits + strings.Repeat("0", pointPos-len(digits))
	default:
		out = digits[:pointPos] + "." + digits[pointPos:]
	}
	if neg {
		out = "-" + out
	}
	return out
}

func parseSignedIntSafe(s string) int {
	neg := false
	if strings.HasPrefix(s, "+") {
		s = s[1:]
	} else if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	n := parseIntSafe(s)
	if neg {
		return -n
	}
	return n
}

func (p *Parser) parseGenericObjectInspect(pos ast.Pos, className, address string) (ast.Node, error) {
	obj := &ast.ObjectInspect{ClassName: className, Address: address, Pos: pos}

	for p.cur.Type == token.AT {
		if err := p.advance(); err != nil {
			return nil, err
		}
		nameTok, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.EQ); err != nil {
			return nil, err
		}
		val, err := p.ParseValue()
		if err != nil {
			return nil, err
		}
		obj.InstanceVars = append(obj.InstanceVars, ast.InstanceVar{Name: nameTok.Literal, Value: val})

		if p.cur.Type == token.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}

	if _, err := p.expect(token.GT); err != nil {
		return nil, err
	}
	return obj, nil
}
