// Package ast defines the Abstract Syntax Tree nodes produced by the rhp
// parser: a tagged sum type over every literal shape the grammar recognizes.
package ast

import "github.com/devtext/texttools/rhp/token"

// Pos is a source location attached to most nodes.
type Pos struct {
	Line   int
	Column int
}

// Node is implemented by every AST node kind.
type Node interface {
	Position() Pos
	node()
}

// Pair is a single key/value entry in a Hash, in source order.
type Pair struct {
	Key   Node
	Value Node
}

// Hash is an ordered sequence of key/value pairs.
type Hash struct {
	Pairs []Pair
	Pos   Pos
}

func (h *Hash) Position() Pos { return h.Pos }
func (*Hash) node()           {}

// Array is an ordered sequence of values.
type Array struct {
	Elements []Node
	Pos      Pos
}

func (a *Array) Position() Pos { return a.Pos }
func (*Array) node()           {}

// QuoteKind records which Ruby string literal form produced a String node.
type QuoteKind int

const (
	QuoteSingle QuoteKind = iota
	QuoteDouble
)

// String is a decoded string literal.
type String struct {
	Value     string
	Quote     QuoteKind
	HasBinary bool // true if decoding surfaced a 0x80-0x9F indicator byte
	Pos       Pos
}

func (s *String) Position() Pos { return s.Pos }
func (*String) node()           {}

// NumberFormat mirrors token.NumberFormat for the literal syntax that
// produced a Number node.
type NumberFormat = token.NumberFormat

// Number is a numeric literal. Raw retains the original (underscore-stripped)
// literal text; narrowing to int64/float64 happens in the coercion layer.
type Number struct {
	Raw    string
	Format NumberFormat
	Pos    Pos
}

func (n *Number) Position() Pos { return n.Pos }
func (*Number) node()           {}

// NonFiniteKind distinguishes the three non-finite literals.
type NonFiniteKind int

const (
	PositiveInfinity NonFiniteKind = iota
	NegativeInfinity
	NotANumber
)

// NonFinite is an Infinity/-Infinity/NaN literal.
type NonFinite struct {
	Kind NonFiniteKind
	Pos  Pos
}

func (n *NonFinite) Position() Pos { return n.Pos }
func (*NonFinite) node()           {}

// Symbol is a Ruby symbol literal (:name, :'x', :"x", or an operator symbol).
type Symbol struct {
	Value  string
	Quoted bool
	Pos    Pos
}

func (s *Symbol) Position() Pos { return s.Pos }
func (*Symbol) node()           {}

// Boolean is a true/false literal.
type Boolean struct {
	Value bool
	Pos   Pos
}

func (b *Boolean) Position() Pos { return b.Pos }
func (*Boolean) node()           {}

// Nil is the nil literal.
type Nil struct {
	Pos Pos
}

func (n *Nil) Position() Pos { return n.Pos }
func (*Nil) node()           {}

// Range is a BEGIN..END or BEGIN...END literal.
type Range struct {
	Begin      Node
	End        Node
	ExcludeEnd bool
	Pos        Pos
}

func (r *Range) Position() Pos { return r.Pos }
func (*Range) node()           {}

// Set is a Ruby Set#inspect literal, e.g. #<Set: {1, 2, 3}>.
type Set struct {
	Elements []Node
	Pos      Pos
}

func (s *Set) Position() Pos { return s.Pos }
func (*Set) node()           {}

// BigDecimal is a Ruby BigDecimal#inspect literal.
type BigDecimal struct {
	Value     string // decimal string, scientific form expanded to positional
	Precision int
	Pos       Pos
}

func (b *BigDecimal) Position() Pos { return b.Pos }
func (*BigDecimal) node()           {}

// CyclicKind distinguishes the two cyclic marker shapes.
type CyclicKind int

const (
	CyclicHash CyclicKind = iota
	CyclicArray
)

// CyclicRef is the literal {...} or [...] marker Ruby emits for self-reference.
type CyclicRef struct {
	Kind CyclicKind
	Pos  Pos
}

func (c *CyclicRef) Position() Pos { return c.Pos }
func (*CyclicRef) node()           {}

// InstanceVar is a single @name=value pair inside an ObjectInspect node.
type InstanceVar struct {
	Name  string
	Value Node
}

// ObjectInspect is a #<ClassName:0xADDR @var=value, ...> literal.
type ObjectInspect struct {
	ClassName    string
	Address      string
	InstanceVars []InstanceVar
	Pos          Pos
}

func (o *ObjectInspect) Position() Pos { return o.Pos }
func (*ObjectInspect) node()           {}
