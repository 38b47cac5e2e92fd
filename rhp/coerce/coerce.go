// Package coerce maps an rhp AST onto the plain value tree defined by
// package value, applying the policy choices in Options to the handful of
// Ruby shapes that have no single canonical JSON representation.
package coerce

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/devtext/texttools/rhp/ast"
	"github.com/devtext/texttools/rhp/rhperr"
	"github.com/devtext/texttools/rhp/token"
	"github.com/devtext/texttools/rhp/value"
)

// NonFiniteStrategy selects how Infinity/-Infinity/NaN are coerced.
type NonFiniteStrategy string

const (
	NonFiniteNull    NonFiniteStrategy = "null"
	NonFiniteString  NonFiniteStrategy = "string"
	NonFiniteLiteral NonFiniteStrategy = "literal"
	NonFiniteError   NonFiniteStrategy = "error"
)

// RangeStrategy selects how Range nodes are coerced.
type RangeStrategy string

const (
	RangeObject RangeStrategy = "object"
	RangeString RangeStrategy = "string"
	RangeArray  RangeStrategy = "array"
)

// SetStrategy selects how Set nodes are coerced.
type SetStrategy string

const (
	SetArray  SetStrategy = "array"
	SetObject SetStrategy = "object"
)

// BigDecimalStrategy selects how BigDecimal nodes are coerced.
type BigDecimalStrategy string

const (
	BigDecimalString BigDecimalStrategy = "string"
	BigDecimalNumber BigDecimalStrategy = "number"
	BigDecimalObject BigDecimalStrategy = "object"
)

// CyclicStrategy selects how CyclicRef nodes are coerced.
type CyclicStrategy string

const (
	CyclicSentinel CyclicStrategy = "sentinel"
	CyclicNull     CyclicStrategy = "null"
	CyclicErr      CyclicStrategy = "error"
)

// SymbolStrategy selects how Symbol nodes are coerced.
type SymbolStrategy string

const (
	SymbolString   SymbolStrategy = "string"
	SymbolPreserve SymbolStrategy = "preserve"
)

// BinaryStrategy selects how a decoded string carrying the 0x80-0x9F
// indicator bytes is coerced.
type BinaryStrategy string

const (
	BinaryBase64      BinaryStrategy = "base64"
	BinaryArray       BinaryStrategy = "array"
	BinaryReplacement BinaryStrategy = "replacement"
	BinaryError       BinaryStrategy = "error"
)

// ObjectBehavior selects how a generic ObjectInspect node is coerced.
type ObjectBehavior string

const (
	ObjectString ObjectBehavior = "string"
	ObjectObject ObjectBehavior = "object"
)

// Options configures every policy point in §4.3 of the coercion contract.
type Options struct {
	NonFiniteNumbers   NonFiniteStrategy
	ObjectBehavior     ObjectBehavior
	BinaryStrategy     BinaryStrategy
	RangeStrategy      RangeStrategy
	BigDecimalStrategy BigDecimalStrategy
	SetStrategy        SetStrategy
	CyclicStrategy     CyclicStrategy
	SymbolHandler      SymbolStrategy
}

// DefaultOptions matches the RHP public-surface defaults in §6.
func DefaultOptions() Options {
	return Options{
		NonFiniteNumbers:   NonFiniteNull,
		ObjectBehavior:     ObjectString,
		BinaryStrategy:     BinaryReplacement,
		RangeStrategy:      RangeObject,
		BigDecimalStrategy: BigDecimalString,
		SetStrategy:        SetArray,
		CyclicStrategy:     CyclicSentinel,
		SymbolHandler:      SymbolString,
	}
}

const rangeEnumerationCap = 10000

// Coerce reduces an AST node to a value.Value under opts.
func Coerce(node ast.Node, opts Options) (value.Value, error) {
	switch n := node.(type) {
	case *ast.Nil:
		return value.Null, nil
	case *ast.Boolean:
		return value.Bool(n.Value), nil
	case *ast.Number:
		return coerceNumber(n)
	case *ast.NonFinite:
		return coerceNonFinite(n, opts)
	case *ast.String:
		return coerceString(n, opts)
	case *ast.Symbol:
		return coerceSymbol(n, opts)
	case *ast.Array:
		return coerceArray(n, opts)
	case *ast.Hash:
		return coerceHash(n, opts)
	case *ast.Range:
		return coerceRange(n, opts)
	case *ast.Set:
		return coerceSet(n, opts)
	case *ast.BigDecimal:
		return coerceBigDecimal(n, opts)
	case *ast.CyclicRef:
		return coerceCyclic(n, opts)
	case *ast.ObjectInspect:
		return coerceObjectInspect(n, opts)
	default:
		return value.Value{}, fmt.Errorf("coerce: unhandled node type %T", node)
	}
}

var radixByFormat = map[ast.NumberFormat]int{
	token.FormatBinary: 2,
	token.FormatOctal:  8,
	token.FormatHex:    16,
}

func coerceNumber(n *ast.Number) (value.Value, error) {
	switch n.Format {
	case token.FormatBinary, token.FormatOctal, token.FormatHex:
		base := radixByFormat[n.Format]
		digits := stripRadixPrefix(n.Raw, base)
		neg := strings.HasPrefix(digits, "-")
		digits = strings.TrimPrefix(digits, "-")
		v, err := strconv.ParseInt(digits, base, 64)
		if err != nil {
			// Value too large for int64: fall back to an unsigned parse so
			// literals up to the uint64 range still convert; wider ones are
			// reported as an error.
			uv, uerr := strconv.ParseUint(digits, base, 64)
			if uerr != nil {
				return value.Value{}, fmt.Errorf("coerce: invalid numeric literal %q: %w", n.Raw, err)
			}
			s := strconv.FormatUint(uv, 10)
			if neg {
				s = "-" + s
			}
			return value.Int(s), nil
		}
		if neg {
			v = -v
		}
		return value.Int(strconv.FormatInt(v, 10)), nil
	case token.FormatFloat, token.FormatScientific:
		f, err := strconv.ParseFloat(n.Raw, 64)
		if err != nil {
			return value.Value{}, fmt.Errorf("coerce: invalid float literal %q: %w", n.Raw, err)
		}
		return value.Float(formatFloat(f)), nil
	default: // FormatDecimal
		return value.Int(n.Raw), nil
	}
}

// stripRadixPrefix removes the "0b"/"0o"/"0x" marker, or for legacy octal
// literals like "0755" (no letter marker) just the leading "0".
func stripRadixPrefix(raw string, base int) string {
	s := raw
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if len(s) > 1 && s[0] == '0' {
		if len(s) > 1 && isRadixMarker(s[1]) {
			s = s[2:]
		} else {
			s = s[1:]
		}
	}
	s = strings.ReplaceAll(s, "_", "")
	if s == "" {
		s = "0"
	}
	if neg {
		return "-" + s
	}
	return s
}

func isRadixMarker(c byte) bool {
	switch c {
	case 'b', 'B', 'o', 'O', 'x', 'X':
		return true
	default:
		return false
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func coerceNonFinite(n *ast.NonFinite, opts Options) (value.Value, error) {
	raw := nonFiniteRaw(n.Kind)
	switch opts.NonFiniteNumbers {
	case NonFiniteNull, "":
		return value.Null, nil
	case NonFiniteString:
		return value.Str(raw), nil
	case NonFiniteLiteral:
		return value.NonFiniteValue(toValueNonFiniteKind(n.Kind)), nil
	case NonFiniteError:
		return value.Value{}, &rhperr.NonFiniteError{Raw: raw}
	default:
		return value.Null, nil
	}
}

func nonFiniteRaw(k ast.NonFiniteKind) string {
	switch k {
	case ast.PositiveInfinity:
		return "Infinity"
	case ast.NegativeInfinity:
		return "-Infinity"
	default:
		return "NaN"
	}
}

func toValueNonFiniteKind(k ast.NonFiniteKind) value.NonFiniteKind {
	switch k {
	case ast.PositiveInfinity:
		return value.PositiveInfinity
	case ast.NegativeInfinity:
		return value.NegativeInfinity
	default:
		return value.NotANumber
	}
}

func coerceString(n *ast.String, opts Options) (value.Value, error) {
	if !n.HasBinary {
		return value.Str(n.Value), nil
	}
	raw := []byte(n.Value)
	switch opts.BinaryStrategy {
	case BinaryBase64, "":
		return value.Str(base64Encode(raw)), nil
	case BinaryArray:
		elems := make([]value.Value, len(raw))
		for i, b := range raw {
			elems[i] = value.Int(strconv.Itoa(int(b)))
		}
		return value.Arr(elems), nil
	case BinaryReplacement:
		return value.Str(replaceFlaggedBytes(raw)), nil
	case BinaryError:
		var flagged []byte
		for _, b := range raw {
			if b >= 0x80 && b <= 0x9F {
				flagged = append(flagged, b)
			}
		}
		return value.Value{}, &rhperr.BinaryDataError{Bytes: flagged}
	default:
		return value.Str(replaceFlaggedBytes(raw)), nil
	}
}

const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

func base64Encode(data []byte) string {
	var b strings.Builder
	for i := 0; i < len(data); i += 3 {
		var chunk [3]byte
		n := copy(chunk[:], data[i:min(i+3, len(data))])
		b.WriteByte(base64Alphabet[chunk[0]>>2])
		b.WriteByte(base64Alphabet[(chunk[0]&0x03)<<4|chunk[1]>>4])
		if n > 1 {
			b.WriteByte(base64Alphabet[(chunk[1]&0x0F)<<2|chunk[2]>>6])
		} else {
			b.WriteByte('=')
		}
		if n > 2 {
			b.WriteByte(base64Alphabet[chunk[2]&0x3F])
		} else {
			b.WriteByte('=')
		}
	}
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func replaceFlaggedBytes(raw []byte) string {
	var b strings.Builder
	for _, c := range raw {
		if c >= 0x80 && c <= 0x9F {
			b.WriteRune('�')
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func coerceSymbol(n *ast.Symbol, opts Options) (value.Value, error) {
	switch opts.SymbolHandler {
	case SymbolPreserve:
		return value.Typed("symbol", []value.Entry{{Key: "value", Value: value.Str(n.Value)}}), nil
	default:
		return value.Str(n.Value), nil
	}
}

func coerceArray(n *ast.Array, opts Options) (value.Value, error) {
	elems := make([]value.Value, 0, len(n.Elements))
	for _, e := range n.Elements {
		v, err := Coerce(e, opts)
		if err != nil {
			return value.Value{}, err
		}
		elems = append(elems, v)
	}
	return value.Arr(elems), nil
}

// coerceHash applies "later duplicate keys overwrite earlier" ordering: the
// surviving entry takes the value of its LAST occurrence but keeps the
// position of its FIRST, matching the way a Ruby Hash literal with repeated
// keys collapses on construction.
func coerceHash(n *ast.Hash, opts Options) (value.Value, error) {
	index := map[string]int{}
	var entries []value.Entry

	for _, pair := range n.Pairs {
		key, err := coerceKey(pair.Key, opts)
		if err != nil {
			return value.Value{}, err
		}
		val, err := Coerce(pair.Value, opts)
		if err != nil {
			return value.Value{}, err
		}
		if i, ok := index[key]; ok {
			entries[i] = value.Entry{Key: key, Value: val}
		} else {
			index[key] = len(entries)
			entries = append(entries, value.Entry{Key: key, Value: val})
		}
	}
	return value.Obj(entries), nil
}

// coerceKey stringifies a hash key node regardless of SymbolHandler/etc,
// since JSON object keys are always strings.
func coerceKey(node ast.Node, opts Options) (string, error) {
	switch k := node.(type) {
	case *ast.Symbol:
		return k.Value, nil
	case *ast.String:
		v, err := coerceString(k, opts)
		if err != nil {
			return "", err
		}
		if v.Kind == value.KindString {
			return v.Str, nil
		}
		return fmt.Sprintf("%v", v), nil
	case *ast.Number:
		v, err := coerceNumber(k)
		if err != nil {
			return "", err
		}
		return v.Number, nil
	case *ast.Boolean:
		if k.Value {
			return "true", nil
		}
		return "false", nil
	case *ast.Nil:
		return "", nil
	default:
		v, err := Coerce(node, opts)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%v", v), nil
	}
}

func coerceRange(n *ast.Range, opts Options) (value.Value, error) {
	beginVal, err := Coerce(n.Begin, opts)
	if err != nil {
		return value.Value{}, err
	}
	endVal, err := Coerce(n.End, opts)
	if err != nil {
		return value.Value{}, err
	}

	beginInt, beginIsInt := asInt64(n.Begin)
	endInt, endIsInt := asInt64(n.End)
	bothNumeric := beginIsInt && endIsInt

	switch opts.RangeStrategy {
	case RangeString:
		op := ".."
		if n.ExcludeEnd {
			op = "..."
		}
		return value.Str(fmt.Sprintf("%s%s%s", rangeEndpointText(n.Begin, beginVal), op, rangeEndpointText(n.End, endVal))), nil

	case RangeArray:
		if !bothNumeric {
			return coerceRangeObject(beginVal, endVal, n.ExcludeEnd), nil
		}
		span := endInt - beginInt
		if n.ExcludeEnd {
			span--
		}
		if span < 0 {
			return value.Arr(nil), nil
		}
		if span+1 > rangeEnumerationCap {
			return value.Value{}, &rhperr.RangeTooLargeError{Begin: beginInt, End: endInt, Cap: rangeEnumerationCap}
		}
		last := endInt
		if n.ExcludeEnd {
			last--
		}
		elems := make([]value.Value, 0, last-beginInt+1)
		for i := beginInt; i <= last; i++ {
			elems = append(elems, value.Int(strconv.FormatInt(i, 10)))
		}
		return value.Arr(elems), nil

	default: // RangeObject
		return coerceRangeObject(beginVal, endVal, n.ExcludeEnd), nil
	}
}

func coerceRangeObject(begin, end value.Value, excludeEnd bool) value.Value {
	return value.Obj([]value.Entry{
		{Key: "begin", Value: begin},
		{Key: "end", Value: end},
		{Key: "exclude_end", Value: value.Bool(excludeEnd)},
	})
}

func rangeEndpointText(node ast.Node, v value.Value) string {
	switch n := node.(type) {
	case *ast.String:
		return n.Value
	case *ast.Number:
		return n.Raw
	default:
		return fmt.Sprintf("%v", v)
	}
}

func asInt64(node ast.Node) (int64, bool) {
	n, ok := node.(*ast.Number)
	if !ok {
		return 0, false
	}
	if n.Format == token.FormatFloat || n.Format == token.FormatScientific {
		return 0, false
	}
	v, err := coerceNumber(n)
	if err != nil || v.Kind != value.KindNumber || v.IsFloat {
		return 0, false
	}
	i, err := strconv.ParseInt(v.Number, 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

func coerceSet(n *ast.Set, opts Options) (value.Value, error) {
	elems := make([]value.Value, 0, len(n.Elements))
	for _, e := range n.Elements {
		v, err := Coerce(e, opts)
		if err != nil {
			return value.Value{}, err
		}
		elems = append(elems, v)
	}
	switch opts.SetStrategy {
	case SetObject:
		return value.Typed("set", []value.Entry{{Key: "values", Value: value.Arr(elems)}}), nil
	default:
		return value.Arr(elems), nil
	}
}

func coerceBigDecimal(n *ast.BigDecimal, opts Options) (value.Value, error) {
	switch opts.BigDecimalStrategy {
	case BigDecimalNumber:
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return value.Value{}, fmt.Errorf("coerce: invalid bigdecimal literal %q: %w", n.Value, err)
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return coerceNonFinite(&ast.NonFinite{Kind: nonFiniteKindOf(f)}, opts)
		}
		return value.Float(formatFloat(f)), nil
	case BigDecimalObject:
		return value.Typed("bigdecimal", []value.Entry{
			{Key: "value", Value: value.Str(n.Value)},
			{Key: "precision", Value: value.Int(strconv.Itoa(n.Precision))},
		}), nil
	default:
		return value.Str(n.Value), nil
	}
}

func nonFiniteKindOf(f float64) ast.NonFiniteKind {
	switch {
	case math.IsNaN(f):
		return ast.NotANumber
	case f < 0:
		return ast.NegativeInfinity
	default:
		return ast.PositiveInfinity
	}
}

func coerceCyclic(n *ast.CyclicRef, opts Options) (value.Value, error) {
	kind := "hash"
	if n.Kind == ast.CyclicArray {
		kind = "array"
	}
	switch opts.CyclicStrategy {
	case CyclicNull:
		return value.Null, nil
	case CyclicErr:
		return value.Value{}, &rhperr.CyclicReferenceError{Kind: kind}
	default:
		return value.Str("[Circular]"), nil
	}
}

func coerceObjectInspect(n *ast.ObjectInspect, opts Options) (value.Value, error) {
	switch opts.ObjectBehavior {
	case ObjectObject:
		fields := make([]value.Entry, 0, len(n.InstanceVars)+2)
		fields = append(fields, value.Entry{Key: "class", Value: value.Str(n.ClassName)})
		fields = append(fields, value.Entry{Key: "address", Value: value.Str(n.Address)})
		for _, iv := range n.InstanceVars {
			v, err := Coerce(iv.Value, opts)
			if err != nil {
				return value.Value{}, err
			}
			fields = append(fields, value.Entry{Key: iv.Name, Value: v})
		}
		return value.Typed("object", fields), nil
	default:
		var b strings.Builder
		b.WriteString("#<")
		b.WriteString(n.ClassName)
		if n.Address != "" {
			b.WriteByte(':')
			b.WriteString(n.Address)
		}
		for i, iv := range n.InstanceVars {
			if i == 0 {
				b.WriteByte(' ')
			} else {
				b.WriteString(", ")
			}
			b.WriteByte('@')
			b.WriteString(iv.Name)
			b.WriteByte('=')
			v, err := Coerce(iv.Value, opts)
			if err != nil {
				return value.Value{}, err
			}
			b.WriteString(fmt.Sprintf("%v", v))
		}
		b.WriteByte('>')
		return value.Str(b.String()), nil
	}
}
