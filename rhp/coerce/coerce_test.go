package coerce

import (
	"testing"

	"github.com/devtext/texttools/rhp/ast"
	"github.com/devtext/texttools/rhp/token"
	"github.com/devtext/texttools/rhp/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceScalars(t *testing.T) {
	v, err := Coerce(&ast.Nil{}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, value.KindNull, v.Kind)

	v, err = Coerce(&ast.Boolean{Value: true}, DefaultOptions())
	require.NoError(t, err)
	assert.True(t, v.Bool)
}

func TestCoerceNonFiniteStrategies(t *testing.T) {
	node := &ast.NonFinite{Kind: ast.PositiveInfinity}

	opts := DefaultOptions()
	opts.NonFiniteNumbers = NonFiniteNull
	v, err := Coerce(node, opts)
	require.NoError(t, err)
	assert.Equal(t, value.KindNull, v.Kind)

	opts.NonFiniteNumbers = NonFiniteString
	v, err = Coerce(node, opts)
	require.NoError(t, err)
	assert.Equal(t, "Infinity", v.Str)

	opts.NonFiniteNumbers = NonFiniteLiteral
	v, err = Coerce(node, opts)
	require.NoError(t, err)
	assert.Equal(t, value.KindNonFinite, v.Kind)

	opts.NonFiniteNumbers = NonFiniteError
	_, err = Coerce(node, opts)
	assert.Error(t, err)
}

func TestCoerceHashDuplicateKeysLastWins(t *testing.T) {
	h := &ast.Hash{Pairs: []ast.Pair{
		{Key: &ast.Symbol{Value: "a"}, Value: &ast.Number{Raw: "1"}},
		{Key: &ast.Symbol{Value: "a"}, Value: &ast.Number{Raw: "2"}},
		{Key: &ast.Symbol{Value: "a"}, Value: &ast.Number{Raw: "3"}},
	}}
	v, err := Coerce(h, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, v.Map, 1)
	assert.Equal(t, "3", v.Map[0].Value.Number)
}

func TestCoerceRangeStrategies(t *testing.T) {
	r := &ast.Range{Begin: &ast.Number{Raw: "1"}, End: &ast.Number{Raw: "5"}}

	opts := DefaultOptions()
	opts.RangeStrategy = RangeArray
	v, err := Coerce(r, opts)
	require.NoError(t, err)
	require.Len(t, v.Array, 5)
	assert.Equal(t, "1", v.Array[0].Number)
	assert.Equal(t, "5", v.Array[4].Number)

	opts.RangeStrategy = RangeString
	v, err = Coerce(r, opts)
	require.NoError(t, err)
	assert.Equal(t, "1..5", v.Str)

	opts.RangeStrategy = RangeObject
	v, err = Coerce(r, opts)
	require.NoError(t, err)
	begin, _ := v.Get("begin")
	end, _ := v.Get("end")
	assert.Equal(t, "1", begin.Number)
	assert.Equal(t, "5", end.Number)
}

func TestCoerceRangeTooLarge(t *testing.T) {
	r := &ast.Range{Begin: &ast.Number{Raw: "1"}, End: &ast.Number{Raw: "20000"}}
	opts := DefaultOptions()
	opts.RangeStrategy = RangeArray
	_, err := Coerce(r, opts)
	assert.Error(t, err)
}

func TestCoerceCyclicStrategies(t *testing.T) {
	c := &ast.CyclicRef{Kind: ast.CyclicHash}

	opts := DefaultOptions()
	v, err := Coerce(c, opts)
	require.NoError(t, err)
	assert.Equal(t, "[Circular]", v.Str)

	opts.CyclicStrategy = CyclicNull
	v, err = Coerce(c, opts)
	require.NoError(t, err)
	assert.Equal(t, value.KindNull, v.Kind)

	opts.CyclicStrategy = CyclicErr
	_, err = Coerce(c, opts)
	assert.Error(t, err)
}

func TestCoerceSetStrategies(t *testing.T) {
	s := &ast.Set{Elements: []ast.Node{&ast.Number{Raw: "1"}, &ast.Number{Raw: "2"}}}

	opts := DefaultOptions()
	v, err := Coerce(s, opts)
	require.NoError(t, err)
	assert.Len(t, v.Array, 2)

	opts.SetStrategy = SetObject
	v, err = Coerce(s, opts)
	require.NoError(t, err)
	assert.Equal(t, "set", v.TypeTag)
}

func TestCoerceBigDecimalStrategies(t *testing.T) {
	bd := &ast.BigDecimal{Value: "1.5", Precision: 9}

	opts := DefaultOptions()
	v, err := Coerce(bd, opts)
	require.NoError(t, err)
	assert.Equal(t, "1.5", v.Str)

	opts.BigDecimalStrategy = BigDecimalNumber
	v, err = Coerce(bd, opts)
	require.NoError(t, err)
	assert.True(t, v.IsFloat)

	opts.BigDecimalStrategy = BigDecimalObject
	v, err = Coerce(bd, opts)
	require.NoError(t, err)
	assert.Equal(t, "bigdecimal", v.TypeTag)
}

func TestCoerceSymbolStrategies(t *testing.T) {
	sym := &ast.Symbol{Value: "name"}

	opts := DefaultOptions()
	v, err := Coerce(sym, opts)
	require.NoError(t, err)
	assert.Equal(t, "name", v.Str)

	opts.SymbolHandler = SymbolPreserve
	v, err = Coerce(sym, opts)
	require.NoError(t, err)
	assert.Equal(t, "symbol", v.TypeTag)
}

func TestCoerceNumericBases(t *testing.T) {
	cases := map[string]string{
		"0b1010": "10",
		"0o755":  "493",
		"0xFF":   "255",
	}
	for raw, want := range cases {
		var n *ast.Number
		switch raw {
		case "0b1010":
			n = &ast.Number{Raw: raw, Format: token.FormatBinary}
		case "0o755":
			n = &ast.Number{Raw: raw, Format: token.FormatOctal}
		case "0xFF":
			n = &ast.Number{Raw: raw, Format: token.FormatHex}
		}
		v, err := coerceNumber(n)
		require.NoError(t, err)
		assert.Equal(t, want, v.Number, "raw=%s", raw)
	}
}

func TestCoerceBinaryStrategies(t *testing.T) {
	s := &ast.String{Value: "a\x81b", HasBinary: true}

	opts := DefaultOptions()
	opts.BinaryStrategy = BinaryReplacement
	v, err := Coerce(s, opts)
	require.NoError(t, err)
	assert.Contains(t, v.Str, "�")

	opts.BinaryStrategy = BinaryArray
	v, err = Coerce(s, opts)
	require.NoError(t, err)
	assert.Len(t, v.Array, 3)

	opts.BinaryStrategy = BinaryError
	_, err = Coerce(s, opts)
	assert.Error(t, err)
}
