package rhp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToJSONMixedHash(t *testing.T) {
	got, err := ToJSON(`{:name => "Alice", age: 30, items: [1, 2, 3]}`, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Alice","age":30,"items":[1,2,3]}`, got)
}

func TestToJSONNumericBases(t *testing.T) {
	got, err := ToJSON(`{a:0b1010,b:0o755,c:0xFF,d:1_000_000,e:1.5e10}`, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":10,"b":493,"c":255,"d":1000000,"e":1.5e10}`, got)
}

func TestToJSONRangeStrategies(t *testing.T) {
	arr := Preset("strict")
	arr.RangeStrategy = "array"
	got, err := ToJSON(`{r:1..5}`, &arr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"r":[1,2,3,4,5]}`, got)

	str := Preset("strict")
	got, err = ToJSON(`{r:1..5}`, &str)
	require.NoError(t, err)
	assert.JSONEq(t, `{"r":"1..5"}`, got)

	def := DefaultOptions()
	got, err = ToJSON(`{r:1..5}`, &def)
	require.NoError(t, err)
	assert.JSONEq(t, `{"r":{"begin":1,"end":5,"exclude_end":false}}`, got)
}

func TestToJSONCycle(t *testing.T) {
	got, err := ToJSON(`{self:{...}}`, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"self":"[Circular]"}`, got)
}

func TestValidateEmptyInput(t *testing.T) {
	r := Validate("   ")
	assert.False(t, r.Valid)
	assert.NotEmpty(t, r.Error)
}

func TestValidateValidAndInvalid(t *testing.T) {
	assert.True(t, Validate(`{a: 1}`).Valid)
	assert.False(t, Validate(`{a: `).Valid)
}

func TestParseToASTExposesRawTree(t *testing.T) {
	node, err := ParseToAST(`{a: 1}`, nil)
	require.NoError(t, err)
	assert.NotNil(t, node)
}

func TestIdempotentKeysLastWins(t *testing.T) {
	got, err := ToJSON(`{a:1, a:2, a:3}`, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":3}`, got)
}

func TestPresetPedanticRejectsImplicitHash(t *testing.T) {
	opts := Preset("pedantic")
	_, err := Parse(`a: 1`, &opts)
	assert.Error(t, err)
}

func TestPresetJSON5LiteralNonFinite(t *testing.T) {
	opts := Preset("json5")
	v, err := Parse(`{n: Infinity}`, &opts)
	require.NoError(t, err)
	n, _ := v.Get("n")
	assert.Equal(t, 0, int(n.NonFinite))
}
