package serialize

import (
	"testing"

	"github.com/devtext/texttools/rhp/value"
	"github.com/stretchr/testify/assert"
)

func TestSerializeScalars(t *testing.T) {
	assert.Equal(t, "null", ToJSON(value.Null, Options{}))
	assert.Equal(t, "true", ToJSON(value.Bool(true), Options{}))
	assert.Equal(t, `"hi"`, ToJSON(value.Str("hi"), Options{}))
	assert.Equal(t, "42", ToJSON(value.Int("42"), Options{}))
}

func TestSerializeStringEscaping(t *testing.T) {
	assert.Equal(t, `"a\nb\"c"`, ToJSON(value.Str("a\nb\"c"), Options{}))
}

func TestSerializeCompactArray(t *testing.T) {
	v := value.Arr([]value.Value{value.Int("1"), value.Int("2"), value.Int("3")})
	assert.Equal(t, "[1,2,3]", ToJSON(v, Options{}))
}

func TestSerializeIndentedObject(t *testing.T) {
	v := value.Obj([]value.Entry{
		{Key: "name", Value: value.Str("Alice")},
		{Key: "age", Value: value.Int("30")},
	})
	got := ToJSON(v, DefaultOptions())
	want := "{\n  \"name\": \"Alice\",\n  \"age\": 30\n}"
	assert.Equal(t, want, got)
}

func TestSerializeEmptyContainers(t *testing.T) {
	assert.Equal(t, "[]", ToJSON(value.Arr(nil), DefaultOptions()))
	assert.Equal(t, "{}", ToJSON(value.Obj(nil), DefaultOptions()))
}

func TestSerializeTypedObject(t *testing.T) {
	v := value.Typed("set", []value.Entry{{Key: "values", Value: value.Arr([]value.Value{value.Int("1")})}})
	got := ToJSON(v, Options{})
	assert.Equal(t, `{"__type__":"set","values":[1]}`, got)
}
