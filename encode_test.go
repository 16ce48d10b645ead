package oasdown

import (
	"strings"
	"testing"

	json "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/stretchr/testify/require"
)

func marshal(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v, json.WithMarshalers(Marshalers()))
	require.NoError(t, err)
	return strings.TrimSuffix(string(data), "\n")
}

func TestMarshalers(t *testing.T) {
	t.Run("empty document -> {}", func(t *testing.T) {
		require.Equal(t, `{}`, marshal(t, D{}))
	})

	t.Run("entry order preserved", func(t *testing.T) {
		d := D{
			{Key: "b", Value: float64(1)},
			{Key: "a", Value: float64(2)},
			{Key: "c", Value: float64(3)},
		}
		require.Equal(t, `{"b":1,"a":2,"c":3}`, marshal(t, d))
	})

	t.Run("nested documents and arrays", func(t *testing.T) {
		d := D{
			{Key: "outer", Value: D{{Key: "inner", Value: true}}},
			{Key: "list", Value: A{float64(1), "two", nil}},
		}
		require.Equal(t, `{"outer":{"inner":true},"list":[1,"two",null]}`, marshal(t, d))
	})

	t.Run("document inside array marshaled in order", func(t *testing.T) {
		a := A{D{{Key: "z", Value: float64(1)}, {Key: "a", Value: float64(2)}}}
		require.Equal(t, `[{"z":1,"a":2}]`, marshal(t, a))
	})

	t.Run("decode then encode round-trips ordering", func(t *testing.T) {
		src := `{"openapi":"3.1.0","paths":{"/b":{},"/a":{}},"info":{"title":"t"}}`
		var d D
		require.NoError(t, json.Unmarshal([]byte(src), &d, json.WithUnmarshalers(Unmarshalers())))
		require.Equal(t, src, marshal(t, d))
	})

	t.Run("indented output", func(t *testing.T) {
		d := D{{Key: "a", Value: float64(1)}}
		data, err := json.Marshal(d,
			json.WithMarshalers(Marshalers()),
			jsontext.WithIndent("  "))
		require.NoError(t, err)
		require.Equal(t, "{\n  \"a\": 1\n}", strings.TrimSuffix(string(data), "\n"))
	})
}
