package oasdown

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Unmarshalers returns the full set of oasdown unmarshalers allowing decoding
// into:
//   - any/interface{} -> objects as D, arrays as A
//   - *D              -> direct ordered object decoding
//   - *A              -> direct array decoding
//
// Primitive JSON values (string, number, bool, null) are left to the default
// decoding logic.
func Unmarshalers() *json.Unmarshalers {
	return json.JoinUnmarshalers(
		valueUnmarshaler(),
		documentUnmarshaler(),
		collectionUnmarshaler(),
	)
}

// valueUnmarshaler wraps JSON objects as type D (ordered document) rather
// than map[string]any and JSON arrays as type A so callers can distinguish
// them from []any. Empty objects ({}) produce an empty D; empty arrays ([])
// produce an empty A.
func valueUnmarshaler() *json.Unmarshalers {
	return json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v *any) error {
		switch dec.PeekKind() {
		case '{':
			doc, err := decodeObject(dec)
			if err != nil {
				return err
			}
			*v = doc
			return nil
		case '[':
			arr, err := decodeArray(dec)
			if err != nil {
				return err
			}
			*v = arr
			return nil
		default:
			return json.SkipFunc
		}
	})
}

// documentUnmarshaler provides decoding of a JSON object into a *D when the
// target type is *D (ordered key preservation).
func documentUnmarshaler() *json.Unmarshalers {
	return json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v *D) error {
		if dec.PeekKind() != '{' {
			return json.SkipFunc
		}
		doc, err := decodeObject(dec)
		if err != nil {
			return err
		}
		*v = doc
		return nil
	})
}

// collectionUnmarshaler provides decoding of a JSON array into an *A when the
// target type is *A.
func collectionUnmarshaler() *json.Unmarshalers {
	return json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v *A) error {
		if dec.PeekKind() != '[' {
			return json.SkipFunc
		}
		arr, err := decodeArray(dec)
		if err != nil {
			return err
		}
		*v = arr
		return nil
	})
}

// decodeObject decodes a JSON object into a D, preserving key order.
func decodeObject(dec *jsontext.Decoder) (D, error) {
	if _, err := dec.ReadToken(); err != nil { // '{'
		return nil, fmt.Errorf("read object open: %w", err)
	}
	if dec.PeekKind() == '}' { // empty
		if _, err := dec.ReadToken(); err != nil { // '}'
			return nil, fmt.Errorf("read object close: %w", err)
		}
		return D{}, nil
	}
	doc := make(D, 0)
	for dec.PeekKind() != '}' {
		var k string
		if err := json.UnmarshalDecode(dec, &k); err != nil {
			return nil, fmt.Errorf("read object key: %w", err)
		}
		var v any
		if err := json.UnmarshalDecode(dec, &v); err != nil {
			return nil, fmt.Errorf("read object value for key %q: %w", k, err)
		}
		doc = append(doc, E{Key: k, Value: v})
	}
	if _, err := dec.ReadToken(); err != nil { // '}'
		return nil, fmt.Errorf("read object close: %w", err)
	}
	return doc, nil
}

// decodeArray decodes a JSON array into A.
func decodeArray(dec *jsontext.Decoder) (A, error) {
	if _, err := dec.ReadToken(); err != nil { // '['
		return nil, fmt.Errorf("read array open: %w", err)
	}
	if dec.PeekKind() == ']' { // empty
		if _, err := dec.ReadToken(); err != nil {
			return nil, fmt.Errorf("read array close: %w", err)
		}
		return A{}, nil
	}
	arr := make(A, 0)
	for dec.PeekKind() != ']' {
		var elem any
		if err := json.UnmarshalDecode(dec, &elem); err != nil {
			return nil, fmt.Errorf("read array element: %w", err)
		}
		arr = append(arr, elem)
	}
	if _, err := dec.ReadToken(); err != nil { // ']'
		return nil, fmt.Errorf("read array close: %w", err)
	}
	return arr, nil
}
