package oasdown

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Marshalers returns the oasdown marshalers, emitting a D as a JSON object in
// entry order. A is a plain slice and needs no custom logic; its elements
// still pass through the D marshaler when they are documents.
func Marshalers() *json.Marshalers {
	return json.JoinMarshalers(
		documentMarshaler(),
	)
}

// documentMarshaler writes a D as a JSON object, one token pair per entry.
// This is the encoding counterpart of decodeObject: the same entries come
// back in the same order.
func documentMarshaler() *json.Marshalers {
	return json.MarshalToFunc(func(enc *jsontext.Encoder, d D) error {
		if err := enc.WriteToken(jsontext.BeginObject); err != nil {
			return fmt.Errorf("write object open: %w", err)
		}
		for _, e := range d {
			if err := enc.WriteToken(jsontext.String(e.Key)); err != nil {
				return fmt.Errorf("write object key %q: %w", e.Key, err)
			}
			if err := json.MarshalEncode(enc, e.Value); err != nil {
				return fmt.Errorf("write object value for key %q: %w", e.Key, err)
			}
		}
		if err := enc.WriteToken(jsontext.EndObject); err != nil {
			return fmt.Errorf("write object close: %w", err)
		}
		return nil
	})
}
