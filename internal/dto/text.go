package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Text is a raw request field. Strings, numbers and booleans keep their
// literal text; null and absent fields stay unset.
type Text struct {
	Value string
	Set   bool
}

func TextOf(s string) Text {
	return Text{Value: s, Set: true}
}

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		*t = Text{}
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = TextOf(s)
	case data[0] == '{' || data[0] == '[':
		return fmt.Errorf("expected a string, number or boolean, got %s", data)
	default:
		*t = TextOf(string(data))
	}
	return nil
}

func (t Text) MarshalJSON() ([]byte, error) {
	if !t.Set {
		return []byte("null"), nil
	}
	return json.Marshal(t.Value)
}

// Ptr returns nil for unset fields.
func (t Text) Ptr() *string {
	if !t.Set {
		return nil
	}
	v := t.Value
	return &v
}
