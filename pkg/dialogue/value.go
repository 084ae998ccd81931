package dialogue

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ValueKind discriminates the variants of Value.
type ValueKind string

const (
	ValueText    ValueKind = "text"
	ValueNumber  ValueKind = "number"
	ValueBoolean ValueKind = "boolean"
	ValueArray   ValueKind = "array"
)

// Value is the runtime value type of the dialogue language: a closed
// tagged union of text, 64-bit float, boolean, or string array.
// Variables are untyped at the container level; a variable's type may
// change across assignments since a Value is replaced wholesale.
type Value struct {
	Kind   ValueKind
	Text   string
	Number float64
	Bool   bool
	Array  []string
}

// TextValue returns a text Value.
func TextValue(s string) Value {
	return Value{Kind: ValueText, Text: s}
}

// NumberValue returns a numeric Value.
func NumberValue(f float64) Value {
	return Value{Kind: ValueNumber, Number: f}
}

// BooleanValue returns a boolean Value.
func BooleanValue(b bool) Value {
	return Value{Kind: ValueBoolean, Bool: b}
}

// ArrayValue returns an array Value.
func ArrayValue(items ...string) Value {
	return Value{Kind: ValueArray, Array: items}
}

// IsZero reports whether the Value is the zero Value (no variant set).
// It is also consulted by encoding/json for the omitzero tag.
func (v Value) IsZero() bool {
	return v.Kind == ""
}

// String renders the value the way it would appear in a script.
func (v Value) String() string {
	switch v.Kind {
	case ValueNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case ValueBoolean:
		return strconv.FormatBool(v.Bool)
	case ValueArray:
		return "[" + strings.Join(v.Array, ", ") + "]"
	default:
		return v.Text
	}
}

// valueEnvelope is the serialized shape of a Value: a type tag plus the
// payload of the active variant.
type valueEnvelope struct {
	Type  ValueKind `json:"type" yaml:"type"`
	Value any       `json:"value" yaml:"value"`
}

func (v Value) envelope() (valueEnvelope, error) {
	env := valueEnvelope{Type: v.Kind}
	switch v.Kind {
	case ValueText:
		env.Value = v.Text
	case ValueNumber:
		env.Value = v.Number
	case ValueBoolean:
		env.Value = v.Bool
	case ValueArray:
		env.Value = v.Array
	default:
		return env, fmt.Errorf("unknown value kind %q", v.Kind)
	}
	return env, nil
}

func (v *Value) fromEnvelope(env valueEnvelope) error {
	switch env.Type {
	case ValueText:
		s, ok := env.Value.(string)
		if !ok {
			return fmt.Errorf("text value: expected string, got %T", env.Value)
		}
		*v = TextValue(s)
	case ValueNumber:
		switch n := env.Value.(type) {
		case float64:
			*v = NumberValue(n)
		case int:
			*v = NumberValue(float64(n))
		case json.Number:
			f, err := n.Float64()
			if err != nil {
				return fmt.Errorf("number value: %w", err)
			}
			*v = NumberValue(f)
		default:
			return fmt.Errorf("number value: expected number, got %T", env.Value)
		}
	case ValueBoolean:
		b, ok := env.Value.(bool)
		if !ok {
			return fmt.Errorf("boolean value: expected bool, got %T", env.Value)
		}
		*v = BooleanValue(b)
	case ValueArray:
		items, err := toStringSlice(env.Value)
		if err != nil {
			return fmt.Errorf("array value: %w", err)
		}
		*v = ArrayValue(items...)
	default:
		return fmt.Errorf("unknown value kind %q", env.Type)
	}
	return nil
}

func toStringSlice(raw any) ([]string, error) {
	switch items := raw.(type) {
	case []string:
		return items, nil
	case []any:
		out := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected string element, got %T", item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected array, got %T", raw)
	}
}

// MarshalJSON encodes the value as {"type": ..., "value": ...}.
// The zero Value encodes as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.IsZero() {
		return []byte("null"), nil
	}
	env, err := v.envelope()
	if err != nil {
		return nil, err
	}
	return json.Marshal(env)
}

// UnmarshalJSON decodes the {"type", "value"} envelope.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Value{}
		return nil
	}
	var env valueEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	return v.fromEnvelope(env)
}

// MarshalYAML mirrors the JSON envelope for YAML encoders.
func (v Value) MarshalYAML() (any, error) {
	if v.IsZero() {
		return nil, nil
	}
	return v.envelope()
}

// UnmarshalYAML decodes the envelope from a YAML node.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*v = Value{}
		return nil
	}
	var env valueEnvelope
	if err := node.Decode(&env); err != nil {
		return err
	}
	return v.fromEnvelope(env)
}
