package search

import (
	"fmt"
	"time"
)

// Kind identifies which member of the Value union is set
type Kind int

const (
	KindInvalid Kind = iota
	KindBool
	KindString
	KindInt
	KindTime
)

// String returns the kind name used in error messages
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindTime:
		return "time"
	default:
		return "invalid"
	}
}

// Value is a raw parameter value: exactly one of bool, string, int or time.
// The zero Value has KindInvalid.
type Value struct {
	kind Kind
	b    bool
	s    string
	i    int64
	t    time.Time
}

// Bool returns a bool Value
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// String returns a string Value
func String(s string) Value { return Value{kind: KindString, s: s} }

// Int returns an int Value
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Time returns a timestamp Value
func Time(t time.Time) Value { return Value{kind: KindTime, t: t} }

// ValueOf converts a loosely typed Go value (e.g. decoded from YAML or JSON)
// into a Value. Unsupported types return an error.
func ValueOf(v any) (Value, error) {
	switch x := v.(type) {
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Int(int64(x)), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case time.Time:
		return Time(x), nil
	case *time.Time:
		if x == nil {
			return Value{}, fmt.Errorf("unsupported parameter value: nil *time.Time")
		}
		return Time(*x), nil
	default:
		return Value{}, fmt.Errorf("unsupported parameter value of type %T", v)
	}
}

// Kind returns which member of the union is set
func (v Value) Kind() Kind { return v.kind }

// AsBool returns the bool member and whether the Value holds a bool
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsString returns the string member and whether the Value holds a string
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsInt returns the int member and whether the Value holds an int
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsTime returns the time member and whether the Value holds a time
func (v Value) AsTime() (time.Time, bool) { return v.t, v.kind == KindTime }

// String renders the value for messages and for identity normalization.
// Times use RFC 3339.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindString:
		return v.s
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindTime:
		return v.t.Format(time.RFC3339)
	default:
		return ""
	}
}
