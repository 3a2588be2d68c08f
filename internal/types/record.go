package types

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

type ValueKind string

const (
	ValueKindNull   ValueKind = "null"
	ValueKindString ValueKind = "string"
	ValueKindNumber ValueKind = "number"
	ValueKindBool   ValueKind = "bool"
	ValueKindList   ValueKind = "list"
	ValueKindMap    ValueKind = "map"
)

// Value is a decoded field value. Scalars keep a canonical text form so that
// equal numbers written differently (10, 10.0, 0xA) compare equal.
type Value struct {
	Kind   ValueKind
	Scalar string
	Items  []Value
	Fields []Field
}

type Field struct {
	Name  string
	Value Value
}

// Record is one entry of a file's record list. Fields keep document order.
type Record struct {
	Index  int
	Fields []Field
}

func Null() Value {
	return Value{Kind: ValueKindNull}
}

func String(value string) Value {
	return Value{Kind: ValueKindString, Scalar: value}
}

func Bool(value bool) Value {
	return Value{Kind: ValueKindBool, Scalar: strconv.FormatBool(value)}
}

func Int(value int64) Value {
	return Value{Kind: ValueKindNumber, Scalar: strconv.FormatInt(value, 10)}
}

func Uint(value uint64) Value {
	return Value{Kind: ValueKindNumber, Scalar: strconv.FormatUint(value, 10)}
}

func Float(value float64) Value {
	if value == math.Trunc(value) && math.Abs(value) < 1e15 {
		return Int(int64(value))
	}
	return Value{Kind: ValueKindNumber, Scalar: strconv.FormatFloat(value, 'g', -1, 64)}
}

func List(items ...Value) Value {
	return Value{Kind: ValueKindList, Items: items}
}

func Map(fields ...Field) Value {
	return Value{Kind: ValueKindMap, Fields: fields}
}

func (v Value) IsNull() bool {
	return v.Kind == ValueKindNull || v.Kind == ""
}

// Key returns a comparable identity for the value. Values of different
// kinds never share a key, so the string "10" and the number 10 differ.
func (v Value) Key() string {
	switch v.Kind {
	case ValueKindList:
		parts := make([]string, 0, len(v.Items))
		for _, item := range v.Items {
			parts = append(parts, item.Key())
		}
		return "list:[" + strings.Join(parts, ",") + "]"
	case ValueKindMap:
		parts := make([]string, 0, len(v.Fields))
		for _, field := range v.Fields {
			parts = append(parts, strconv.Quote(field.Name)+"="+field.Value.Key())
		}
		return "map:{" + strings.Join(parts, ",") + "}"
	case ValueKindString:
		return "string:" + strconv.Quote(v.Scalar)
	case ValueKindNumber, ValueKindBool:
		return string(v.Kind) + ":" + v.Scalar
	default:
		return string(ValueKindNull)
	}
}

func (v Value) String() string {
	switch v.Kind {
	case ValueKindList:
		parts := make([]string, 0, len(v.Items))
		for _, item := range v.Items {
			parts = append(parts, item.String())
		}
		return "[" + strings.Join(parts, " ") + "]"
	case ValueKindMap:
		parts := make([]string, 0, len(v.Fields))
		for _, field := range v.Fields {
			parts = append(parts, field.Name+":"+field.Value.String())
		}
		return "map[" + strings.Join(parts, " ") + "]"
	case ValueKindString, ValueKindNumber, ValueKindBool:
		return v.Scalar
	default:
		return "null"
	}
}

// Interface converts the value into the generic shape produced by a JSON
// decoder using json.Number for numbers.
func (v Value) Interface() any {
	switch v.Kind {
	case ValueKindString:
		return v.Scalar
	case ValueKindNumber:
		return json.Number(v.Scalar)
	case ValueKindBool:
		return v.Scalar == "true"
	case ValueKindList:
		items := make([]any, 0, len(v.Items))
		for _, item := range v.Items {
			items = append(items, item.Interface())
		}
		return items
	case ValueKindMap:
		return fieldsInterface(v.Fields)
	default:
		return nil
	}
}

func NewRecord(index int, fields ...Field) Record {
	return Record{Index: index, Fields: fields}
}

func (r Record) Get(name string) (Value, bool) {
	for _, field := range r.Fields {
		if field.Name == name {
			return field.Value, true
		}
	}
	return Value{}, false
}

func (r Record) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

func (r Record) Names() []string {
	names := make([]string, 0, len(r.Fields))
	for _, field := range r.Fields {
		names = append(names, field.Name)
	}
	return names
}

func (r Record) Interface() map[string]any {
	return fieldsInterface(r.Fields)
}

func fieldsInterface(fields []Field) map[string]any {
	out := make(map[string]any, len(fields))
	for _, field := range fields {
		if _, seen := out[field.Name]; seen {
			continue
		}
		out[field.Name] = field.Value.Interface()
	}
	return out
}
