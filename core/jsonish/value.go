package jsonish

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a [Value].
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
	KindTuple
	KindSet
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindTuple:
		return "tuple"
	case KindSet:
		return "set"
	}
	return "unknown"
}

// Value is a closed tagged variant over the types the parser can produce.
// The zero value is null. Values are immutable once returned by the parser.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	seq  []Value
	obj  *Object
	set  *Set
}

// NullValue returns the null value.
func NullValue() Value { return Value{} }

// BoolValue returns a boolean value.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// IntValue returns an integer value.
func IntValue(i int64) Value { return Value{kind: KindInt, i: i} }

// FloatValue returns a floating-point value.
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }

// StringValue returns a string value.
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

// ArrayValue returns an array over the given elements, preserving order.
func ArrayValue(elems ...Value) Value { return Value{kind: KindArray, seq: elems} }

// TupleValue returns a tuple over the given elements, preserving order.
func TupleValue(elems ...Value) Value { return Value{kind: KindTuple, seq: elems} }

// ObjectValue wraps an [Object] as a value.
func ObjectValue(o *Object) Value { return Value{kind: KindObject, obj: o} }

// SetValue wraps a [Set] as a value.
func SetValue(s *Set) Value { return Value{kind: KindSet, set: s} }

// Kind reports which variant the value holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean payload. The second result is false when the value
// is not a bool.
func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// Int returns the integer payload. The second result is false when the value
// is not an integer.
func (v Value) Int() (int64, bool) {
	return v.i, v.kind == KindInt
}

// Float returns the numeric payload as a float64. Integer values convert; the
// second result is false for non-numeric values.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	}
	return 0, false
}

// Text returns the string payload. The second result is false when the value
// is not a string.
func (v Value) Text() (string, bool) {
	return v.s, v.kind == KindString
}

// Items returns the elements of an array, tuple, or set in order, and nil for
// every other kind. The returned slice is shared; callers must not modify it.
func (v Value) Items() []Value {
	switch v.kind {
	case KindArray, KindTuple:
		return v.seq
	case KindSet:
		return v.set.elems
	}
	return nil
}

// Object returns the object payload. The second result is false when the
// value is not an object.
func (v Value) Object() (*Object, bool) {
	if v.kind == KindObject {
		return v.obj, true
	}
	return nil, false
}

// Set returns the set payload. The second result is false when the value is
// not a set.
func (v Value) Set() (*Set, bool) {
	if v.kind == KindSet {
		return v.set, true
	}
	return nil, false
}

// String renders the canonical form of the value: JSON-style literals with
// double-quoted strings, tuples in parens, and sets in braces. This rendering
// is also the identity used for set deduplication.
func (v Value) String() string {
	var b strings.Builder
	v.render(&b)
	return b.String()
}

func (v Value) render(b *strings.Builder) {
	switch v.kind {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		b.WriteString(strconv.FormatBool(v.b))
	case KindInt:
		b.WriteString(strconv.FormatInt(v.i, 10))
	case KindFloat:
		b.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
	case KindString:
		b.WriteString(strconv.Quote(v.s))
	case KindArray:
		renderSeq(b, '[', ']', v.seq)
	case KindTuple:
		renderSeq(b, '(', ')', v.seq)
	case KindSet:
		renderSeq(b, '{', '}', v.set.elems)
	case KindObject:
		b.WriteByte('{')
		for i, key := range v.obj.keys {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Quote(key))
			b.WriteString(": ")
			v.obj.vals[i].render(b)
		}
		b.WriteByte('}')
	}
}

func renderSeq(b *strings.Builder, open, close byte, elems []Value) {
	b.WriteByte(open)
	for i, e := range elems {
		if i > 0 {
			b.WriteString(", ")
		}
		e.render(b)
	}
	b.WriteByte(close)
}

// MarshalJSON encodes the value as standard JSON. Tuples and sets become
// arrays; object keys keep insertion order.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		return json.Marshal(v.b)
	case KindInt:
		return json.Marshal(v.i)
	case KindFloat:
		return json.Marshal(v.f)
	case KindString:
		return json.Marshal(v.s)
	case KindArray, KindTuple:
		return marshalElems(v.seq)
	case KindSet:
		return marshalElems(v.set.elems)
	case KindObject:
		return v.obj.MarshalJSON()
	}
	return []byte("null"), nil
}

// marshalElems keeps an empty sequence as [] rather than null.
func marshalElems(elems []Value) ([]byte, error) {
	if len(elems) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(elems)
}

// Object is a string-keyed mapping that preserves insertion order. Setting an
// existing key overwrites its value in place (last write wins) without moving
// the key.
type Object struct {
	keys []string
	idx  map[string]int
	vals []Value
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{idx: make(map[string]int)}
}

// Set stores v under key, overwriting any previous value for the same key.
func (o *Object) Set(key string, v Value) {
	if at, ok := o.idx[key]; ok {
		o.vals[at] = v
		return
	}
	o.idx[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, v)
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if at, ok := o.idx[key]; ok {
		return o.vals[at], true
	}
	return Value{}, false
}

// Len returns the number of keys.
func (o *Object) Len() int { return len(o.keys) }

// Keys returns the keys in insertion order. The returned slice is shared;
// callers must not modify it.
func (o *Object) Keys() []string { return o.keys }

// MarshalJSON encodes the object as a JSON object in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(o.vals[i])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Set is a collection of unique values in insertion order. Uniqueness is
// decided by the canonical rendering of each element, not by structural
// equality: two structurally different values with the same rendering
// collapse into one member, and formatting variance can keep structurally
// equal values apart. This imprecision is accepted.
type Set struct {
	elems []Value
	seen  map[string]struct{}
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{seen: make(map[string]struct{})}
}

// Add inserts v unless an element with the same canonical rendering is
// already present. Objects, arrays, and nested sets are first coerced to
// their canonical string rendering so every member has a stable identity;
// tuples are kept structured.
func (s *Set) Add(v Value) {
	switch v.kind {
	case KindObject, KindArray, KindSet:
		v = StringValue(v.String())
	}
	key := v.String()
	if _, dup := s.seen[key]; dup {
		return
	}
	s.seen[key] = struct{}{}
	s.elems = append(s.elems, v)
}

// Contains reports whether a value with the same canonical rendering as v is
// a member, applying the same coercion as [Set.Add].
func (s *Set) Contains(v Value) bool {
	switch v.kind {
	case KindObject, KindArray, KindSet:
		v = StringValue(v.String())
	}
	_, ok := s.seen[v.String()]
	return ok
}

// Len returns the number of members.
func (s *Set) Len() int { return len(s.elems) }

// Values returns the members in insertion order. The returned slice is
// shared; callers must not modify it.
func (s *Set) Values() []Value { return s.elems }
