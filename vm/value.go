package vm

import (
	"fmt"
	"sort"
	"strings"
)

// Kind identifies the type of a Value. It is used in type-mismatch
// diagnostics.
type Kind uint8

const (
	KindI64 Kind = iota
	KindF64
	KindBool
	KindString
	KindBytes
	KindList
	KindMap
	KindNull
)

var kindNames = [...]string{
	KindI64:    "I64",
	KindF64:    "F64",
	KindBool:   "Bool",
	KindString: "String",
	KindBytes:  "Bytes",
	KindList:   "List",
	KindMap:    "Map",
	KindNull:   "Null",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Value is a runtime value. The concrete types are I64, F64, Bool, Str,
// Bytes, List, Map and Null.
type Value interface {
	Kind() Kind
	String() string
	value() // marker method
}

// I64 is a signed 64-bit integer.
type I64 int64

// F64 is a 64-bit float.
type F64 float64

// Bool is a boolean.
type Bool bool

// Str is a UTF-8 string.
type Str string

// Bytes is a byte sequence.
type Bytes []byte

// List is an ordered sequence of values.
type List []Value

// Map maps string keys to values. Keys are unique.
type Map map[string]Value

// Null is the null value.
type Null struct{}

func (I64) Kind() Kind   { return KindI64 }
func (F64) Kind() Kind   { return KindF64 }
func (Bool) Kind() Kind  { return KindBool }
func (Str) Kind() Kind   { return KindString }
func (Bytes) Kind() Kind { return KindBytes }
func (List) Kind() Kind  { return KindList }
func (Map) Kind() Kind   { return KindMap }
func (Null) Kind() Kind  { return KindNull }

func (I64) value()   {}
func (F64) value()   {}
func (Bool) value()  {}
func (Str) value()   {}
func (Bytes) value() {}
func (List) value()  {}
func (Map) value()   {}
func (Null) value()  {}

// ---------------------------------------------------------------------------
// Display formatting
// ---------------------------------------------------------------------------

func (v I64) String() string { return fmt.Sprintf("%d", int64(v)) }

// String prints the float with 3 decimals in a 7-character field.
func (v F64) String() string { return fmt.Sprintf("%7.3f", float64(v)) }

func (v Bool) String() string {
	if v {
		return "true"
	}
	return "false"
}

func (v Str) String() string { return `"` + string(v) + `"` }

// String prints each byte as unpadded lowercase hex inside b"...".
func (v Bytes) String() string {
	var sb strings.Builder
	sb.WriteString(`b"`)
	for _, b := range v {
		fmt.Fprintf(&sb, "%x", b)
	}
	sb.WriteString(`"`)
	return sb.String()
}

func (v List) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, elem := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(elem.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// String prints the entries in ascending key order.
func (v Map) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range v.Keys() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "\"%s\":%s", k, v[k])
	}
	sb.WriteByte('}')
	return sb.String()
}

func (Null) String() string { return "null" }

// Keys returns the map keys in ascending order.
func (v Map) Keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ---------------------------------------------------------------------------
// Equality, copying and size accounting
// ---------------------------------------------------------------------------

// Equal reports structural equality. Values of different kinds are never
// equal, so I64(1) and F64(1) differ.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch a := a.(type) {
	case I64:
		return a == b.(I64)
	case F64:
		return a == b.(F64)
	case Bool:
		return a == b.(Bool)
	case Str:
		return a == b.(Str)
	case Bytes:
		bb := b.(Bytes)
		if len(a) != len(bb) {
			return false
		}
		for i := range a {
			if a[i] != bb[i] {
				return false
			}
		}
		return true
	case List:
		bl := b.(List)
		if len(a) != len(bl) {
			return false
		}
		for i := range a {
			if !Equal(a[i], bl[i]) {
				return false
			}
		}
		return true
	case Map:
		bm := b.(Map)
		if len(a) != len(bm) {
			return false
		}
		for k, av := range a {
			bv, ok := bm[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	case Null:
		return true
	}
	return false
}

// Copy returns a deep copy of v. Scalars are returned as is.
func Copy(v Value) Value {
	switch v := v.(type) {
	case Bytes:
		return append(Bytes(nil), v...)
	case List:
		out := make(List, len(v))
		for i, elem := range v {
			out[i] = Copy(elem)
		}
		return out
	case Map:
		out := make(Map, len(v))
		for k, elem := range v {
			out[k] = Copy(elem)
		}
		return out
	}
	return v
}

// valueHeaderSize is the accounted size of a single value slot.
const valueHeaderSize = 64

// Size returns the accounted memory size of v: one header per value plus
// the transitive payload (string and byte lengths, map key lengths).
func Size(v Value) int {
	transitive := 0
	switch v := v.(type) {
	case Str:
		transitive = len(v)
	case Bytes:
		transitive = len(v)
	case List:
		for _, elem := range v {
			transitive += Size(elem)
		}
	case Map:
		for k, elem := range v {
			transitive += len(k) + Size(elem)
		}
	}
	return valueHeaderSize + transitive
}
