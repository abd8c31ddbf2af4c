package binrec

import "fmt"

// Kind discriminates the variants a field value can hold.
type Kind uint8

const (
	KindUnset Kind = iota
	KindInt
	KindStr
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindUnset:
		return "unset"
	case KindInt:
		return "int"
	case KindStr:
		return "str"
	default:
		return "unknown"
	}
}

// Value is a tagged int-or-string variant. The zero Value is unset, which is
// distinct from every decodable value, so a freshly constructed field can be
// told apart from one holding a real zero or empty string.
type Value struct {
	kind Kind
	num  int64
	str  string
}

// IntValue returns an integer-kinded Value.
func IntValue(v int64) Value { return Value{kind: KindInt, num: v} }

// StrValue returns a string-kinded Value.
func StrValue(s string) Value { return Value{kind: KindStr, str: s} }

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsSet reports whether v holds a value.
func (v Value) IsSet() bool { return v.kind != KindUnset }

// Int returns the integer payload; zero unless Kind is KindInt.
func (v Value) Int() int64 { return v.num }

// Str returns the string payload; empty unless Kind is KindStr.
func (v Value) Str() string { return v.str }

func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return fmt.Sprintf("%d", v.num)
	case KindStr:
		return fmt.Sprintf("%q", v.str)
	default:
		return "<unset>"
	}
}
