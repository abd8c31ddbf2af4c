// Package binrec describes fixed-layout binary records as ordered sequences
// of typed fields and reads/writes them against byte streams.
//
// A record layout is declared once as a Struct of named, typed fields. The
// wire format carries no header, version tag or length prefix: the byte
// layout is exactly the declared field order and each field's fixed width,
// so writer and reader must agree on the layout out of band.
//
//	rec := binrec.New(
//		binrec.NewField("id", binrec.Int32()),
//		binrec.NewField("name", binrec.String(8)),
//	)
//	rec.Set("id", binrec.IntValue(1001))
//	rec.Set("name", binrec.StrValue("gopher!!"))
//	rec.Write(w)
package binrec

import (
	"fmt"
	"io"
)

// Field binds a name to a Type and holds the field's current value. The
// zero Value means unset. The type is fixed at construction; the value
// changes through Struct.Read and Struct.Set.
type Field struct {
	Name  string
	Type  Type
	Value Value
}

// NewField returns an unset field of the given name and type.
func NewField(name string, t Type) *Field {
	return &Field{Name: name, Type: t}
}

// NewFieldDefault is NewField with an initial value. The default is not
// passed through Verify; Set is the validated path.
func NewFieldDefault(name string, t Type, def Value) *Field {
	return &Field{Name: name, Type: t, Value: def}
}

// Struct is an ordered collection of fields defining one record layout.
// Field order is wire order for both Read and Write and is never reordered.
// Names need not be unique, but Get and Set resolve the first match, so
// keep them unique if you address fields by name.
//
// A Struct is not safe for concurrent use; the caller owns it and the
// stream for the duration of a Read or Write.
type Struct struct {
	fields []*Field
}

// New builds a record layout from fields, in wire order.
func New(fields ...*Field) *Struct {
	return &Struct{fields: fields}
}

// Fields returns the fields in declaration order. The slice is shared with
// the Struct; callers must not reorder it.
func (s *Struct) Fields() []*Field { return s.fields }

// Size returns the total record width in bytes.
func (s *Struct) Size() int {
	n := 0
	for _, f := range s.fields {
		n += f.Type.Size()
	}
	return n
}

// Read populates every field from r in declaration order. On failure the
// fields before the failing one keep their freshly decoded values; nothing
// is rolled back, so discard the struct's state on error.
func (s *Struct) Read(r io.Reader) error {
	for _, f := range s.fields {
		v, err := f.Type.Read(r)
		if err != nil {
			return fmt.Errorf("field %q: %w", f.Name, err)
		}
		f.Value = v
	}
	return nil
}

// Write encodes every field to w in declaration order and returns the total
// bytes written. A field holding an unset or mismatched value fails at the
// type level and aborts the walk.
func (s *Struct) Write(w io.Writer) (int, error) {
	total := 0
	for _, f := range s.fields {
		n, err := f.Type.Write(w, f.Value)
		total += n
		if err != nil {
			return total, fmt.Errorf("field %q: %w", f.Name, err)
		}
	}
	return total, nil
}

// Get returns the value of the first field named name.
func (s *Struct) Get(name string) (Value, error) {
	for _, f := range s.fields {
		if f.Name == name {
			return f.Value, nil
		}
	}
	return Value{}, &FieldNotFoundError{Name: name}
}

// Set assigns v to the first field named name after a Verify check.
func (s *Struct) Set(name string, v Value) error {
	for _, f := range s.fields {
		if f.Name == name {
			if !f.Type.Verify(v) {
				return &FieldValidationError{Name: name, Type: f.Type.String(), Value: v}
			}
			f.Value = v
			return nil
		}
	}
	return &FieldNotFoundError{Name: name}
}
