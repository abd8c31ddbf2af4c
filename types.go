package binrec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding"

	"github.com/rawbytedev/binrec/internal/wire"
)

// Type is the codec and validity contract for one value domain. The set of
// implementations is closed: IntType for 1/2/4-byte signed integers and
// StringType for fixed-length text.
type Type interface {
	// Verify reports whether v's kind matches what this type reads and
	// writes. Permissive types do not check numeric range or encoded
	// length; see the Strict fields.
	Verify(v Value) bool
	// Read consumes exactly Size bytes from r and decodes them.
	Read(r io.Reader) (Value, error)
	// Write encodes v and returns the byte count written. Permissive
	// strings may write more or fewer than Size bytes; see StringType.
	Write(w io.Writer, v Value) (int, error)
	// Size is the fixed wire width in bytes.
	Size() int
	// String describes the type, e.g. "int16" or "string[8]".
	String() string
}

// IntType reads and writes two's-complement signed integers of Width bytes.
type IntType struct {
	Width int
	// Order is the wire byte order. Writer and reader must agree out of
	// band; nothing on the wire records it.
	Order binary.ByteOrder
	// Strict makes Verify and Write reject values outside the width's
	// representable range. Off, out-of-range values are truncated on write.
	Strict bool
}

// Int8 returns a 1-byte signed integer type, little-endian.
func Int8() *IntType { return &IntType{Width: wire.Width8, Order: binary.LittleEndian} }

// Int16 returns a 2-byte signed integer type, little-endian.
func Int16() *IntType { return &IntType{Width: wire.Width16, Order: binary.LittleEndian} }

// Int32 returns a 4-byte signed integer type, little-endian.
func Int32() *IntType { return &IntType{Width: wire.Width32, Order: binary.LittleEndian} }

func (t *IntType) Verify(v Value) bool {
	if v.Kind() != KindInt {
		return false
	}
	if t.Strict && !wire.Fits(v.Int(), t.Width) {
		return false
	}
	return true
}

func (t *IntType) Read(r io.Reader) (Value, error) {
	buf := make([]byte, t.Width)
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return Value{}, &DecodeError{Type: t.String(), Err: err}
	}
	return IntValue(wire.Int(buf, t.Order)), nil
}

func (t *IntType) Write(w io.Writer, v Value) (int, error) {
	if v.Kind() != KindInt {
		return 0, fmt.Errorf("%s: %w: got %s", t, ErrValueKind, v.Kind())
	}
	if t.Strict && !wire.Fits(v.Int(), t.Width) {
		return 0, fmt.Errorf("%s: value %d out of range", t, v.Int())
	}
	buf := make([]byte, t.Width)
	wire.PutInt(buf, t.Order, v.Int())
	return w.Write(buf)
}

func (t *IntType) Size() int { return t.Width }

func (t *IntType) String() string { return fmt.Sprintf("int%d", t.Width*8) }

// StringType reads and writes fixed-length text. Length counts bytes on the
// wire, not runes. A nil Encoding means UTF-8; anything from
// golang.org/x/text/encoding (charmap, unicode, ...) plugs in.
type StringType struct {
	Length   int
	Encoding encoding.Encoding
	// Strict makes Verify and Write reject values whose encoded byte length
	// is not exactly Length. Off, a mismatched write desynchronizes every
	// field after this one in the record.
	Strict bool
}

// String returns a fixed-length UTF-8 text type of the given byte length.
func String(length int) *StringType { return &StringType{Length: length} }

func (t *StringType) Verify(v Value) bool {
	if v.Kind() != KindStr {
		return false
	}
	if t.Strict {
		b, err := t.encode(v.Str())
		if err != nil || len(b) != t.Length {
			return false
		}
	}
	return true
}

func (t *StringType) Read(r io.Reader) (Value, error) {
	buf := make([]byte, t.Length)
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return Value{}, &DecodeError{Type: t.String(), Err: err}
	}
	s, err := t.decode(buf)
	if err != nil {
		return Value{}, &DecodeError{Type: t.String(), Err: err}
	}
	return StrValue(s), nil
}

func (t *StringType) Write(w io.Writer, v Value) (int, error) {
	if v.Kind() != KindStr {
		return 0, fmt.Errorf("%s: %w: got %s", t, ErrValueKind, v.Kind())
	}
	b, err := t.encode(v.Str())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", t, err)
	}
	if t.Strict && len(b) != t.Length {
		return 0, fmt.Errorf("%s: encoded length %d, want %d", t, len(b), t.Length)
	}
	return w.Write(b)
}

func (t *StringType) Size() int { return t.Length }

func (t *StringType) String() string { return fmt.Sprintf("string[%d]", t.Length) }

var errInvalidUTF8 = errors.New("invalid UTF-8 sequence")

func (t *StringType) encode(s string) ([]byte, error) {
	if t.Encoding == nil {
		return []byte(s), nil
	}
	return t.Encoding.NewEncoder().Bytes([]byte(s))
}

func (t *StringType) decode(b []byte) (string, error) {
	if t.Encoding == nil {
		if !utf8.Valid(b) {
			return "", errInvalidUTF8
		}
		return string(b), nil
	}
	out, err := t.Encoding.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
