package wire

import "encoding/binary"

// Byte widths of the supported signed integers.
const (
	Width8  = 1
	Width16 = 2
	Width32 = 4
)

// PutInt encodes v into b as a two's-complement signed integer using the
// given byte order. len(b) selects the width and must be 1, 2 or 4.
func PutInt(b []byte, order binary.ByteOrder, v int64) {
	switch len(b) {
	case Width8:
		b[0] = byte(v)
	case Width16:
		order.PutUint16(b, uint16(v))
	case Width32:
		order.PutUint32(b, uint32(v))
	default:
		panic("wire: bad width")
	}
}

// Int decodes a two's-complement signed integer from b, sign-extending by
// width. len(b) must be 1, 2 or 4.
func Int(b []byte, order binary.ByteOrder) int64 {
	switch len(b) {
	case Width8:
		return int64(int8(b[0]))
	case Width16:
		return int64(int16(order.Uint16(b)))
	case Width32:
		return int64(int32(order.Uint32(b)))
	default:
		panic("wire: bad width")
	}
}

// Fits reports whether v is representable in width bytes, two's complement.
func Fits(v int64, width int) bool {
	switch width {
	case Width8:
		return v >= -1<<7 && v <= 1<<7-1
	case Width16:
		return v >= -1<<15 && v <= 1<<15-1
	case Width32:
		return v >= -1<<31 && v <= 1<<31-1
	default:
		return false
	}
}
