package wire

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestPutIntRoundTrip(t *testing.T) {
	cases := []struct {
		width int
		vals  []int64
	}{
		{Width8, []int64{0, 1, -1, -128, 127}},
		{Width16, []int64{0, 256, -32768, 32767}},
		{Width32, []int64{0, 1 << 20, -2147483648, 2147483647}},
	}
	orders := []binary.ByteOrder{binary.LittleEndian, binary.BigEndian}
	for _, c := range cases {
		for _, order := range orders {
			for _, v := range c.vals {
				b := make([]byte, c.width)
				PutInt(b, order, v)
				got := Int(b, order)
				if got != v {
					t.Fatalf("width %d %v: Expected: %d got %d", c.width, order, v, got)
				}
			}
		}
	}
}

func TestIntSignExtension(t *testing.T) {
	if got := Int([]byte{0xFF}, binary.LittleEndian); got != -1 {
		t.Fatalf("Expected: -1 got %d", got)
	}
	if got := Int([]byte{0xFF, 0xFF}, binary.BigEndian); got != -1 {
		t.Fatalf("Expected: -1 got %d", got)
	}
}

func TestPutIntLayout(t *testing.T) {
	b := make([]byte, Width16)
	PutInt(b, binary.BigEndian, 0x0102)
	if !bytes.Equal(b, []byte{0x01, 0x02}) {
		t.Fatalf("Expected: 01 02 got % x", b)
	}
	PutInt(b, binary.LittleEndian, 0x0102)
	if !bytes.Equal(b, []byte{0x02, 0x01}) {
		t.Fatalf("Expected: 02 01 got % x", b)
	}
}

func TestFits(t *testing.T) {
	if !Fits(127, Width8) || Fits(128, Width8) {
		t.Fatal("int8 upper bound")
	}
	if !Fits(-128, Width8) || Fits(-129, Width8) {
		t.Fatal("int8 lower bound")
	}
	if !Fits(32767, Width16) || Fits(32768, Width16) {
		t.Fatal("int16 bounds")
	}
	if !Fits(-2147483648, Width32) || Fits(2147483648, Width32) {
		t.Fatal("int32 bounds")
	}
	if Fits(0, 3) {
		t.Fatal("unknown width accepted")
	}
}
