package binrec

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// TestWireGolden pins the exact wire bytes of a reference record so layout
// regressions (width, order, field sequence) show up as a byte diff.
// Regenerate with: go test -run TestWireGolden -update
func TestWireGolden(t *testing.T) {
	port := Int16()
	port.Order = binary.BigEndian
	rec := New(
		NewField("id", Int32()),
		NewField("flags", Int8()),
		NewField("port", port),
		NewField("name", String(8)),
	)
	require.NoError(t, rec.Set("id", IntValue(1001)))
	require.NoError(t, rec.Set("flags", IntValue(-5)))
	require.NoError(t, rec.Set("port", IntValue(8080)))
	require.NoError(t, rec.Set("name", StrValue("gopher!!")))

	var buf bytes.Buffer
	n, err := rec.Write(&buf)
	require.NoError(t, err)
	require.Equal(t, rec.Size(), n)

	g := goldie.New(t)
	g.Assert(t, "record", buf.Bytes())
}
