package archive2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursorBigEndianReads(t *testing.T) {
	require := require.New(t)

	buf := []byte{0x00, 0x01, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x2A}
	c := newCursor(buf)

	v16, err := c.uint16()
	require.NoError(err)
	require.Equal(uint16(1), v16)

	v16b, err := c.int16()
	require.NoError(err)
	require.Equal(int16(-1), v16b)

	v32, err := c.uint32()
	require.NoError(err)
	require.Equal(uint32(42), v32)
}

func TestCursorShortBufferNeverPanics(t *testing.T) {
	require := require.New(t)

	c := newCursor([]byte{0x01})
	_, err := c.uint32()
	require.Error(err)
	require.True(IsKind(err, ErrShortInput))

	_, err = c.bytes(10)
	require.Error(err)

	require.NoError(c.skip(0))
	require.Error(c.skip(-1))
}

func TestDecodeAngleScaling(t *testing.T) {
	require := require.New(t)

	require.InDelta(0.0, decodeAngle(0x0000), 0.0001)
	require.InDelta(90.0, decodeAngle(0x4000), 0.0001)
	require.InDelta(180.0, decodeAngle(0x8000), 0.0001)
}

func TestAsciiPreservesTrailingSpaces(t *testing.T) {
	c := newCursor([]byte("HELLO FROM RDA    "))
	s, err := c.ascii(18)
	require.NoError(t, err)
	require.Equal(t, "HELLO FROM RDA    ", s)
}
