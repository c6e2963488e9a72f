package archive2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeClutterFilterBypassMap(t *testing.T) {
	require := require.New(t)

	buf := []byte{0x00, 0x01, 0x00, 0x02, 0x00, 0x01} // header: genDate=1, genTime=2, numElev=1
	for a := 0; a < 360; a++ {
		for w := 0; w < clutterFilterBypassWordsPerRadial; w++ {
			if a == 0 && w == 0 {
				buf = append(buf, 0x00, 0x01) // bit 0 set
			} else {
				buf = append(buf, 0x00, 0x00)
			}
		}
	}

	m, err := decodeClutterFilterBypassMap(buf)
	require.NoError(err)
	require.Len(m.Elevations, 1)
	require.True(m.Elevations[0].Azimuths[0].Bypassed(0))
	require.False(m.Elevations[0].Azimuths[0].Bypassed(1))
	require.False(m.Elevations[0].Azimuths[1].Bypassed(0))
}

func TestDecodeClutterFilterBypassMapTooShortIsError(t *testing.T) {
	_, err := decodeClutterFilterBypassMap([]byte{1, 2})
	require.Error(t, err)
}
