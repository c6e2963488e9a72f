package archive2

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// scenario: a well-formed volume header decodes cleanly.
func TestDecodeVolumeHeaderWellFormed(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, 0, VolumeHeaderSize)
	buf = append(buf, []byte("AR2V0006.001")...)
	mjd := make([]byte, 4)
	binary.BigEndian.PutUint32(mjd, 19000)
	buf = append(buf, mjd...)
	ms := make([]byte, 4)
	binary.BigEndian.PutUint32(ms, 43200000)
	buf = append(buf, ms...)
	buf = append(buf, []byte("KDMX")...)

	h, err := decodeVolumeHeader(buf)
	require.NoError(err)
	require.True(len(h.TapeFilename) >= 4 && h.TapeFilename[:4] == "AR2V")
	require.Equal("KDMX", h.ICAO)

	want := time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC).
		Add(19000 * 24 * time.Hour).
		Add(43200000 * time.Millisecond)
	require.Equal(want, h.Date())
	require.Equal(12, h.Date().Hour())
}

func TestDecodeVolumeHeaderTruncatedIsCatastrophic(t *testing.T) {
	_, err := decodeVolumeHeader([]byte("short"))
	require.Error(t, err)
	require.True(t, IsKind(err, ErrTruncated))
}

func TestDecodeVolumeHeaderBadMagicStillDecodes(t *testing.T) {
	buf := make([]byte, VolumeHeaderSize)
	copy(buf, []byte("NOTANARCHIVE"))
	h, err := decodeVolumeHeader(buf)
	require.NoError(t, err)
	require.NotEqual(t, "AR2V", h.TapeFilename[:4])
}
