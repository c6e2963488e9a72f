package archive2

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitLDMRecordsNegativeLengthMeansUncompressed(t *testing.T) {
	require := require.New(t)

	payload := make([]byte, 52)
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(int32(-52)))
	buf = append(buf, payload...)

	records := splitLDMRecords(buf)
	require.Len(records, 1)
	require.False(records[0].Compressed)
	require.Equal(52, len(records[0].Data))
}

func TestSplitLDMRecordsPositiveLengthMeansCompressed(t *testing.T) {
	require := require.New(t)

	payload := make([]byte, 10)
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, 10)
	buf = append(buf, payload...)

	records := splitLDMRecords(buf)
	require.Len(records, 1)
	require.True(records[0].Compressed)
}

func TestSplitLDMRecordsStopsOnZeroLength(t *testing.T) {
	buf := []byte{0x00, 0x00, 0x00, 0x00, 0xAA, 0xBB}
	records := splitLDMRecords(buf)
	require.Empty(t, records)
}

func TestSplitLDMRecordsNeverPanicsOnTruncatedTrailer(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, 1000)
	buf = append(buf, []byte{1, 2, 3}...) // declares 1000 bytes, has 3

	require.NotPanics(func() {
		records := splitLDMRecords(buf)
		require.Empty(records)
	})
}

func TestDecompressUncompressedRecordIsNoOp(t *testing.T) {
	r := LDMRecord{Compressed: false, Data: []byte{1, 2, 3}}
	out, err := r.Decompress()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, out)
}
