package archive2

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func putFloat32(buf *bytes.Buffer, v float32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], math.Float32bits(v))
	buf.Write(b[:])
}

func putUint16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}

func putUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func buildDRD31HeaderOnly(t *testing.T, pointers [drd31NumPointers]uint32) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteString("KDMX")          // RadarIdentifier
	putUint32(&buf, 0)               // CollectionTimeMillis
	putUint16(&buf, 0)               // CollectionDateMJD
	putUint16(&buf, 1)               // AzimuthNumber
	putFloat32(&buf, 0)              // AzimuthAngle
	buf.WriteByte(0)                  // CompressionIndicator
	buf.WriteByte(0)                  // spare
	putUint16(&buf, 0)               // RadialLength
	buf.WriteByte(1)                  // AzimuthResolutionSpacingCode
	buf.WriteByte(0)                  // RadialStatus
	buf.WriteByte(0)                  // ElevationNumber
	buf.WriteByte(0)                  // CutSectorNumber
	putFloat32(&buf, 0)               // ElevationAngle
	buf.WriteByte(0)                  // RadialSpotBlankingStatus
	buf.WriteByte(0)                  // AzimuthIndexingMode
	putUint16(&buf, uint16(len(pointersNonZero(pointers)))) // DataBlockCount
	for _, p := range pointers {
		putUint32(&buf, p)
	}
	require.Equal(t, drd31HeaderSize, buf.Len())
	return buf.Bytes()
}

func pointersNonZero(pointers [drd31NumPointers]uint32) []uint32 {
	var out []uint32
	for _, p := range pointers {
		if p != 0 {
			out = append(out, p)
		}
	}
	return out
}

func buildVolumeDataBlock(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteByte('V')
	buf.WriteString("VOL")
	putUint16(&buf, 0) // LRTUP
	buf.WriteByte(1)   // VersionMajor
	buf.WriteByte(0)   // VersionMinor
	putFloat32(&buf, 41.7) // Lat
	putFloat32(&buf, -93.7) // Long
	var h [2]byte
	binary.BigEndian.PutUint16(h[:], uint16(300))
	buf.Write(h[:]) // SiteHeight (as uint16 bit pattern, signed read downstream)
	putUint16(&buf, 10) // FeedhornHeight
	putFloat32(&buf, 1.0) // CalibrationConstant
	putFloat32(&buf, 0)
	putFloat32(&buf, 0)
	putFloat32(&buf, 0)
	putFloat32(&buf, 0)
	putUint16(&buf, 12) // VCP number
	putUint16(&buf, 0)  // ProcessingStatus
	require.Equal(t, volumeDataBlockSize, buf.Len())
	return buf.Bytes()
}

// scenario: a message whose only data block is the volume block decodes,
// with no moment blocks.
func TestDecodeDRD31MinimalVolumeBlockOnly(t *testing.T) {
	require := require.New(t)

	var pointers [drd31NumPointers]uint32
	pointers[0] = drd31HeaderSize

	header := buildDRD31HeaderOnly(t, pointers)
	volBlock := buildVolumeDataBlock(t)

	payload := append(header, volBlock...)

	m, err := decodeDRD31(payload)
	require.NoError(err)
	require.NotNil(m.VolumeData)
	require.Nil(m.Reflectivity)
	require.Nil(m.Velocity)
	require.InDelta(41.7, m.VolumeData.Lat, 0.01)
}

// scenario: scaled moment decoding handles below-threshold and range-folded sentinels.
func TestDecodeScaledMomentSentinels(t *testing.T) {
	require := require.New(t)

	v := decodeScaledMoment(128, 2.0, 66.0)
	require.False(v.BelowThreshold)
	require.False(v.RangeFolded)
	require.InDelta(31.0, v.Value, 0.0001)

	below := decodeScaledMoment(0, 2.0, 66.0)
	require.True(below.BelowThreshold)

	folded := decodeScaledMoment(1, 2.0, 66.0)
	require.True(folded.RangeFolded)
}

func TestDecodeDRD31RejectsOverlappingPointers(t *testing.T) {
	require := require.New(t)

	var pointers [drd31NumPointers]uint32
	pointers[0] = drd31HeaderSize
	pointers[1] = drd31HeaderSize + 2 // overlaps the VOL block's declared 44-byte span

	header := buildDRD31HeaderOnly(t, pointers)
	volBlock := buildVolumeDataBlock(t)
	payload := append(header, volBlock...)
	payload = append(payload, make([]byte, 64)...) // padding so the second pointer is in-bounds

	m, err := decodeDRD31(payload)
	require.NoError(err)
	// only the first (lowest-offset) pointer's block should be accepted.
	require.NotNil(m.VolumeData)
}

func TestDecodeDRD31TooShortIsError(t *testing.T) {
	_, err := decodeDRD31([]byte{1, 2, 3})
	require.Error(t, err)
	require.True(t, IsKind(err, ErrShortInput))
}
