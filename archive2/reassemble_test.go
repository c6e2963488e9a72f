package archive2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildClutterFilterMapPayload(t *testing.T) []byte {
	t.Helper()
	buf := []byte{0x00, 0x01, 0x00, 0x02, 0x00, 0x01} // genDate=1, genTime=2, numElevSegments=1
	for a := 0; a < 360; a++ {
		buf = append(buf, 0x00, 0x01) // zoneCount=1
		buf = append(buf, 0x00, 0x00) // opCode=0 (BypassFilter)
		buf = append(buf, 0x01, 0xFF) // endRange=511
	}
	return buf
}

// scenario: a multi-segment clutter filter map reassembles in order.
func TestReassembleMessagesMultiSegmentInOrder(t *testing.T) {
	require := require.New(t)

	payload := buildClutterFilterMapPayload(t)
	mid := len(payload) / 2

	header1 := MessageHeader{MessageType: 15, SequenceID: 7, NumSegments: 2, SegmentNumber: 1}
	header2 := MessageHeader{MessageType: 15, SequenceID: 7, NumSegments: 2, SegmentNumber: 2}

	frames := []frameSlice{
		{Header: header1, Payload: payload[:mid]},
		{Header: header2, Payload: payload[mid:]},
	}

	diags := &diagnosticsCollector{}
	out := reassembleMessages(frames, 0, diags)
	require.Empty(diags.diags)
	require.Len(out, 1)

	// segment conservation: reassembled payload length matches input.
	require.Equal(len(payload), len(out[0].Payload))

	cfm, err := decodeClutterFilterMap(out[0].Payload)
	require.NoError(err)
	require.EqualValues(1, cfm.NumElevationSegments)
	require.Len(cfm.Elevations, 1)
	lastZone := cfm.Elevations[0].Azimuths[359].RangeZones[0]
	require.EqualValues(511, lastZone.EndRangeKm)
}

func TestReassembleMessagesOutOfOrderSegmentIsDropped(t *testing.T) {
	require := require.New(t)

	header1 := MessageHeader{MessageType: 15, SequenceID: 9, NumSegments: 2, SegmentNumber: 2}
	frames := []frameSlice{{Header: header1, Payload: []byte{1, 2, 3}}}

	diags := &diagnosticsCollector{}
	out := reassembleMessages(frames, 0, diags)
	require.Empty(out)
	require.Len(diags.diags, 1)
	require.Equal(ErrInvalidFraming, diags.diags[0].Kind)
}

func TestReassembleMessagesSingleSegmentPassesThrough(t *testing.T) {
	header := MessageHeader{MessageType: 4, NumSegments: 1, SegmentNumber: 1}
	frames := []frameSlice{{Header: header, Payload: []byte("hi")}}

	diags := &diagnosticsCollector{}
	out := reassembleMessages(frames, 0, diags)
	require.Len(t, out, 1)
	require.Equal(t, []byte("hi"), out[0].Payload)
}
