package archive2

// reassembledMessage is one logical message's header and complete payload,
// after multi-frame segments (if any) have been concatenated in order.
type reassembledMessage struct {
	Header  MessageHeader
	Payload []byte
}

type segmentGroupKey struct {
	sequenceID  uint16
	messageType uint8
}

type segmentGroup struct {
	nextSegment int
	header      MessageHeader
	payload     []byte
	failed      bool
}

// reassembleMessages groups consecutive frames sharing (sequence_id,
// message_type) where num_segments > 1 into single logical messages,
// concatenating their payloads in segment order. Single-segment messages bypass reassembly entirely.
// Segments that arrive out of order, and messages whose segments are not
// all present in the record, cause that logical message to be dropped (with
// a Diagnostic); framing continues for the rest of the record.
func reassembleMessages(frames []frameSlice, recordIndex int, diags *diagnosticsCollector) []reassembledMessage {
	var out []reassembledMessage
	groups := make(map[segmentGroupKey]*segmentGroup)

	for _, f := range frames {
		if f.Header.NumSegments <= 1 {
			out = append(out, reassembledMessage{Header: f.Header, Payload: f.Payload})
			continue
		}

		key := segmentGroupKey{sequenceID: f.Header.SequenceID, messageType: f.Header.MessageType}
		g, ok := groups[key]
		if !ok {
			g = &segmentGroup{nextSegment: 1}
			groups[key] = g
		}
		if g.failed {
			continue
		}

		if int(f.Header.SegmentNumber) != g.nextSegment {
			diags.add(recordIndex, int(f.Header.SequenceID), ErrInvalidFraming,
				framingError(ShortInputError(g.nextSegment, int(f.Header.SegmentNumber))))
			g.failed = true
			continue
		}

		if g.nextSegment == 1 {
			g.header = f.Header
		}
		g.payload = append(g.payload, f.Payload...)
		g.nextSegment++

		if int(f.Header.SegmentNumber) == int(f.Header.NumSegments) {
			out = append(out, reassembledMessage{Header: g.header, Payload: g.payload})
			delete(groups, key)
		}
	}

	for _, g := range groups {
		if g.failed {
			continue
		}
		diags.add(recordIndex, int(g.header.SequenceID), ErrInvalidFraming,
			framingError(ShortInputError(int(g.header.NumSegments), g.nextSegment-1)))
	}

	return out
}
