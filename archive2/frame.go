package archive2

import "github.com/sirupsen/logrus"

const (
	// ctmHeaderLength is the legacy 12-byte Communications Terminal Manager
	// leader that precedes every message header in a frame; it carries no
	// useful data (RDA/RPG 7.3.5) and is always skipped.
	ctmHeaderLength = 12

	// messageHeaderLength is the size, in bytes, of the message header
	// (message size, channel+type, sequence id, julian date, millis of
	// day, segment count, segment number). Together with the 12-byte CTM
	// leader and the 2404-byte payload region this adds to the fixed
	// 2432-byte frame size; 2432-12-2404 = 16, which is also exactly the
	// field list's byte count when each field is taken at its natural
	// width, so that's the header size used here.
	messageHeaderLength = 16

	// FrameSize is the size, in bytes, of every Archive II message frame.
	FrameSize = 2432

	// payloadRegionSize is the portion of a frame available for message
	// payload once the CTM leader and message header are accounted for.
	payloadRegionSize = FrameSize - ctmHeaderLength - messageHeaderLength
)

// MessageHeader is the per-frame message header.
type MessageHeader struct {
	// MessageSize is the message size in halfwords, excluding this header.
	MessageSize         uint16
	RDARedundantChannel uint8
	MessageType         uint8
	SequenceID          uint16
	JulianDate          uint16
	MillisOfDay         uint32
	NumSegments         uint16
	SegmentNumber       uint16
}

// PayloadByteLength is MessageSize converted from halfwords to bytes.
func (h MessageHeader) PayloadByteLength() int {
	return int(h.MessageSize) * 2
}

func readMessageHeader(c *cursor) (MessageHeader, error) {
	var h MessageHeader
	var err error

	if h.MessageSize, err = c.uint16(); err != nil {
		return h, err
	}
	if h.RDARedundantChannel, err = c.uint8(); err != nil {
		return h, err
	}
	if h.MessageType, err = c.uint8(); err != nil {
		return h, err
	}
	if h.SequenceID, err = c.uint16(); err != nil {
		return h, err
	}
	if h.JulianDate, err = c.uint16(); err != nil {
		return h, err
	}
	if h.MillisOfDay, err = c.uint32(); err != nil {
		return h, err
	}
	if h.NumSegments, err = c.uint16(); err != nil {
		return h, err
	}
	if h.SegmentNumber, err = c.uint16(); err != nil {
		return h, err
	}
	return h, nil
}

// frameSlice is one frame's header and associated payload bytes, still
// un-reassembled (segmented messages require multiple frameSlices to be
// concatenated by reassemble.go).
type frameSlice struct {
	Header  MessageHeader
	Payload []byte
}

// readFrames walks a decompressed LDM record as a sequence of fixed
// 2432-byte frames, extracting each frame's header and
// payload. It never panics; structural problems are reported as Diagnostics
// rather than propagated as fatal errors. A header or payload that cannot
// be read, or a trailing fragment too short to hold a CTM leader, ends
// iteration; a declared payload larger than the frame's payload region is
// clamped to it and iteration continues.
func readFrames(record []byte, recordIndex int, diags *diagnosticsCollector) []frameSlice {
	var frames []frameSlice

	c := newCursor(record)
	for c.remaining() > 0 {
		frameStart := c.pos

		if err := c.skip(ctmHeaderLength); err != nil {
			// trailing partial frame, too short to hold a CTM leader; drop it.
			logrus.Debugf("frame reader: dropping trailing %d bytes (shorter than CTM leader)", c.remaining())
			diags.add(recordIndex, -1, ErrInvalidFraming, framingError(err))
			break
		}

		header, err := readMessageHeader(c)
		if err != nil {
			diags.add(recordIndex, -1, ErrInvalidFraming, framingError(err))
			break
		}

		payloadLen := header.PayloadByteLength()

		extendedLegacyPayload := header.NumSegments <= 1 && payloadLen > payloadRegionSize

		if extendedLegacyPayload {
			// edge case: legacy message-31 extended payload
			// that exceeds one frame's payload region without proper
			// segmentation. Take payloadLen bytes directly, bounded by the
			// remainder of the record, and resume framing right after.
			n := payloadLen
			if n > c.remaining() {
				n = c.remaining()
			}
			payload, err := c.bytes(n)
			if err != nil {
				diags.add(recordIndex, int(header.SequenceID), ErrInvalidFraming, framingError(err))
				break
			}
			frames = append(frames, frameSlice{Header: header, Payload: payload})
			continue
		}

		n := payloadLen
		if n > payloadRegionSize {
			// malformed: declared size larger than a normal frame allows,
			// but not flagged extended (segmented). Clamp and flag.
			diags.add(recordIndex, int(header.SequenceID), ErrInvalidFraming,
				framingError(ShortInputError(n, payloadRegionSize)))
			n = payloadRegionSize
		}

		payload, err := c.bytes(n)
		if err != nil {
			diags.add(recordIndex, int(header.SequenceID), ErrInvalidFraming, framingError(err))
			break
		}

		frames = append(frames, frameSlice{Header: header, Payload: payload})

		// advance to the end of this frame's fixed-size payload region,
		// discarding unused padding, so the next frame stays aligned.
		consumed := c.pos - frameStart
		remainder := FrameSize - consumed
		if remainder > 0 {
			if err := c.skip(remainder); err != nil {
				break
			}
		} else if remainder < 0 {
			// payload alone overran the frame; nothing sane to skip.
			diags.add(recordIndex, int(header.SequenceID), ErrInvalidFraming,
				framingError(ShortInputError(FrameSize, consumed)))
		}
	}

	return frames
}
