package archive2

import "fmt"

// RequestType identifies what the RPG is asking the RDA to (re)send.
type RequestType uint16

const (
	RequestTypeVolumeCoveragePattern RequestType = 1
	RequestTypeClutterFilterMap      RequestType = 2
	RequestTypeClutterFilterBypass   RequestType = 3
)

func (r RequestType) Name() string {
	switch r {
	case RequestTypeVolumeCoveragePattern:
		return "VolumeCoveragePattern"
	case RequestTypeClutterFilterMap:
		return "ClutterFilterMap"
	case RequestTypeClutterFilterBypass:
		return "ClutterFilterBypassMap"
	default:
		return fmt.Sprintf("Unknown(%d)", uint16(r))
	}
}

func (r RequestType) String() string { return r.Name() }

const requestForDataSize = 2

// RequestForData is message type 9: the RPG requesting retransmission of a
// specific product.
type RequestForData struct {
	Type RequestType
}

func decodeRequestForData(payload []byte) (*RequestForData, error) {
	if len(payload) < requestForDataSize {
		return nil, ShortInputError(requestForDataSize, len(payload))
	}
	c := newCursor(payload)
	raw, err := c.uint16()
	if err != nil {
		return nil, ShortInputError(requestForDataSize, len(payload))
	}
	return &RequestForData{Type: RequestType(raw)}, nil
}
