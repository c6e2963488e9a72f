package archive2

import "fmt"

// OpCode is the clutter filter map's per-range-zone control code.
type OpCode uint16

const (
	OpCodeBypassFilter      OpCode = 0
	OpCodeBypassMapInControl OpCode = 1
	OpCodeForceFilter        OpCode = 2
)

func (o OpCode) Name() string {
	switch o {
	case OpCodeBypassFilter:
		return "BypassFilter"
	case OpCodeBypassMapInControl:
		return "BypassMapInControl"
	case OpCodeForceFilter:
		return "ForceFilter"
	default:
		return fmt.Sprintf("Unknown(%d)", uint16(o))
	}
}

func (o OpCode) String() string { return o.Name() }

// RangeZone is one range segment's clutter filter behavior within an
// azimuth segment. The last zone of an azimuth segment always has EndRangeKm
// == 511.
type RangeZone struct {
	OpCode     OpCode
	EndRangeKm uint16
}

// AzimuthSegment is the set of range zones for one of the 360 azimuths
// within an elevation segment.
type AzimuthSegment struct {
	RangeZones []RangeZone
}

// ElevationSegment holds the 360 azimuth segments for one elevation.
type ElevationSegment struct {
	Azimuths [360]AzimuthSegment
}

// ClutterFilterMap is message type 15: a segmented message describing, for
// 1-5 elevations x 360 azimuths, which range zones have clutter filtering
// forced, bypassed, or left to the bypass map. Unlike DigitalRadarData, it
// has no pointer table: it must be decoded strictly sequentially.
type ClutterFilterMap struct {
	GenerationDateMJD   uint16
	GenerationTimeMins  uint16
	NumElevationSegments uint16
	Elevations          []ElevationSegment
}

const clutterFilterMapHeaderSize = 6
const maxRangeZonesPerAzimuth = 20

func decodeClutterFilterMap(payload []byte) (*ClutterFilterMap, error) {
	if len(payload) < clutterFilterMapHeaderSize {
		return nil, ShortInputError(clutterFilterMapHeaderSize, len(payload))
	}

	c := newCursor(payload)
	m := &ClutterFilterMap{}
	var err error

	if m.GenerationDateMJD, err = c.uint16(); err != nil {
		return nil, ShortInputError(clutterFilterMapHeaderSize, len(payload))
	}
	if m.GenerationTimeMins, err = c.uint16(); err != nil {
		return nil, ShortInputError(clutterFilterMapHeaderSize, len(payload))
	}
	if m.NumElevationSegments, err = c.uint16(); err != nil {
		return nil, ShortInputError(clutterFilterMapHeaderSize, len(payload))
	}

	for e := 0; e < int(m.NumElevationSegments); e++ {
		var elev ElevationSegment
		for a := 0; a < 360; a++ {
			zoneCount, err := c.uint16()
			if err != nil {
				return nil, ShortInputError(c.pos+2, len(payload))
			}
			if int(zoneCount) > maxRangeZonesPerAzimuth {
				return nil, ShortInputError(int(zoneCount), maxRangeZonesPerAzimuth)
			}

			seg := AzimuthSegment{}
			for z := 0; z < int(zoneCount); z++ {
				opCode, err := c.uint16()
				if err != nil {
					return nil, ShortInputError(c.pos+2, len(payload))
				}
				endRange, err := c.uint16()
				if err != nil {
					return nil, ShortInputError(c.pos+2, len(payload))
				}
				seg.RangeZones = append(seg.RangeZones, RangeZone{
					OpCode:     OpCode(opCode),
					EndRangeKm: endRange,
				})
			}
			elev.Azimuths[a] = seg
		}
		m.Elevations = append(m.Elevations, elev)
	}

	return m, nil
}
