package archive2

// ClutterCensorZones is message type 8: the RPG's directive restricting
// which range zones of which elevation/azimuth combination should have
// clutter censoring applied, laid out identically to ClutterFilterMap,
// grounded on original_source/.../clutter_censor_zones/*.rs.
type ClutterCensorZones struct {
	GenerationDateMJD    uint16
	GenerationTimeMins   uint16
	NumElevationSegments uint16
	Elevations           []ElevationSegment
}

const clutterCensorZonesHeaderSize = 6

func decodeClutterCensorZones(payload []byte) (*ClutterCensorZones, error) {
	if len(payload) < clutterCensorZonesHeaderSize {
		return nil, ShortInputError(clutterCensorZonesHeaderSize, len(payload))
	}

	c := newCursor(payload)
	m := &ClutterCensorZones{}
	var err error

	if m.GenerationDateMJD, err = c.uint16(); err != nil {
		return nil, ShortInputError(clutterCensorZonesHeaderSize, len(payload))
	}
	if m.GenerationTimeMins, err = c.uint16(); err != nil {
		return nil, ShortInputError(clutterCensorZonesHeaderSize, len(payload))
	}
	if m.NumElevationSegments, err = c.uint16(); err != nil {
		return nil, ShortInputError(clutterCensorZonesHeaderSize, len(payload))
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
