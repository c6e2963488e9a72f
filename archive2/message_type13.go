package archive2

// ClutterFilterBypassMap is message type 13: a segmented bitmap, one bit
// per range bin per azimuth per elevation, marking which range bins should
// bypass clutter filtering. Grounded on
// original_source/.../clutter_filter_bypass_map/*.rs.
const clutterFilterBypassMapHeaderSize = 6
const clutterFilterBypassWordsPerRadial = 32 // 512 range bins, 16 bits/word

// BypassRadial holds the packed bypass bitmap for one azimuth: bit N of
// word W represents range bin W*16+N.
type BypassRadial struct {
	Words [clutterFilterBypassWordsPerRadial]uint16
}

// Bypassed reports whether the given range bin (0-511) is marked for
// clutter filter bypass.
func (r BypassRadial) Bypassed(rangeBin int) bool {
	if rangeBin < 0 || rangeBin >= clutterFilterBypassWordsPerRadial*16 {
		return false
	}
	word := r.Words[rangeBin/16]
	bit := uint(rangeBin % 16)
	return word&(1<<bit) != 0
}

// BypassElevationSegment holds the 360 azimuth radials for one elevation.
type BypassElevationSegment struct {
	Azimuths [360]BypassRadial
}

// ClutterFilterBypassMap is the decoded message.
type ClutterFilterBypassMap struct {
	GenerationDateMJD    uint16
	GenerationTimeMins    uint16
	NumElevationSegments  uint16
	Elevations            []BypassElevationSegment
}

func decodeClutterFilterBypassMap(payload []byte) (*ClutterFilterBypassMap, error) {
	if len(payload) < clutterFilterBypassMapHeaderSize {
		return nil, ShortInputError(clutterFilterBypassMapHeaderSize, len(payload))
	}

	c := newCursor(payload)
	m := &ClutterFilterBypassMap{}
	var err error

	if m.GenerationDateMJD, err = c.uint16(); err != nil {
		return nil, ShortInputError(clutterFilterBypassMapHeaderSize, len(payload))
	}
	if m.GenerationTimeMins, err = c.uint16(); err != nil {
		return nil, ShortInputError(clutterFilterBypassMapHeaderSize, len(payload))
	}
	if m.NumElevationSegments, err = c.uint16(); err != nil {
		return nil, ShortInputError(clutterFilterBypassMapHeaderSize, len(payload))
	}

	for e := 0; e < int(m.NumElevationSegments); e++ {
		var elev BypassElevationSegment
		for a := 0; a < 360; a++ {
			var radial BypassRadial
			for w := 0; w < clutterFilterBypassWordsPerRadial; w++ {
				word, err := c.uint16()
				if err != nil {
					return nil, ShortInputError(c.pos+2, len(payload))
				}
				radial.Words[w] = word
			}
			elev.Azimuths[a] = radial
		}
		m.Elevations = append(m.Elevations, elev)
	}

	return m, nil
}
