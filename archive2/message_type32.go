package archive2

// PRFSet is one pulse-repetition-frequency configuration entry within an
// RDAPRFData message, grounded on original_source/.../rda_prf_data/*.rs.
type PRFSet struct {
	PRFNumber          uint16
	PulseCount         uint16
	PulseRepetitionFreqHz uint32
}

const prfSetSize = 8

// RDAPRFData is message type 32: the set of pulse-repetition-frequency
// configurations the RDA is running or may select between.
type RDAPRFData struct {
	NumPRFSets uint16
	Sets       []PRFSet
}

const rdaPRFDataHeaderSize = 2

func decodeRDAPRFData(payload []byte) (*RDAPRFData, error) {
	if len(payload) < rdaPRFDataHeaderSize {
		return nil, ShortInputError(rdaPRFDataHeaderSize, len(payload))
	}

	c := newCursor(payload)
	m := &RDAPRFData{}
	var err error

	if m.NumPRFSets, err = c.uint16(); err != nil {
		return nil, ShortInputError(rdaPRFDataHeaderSize, len(payload))
	}

	for i := 0; i < int(m.NumPRFSets); i++ {
		if c.remaining() < prfSetSize {
			return nil, ShortInputError(rdaPRFDataHeaderSize+(i+1)*prfSetSize, len(payload))
		}
		var set PRFSet
		set.PRFNumber, _ = c.uint16()
		set.PulseCount, _ = c.uint16()
		set.PulseRepetitionFreqHz, _ = c.uint32()
		m.Sets = append(m.Sets, set)
	}

	return m, nil
}
