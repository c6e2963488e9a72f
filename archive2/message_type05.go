package archive2

import "fmt"

// PatternType is the VCP's scan strategy category.
type PatternType uint16

const (
	PatternTypeConstantElevation PatternType = 2
)

func (p PatternType) Name() string {
	switch p {
	case PatternTypeConstantElevation:
		return "ConstantElevation"
	default:
		return fmt.Sprintf("Unknown(%d)", uint16(p))
	}
}

func (p PatternType) String() string { return p.Name() }

// ChannelConfiguration is the processing mode used for a VCP elevation cut,
// grounded on original_source/.../volume_coverage_pattern/channel_configuration.rs.
type ChannelConfiguration uint8

const (
	ChannelConfigConstantPhase ChannelConfiguration = 0
	ChannelConfigRandomPhase   ChannelConfiguration = 1
	ChannelConfigSZ2Phase      ChannelConfiguration = 2
)

func (c ChannelConfiguration) Name() string {
	switch c {
	case ChannelConfigConstantPhase:
		return "ConstantPhase"
	case ChannelConfigRandomPhase:
		return "RandomPhase"
	case ChannelConfigSZ2Phase:
		return "SZ2Phase"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(c))
	}
}

func (c ChannelConfiguration) String() string { return c.Name() }

// WaveformType is the transmitted waveform for a VCP elevation cut, grounded
// on original_source/.../volume_coverage_pattern/raw/waveform_type.rs.
type WaveformType uint8

const (
	WaveformContiguousSurveillance              WaveformType = 1
	WaveformContiguousDopplerWithAmbiguity       WaveformType = 2
	WaveformContiguousDopplerWithoutAmbiguity    WaveformType = 3
	WaveformBatch                                WaveformType = 4
	WaveformStaggeredPulsePair                   WaveformType = 5
)

func (w WaveformType) Name() string {
	switch w {
	case WaveformContiguousSurveillance:
		return "CS"
	case WaveformContiguousDopplerWithAmbiguity:
		return "CDW"
	case WaveformContiguousDopplerWithoutAmbiguity:
		return "CDWO"
	case WaveformBatch:
		return "B"
	case WaveformStaggeredPulsePair:
		return "SPP"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(w))
	}
}

func (w WaveformType) String() string { return w.Name() }

// PulseWidth is the transmitted pulse width for a VCP elevation cut.
type PulseWidth uint8

const (
	PulseWidthShort PulseWidth = 2
	PulseWidthLong  PulseWidth = 4
)

func (p PulseWidth) Name() string {
	switch p {
	case PulseWidthShort:
		return "Short"
	case PulseWidthLong:
		return "Long"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(p))
	}
}

func (p PulseWidth) String() string { return p.Name() }

// decodeAngle converts a raw scaled-integer angle to degrees:
// degrees = raw * 360 / 65536.
func decodeAngle(raw uint16) float64 {
	return float64(raw) * 360.0 / 65536.0
}

// decodeAngularVelocity converts a raw scaled signed angular-velocity value
// to degrees/second using the same 360/65536 scale factor.
func decodeAngularVelocity(raw int16) float64 {
	return float64(raw) * 360.0 / 65536.0
}

// VCPHeader is the fixed portion of message type 5.
type VCPHeader struct {
	PatternType           PatternType
	PatternNumber         uint16
	NumberOfElevationCuts uint16
	ClutterMapGroupNumber uint8
	DopplerVelocityResolution uint8
	PulseWidth            PulseWidth
	VCPSequencing         uint16
	VCPSupplementalData   uint16
}

// ElevationCut is one elevation cut block within a VCP message.
type ElevationCut struct {
	ElevationAngle            float64
	ChannelConfig             ChannelConfiguration
	WaveformType              WaveformType
	SuperResolutionControl    uint8
	SurveillancePRFNumber     uint8
	SurveillancePRFPulseCount uint16
	AzimuthRate               float64
	ReflectivityThreshold     int16
	DopplerThreshold          int16
}

// VolumeCoveragePattern is message type 5: the elevation-angle schedule
// (VCP) the RDA is executing, sent at wideband connection and at the start
// of every volume scan.
type VolumeCoveragePattern struct {
	Header        VCPHeader
	ElevationCuts []ElevationCut
}

const vcpHeaderSize = 14
const vcpElevationCutSize = 16

func decodeVolumeCoveragePattern(payload []byte) (*VolumeCoveragePattern, error) {
	if len(payload) < vcpHeaderSize {
		return nil, ShortInputError(vcpHeaderSize, len(payload))
	}

	c := newCursor(payload)
	var h VCPHeader
	var err error

	var patternType uint16
	if patternType, err = c.uint16(); err != nil {
		return nil, ShortInputError(vcpHeaderSize, len(payload))
	}
	h.PatternType = PatternType(patternType)
	if h.PatternNumber, err = c.uint16(); err != nil {
		return nil, ShortInputError(vcpHeaderSize, len(payload))
	}
	if h.NumberOfElevationCuts, err = c.uint16(); err != nil {
		return nil, ShortInputError(vcpHeaderSize, len(payload))
	}
	if h.ClutterMapGroupNumber, err = c.uint8(); err != nil {
		return nil, ShortInputError(vcpHeaderSize, len(payload))
	}
	if h.DopplerVelocityResolution, err = c.uint8(); err != nil {
		return nil, ShortInputError(vcpHeaderSize, len(payload))
	}
	var pulseWidth uint8
	if pulseWidth, err = c.uint8(); err != nil {
		return nil, ShortInputError(vcpHeaderSize, len(payload))
	}
	h.PulseWidth = PulseWidth(pulseWidth)
	if err = c.skip(1); err != nil { // spare byte
		return nil, ShortInputError(vcpHeaderSize, len(payload))
	}
	if h.VCPSequencing, err = c.uint16(); err != nil {
		return nil, ShortInputError(vcpHeaderSize, len(payload))
	}
	if h.VCPSupplementalData, err = c.uint16(); err != nil {
		return nil, ShortInputError(vcpHeaderSize, len(payload))
	}

	m := &VolumeCoveragePattern{Header: h}

	for i := 0; i < int(h.NumberOfElevationCuts); i++ {
		if c.remaining() < vcpElevationCutSize {
			return nil, ShortInputError(vcpHeaderSize+(i+1)*vcpElevationCutSize, len(payload))
		}

		var cut ElevationCut
		rawAngle, _ := c.uint16()
		cut.ElevationAngle = decodeAngle(rawAngle)

		channelConfig, _ := c.uint8()
		cut.ChannelConfig = ChannelConfiguration(channelConfig)

		waveform, _ := c.uint8()
		cut.WaveformType = WaveformType(waveform)

		cut.SuperResolutionControl, _ = c.uint8()
		cut.SurveillancePRFNumber, _ = c.uint8()
		cut.SurveillancePRFPulseCount, _ = c.uint16()

		rawAzRate, _ := c.int16()
		cut.AzimuthRate = decodeAngularVelocity(rawAzRate)

		cut.ReflectivityThreshold, _ = c.int16()
		cut.DopplerThreshold, _ = c.int16()
		_ = c.skip(2) // spare

		m.ElevationCuts = append(m.ElevationCuts, cut)
	}

	return m, nil
}
