package archive2

import "time"

const digitalRadarDataLegacyHeaderSize = 40

// legacyAngle converts a raw scaled angle code to degrees using the legacy
// (pre-message-31) 180/4096 scale factor used by early Build builds.
func legacyAngle(raw uint16) float64 {
	return float64(raw) * 180.0 / 4096.0
}

// DigitalRadarDataLegacy is message type 1, the original (pre-message-31)
// digital radar data format: a fixed header followed by up to three
// contiguous gate arrays (surveillance reflectivity, and Doppler velocity /
// spectrum width sharing the Doppler gate count).
type DigitalRadarDataLegacy struct {
	CollectionTimeMillis       uint32
	CollectionDateMJD          uint16
	UnambiguousRangeKm         float64
	AzimuthAngle               float64
	AzimuthNumber              uint16
	RadialStatus               RadialStatus
	ElevationAngle             float64
	ElevationNumber            uint16
	SurveillanceRangeMeters    uint16
	DopplerRangeMeters         uint16
	SurveillanceGateSizeMeters uint16
	DopplerGateSizeMeters      uint16
	NumSurveillanceGates       uint16
	NumDopplerGates            uint16
	CutSectorNumber            uint16
	CalibrationConstant        float32
	DopplerVelocityResolution  uint16
	VolumeCoveragePatternNum   uint16

	Reflectivity  []byte
	Velocity      []byte
	SpectrumWidth []byte
}

// CollectionTime derives the radial's collection DateTime.
func (m DigitalRadarDataLegacy) CollectionTime() time.Time {
	return time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC).
		Add(time.Duration(m.CollectionDateMJD) * 24 * time.Hour).
		Add(time.Duration(m.CollectionTimeMillis) * time.Millisecond)
}

func decodeDigitalRadarDataLegacy(payload []byte) (*DigitalRadarDataLegacy, error) {
	if len(payload) < digitalRadarDataLegacyHeaderSize {
		return nil, ShortInputError(digitalRadarDataLegacyHeaderSize, len(payload))
	}

	c := newCursor(payload)
	m := &DigitalRadarDataLegacy{}
	var err error

	if m.CollectionTimeMillis, err = c.uint32(); err != nil {
		return nil, ShortInputError(digitalRadarDataLegacyHeaderSize, len(payload))
	}
	if m.CollectionDateMJD, err = c.uint16(); err != nil {
		return nil, ShortInputError(digitalRadarDataLegacyHeaderSize, len(payload))
	}
	unambiguousRange, _ := c.uint16()
	m.UnambiguousRangeKm = float64(unambiguousRange) / 10.0
	azimuth, _ := c.uint16()
	m.AzimuthAngle = legacyAngle(azimuth)
	m.AzimuthNumber, _ = c.uint16()
	radialStatus, _ := c.uint16()
	m.RadialStatus = RadialStatus(uint8(radialStatus))
	elevation, _ := c.uint16()
	m.ElevationAngle = legacyAngle(elevation)
	m.ElevationNumber, _ = c.uint16()
	m.SurveillanceRangeMeters, _ = c.uint16()
	m.DopplerRangeMeters, _ = c.uint16()
	m.SurveillanceGateSizeMeters, _ = c.uint16()
	m.DopplerGateSizeMeters, _ = c.uint16()
	m.NumSurveillanceGates, _ = c.uint16()
	m.NumDopplerGates, _ = c.uint16()
	m.CutSectorNumber, _ = c.uint16()
	if m.CalibrationConstant, err = c.float32(); err != nil {
		return nil, ShortInputError(digitalRadarDataLegacyHeaderSize, len(payload))
	}
	m.DopplerVelocityResolution, _ = c.uint16()
	m.VolumeCoveragePatternNum, _ = c.uint16()

	if ref, err := c.bytes(int(m.NumSurveillanceGates)); err == nil {
		m.Reflectivity = ref
	}
	if vel, err := c.bytes(int(m.NumDopplerGates)); err == nil {
		m.Velocity = vel
	}
	if sw, err := c.bytes(int(m.NumDopplerGates)); err == nil {
		m.SpectrumWidth = sw
	}

	return m, nil
}
