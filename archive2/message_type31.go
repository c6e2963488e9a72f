package archive2

import (
	"fmt"
	"sort"
	"time"
)

const (
	drd31HeaderSize  = 68
	drd31NumPointers = 9

	volumeDataBlockSize    = 44
	elevationDataBlockSize = 12
	radialDataBlockSize    = 28
	momentHeaderSize       = 28
)

// CompressionIndicator describes whether/how a type 31 message's data
// blocks are compressed beyond the data header block.
type CompressionIndicator uint8

const (
	CompressionNone  CompressionIndicator = 0
	CompressionBZIP2 CompressionIndicator = 1
	CompressionZLIB  CompressionIndicator = 2
)

func (c CompressionIndicator) Name() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionBZIP2:
		return "BZIP2"
	case CompressionZLIB:
		return "ZLIB"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(c))
	}
}

func (c CompressionIndicator) String() string { return c.Name() }

// RadialStatus marks a radial's position within its elevation/volume scan.
type RadialStatus uint8

const (
	RadialStatusStartOfElevation  RadialStatus = 0
	RadialStatusIntermediate      RadialStatus = 1
	RadialStatusEndOfElevation    RadialStatus = 2
	RadialStatusStartOfVolume     RadialStatus = 3
	RadialStatusEndOfVolume       RadialStatus = 4
	RadialStatusStartNewElevation RadialStatus = 5
)

func (r RadialStatus) Name() string {
	switch r {
	case RadialStatusStartOfElevation:
		return "StartOfElevation"
	case RadialStatusIntermediate:
		return "Intermediate"
	case RadialStatusEndOfElevation:
		return "EndOfElevation"
	case RadialStatusStartOfVolume:
		return "StartOfVolume"
	case RadialStatusEndOfVolume:
		return "EndOfVolume"
	case RadialStatusStartNewElevation:
		return "StartNewElevation"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(r))
	}
}

func (r RadialStatus) String() string { return r.Name() }

// AzimuthResolutionSpacing is the azimuthal spacing between adjacent
// radials: code 1 = 0.5 degrees, code 2 = 1 degree.
type AzimuthResolutionSpacing uint8

func (a AzimuthResolutionSpacing) Degrees() float32 {
	if a == 1 {
		return 0.5
	}
	return 1
}

// DRD31Header is the 68-byte fixed header of message type 31.
type DRD31Header struct {
	RadarIdentifier              string
	CollectionTimeMillis         uint32
	CollectionDateMJD            uint16
	AzimuthNumber                uint16
	AzimuthAngle                 float32
	CompressionIndicator         CompressionIndicator
	RadialLength                 uint16
	AzimuthResolutionSpacingCode AzimuthResolutionSpacing
	RadialStatus                 RadialStatus
	ElevationNumber               uint8
	CutSectorNumber               uint8
	ElevationAngle                float32
	RadialSpotBlankingStatus      uint8
	AzimuthIndexingMode           uint8
	DataBlockCount                uint16
	DataBlockPointers             [drd31NumPointers]uint32
}

// CollectionTime derives the radial's collection DateTime from the header's
// Julian date and milliseconds-past-midnight fields.
func (h DRD31Header) CollectionTime() time.Time {
	return time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC).
		Add(time.Duration(h.CollectionDateMJD) * 24 * time.Hour).
		Add(time.Duration(h.CollectionTimeMillis) * time.Millisecond)
}

// VolumeDataBlock is the "RVOL" data block.
type VolumeDataBlock struct {
	VersionMajor                   uint8
	VersionMinor                   uint8
	Lat                            float32
	Long                           float32
	SiteHeight                     int16
	FeedhornHeight                 uint16
	CalibrationConstant            float32
	SHVTXPowerHor                  float32
	SHVTXPowerVer                  float32
	SystemDifferentialReflectivity float32
	InitialSystemDifferentialPhase float32
	VolumeCoveragePatternNumber    uint16
	ProcessingStatus               uint16
}

// ElevationDataBlock is the "RELV" data block (fixed 12 bytes).
type ElevationDataBlock struct {
	AtmosAttenuationDBPerKm scaledSInteger2
	CalibrationConstant     float32
}

// RadialDataBlock is the "RRAD" data block (fixed 28 bytes).
type RadialDataBlock struct {
	UnambiguousRangeKm uint16
	NoiseLevelHorz     float32
	NoiseLevelVert     float32
	NyquistVelocity    uint16
	CalibConstHorzChan float32
	CalibConstVertChan float32
}

// ScaledMomentValue is one gate's decoded moment value
// decode rule: raw=0 is below threshold, raw=1 is range-folded, otherwise
// the value is linearly rescaled.
type ScaledMomentValue struct {
	Value           float32
	BelowThreshold  bool
	RangeFolded     bool
}

// GenericDataBlock is a moment data block ("DREF", "DVEL", "DSW ", "DZDR",
// "DPHI", "DRHO", "DCFP", ...): a 28-byte header followed by a gate array.
type GenericDataBlock struct {
	Name                          string
	NumberOfGates                 uint16
	DataMomentRangeMeters         uint16
	DataMomentRangeSampleInterval uint16
	TOVER                         uint16
	SNRThreshold                  uint16
	ControlFlags                  uint8
	DataWordSize                  uint8
	Scale                         float32
	Offset                        float32
	RawGates                      []byte
}

// Gates decodes the raw gate array into scaled moment values.
func (b GenericDataBlock) Gates() []ScaledMomentValue {
	out := make([]ScaledMomentValue, 0, b.NumberOfGates)
	step := int(b.DataWordSize) / 8
	if step <= 0 {
		step = 1
	}
	for i := 0; i+step <= len(b.RawGates) && len(out) < int(b.NumberOfGates); i += step {
		var raw uint32
		for j := 0; j < step; j++ {
			raw = raw<<8 | uint32(b.RawGates[i+j])
		}
		out = append(out, decodeScaledMoment(raw, b.Scale, b.Offset))
	}
	return out
}

func decodeScaledMoment(raw uint32, scale, offset float32) ScaledMomentValue {
	switch raw {
	case 0:
		return ScaledMomentValue{BelowThreshold: true}
	case 1:
		return ScaledMomentValue{RangeFolded: true}
	default:
		if scale == 0 {
			return ScaledMomentValue{Value: float32(raw)}
		}
		return ScaledMomentValue{Value: (float32(raw) - offset) / scale}
	}
}

// DigitalRadarData is message type 31: the richest entity in the ICD, a
// self-describing radial of base moment data.
type DigitalRadarData struct {
	Header        DRD31Header
	VolumeData    *VolumeDataBlock
	ElevationData *ElevationDataBlock
	RadialData    *RadialDataBlock
	Reflectivity  *GenericDataBlock
	Velocity      *GenericDataBlock
	SpectrumWidth *GenericDataBlock
	Zdr           *GenericDataBlock
	Phi           *GenericDataBlock
	Rho           *GenericDataBlock
	Cfp           *GenericDataBlock
}

func decodeDRD31Header(c *cursor) (DRD31Header, error) {
	var h DRD31Header
	var err error

	if h.RadarIdentifier, err = c.ascii(4); err != nil {
		return h, err
	}
	if h.CollectionTimeMillis, err = c.uint32(); err != nil {
		return h, err
	}
	if h.CollectionDateMJD, err = c.uint16(); err != nil {
		return h, err
	}
	if h.AzimuthNumber, err = c.uint16(); err != nil {
		return h, err
	}
	if h.AzimuthAngle, err = c.float32(); err != nil {
		return h, err
	}
	compression, err := c.uint8()
	if err != nil {
		return h, err
	}
	h.CompressionIndicator = CompressionIndicator(compression)
	if err = c.skip(1); err != nil { // spare
		return h, err
	}
	if h.RadialLength, err = c.uint16(); err != nil {
		return h, err
	}
	spacingCode, err := c.uint8()
	if err != nil {
		return h, err
	}
	h.AzimuthResolutionSpacingCode = AzimuthResolutionSpacing(spacingCode)
	radialStatus, err := c.uint8()
	if err != nil {
		return h, err
	}
	h.RadialStatus = RadialStatus(radialStatus)
	if h.ElevationNumber, err = c.uint8(); err != nil {
		return h, err
	}
	if h.CutSectorNumber, err = c.uint8(); err != nil {
		return h, err
	}
	if h.ElevationAngle, err = c.float32(); err != nil {
		return h, err
	}
	if h.RadialSpotBlankingStatus, err = c.uint8(); err != nil {
		return h, err
	}
	if h.AzimuthIndexingMode, err = c.uint8(); err != nil {
		return h, err
	}
	if h.DataBlockCount, err = c.uint16(); err != nil {
		return h, err
	}
	for i := 0; i < drd31NumPointers; i++ {
		if h.DataBlockPointers[i], err = c.uint32(); err != nil {
			return h, err
		}
	}

	return h, nil
}

// pointerRange is a validated, in-bounds byte range for one data block,
// used to enforce disjointness/containment invariant.
type pointerRange struct {
	offset uint32
	length int
}

func decodeDRD31(payload []byte) (*DigitalRadarData, error) {
	if len(payload) < drd31HeaderSize {
		return nil, ShortInputError(drd31HeaderSize, len(payload))
	}

	c := newCursor(payload)
	header, err := decodeDRD31Header(c)
	if err != nil {
		return nil, ShortInputError(drd31HeaderSize, len(payload))
	}

	m := &DigitalRadarData{Header: header}

	// Scan order follows pointer values, not table order, and
	// every pointer must address a disjoint, in-bounds range.
	type ptr struct {
		slot   int
		offset uint32
	}
	var ptrs []ptr
	for i, p := range header.DataBlockPointers {
		if p == 0 {
			continue
		}
		ptrs = append(ptrs, ptr{slot: i, offset: p})
	}
	sort.Slice(ptrs, func(i, j int) bool { return ptrs[i].offset < ptrs[j].offset })

	var consumed []pointerRange
	for _, p := range ptrs {
		if int(p.offset) >= len(payload) || int(p.offset)+4 > len(payload) {
			continue // out of bounds; skip rather than fail the whole message
		}
		overlapsExisting := false
		for _, r := range consumed {
			if overlaps(r, p.offset) {
				overlapsExisting = true
				break
			}
		}
		if overlapsExisting {
			continue // adversarial input with overlapping pointers; skip
		}

		blockCursor := newCursor(payload[p.offset:])
		blockType, err := blockCursor.uint8()
		if err != nil {
			continue
		}
		name, err := blockCursor.ascii(3)
		if err != nil {
			continue
		}
		_ = blockType

		switch name {
		case "VOL":
			if blockCursor.remaining() < volumeDataBlockSize-4 {
				continue
			}
			vol, err := decodeVolumeDataBlock(blockCursor)
			if err == nil {
				m.VolumeData = vol
				consumed = append(consumed, pointerRange{p.offset, volumeDataBlockSize})
			}
		case "ELV":
			if blockCursor.remaining() < elevationDataBlockSize-4 {
				continue
			}
			elv, err := decodeElevationDataBlock(blockCursor)
			if err == nil {
				m.ElevationData = elv
				consumed = append(consumed, pointerRange{p.offset, elevationDataBlockSize})
			}
		case "RAD":
			if blockCursor.remaining() < radialDataBlockSize-4 {
				continue
			}
			rad, err := decodeRadialDataBlock(blockCursor)
			if err == nil {
				m.RadialData = rad
				consumed = append(consumed, pointerRange{p.offset, radialDataBlockSize})
			}
		case "REF", "VEL", "SW ", "ZDR", "PHI", "RHO", "CFP":
			block, err := decodeGenericDataBlock(blockCursor, name)
			if err != nil {
				continue
			}
			totalLen := momentHeaderSize + len(block.RawGates)
			consumed = append(consumed, pointerRange{p.offset, totalLen})
			switch name {
			case "REF":
				m.Reflectivity = block
			case "VEL":
				m.Velocity = block
			case "SW ":
				m.SpectrumWidth = block
			case "ZDR":
				m.Zdr = block
			case "PHI":
				m.Phi = block
			case "RHO":
				m.Rho = block
			case "CFP":
				m.Cfp = block
			}
		default:
			// unknown block name: forward-compatible no-op
		}
	}

	return m, nil
}

func overlaps(r pointerRange, offset uint32) bool {
	return offset >= r.offset && offset < r.offset+uint32(r.length)
}

func decodeVolumeDataBlock(c *cursor) (*VolumeDataBlock, error) {
	var v VolumeDataBlock
	var err error
	if err = c.skip(2); err != nil { // LRTUP
		return nil, err
	}
	if v.VersionMajor, err = c.uint8(); err != nil {
		return nil, err
	}
	if v.VersionMinor, err = c.uint8(); err != nil {
		return nil, err
	}
	if v.Lat, err = c.float32(); err != nil {
		return nil, err
	}
	if v.Long, err = c.float32(); err != nil {
		return nil, err
	}
	siteHeight, err := c.int16()
	if err != nil {
		return nil, err
	}
	v.SiteHeight = siteHeight
	if v.FeedhornHeight, err = c.uint16(); err != nil {
		return nil, err
	}
	if v.CalibrationConstant, err = c.float32(); err != nil {
		return nil, err
	}
	if v.SHVTXPowerHor, err = c.float32(); err != nil {
		return nil, err
	}
	if v.SHVTXPowerVer, err = c.float32(); err != nil {
		return nil, err
	}
	if v.SystemDifferentialReflectivity, err = c.float32(); err != nil {
		return nil, err
	}
	if v.InitialSystemDifferentialPhase, err = c.float32(); err != nil {
		return nil, err
	}
	if v.VolumeCoveragePatternNumber, err = c.uint16(); err != nil {
		return nil, err
	}
	if v.ProcessingStatus, err = c.uint16(); err != nil {
		return nil, err
	}
	return &v, nil
}

func decodeElevationDataBlock(c *cursor) (*ElevationDataBlock, error) {
	var e ElevationDataBlock
	if err := c.skip(2); err != nil { // LRTUP
		return nil, err
	}
	atmos, err := c.scaledSInteger2()
	if err != nil {
		return nil, err
	}
	e.AtmosAttenuationDBPerKm = atmos
	if e.CalibrationConstant, err = c.float32(); err != nil {
		return nil, err
	}
	return &e, nil
}

func decodeRadialDataBlock(c *cursor) (*RadialDataBlock, error) {
	var r RadialDataBlock
	var err error
	if err = c.skip(2); err != nil { // LRTUP
		return nil, err
	}
	if r.UnambiguousRangeKm, err = c.uint16(); err != nil {
		return nil, err
	}
	if r.NoiseLevelHorz, err = c.float32(); err != nil {
		return nil, err
	}
	if r.NoiseLevelVert, err = c.float32(); err != nil {
		return nil, err
	}
	if r.NyquistVelocity, err = c.uint16(); err != nil {
		return nil, err
	}
	if err = c.skip(2); err != nil { // spares
		return nil, err
	}
	if r.CalibConstHorzChan, err = c.float32(); err != nil {
		return nil, err
	}
	if r.CalibConstVertChan, err = c.float32(); err != nil {
		return nil, err
	}
	return &r, nil
}

func decodeGenericDataBlock(c *cursor, name string) (*GenericDataBlock, error) {
	b := &GenericDataBlock{Name: name}
	var err error
	if err = c.skip(4); err != nil { // reserved
		return nil, err
	}
	if b.NumberOfGates, err = c.uint16(); err != nil {
		return nil, err
	}
	if b.DataMomentRangeMeters, err = c.uint16(); err != nil {
		return nil, err
	}
	if b.DataMomentRangeSampleInterval, err = c.uint16(); err != nil {
		return nil, err
	}
	if b.TOVER, err = c.uint16(); err != nil {
		return nil, err
	}
	if b.SNRThreshold, err = c.uint16(); err != nil {
		return nil, err
	}
	if b.ControlFlags, err = c.uint8(); err != nil {
		return nil, err
	}
	if b.DataWordSize, err = c.uint8(); err != nil {
		return nil, err
	}
	if b.Scale, err = c.float32(); err != nil {
		return nil, err
	}
	if b.Offset, err = c.float32(); err != nil {
		return nil, err
	}

	dataLen := int(b.NumberOfGates) * int(b.DataWordSize) / 8
	gates, err := c.bytes(dataLen)
	if err != nil {
		return nil, err
	}
	b.RawGates = gates
	return b, nil
}
