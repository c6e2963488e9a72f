package archive2

// RDAAdaptationData is message type 18: a large, mostly-static table of
// site, antenna, RF, and calibration constants the RDA reports at startup
// and on request
// bytes; this decoder reads the leading fields that downstream consumers
// actually use and treats the remainder as reserved/spare, the same
// tolerant-tail approach used for PerformanceMaintenanceData.
const rdaAdaptationDataSize = 9468

// SiteAdaptationData holds the RDA's fixed geographic and identification
// parameters.
type SiteAdaptationData struct {
	Latitude  float32
	Longitude float32
	HeightM   float32
	SiteName  string
}

// AntennaAdaptationData holds pedestal and antenna physical constants.
type AntennaAdaptationData struct {
	AntennaGainDB       float32
	AntennaBeamwidthDeg float32
	AzimuthEncoderBias  float32
	ElevationEncoderBias float32
}

// RFAdaptationData holds transmitter/receiver RF chain constants.
type RFAdaptationData struct {
	TransmitterPowerKW    float32
	PathLossWGToAntenna   float32
	PathLossRadomeTwoWay  float32
	ReceiverNoiseFigureDB float32
}

// CalibrationAdaptationData holds reflectivity/velocity calibration
// constants applied during moment processing.
type CalibrationAdaptationData struct {
	ReflectivityCalibrationConstant float32
	VelocityCalibrationConstant     float32
	ZdrCalibrationConstant          float32
	RangeCorrectionConstant         float32
}

// RDAAdaptationData groups the decoded sub-tables of message type 18.
type RDAAdaptationData struct {
	Site        SiteAdaptationData
	Antenna     AntennaAdaptationData
	RF          RFAdaptationData
	Calibration CalibrationAdaptationData
}

const rdaAdaptationDataSiteNameLen = 16

func decodeRDAAdaptationData(payload []byte) (*RDAAdaptationData, error) {
	if len(payload) < rdaAdaptationDataSize {
		return nil, ShortInputError(rdaAdaptationDataSize, len(payload))
	}

	c := newCursor(payload)
	m := &RDAAdaptationData{}

	readFloat := func() float32 {
		v, _ := c.float32()
		return v
	}

	m.Site.Latitude = readFloat()
	m.Site.Longitude = readFloat()
	m.Site.HeightM = readFloat()
	if name, err := c.ascii(rdaAdaptationDataSiteNameLen); err == nil {
		m.Site.SiteName = name
	}

	m.Antenna.AntennaGainDB = readFloat()
	m.Antenna.AntennaBeamwidthDeg = readFloat()
	m.Antenna.AzimuthEncoderBias = readFloat()
	m.Antenna.ElevationEncoderBias = readFloat()

	m.RF.TransmitterPowerKW = readFloat()
	m.RF.PathLossWGToAntenna = readFloat()
	m.RF.PathLossRadomeTwoWay = readFloat()
	m.RF.ReceiverNoiseFigureDB = readFloat()

	m.Calibration.ReflectivityCalibrationConstant = readFloat()
	m.Calibration.VelocityCalibrationConstant = readFloat()
	m.Calibration.ZdrCalibrationConstant = readFloat()
	m.Calibration.RangeCorrectionConstant = readFloat()

	// the remainder of the fixed 9468-byte table is reserved/spare in this
	// build.
	_ = c.skip(c.remaining())

	return m, nil
}
