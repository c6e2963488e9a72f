package archive2

import "fmt"

// RDAStatus is the RDA system's overall status code (message type 2).
type RDAStatus uint16

const (
	RDAStatusStandby     RDAStatus = 2
	RDAStatusOperate     RDAStatus = 4
	RDAStatusSpareRDA    RDAStatus = 8
	RDAStatusRestart     RDAStatus = 16
	RDAStatusOffline     RDAStatus = 1
)

// Name returns the named status, or "Unknown(n)" for any value the ICD
// hasn't assigned a meaning to.
func (s RDAStatus) Name() string {
	switch s {
	case RDAStatusOffline:
		return "Offline"
	case RDAStatusStandby:
		return "Standby"
	case RDAStatusOperate:
		return "Operate"
	case RDAStatusSpareRDA:
		return "Spare"
	case RDAStatusRestart:
		return "Restart"
	default:
		return fmt.Sprintf("Unknown(%d)", uint16(s))
	}
}

func (s RDAStatus) String() string { return s.Name() }

// OperabilityStatus is the RDA's operability status code.
type OperabilityStatus uint16

const (
	OperabilityOnline             OperabilityStatus = 2
	OperabilityMaintenanceAction  OperabilityStatus = 4
	OperabilityMaintenanceMandatory OperabilityStatus = 8
	OperabilityCommandedShutdown  OperabilityStatus = 16
)

func (s OperabilityStatus) Name() string {
	switch s {
	case OperabilityOnline:
		return "OnlineMaintenanceDisabled"
	case OperabilityMaintenanceAction:
		return "MaintenanceActionRequired"
	case OperabilityMaintenanceMandatory:
		return "MaintenanceMandatory"
	case OperabilityCommandedShutdown:
		return "CommandedShutdown"
	default:
		return fmt.Sprintf("Unknown(%d)", uint16(s))
	}
}

func (s OperabilityStatus) String() string { return s.Name() }

// ControlStatus describes which system has control authority over the RDA.
type ControlStatus uint16

const (
	ControlStatusRDAAlone  ControlStatus = 2
	ControlStatusRPGAlone  ControlStatus = 4
	ControlStatusEither    ControlStatus = 8
)

func (s ControlStatus) Name() string {
	switch s {
	case ControlStatusRDAAlone:
		return "RDAControlOnly"
	case ControlStatusRPGAlone:
		return "RPGControlOnly"
	case ControlStatusEither:
		return "EitherControls"
	default:
		return fmt.Sprintf("Unknown(%d)", uint16(s))
	}
}

func (s ControlStatus) String() string { return s.Name() }

// ChannelControlStatus reports whether this RDA channel is active or in
// standby, for redundant-channel configurations.
type ChannelControlStatus uint16

const (
	ChannelControlActive  ChannelControlStatus = 1
	ChannelControlStandby ChannelControlStatus = 2
)

func (s ChannelControlStatus) Name() string {
	switch s {
	case ChannelControlActive:
		return "Active"
	case ChannelControlStandby:
		return "Standby"
	default:
		return fmt.Sprintf("Unknown(%d)", uint16(s))
	}
}

func (s ChannelControlStatus) String() string { return s.Name() }

// SpotBlankingStatus is a bitfield: bit0=radial, bit1=elevation, bit2=volume
//. The raw value is always preserved.
type SpotBlankingStatus uint16

func (s SpotBlankingStatus) None() bool      { return s == 0 }
func (s SpotBlankingStatus) Radial() bool    { return s&1 != 0 }
func (s SpotBlankingStatus) Elevation() bool { return s&2 != 0 }
func (s SpotBlankingStatus) Volume() bool    { return s&4 != 0 }
func (s SpotBlankingStatus) Raw() uint16     { return uint16(s) }

// DataTransmissionEnabled is a bitfield describing which moment types have
// transmission enabled, grounded on
// original_source/src/model/rda_status_data/data_transmission_enabled.rs.
type DataTransmissionEnabled uint16

func (d DataTransmissionEnabled) None() bool           { return d&0b0001 != 0 }
func (d DataTransmissionEnabled) Reflectivity() bool   { return d&0b0010 != 0 }
func (d DataTransmissionEnabled) Velocity() bool       { return d&0b0100 != 0 }
func (d DataTransmissionEnabled) SpectrumWidth() bool  { return d&0b1000 != 0 }
func (d DataTransmissionEnabled) Raw() uint16          { return uint16(d) }

// VolumeCoveragePatternNumber is the signed VCP number reported in status
// data: a negative magnitude means the pattern was specified locally at the
// RDA, positive means it was commanded remotely by the RPG. Grounded on
// original_source/src/model/rda_status_data/volume_coverage_pattern.rs.
type VolumeCoveragePatternNumber int16

func (v VolumeCoveragePatternNumber) Number() int16 {
	if v < 0 {
		return -int16(v)
	}
	return int16(v)
}

func (v VolumeCoveragePatternNumber) Local() bool  { return v < 0 }
func (v VolumeCoveragePatternNumber) Remote() bool { return v > 0 }

// RDAStatusData is message type 2: current RDA state, control, operating
// status, scanning strategy, performance parameters, calibration, and
// alarms.
type RDAStatusData struct {
	RDAStatus                       RDAStatus
	OperabilityStatus               OperabilityStatus
	ControlStatus                   ControlStatus
	AuxPowerGeneratorState          uint16
	AvgTxPower                      uint16
	HorizRefCalibCorr               uint16
	DataTxEnabled                   DataTransmissionEnabled
	VolumeCoveragePatternNum        VolumeCoveragePatternNumber
	RDAControlAuth                  uint16
	RDABuild                        uint16
	OperationalMode                 uint16
	SuperResStatus                  uint16
	ClutterMitigationDecisionStatus uint16
	AvsetStatus                     uint16
	RDAAlarmSummary                 uint16
	CommandAck                      uint16
	ChannelControlStatus            ChannelControlStatus
	SpotBlankingStatus              SpotBlankingStatus
	BypassMapGenDate                uint16
	BypassMapGenTime                uint16
	ClutterFilterMapGenDate         uint16
	ClutterFilterMapGenTime         uint16
	VertRefCalibCorr                uint16
	TransitionPwrSourceStatus       uint16
	RMSControlStatus                uint16
	PerformanceCheckStatus          uint16
	AlarmCodes                      uint16
}

// BuildNumber decodes RDABuild as the ICD's fixed-point build number
// (integer part * 100 + fractional part), e.g. a raw value of 1900 means
// build 19.00.
func (m RDAStatusData) BuildNumber() float32 {
	return float32(m.RDABuild) / 100
}

func decodeRDAStatusData(payload []byte) (*RDAStatusData, error) {
	const fieldCount = 27
	const required = fieldCount*2 + 20 // 20 spare bytes trailing
	if len(payload) < required {
		return nil, ShortInputError(required, len(payload))
	}

	c := newCursor(payload)
	read := func() uint16 {
		v, _ := c.uint16()
		return v
	}

	m := &RDAStatusData{}
	m.RDAStatus = RDAStatus(read())
	m.OperabilityStatus = OperabilityStatus(read())
	m.ControlStatus = ControlStatus(read())
	m.AuxPowerGeneratorState = read()
	m.AvgTxPower = read()
	m.HorizRefCalibCorr = read()
	m.DataTxEnabled = DataTransmissionEnabled(read())
	m.VolumeCoveragePatternNum = VolumeCoveragePatternNumber(int16(read()))
	m.RDAControlAuth = read()
	m.RDABuild = read()
	m.OperationalMode = read()
	m.SuperResStatus = read()
	m.ClutterMitigationDecisionStatus = read()
	m.AvsetStatus = read()
	m.RDAAlarmSummary = read()
	m.CommandAck = read()
	m.ChannelControlStatus = ChannelControlStatus(read())
	m.SpotBlankingStatus = SpotBlankingStatus(read())
	m.BypassMapGenDate = read()
	m.BypassMapGenTime = read()
	m.ClutterFilterMapGenDate = read()
	m.ClutterFilterMapGenTime = read()
	m.VertRefCalibCorr = read()
	m.TransitionPwrSourceStatus = read()
	m.RMSControlStatus = read()
	m.PerformanceCheckStatus = read()
	m.AlarmCodes = read()

	return m, nil
}
