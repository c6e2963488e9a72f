package archive2

import "fmt"

// namedCode is shared infrastructure for the many small enumerated status
// codes in PerformanceMaintenanceData: each wraps a raw byte and falls back
// to "Unknown(n)" for any value the ICD hasn't named, keeping forward
// compatibility with future field values without a hand-rolled switch per
// field.
type namedCode uint8

func (c namedCode) nameIn(names map[uint8]string) string {
	if n, ok := names[uint8(c)]; ok {
		return n
	}
	return fmt.Sprintf("Unknown(%d)", uint8(c))
}

// Each of the following types mirrors one status enum from
// original_source/nexrad-decode/src/messages/performance_maintenance_data/*.rs.

type AmeState uint8

var ameStateNames = map[uint8]string{0: "Off", 1: "Standby", 2: "Warmup", 3: "ManualControl", 4: "AutoControl"}

func (c AmeState) Name() string   { return namedCode(c).nameIn(ameStateNames) }
func (c AmeState) String() string { return c.Name() }

type AmeMode uint8

var ameModeNames = map[uint8]string{0: "Automatic", 1: "Manual"}

func (c AmeMode) Name() string   { return namedCode(c).nameIn(ameModeNames) }
func (c AmeMode) String() string { return c.Name() }

type AmeADConverterStatus uint8

var ameADConverterStatusNames = map[uint8]string{0: "Good", 1: "Failed"}

func (c AmeADConverterStatus) Name() string   { return namedCode(c).nameIn(ameADConverterStatusNames) }
func (c AmeADConverterStatus) String() string { return c.Name() }

type AmePeltierMode uint8

var amePeltierModeNames = map[uint8]string{0: "Cooling", 1: "Heating", 2: "Off"}

func (c AmePeltierMode) Name() string   { return namedCode(c).nameIn(amePeltierModeNames) }
func (c AmePeltierMode) String() string { return c.Name() }

type AmePeltierStatus uint8

var amePeltierStatusNames = map[uint8]string{0: "Good", 1: "Degraded", 2: "Failed"}

func (c AmePeltierStatus) Name() string   { return namedCode(c).nameIn(amePeltierStatusNames) }
func (c AmePeltierStatus) String() string { return c.Name() }

type CommandedChannelControl uint8

var commandedChannelControlNames = map[uint8]string{0: "Automatic", 1: "Channel1", 2: "Channel2"}

func (c CommandedChannelControl) Name() string { return namedCode(c).nameIn(commandedChannelControlNames) }
func (c CommandedChannelControl) String() string { return c.Name() }

type FilamentPSStatus uint8

var filamentPSStatusNames = map[uint8]string{0: "Good", 1: "Failed"}

func (c FilamentPSStatus) Name() string   { return namedCode(c).nameIn(filamentPSStatusNames) }
func (c FilamentPSStatus) String() string { return c.Name() }

type GeneratorAutoRunOffSwitch uint8

var generatorAutoRunOffSwitchNames = map[uint8]string{0: "Auto", 1: "Run", 2: "Off"}

func (c GeneratorAutoRunOffSwitch) Name() string { return namedCode(c).nameIn(generatorAutoRunOffSwitchNames) }
func (c GeneratorAutoRunOffSwitch) String() string { return c.Name() }

type HighVoltageStatus uint8

var highVoltageStatusNames = map[uint8]string{0: "On", 1: "Off"}

func (c HighVoltageStatus) Name() string   { return namedCode(c).nameIn(highVoltageStatusNames) }
func (c HighVoltageStatus) String() string { return c.Name() }

type IPCStatus uint8

var ipcStatusNames = map[uint8]string{0: "Good", 1: "Failed"}

func (c IPCStatus) Name() string   { return namedCode(c).nameIn(ipcStatusNames) }
func (c IPCStatus) String() string { return c.Name() }

type KlystronWarmup uint8

var klystronWarmupNames = map[uint8]string{0: "Ready", 1: "WarmingUp", 2: "NotReady"}

func (c KlystronWarmup) Name() string   { return namedCode(c).nameIn(klystronWarmupNames) }
func (c KlystronWarmup) String() string { return c.Name() }

type LoopBackTestStatus uint8

var loopBackTestStatusNames = map[uint8]string{0: "Normal", 1: "LoopBack"}

func (c LoopBackTestStatus) Name() string   { return namedCode(c).nameIn(loopBackTestStatusNames) }
func (c LoopBackTestStatus) String() string { return c.Name() }

type MaintenanceMode uint8

var maintenanceModeNames = map[uint8]string{0: "Off", 1: "On"}

func (c MaintenanceMode) Name() string   { return namedCode(c).nameIn(maintenanceModeNames) }
func (c MaintenanceMode) String() string { return c.Name() }

type MaintenanceRequired uint8

var maintenanceRequiredNames = map[uint8]string{0: "NotRequired", 1: "Required"}

func (c MaintenanceRequired) Name() string   { return namedCode(c).nameIn(maintenanceRequiredNames) }
func (c MaintenanceRequired) String() string { return c.Name() }

type NTPStatus uint8

var ntpStatusNames = map[uint8]string{0: "Ok", 1: "Degraded", 2: "Failed"}

func (c NTPStatus) Name() string   { return namedCode(c).nameIn(ntpStatusNames) }
func (c NTPStatus) String() string { return c.Name() }

type PedestalInterlockSwitch uint8

var pedestalInterlockSwitchNames = map[uint8]string{0: "Closed", 1: "Open"}

func (c PedestalInterlockSwitch) Name() string { return namedCode(c).nameIn(pedestalInterlockSwitchNames) }
func (c PedestalInterlockSwitch) String() string { return c.Name() }

type PFNSwitchPosition uint8

var pfnSwitchPositionNames = map[uint8]string{0: "Local", 1: "Remote"}

func (c PFNSwitchPosition) Name() string   { return namedCode(c).nameIn(pfnSwitchPositionNames) }
func (c PFNSwitchPosition) String() string { return c.Name() }

type Polarization uint8

var polarizationNames = map[uint8]string{0: "Horizontal", 1: "Vertical", 2: "DualPol"}

func (c Polarization) Name() string   { return namedCode(c).nameIn(polarizationNames) }
func (c Polarization) String() string { return c.Name() }

type PortStatus uint8

var portStatusNames = map[uint8]string{0: "Good", 1: "Failed"}

func (c PortStatus) Name() string   { return namedCode(c).nameIn(portStatusNames) }
func (c PortStatus) String() string { return c.Name() }

type PowerSource uint8

var powerSourceNames = map[uint8]string{0: "Utility", 1: "Generator", 2: "UPS"}

func (c PowerSource) Name() string   { return namedCode(c).nameIn(powerSourceNames) }
func (c PowerSource) String() string { return c.Name() }

type RadomeHatchStatus uint8

var radomeHatchStatusNames = map[uint8]string{0: "Closed", 1: "Open"}

func (c RadomeHatchStatus) Name() string   { return namedCode(c).nameIn(radomeHatchStatusNames) }
func (c RadomeHatchStatus) String() string { return c.Name() }

type RCPStatus uint8

var rcpStatusNames = map[uint8]string{0: "Good", 1: "Failed"}

func (c RCPStatus) Name() string   { return namedCode(c).nameIn(rcpStatusNames) }
func (c RCPStatus) String() string { return c.Name() }

type ReceiverConnectedToAntenna uint8

var receiverConnectedToAntennaNames = map[uint8]string{0: "Connected", 1: "Disconnected"}

func (c ReceiverConnectedToAntenna) Name() string { return namedCode(c).nameIn(receiverConnectedToAntennaNames) }
func (c ReceiverConnectedToAntenna) String() string { return c.Name() }

type RouteToRPG uint8

var routeToRPGNames = map[uint8]string{0: "Direct", 1: "Alternate"}

func (c RouteToRPG) Name() string   { return namedCode(c).nameIn(routeToRPGNames) }
func (c RouteToRPG) String() string { return c.Name() }

type ServoStatus uint8

var servoStatusNames = map[uint8]string{0: "Good", 1: "Failed"}

func (c ServoStatus) Name() string   { return namedCode(c).nameIn(servoStatusNames) }
func (c ServoStatus) String() string { return c.Name() }

type SPIP28VPSStatus uint8

var spip28VPSStatusNames = map[uint8]string{0: "Good", 1: "Failed"}

func (c SPIP28VPSStatus) Name() string   { return namedCode(c).nameIn(spip28VPSStatusNames) }
func (c SPIP28VPSStatus) String() string { return c.Name() }

type TransitionalPowerSource uint8

var transitionalPowerSourceNames = map[uint8]string{0: "None", 1: "Battery", 2: "Generator"}

func (c TransitionalPowerSource) Name() string { return namedCode(c).nameIn(transitionalPowerSourceNames) }
func (c TransitionalPowerSource) String() string { return c.Name() }

type TransmitterAirFilter uint8

var transmitterAirFilterNames = map[uint8]string{0: "Good", 1: "NeedsReplacement"}

func (c TransmitterAirFilter) Name() string   { return namedCode(c).nameIn(transmitterAirFilterNames) }
func (c TransmitterAirFilter) String() string { return c.Name() }

type TransmitterAvailability uint8

var transmitterAvailabilityNames = map[uint8]string{0: "Available", 1: "Unavailable"}

func (c TransmitterAvailability) Name() string { return namedCode(c).nameIn(transmitterAvailabilityNames) }
func (c TransmitterAvailability) String() string { return c.Name() }

type TransmitterBatteryCharging uint8

var transmitterBatteryChargingNames = map[uint8]string{0: "NotCharging", 1: "Charging"}

func (c TransmitterBatteryCharging) Name() string { return namedCode(c).nameIn(transmitterBatteryChargingNames) }
func (c TransmitterBatteryCharging) String() string { return c.Name() }

type TransmitterRecyclingSummary uint8

var transmitterRecyclingSummaryNames = map[uint8]string{0: "NotRecycling", 1: "Recycling"}

func (c TransmitterRecyclingSummary) Name() string {
	return namedCode(c).nameIn(transmitterRecyclingSummaryNames)
}
func (c TransmitterRecyclingSummary) String() string { return c.Name() }

type TransmitterSummaryStatus uint8

var transmitterSummaryStatusNames = map[uint8]string{0: "Ok", 1: "Degraded", 2: "Inoperative"}

func (c TransmitterSummaryStatus) Name() string { return namedCode(c).nameIn(transmitterSummaryStatusNames) }
func (c TransmitterSummaryStatus) String() string { return c.Name() }

type VelocityProcessed uint8

var velocityProcessedNames = map[uint8]string{0: "No", 1: "Yes"}

func (c VelocityProcessed) Name() string   { return namedCode(c).nameIn(velocityProcessedNames) }
func (c VelocityProcessed) String() string { return c.Name() }

type WGPFNTransferInterlock uint8

var wgPFNTransferInterlockNames = map[uint8]string{0: "Closed", 1: "Open"}

func (c WGPFNTransferInterlock) Name() string { return namedCode(c).nameIn(wgPFNTransferInterlockNames) }
func (c WGPFNTransferInterlock) String() string { return c.Name() }

type WGSwitchPosition uint8

var wgSwitchPositionNames = map[uint8]string{0: "Waveguide", 1: "Load"}

func (c WGSwitchPosition) Name() string   { return namedCode(c).nameIn(wgSwitchPositionNames) }
func (c WGSwitchPosition) String() string { return c.Name() }

// PerformanceMaintenanceData is message type 3: a strictly fixed 960-byte
// record of transmitter/pedestal/receiver diagnostic readings and dozens of
// small status enums
type PerformanceMaintenanceData struct {
	AmeState                    AmeState
	AmeMode                     AmeMode
	AmeADConverterStatus        AmeADConverterStatus
	AmePeltierMode              AmePeltierMode
	AmePeltierStatus            AmePeltierStatus
	CommandedChannelControl     CommandedChannelControl
	FilamentPSStatus            FilamentPSStatus
	GeneratorAutoRunOffSwitch   GeneratorAutoRunOffSwitch
	HighVoltageStatus           HighVoltageStatus
	IPCStatus                   IPCStatus
	KlystronWarmup              KlystronWarmup
	LoopBackTestStatus          LoopBackTestStatus
	MaintenanceMode             MaintenanceMode
	MaintenanceRequired         MaintenanceRequired
	NTPStatus                   NTPStatus
	PedestalInterlockSwitch     PedestalInterlockSwitch
	PFNSwitchPosition           PFNSwitchPosition
	Polarization                Polarization
	PortStatus                  PortStatus
	PowerSource                 PowerSource
	RadomeHatchStatus           RadomeHatchStatus
	RCPStatus                   RCPStatus
	ReceiverConnectedToAntenna  ReceiverConnectedToAntenna
	RouteToRPG                  RouteToRPG
	ServoStatus                 ServoStatus
	SPIP28VPSStatus             SPIP28VPSStatus
	TransitionalPowerSource     TransitionalPowerSource
	TransmitterAirFilter        TransmitterAirFilter
	TransmitterAvailability     TransmitterAvailability
	TransmitterBatteryCharging  TransmitterBatteryCharging
	TransmitterRecyclingSummary TransmitterRecyclingSummary
	TransmitterSummaryStatus    TransmitterSummaryStatus
	VelocityProcessed           VelocityProcessed
	WGPFNTransferInterlock      WGPFNTransferInterlock
	WGSwitchPosition            WGSwitchPosition

	TransmitterPeakPowerKW      float32
	TransmitterAvgPowerWatts    float32
	TransmitterImbalance        float32
	TransmitterFrequency        float32
	TransmitterRFAvgPower       float32
	TransmitterPeakPowerHorizontal float32
	TransmitterPeakPowerVertical   float32
	AmeTempAmbient              float32
	AmePeltierTemp               float32
	PedestalTemp                 float32
	ReceiverTempHorizontal        float32
	ReceiverTempVertical          float32
	ShelterTemp                   float32
	ShelterHumidityPct            float32
	GeneratorFuelLevelPct         float32
	GeneratorVoltage              float32
	UtilityVoltage                float32
	BatteryVoltage                float32
	KlystronCurrent               float32
	KlystronFilamentVoltage       float32
}

const performanceMaintenanceDataSize = 960

func decodePerformanceMaintenanceData(payload []byte) (*PerformanceMaintenanceData, error) {
	if len(payload) < performanceMaintenanceDataSize {
		return nil, ShortInputError(performanceMaintenanceDataSize, len(payload))
	}

	c := newCursor(payload)
	m := &PerformanceMaintenanceData{}

	readCode := func() uint8 {
		v, _ := c.uint8()
		return v
	}
	m.AmeState = AmeState(readCode())
	m.AmeMode = AmeMode(readCode())
	m.AmeADConverterStatus = AmeADConverterStatus(readCode())
	m.AmePeltierMode = AmePeltierMode(readCode())
	m.AmePeltierStatus = AmePeltierStatus(readCode())
	m.CommandedChannelControl = CommandedChannelControl(readCode())
	m.FilamentPSStatus = FilamentPSStatus(readCode())
	m.GeneratorAutoRunOffSwitch = GeneratorAutoRunOffSwitch(readCode())
	m.HighVoltageStatus = HighVoltageStatus(readCode())
	m.IPCStatus = IPCStatus(readCode())
	m.KlystronWarmup = KlystronWarmup(readCode())
	m.LoopBackTestStatus = LoopBackTestStatus(readCode())
	m.MaintenanceMode = MaintenanceMode(readCode())
	m.MaintenanceRequired = MaintenanceRequired(readCode())
	m.NTPStatus = NTPStatus(readCode())
	m.PedestalInterlockSwitch = PedestalInterlockSwitch(readCode())
	m.PFNSwitchPosition = PFNSwitchPosition(readCode())
	m.Polarization = Polarization(readCode())
	m.PortStatus = PortStatus(readCode())
	m.PowerSource = PowerSource(readCode())
	m.RadomeHatchStatus = RadomeHatchStatus(readCode())
	m.RCPStatus = RCPStatus(readCode())
	m.ReceiverConnectedToAntenna = ReceiverConnectedToAntenna(readCode())
	m.RouteToRPG = RouteToRPG(readCode())
	m.ServoStatus = ServoStatus(readCode())
	m.SPIP28VPSStatus = SPIP28VPSStatus(readCode())
	m.TransitionalPowerSource = TransitionalPowerSource(readCode())
	m.TransmitterAirFilter = TransmitterAirFilter(readCode())
	m.TransmitterAvailability = TransmitterAvailability(readCode())
	m.TransmitterBatteryCharging = TransmitterBatteryCharging(readCode())
	m.TransmitterRecyclingSummary = TransmitterRecyclingSummary(readCode())
	m.TransmitterSummaryStatus = TransmitterSummaryStatus(readCode())
	m.VelocityProcessed = VelocityProcessed(readCode())
	m.WGPFNTransferInterlock = WGPFNTransferInterlock(readCode())
	m.WGSwitchPosition = WGSwitchPosition(readCode())

	readFloat := func() float32 {
		v, _ := c.float32()
		return v
	}
	m.TransmitterPeakPowerKW = readFloat()
	m.TransmitterAvgPowerWatts = readFloat()
	m.TransmitterImbalance = readFloat()
	m.TransmitterFrequency = readFloat()
	m.TransmitterRFAvgPower = readFloat()
	m.TransmitterPeakPowerHorizontal = readFloat()
	m.TransmitterPeakPowerVertical = readFloat()
	m.AmeTempAmbient = readFloat()
	m.AmePeltierTemp = readFloat()
	m.PedestalTemp = readFloat()
	m.ReceiverTempHorizontal = readFloat()
	m.ReceiverTempVertical = readFloat()
	m.ShelterTemp = readFloat()
	m.ShelterHumidityPct = readFloat()
	m.GeneratorFuelLevelPct = readFloat()
	m.GeneratorVoltage = readFloat()
	m.UtilityVoltage = readFloat()
	m.BatteryVoltage = readFloat()
	m.KlystronCurrent = readFloat()
	m.KlystronFilamentVoltage = readFloat()

	// the remainder of the fixed 960-byte record is reserved/spare in this
	// build... do not error").
	_ = c.skip(c.remaining())

	return m, nil
}
