package archive2

import "github.com/sirupsen/logrus"

// Message type codes of every message this package decodes; types 1 and 31
// carry radar moment data, the rest are metadata. Declared here because
// decode.go is where the type-to-decoder dispatch table lives.
const (
	msgTypeDigitalRadarDataLegacy     = 1
	msgTypeRDAStatusData              = 2
	msgTypePerformanceMaintenanceData = 3
	msgTypeConsoleMessageRDA          = 4
	msgTypeVolumeCoveragePattern      = 5
	msgTypeRDAControlCommands         = 6
	msgTypeClutterCensorZones         = 8
	msgTypeRequestForData             = 9
	msgTypeConsoleMessageRPG          = 10
	msgTypeLoopbackTestRDA            = 11
	msgTypeLoopbackTestRPG            = 12
	msgTypeClutterFilterBypassMap     = 13
	msgTypeClutterFilterMap           = 15
	msgTypeRDAAdaptationData          = 18
	msgTypeDigitalRadarData           = 31
	msgTypeRDAPRFData                 = 32
	msgTypeRDALogData                 = 33
)

// DecodeMessages decodes a complete Archive II volume file: the 24-byte
// volume header, every LDM record's (decompressed) frames, and every
// message those frames reassemble into. Per-record and per-message
// failures never abort the decode: they're collected as
// Diagnostics and returned alongside whatever messages were successfully
// decoded. Only a truncated volume header is fatal.
func DecodeMessages(data []byte) ([]Message, []Diagnostic, error) {
	vol := NewVolumeFile(data)

	if _, err := vol.Header(); err != nil {
		return nil, nil, err
	}

	records, err := vol.Records()
	if err != nil {
		return nil, nil, err
	}

	diags := &diagnosticsCollector{}
	var messages []Message

	for recordIndex, record := range records {
		plain, err := record.Decompress()
		if err != nil {
			diags.add(recordIndex, -1, ErrDecompression, err)
			continue
		}
		if len(plain) == 0 {
			continue
		}

		frames := readFrames(plain, recordIndex, diags)
		reassembled := reassembleMessages(frames, recordIndex, diags)

		for _, rm := range reassembled {
			msg, derr := decodeMessageBody(rm, recordIndex, diags)
			if derr != nil {
				diags.add(recordIndex, int(rm.Header.SequenceID), ErrShortInput, derr)
				continue
			}
			messages = append(messages, msg)
		}
	}

	return messages, diags.diags, nil
}

// decodeMessageBody dispatches a reassembled message's payload to the
// typed decoder for its message type, returning an UnrecognizedMessage for
// any type this package doesn't model.
func decodeMessageBody(rm reassembledMessage, recordIndex int, diags *diagnosticsCollector) (Message, error) {
	msg := Message{Header: rm.Header}

	switch rm.Header.MessageType {
	case msgTypeDigitalRadarDataLegacy:
		v, err := decodeDigitalRadarDataLegacy(rm.Payload)
		if err != nil {
			return msg, err
		}
		msg.Kind = KindDigitalRadarDataLegacy
		msg.DigitalRadarDataLegacy = v

	case msgTypeRDAStatusData:
		v, err := decodeRDAStatusData(rm.Payload)
		if err != nil {
			return msg, err
		}
		msg.Kind = KindRDAStatusData
		msg.RDAStatusData = v

	case msgTypePerformanceMaintenanceData:
		v, err := decodePerformanceMaintenanceData(rm.Payload)
		if err != nil {
			return msg, err
		}
		msg.Kind = KindPerformanceMaintenanceData
		msg.PerformanceMaintenanceData = v

	case msgTypeConsoleMessageRDA, msgTypeConsoleMessageRPG:
		v, err := decodeConsoleMessage(rm.Payload)
		if err != nil {
			return msg, err
		}
		msg.Kind = KindConsoleMessage
		msg.ConsoleMessage = v

	case msgTypeVolumeCoveragePattern:
		v, err := decodeVolumeCoveragePattern(rm.Payload)
		if err != nil {
			return msg, err
		}
		msg.Kind = KindVolumeCoveragePattern
		msg.VolumeCoveragePattern = v

	case msgTypeRDAControlCommands:
		v, err := decodeRDAControlCommands(rm.Payload)
		if err != nil {
			return msg, err
		}
		msg.Kind = KindRDAControlCommands
		msg.RDAControlCommands = v

	case msgTypeClutterCensorZones:
		v, err := decodeClutterCensorZones(rm.Payload)
		if err != nil {
			return msg, err
		}
		msg.Kind = KindClutterCensorZones
		msg.ClutterCensorZones = v

	case msgTypeRequestForData:
		v, err := decodeRequestForData(rm.Payload)
		if err != nil {
			return msg, err
		}
		msg.Kind = KindRequestForData
		msg.RequestForData = v

	case msgTypeLoopbackTestRDA, msgTypeLoopbackTestRPG:
		v, err := decodeLoopbackTest(rm.Payload)
		if err != nil {
			return msg, err
		}
		msg.Kind = KindLoopbackTest
		msg.LoopbackTest = v

	case msgTypeClutterFilterBypassMap:
		v, err := decodeClutterFilterBypassMap(rm.Payload)
		if err != nil {
			return msg, err
		}
		msg.Kind = KindClutterFilterBypassMap
		msg.ClutterFilterBypassMap = v

	case msgTypeClutterFilterMap:
		v, err := decodeClutterFilterMap(rm.Payload)
		if err != nil {
			return msg, err
		}
		msg.Kind = KindClutterFilterMap
		msg.ClutterFilterMap = v

	case msgTypeRDAAdaptationData:
		v, err := decodeRDAAdaptationData(rm.Payload)
		if err != nil {
			return msg, err
		}
		msg.Kind = KindRDAAdaptationData
		msg.RDAAdaptationData = v

	case msgTypeDigitalRadarData:
		v, err := decodeDRD31(rm.Payload)
		if err != nil {
			return msg, err
		}
		msg.Kind = KindDigitalRadarData
		msg.DigitalRadarData = v

	case msgTypeRDAPRFData:
		v, err := decodeRDAPRFData(rm.Payload)
		if err != nil {
			return msg, err
		}
		msg.Kind = KindRDAPRFData
		msg.RDAPRFData = v

	case msgTypeRDALogData:
		v, err := decodeRDALogData(rm.Payload)
		if err != nil {
			return msg, err
		}
		msg.Kind = KindRDALogData
		msg.RDALogData = v

	default:
		logrus.Debugf("record %d: unrecognized message type %d, preserving raw payload", recordIndex, rm.Header.MessageType)
		msg.Kind = KindUnrecognized
		msg.Unrecognized = &UnrecognizedMessage{
			Type:    rm.Header.MessageType,
			Payload: rm.Payload,
		}
	}

	return msg, nil
}
