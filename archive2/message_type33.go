package archive2

import "fmt"

// LogEventSeverity is the severity level of an RDA log event, grounded on
// original_source/.../rda_log_data/*.rs.
type LogEventSeverity uint8

const (
	LogEventSeverityInfo    LogEventSeverity = 1
	LogEventSeverityWarning LogEventSeverity = 2
	LogEventSeverityError   LogEventSeverity = 3
	LogEventSeverityFatal   LogEventSeverity = 4
)

func (s LogEventSeverity) Name() string {
	switch s {
	case LogEventSeverityInfo:
		return "Info"
	case LogEventSeverityWarning:
		return "Warning"
	case LogEventSeverityError:
		return "Error"
	case LogEventSeverityFatal:
		return "Fatal"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(s))
	}
}

func (s LogEventSeverity) String() string { return s.Name() }

// LogEvent is a single timestamped RDA log line.
type LogEvent struct {
	TimeMillis uint32
	DateMJD    uint16
	Severity   LogEventSeverity
	Text       string
}

const logEventHeaderSize = 8

// RDALogData is message type 33: a batch of RDA log events.
type RDALogData struct {
	Events []LogEvent
}

func decodeRDALogData(payload []byte) (*RDALogData, error) {
	c := newCursor(payload)
	m := &RDALogData{}

	for c.remaining() >= logEventHeaderSize {
		var ev LogEvent
		var err error
		if ev.TimeMillis, err = c.uint32(); err != nil {
			break
		}
		if ev.DateMJD, err = c.uint16(); err != nil {
			break
		}
		severity, err := c.uint8()
		if err != nil {
			break
		}
		ev.Severity = LogEventSeverity(severity)
		if err = c.skip(1); err != nil { // spare byte
			break
		}

		textLen := c.remaining()
		nullIdx := -1
		for i, b := range c.buf[c.pos:] {
			if b == 0 {
				nullIdx = i
				break
			}
		}
		hasTerminator := nullIdx >= 0
		if hasTerminator {
			textLen = nullIdx
		}
		text, err := c.ascii(textLen)
		if err != nil {
			break
		}
		ev.Text = text
		if hasTerminator {
			_ = c.skip(1) // consume the terminating null byte
		}

		m.Events = append(m.Events, ev)
	}

	return m, nil
}
