package archive2

import "fmt"

// RDAControlCommand is the command code carried by message type 6, an RPG
// to RDA control directive.
type RDAControlCommand uint16

const (
	RDAControlCommandClearRDAAlarms     RDAControlCommand = 1
	RDAControlCommandStandby            RDAControlCommand = 2
	RDAControlCommandRestart            RDAControlCommand = 4
	RDAControlCommandResumeOperate      RDAControlCommand = 8
	RDAControlCommandOperateClutterSupp RDAControlCommand = 16
)

func (c RDAControlCommand) Name() string {
	switch c {
	case RDAControlCommandClearRDAAlarms:
		return "ClearRDAAlarms"
	case RDAControlCommandStandby:
		return "Standby"
	case RDAControlCommandRestart:
		return "Restart"
	case RDAControlCommandResumeOperate:
		return "ResumeOperate"
	case RDAControlCommandOperateClutterSupp:
		return "OperateClutterSuppression"
	default:
		return fmt.Sprintf("Unknown(%d)", uint16(c))
	}
}

func (c RDAControlCommand) String() string { return c.Name() }

const rdaControlCommandsSize = 2

// RDAControlCommands is message type 6: an RPG to RDA control directive.
type RDAControlCommands struct {
	Command RDAControlCommand
}

func decodeRDAControlCommands(payload []byte) (*RDAControlCommands, error) {
	if len(payload) < rdaControlCommandsSize {
		return nil, ShortInputError(rdaControlCommandsSize, len(payload))
	}
	c := newCursor(payload)
	raw, err := c.uint16()
	if err != nil {
		return nil, ShortInputError(rdaControlCommandsSize, len(payload))
	}
	return &RDAControlCommands{Command: RDAControlCommand(raw)}, nil
}
