package archive2

// ConsoleMessage is the payload shared by message types 4 (RDA console
// message) and 10 (RPG console message): a short ASCII text blob with no
// further structure
type ConsoleMessage struct {
	Text string
}

func decodeConsoleMessage(payload []byte) (*ConsoleMessage, error) {
	c := newCursor(payload)
	text, err := c.ascii(c.remaining())
	if err != nil {
		return nil, ShortInputError(len(payload), len(payload))
	}
	return &ConsoleMessage{Text: text}, nil
}
