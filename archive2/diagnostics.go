package archive2

import "fmt"

// Diagnostic is a non-fatal problem encountered while decoding a volume.
// Per ("Propagation"), per-record and per-message errors never
// abort the overall decode; they're collected here instead and returned
// alongside the successfully decoded messages.
type Diagnostic struct {
	Kind        ErrorKind
	Message     string
	RecordIndex int // index of the LDM record this diagnostic pertains to, -1 if n/a
	// MessageIndex is the running sequence id of the logical message this
	// diagnostic pertains to, -1 if it applies to the record as a whole.
	MessageIndex int
	Err          error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("record %d message %d: %s: %v", d.RecordIndex, d.MessageIndex, d.Kind, d.Err)
}

type diagnosticsCollector struct {
	diags []Diagnostic
}

func (c *diagnosticsCollector) add(recordIndex, messageIndex int, kind ErrorKind, err error) {
	c.diags = append(c.diags, Diagnostic{
		Kind:         kind,
		Message:      err.Error(),
		RecordIndex:  recordIndex,
		MessageIndex: messageIndex,
		Err:          err,
	})
}
