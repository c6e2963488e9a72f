package archive2

import "github.com/sirupsen/logrus"

// LDMRecord is a length-prefixed slice of an Archive II file's body.
// Compressed is true when the record's length prefix was positive (BZIP2
// payload); false means the payload is already uncompressed (a
// legacy/sentinel record).
type LDMRecord struct {
	Compressed bool
	Data       []byte
}

// Decompress returns the record's expanded byte stream. Uncompressed
// records are returned as-is, a no-op.
func (r LDMRecord) Decompress() ([]byte, error) {
	if !r.Compressed {
		return r.Data, nil
	}
	return decompressBzip2(r.Data)
}

// splitLDMRecords walks buf (everything after the volume header) and
// extracts length-prefixed LDM records. It never panics: any structural
// problem simply ends iteration early with whatever records were already
// found.
func splitLDMRecords(buf []byte) []LDMRecord {
	var records []LDMRecord

	c := newCursor(buf)
	for c.remaining() >= 4 {
		start := c.pos
		length, err := c.int32()
		if err != nil {
			// unreachable given the remaining() check above, but keep the
			// no-panic contract explicit.
			break
		}

		if length == 0 {
			logrus.Debugf("ldm record splitter: zero-length control word at offset %d, stopping", start)
			break
		}

		size := int(length)
		if size < 0 {
			size = -size
		}

		if c.remaining() < size {
			logrus.Warnf("ldm record splitter: declared record size %d exceeds remaining %d bytes, dropping trailing bytes", size, c.remaining())
			break
		}

		data, err := c.bytes(size)
		if err != nil {
			break
		}

		records = append(records, LDMRecord{
			Compressed: length > 0,
			Data:       data,
		})
	}

	return records
}
