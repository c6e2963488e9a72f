package archive2

import (
	"bytes"
	"io"

	"github.com/dsnet/compress/bzip2"
)

// decompressBzip2 expands one BZIP2-compressed LDM record. Errors here are
// always recoverable at the record boundary: the caller
// drops the record and continues with the next one.
func decompressBzip2(compressed []byte) ([]byte, error) {
	r, err := bzip2.NewReader(bytes.NewReader(compressed), nil)
	if err != nil {
		return nil, decompressionError(err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, decompressionError(err)
	}
	if len(out) == 0 {
		return nil, decompressionError(errEmptyDecompressedRecord)
	}
	return out, nil
}

var errEmptyDecompressedRecord = decompressEmptyErr{}

type decompressEmptyErr struct{}

func (decompressEmptyErr) Error() string { return "decompressed record is empty" }
