// Package archive2 decodes NEXRAD Archive II Level II volume files: the
// header-plus-LDM-record container format produced by the WSR-88D network,
// and the ~15 message types carried inside it.
//
// The documents used and referenced in this package:
//   - RDA/RPG: https://www.roc.noaa.gov/wsr88d/PublicDocs/ICDs/2620002T.pdf (high level details)
//   - User: https://www.roc.noaa.gov/wsr88d/PublicDocs/ICDs/2620010H.pdf (bulk of the format)
package archive2

import (
	"time"

	"github.com/sirupsen/logrus"
)

// VolumeHeaderSize is the fixed size, in bytes, of the Archive II volume
// header prefixing every file.
const VolumeHeaderSize = 24

// VolumeHeader is the 24-byte header at the start of every Archive II file.
type VolumeHeader struct {
	TapeFilename    string // 9 bytes, e.g. "AR2V0006."
	ExtensionNumber string // 3 bytes, e.g. "001"
	ModifiedJulianDate int32  // days since 1970-01-01 UTC
	ModifiedMillis      int32  // milliseconds past midnight UTC
	ICAO                string // 4 bytes, radar site identifier
}

// Filename reconstructs the archive file's conventional name.
func (h VolumeHeader) Filename() string {
	return h.TapeFilename + h.ExtensionNumber
}

// Date is the collection date/time this volume header is valid for.
func (h VolumeHeader) Date() time.Time {
	return time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC).
		Add(time.Duration(h.ModifiedJulianDate) * 24 * time.Hour).
		Add(time.Duration(h.ModifiedMillis) * time.Millisecond)
}

// decodeVolumeHeader decodes the first VolumeHeaderSize bytes of an Archive
// II file. A short buffer is a fatal (catastrophic) error
// a tape-id that doesn't start with "AR2V" is only a warning — the header is
// still returned, since some real-world files deviate.
func decodeVolumeHeader(buf []byte) (VolumeHeader, error) {
	if len(buf) < VolumeHeaderSize {
		return VolumeHeader{}, truncatedError(ShortInputError(VolumeHeaderSize, len(buf)))
	}

	c := newCursor(buf[:VolumeHeaderSize])
	var h VolumeHeader
	var err error

	if h.TapeFilename, err = c.ascii(9); err != nil {
		return VolumeHeader{}, truncatedError(err)
	}
	if h.ExtensionNumber, err = c.ascii(3); err != nil {
		return VolumeHeader{}, truncatedError(err)
	}
	if h.ModifiedJulianDate, err = c.int32(); err != nil {
		return VolumeHeader{}, truncatedError(err)
	}
	if h.ModifiedMillis, err = c.int32(); err != nil {
		return VolumeHeader{}, truncatedError(err)
	}
	if h.ICAO, err = c.ascii(4); err != nil {
		return VolumeHeader{}, truncatedError(err)
	}

	if len(h.TapeFilename) < 4 || h.TapeFilename[:4] != "AR2V" {
		logrus.Warnf("volume header tape id %q does not begin with AR2V", h.TapeFilename)
	}

	return h, nil
}

// VolumeFile is an immutable wrapper over a complete Archive II file's
// bytes. It owns its buffer and is never mutated.
type VolumeFile struct {
	data []byte
}

// NewVolumeFile takes ownership of data and wraps it as a VolumeFile.
func NewVolumeFile(data []byte) *VolumeFile {
	return &VolumeFile{data: data}
}

// Header decodes the volume's 24-byte header.
func (f *VolumeFile) Header() (VolumeHeader, error) {
	return decodeVolumeHeader(f.data)
}

// Records splits the bytes following the volume header into LDM records.
func (f *VolumeFile) Records() ([]LDMRecord, error) {
	if len(f.data) < VolumeHeaderSize {
		return nil, truncatedError(ShortInputError(VolumeHeaderSize, len(f.data)))
	}
	return splitLDMRecords(f.data[VolumeHeaderSize:]), nil
}

// Data returns the file's raw bytes.
func (f *VolumeFile) Data() []byte {
	return f.data
}
