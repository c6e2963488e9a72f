package archive2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// a record that is an exact multiple of FrameSize yields one frameSlice
// per frame and no diagnostics; a trailing partial frame is dropped with
// no panic.
func TestReadFramesAlignedRecord(t *testing.T) {
	require := require.New(t)

	record := make([]byte, FrameSize*2)
	diags := &diagnosticsCollector{}
	frames := readFrames(record, 0, diags)
	require.Len(frames, 2)
	require.Empty(diags.diags)
}

func TestReadFramesDropsTrailingPartialFrame(t *testing.T) {
	require := require.New(t)

	record := make([]byte, FrameSize+5)
	diags := &diagnosticsCollector{}
	frames := readFrames(record, 0, diags)
	require.Len(frames, 1)
}

func TestReadFramesNeverPanicsOnGarbage(t *testing.T) {
	require.NotPanics(t, func() {
		for n := 0; n < 50; n++ {
			record := pseudoRandomBytes(n, n*37)
			diags := &diagnosticsCollector{}
			readFrames(record, 0, diags)
		}
	})
}
