package archive2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// spot-blanking bitfield accessors.
func TestSpotBlankingStatusBitfield(t *testing.T) {
	require := require.New(t)

	require.True(SpotBlankingStatus(0).None())
	require.True(SpotBlankingStatus(1).Radial())
	require.False(SpotBlankingStatus(1).Elevation())
	require.True(SpotBlankingStatus(2).Elevation())
	require.True(SpotBlankingStatus(4).Volume())
	require.True(SpotBlankingStatus(7).Radial())
	require.True(SpotBlankingStatus(7).Elevation())
	require.True(SpotBlankingStatus(7).Volume())
	require.EqualValues(7, SpotBlankingStatus(7).Raw())
}

func TestVolumeCoveragePatternNumberSign(t *testing.T) {
	require := require.New(t)

	require.True(VolumeCoveragePatternNumber(-12).Local())
	require.EqualValues(12, VolumeCoveragePatternNumber(-12).Number())
	require.True(VolumeCoveragePatternNumber(12).Remote())
	require.EqualValues(12, VolumeCoveragePatternNumber(12).Number())
}

// enum completeness: unknown raw values round-trip through Name().
func TestRDAStatusEnumUnknownRoundTrips(t *testing.T) {
	require := require.New(t)

	require.Equal("Unknown(255)", RDAStatus(255).Name())
	require.Equal("Unknown(255)", OperabilityStatus(255).Name())
	require.Equal("Unknown(255)", ControlStatus(255).Name())
}

func TestDecodeRDAStatusDataTooShortIsError(t *testing.T) {
	_, err := decodeRDAStatusData([]byte{1, 2, 3})
	require.Error(t, err)
	require.True(t, IsKind(err, ErrShortInput))
}
