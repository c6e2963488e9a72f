package archive2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPerformanceMaintenanceDataEnumsFallBackToUnknown(t *testing.T) {
	require := require.New(t)

	require.Equal("Off", AmeState(0).Name())
	require.Equal("Unknown(99)", AmeState(99).Name())
	require.Equal("Unknown(7)", Polarization(7).Name())
}

func TestDecodePerformanceMaintenanceDataFixedSize(t *testing.T) {
	require := require.New(t)

	payload := make([]byte, performanceMaintenanceDataSize)
	m, err := decodePerformanceMaintenanceData(payload)
	require.NoError(err)
	require.Equal(AmeState(0), m.AmeState)

	_, err = decodePerformanceMaintenanceData(payload[:performanceMaintenanceDataSize-1])
	require.Error(err)
	require.True(IsKind(err, ErrShortInput))
}
