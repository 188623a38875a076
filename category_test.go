package picojpeg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategoryScenario2(t *testing.T) {
	require.Equal(t, 3, category(-5))
	require.Equal(t, uint32(2), categoryCode(-5, 3))
	require.Equal(t, int32(-5), categoryDecode(3, 2))

	require.Equal(t, 1, category(1))
	require.Equal(t, uint32(1), categoryCode(1, 1))
	require.Equal(t, int32(1), categoryDecode(1, 1))
}

func TestCategoryZero(t *testing.T) {
	require.Equal(t, 0, category(0))
}

func TestCategoryRoundTripFullRange(t *testing.T) {
	for v := int32(-4095); v <= 4095; v += 7 {
		s := category(v)
		c := categoryCode(v, s)
		require.Equal(t, v, categoryDecode(s, c), "v=%d", v)
	}
}

func TestClampDCAndAC(t *testing.T) {
	v, overflowed := clampDC(5000)
	require.True(t, overflowed)
	require.Equal(t, int32(maxDCMagnitude), v)

	v, overflowed = clampDC(-5000)
	require.True(t, overflowed)
	require.Equal(t, int32(-maxDCMagnitude), v)

	v, overflowed = clampDC(100)
	require.False(t, overflowed)
	require.Equal(t, int32(100), v)

	v, overflowed = clampAC(2000)
	require.True(t, overflowed)
	require.Equal(t, int32(maxACMagnitude), v)
}
