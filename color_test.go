package picojpeg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColorRoundTripGray(t *testing.T) {
	for _, v := range []byte{0, 1, 16, 128, 200, 254, 255} {
		y, cb, cr := rgbToYCbCr(v, v, v)
		require.InDelta(t, int(v), int(y), 1)
		r, g, b := yCbCrToRGB(y, cb, cr)
		require.InDelta(t, int(v), int(r), 1)
		require.InDelta(t, int(v), int(g), 1)
		require.InDelta(t, int(v), int(b), 1)
	}
}

func TestColorRoundTripSampledColors(t *testing.T) {
	cases := [][3]byte{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}, {123, 45, 200}}
	for _, c := range cases {
		y, cb, cr := rgbToYCbCr(c[0], c[1], c[2])
		r, g, b := yCbCrToRGB(y, cb, cr)
		require.InDelta(t, int(c[0]), int(r), 2)
		require.InDelta(t, int(c[1]), int(g), 2)
		require.InDelta(t, int(c[2]), int(b), 2)
	}
}

func TestClampToByte(t *testing.T) {
	require.Equal(t, byte(0), clampToByte(-10))
	require.Equal(t, byte(255), clampToByte(300))
	require.Equal(t, byte(128), clampToByte(127.6))
}
