package picojpeg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRLEEncodeDecodeAllZero(t *testing.T) {
	var ac [63]int32
	pairs := rleEncodeAC(ac)
	require.Len(t, pairs, 1)
	require.True(t, pairs[0].isEOB())

	back, err := rleDecodeAC(pairs)
	require.NoError(t, err)
	require.Equal(t, ac, back)
}

func TestRLEEncodeDecodeWithLongRun(t *testing.T) {
	var ac [63]int32
	ac[0] = 3
	ac[20] = -7 // run of 19 zeros before it: one ZRL (16) + run 3
	pairs := rleEncodeAC(ac)

	back, err := rleDecodeAC(pairs)
	require.NoError(t, err)
	require.Equal(t, ac, back)

	// Expect exactly one ZRL pair emitted for the 19-zero gap.
	zrlCount := 0
	for _, p := range pairs {
		if p.isZRL() {
			zrlCount++
		}
	}
	require.Equal(t, 1, zrlCount)
}

func TestRLEEncodeDecodeTrailingNonZero(t *testing.T) {
	var ac [63]int32
	ac[62] = 1
	pairs := rleEncodeAC(ac)
	back, err := rleDecodeAC(pairs)
	require.NoError(t, err)
	require.Equal(t, ac, back)
}

func TestDPCMRoundTrip(t *testing.T) {
	dc := []int32{10, 12, 9, 9, -50, 1000}
	diffs := dpcmEncode(dc)
	back := dpcmDecode(diffs)
	require.Equal(t, dc, back)
}
