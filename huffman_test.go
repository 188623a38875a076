package picojpeg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDCHuffmanCodesAreUnique(t *testing.T) {
	seen := map[string]byte{}
	for length := 1; length <= 16; length++ {
		for _, e := range dcHuff.decode[length] {
			key := string(rune(length)) + "/" + string(rune(e.code))
			_, dup := seen[key]
			require.False(t, dup, "duplicate DC code at length %d", length)
			seen[key] = e.symbol
		}
	}
}

func TestHuffmanBlockRoundTrip(t *testing.T) {
	var acCoeffs [63]int32
	acCoeffs[0] = 5
	acCoeffs[2] = -3
	acCoeffs[20] = 9
	rb := &rleBlock{dc: -12, ac: rleEncodeAC(acCoeffs)}

	w := newBitWriter(16)
	require.NoError(t, encodeBlock(w, rb))
	data, err := w.bytes()
	require.NoError(t, err)

	r := openBitReader(data)
	dc, ac, err := decodeBlock(r)
	require.NoError(t, err)
	require.Equal(t, rb.dc, dc)

	wantAC, err := rleDecodeAC(rb.ac)
	require.NoError(t, err)
	require.Equal(t, wantAC, ac)
}

func TestHuffmanBlockRoundTripAllZeroAC(t *testing.T) {
	var acCoeffs [63]int32
	rb := &rleBlock{dc: 7, ac: rleEncodeAC(acCoeffs)}

	w := newBitWriter(4)
	require.NoError(t, encodeBlock(w, rb))
	data, err := w.bytes()
	require.NoError(t, err)

	r := openBitReader(data)
	dc, ac, err := decodeBlock(r)
	require.NoError(t, err)
	require.Equal(t, int32(7), dc)
	require.Equal(t, acCoeffs, ac)
}

func TestDecodeSymbolFailsOnGarbage(t *testing.T) {
	w := newBitWriter(4)
	// 16 one-bits never forms a valid AC prefix.
	require.NoError(t, w.writeBits(0xFFFF, 16))
	data, err := w.bytes()
	require.NoError(t, err)
	r := openBitReader(data)
	_, err = decodeSymbol(r, acHuff)
	require.Error(t, err)
}
