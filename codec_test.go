package picojpeg

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dlecorfec/picojpeg/raster"
)

// buildBMPHeader constructs a minimal 54-byte BITMAPFILEHEADER+
// BITMAPINFOHEADER for a bottom-up, uncompressed 24bpp image.
func buildBMPHeader(width, height int) []byte {
	h := make([]byte, bmpHeaderSize)
	h[0], h[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(h[10:14], uint32(bmpHeaderSize))
	binary.LittleEndian.PutUint32(h[14:18], 40)
	binary.LittleEndian.PutUint32(h[18:22], uint32(width))
	binary.LittleEndian.PutUint32(h[22:26], uint32(height))
	binary.LittleEndian.PutUint16(h[26:28], 1)
	binary.LittleEndian.PutUint16(h[28:30], 24)
	return h
}

func writeTestBMP(t *testing.T, path string, width, height int, fill func(x, y int) (r, g, b byte)) {
	t.Helper()
	header := buildBMPHeader(width, height)
	pix := make([]byte, 3*width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b := fill(x, y)
			i := 3 * (y*width + x)
			pix[i], pix[i+1], pix[i+2] = r, g, b
		}
	}
	require.NoError(t, raster.Write(path, header, pix, width, height))
}

func TestEndToEndDeterminism(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.bmp")
	writeTestBMP(t, in, 16, 16, func(x, y int) (byte, byte, byte) {
		return byte(x * 16), byte(y * 16), byte((x + y) * 8)
	})

	out1 := filepath.Join(dir, "out1.pjpg")
	out2 := filepath.Join(dir, "out2.pjpg")
	require.NoError(t, Compress(in, out1, 80, noopLogger()))
	require.NoError(t, Compress(in, out2, 80, noopLogger()))

	b1, err := os.ReadFile(out1)
	require.NoError(t, err)
	b2, err := os.ReadFile(out2)
	require.NoError(t, err)
	require.Equal(t, b1, b2)
}

func TestEndToEndNearIdentityAtQ100(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.bmp")
	writeTestBMP(t, in, 32, 16, func(x, y int) (byte, byte, byte) {
		return byte((x * 7) % 256), byte((y * 11) % 256), byte((x + 2*y) % 256)
	})

	container := filepath.Join(dir, "out.pjpg")
	require.NoError(t, Compress(in, container, 100, noopLogger()))

	outImg := filepath.Join(dir, "out.bmp")
	require.NoError(t, Decompress(container, outImg, noopLogger()))

	decoded, err := raster.Read(outImg)
	require.NoError(t, err)

	original, err := raster.Read(in)
	require.NoError(t, err)

	require.Equal(t, len(original.Pix), len(decoded.Pix))
	for i := range original.Pix {
		diff := int(original.Pix[i]) - int(decoded.Pix[i])
		if diff < 0 {
			diff = -diff
		}
		require.LessOrEqual(t, diff, 6, "byte %d", i)
	}
}

func TestCompressRejectsBadQuality(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.bmp")
	writeTestBMP(t, in, 8, 8, func(x, y int) (byte, byte, byte) { return 1, 2, 3 })

	err := Compress(in, filepath.Join(dir, "out.pjpg"), 0, noopLogger())
	require.Error(t, err)

	err = Compress(in, filepath.Join(dir, "out.pjpg"), 101, noopLogger())
	require.Error(t, err)
}

func TestCompressRejectsNonMultipleOf8Dimensions(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.bmp")
	writeTestBMP(t, in, 10, 8, func(x, y int) (byte, byte, byte) { return 1, 2, 3 })

	err := Compress(in, filepath.Join(dir, "out.pjpg"), 50, noopLogger())
	require.Error(t, err)
}
