package picojpeg

import (
	"bytes"
	"fmt"

	"go.uber.org/zap"

	"github.com/dlecorfec/picojpeg/raster"
)

// dcPredictors holds the running DC prediction state for each of the three
// color-component streams, updated in macroblock scan order: the four Y
// blocks in their fixed raster order, then Cb, then Cr.
type dcPredictors struct {
	y, cb, cr int32
}

func (p *dcPredictors) diffY(dc int32) int32 {
	d := dc - p.y
	p.y = dc
	return d
}

func (p *dcPredictors) diffCb(dc int32) int32 {
	d := dc - p.cb
	p.cb = dc
	return d
}

func (p *dcPredictors) diffCr(dc int32) int32 {
	d := dc - p.cr
	p.cr = dc
	return d
}

func (p *dcPredictors) restoreY(diff int32) int32 {
	p.y += diff
	return p.y
}

func (p *dcPredictors) restoreCb(diff int32) int32 {
	p.cb += diff
	return p.cb
}

func (p *dcPredictors) restoreCr(diff int32) int32 {
	p.cr += diff
	return p.cr
}

// encodeOneBlock runs a single 8x8 block through DCT, quantization,
// zig-zag, and RLE, returning the DC coefficient (not yet DPCM-diffed) and
// the AC run-length pairs.
func encodeOneBlock(b *block, q quantTable, log *zap.SugaredLogger) (dc int32, ac []acPair) {
	f := forwardDCT(b)
	coeffs := quantizeBlock(f, q)
	vec := vectorize(&coeffs)
	dc = vec[0]
	var acNatural [63]int32
	copy(acNatural[:], vec[1:])
	for i, v := range acNatural {
		if clamped, overflowed := clampAC(v); overflowed {
			log.Warnw("AC coefficient clamped", "position", i+1, "value", v, "clamped", clamped)
			acNatural[i] = clamped
		}
	}
	return dc, rleEncodeAC(acNatural)
}

// decodeOneBlock inverts encodeOneBlock given an already-restored (non-diffed)
// DC value and the 63 decoded AC coefficients.
func decodeOneBlock(dc int32, ac [63]int32, q quantTable) *block {
	var vec [64]int32
	vec[0] = dc
	copy(vec[1:], ac[:])
	natural := devectorize(&vec)
	return dequantizeBlock(&natural, q)
}

// clampDCDiffLogged clamps a DPCM DC difference to the category codec's
// encodable range, logging when clamping actually discards information.
func clampDCDiffLogged(diff int32, log *zap.SugaredLogger) int32 {
	clamped, overflowed := clampDC(diff)
	if overflowed {
		log.Warnw("DC difference clamped", "value", diff, "clamped", clamped)
	}
	return clamped
}

// encodeMacroblock writes the Huffman-coded bitstream for one macroblock's
// six blocks (Y0,Y1,Y2,Y3,Cb,Cr), updating pred in place.
func encodeMacroblock(mb *macroblock, qLuma, qChroma quantTable, pred *dcPredictors, log *zap.SugaredLogger) ([]byte, error) {
	w := newBitWriter(64)
	for _, yb := range mb.y {
		dc, ac := encodeOneBlock(&yb, qLuma, log)
		rb := &rleBlock{dc: clampDCDiffLogged(pred.diffY(dc), log), ac: ac}
		if err := encodeBlock(w, rb); err != nil {
			return nil, err
		}
	}
	dcCb, acCb := encodeOneBlock(&mb.cb, qChroma, log)
	if err := encodeBlock(w, &rleBlock{dc: clampDCDiffLogged(pred.diffCb(dcCb), log), ac: acCb}); err != nil {
		return nil, err
	}
	dcCr, acCr := encodeOneBlock(&mb.cr, qChroma, log)
	if err := encodeBlock(w, &rleBlock{dc: clampDCDiffLogged(pred.diffCr(dcCr), log), ac: acCr}); err != nil {
		return nil, err
	}
	return w.bytes()
}

// decodeMacroblock inverts encodeMacroblock, updating pred in place.
func decodeMacroblock(chunk []byte, qLuma, qChroma quantTable, pred *dcPredictors) (*macroblock, error) {
	r := openBitReader(chunk)
	var mb macroblock
	for i := 0; i < 4; i++ {
		diff, ac, err := decodeBlock(r)
		if err != nil {
			return nil, err
		}
		mb.y[i] = *decodeOneBlock(pred.restoreY(diff), ac, qLuma)
	}
	diffCb, acCb, err := decodeBlock(r)
	if err != nil {
		return nil, err
	}
	mb.cb = *decodeOneBlock(pred.restoreCb(diffCb), acCb, qChroma)

	diffCr, acCr, err := decodeBlock(r)
	if err != nil {
		return nil, err
	}
	mb.cr = *decodeOneBlock(pred.restoreCr(diffCr), acCr, qChroma)

	return &mb, nil
}

// validateQuality and validateDimensions implement the fail-fast domain
// checks the source performs before doing any work.
func validateQuality(quality int) error {
	if quality < 1 || quality > 100 {
		return InvalidArgumentError(fmt.Sprintf("quality %d out of [1,100]", quality))
	}
	return nil
}

func validateDimensions(width, height int) error {
	if width%8 != 0 || height%8 != 0 {
		return InvalidArgumentError(fmt.Sprintf("dimensions %dx%d are not multiples of 8", width, height))
	}
	return nil
}

// Compress reads a raster from inputPath, runs the full encode pipeline at
// the given quality, and writes the resulting container to outputPath.
func Compress(inputPath, outputPath string, quality int, log *zap.SugaredLogger) error {
	if err := validateQuality(quality); err != nil {
		return wrapStage("validate", err)
	}

	img, err := raster.Read(inputPath)
	if err != nil {
		return wrapStage("raster.Read", InputUnreadableError(err.Error()))
	}
	if err := validateDimensions(img.Width, img.Height); err != nil {
		return wrapStage("validate", err)
	}

	rgb := &rasterImage{width: img.Width, height: img.Height, pix: img.Pix}
	ycbcr := rgbToYCbCrImage(rgb)
	mbs := extractMacroblocks(ycbcr)

	qLuma := effectiveTable(baseLumaQuant, quality)
	qChroma := effectiveTable(baseChromaQuant, quality)

	pred := &dcPredictors{}
	chunks := make([][]byte, 0, len(mbs))
	for i := range mbs {
		chunk, err := encodeMacroblock(&mbs[i], qLuma, qChroma, pred, log)
		if err != nil {
			return wrapStage(fmt.Sprintf("encodeMacroblock[%d]", i), err)
		}
		chunks = append(chunks, chunk)
	}

	var out bytes.Buffer
	if err := writeContainer(&out, img.Header, quality, chunks); err != nil {
		return wrapStage("writeContainer", err)
	}
	if err := writeFile(outputPath, out.Bytes()); err != nil {
		return wrapStage("write output", InputUnreadableError(err.Error()))
	}

	original := len(img.Header) + len(img.Pix)
	compressed := out.Len()
	ratio := float64(original) / float64(compressed)
	log.Infow("compression complete",
		"input", inputPath, "output", outputPath, "quality", quality,
		"macroblocks", len(mbs), "originalBytes", original, "compressedBytes", compressed,
		"ratio", ratio)
	return nil
}

// Decompress reads a container from inputPath, runs the full decode
// pipeline, and writes the reconstructed raster to outputPath.
func Decompress(inputPath, outputPath string, log *zap.SugaredLogger) error {
	data, err := readFile(inputPath)
	if err != nil {
		return wrapStage("read input", InputUnreadableError(err.Error()))
	}

	rasterHeader, quality, chunks, err := readContainer(bytes.NewReader(data), bmpHeaderSize)
	if err != nil {
		return wrapStage("readContainer", err)
	}
	if err := validateQuality(quality); err != nil {
		return wrapStage("validate", err)
	}

	width, height, err := bmpDimensions(rasterHeader)
	if err != nil {
		return wrapStage("validate", err)
	}
	cols, rows := macroblockGrid(width, height)
	if got, want := len(chunks), cols*rows; got != want {
		return wrapStage("readContainer", MalformedError(fmt.Sprintf("macroblock count %d does not match grid %d", got, want)))
	}

	qLuma := effectiveTable(baseLumaQuant, quality)
	qChroma := effectiveTable(baseChromaQuant, quality)

	pred := &dcPredictors{}
	mbs := make([]macroblock, len(chunks))
	for i, chunk := range chunks {
		mb, err := decodeMacroblock(chunk, qLuma, qChroma, pred)
		if err != nil {
			return wrapStage(fmt.Sprintf("decodeMacroblock[%d]", i), err)
		}
		mbs[i] = *mb
	}

	ycbcr := reassembleMacroblocks(mbs, width, height)
	rgb := yCbCrToRGBImage(ycbcr)

	if err := raster.Write(outputPath, rasterHeader, rgb.pix, width, height); err != nil {
		return wrapStage("raster.Write", InputUnreadableError(err.Error()))
	}

	log.Infow("decompression complete",
		"input", inputPath, "output", outputPath, "quality", quality, "macroblocks", len(mbs))
	return nil
}
