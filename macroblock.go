package picojpeg

// rasterImage is a row-major, three-byte-per-pixel raster. Used both for the
// RGB flavor (as read from the external raster collaborator) and the YCbCr
// flavor (after color conversion, at full resolution — chroma subsampling
// happens only during macroblock extraction).
type rasterImage struct {
	width, height int
	pix           []byte // len == 3*width*height
}

func newRasterImage(width, height int) *rasterImage {
	return &rasterImage{width: width, height: height, pix: make([]byte, 3*width*height)}
}

func (im *rasterImage) at(x, y int) (c0, c1, c2 byte) {
	if x < 0 {
		x = 0
	} else if x >= im.width {
		x = im.width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= im.height {
		y = im.height - 1
	}
	i := 3 * (y*im.width + x)
	return im.pix[i], im.pix[i+1], im.pix[i+2]
}

func (im *rasterImage) set(x, y int, c0, c1, c2 byte) {
	i := 3 * (y*im.width + x)
	im.pix[i], im.pix[i+1], im.pix[i+2] = c0, c1, c2
}

// rgbToYCbCrImage converts a full RGB raster to a full-resolution YCbCr
// raster.
func rgbToYCbCrImage(rgb *rasterImage) *rasterImage {
	out := newRasterImage(rgb.width, rgb.height)
	for y := 0; y < rgb.height; y++ {
		for x := 0; x < rgb.width; x++ {
			r, g, b := rgb.at(x, y)
			yy, cb, cr := rgbToYCbCr(r, g, b)
			out.set(x, y, yy, cb, cr)
		}
	}
	return out
}

// yCbCrToRGBImage converts a full-resolution YCbCr raster back to RGB.
func yCbCrToRGBImage(ycbcr *rasterImage) *rasterImage {
	out := newRasterImage(ycbcr.width, ycbcr.height)
	for y := 0; y < ycbcr.height; y++ {
		for x := 0; x < ycbcr.width; x++ {
			yy, cb, cr := ycbcr.at(x, y)
			r, g, b := yCbCrToRGB(yy, cb, cr)
			out.set(x, y, r, g, b)
		}
	}
	return out
}

// macroblock is a 16x16 image region: four 8x8 luma blocks in raster order
// (top-left, top-right, bottom-left, bottom-right) plus one 8x8 Cb block and
// one 8x8 Cr block (4:2:0 subsampling).
type macroblock struct {
	y     [4]block
	cb    block
	cr    block
}

// yBlockOffsets gives the (x,y) pixel offset of each of the four luma blocks
// within a macroblock, in the raster order fixed by the spec.
var yBlockOffsets = [4][2]int{{0, 0}, {8, 0}, {0, 8}, {8, 8}}

// macroblockGrid reports the number of macroblock columns and rows covering
// a width x height raster.
func macroblockGrid(width, height int) (cols, rows int) {
	cols = (width + 15) / 16
	rows = (height + 15) / 16
	return
}

// extractMacroblocks builds the macroblock array for a full-resolution
// YCbCr raster, in raster (row-major) scan order.
func extractMacroblocks(ycbcr *rasterImage) []macroblock {
	cols, rows := macroblockGrid(ycbcr.width, ycbcr.height)
	mbs := make([]macroblock, 0, cols*rows)
	for my := 0; my < rows; my++ {
		for mx := 0; mx < cols; mx++ {
			bx, by := mx*16, my*16
			mbs = append(mbs, extractOneMacroblock(ycbcr, bx, by))
		}
	}
	return mbs
}

func extractOneMacroblock(ycbcr *rasterImage, bx, by int) macroblock {
	var mb macroblock
	for k, off := range yBlockOffsets {
		ox, oy := off[0], off[1]
		for r := 0; r < 8; r++ {
			for c := 0; c < 8; c++ {
				y, _, _ := ycbcr.at(bx+ox+c, by+oy+r)
				mb.y[k][8*r+c] = float32(y) - 128
			}
		}
	}
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			sx, sy := bx+2*c, by+2*r
			_, cb00, cr00 := ycbcr.at(sx, sy)
			_, cb01, cr01 := ycbcr.at(sx+1, sy)
			_, cb10, cr10 := ycbcr.at(sx, sy+1)
			_, cb11, cr11 := ycbcr.at(sx+1, sy+1)
			cbSum := (float32(cb00) - 128) + (float32(cb01) - 128) + (float32(cb10) - 128) + (float32(cb11) - 128)
			crSum := (float32(cr00) - 128) + (float32(cr01) - 128) + (float32(cr10) - 128) + (float32(cr11) - 128)
			mb.cb[8*r+c] = cbSum / 4
			mb.cr[8*r+c] = crSum / 4
		}
	}
	return mb
}

// reassembleMacroblocks writes a macroblock array back into a
// full-resolution YCbCr raster of the given dimensions.
func reassembleMacroblocks(mbs []macroblock, width, height int) *rasterImage {
	out := newRasterImage(width, height)
	cols, rows := macroblockGrid(width, height)
	for my := 0; my < rows; my++ {
		for mx := 0; mx < cols; mx++ {
			writeOneMacroblock(out, &mbs[my*cols+mx], mx*16, my*16)
		}
	}
	return out
}

func writeOneMacroblock(dst *rasterImage, mb *macroblock, bx, by int) {
	for k, off := range yBlockOffsets {
		ox, oy := off[0], off[1]
		for r := 0; r < 8; r++ {
			for c := 0; c < 8; c++ {
				x, y := bx+ox+c, by+oy+r
				if x >= dst.width || y >= dst.height {
					continue
				}
				sample := clampSample(mb.y[k][8*r+c])
				_, cb, cr := dst.at(x, y)
				dst.set(x, y, sample, cb, cr)
			}
		}
	}
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			cb := clampSample(mb.cb[8*r+c])
			cr := clampSample(mb.cr[8*r+c])
			for dy := 0; dy < 2; dy++ {
				for dx := 0; dx < 2; dx++ {
					x, y := bx+2*c+dx, by+2*r+dy
					if x >= dst.width || y >= dst.height {
						continue
					}
					yy, _, _ := dst.at(x, y)
					dst.set(x, y, yy, cb, cr)
				}
			}
		}
	}
}

// clampSample inverts the -128 level shift and clamps to a valid byte.
func clampSample(v float32) byte {
	return clampToByte(float64(v) + 128)
}
