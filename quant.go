package picojpeg

// quantTable is an 8x8 table of quantization divisors, natural (row-major,
// not zig-zag) order, matching the order blocks are kept in throughout this
// pipeline (quantization happens before zig-zag, per §4 of the spec).
type quantTable [64]int32

// baseLumaQuant and baseChromaQuant are the canonical Annex K quantization
// tables, natural order, used unscaled at quality 50.
var baseLumaQuant = quantTable{
	16, 11, 10, 16, 24, 40, 51, 61,
	12, 12, 14, 19, 26, 58, 60, 55,
	14, 13, 16, 24, 40, 57, 69, 56,
	14, 17, 22, 29, 51, 87, 80, 62,
	18, 22, 37, 56, 68, 109, 103, 77,
	24, 35, 55, 64, 81, 104, 113, 92,
	49, 64, 78, 87, 103, 121, 120, 101,
	72, 92, 95, 98, 112, 100, 103, 99,
}

var baseChromaQuant = quantTable{
	17, 18, 24, 47, 99, 99, 99, 99,
	18, 21, 26, 66, 99, 99, 99, 99,
	24, 26, 56, 99, 99, 99, 99, 99,
	47, 66, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
}

// qualityScale returns the scaling multiplier m for a quality factor Q in
// [1,100]: 5000/Q when Q<50, 200-2Q otherwise.
func qualityScale(quality int) int32 {
	if quality < 50 {
		return int32(5000 / quality)
	}
	return int32(200 - 2*quality)
}

// effectiveTable scales base by the quality factor, per
// round_half_up((base*m + 50)/100), floored to a minimum of 1.
func effectiveTable(base quantTable, quality int) quantTable {
	m := qualityScale(quality)
	var out quantTable
	for i, v := range base {
		x := (v*m + 50) / 100
		if x < 1 {
			x = 1
		}
		out[i] = x
	}
	return out
}

// roundHalfAwayFromZero implements round-half-to-nearest with ties away from
// zero, the rounding mode used by quantize_block.
func roundHalfAwayFromZero(v float32) int32 {
	if v >= 0 {
		return int32(v + 0.5)
	}
	return -int32(-v + 0.5)
}

// quantizeBlock replaces each F[u,v] with round(F[u,v] / q[u,v]).
func quantizeBlock(f *block, q quantTable) [64]int32 {
	var out [64]int32
	for i := range f {
		out[i] = roundHalfAwayFromZero(f[i] / float32(q[i]))
	}
	return out
}

// dequantizeBlock multiplies each coefficient by the corresponding table
// entry, producing a float block ready for the inverse DCT.
func dequantizeBlock(coeffs *[64]int32, q quantTable) *block {
	var b block
	for i, c := range coeffs {
		b[i] = float32(c) * float32(q[i])
	}
	return &b
}
