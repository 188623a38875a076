package picojpeg

// zigzagOrder[i] is the natural (row-major) index of the coefficient that
// occupies zig-zag position i. DC (position 0) is the block's (0,0) entry.
var zigzagOrder = [64]int{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}

// vectorize reorders an 8x8 block (natural order) into a length-64 zig-zag
// vector, DC first.
func vectorize(b *[64]int32) [64]int32 {
	var v [64]int32
	for i, natural := range zigzagOrder {
		v[i] = b[natural]
	}
	return v
}

// devectorize inverts vectorize: devectorize(vectorize(b)) == b,
// element-identical.
func devectorize(v *[64]int32) [64]int32 {
	var b [64]int32
	for i, natural := range zigzagOrder {
		b[natural] = v[i]
	}
	return b
}
