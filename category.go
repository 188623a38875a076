package picojpeg

import "math/bits"

// maxDCCategory and maxACCategory are the largest categories the fixed
// Huffman tables carry. Encoders clamp DC differences to ±maxDCMagnitude and
// AC coefficients to ±maxACMagnitude. ±1023 is exactly the category-10
// range; ±4095 reaches category 12, so a DC difference beyond ±2047 has no
// DC Huffman code even after clamping.
const (
	maxDCCategory = 11
	maxDCMagnitude = 4095
	maxACCategory  = 10
	maxACMagnitude = 1023
)

// category returns the number of significant bits of |v|: 0 for v == 0,
// otherwise ceil(log2(|v|+1)), equivalently bits.Len of |v|.
func category(v int32) int {
	if v == 0 {
		return 0
	}
	u := v
	if u < 0 {
		u = -u
	}
	return bits.Len32(uint32(u))
}

// categoryCode returns the s-bit code for v under the given category s:
// v itself if v >= 0, else v + (2^s - 1). Positive values therefore have a
// leading 1 bit, negative values a leading 0 bit.
func categoryCode(v int32, s int) uint32 {
	if v >= 0 {
		return uint32(v)
	}
	return uint32(v + (1 << uint(s)) - 1)
}

// categoryDecode inverts categoryCode: c if its top (s-th) bit is 1, else
// -((2^s - 1) - c).
func categoryDecode(s int, c uint32) int32 {
	if s == 0 {
		return 0
	}
	if c&(1<<uint(s-1)) != 0 {
		return int32(c)
	}
	return -(int32(1<<uint(s)-1) - int32(c))
}

// clampDC clamps a DC difference to ±maxDCMagnitude, reporting whether
// clamping occurred (an Overflow condition to be logged by the caller).
func clampDC(v int32) (int32, bool) {
	if v > maxDCMagnitude {
		return maxDCMagnitude, true
	}
	if v < -maxDCMagnitude {
		return -maxDCMagnitude, true
	}
	return v, false
}

// clampAC clamps an AC coefficient to the encodable range, reporting whether
// clamping occurred.
func clampAC(v int32) (int32, bool) {
	if v > maxACMagnitude {
		return maxACMagnitude, true
	}
	if v < -maxACMagnitude {
		return -maxACMagnitude, true
	}
	return v, false
}
