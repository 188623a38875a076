package picojpeg

// clampToByte rounds v half-up and saturates to [0,255].
func clampToByte(v float64) byte {
	r := int32(v + 0.5)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return byte(r)
}

// rgbToYCbCr converts one RGB sample to BT.601 YCbCr.
func rgbToYCbCr(r, g, b byte) (y, cb, cr byte) {
	rf, gf, bf := float64(r), float64(g), float64(b)
	y = clampToByte(0.299*rf + 0.587*gf + 0.114*bf)
	cb = clampToByte(-0.168736*rf - 0.331264*gf + 0.5*bf + 128)
	cr = clampToByte(0.5*rf - 0.418688*gf - 0.081312*bf + 128)
	return
}

// yCbCrToRGB converts one BT.601 YCbCr sample back to RGB.
func yCbCrToRGB(y, cb, cr byte) (r, g, b byte) {
	yf, cbf, crf := float64(y), float64(cb)-128, float64(cr)-128
	r = clampToByte(yf + 1.402*crf)
	g = clampToByte(yf - 0.344136*cbf - 0.714136*crf)
	b = clampToByte(yf + 1.772*cbf)
	return
}
