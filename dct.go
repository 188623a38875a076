package picojpeg

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// block is an 8x8 array of real-valued samples or coefficients, flattened
// row-major: block[8*row+col]. This one flattened float type carries every
// block through the DCT and into and out of quantization, rather than the
// source's divergent named-field / nested-array / per-component layouts;
// quantized coefficients and the zig-zag stage use a flattened [64]int32.
type block [64]float32

// dctMatrix is the fixed 8x8 transform matrix C, with
// C[i][j] = alpha(i) * cos((2j+1)*i*pi/16) / 2, precomputed once per
// process. forward_dct = C . B . C^T, inverse_dct = C^T . F . C.
var dctMatrix = newDCTMatrix()

func newDCTMatrix() *mat.Dense {
	c := mat.NewDense(8, 8, nil)
	for i := 0; i < 8; i++ {
		alpha := 1.0
		if i == 0 {
			alpha = 1.0 / math.Sqrt2
		}
		for j := 0; j < 8; j++ {
			v := alpha * math.Cos(float64(2*j+1)*float64(i)*math.Pi/16) / 2
			c.Set(i, j, v)
		}
	}
	return c
}

func blockToMat(b *block) *mat.Dense {
	m := mat.NewDense(8, 8, nil)
	for i := 0; i < 64; i++ {
		m.Set(i/8, i%8, float64(b[i]))
	}
	return m
}

func matToBlock(m mat.Matrix) *block {
	var b block
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			b[8*r+c] = float32(m.At(r, c))
		}
	}
	return &b
}

// forwardDCT computes F = C . B . C^T, the 8x8 forward DCT of b.
func forwardDCT(b *block) *block {
	bm := blockToMat(b)
	var tmp, out mat.Dense
	tmp.Mul(dctMatrix, bm)
	out.Mul(&tmp, dctMatrix.T())
	return matToBlock(&out)
}

// inverseDCT computes B = C^T . F . C, the 8x8 inverse DCT of f.
func inverseDCT(f *block) *block {
	fm := blockToMat(f)
	var tmp, out mat.Dense
	tmp.Mul(dctMatrix.T(), fm)
	out.Mul(&tmp, dctMatrix)
	return matToBlock(&out)
}
