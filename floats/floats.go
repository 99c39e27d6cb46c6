// Package floats provides bulk numeric operations over float64 vectors,
// dispatched to the SIMD kernels of algo-vecmath.
package floats

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-vec/vec"
)

// Scale multiplies every element of v by s in place.
func Scale(v *vec.Vector[float64], s float64) {
	b := v.Slice()
	if len(b) == 0 {
		return
	}
	vecmath.ScaleBlock(b, b, s)
}

// Add adds src into dst element-wise. Panics when lengths differ.
func Add(dst, src *vec.Vector[float64]) {
	d, s := dst.Slice(), src.Slice()
	if len(d) != len(s) {
		panic("floats: length mismatch")
	}
	if len(d) == 0 {
		return
	}
	vecmath.AddBlockInPlace(d, s)
}

// Mul writes a[i]*b[i] into dst. Panics when lengths differ.
func Mul(dst, a, b *vec.Vector[float64]) {
	d, x, y := dst.Slice(), a.Slice(), b.Slice()
	if len(d) != len(x) || len(d) != len(y) {
		panic("floats: length mismatch")
	}
	if len(d) == 0 {
		return
	}
	vecmath.MulBlock(d, x, y)
}

// Magnitude writes sqrt(re[i]^2+im[i]^2) into dst. Panics when lengths
// differ.
func Magnitude(dst, re, im *vec.Vector[float64]) {
	d, r, m := dst.Slice(), re.Slice(), im.Slice()
	if len(d) != len(r) || len(d) != len(m) {
		panic("floats: length mismatch")
	}
	if len(d) == 0 {
		return
	}
	vecmath.Magnitude(d, r, m)
}

// Power writes re[i]^2+im[i]^2 into dst. Panics when lengths differ.
func Power(dst, re, im *vec.Vector[float64]) {
	d, r, m := dst.Slice(), re.Slice(), im.Slice()
	if len(d) != len(r) || len(d) != len(m) {
		panic("floats: length mismatch")
	}
	if len(d) == 0 {
		return
	}
	vecmath.Power(d, r, m)
}
