package wide

// Lanes is the number of float32 lanes in F32x8.
const Lanes = 8

// F32x8 represents 8 float32 values for SIMD-style operations.
// Designed for Go compiler auto-vectorization with fixed-size arrays.
type F32x8 [Lanes]float32

// SplatF32 creates F32x8 with all elements set to n.
func SplatF32(n float32) F32x8 {
	var result F32x8
	for i := range result {
		result[i] = n
	}
	return result
}

// LoadF32 copies the first 8 elements of s into a F32x8.
// s must have at least 8 elements.
func LoadF32(s []float32) F32x8 {
	var result F32x8
	copy(result[:], s[:Lanes])
	return result
}

// Store writes all 8 lanes to the first 8 elements of dst.
func (v F32x8) Store(dst []float32) {
	copy(dst[:Lanes], v[:])
}

// Add performs element-wise addition.
func (v F32x8) Add(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs element-wise subtraction.
func (v F32x8) Sub(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Mul performs element-wise multiplication.
func (v F32x8) Mul(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// Clamp clamps each element to [minVal, maxVal].
// NaN lanes become minVal.
func (v F32x8) Clamp(minVal, maxVal float32) F32x8 {
	var result F32x8
	for i := range v {
		switch {
		case v[i] > maxVal:
			result[i] = maxVal
		case v[i] >= minVal:
			result[i] = v[i]
		default:
			result[i] = minVal
		}
	}
	return result
}

// Blend computes v*(1-t) + other*t per lane.
//
// The two-product form is used instead of v + (other-v)*t so that t == 0
// yields v and t == 1 yields other bit-for-bit.
func (v F32x8) Blend(other, t F32x8) F32x8 {
	one := SplatF32(1)
	return v.Mul(one.Sub(t)).Add(other.Mul(t))
}
