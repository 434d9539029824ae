package wide

// BlendRow writes a[i]*(1-t[i]) + b[i]*t[i] into dst[i] for every i.
// All slices must have the same length as dst.
func BlendRow(dst, a, b, t []float32) {
	n := len(dst)
	i := 0
	for ; i+Lanes <= n; i += Lanes {
		va := LoadF32(a[i:])
		vb := LoadF32(b[i:])
		vt := LoadF32(t[i:])
		va.Blend(vb, vt).Store(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i]*(1-t[i]) + b[i]*t[i]
	}
}

// ClampRow clamps every element of row to [lo, hi] in place.
// NaN elements become lo.
func ClampRow(row []float32, lo, hi float32) {
	n := len(row)
	i := 0
	for ; i+Lanes <= n; i += Lanes {
		LoadF32(row[i:]).Clamp(lo, hi).Store(row[i:])
	}
	for ; i < n; i++ {
		v := row[i]
		switch {
		case v > hi:
			row[i] = hi
		case v >= lo:
		default:
			row[i] = lo
		}
	}
}

// SpreadRow writes each weight of w into c consecutive slots of dst,
// turning a per-pixel mask row into a per-channel weight row.
// dst must have len(w)*c elements.
func SpreadRow(dst, w []float32, c int) {
	for x, v := range w {
		o := x * c
		for k := range c {
			dst[o+k] = v
		}
	}
}
