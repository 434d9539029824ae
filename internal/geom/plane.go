package geom

// Plane describes an H×W grid of C-element cells stored row-major.
// A mask plane has C == 1.
type Plane struct {
	H, W, C int
}

// Len returns the number of elements in the plane.
func (p Plane) Len() int { return p.H * p.W * p.C }

// Segments calls fn for each contiguous run of elements covered by span
// along axis. A row span is one run; a column span is one run per row.
// off is relative to the start of the plane.
func (p Plane) Segments(axis Axis, span Span, fn func(off, n int)) {
	if span.Len() <= 0 {
		return
	}
	rowLen := p.W * p.C
	if axis == Rows {
		fn(span.Start*rowLen, span.Len()*rowLen)
		return
	}
	n := span.Len() * p.C
	for y := range p.H {
		fn(y*rowLen+span.Start*p.C, n)
	}
}

// Copy copies the slab of src at srcSpan into the slab of dst at dstSpan.
// Both planes must agree on every dimension except the one along axis, and
// both spans must have the same length.
func Copy(dst []float32, dp Plane, dstSpan Span, src []float32, sp Plane, srcSpan Span, axis Axis) {
	if dstSpan.Len() != srcSpan.Len() {
		panic("geom: span length mismatch")
	}
	if dstSpan.Len() <= 0 {
		return
	}
	if axis == Rows {
		rowLen := dp.W * dp.C
		copy(dst[dstSpan.Start*rowLen:dstSpan.End*rowLen], src[srcSpan.Start*rowLen:srcSpan.End*rowLen])
		return
	}
	n := dstSpan.Len() * dp.C
	for y := range dp.H {
		d := y*dp.W*dp.C + dstSpan.Start*dp.C
		s := y*sp.W*sp.C + srcSpan.Start*sp.C
		copy(dst[d:d+n], src[s:s+n])
	}
}

// Fill sets every element of the slab at span to v.
func Fill(dst []float32, p Plane, span Span, axis Axis, v float32) {
	p.Segments(axis, span, func(off, n int) {
		seg := dst[off : off+n]
		for i := range seg {
			seg[i] = v
		}
	})
}

// Lines returns how a slab at span along axis decomposes into pixel runs
// that are contiguous within a row: the number of runs and the pixels per run.
func (p Plane) Lines(axis Axis, span Span) (lines, width int) {
	if axis == Rows {
		return span.Len(), p.W
	}
	return p.H, span.Len()
}

// LineStart returns the pixel coordinate where run k of the slab at span
// along axis begins.
func LineStart(axis Axis, span Span, k int) (y, x int) {
	if axis == Rows {
		return span.Start + k, 0
	}
	return k, span.Start
}

// Offset returns the element offset of pixel (x, y) within the plane.
func (p Plane) Offset(y, x int) int {
	return (y*p.W + x) * p.C
}
