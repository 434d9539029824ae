// Package resample resizes float32 planes.
package resample

// NearestIndex maps destination index i of a dstLen-long axis onto a
// srcLen-long axis by selecting the source cell that contains the
// destination cell's leading edge: floor(i * srcLen / dstLen), clamped.
func NearestIndex(i, dstLen, srcLen int) int {
	s := i * srcLen / dstLen
	if s >= srcLen {
		s = srcLen - 1
	}
	return s
}

// Nearest resamples a single-channel sw×sh plane into a dw×dh plane using
// nearest-neighbor selection. Values are copied, never interpolated, so hard
// edges stay hard. dst must hold dw*dh elements and src sw*sh.
func Nearest(dst []float32, dw, dh int, src []float32, sw, sh int) {
	if dw == sw && dh == sh {
		copy(dst[:dw*dh], src[:sw*sh])
		return
	}

	cols := make([]int, dw)
	for x := range dw {
		cols[x] = NearestIndex(x, dw, sw)
	}

	for y := range dh {
		srcRow := src[NearestIndex(y, dh, sh)*sw:]
		dstRow := dst[y*dw : (y+1)*dw]
		for x, sx := range cols {
			dstRow[x] = srcRow[sx]
		}
	}
}
