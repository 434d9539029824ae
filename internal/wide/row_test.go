package wide

import (
	"math"
	"testing"
)

func TestBlendRow(t *testing.T) {
	// 19 elements: two full vectors plus a 3-element tail.
	const n = 19
	a := make([]float32, n)
	b := make([]float32, n)
	w := make([]float32, n)
	for i := range n {
		a[i] = float32(i) / n
		b[i] = 1 - float32(i)/n
		w[i] = float32(i%3) / 2
	}

	dst := make([]float32, n)
	BlendRow(dst, a, b, w)

	for i := range n {
		want := a[i]*(1-w[i]) + b[i]*w[i]
		if math.Abs(float64(dst[i]-want)) > 1e-6 {
			t.Errorf("dst[%d] = %f, want %f", i, dst[i], want)
		}
	}
}

func TestBlendRow_ExactEndpoints(t *testing.T) {
	a := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 0.33}
	b := []float32{0.7, 0.3, 0.9, 0.11, 0.13, 0.17, 0.19, 0.23, 0.29, 0.31}
	w := []float32{0, 1, 0, 1, 0, 1, 0, 1, 0, 1}

	dst := make([]float32, len(a))
	BlendRow(dst, a, b, w)

	for i := range dst {
		want := a[i]
		if w[i] == 1 {
			want = b[i]
		}
		if dst[i] != want {
			t.Errorf("dst[%d] = %v, want %v exactly", i, dst[i], want)
		}
	}
}

func TestClampRow(t *testing.T) {
	row := []float32{-2, -0.5, 0, 0.3, 1, 1.5, 7, float32(math.NaN()), 0.75, 3}
	want := []float32{0, 0, 0, 0.3, 1, 1, 1, 0, 0.75, 1}

	ClampRow(row, 0, 1)

	for i := range row {
		if row[i] != want[i] {
			t.Errorf("row[%d] = %v, want %v", i, row[i], want[i])
		}
	}
}

func TestSpreadRow(t *testing.T) {
	w := []float32{0.25, 1}
	dst := make([]float32, 6)
	SpreadRow(dst, w, 3)

	want := []float32{0.25, 0.25, 0.25, 1, 1, 1}
	for i := range dst {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func BenchmarkBlendRow(b *testing.B) {
	const n = 1024 * 4
	a := make([]float32, n)
	c := make([]float32, n)
	w := make([]float32, n)
	dst := make([]float32, n)
	for i := range n {
		a[i] = float32(i%255) / 255
		c[i] = 1 - a[i]
		w[i] = float32(i%2) * 0.5
	}

	b.ResetTimer()
	for b.Loop() {
		BlendRow(dst, a, c, w)
	}
}
