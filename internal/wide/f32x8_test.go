package wide

import (
	"math"
	"testing"
)

func TestSplatF32(t *testing.T) {
	tests := []struct {
		name  string
		value float32
	}{
		{"zero", 0.0},
		{"one", 1.0},
		{"half", 0.5},
		{"negative", -1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SplatF32(tt.value)
			for i, v := range result {
				if v != tt.value {
					t.Errorf("element %d = %f, want %f", i, v, tt.value)
				}
			}
		})
	}
}

func TestF32x8_LoadStore(t *testing.T) {
	src := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	v := LoadF32(src)
	dst := make([]float32, 9)
	v.Store(dst)

	for i := range Lanes {
		if dst[i] != src[i] {
			t.Errorf("dst[%d] = %f, want %f", i, dst[i], src[i])
		}
	}
	if dst[8] != 0 {
		t.Errorf("dst[8] = %f, want 0 (untouched)", dst[8])
	}
}

func TestF32x8_Clamp(t *testing.T) {
	v := F32x8{-1, 0, 0.25, 0.5, 1, 2, float32(math.NaN()), float32(math.Inf(1))}
	want := F32x8{0, 0, 0.25, 0.5, 1, 1, 0, 1}

	got := v.Clamp(0, 1)
	if got != want {
		t.Errorf("Clamp() = %v, want %v", got, want)
	}
}

func TestF32x8_Blend(t *testing.T) {
	tests := []struct {
		name string
		a, b F32x8
		t    F32x8
		want F32x8
	}{
		{
			name: "weight zero keeps a",
			a:    F32x8{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8},
			b:    SplatF32(0.9),
			t:    SplatF32(0),
			want: F32x8{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8},
		},
		{
			name: "weight one takes b",
			a:    F32x8{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8},
			b:    F32x8{0.7, 0.3, 0.9, 0.11, 0.13, 0.17, 0.19, 0.23},
			t:    SplatF32(1),
			want: F32x8{0.7, 0.3, 0.9, 0.11, 0.13, 0.17, 0.19, 0.23},
		},
		{
			name: "half",
			a:    SplatF32(0),
			b:    SplatF32(1),
			t:    SplatF32(0.5),
			want: SplatF32(0.5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Blend(tt.b, tt.t)
			if got != tt.want {
				t.Errorf("Blend() = %v, want %v", got, tt.want)
			}
		})
	}
}
