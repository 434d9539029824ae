package outpaint

import "testing"

func mustImage(t *testing.T, batch, height, width, channels int) *Image {
	t.Helper()
	im, err := NewImage(batch, height, width, channels)
	if err != nil {
		t.Fatalf("NewImage(%d, %d, %d, %d) = %v", batch, height, width, channels, err)
	}
	return im
}

func mustMask(t *testing.T, batch, height, width int) *Mask {
	t.Helper()
	m, err := NewMask(batch, height, width)
	if err != nil {
		t.Fatalf("NewMask(%d, %d, %d) = %v", batch, height, width, err)
	}
	return m
}

// gradientImage fills every element with a distinct value in (0, 1) so
// shifted content can be traced back to its source pixel.
func gradientImage(t *testing.T, batch, height, width, channels int) *Image {
	t.Helper()
	im := mustImage(t, batch, height, width, channels)
	n := float32(len(im.data) + 1)
	for i := range im.data {
		im.data[i] = float32(i+1) / n
	}
	return im
}

func filledImage(t *testing.T, batch, height, width, channels int, v float32) *Image {
	t.Helper()
	im := mustImage(t, batch, height, width, channels)
	for i := range im.data {
		im.data[i] = v
	}
	return im
}

func equalImages(a, b *Image) bool {
	if a.batch != b.batch || a.height != b.height || a.width != b.width || a.channels != b.channels {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}

func allDirections() []Direction { return []Direction{Top, Bottom, Left, Right} }
