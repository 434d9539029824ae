package outpaint

import (
	"errors"
	"testing"
)

func TestNewMask(t *testing.T) {
	mask := mustMask(t, 2, 10, 20)
	if mask.Batch() != 2 || mask.Height() != 10 || mask.Width() != 20 {
		t.Errorf("expected 2x10x20, got %dx%dx%d", mask.Batch(), mask.Height(), mask.Width())
	}
	if mask.Rank() != 3 {
		t.Errorf("Rank() = %d, want 3", mask.Rank())
	}

	// All values should be 0
	if mask.At(1, 5, 5) != 0 {
		t.Errorf("expected 0, got %v", mask.At(1, 5, 5))
	}
}

func TestNewMask2D(t *testing.T) {
	mask, err := NewMask2D(3, 4)
	if err != nil {
		t.Fatalf("NewMask2D() = %v", err)
	}
	if mask.Rank() != 2 {
		t.Errorf("Rank() = %d, want 2", mask.Rank())
	}
	if mask.Batch() != 1 {
		t.Errorf("Batch() = %d, want 1", mask.Batch())
	}
	if got, want := mask.String(), "Mask[3x4]@cpu"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNewMask_Invalid(t *testing.T) {
	if _, err := NewMask(0, 1, 1); !errors.Is(err, ErrInvalidMask) {
		t.Errorf("NewMask(0, 1, 1) error = %v, want ErrInvalidMask", err)
	}
	if _, err := NewMask2D(1, 0); !errors.Is(err, ErrInvalidMask) {
		t.Errorf("NewMask2D(1, 0) error = %v, want ErrInvalidMask", err)
	}
	if _, err := NewMaskFromData(make([]float32, 5), 1, 2, 3); !errors.Is(err, ErrInvalidMask) {
		t.Errorf("NewMaskFromData() length mismatch error = %v, want ErrInvalidMask", err)
	}
}

func TestMaskFill(t *testing.T) {
	mask := mustMask(t, 1, 10, 10)
	mask.Fill(0.5)

	if mask.At(0, 5, 5) != 0.5 {
		t.Errorf("expected 0.5, got %v", mask.At(0, 5, 5))
	}
}

func TestMaskInvert(t *testing.T) {
	mask := mustMask(t, 1, 10, 10)
	mask.Fill(0.25)
	mask.Invert()

	if mask.At(0, 5, 5) != 0.75 {
		t.Errorf("expected 0.75, got %v", mask.At(0, 5, 5))
	}
}

func TestMaskClone(t *testing.T) {
	mask, _ := NewMask2D(4, 4)
	mask.Set(0, 1, 2, 1)
	clone := mask.Clone()

	if clone.At(0, 1, 2) != 1 {
		t.Errorf("clone value = %v, want 1", clone.At(0, 1, 2))
	}
	if clone.Rank() != 2 {
		t.Errorf("clone Rank() = %d, want 2", clone.Rank())
	}

	clone.Set(0, 1, 2, 0)
	if mask.At(0, 1, 2) != 1 {
		t.Error("modifying clone affected original")
	}
}

func TestMaskTo(t *testing.T) {
	mask := mustMask(t, 1, 2, 2)
	if mask.To("") != mask {
		t.Error("To(\"\") should resolve to CPU and return the receiver")
	}
	moved := mask.To("accel:1")
	if moved.Device() != "accel:1" || mask.Device() != CPU {
		t.Errorf("To() devices = %q, %q", moved.Device(), mask.Device())
	}
}
