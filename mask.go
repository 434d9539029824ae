// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package outpaint

import (
	"fmt"

	"github.com/gogpu/outpaint/internal/geom"
)

// Mask is a soft per-pixel indicator of synthetic content.
// A value of 1 marks a pixel that is noise or generated; 0 marks original,
// authentic content. Values in between are partial membership used for
// seam blending.
//
// A Mask is stored as [Batch, Height, Width] float32 data. Masks built with
// NewMask2D have no batch dimension (Rank 2); AdaptMask inserts one.
type Mask struct {
	batch   int
	height  int
	width   int
	batched bool
	device  Device
	data    []float32
}

// NewMask creates a new [batch, height, width] mask on the CPU.
// All values are initialized to 0 (original content).
func NewMask(batch, height, width int) (*Mask, error) {
	if err := checkMaskDims(batch, height, width); err != nil {
		return nil, err
	}
	return newMask(batch, height, width, CPU), nil
}

// NewMask2D creates a new [height, width] mask without a batch dimension.
func NewMask2D(height, width int) (*Mask, error) {
	if err := checkMaskDims(1, height, width); err != nil {
		return nil, err
	}
	m := newMask(1, height, width, CPU)
	m.batched = false
	return m, nil
}

// NewMaskFromData wraps data as a [batch, height, width] mask without copying.
func NewMaskFromData(data []float32, batch, height, width int) (*Mask, error) {
	if err := checkMaskDims(batch, height, width); err != nil {
		return nil, err
	}
	if want := batch * height * width; len(data) != want {
		return nil, fmt.Errorf("%w: data length %d, want %d", ErrInvalidMask, len(data), want)
	}
	return &Mask{
		batch:   batch,
		height:  height,
		width:   width,
		batched: true,
		device:  CPU,
		data:    data,
	}, nil
}

func newMask(batch, height, width int, device Device) *Mask {
	return &Mask{
		batch:   batch,
		height:  height,
		width:   width,
		batched: true,
		device:  device.orDefault(),
		data:    make([]float32, batch*height*width),
	}
}

func checkMaskDims(batch, height, width int) error {
	if batch <= 0 || height <= 0 || width <= 0 {
		return fmt.Errorf("%w: non-positive dimension [%d %d %d]", ErrInvalidMask, batch, height, width)
	}
	return nil
}

// Rank returns 3 for a batched mask and 2 for a bare [height, width] mask.
func (m *Mask) Rank() int {
	if m.batched {
		return 3
	}
	return 2
}

// Batch returns the batch count. A rank-2 mask reports 1.
func (m *Mask) Batch() int { return m.batch }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Device returns the device the mask lives on.
func (m *Mask) Device() Device { return m.device }

// Data returns the underlying mask data slice.
func (m *Mask) Data() []float32 { return m.data }

// At returns the mask value at (x, y) in batch item b.
func (m *Mask) At(b, y, x int) float32 {
	return m.data[(b*m.height+y)*m.width+x]
}

// Set sets the mask value at (x, y) in batch item b.
func (m *Mask) Set(b, y, x int, v float32) {
	m.data[(b*m.height+y)*m.width+x] = v
}

// Fill fills the entire mask with a value.
func (m *Mask) Fill(v float32) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Invert inverts all mask values (1 - value).
func (m *Mask) Invert() {
	for i := range m.data {
		m.data[i] = 1 - m.data[i]
	}
}

// Clone creates a copy of the mask on the same device.
func (m *Mask) Clone() *Mask {
	clone := newMask(m.batch, m.height, m.width, m.device)
	clone.batched = m.batched
	copy(clone.data, m.data)
	return clone
}

// To returns the mask located on device d, copying only when it moves.
func (m *Mask) To(d Device) *Mask {
	d = d.orDefault()
	if m.device == d {
		return m
	}
	out := m.Clone()
	out.device = d
	return out
}

func (m *Mask) plane() geom.Plane {
	return geom.Plane{H: m.height, W: m.width, C: 1}
}

func (m *Mask) item(b int) []float32 {
	n := m.height * m.width
	return m.data[b*n : (b+1)*n]
}

// String returns the shape and device, e.g. "Mask[1x4x4]@cpu".
func (m *Mask) String() string {
	if !m.batched {
		return fmt.Sprintf("Mask[%dx%d]@%s", m.height, m.width, m.device)
	}
	return fmt.Sprintf("Mask[%dx%dx%d]@%s", m.batch, m.height, m.width, m.device)
}
