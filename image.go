// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package outpaint

import (
	"fmt"

	"github.com/gogpu/outpaint/internal/geom"
)

// Image is a batch of images stored as a dense [Batch, Height, Width, Channels]
// float32 array in row-major order. Channel values are normalized, typically
// to [0, 1]. Channels is 3 for RGB and 4 for RGBA.
//
// Engines treat input images as read-only and always return fresh buffers.
type Image struct {
	batch    int
	height   int
	width    int
	channels int
	device   Device
	data     []float32
}

// NewImage allocates a zeroed image on the CPU.
func NewImage(batch, height, width, channels int) (*Image, error) {
	if err := checkDims(batch, height, width, channels); err != nil {
		return nil, err
	}
	return newImage(batch, height, width, channels, CPU), nil
}

// NewImageFromData wraps data without copying. len(data) must equal
// batch*height*width*channels.
func NewImageFromData(data []float32, batch, height, width, channels int) (*Image, error) {
	if err := checkDims(batch, height, width, channels); err != nil {
		return nil, err
	}
	if want := batch * height * width * channels; len(data) != want {
		return nil, fmt.Errorf("%w: data length %d, want %d", ErrInvalidImage, len(data), want)
	}
	return &Image{
		batch:    batch,
		height:   height,
		width:    width,
		channels: channels,
		device:   CPU,
		data:     data,
	}, nil
}

func newImage(batch, height, width, channels int, device Device) *Image {
	return &Image{
		batch:    batch,
		height:   height,
		width:    width,
		channels: channels,
		device:   device.orDefault(),
		data:     make([]float32, batch*height*width*channels),
	}
}

func checkDims(dims ...int) error {
	for _, d := range dims {
		if d <= 0 {
			return fmt.Errorf("%w: non-positive dimension in %v", ErrInvalidImage, dims)
		}
	}
	return nil
}

// Shape returns (batch, height, width, channels).
func (im *Image) Shape() (batch, height, width, channels int) {
	return im.batch, im.height, im.width, im.channels
}

// Batch returns the number of images in the batch.
func (im *Image) Batch() int { return im.batch }

// Height returns the image height in pixels.
func (im *Image) Height() int { return im.height }

// Width returns the image width in pixels.
func (im *Image) Width() int { return im.width }

// Channels returns the number of channels per pixel.
func (im *Image) Channels() int { return im.channels }

// Device returns the device the image lives on.
func (im *Image) Device() Device { return im.device }

// Data returns the underlying BHWC data slice.
func (im *Image) Data() []float32 { return im.data }

// At returns channel c of pixel (x, y) in batch item b.
func (im *Image) At(b, y, x, c int) float32 {
	return im.data[im.offset(b, y, x)+c]
}

// Set sets channel c of pixel (x, y) in batch item b.
func (im *Image) Set(b, y, x, c int, v float32) {
	im.data[im.offset(b, y, x)+c] = v
}

// Pixel returns the channel values of pixel (x, y) in batch item b.
// The slice aliases the image data.
func (im *Image) Pixel(b, y, x int) []float32 {
	o := im.offset(b, y, x)
	return im.data[o : o+im.channels]
}

func (im *Image) offset(b, y, x int) int {
	return ((b*im.height+y)*im.width + x) * im.channels
}

// Clone creates a deep copy of the image on the same device.
func (im *Image) Clone() *Image {
	out := newImage(im.batch, im.height, im.width, im.channels, im.device)
	copy(out.data, im.data)
	return out
}

// To returns the image located on device d. The receiver is returned as is
// when it already lives there; otherwise a relocated copy is returned.
func (im *Image) To(d Device) *Image {
	d = d.orDefault()
	if im.device == d {
		return im
	}
	out := im.Clone()
	out.device = d
	return out
}

// WithAlpha returns a copy with an opaque alpha channel (value 1) appended.
// Only 3-channel images are extended; any other image is cloned unchanged.
func (im *Image) WithAlpha() *Image {
	if im.channels != 3 {
		return im.Clone()
	}
	out := newImage(im.batch, im.height, im.width, 4, im.device)
	px := im.batch * im.height * im.width
	for i := range px {
		copy(out.data[i*4:i*4+3], im.data[i*3:i*3+3])
		out.data[i*4+3] = 1
	}
	return out
}

// plane returns the per-batch-item geometry of the image.
func (im *Image) plane() geom.Plane {
	return geom.Plane{H: im.height, W: im.width, C: im.channels}
}

// item returns the data of batch item b.
func (im *Image) item(b int) []float32 {
	n := im.height * im.width * im.channels
	return im.data[b*n : (b+1)*n]
}

func (im *Image) validate() error {
	if im == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidImage)
	}
	if err := checkDims(im.batch, im.height, im.width, im.channels); err != nil {
		return err
	}
	if want := im.batch * im.height * im.width * im.channels; len(im.data) != want {
		return fmt.Errorf("%w: data length %d, want %d", ErrInvalidImage, len(im.data), want)
	}
	return nil
}

// String returns the shape and device, e.g. "Image[1x4x4x3]@cpu".
func (im *Image) String() string {
	return fmt.Sprintf("Image[%dx%dx%dx%d]@%s", im.batch, im.height, im.width, im.channels, im.device)
}
