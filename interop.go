// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package outpaint

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
)

// ImageFromFrames packs frames into one [len(frames), H, W, C] batch, where
// H×W is the size of the first frame and C is 4 when withAlpha is set and 3
// otherwise. Frames of a different size are fitted with nearest-neighbor
// scaling. Channel values are straight (non-premultiplied) and scaled to [0, 1].
func ImageFromFrames(withAlpha bool, frames ...image.Image) (*Image, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: no frames", ErrInvalidImage)
	}
	bounds := frames[0].Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	c := 3
	if withAlpha {
		c = 4
	}

	im, err := NewImage(len(frames), h, w, c)
	if err != nil {
		return nil, err
	}

	rect := image.Rect(0, 0, w, h)
	nrgba := image.NewNRGBA(rect)
	for b, f := range frames {
		fitFrame(nrgba, f)
		dst := im.item(b)
		for i := range w * h {
			px := nrgba.Pix[i*4 : i*4+4]
			for k := range c {
				dst[i*c+k] = float32(px[k]) / 255
			}
		}
	}
	return im, nil
}

// Frame renders batch item b as an 8-bit NRGBA image. Values are clamped to
// [0, 1]. A 3-channel image is opaque; images with fewer than 3 channels
// are rendered as gray from channel 0.
func (im *Image) Frame(b int) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, im.width, im.height))
	src := im.item(b)
	c := im.channels
	for i := range im.width * im.height {
		px := src[i*c : i*c+c]
		o := out.Pix[i*4 : i*4+4]
		if c >= 3 {
			o[0], o[1], o[2] = to8(px[0]), to8(px[1]), to8(px[2])
		} else {
			g := to8(px[0])
			o[0], o[1], o[2] = g, g, g
		}
		o[3] = 255
		if c >= 4 {
			o[3] = to8(px[3])
		}
	}
	return out
}

// MaskFromFrames builds a [len(frames), H, W] mask from the gray level of
// each frame, where H×W is the size of the first frame. White is 1.
func MaskFromFrames(frames ...image.Image) (*Mask, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: no frames", ErrInvalidMask)
	}
	bounds := frames[0].Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	m, err := NewMask(len(frames), h, w)
	if err != nil {
		return nil, err
	}

	gray := image.NewGray16(image.Rect(0, 0, w, h))
	for b, f := range frames {
		fitFrame(gray, f)
		dst := m.item(b)
		for i := range w * h {
			v := uint16(gray.Pix[i*2])<<8 | uint16(gray.Pix[i*2+1])
			dst[i] = float32(v) / 0xffff
		}
	}
	return m, nil
}

// Frame renders batch item b of the mask as a 16-bit gray image.
func (m *Mask) Frame(b int) *image.Gray16 {
	out := image.NewGray16(image.Rect(0, 0, m.width, m.height))
	for i, v := range m.item(b) {
		g := to16(v)
		out.Pix[i*2] = uint8(g >> 8)
		out.Pix[i*2+1] = uint8(g)
	}
	return out
}

// fitFrame draws src over the whole of dst, scaling with nearest-neighbor
// when the sizes differ.
func fitFrame(dst draw.Image, src image.Image) {
	db, sb := dst.Bounds(), src.Bounds()
	if db.Dx() == sb.Dx() && db.Dy() == sb.Dy() {
		draw.Draw(dst, db, src, sb.Min, draw.Src)
		return
	}
	draw.NearestNeighbor.Scale(dst, db, src, sb, draw.Src, nil)
}

func to8(v float32) uint8 {
	return uint8(math.Round(float64(clamp01(v)) * 255))
}

func to16(v float32) uint16 {
	return uint16(math.Round(float64(clamp01(v)) * 0xffff))
}

func clamp01(v float32) float32 {
	switch {
	case v > 1:
		return 1
	case v >= 0:
		return v
	default:
		return 0
	}
}
