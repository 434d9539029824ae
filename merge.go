// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package outpaint

import (
	"errors"
	"fmt"

	"github.com/gogpu/outpaint/internal/geom"
	"github.com/gogpu/outpaint/internal/parallel"
	"github.com/gogpu/outpaint/internal/wide"
)

// CheckShapes returns an error wrapping ErrShapeMismatch when image1 and
// image2 differ in height or width, and nil otherwise.
func CheckShapes(image1, image2 *Image) error {
	if image1.height != image2.height || image1.width != image2.width {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch,
			image1.height, image1.width, image2.height, image2.width)
	}
	return nil
}

// Merge composes the original image1 with the synthesized canvas image2.
//
// Channel counts are reconciled first: when one image is RGB and the other
// RGBA, an opaque alpha channel is appended to the RGB one. If the images
// then differ in spatial size, image2 is taken to be the final composition
// already and a copy of it is returned.
//
// In Outside mode the result grows by expand_size along the direction's
// axis: the noise band of image2 (now synthesized) is concatenated at the
// edge, and the rest is image1. With a mask, the part of image1 that image2
// holds in shifted form is blended as image1*(1-mask) + image2*mask, with
// the mask sampled at image2's coordinates, so the seam follows the
// generated content. In Inside mode, without a mask, image2 is returned;
// with one, the result is the same blend over the full extent.
//
// The result lives on image1's device. image1, image2 and mask are not
// modified.
func (e *Engine) Merge(image1, image2 *Image, opts Options, mask *Mask) (*Image, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := image1.validate(); err != nil {
		return nil, fmt.Errorf("outpaint: merge image1: %w", err)
	}
	if err := image2.validate(); err != nil {
		return nil, fmt.Errorf("outpaint: merge image2: %w", err)
	}

	original2 := image2
	image2 = image2.To(image1.device)

	image1, image2, err := reconcileChannels(image1, image2)
	if err != nil {
		return nil, err
	}

	if err := CheckShapes(image1, image2); err != nil {
		if !errors.Is(err, ErrShapeMismatch) {
			return nil, err
		}
		Logger().Warn("outpaint: merge fallback, returning image2", "err", err)
		return fresh(image2, original2), nil
	}
	if image1.batch != image2.batch {
		return nil, fmt.Errorf("%w: batch %d vs %d", ErrInvalidImage, image1.batch, image2.batch)
	}

	var m *Mask
	if mask != nil {
		if m, err = AdaptMask(mask, image1.batch, image1.height, image1.width, image1.device); err != nil {
			return nil, fmt.Errorf("outpaint: merge: %w", err)
		}
	}

	side := opts.direction.side()
	extent := side.Extent(image1.plane())
	n := opts.ExpandSize(extent)

	Logger().Debug("outpaint: merge",
		"image1", image1.String(),
		"image2", image2.String(),
		"options", opts.String(),
		"expand_size", n,
		"mask", mask != nil)

	switch opts.mode {
	case Inside:
		if m == nil {
			return fresh(image2, original2), nil
		}
		return e.blendInside(image1, image2, m), nil
	default:
		return e.growOutside(image1, image2, m, side, n), nil
	}
}

// reconcileChannels gives both images the same channel count by appending
// an opaque alpha channel to an RGB image paired with an RGBA one.
func reconcileChannels(image1, image2 *Image) (*Image, *Image, error) {
	c1, c2 := image1.channels, image2.channels
	switch {
	case c1 == c2:
		return image1, image2, nil
	case c1 == 3 && c2 == 4:
		return image1.WithAlpha(), image2, nil
	case c1 == 4 && c2 == 3:
		return image1, image2.WithAlpha(), nil
	default:
		return nil, nil, fmt.Errorf("%w: cannot reconcile %d and %d channels", ErrInvalidImage, c1, c2)
	}
}

// fresh returns im, or a copy of it when im is still the caller's buffer.
func fresh(im, callers *Image) *Image {
	if im == callers {
		return im.Clone()
	}
	return im
}

// blendInside returns image1*(1-m) + image2*m over the whole plane.
func (e *Engine) blendInside(image1, image2 *Image, m *Mask) *Image {
	out := newImage(image1.batch, image1.height, image1.width, image1.channels, image1.device)
	p := image1.plane()
	mp := m.plane()
	bands := parallel.SplitRows(image1.height, e.rowsPerTask)

	tasks := make([]func(), 0, image1.batch*len(bands))
	for b := range image1.batch {
		for _, band := range bands {
			span := geom.Span{Start: band.Start, End: band.End}
			tasks = append(tasks, func() {
				blendSlab(
					slab{out.item(b), p, span},
					slab{image1.item(b), p, span},
					slab{image2.item(b), p, span},
					slab{m.item(b), mp, span},
					geom.Rows)
			})
		}
	}
	e.run(tasks)
	return out
}

// growOutside concatenates image2's band at the edge onto image1, blending
// the overlap first when m is non-nil.
func (e *Engine) growOutside(image1, image2 *Image, m *Mask, side geom.Side, n int) *Image {
	p := image1.plane()
	extent := side.Extent(p)
	op := side.Grown(p, n)

	out := newImage(image1.batch, op.H, op.W, op.C, image1.device)
	strip, body := side.Grow(extent, n)
	band := side.Band(extent, n)
	from, to := side.Shift(extent, n)
	overlap := geom.Span{Start: body.Start + from.Start, End: body.Start + from.End}

	e.run(perItem(image1.batch, func(b int) {
		dst := out.item(b)
		geom.Copy(dst, op, body, image1.item(b), p, geom.Span{Start: 0, End: extent}, side.Axis)
		geom.Copy(dst, op, strip, image2.item(b), p, band, side.Axis)
		if m != nil {
			blendSlab(
				slab{dst, op, overlap},
				slab{image1.item(b), p, from},
				slab{image2.item(b), p, to},
				slab{m.item(b), m.plane(), to},
				side.Axis)
		}
	}))
	return out
}

// slab is the region at span along an axis of one plane.
type slab struct {
	data  []float32
	plane geom.Plane
	span  geom.Span
}

func (s slab) line(axis geom.Axis, k, width int) []float32 {
	y, x := geom.LineStart(axis, s.span, k)
	off := s.plane.Offset(y, x)
	return s.data[off : off+width*s.plane.C]
}

// blendSlab writes a*(1-w) + b*w into dst, where w is the single-channel
// weight slab spread across every channel. All four slabs must describe the
// same number of pixels along axis.
func blendSlab(dst, a, b, w slab, axis geom.Axis) {
	lines, width := a.plane.Lines(axis, a.span)
	weights := make([]float32, width*a.plane.C)
	for k := range lines {
		wide.SpreadRow(weights, w.line(axis, k, width), a.plane.C)
		wide.BlendRow(dst.line(axis, k, width), a.line(axis, k, width), b.line(axis, k, width), weights)
	}
}
