// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package outpaint

import (
	"fmt"
	"math/rand/v2"

	"github.com/gogpu/outpaint/internal/geom"
)

// Expand prepares a generation canvas for the edge named by opts.
//
// The canvas always has the same shape as image. In Outside mode the image
// content is shifted away from the edge by expand_size rows or columns; the
// vacated band at the edge is filled with uniform noise in [0, 1) and the
// content pushed past the far edge is dropped. The grown image is only
// produced later by Merge. In Inside mode the canvas is a copy of image with
// the band at the edge overwritten by noise.
//
// The returned mask is 1 on every noise pixel. If mask is non-nil it is
// adapted to image and threaded through: it is shifted with the content in
// Outside mode and kept under the content in Inside mode, so regions marked
// synthetic by an earlier Expand stay marked. Otherwise the mask is 0 away
// from the band.
//
// image and mask are not modified.
func (e *Engine) Expand(image *Image, opts Options, mask *Mask) (*Image, *Mask, error) {
	if err := opts.validate(); err != nil {
		return nil, nil, err
	}
	if err := image.validate(); err != nil {
		return nil, nil, err
	}

	batch, height, width, channels := image.Shape()

	var prior *Mask
	if mask != nil {
		var err error
		if prior, err = AdaptMask(mask, batch, height, width, image.device); err != nil {
			return nil, nil, fmt.Errorf("outpaint: expand: %w", err)
		}
	}

	side := opts.direction.side()
	p := image.plane()
	mp := geom.Plane{H: height, W: width, C: 1}
	extent := side.Extent(p)
	n := opts.ExpandSize(extent)
	band := side.Band(extent, n)

	Logger().Debug("outpaint: expand",
		"image", image.String(),
		"options", opts.String(),
		"expand_size", n,
		"prior_mask", mask != nil)

	canvas := newImage(batch, height, width, channels, image.device)
	out := newMask(batch, height, width, image.device)
	seed := e.callSeed()

	e.run(perItem(batch, func(b int) {
		rng := rand.New(rand.NewPCG(seed, uint64(b)))
		dst, src := canvas.item(b), image.item(b)
		dstMask := out.item(b)

		switch opts.mode {
		case Outside:
			from, to := side.Shift(extent, n)
			geom.Copy(dst, p, to, src, p, from, side.Axis)
			if prior != nil {
				geom.Copy(dstMask, mp, to, prior.item(b), mp, from, side.Axis)
			}
		case Inside:
			copy(dst, src)
			if prior != nil {
				copy(dstMask, prior.item(b))
			}
		}

		fillNoise(dst, p, band, side.Axis, rng)
		geom.Fill(dstMask, mp, band, side.Axis, 1)
	}))

	return canvas, out, nil
}

// ExpandChain threads image and mask through successive Expand calls, one
// per step, and returns the last canvas and mask. The mask produced by each
// step is the prior mask of the next, so every noise band from every step
// stays marked. With no steps it returns a copy of image and the mask
// adapted to it (all zeros when mask is nil).
func (e *Engine) ExpandChain(image *Image, mask *Mask, steps ...Options) (*Image, *Mask, error) {
	if err := image.validate(); err != nil {
		return nil, nil, err
	}
	for i, step := range steps {
		if err := step.validate(); err != nil {
			return nil, nil, fmt.Errorf("outpaint: chain step %d: %w", i, err)
		}
	}

	if len(steps) == 0 {
		if mask == nil {
			return image.Clone(), newMask(image.batch, image.height, image.width, image.device), nil
		}
		m, err := AdaptMask(mask, image.batch, image.height, image.width, image.device)
		if err != nil {
			return nil, nil, err
		}
		return image.Clone(), m, nil
	}

	canvas, m := image, mask
	for i, step := range steps {
		var err error
		canvas, m, err = e.Expand(canvas, step, m)
		if err != nil {
			return nil, nil, fmt.Errorf("outpaint: chain step %d: %w", i, err)
		}
	}
	return canvas, m, nil
}

// fillNoise writes independent uniform [0, 1) samples over the slab at span.
func fillNoise(dst []float32, p geom.Plane, span geom.Span, axis geom.Axis, rng *rand.Rand) {
	p.Segments(axis, span, func(off, n int) {
		seg := dst[off : off+n]
		for i := range seg {
			seg[i] = rng.Float32()
		}
	})
}
