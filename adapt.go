// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package outpaint

import (
	"fmt"

	"github.com/gogpu/outpaint/internal/resample"
	"github.com/gogpu/outpaint/internal/wide"
)

// AdaptMask normalizes m to exactly [batch, height, width] on device,
// with values clamped to [0, 1].
//
// A rank-2 mask gains a batch dimension of 1. A spatial size mismatch is
// resolved by nearest-neighbor resampling, which keeps the hard edges of
// expansion bands. A batch of 1 is broadcast to the target batch. Any other
// batch count fails with ErrInvalidMask; masks are never truncated.
// NaN values are treated as 0.
//
// The result is always a fresh buffer; m is not modified.
func AdaptMask(m *Mask, batch, height, width int, device Device) (*Mask, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil mask", ErrInvalidMask)
	}
	if err := checkMaskDims(batch, height, width); err != nil {
		return nil, err
	}
	if err := checkMaskDims(m.batch, m.height, m.width); err != nil {
		return nil, err
	}
	if want := m.batch * m.height * m.width; len(m.data) != want {
		return nil, fmt.Errorf("%w: data length %d, want %d", ErrInvalidMask, len(m.data), want)
	}
	if m.batch != 1 && m.batch != batch {
		return nil, fmt.Errorf("%w: batch %d cannot broadcast to %d", ErrInvalidMask, m.batch, batch)
	}

	out := newMask(batch, height, width, device)
	for b := range batch {
		src := m.item(min(b, m.batch-1))
		resample.Nearest(out.item(b), width, height, src, m.width, m.height)
	}
	wide.ClampRow(out.data, 0, 1)

	if m.height != height || m.width != width || m.batch != batch {
		Logger().Debug("outpaint: mask adapted",
			"from", m.String(), "to", out.String())
	}
	return out, nil
}
