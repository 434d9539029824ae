// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package outpaint

// Device names the compute location a buffer lives on.
//
// Buffers on different devices are never combined directly: the mask adapter
// and Merge relocate operands with To before any elementwise arithmetic.
type Device string

// CPU is the default device for new buffers.
const CPU Device = "cpu"

func (d Device) orDefault() Device {
	if d == "" {
		return CPU
	}
	return d
}
