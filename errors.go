// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package outpaint

import "errors"

// Errors returned by the engines. Wrapped errors carry detail; match them
// with errors.Is.
var (
	// ErrInvalidConfiguration is returned when an option value is outside
	// its enumeration or range. It is detected before any buffer work.
	ErrInvalidConfiguration = errors.New("outpaint: invalid configuration")

	// ErrInvalidMask is returned when a mask cannot be adapted to a target
	// shape, e.g. its batch count is neither 1 nor the target batch count.
	ErrInvalidMask = errors.New("outpaint: invalid mask")

	// ErrInvalidImage is returned when an image buffer violates a
	// precondition: nil, non-positive dimension, or data length mismatch.
	ErrInvalidImage = errors.New("outpaint: invalid image")

	// ErrShapeMismatch reports that two images differ in spatial size.
	// Merge does not fail on it; it returns the second image instead.
	ErrShapeMismatch = errors.New("outpaint: shape mismatch")
)
