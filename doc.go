// Package outpaint prepares images for directional outpainting and merges
// generated content back into a seamless result.
//
// # Overview
//
// Outpainting runs as two stages around an external generative model:
//
//	image ──Expand──▶ (canvas, mask) ──model fills noise──▶ canvas'
//	(image, canvas', mask) ──Merge──▶ final
//
// Expand turns an image into a same-size generation canvas whose band at one
// edge holds uniform noise, plus a mask that is 1 exactly on synthetic
// pixels. Merge takes the original, the filled canvas and the mask and
// produces the final image, either grown along the expansion axis (Outside
// mode) or blended in place (Inside mode).
//
// # Quick Start
//
//	opts, err := outpaint.NewOptions(outpaint.Top, outpaint.Outside, 0.25)
//	if err != nil {
//	    return err
//	}
//	canvas, mask, err := outpaint.Expand(img, opts, nil)
//	// ... let a model fill canvas where mask == 1 ...
//	final, err := outpaint.Merge(img, filled, opts, mask)
//
// # Buffers
//
// Image is a [Batch, Height, Width, Channels] float32 array with 3 (RGB) or
// 4 (RGBA) channels. Mask is a [Batch, Height, Width] float32 array in
// [0, 1]. Both carry a Device; operands are relocated before they are
// combined. No stage mutates its inputs: all outputs are fresh buffers.
//
// # Chaining
//
// A mask returned by Expand may be passed to the next Expand. It is shifted
// or kept exactly as the image is, so earlier noise stays marked through any
// number of calls before a single Merge. ExpandChain does this for a list of
// steps.
//
// # Geometry
//
// Top and Bottom act on rows, Left and Right on columns. The number of rows
// or columns involved is expand_size = clamp(ceil(extent*percentage), 1,
// extent-1), see Options.ExpandSize.
//
// # Concurrency
//
// Every operation is a pure, synchronous transform. An Engine built with
// WithWorkers splits each call across batch items and row bands; the
// package-level functions use a shared serial engine.
package outpaint

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
