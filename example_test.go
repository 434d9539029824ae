// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package outpaint_test

import (
	"fmt"

	"github.com/gogpu/outpaint"
)

// ExampleExpand prepares a canvas for generating two new columns on the
// right of a 4x8 image.
func ExampleExpand() {
	img, _ := outpaint.NewImage(1, 4, 8, 3)
	opts := outpaint.MustOptions(outpaint.Right, outpaint.Outside, 0.25)

	canvas, mask, err := outpaint.Expand(img, opts, nil)
	if err != nil {
		fmt.Println("expand failed:", err)
		return
	}

	fmt.Println(canvas, mask)
	fmt.Println(mask.Data()[:mask.Width()])
	// Output:
	// Image[1x4x8x3]@cpu Mask[1x4x8]@cpu
	// [0 0 0 0 0 0 1 1]
}

// ExampleMerge shows the full round trip: Expand, let a model fill the
// masked band, then Merge the result back onto the original.
func ExampleMerge() {
	img, _ := outpaint.NewImage(1, 4, 4, 3)
	opts := outpaint.MustOptions(outpaint.Top, outpaint.Outside, 0.25)

	canvas, mask, _ := outpaint.Expand(img, opts, nil)

	// Stand-in for the generative model: paint the masked band white.
	for y := range canvas.Height() {
		for x := range canvas.Width() {
			if mask.At(0, y, x) == 1 {
				for c := range canvas.Channels() {
					canvas.Set(0, y, x, c, 1)
				}
			}
		}
	}

	final, err := outpaint.Merge(img, canvas, opts, mask)
	if err != nil {
		fmt.Println("merge failed:", err)
		return
	}
	fmt.Println(final)
	for y := range final.Height() {
		fmt.Println(final.At(0, y, 0, 0))
	}
	// Output:
	// Image[1x5x4x3]@cpu
	// 1
	// 0
	// 0
	// 0
	// 0
}

// ExampleOptions_ExpandSize shows how the percentage maps to whole rows.
func ExampleOptions_ExpandSize() {
	opts := outpaint.MustOptions(outpaint.Top, outpaint.Outside, 0.3)
	for _, h := range []int{1, 2, 10, 11, 512} {
		fmt.Println(h, opts.ExpandSize(h))
	}
	// Output:
	// 1 1
	// 2 1
	// 10 3
	// 11 4
	// 512 154
}

// ExampleDecodeOptionsTOML loads a host preset.
func ExampleDecodeOptionsTOML() {
	opts, err := outpaint.DecodeOptionsTOML([]byte(`
direction = "Left"
mode = "inside"
percentage = 0.4
`))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(opts)
	// Output: left/inside/0.4
}

// ExampleEngine_ExpandChain extends an image upward and then to the left,
// keeping both bands marked in the final mask.
func ExampleEngine_ExpandChain() {
	e := outpaint.NewEngine(outpaint.WithWorkers(2), outpaint.WithSeed(7))
	defer e.Close()

	img, _ := outpaint.NewImage(1, 5, 5, 3)
	_, mask, err := e.ExpandChain(img, nil,
		outpaint.MustOptions(outpaint.Top, outpaint.Outside, 0.2),
		outpaint.MustOptions(outpaint.Left, outpaint.Outside, 0.2),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	for y := range mask.Height() {
		for x := range mask.Width() {
			fmt.Print(mask.At(0, y, x))
		}
		fmt.Println()
	}
	// Output:
	// 11111
	// 10000
	// 10000
	// 10000
	// 10000
}
