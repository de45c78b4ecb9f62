// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import "fmt"

// ResampleOptions configures [Resample].
type ResampleOptions struct {

	// Stops are the 0-1 gradient positions of the input colors, one per
	// color, non-decreasing, conventionally starting at 0 and ending at
	// 1. Sample positions outside the covered range clamp to the nearest
	// control point. If empty, the colors are spaced evenly.
	Stops []float64

	// Space forces a single working color space for every segment;
	// if it is [NoSpace], each segment uses its starting color's space
	// (or its ending color's if FromEnd is set).
	Space Space

	// FromEnd selects each segment's working space from the segment's
	// ending color rather than its starting one.
	FromEnd bool

	// Invert reverses the direction of traversal, equivalent to
	// reversing the control points before resampling. This is
	// independent of FromEnd.
	Invert bool
}

// Resample treats the given colors as control points along an abstract
// 0-1 gradient and returns n colors sampled at evenly spaced positions
// across it. A target position that lands exactly on a control point's
// stop yields that color unchanged; positions between two control
// points interpolate per [Color.LerpTo] rules. A nil opts uses the
// defaults. It panics on an empty palette, n < 1, or invalid stops.
func Resample(palette []Color, n int, opts *ResampleOptions) []Color {
	if len(palette) == 0 {
		panic("colorspace.Resample: palette must not be empty")
	}
	if n < 1 {
		panic(fmt.Sprintf("colorspace.Resample: n must be at least 1, got %d", n))
	}
	var o ResampleOptions
	if opts != nil {
		o = *opts
	}
	colors := make([]Color, len(palette))
	copy(colors, palette)
	stops := resampleStops(o.Stops, len(colors))
	if o.Invert {
		for i, j := 0, len(colors)-1; i < j; i, j = i+1, j-1 {
			colors[i], colors[j] = colors[j], colors[i]
			stops[i], stops[j] = 1-stops[j], 1-stops[i]
		}
		if len(colors)%2 == 1 {
			mid := len(colors) / 2
			stops[mid] = 1 - stops[mid]
		}
	}
	out := make([]Color, n)
	for k := range out {
		var pos float64
		if n > 1 {
			pos = float64(k) / float64(n-1)
		}
		out[k] = sampleAt(colors, stops, pos, &o)
	}
	return out
}

// sampleAt returns the gradient color at the given 0-1 position.
// Positions outside the range the stops cover clamp to the nearest
// control point.
func sampleAt(colors []Color, stops []float64, pos float64, o *ResampleOptions) Color {
	if pos <= stops[0] {
		return colors[0]
	}
	lo := 0
	for i, s := range stops {
		if s <= pos {
			lo = i
		}
	}
	if stops[lo] == pos || lo == len(colors)-1 {
		return colors[lo]
	}
	hi := lo + 1
	step := (pos - stops[lo]) / (stops[hi] - stops[lo])
	space := o.Space
	if space == NoSpace {
		if o.FromEnd {
			space = colors[hi].Space
		} else {
			space = colors[lo].Space
		}
	}
	return lerpColors(colors[lo].Convert(space), colors[hi].Convert(space), step)
}

// resampleStops validates caller-supplied stops, or distributes the
// control points evenly over 0-1 when none are given.
func resampleStops(stops []float64, n int) []float64 {
	if len(stops) == 0 {
		out := make([]float64, n)
		for i := range out {
			if n > 1 {
				out[i] = float64(i) / float64(n-1)
			}
		}
		return out
	}
	if len(stops) != n {
		panic(fmt.Sprintf("colorspace.Resample: need one stop per color: %d stops for %d colors", len(stops), n))
	}
	out := make([]float64, n)
	for i, s := range stops {
		if s < 0 || s > 1 {
			panic(fmt.Sprintf("colorspace.Resample: stop out of range [0, 1]: %g", s))
		}
		if i > 0 && s < stops[i-1] {
			panic(fmt.Sprintf("colorspace.Resample: stops must be non-decreasing: %g after %g", s, stops[i-1]))
		}
		out[i] = s
	}
	return out
}
