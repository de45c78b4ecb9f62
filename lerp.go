// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// LerpPrecision is the number of decimal digits that interpolated
// channel values are rounded to, suppressing floating point noise.
const LerpPrecision = 6

// LerpOptions configures [Color.LerpTo] and [Resample].
type LerpOptions struct {

	// Space is the working color space for the interpolation; if it is
	// [NoSpace], the starting color's space is used (or the ending
	// color's if AnchorEnd is set).
	Space Space

	// ExcludeEndpoints drops the start and end colors from the result,
	// returning only the intermediate steps.
	ExcludeEndpoints bool

	// AnchorEnd selects the default working space from the ending
	// color rather than the starting one.
	AnchorEnd bool
}

// LerpTo returns steps evenly spaced colors between c and end in the
// working space, converting both endpoints into it first. Every
// channel, including alpha, is interpolated linearly and rounded to
// [LerpPrecision] decimals. Hue channels interpolate as plain numbers
// with no shortest-arc adjustment: 350 to 10 walks through 180. Unless
// opts.ExcludeEndpoints is set, the converted endpoints are included,
// for steps+2 colors in total. A nil opts uses the defaults. It panics
// if steps < 1.
func (c Color) LerpTo(end Color, steps int, opts *LerpOptions) []Color {
	if steps < 1 {
		panic(fmt.Sprintf("colorspace.Color.LerpTo: steps must be at least 1, got %d", steps))
	}
	var o LerpOptions
	if opts != nil {
		o = *opts
	}
	space := o.Space
	if space == NoSpace {
		if o.AnchorEnd {
			space = end.Space
		} else {
			space = c.Space
		}
	}
	a := c.Convert(space)
	b := end.Convert(space)
	out := make([]Color, 0, steps+2)
	if !o.ExcludeEndpoints {
		out = append(out, a)
	}
	for i := 1; i <= steps; i++ {
		step := float64(i) / float64(steps+1)
		out = append(out, lerpColors(a, b, step))
	}
	if !o.ExcludeEndpoints {
		out = append(out, b)
	}
	return out
}

// lerpColors returns the color at the given 0-1 position between two
// colors already in the same space, rounding each channel and alpha
// to [LerpPrecision] decimals.
func lerpColors(a, b Color, step float64) Color {
	av := a.Channels(true)
	bv := b.Channels(true)
	diff := make([]float64, len(av))
	floats.SubTo(diff, bv, av)
	vals := make([]float64, len(av))
	floats.AddScaledTo(vals, av, step, diff)
	for i := range vals {
		vals[i] = scalar.Round(vals[i], LerpPrecision)
	}
	return FromChannels(a.Space, vals)
}
