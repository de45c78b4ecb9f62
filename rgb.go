// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import "math"

// rgbNorm returns the RGB channels normalized to 0-1,
// from the precise (unrounded) stored values.
func rgbNorm(c Color) (r, g, b float64) {
	return c.Values[0] / 255, c.Values[1] / 255, c.Values[2] / 255
}

// rgbFromNorm returns an RGB color from 0-1 normalized channels,
// clamping the tiny floating point overshoot (up to ~2e-16) that some
// of the inverse conversion formulas produce. The stored 0-255 values
// stay precise floats.
func rgbFromNorm(r, g, b, alpha float64) Color {
	return Color{
		Space:  RGB,
		Values: [4]float64{clamp01(r) * 255, clamp01(g) * 255, clamp01(b) * 255},
		Alpha:  alpha,
	}
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

// rgbHue returns the 0-1 hue fraction shared by the HSL, HSB, and HSP
// conversions. HSI computes its hue independently via the acos formula.
func rgbHue(r, g, b, max, min float64) float64 {
	if max == min {
		return 0
	}
	diff := max - min
	var hue float64
	switch max {
	case r:
		hue = (g - b) / diff
		if g < b {
			hue += 6
		}
	case g:
		hue = (b-r)/diff + 2
	default:
		hue = (r-g)/diff + 4
	}
	return hue / 6
}

// grey returns the color's grey level as a 0-1 fraction, for the
// monochromatic short-circuits; only valid for RGB colors.
func grey(c Color) float64 {
	return c.Values[0] / 255
}
