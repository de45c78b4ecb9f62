// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import "math"

// cmykFromRGB converts an RGB color to CMYK.
func cmykFromRGB(c Color) Color {
	r, g, b := rgbNorm(c)
	k := clamp01(math.Min(1-r, math.Min(1-g, 1-b)))
	var cy, mg, ye float64
	if k < 1 {
		cy = clamp01(((1 - r) - k) / (1 - k))
		mg = clamp01(((1 - g) - k) / (1 - k))
		ye = clamp01(((1 - b) - k) / (1 - k))
	}
	return Color{
		Space:  CMYK,
		Values: [4]float64{cy * 100, mg * 100, ye * 100, k * 100},
		Alpha:  c.Alpha,
	}
}

// cmykToRGB converts a CMYK color to RGB.
func cmykToRGB(c Color) Color {
	cy := c.Values[0] / 100
	mg := c.Values[1] / 100
	ye := c.Values[2] / 100
	k := c.Values[3] / 100
	r := 1 - clamp01(cy*(1-k)+k)
	g := 1 - clamp01(mg*(1-k)+k)
	b := 1 - clamp01(ye*(1-k)+k)
	return rgbFromNorm(r, g, b, c.Alpha)
}
