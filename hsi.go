// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import "math"

// hsiFromRGB converts an RGB color to HSI. Unlike HSL, HSB, and HSP,
// the hue here comes from the acos of the symmetric channel difference
// formula, mirrored around 2 pi when blue exceeds green.
func hsiFromRGB(c Color) Color {
	switch {
	case c.IsBlack():
		return Color{Space: HSI, Alpha: c.Alpha}
	case c.IsWhite():
		return Color{Space: HSI, Values: [4]float64{0, 0, 100}, Alpha: c.Alpha}
	case c.IsMonochromatic():
		return Color{Space: HSI, Values: [4]float64{0, 0, grey(c) * 100}, Alpha: c.Alpha}
	}
	r, g, b := rgbNorm(c)
	sum := r + g + b
	in := sum / 3
	rf := r / sum
	gf := g / sum
	bf := b / sum
	s := 1 - 3*math.Min(rf, math.Min(gf, bf))
	num := 0.5 * ((rf - gf) + (rf - bf))
	den := math.Sqrt((rf-gf)*(rf-gf) + (rf-bf)*(gf-bf))
	h := math.Acos(num / den)
	if bf > gf {
		h = 2*math.Pi - h
	}
	h *= 180 / math.Pi
	return Color{Space: HSI, Values: [4]float64{h, s * 100, in * 100}, Alpha: c.Alpha}
}

// hsiToRGB converts an HSI color to RGB with the piecewise inverse
// keyed on the 120 degree hue sector. Each sector computes two channels
// directly and the third from the intensity relation; the outputs can
// overshoot 1 by up to ~2e-16 and are clamped.
func hsiToRGB(c Color) Color {
	h := math.Mod(c.Values[0], 360)
	s := c.Values[1] / 100
	in := c.Values[2] / 100
	var r, g, b float64
	switch {
	case h < 120:
		hr := h * math.Pi / 180
		b = in * (1 - s)
		r = in * (1 + s*math.Cos(hr)/math.Cos(math.Pi/3-hr))
		g = 3*in - (r + b)
	case h < 240:
		hr := (h - 120) * math.Pi / 180
		r = in * (1 - s)
		g = in * (1 + s*math.Cos(hr)/math.Cos(math.Pi/3-hr))
		b = 3*in - (r + g)
	default:
		hr := (h - 240) * math.Pi / 180
		g = in * (1 - s)
		b = in * (1 + s*math.Cos(hr)/math.Cos(math.Pi/3-hr))
		r = 3*in - (g + b)
	}
	return rgbFromNorm(r, g, b, c.Alpha)
}
