// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import "math"

// hslFromRGB converts an RGB color to HSL. The achromatic cases are
// short-circuited to exact canonical values: the general hue and
// saturation formulas are 0/0 there.
func hslFromRGB(c Color) Color {
	switch {
	case c.IsBlack():
		return Color{Space: HSL, Alpha: c.Alpha}
	case c.IsWhite():
		return Color{Space: HSL, Values: [4]float64{0, 0, 100}, Alpha: c.Alpha}
	case c.IsMonochromatic():
		return Color{Space: HSL, Values: [4]float64{0, 0, grey(c) * 100}, Alpha: c.Alpha}
	}
	r, g, b := rgbNorm(c)
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	diff := max - min
	l := (max + min) / 2
	var s float64
	if l > 0.5 {
		s = diff / (2 - max - min)
	} else {
		s = diff / (max + min)
	}
	h := rgbHue(r, g, b, max, min) * 360
	return Color{Space: HSL, Values: [4]float64{h, s * 100, l * 100}, Alpha: c.Alpha}
}

// hslToRGB converts an HSL color to RGB via the classic piecewise
// hue-to-channel function evaluated at offsets of a third.
func hslToRGB(c Color) Color {
	h := math.Mod(c.Values[0], 360) / 360
	s := c.Values[1] / 100
	l := c.Values[2] / 100
	if s == 0 {
		return rgbFromNorm(l, l, l, c.Alpha)
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	r := hueToRGB(p, q, h+1.0/3)
	g := hueToRGB(p, q, h)
	b := hueToRGB(p, q, h-1.0/3)
	return rgbFromNorm(r, g, b, c.Alpha)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}
