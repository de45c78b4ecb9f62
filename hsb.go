// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import "math"

// hsbFromRGB converts an RGB color to HSB (HSV).
func hsbFromRGB(c Color) Color {
	switch {
	case c.IsBlack():
		return Color{Space: HSB, Alpha: c.Alpha}
	case c.IsWhite():
		return Color{Space: HSB, Values: [4]float64{0, 0, 100}, Alpha: c.Alpha}
	case c.IsMonochromatic():
		return Color{Space: HSB, Values: [4]float64{0, 0, grey(c) * 100}, Alpha: c.Alpha}
	}
	r, g, b := rgbNorm(c)
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	s := (max - min) / max
	h := rgbHue(r, g, b, max, min) * 360
	return Color{Space: HSB, Values: [4]float64{h, s * 100, max * 100}, Alpha: c.Alpha}
}

// hsbToRGB converts an HSB (HSV) color to RGB via the six-sector
// hue decomposition.
func hsbToRGB(c Color) Color {
	h := math.Mod(c.Values[0], 360) / 360
	s := c.Values[1] / 100
	v := c.Values[2] / 100
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)
	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return rgbFromNorm(r, g, b, c.Alpha)
}
