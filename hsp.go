// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import "math"

// Weights of the red, green, and blue channels in the HSP perceived
// brightness measure: brightness = sqrt(r^2*Pr + g^2*Pg + b^2*Pb).
const (
	hspPr = 0.2989
	hspPg = 0.587
	hspPb = 0.114
)

// hspFromRGB converts an RGB color to HSP. Saturation comes from the
// ratio of the smaller of the two non-max channels to the max channel,
// with the hue sector picked by which channel is max and the tie broken
// by comparing the other two.
func hspFromRGB(c Color) Color {
	switch {
	case c.IsBlack():
		return Color{Space: HSP, Alpha: c.Alpha}
	case c.IsWhite():
		return Color{Space: HSP, Values: [4]float64{0, 0, 100}, Alpha: c.Alpha}
	case c.IsMonochromatic():
		return Color{Space: HSP, Values: [4]float64{0, 0, grey(c) * 100}, Alpha: c.Alpha}
	}
	r, g, b := rgbNorm(c)
	p := math.Sqrt(r*r*hspPr + g*g*hspPg + b*b*hspPb)
	var h, s float64
	switch {
	case r >= g && r >= b:
		if b >= g {
			h = 6.0/6 - 1.0/6*(b-g)/(r-g)
			s = 1 - g/r
		} else {
			h = 0.0/6 + 1.0/6*(g-b)/(r-b)
			s = 1 - b/r
		}
	case g >= r && g >= b:
		if r >= b {
			h = 2.0/6 - 1.0/6*(r-b)/(g-b)
			s = 1 - b/g
		} else {
			h = 2.0/6 + 1.0/6*(b-r)/(g-r)
			s = 1 - r/g
		}
	default:
		if g >= r {
			h = 4.0/6 - 1.0/6*(g-r)/(b-r)
			s = 1 - r/b
		} else {
			h = 4.0/6 + 1.0/6*(r-g)/(b-g)
			s = 1 - g/b
		}
	}
	h = math.Mod(h, 1) * 360
	return Color{Space: HSP, Values: [4]float64{h, s * 100, p * 100}, Alpha: c.Alpha}
}

// hspToRGB converts an HSP color to RGB. It determines the hue sector
// and direction, rescales the hue within the sector, and then solves
// for two channels analytically, with the third from the linear
// relation, branching on whether the color is fully saturated.
// All outputs are clamped to 0-1.
func hspToRGB(c Color) Color {
	h := math.Mod(c.Values[0], 360) / 360
	s := c.Values[1] / 100
	p := c.Values[2] / 100
	var r, g, b float64
	if s < 1 {
		minOverMax := 1 - s
		invMM := 1 / minOverMax
		switch {
		case h < 1.0/6: // r > g > b
			h = 6 * h
			part := 1 + h*(invMM-1)
			b = p / math.Sqrt(hspPr*invMM*invMM+hspPg*part*part+hspPb)
			r = b * invMM
			g = b + h*(r-b)
		case h < 2.0/6: // g > r > b
			h = 6 * (-h + 2.0/6)
			part := 1 + h*(invMM-1)
			b = p / math.Sqrt(hspPg*invMM*invMM+hspPr*part*part+hspPb)
			g = b * invMM
			r = b + h*(g-b)
		case h < 3.0/6: // g > b > r
			h = 6 * (h - 2.0/6)
			part := 1 + h*(invMM-1)
			r = p / math.Sqrt(hspPg*invMM*invMM+hspPb*part*part+hspPr)
			g = r * invMM
			b = r + h*(g-r)
		case h < 4.0/6: // b > g > r
			h = 6 * (-h + 4.0/6)
			part := 1 + h*(invMM-1)
			r = p / math.Sqrt(hspPb*invMM*invMM+hspPg*part*part+hspPr)
			b = r * invMM
			g = r + h*(b-r)
		case h < 5.0/6: // b > r > g
			h = 6 * (h - 4.0/6)
			part := 1 + h*(invMM-1)
			g = p / math.Sqrt(hspPb*invMM*invMM+hspPr*part*part+hspPg)
			b = g * invMM
			r = g + h*(b-g)
		default: // r > b > g
			h = 6 * (-h + 6.0/6)
			part := 1 + h*(invMM-1)
			g = p / math.Sqrt(hspPr*invMM*invMM+hspPb*part*part+hspPg)
			r = g * invMM
			b = g + h*(r-g)
		}
	} else {
		switch {
		case h < 1.0/6:
			h = 6 * h
			r = math.Sqrt(p * p / (hspPr + hspPg*h*h))
			g = r * h
		case h < 2.0/6:
			h = 6 * (-h + 2.0/6)
			g = math.Sqrt(p * p / (hspPg + hspPr*h*h))
			r = g * h
		case h < 3.0/6:
			h = 6 * (h - 2.0/6)
			g = math.Sqrt(p * p / (hspPg + hspPb*h*h))
			b = g * h
		case h < 4.0/6:
			h = 6 * (-h + 4.0/6)
			b = math.Sqrt(p * p / (hspPb + hspPg*h*h))
			g = b * h
		case h < 5.0/6:
			h = 6 * (h - 4.0/6)
			b = math.Sqrt(p * p / (hspPb + hspPr*h*h))
			r = b * h
		default:
			h = 6 * (-h + 6.0/6)
			r = math.Sqrt(p * p / (hspPr + hspPb*h*h))
			b = r * h
		}
	}
	return rgbFromNorm(r, g, b, c.Alpha)
}
