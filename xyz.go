// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import "cogentcore.org/colorspace/cie"

// xyzFromRGB converts an RGB color to the scaled XYZ space
// (white = (100, 100, 100)).
func xyzFromRGB(c Color) Color {
	r, g, b := rgbNorm(c)
	rl, gl, bl := cie.SRGBToLinear(r, g, b)
	x, y, z := cie.SRGBLinToXYZ(rl, gl, bl)
	return Color{Space: XYZ, Values: [4]float64{x, y, z}, Alpha: c.Alpha}
}

// xyzToRGB converts a scaled XYZ color to RGB. The linear channels are
// clamped to 0-1 before gamma encoding, so out-of-gamut XYZ values
// (from out-of-gamut LAB round trips) collapse onto the gamut boundary.
func xyzToRGB(c Color) Color {
	rl, gl, bl := cie.XYZToSRGBLin(c.Values[0], c.Values[1], c.Values[2])
	r, g, b := cie.SRGBFromLinear(clamp01(rl), clamp01(gl), clamp01(bl))
	return rgbFromNorm(r, g, b, c.Alpha)
}
