// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"math"

	"cogentcore.org/colorspace/cie"
)

// labFromRGB converts an RGB color to CIELAB, via XYZ.
func labFromRGB(c Color) Color {
	return labFromXYZ(xyzFromRGB(c))
}

// labToRGB converts a CIELAB color to RGB, via XYZ.
func labToRGB(c Color) Color {
	return xyzToRGB(xyzFromLAB(c))
}

// labFromXYZ is the direct XYZ to CIELAB path, which does not pass
// through RGB and so preserves out-of-gamut values. The results are
// clamped to the nominal LAB ranges.
func labFromXYZ(c Color) Color {
	l, a, b := cie.XYZToLAB(c.Values[0], c.Values[1], c.Values[2])
	l = math.Min(100, math.Max(0, l))
	a = math.Min(127, math.Max(-128, a))
	b = math.Min(127, math.Max(-128, b))
	return Color{Space: LAB, Values: [4]float64{l, a, b}, Alpha: c.Alpha}
}

// xyzFromLAB is the direct CIELAB to XYZ path; negative intermediate
// tristimulus values from out-of-gamut LAB inputs are floored at zero
// (see [cie.LABToXYZ]).
func xyzFromLAB(c Color) Color {
	x, y, z := cie.LABToXYZ(c.Values[0], c.Values[1], c.Values[2])
	return Color{Space: XYZ, Values: [4]float64{x, y, z}, Alpha: c.Alpha}
}
