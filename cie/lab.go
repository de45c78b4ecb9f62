// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

const (
	// labEpsilon is the linear / nonlinear threshold of the LAB
	// compression function, (6/29)^3.
	labEpsilon = 0.008856

	// labKappa is the slope of the linear segment, (29/3)^3.
	labKappa = 903.3
)

// LABCompress converts a 0-1 relative tristimulus value into the
// nonlinear LAB f() space.
func LABCompress(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}

// LABUncompress inverts [LABCompress].
func LABUncompress(ft float64) float64 {
	t := ft * ft * ft
	if t > labEpsilon {
		return t
	}
	return (ft - 16.0/116.0) / 7.787
}

// XYZToLAB converts scaled XYZ values (white = (100, 100, 100),
// per [SRGBLinToXYZ]) to CIELAB L*, a*, b*.
func XYZToLAB(x, y, z float64) (l, a, b float64) {
	fx := LABCompress(x / 100)
	fy := LABCompress(y / 100)
	fz := LABCompress(z / 100)
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LABToXYZ converts CIELAB L*, a*, b* to scaled XYZ values.
// LAB inputs outside of the sRGB gamut (e.g. a=127, b=-128) can drive
// the intermediate tristimulus values negative; those are floored at
// zero, a documented lossy boundary rather than an error.
func LABToXYZ(l, a, b float64) (x, y, z float64) {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200
	xr := LABUncompress(fx)
	var yr float64
	if l > labKappa*labEpsilon {
		yr = fy * fy * fy
	} else {
		yr = l / labKappa
	}
	zr := LABUncompress(fz)
	x = math.Max(0, xr) * 100
	y = math.Max(0, yr) * 100
	z = math.Max(0, zr) * 100
	return
}

// YToL converts a 0-100 scaled Y tristimulus value to L*,
// which is linear in human perception of lightness.
func YToL(y float64) float64 {
	return 116*LABCompress(y/100) - 16
}

// LToY converts an L* value to the 0-100 scaled Y tristimulus value.
func LToY(l float64) float64 {
	return 100 * LABUncompress((l+16)/116)
}
