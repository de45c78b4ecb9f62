// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// Row sums of the sRGB to XYZ matrix. Dividing each coordinate by its
// row sum rescales the space so that sRGB white lands on exactly
// (100, 100, 100) and greys have equal X, Y, and Z. The equivalent
// whitepoint scale factors (100/rowX, 100/rowY, 100/rowZ) are
// 105.2127, 100.0, and 91.8225, deliberately not the CIE standard
// illuminant values.
const (
	rowX = 0.4123908 + 0.3575843 + 0.1804808
	rowY = 0.2126390 + 0.7151687 + 0.0721923
	rowZ = 0.0193308 + 0.1191948 + 0.9505322
)

// SRGBLinToXYZ converts linear sRGB components (0-1) to XYZ, rescaled
// so that white is exactly (100, 100, 100).
func SRGBLinToXYZ(rl, gl, bl float64) (x, y, z float64) {
	x = (0.4123908*rl + 0.3575843*gl + 0.1804808*bl) / rowX * 100
	y = (0.2126390*rl + 0.7151687*gl + 0.0721923*bl) / rowY * 100
	z = (0.0193308*rl + 0.1191948*gl + 0.9505322*bl) / rowZ * 100
	return
}

// XYZToSRGBLin converts scaled XYZ values back to linear sRGB
// components. Out-of-gamut XYZ inputs produce components outside of
// 0-1; the caller clamps where that matters.
func XYZToSRGBLin(x, y, z float64) (rl, gl, bl float64) {
	x = x / 100 * rowX
	y = y / 100 * rowY
	z = z / 100 * rowZ
	rl = 3.2409699*x - 1.5373832*y - 0.4986108*z
	gl = -0.9692436*x + 1.8759675*y + 0.0415551*z
	bl = 0.0556301*x - 0.2039770*y + 1.0569715*z
	return
}
