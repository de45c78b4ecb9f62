// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the scalar colorimetry primitives underlying the
// colorspace conversions: sRGB gamma coding, the sRGB / XYZ matrix
// transforms, and the CIELAB compression functions.
package cie

import "math"

// SRGBToLinearComp converts an sRGB gamma-encoded color component
// (0-1) to its linear light intensity.
func SRGBToLinearComp(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts a linear light intensity component
// (0-1) to its sRGB gamma-encoded value.
func SRGBFromLinearComp(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

// SRGBToLinear converts 0-1 gamma-encoded sRGB values
// to linear light intensities.
func SRGBToLinear(r, g, b float64) (rl, gl, bl float64) {
	rl = SRGBToLinearComp(r)
	gl = SRGBToLinearComp(g)
	bl = SRGBToLinearComp(b)
	return
}

// SRGBFromLinear converts 0-1 linear light intensities
// to gamma-encoded sRGB values.
func SRGBFromLinear(rl, gl, bl float64) (r, g, b float64) {
	r = SRGBFromLinearComp(rl)
	g = SRGBFromLinearComp(gl)
	b = SRGBFromLinearComp(bl)
	return
}
