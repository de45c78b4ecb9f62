// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"fmt"
	"math"

	"cogentcore.org/colorspace/cie"
)

// oklabFromRGB converts an RGB color to Oklab: linear sRGB through the
// fixed M1 matrix to LMS, componentwise cube root, then M2 to L, a, b.
func oklabFromRGB(c Color) Color {
	r, g, b := rgbNorm(c)
	rl, gl, bl := cie.SRGBToLinear(r, g, b)

	l := 0.4122214708*rl + 0.5363325363*gl + 0.0514459929*bl
	m := 0.2119034982*rl + 0.6806995451*gl + 0.1073969566*bl
	s := 0.0883024619*rl + 0.2817188376*gl + 0.6299787005*bl

	lp := math.Cbrt(l)
	mp := math.Cbrt(m)
	sp := math.Cbrt(s)

	ll := 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp
	aa := 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp
	bb := 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp

	return Color{Space: Oklab, Values: [4]float64{ll, aa, bb}, Alpha: c.Alpha}
}

// oklabToRGB converts an Oklab color to RGB with the inverse matrices
// and a componentwise cube, clamping the linear channels to 0-1 before
// gamma encoding.
func oklabToRGB(c Color) Color {
	ll, aa, bb := c.Values[0], c.Values[1], c.Values[2]

	lp := ll + 0.3963377774*aa + 0.2158037573*bb
	mp := ll - 0.1055613458*aa - 0.0638541728*bb
	sp := ll - 0.0894841775*aa - 1.2914855480*bb

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	rl := 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	gl := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	bl := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	r, g, b := cie.SRGBFromLinear(clamp01(rl), clamp01(gl), clamp01(bl))
	return rgbFromNorm(r, g, b, c.Alpha)
}

// Chroma returns the derived Oklab chroma value, the position of the
// color's lightness along the fixed power curve
// ((lightness+0.028)/1.028)^6.9. It panics if the color is not Oklab.
func (c Color) Chroma() float64 {
	if c.Space != Oklab {
		panic("colorspace.Color.Chroma: only defined for Oklab colors, not " + c.Space.String())
	}
	return math.Pow((c.Values[0]+0.028)/1.028, 6.9)
}

// WithChroma returns the Oklab color with its lightness solved so that
// [Color.Chroma] yields the given 0-1 chroma value, holding the a and b
// channels fixed. It panics if the color is not Oklab or the chroma is
// out of range.
func (c Color) WithChroma(chroma float64) Color {
	if c.Space != Oklab {
		panic("colorspace.Color.WithChroma: only defined for Oklab colors, not " + c.Space.String())
	}
	if chroma < 0 || chroma > 1 {
		panic(fmt.Sprintf("colorspace.Color.WithChroma: chroma value out of range [0, 1]: %g", chroma))
	}
	c.Values[0] = math.Min(1, math.Max(0, 1.028*math.Pow(chroma, 1.0/6.9)-0.028))
	return c
}
