// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

var allSpaces = []Space{RGB, CMYK, HSI, HSL, HSP, HSB, LAB, Oklab, XYZ}

// representative RGB set: the achromatic extremes, the primaries and
// secondaries, and a color in each 60 degree hue sextant.
var rgbTestColors = []color.RGBA{
	{0, 0, 0, 255},       // black
	{255, 255, 255, 255}, // white
	{128, 128, 128, 255}, // 50% grey
	{255, 0, 0, 255},
	{0, 255, 0, 255},
	{0, 0, 255, 255},
	{255, 255, 0, 255},
	{0, 255, 255, 255},
	{255, 0, 255, 255},
	{255, 128, 0, 255},
	{128, 255, 0, 255},
	{0, 255, 128, 255},
	{0, 128, 255, 255},
	{128, 0, 255, 255},
	{255, 0, 128, 255},
}

func TestRoundTrips(t *testing.T) {
	for _, space := range allSpaces {
		for _, want := range rgbTestColors {
			c := NewRGB(float64(want.R), float64(want.G), float64(want.B))
			back := c.Convert(space).Convert(RGB)
			assert.Equal(t, want, back.AsRGBA(), "rgb(%d, %d, %d) through %s", want.R, want.G, want.B, space)
		}
	}
}

func TestConvertSameSpace(t *testing.T) {
	c := NewHSL(120, 50, 50)
	assert.Equal(t, c, c.Convert(HSL))
}

func TestAlphaPreserved(t *testing.T) {
	c := NewRGB(40, 90, 200, 0.6)
	for _, space := range allSpaces {
		assert.Equal(t, 0.6, c.Convert(space).Alpha, "alpha through %s", space)
		assert.Equal(t, 0.6, c.Convert(space).Convert(RGB).Alpha, "alpha back from %s", space)
	}
}

func TestCMYK(t *testing.T) {
	cyan := NewRGB(0, 255, 255).Convert(CMYK)
	assert.True(t, cyan.Equal(NewCMYK(100, 0, 0, 0)), "got %v", cyan)

	black := NewRGB(0, 0, 0).Convert(CMYK)
	assert.True(t, black.Equal(NewCMYK(0, 0, 0, 100)), "got %v", black)

	white := NewRGB(255, 255, 255).Convert(CMYK)
	assert.True(t, white.Equal(NewCMYK(0, 0, 0, 0)), "got %v", white)
}

func TestHSL(t *testing.T) {
	red := NewRGB(255, 0, 0).Convert(HSL)
	assert.True(t, red.Equal(NewHSL(0, 100, 50)), "got %v", red)

	green := NewRGB(0, 255, 0).Convert(HSL)
	assert.True(t, green.Equal(NewHSL(120, 100, 50)), "got %v", green)

	blue := NewRGB(0, 0, 255).Convert(HSL)
	assert.True(t, blue.Equal(NewHSL(240, 100, 50)), "got %v", blue)
}

func TestHSB(t *testing.T) {
	red := NewRGB(255, 0, 0).Convert(HSB)
	assert.True(t, red.Equal(NewHSB(0, 100, 100)), "got %v", red)

	grey := NewRGB(128, 128, 128).Convert(HSB)
	assert.InDelta(t, 0, grey.Values[1], 1e-9)
	assert.InDelta(t, 128.0/255*100, grey.Values[2], 1e-9)
}

func TestHSI(t *testing.T) {
	red := NewRGB(255, 0, 0).Convert(HSI)
	assert.InDelta(t, 0, red.Values[0], 1e-9)
	assert.InDelta(t, 100, red.Values[1], 1e-9)
	assert.InDelta(t, 100.0/3, red.Values[2], 1e-9)

	// 120 degree sector boundaries
	green := NewRGB(0, 255, 0).Convert(HSI)
	assert.InDelta(t, 120, green.Values[0], 1e-6)
	blue := NewRGB(0, 0, 255).Convert(HSI)
	assert.InDelta(t, 240, blue.Values[0], 1e-6)
}

func TestHSP(t *testing.T) {
	red := NewRGB(255, 0, 0).Convert(HSP)
	assert.InDelta(t, 0, red.Values[0], 1e-9)
	assert.InDelta(t, 100, red.Values[1], 1e-9)
	// brightness of pure red is sqrt(Pr)
	assert.InDelta(t, 54.67175, red.Values[2], 1e-3)

	// fully saturated and partially saturated inverse branches
	for _, c := range []Color{NewHSP(30, 100, 50), NewHSP(200, 40, 70), NewHSP(340, 75, 25)} {
		back := c.Convert(RGB).Convert(HSP)
		assert.InDelta(t, c.Values[0], back.Values[0], 1e-6)
		assert.InDelta(t, c.Values[1], back.Values[1], 1e-6)
		assert.InDelta(t, c.Values[2], back.Values[2], 1e-6)
	}
}

func TestLAB(t *testing.T) {
	white := NewRGB(255, 255, 255).Convert(LAB)
	assert.InDelta(t, 100, white.Values[0], 1e-3)
	assert.InDelta(t, 0, white.Values[1], 1e-3)
	assert.InDelta(t, 0, white.Values[2], 1e-3)

	red := NewRGB(255, 0, 0).Convert(LAB)
	assert.InDelta(t, 53.24, red.Values[0], 0.1)
	assert.InDelta(t, 80.09, red.Values[1], 0.1)
	assert.InDelta(t, 67.20, red.Values[2], 0.1)
}

func TestXYZWhitepoint(t *testing.T) {
	white := NewRGB(255, 255, 255).Convert(XYZ)
	assert.InDelta(t, 100, white.Values[0], 1e-9)
	assert.InDelta(t, 100, white.Values[1], 1e-9)
	assert.InDelta(t, 100, white.Values[2], 1e-9)
	assert.True(t, white.IsWhite())
	assert.True(t, white.IsMonochromatic())
}

// TestLABOutOfGamut exercises the direct XYZ <-> LAB path: LAB colors
// outside of the sRGB gamut survive it, whereas routing through RGB
// would collapse them onto the gamut boundary.
func TestLABOutOfGamut(t *testing.T) {
	lab := NewLAB(50, 127, -128)
	xyz := lab.Convert(XYZ)
	back := xyz.Convert(LAB)
	opt := cmpopts.EquateApprox(0, 1e-6)
	assert.Empty(t, cmp.Diff(lab, back, opt))

	// negative intermediates are floored, not propagated as NaN
	dark := NewLAB(5, -100, 50).Convert(XYZ)
	assert.GreaterOrEqual(t, dark.Values[0], 0.0)
	assert.GreaterOrEqual(t, dark.Values[1], 0.0)
	assert.GreaterOrEqual(t, dark.Values[2], 0.0)
	assert.False(t, dark.Values[0] != dark.Values[0], "NaN x")
}

// TestAgainstColorful cross-checks the HSL and HSB conversions against
// the go-colorful implementations of the same standard formulas.
func TestAgainstColorful(t *testing.T) {
	for _, rgba := range rgbTestColors {
		cf := colorful.Color{R: float64(rgba.R) / 255, G: float64(rgba.G) / 255, B: float64(rgba.B) / 255}
		c := NewRGB(float64(rgba.R), float64(rgba.G), float64(rgba.B))

		h, s, l := cf.Hsl()
		hsl := c.Convert(HSL)
		assert.InDelta(t, h, hsl.Values[0], 1e-8)
		assert.InDelta(t, s*100, hsl.Values[1], 1e-8)
		assert.InDelta(t, l*100, hsl.Values[2], 1e-8)

		h, s, v := cf.Hsv()
		hsb := c.Convert(HSB)
		assert.InDelta(t, h, hsb.Values[0], 1e-8)
		assert.InDelta(t, s*100, hsb.Values[1], 1e-8)
		assert.InDelta(t, v*100, hsb.Values[2], 1e-8)
	}
}

func TestConvertInvalidSpace(t *testing.T) {
	assert.Panics(t, func() { NewRGB(0, 0, 0).Convert(NoSpace) })
	assert.Panics(t, func() { NewRGB(0, 0, 0).Convert(Space(42)) })
}
