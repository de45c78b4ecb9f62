// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import "math"

// HueDistance returns the shorter of the clockwise and counterclockwise
// arcs between two hues, in degrees; the result is always within 0-180.
func HueDistance(h1, h2 float64) float64 {
	d := math.Mod(math.Abs(h1-h2), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// adjustHue applies f to the color's hue and returns the result in the
// color's original space. Spaces that do not carry a hue channel are
// projected through HSL first.
func (c Color) adjustHue(f func(h float64) float64) Color {
	switch c.Space {
	case HSI, HSL, HSP, HSB:
		c.Values[0] = f(c.Values[0])
		return c
	default:
		h := c.Convert(HSL)
		h.Values[0] = f(h.Values[0])
		return h.Convert(c.Space)
	}
}

// RotateHue returns the color with its hue rotated by the given number
// of degrees, modulo 360. The result is in the color's original space,
// projecting through HSL as needed.
func (c Color) RotateHue(degrees float64) Color {
	return c.adjustHue(func(h float64) float64 {
		return math.Mod(math.Mod(h+degrees, 360)+360, 360)
	})
}

// Opposite returns the color with its hue rotated a half turn.
func (c Color) Opposite() Color {
	return c.RotateHue(180)
}

// Warmer returns the color with its hue moved toward 90 degrees.
// If relative is true, the step is the hue's distance from 90 scaled
// by amount/100; otherwise the step is amount degrees. Hues on the
// direct arcs stop at 90; hues on the far arc past 270 advance modulo
// 360 without capping, rotating in through the red side.
func (c Color) Warmer(amount float64, relative bool) Color {
	return c.adjustHue(func(h float64) float64 {
		adj := amount
		if relative {
			adj = HueDistance(h, 90) * amount / 100
		}
		switch {
		case h >= 0 && h <= 90:
			return math.Min(h+adj, 90)
		case h > 90 && h <= 270:
			return math.Max(h-adj, 90)
		}
		return math.Mod(h+adj, 360)
	})
}

// Cooler returns the color with its hue moved toward 270 degrees.
// If relative is true, the step is the hue's distance from 270 scaled
// by amount/100; otherwise the step is amount degrees. Hues on the
// direct arcs stop at 270; hues on the far arc below 90 move down
// modulo 360 without capping, wrapping through zero.
func (c Color) Cooler(amount float64, relative bool) Color {
	return c.adjustHue(func(h float64) float64 {
		adj := amount
		if relative {
			adj = HueDistance(h, 270) * amount / 100
		}
		switch {
		case h >= 90 && h <= 270:
			return math.Min(h+adj, 270)
		case h > 270:
			return math.Max(h-adj, 270)
		}
		return math.Mod(math.Mod(h-adj, 360)+360, 360)
	})
}

// IsWarm reports whether the color's hue is at least as close to 90
// degrees as to 270, projecting through HSL as needed; ties (0 and 180)
// count as warm. The opposite of [Color.IsCool].
func (c Color) IsWarm() bool {
	h := c
	switch c.Space {
	case HSI, HSL, HSP, HSB:
	default:
		h = c.Convert(HSL)
	}
	return HueDistance(h.Values[0], 90) <= HueDistance(h.Values[0], 270)
}

// IsCool reports whether the color's hue is closer to 270 degrees than
// to 90. The opposite of [Color.IsWarm].
func (c Color) IsCool() bool {
	return !c.IsWarm()
}

// Invert returns the color with each of its RGB channels flipped to
// 255 minus the value, leaving alpha unchanged. The result is in the
// color's original space.
func (c Color) Invert() Color {
	rgb := c.toRGB()
	rgb.Values[0] = 255 - rgb.Values[0]
	rgb.Values[1] = 255 - rgb.Values[1]
	rgb.Values[2] = 255 - rgb.Values[2]
	return rgb.Convert(c.Space)
}
