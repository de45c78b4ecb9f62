// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"fmt"
	"image/color"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerance is the rounding tolerance used for channel equality and for
// the per-space black / white / monochromatic predicates.
const Tolerance = 1e-6

// Color is an immutable color in one of the supported [Space]s.
// All operations return a new Color; the zero value is not valid.
type Color struct {

	// Space is the color space the channel values are in.
	Space Space

	// Values are the channel values, in the native ranges of Space
	// (see [Space.ChannelRange]). Only the first [Space.NChannels]
	// entries are meaningful. RGB values are precise, unrounded
	// 0-255 floats; use [Color.AsRGBA] for the rounded integer view.
	Values [4]float64

	// Alpha is the opacity from 0 (transparent) to 1 (opaque).
	// It is carried unchanged through every conversion.
	Alpha float64
}

// New returns a color in the given space from the given channel values,
// which must be within their native ranges. The optional alpha defaults
// to fully opaque. It panics on out-of-range input; use [FromChannels]
// for flat channel lists that may include alpha.
func New(space Space, chans []float64, alpha ...float64) Color {
	if !space.Valid() {
		panic("colorspace.New: invalid space: " + space.String())
	}
	n := space.NChannels()
	if len(chans) != n {
		panic(fmt.Sprintf("colorspace.New: %s requires %d channel values, got %d", space, n, len(chans)))
	}
	c := Color{Space: space, Alpha: 1}
	for i, v := range chans {
		mustChannel(space, i, v)
		c.Values[i] = v
	}
	if len(alpha) > 0 {
		mustAlpha(alpha[0])
		c.Alpha = alpha[0]
	}
	return c
}

// NewRGB returns an RGB color from 0-255 channel values,
// with an optional 0-1 alpha (default 1).
func NewRGB(r, g, b float64, alpha ...float64) Color {
	return New(RGB, []float64{r, g, b}, alpha...)
}

// NewCMYK returns a CMYK color from 0-100 channel values,
// with an optional 0-1 alpha (default 1).
func NewCMYK(c, m, y, k float64, alpha ...float64) Color {
	return New(CMYK, []float64{c, m, y, k}, alpha...)
}

// NewHSI returns an HSI color from 0-360 hue and 0-100 saturation and
// intensity, with an optional 0-1 alpha (default 1).
func NewHSI(h, s, i float64, alpha ...float64) Color {
	return New(HSI, []float64{h, s, i}, alpha...)
}

// NewHSL returns an HSL color from 0-360 hue and 0-100 saturation and
// lightness, with an optional 0-1 alpha (default 1).
func NewHSL(h, s, l float64, alpha ...float64) Color {
	return New(HSL, []float64{h, s, l}, alpha...)
}

// NewHSP returns an HSP color from 0-360 hue and 0-100 saturation and
// perceived brightness, with an optional 0-1 alpha (default 1).
func NewHSP(h, s, p float64, alpha ...float64) Color {
	return New(HSP, []float64{h, s, p}, alpha...)
}

// NewHSB returns an HSB (HSV) color from 0-360 hue and 0-100 saturation
// and brightness, with an optional 0-1 alpha (default 1).
func NewHSB(h, s, b float64, alpha ...float64) Color {
	return New(HSB, []float64{h, s, b}, alpha...)
}

// NewLAB returns a CIELAB color from 0-100 lightness and -128 to 127
// chromaticity values, with an optional 0-1 alpha (default 1).
func NewLAB(l, a, b float64, alpha ...float64) Color {
	return New(LAB, []float64{l, a, b}, alpha...)
}

// NewOklab returns an Oklab color, with an optional 0-1 alpha (default 1).
func NewOklab(l, a, b float64, alpha ...float64) Color {
	return New(Oklab, []float64{l, a, b}, alpha...)
}

// NewXYZ returns a CIEXYZ color (0-100 nominal, unbounded above),
// with an optional 0-1 alpha (default 1).
func NewXYZ(x, y, z float64, alpha ...float64) Color {
	return New(XYZ, []float64{x, y, z}, alpha...)
}

// Channels returns the channel values as a flat list, with the alpha
// value appended if withAlpha is true. The inverse is [FromChannels].
func (c Color) Channels(withAlpha bool) []float64 {
	n := c.Space.NChannels()
	vals := make([]float64, n, n+1)
	copy(vals, c.Values[:n])
	if withAlpha {
		vals = append(vals, c.Alpha)
	}
	return vals
}

// FromChannels returns a color in the given space from a flat channel
// list, which must have either [Space.NChannels] entries, or one more
// holding the 0-1 alpha value. It panics on a list of the wrong length
// or on out-of-range values.
func FromChannels(space Space, vals []float64) Color {
	n := space.NChannels()
	switch len(vals) {
	case n:
		return New(space, vals)
	case n + 1:
		return New(space, vals[:n], vals[n])
	}
	panic(fmt.Sprintf("colorspace.FromChannels: %s requires %d or %d values, got %d", space, n, n+1, len(vals)))
}

// WithAlpha returns the color with the given 0-1 alpha value,
// leaving the channels unchanged.
func (c Color) WithAlpha(alpha float64) Color {
	mustAlpha(alpha)
	c.Alpha = alpha
	return c
}

// WithValue returns the color with the i-th channel set to the given
// value, which must be within the channel's native range.
func (c Color) WithValue(i int, v float64) Color {
	if i < 0 || i >= c.Space.NChannels() {
		panic(fmt.Sprintf("colorspace.Color.WithValue: channel index out of range: %d", i))
	}
	mustChannel(c.Space, i, v)
	c.Values[i] = v
	return c
}

// AsRGBA returns the color as a standard [color.RGBA], with the
// components premultiplied by alpha. This is the rounded integer
// view of the color.
func (c Color) AsRGBA() color.RGBA {
	rgb := c.toRGB()
	a := c.Alpha
	return color.RGBA{
		round8(rgb.Values[0] * a),
		round8(rgb.Values[1] * a),
		round8(rgb.Values[2] * a),
		uint8(a*255 + 0.5),
	}
}

// round8 rounds a precise 0-255 channel value to its integer view.
// Float noise below the sixth decimal is suppressed first, so that a
// conversion chain landing a hair under a half-integer (16.4999...)
// still rounds up like its exact rational value (16.5) would.
func round8(v float64) uint8 {
	return uint8(scalar.Round(v, 6) + 0.5)
}

// RGBA implements the [color.Color] interface, performing the
// premultiplication of the channels by alpha at this point.
func (c Color) RGBA() (r, g, b, a uint32) {
	fr, fg, fb := rgbNorm(c.toRGB())
	fa := c.Alpha
	r = uint32(fr*fa*65535 + 0.5)
	g = uint32(fg*fa*65535 + 0.5)
	b = uint32(fb*fa*65535 + 0.5)
	a = uint32(fa*65535 + 0.5)
	return
}

// FromColor returns a color in the given space from a standard
// [color.Color], un-premultiplying the alpha.
func FromColor(space Space, ci color.Color) Color {
	r, g, b, a := ci.RGBA()
	if a == 0 {
		return New(space, make([]float64, space.NChannels()), 0)
	}
	fa := float64(a) / 65535
	fr := float64(r) / 65535 / fa
	fg := float64(g) / 65535 / fa
	fb := float64(b) / 65535 / fa
	rgb := rgbFromNorm(fr, fg, fb, fa)
	return rgb.Convert(space)
}

// ModelFor returns the standard [color.Model] that converts
// colors to the given space.
func ModelFor(space Space) color.Model {
	return color.ModelFunc(func(ci color.Color) color.Color {
		if c, ok := ci.(Color); ok && c.Space == space {
			return c
		}
		return FromColor(space, ci)
	})
}

// Equal reports whether the two colors are in the same space and have
// the same channel and alpha values, within [Tolerance].
func (c Color) Equal(o Color) bool {
	if c.Space != o.Space {
		return false
	}
	for i := 0; i < c.Space.NChannels(); i++ {
		if !scalar.EqualWithinAbs(c.Values[i], o.Values[i], Tolerance) {
			return false
		}
	}
	return scalar.EqualWithinAbs(c.Alpha, o.Alpha, Tolerance)
}

func (c Color) String() string {
	n := c.Space.NChannels()
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf("%g", scalar.Round(c.Values[i], 6))
	}
	return fmt.Sprintf("%s(%s)", c.Space, strings.Join(parts, ", "))
}

// eq reports scalar equality within [Tolerance].
func eq(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, Tolerance)
}

// IsBlack reports whether the color is black, in terms of its own
// space's channels. Used to short-circuit conversions whose general
// formulas are undefined at the achromatic extremes.
func (c Color) IsBlack() bool {
	switch c.Space {
	case RGB:
		return eq(c.Values[0], 0) && eq(c.Values[1], 0) && eq(c.Values[2], 0)
	case CMYK:
		return eq(c.Values[3], 100)
	case HSI, HSL, HSP, HSB:
		return eq(c.Values[2], 0)
	case LAB, Oklab:
		return eq(c.Values[0], 0)
	case XYZ:
		return eq(c.Values[0], 0) && eq(c.Values[1], 0) && eq(c.Values[2], 0)
	}
	return false
}

// IsWhite reports whether the color is white, in terms of its own
// space's channels.
func (c Color) IsWhite() bool {
	switch c.Space {
	case RGB:
		return eq(c.Values[0], 255) && eq(c.Values[1], 255) && eq(c.Values[2], 255)
	case CMYK:
		return eq(c.Values[0], 0) && eq(c.Values[1], 0) && eq(c.Values[2], 0) && eq(c.Values[3], 0)
	case HSI, HSL, HSP, HSB:
		return eq(c.Values[1], 0) && eq(c.Values[2], 100)
	case LAB:
		return eq(c.Values[0], 100) && eq(c.Values[1], 0) && eq(c.Values[2], 0)
	case Oklab:
		return eq(c.Values[0], 1) && eq(c.Values[1], 0) && eq(c.Values[2], 0)
	case XYZ:
		return eq(c.Values[0], 100) && eq(c.Values[1], 100) && eq(c.Values[2], 100)
	}
	return false
}

// IsMonochromatic reports whether the color is a pure grey (including
// black and white), in terms of its own space's channels.
func (c Color) IsMonochromatic() bool {
	switch c.Space {
	case RGB:
		return eq(c.Values[0], c.Values[1]) && eq(c.Values[1], c.Values[2])
	case CMYK:
		return eq(c.Values[0], c.Values[1]) && eq(c.Values[1], c.Values[2])
	case HSI, HSL, HSP, HSB:
		return eq(c.Values[1], 0)
	case LAB, Oklab:
		return eq(c.Values[1], 0) && eq(c.Values[2], 0)
	case XYZ:
		// greys have equal channels here because the space is rescaled
		// so that white is exactly (100, 100, 100)
		return eq(c.Values[0], c.Values[1]) && eq(c.Values[1], c.Values[2])
	}
	return false
}
