// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

// Convert returns the color converted to the given space, routing
// through RGB as the common intermediary, except for the direct
// XYZ <-> LAB path, which avoids the RGB gamut so that out-of-gamut
// LAB values survive the round trip. Converting a color to its own
// space returns it unchanged. It panics on an invalid target space.
func (c Color) Convert(space Space) Color {
	if !space.Valid() {
		panic("colorspace.Color.Convert: invalid space: " + space.String())
	}
	if space == c.Space {
		return c
	}
	if c.Space == XYZ && space == LAB {
		return labFromXYZ(c)
	}
	if c.Space == LAB && space == XYZ {
		return xyzFromLAB(c)
	}
	return c.toRGB().fromRGB(space)
}

// toRGB converts the color to RGB; identity if it already is.
func (c Color) toRGB() Color {
	switch c.Space {
	case RGB:
		return c
	case CMYK:
		return cmykToRGB(c)
	case HSI:
		return hsiToRGB(c)
	case HSL:
		return hslToRGB(c)
	case HSP:
		return hspToRGB(c)
	case HSB:
		return hsbToRGB(c)
	case LAB:
		return labToRGB(c)
	case Oklab:
		return oklabToRGB(c)
	case XYZ:
		return xyzToRGB(c)
	}
	panic("colorspace: color has invalid space: " + c.Space.String())
}

// fromRGB converts an RGB color into the given space.
func (c Color) fromRGB(space Space) Color {
	switch space {
	case RGB:
		return c
	case CMYK:
		return cmykFromRGB(c)
	case HSI:
		return hsiFromRGB(c)
	case HSL:
		return hslFromRGB(c)
	case HSP:
		return hspFromRGB(c)
	case HSB:
		return hsbFromRGB(c)
	case LAB:
		return labFromRGB(c)
	case Oklab:
		return oklabFromRGB(c)
	case XYZ:
		return xyzFromRGB(c)
	}
	panic("colorspace: invalid space: " + space.String())
}
