// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import "fmt"

// Space is one of the supported color spaces.
// The zero value is [NoSpace], which is used where a space
// argument is optional.
type Space int32

const (
	// NoSpace is the unset space; it is not valid for a color.
	NoSpace Space = iota

	// RGB is the 0-255 red, green, blue space. Channel values are kept as
	// precise floats internally so that long conversion chains do not
	// compound rounding error; use [Color.AsRGBA] for the rounded view.
	RGB

	// CMYK is the 0-100 cyan, magenta, yellow, black space.
	CMYK

	// HSI is hue (0-360), saturation (0-100), intensity (0-100).
	HSI

	// HSL is hue (0-360), saturation (0-100), lightness (0-100).
	HSL

	// HSP is hue (0-360), saturation (0-100), perceived brightness (0-100),
	// using the Finley luma-weighted brightness measure.
	HSP

	// HSB is hue (0-360), saturation (0-100), brightness (0-100),
	// also known as HSV.
	HSB

	// LAB is CIELAB: lightness (0-100) and the a and b chromaticity
	// axes (-128 to 127).
	LAB

	// Oklab is the Oklab perceptual space: lightness and the a and b
	// chromaticity axes, all nominally within -1 to 1.
	Oklab

	// XYZ is CIEXYZ, rescaled so that RGB white is exactly (100, 100, 100).
	// Channels have no upper bound, to represent out-of-gamut LAB round trips.
	XYZ
)

// SpacesN is the number of valid color spaces.
const SpacesN = 9

var spaceNames = [...]string{"none", "rgb", "cmyk", "hsi", "hsl", "hsp", "hsb", "lab", "oklab", "xyz"}

func (s Space) String() string {
	if s < 0 || int(s) >= len(spaceNames) {
		return fmt.Sprintf("Space(%d)", int32(s))
	}
	return spaceNames[s]
}

// Valid reports whether s is one of the supported color spaces.
func (s Space) Valid() bool {
	return s > NoSpace && s <= XYZ
}

// NChannels returns the number of channels in the space,
// not counting alpha.
func (s Space) NChannels() int {
	if s == CMYK {
		return 4
	}
	return 3
}

var spaceChannels = map[Space][]string{
	RGB:   {"red", "green", "blue"},
	CMYK:  {"cyan", "magenta", "yellow", "black"},
	HSI:   {"hue", "saturation", "intensity"},
	HSL:   {"hue", "saturation", "lightness"},
	HSP:   {"hue", "saturation", "perceivedBrightness"},
	HSB:   {"hue", "saturation", "brightness"},
	LAB:   {"lightness", "chromaticityA", "chromaticityB"},
	Oklab: {"lightness", "chromaticityA", "chromaticityB"},
	XYZ:   {"x", "y", "z"},
}

// ChannelNames returns the ordered channel names of the space,
// not including alpha.
func (s Space) ChannelNames() []string {
	return spaceChannels[s]
}

// channel ranges per space; XYZ has no upper bound (see spaceMax).
var spaceMins = map[Space][4]float64{
	RGB:   {0, 0, 0},
	CMYK:  {0, 0, 0, 0},
	HSI:   {0, 0, 0},
	HSL:   {0, 0, 0},
	HSP:   {0, 0, 0},
	HSB:   {0, 0, 0},
	LAB:   {0, -128, -128},
	Oklab: {0, -1, -1},
	XYZ:   {0, 0, 0},
}

var spaceMaxs = map[Space][4]float64{
	RGB:   {255, 255, 255},
	CMYK:  {100, 100, 100, 100},
	HSI:   {360, 100, 100},
	HSL:   {360, 100, 100},
	HSP:   {360, 100, 100},
	HSB:   {360, 100, 100},
	LAB:   {100, 127, 127},
	Oklab: {1, 1, 1},
	XYZ:   {maxXYZ, maxXYZ, maxXYZ},
}

// maxXYZ is the validation bound for XYZ channels: nominally 0-100, but
// out-of-gamut LAB colors produce larger values, so the check is generous.
const maxXYZ = 1e6

// ChannelRange returns the valid range of the i-th channel of the space.
func (s Space) ChannelRange(i int) (min, max float64) {
	return spaceMins[s][i], spaceMaxs[s][i]
}

// mustChannel panics if the i-th channel value of the space is
// outside of its valid range. Out-of-range inputs are a contract
// violation, not a recoverable error.
func mustChannel(s Space, i int, v float64) {
	min, max := s.ChannelRange(i)
	if v < min || v > max {
		panic(fmt.Sprintf("colorspace: %s %s value out of range [%g, %g]: %g", s, s.ChannelNames()[i], min, max, v))
	}
}

// mustAlpha panics if the given alpha value is outside of 0-1.
func mustAlpha(a float64) {
	if a < 0 || a > 1 {
		panic(fmt.Sprintf("colorspace: alpha value out of range [0, 1]: %g", a))
	}
}
