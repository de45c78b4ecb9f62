// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"golang.org/x/image/colornames"
)

// FromHex parses the given hex color string and returns the resulting
// RGB color. It accepts 3, 6, and 8 digit forms (#RGB, #RRGGBB,
// #RRGGBBAA), case-insensitive, with or without the leading #.
// It returns any resulting error; see [MustFromHex] for a version
// that does not return an error.
func FromHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b int
	a := 255
	switch len(hex) {
	case 3:
		if _, err := fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b); err != nil {
			return Color{}, errors.New("colorspace.FromHex: could not process: " + hex)
		}
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
			return Color{}, errors.New("colorspace.FromHex: could not process: " + hex)
		}
	case 8:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return Color{}, errors.New("colorspace.FromHex: could not process: " + hex)
		}
	default:
		return Color{}, errors.New("colorspace.FromHex: could not process: " + hex)
	}
	return NewRGB(float64(r), float64(g), float64(b), float64(a)/255), nil
}

// MustFromHex parses the given hex color string and returns the
// resulting RGB color. It panics on any resulting error; see
// [FromHex] for a version that returns an error.
func MustFromHex(hex string) Color {
	c, err := FromHex(hex)
	if err != nil {
		panic("colorspace.MustFromHex: " + err.Error())
	}
	return c
}

// LogFromHex parses the given hex color string and returns the
// resulting RGB color. It logs any resulting error; see [FromHex]
// for a version that returns an error.
func LogFromHex(hex string) Color {
	c, err := FromHex(hex)
	if err != nil {
		log.Println("error: colorspace.LogFromHex: " + err.Error())
	}
	return c
}

// AsHex returns the color as a #RRGGBB hex string from its rounded RGB
// view, with the AA alpha digits appended when it is not fully opaque.
func (c Color) AsHex() string {
	rgb := c.toRGB()
	r := round8(rgb.Values[0])
	g := round8(rgb.Values[1])
	b := round8(rgb.Values[2])
	if c.Alpha < 1 {
		return fmt.Sprintf("#%02X%02X%02X%02X", r, g, b, uint8(c.Alpha*255+0.5))
	}
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// FromName returns the RGB color with the given CSS standard color
// name. It returns an error if the name is not found.
func FromName(name string) (Color, error) {
	lname := strings.ToLower(name)
	c, ok := colornames.Map[lname]
	if !ok {
		// colornames carries the SVG 1.1 table; CSS Color 4 added one name
		if lname == "rebeccapurple" {
			return NewRGB(102, 51, 153), nil
		}
		return Color{}, errors.New("colorspace.FromName: name not found: " + name)
	}
	return NewRGB(float64(c.R), float64(c.G), float64(c.B)), nil
}

// FromString returns a color from the given string, which can be a hex
// value, a CSS standard color name, or an rgb(r, g, b), rgba(r, g, b, a),
// or hsl(h, s, l) functional form. It returns any resulting error.
func FromString(str string) (Color, error) {
	lstr := strings.ToLower(strings.TrimSpace(str))
	switch {
	case lstr == "":
		return Color{}, errors.New("colorspace.FromString: empty string")
	case lstr[0] == '#':
		return FromHex(lstr)
	case strings.HasPrefix(lstr, "rgba("):
		var r, g, b int
		var a float64
		if _, err := fmt.Sscanf(strings.TrimRight(lstr[5:], ")"), "%d,%d,%d,%g", &r, &g, &b, &a); err != nil {
			return Color{}, fmt.Errorf("colorspace.FromString: could not process %q: %w", str, err)
		}
		return NewRGB(float64(r), float64(g), float64(b), a), nil
	case strings.HasPrefix(lstr, "rgb("):
		var r, g, b int
		if _, err := fmt.Sscanf(strings.TrimRight(lstr[4:], ")"), "%d,%d,%d", &r, &g, &b); err != nil {
			return Color{}, fmt.Errorf("colorspace.FromString: could not process %q: %w", str, err)
		}
		return NewRGB(float64(r), float64(g), float64(b)), nil
	case strings.HasPrefix(lstr, "hsl("):
		var h, s, l int
		if _, err := fmt.Sscanf(strings.TrimRight(lstr[4:], ")"), "%d,%d,%d", &h, &s, &l); err != nil {
			return Color{}, fmt.Errorf("colorspace.FromString: could not process %q: %w", str, err)
		}
		return NewHSL(float64(h), float64(s), float64(l)), nil
	}
	return FromName(lstr)
}

// MustFromString returns a color from the given string per
// [FromString], panicking on any resulting error.
func MustFromString(str string) Color {
	c, err := FromString(str)
	if err != nil {
		panic("colorspace.MustFromString: " + err.Error())
	}
	return c
}
