// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerpTo(t *testing.T) {
	black := NewRGB(0, 0, 0)
	white := NewRGB(255, 255, 255)

	got := black.LerpTo(white, 3, nil)
	assert.Len(t, got, 5)
	assert.Equal(t, black, got[0])
	assert.Equal(t, NewRGB(63.75, 63.75, 63.75), got[1])
	assert.Equal(t, NewRGB(127.5, 127.5, 127.5), got[2])
	assert.Equal(t, NewRGB(191.25, 191.25, 191.25), got[3])
	assert.Equal(t, white, got[4])

	got = black.LerpTo(white, 3, &LerpOptions{ExcludeEndpoints: true})
	assert.Len(t, got, 3)
	assert.Equal(t, NewRGB(63.75, 63.75, 63.75), got[0])
	assert.Equal(t, NewRGB(191.25, 191.25, 191.25), got[2])

	assert.Panics(t, func() { black.LerpTo(white, 0, nil) })
}

func TestLerpSpace(t *testing.T) {
	a := NewHSL(350, 100, 50)
	b := NewHSL(10, 100, 50)

	// hue interpolates as a plain number, walking the long way
	got := a.LerpTo(b, 1, nil)
	assert.Len(t, got, 3)
	assert.Equal(t, NewHSL(180, 100, 50), got[1])

	// the working space defaults to the starting color's space
	got = NewRGB(255, 0, 0).LerpTo(NewHSL(240, 100, 50), 1, nil)
	assert.Equal(t, RGB, got[1].Space)
	assert.Equal(t, NewRGB(127.5, 0, 127.5), got[1])

	// AnchorEnd selects the ending color's space instead
	got = NewRGB(255, 0, 0).LerpTo(NewHSL(240, 100, 50), 1, &LerpOptions{AnchorEnd: true})
	assert.Equal(t, HSL, got[1].Space)
	assert.Equal(t, NewHSL(120, 100, 50), got[1])

	// an explicit space overrides both endpoints
	got = NewRGB(255, 0, 0).LerpTo(NewRGB(0, 0, 255), 1, &LerpOptions{Space: HSL})
	assert.Equal(t, HSL, got[1].Space)
	assert.Equal(t, NewHSL(120, 100, 50), got[1])
}

func TestLerpAlpha(t *testing.T) {
	a := NewRGB(0, 0, 0, 0)
	b := NewRGB(0, 0, 0, 1)
	got := a.LerpTo(b, 2, nil)
	// rounded to six decimals
	assert.Equal(t, 0.333333, got[1].Alpha)
	assert.Equal(t, 0.666667, got[2].Alpha)
}

func TestLerpEndpointsConverted(t *testing.T) {
	got := NewRGB(255, 0, 0).LerpTo(NewRGB(0, 0, 255), 1, &LerpOptions{Space: HSB})
	assert.Equal(t, HSB, got[0].Space)
	assert.True(t, got[0].Equal(NewHSB(0, 100, 100)))
	assert.True(t, got[2].Equal(NewHSB(240, 100, 100)))
}
