// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOklab(t *testing.T) {
	red := NewRGB(255, 0, 0).Convert(Oklab)
	assert.InDelta(t, 0.6279554, red.Values[0], 1e-6)
	assert.InDelta(t, 0.2248631, red.Values[1], 1e-6)
	assert.InDelta(t, 0.1258463, red.Values[2], 1e-6)

	white := NewRGB(255, 255, 255).Convert(Oklab)
	assert.InDelta(t, 1, white.Values[0], 1e-6)
	assert.InDelta(t, 0, white.Values[1], 1e-6)
	assert.InDelta(t, 0, white.Values[2], 1e-6)

	black := NewRGB(0, 0, 0).Convert(Oklab)
	assert.InDelta(t, 0, black.Values[0], 1e-9)
	assert.InDelta(t, 0, black.Values[1], 1e-9)
	assert.InDelta(t, 0, black.Values[2], 1e-9)

	assert.Equal(t, color.RGBA{255, 0, 0, 255}, red.AsRGBA())
}

func TestChroma(t *testing.T) {
	// chroma follows lightness monotonically along the power curve
	prev := -1.0
	for l := 0.0; l <= 1.0001; l += 0.01 {
		c := NewOklab(min(l, 1), 0, 0)
		ch := c.Chroma()
		assert.GreaterOrEqual(t, ch, 0.0)
		assert.LessOrEqual(t, ch, 1.0+1e-9)
		assert.Greater(t, ch, prev)
		prev = ch
	}

	// WithChroma inverts Chroma
	c := NewOklab(0.62, 0.1, -0.05)
	got := c.WithChroma(c.Chroma())
	assert.InDelta(t, 0.62, got.Values[0], 1e-9)
	assert.Equal(t, 0.1, got.Values[1])
	assert.Equal(t, -0.05, got.Values[2])

	// the endpoints clamp to the lightness range
	assert.Equal(t, 1.0, NewOklab(0.5, 0, 0).WithChroma(1).Values[0])
	assert.Equal(t, 0.0, NewOklab(0.5, 0, 0).WithChroma(0).Values[0])

	assert.Panics(t, func() { NewRGB(0, 0, 0).Chroma() })
	assert.Panics(t, func() { NewRGB(0, 0, 0).WithChroma(0.5) })
	assert.Panics(t, func() { NewOklab(0.5, 0, 0).WithChroma(1.5) })
}
