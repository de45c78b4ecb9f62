// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpace(t *testing.T) {
	assert.Equal(t, SpacesN, len(allSpaces))
	for _, s := range allSpaces {
		assert.True(t, s.Valid())
	}
	assert.False(t, NoSpace.Valid())
	assert.False(t, Space(SpacesN+1).Valid())

	assert.Equal(t, "hsl", HSL.String())
	assert.Equal(t, "oklab", Oklab.String())
	assert.Equal(t, "none", NoSpace.String())
	assert.Equal(t, "Space(42)", Space(42).String())

	assert.Equal(t, 4, CMYK.NChannels())
	assert.Equal(t, 3, RGB.NChannels())
	assert.Equal(t, 3, XYZ.NChannels())
}

func TestChannelRange(t *testing.T) {
	min, max := RGB.ChannelRange(0)
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 255.0, max)

	min, max = HSL.ChannelRange(0)
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 360.0, max)

	min, max = LAB.ChannelRange(1)
	assert.Equal(t, -128.0, min)
	assert.Equal(t, 127.0, max)

	for _, s := range allSpaces {
		assert.Len(t, s.ChannelNames(), s.NChannels(), s.String())
	}
}
