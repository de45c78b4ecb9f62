// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandom(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	for _, space := range allSpaces {
		for range 100 {
			c := Random(space, rnd)
			assert.Equal(t, space, c.Space)
			assert.Equal(t, 1.0, c.Alpha)
			for i := 0; i < space.NChannels(); i++ {
				min, max := space.ChannelRange(i)
				if max > 100 {
					max = 100
				}
				assert.GreaterOrEqual(t, c.Values[i], min)
				assert.LessOrEqual(t, c.Values[i], max)
			}
		}
	}

	// the same seed yields the same sequence
	a := rand.New(rand.NewPCG(42, 0))
	b := rand.New(rand.NewPCG(42, 0))
	for range 10 {
		assert.Equal(t, Random(HSL, a), Random(HSL, b))
	}

	// nil uses the shared global source
	assert.NotPanics(t, func() { Random(RGB, nil) })

	assert.Panics(t, func() { Random(NoSpace, rnd) })
}
