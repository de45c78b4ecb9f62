// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import "math/rand/v2"

// Random returns a random fully opaque color in the given space, with
// each channel drawn uniformly from its native range, using the given
// caller-owned source (so that generation is seedable and reproducible).
// A nil source uses the shared global generator. XYZ channels are drawn
// from the nominal 0-100 range.
func Random(space Space, rnd *rand.Rand) Color {
	if !space.Valid() {
		panic("colorspace.Random: invalid space: " + space.String())
	}
	f64 := rand.Float64
	if rnd != nil {
		f64 = rnd.Float64
	}
	n := space.NChannels()
	vals := make([]float64, n)
	for i := range vals {
		min, max := space.ChannelRange(i)
		if max > 100 { // XYZ has no real upper bound
			max = 100
		}
		vals[i] = min + f64()*(max-min)
	}
	return New(space, vals)
}
