// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorspace represents colors in nine color spaces (RGB,
// CMYK, HSI, HSL, HSP, HSB, CIELAB, Oklab, and CIEXYZ) and converts,
// interpolates, and adjusts between them.
//
// All conversions route through RGB as the common intermediary, with a
// direct XYZ <-> CIELAB path that preserves out-of-sRGB-gamut values.
// A [Color] is an immutable value: every operation returns a new one,
// and the alpha channel passes through every conversion unchanged.
// [Color] implements the standard [image/color.Color] interface, and
// [ModelFor] provides a [image/color.Model] for each space.
//
// Everything is pure, synchronous scalar math with no shared state, so
// any number of operations may run concurrently on independent values.
package colorspace
