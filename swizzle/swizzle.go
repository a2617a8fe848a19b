// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package swizzle provides functions for converting between RGBA pixel
// formats.
package swizzle

// BGRA converts a pixel buffer between the BGRA byte order produced by
// GDI bitmaps and Go's RGBA byte order. The conversion is its own
// inverse, so the same call maps either direction.
//
// It panics if the input slice length is not a multiple of 4.
func BGRA(p []byte) {
	if len(p)%4 != 0 {
		panic("input slice length is not a multiple of 4")
	}

	// Use SIMD code for 16-byte chunks, if supported.
	if haveSIMD16 {
		n := len(p) &^ (16 - 1)
		bgra16(p[:n])
		p = p[n:]
	}

	// Swap blue and red scalar-wise for whatever is left, which is the
	// whole buffer when SIMD is unavailable and up to three trailing
	// pixels otherwise.
	for i := 0; i < len(p); i += 4 {
		p[i+0], p[i+2] = p[i+2], p[i+0]
	}
}
