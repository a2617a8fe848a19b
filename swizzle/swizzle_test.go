// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swizzle

import (
	"bytes"
	"testing"
)

func fill(n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(i*7 + 3)
	}
	return p
}

// swap blue and red one pixel at a time, the reference the fast paths
// must agree with.
func scalarBGRA(p []byte) {
	for i := 0; i < len(p); i += 4 {
		p[i+0], p[i+2] = p[i+2], p[i+0]
	}
}

func TestBGRA_SingleWindow(t *testing.T) {
	got := []byte{
		0x00, 0x01, 0x02, 0x03,
		0x10, 0x11, 0x12, 0x13,
		0x20, 0x21, 0x22, 0x23,
		0x30, 0x31, 0x32, 0x33,
	}
	want := []byte{
		0x02, 0x01, 0x00, 0x03,
		0x12, 0x11, 0x10, 0x13,
		0x22, 0x21, 0x20, 0x23,
		0x32, 0x31, 0x30, 0x33,
	}

	BGRA(got)

	if !bytes.Equal(got, want) {
		t.Errorf("BGRA(16 bytes) = % x, want % x", got, want)
	}
}

func TestBGRA_MatchesScalar(t *testing.T) {
	// Mixing full windows with 1-3 trailing pixels exercises both the
	// PSHUFB path and the scalar remainder.
	for _, n := range []int{0, 4, 8, 12, 16, 20, 28, 32, 36, 64, 100, 1024, 1028} {
		got := fill(n)
		want := fill(n)

		BGRA(got)
		scalarBGRA(want)

		if !bytes.Equal(got, want) {
			t.Errorf("BGRA(%d bytes) = % x, want % x", n, got, want)
		}
	}
}

func TestBGRA_Involution(t *testing.T) {
	for _, n := range []int{0, 4, 16, 20, 48, 1024} {
		orig := fill(n)
		p := fill(n)

		BGRA(p)
		BGRA(p)

		if !bytes.Equal(p, orig) {
			t.Errorf("BGRA twice over %d bytes = % x, want % x", n, p, orig)
		}
	}
}

func TestBGRA_PreservesLength(t *testing.T) {
	for _, n := range []int{0, 4, 16, 36, 256} {
		p := fill(n)
		BGRA(p)
		if len(p) != n {
			t.Errorf("BGRA changed length from %d to %d", n, len(p))
		}
	}
}

func TestBGRA_TrailingPixels(t *testing.T) {
	// 5 pixels: one full window plus one trailing pixel. The trailing
	// pixel must be converted too.
	p := []byte{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
		0xb0, 0x60, 0xf0, 0xff,
	}

	BGRA(p)

	want := []byte{0xf0, 0x60, 0xb0, 0xff}
	if !bytes.Equal(p[16:], want) {
		t.Errorf("trailing pixel = % x, want % x", p[16:], want)
	}
}

func TestBGRA_PanicsOnBadLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("BGRA(3 bytes) did not panic")
		}
	}()

	BGRA(make([]byte, 3))
}
