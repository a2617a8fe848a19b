// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shellicon

import (
	"fmt"
	"image"

	"github.com/Gipcomp/shellicon/errs"
)

// Image is a decoded icon: a tightly packed pixel buffer plus its
// dimensions. Pix holds 4 bytes per pixel in RGBA order, rows top to
// bottom with no padding, so len(Pix) == Width*Height*4 always holds.
type Image struct {
	Width  int
	Height int
	Pix    []byte
}

func newImage(width, height int, pix []byte) (*Image, error) {
	if len(pix) != width*height*4 {
		return nil, errs.NewError(errs.KindBufferSizeMismatch,
			fmt.Sprintf("pixel buffer is %d bytes, want %d for %dx%d", len(pix), width*height*4, width, height))
	}

	return &Image{Width: width, Height: height, Pix: pix}, nil
}

// RGBA wraps the pixel buffer in an image.RGBA without copying; the
// returned image shares Pix with im.
func (im *Image) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    im.Pix,
		Stride: im.Width * 4,
		Rect:   image.Rect(0, 0, im.Width, im.Height),
	}
}
