// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shellicon

import (
	"fmt"

	"github.com/Gipcomp/shellicon/errs"
	"github.com/Gipcomp/shellicon/swizzle"
)

// Extract converts icon into an RGBA Image, using dev for every platform
// call. The transient device contexts and the two bitmap handles produced
// by the icon info query are released on every path out, success or
// failure; release failures are reported through the errs log but never
// displace the outcome. The icon handle itself is not destroyed, that
// stays with the caller.
//
// Extraction is synchronous and makes no attempt to retry: any platform
// failure is terminal for the call.
func Extract(dev Device, icon Icon) (*Image, error) {
	info, err := dev.IconInfo(icon)
	if err != nil {
		return nil, errs.WrapError(errs.KindResourceInfoUnavailable, err)
	}

	// For icons the info hotspot is the image center, so the nominal
	// size is twice the hotspot.
	width := 2 * info.HotspotX
	height := 2 * info.HotspotY
	if width == 0 || height == 0 {
		releaseBitmaps(dev, info)
		return nil, errs.NewError(errs.KindInvalidDimensions,
			fmt.Sprintf("icon reports %dx%d", width, height))
	}

	buf := make([]byte, width*height*4)

	var bitCount int
	err = withCompatibleDC(dev, 0, func(screen DC) error {
		return withCompatibleDC(dev, screen, func(mem DC) error {
			return withSelectedBitmap(dev, mem, info.Color, func() error {
				n, err := dev.ReadPixels(mem, info.Color, width, height, buf)
				if err != nil {
					return errs.WrapError(errs.KindPixelReadbackFailed, err)
				}
				bitCount = n

				return nil
			})
		})
	})

	// The info query handed us both bitmap handles; they go away no
	// matter how the readback went.
	releaseBitmaps(dev, info)

	if err != nil {
		return nil, err
	}

	if bitCount != 32 {
		return nil, errs.NewError(errs.KindUnsupportedPixelFormat,
			fmt.Sprintf("bitmap has %d bits per pixel, want 32", bitCount))
	}

	swizzle.BGRA(buf)

	return newImage(width, height, buf)
}

// withCompatibleDC runs f with a device context compatible with ref,
// releasing the context when f returns. A release failure is reported but
// never displaces f's outcome.
func withCompatibleDC(dev Device, ref DC, f func(dc DC) error) error {
	dc, err := dev.CompatibleDC(ref)
	if err != nil {
		return errs.WrapError(errs.KindPixelReadbackFailed, err)
	}
	defer func() {
		if err := dev.DeleteDC(dc); err != nil {
			errs.WrapErrorNoPanic(errs.KindResourceCleanupFailed, err)
		}
	}()

	return f(dc)
}

// withSelectedBitmap selects bmp into dc for the duration of f, restoring
// the previously selected bitmap afterwards.
func withSelectedBitmap(dev Device, dc DC, bmp Bitmap, f func() error) error {
	old, err := dev.SelectBitmap(dc, bmp)
	if err != nil {
		return errs.WrapError(errs.KindPixelReadbackFailed, err)
	}
	defer func() {
		if _, err := dev.SelectBitmap(dc, old); err != nil {
			errs.WrapErrorNoPanic(errs.KindResourceCleanupFailed, err)
		}
	}()

	return f()
}

func releaseBitmaps(dev Device, info IconInfo) {
	for _, bmp := range []Bitmap{info.Color, info.Mask} {
		if bmp == 0 {
			continue
		}
		if err := dev.DeleteBitmap(bmp); err != nil {
			errs.WrapErrorNoPanic(errs.KindResourceCleanupFailed, err)
		}
	}
}
