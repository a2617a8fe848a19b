// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows
// +build windows

package shellicon

import (
	"unsafe"

	"github.com/Gipcomp/win32/gdi32"

	"github.com/Gipcomp/shellicon/errs"
)

// gdiDevice is the production Device. Each method maps onto its GDI
// counterpart.
type gdiDevice struct{}

// SystemDevice returns the Device backed by the process's GDI.
func SystemDevice() Device {
	return gdiDevice{}
}

func (gdiDevice) IconInfo(icon Icon) (IconInfo, error) {
	var ii iconInfoEx
	ii.cbSize = uint32(unsafe.Sizeof(ii))

	ret, _, _ := procGetIconInfoExW.Call(uintptr(icon), uintptr(unsafe.Pointer(&ii)))
	if ret == 0 {
		return IconInfo{}, errs.LastError("GetIconInfoEx")
	}

	return IconInfo{
		HotspotX: int(ii.xHotspot),
		HotspotY: int(ii.yHotspot),
		Color:    Bitmap(ii.hbmColor),
		Mask:     Bitmap(ii.hbmMask),
	}, nil
}

func (gdiDevice) CompatibleDC(ref DC) (DC, error) {
	dc := gdi32.CreateCompatibleDC(gdi32.HDC(ref))
	if dc == 0 {
		return 0, errs.LastError("CreateCompatibleDC")
	}

	return DC(dc), nil
}

func (gdiDevice) DeleteDC(dc DC) error {
	if !gdi32.DeleteDC(gdi32.HDC(dc)) {
		return errs.LastError("DeleteDC")
	}

	return nil
}

func (gdiDevice) SelectBitmap(dc DC, bmp Bitmap) (Bitmap, error) {
	old := gdi32.SelectObject(gdi32.HDC(dc), gdi32.HGDIOBJ(bmp))
	if old == 0 {
		return 0, errs.LastError("SelectObject")
	}

	return Bitmap(old), nil
}

func (gdiDevice) DeleteBitmap(bmp Bitmap) error {
	if !gdi32.DeleteObject(gdi32.HGDIOBJ(bmp)) {
		return errs.LastError("DeleteObject")
	}

	return nil
}

func (gdiDevice) ReadPixels(dc DC, bmp Bitmap, width, height int, dst []byte) (int, error) {
	var bi gdi32.BITMAPINFO
	bi.BmiHeader.BiSize = uint32(unsafe.Sizeof(bi.BmiHeader))
	bi.BmiHeader.BiWidth = int32(width)
	bi.BmiHeader.BiHeight = -int32(height) // negative height requests top-down rows
	bi.BmiHeader.BiPlanes = 1
	bi.BmiHeader.BiBitCount = 32
	bi.BmiHeader.BiCompression = gdi32.BI_RGB

	if ret := gdi32.GetDIBits(gdi32.HDC(dc), gdi32.HBITMAP(bmp), 0, uint32(height), &dst[0], &bi, gdi32.DIB_RGB_COLORS); ret == 0 {
		return 0, errs.LastError("GetDIBits")
	}

	return int(bi.BmiHeader.BiBitCount), nil
}
