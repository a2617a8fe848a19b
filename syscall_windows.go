//go:build windows
// +build windows

package shellicon

import (
	"syscall"
	"unsafe"

	"github.com/Gipcomp/win32/gdi32"
	"github.com/Gipcomp/win32/user32"
	"github.com/Gipcomp/win32/win"
	"golang.org/x/sys/windows"

	"github.com/Gipcomp/shellicon/errs"
)

// Procedures the win32 binding does not cover are bound lazily here.
var (
	modshell32 = windows.NewLazySystemDLL("shell32.dll")
	moduser32  = windows.NewLazySystemDLL("user32.dll")

	procSHGetFileInfoW = modshell32.NewProc("SHGetFileInfoW")
	procSHGetImageList = modshell32.NewProc("SHGetImageList")
	procGetIconInfoExW = moduser32.NewProc("GetIconInfoExW")
)

const (
	shgfiSysIconIndex = 0x000004000

	ildTransparent = 0x00000001

	maxPath = 260
)

// SHFILEINFOW as filled by SHGetFileInfoW.
type shFileInfo struct {
	hIcon         user32.HICON
	iIcon         int32
	dwAttributes  uint32
	szDisplayName [maxPath]uint16
	szTypeName    [80]uint16
}

// ICONINFOEXW as filled by GetIconInfoExW. The caller sets cbSize.
type iconInfoEx struct {
	cbSize    uint32
	fIcon     int32
	xHotspot  uint32
	yHotspot  uint32
	hbmMask   gdi32.HBITMAP
	hbmColor  gdi32.HBITMAP
	wResID    uint16
	szModName [maxPath]uint16
	szResName [maxPath]uint16
}

var iidIImageList = windows.GUID{
	Data1: 0x46eb5926,
	Data2: 0x582e,
	Data3: 0x4017,
	Data4: [8]byte{0x9f, 0xdf, 0xe8, 0x99, 0x8d, 0xaa, 0x09, 0x50},
}

// Vtable prefix of IImageList, declared through the one slot we call.
type iImageListVtbl struct {
	QueryInterface  uintptr
	AddRef          uintptr
	Release         uintptr
	Add             uintptr
	ReplaceIcon     uintptr
	SetOverlayImage uintptr
	Replace         uintptr
	AddMasked       uintptr
	Draw            uintptr
	Remove          uintptr
	GetIcon         uintptr
}

type iImageList struct {
	vtbl *iImageListVtbl
}

func (l *iImageList) GetIcon(index int32, flags uint32) (Icon, error) {
	var hIcon user32.HICON
	hr, _, _ := syscall.Syscall6(
		l.vtbl.GetIcon, 4,
		uintptr(unsafe.Pointer(l)),
		uintptr(index),
		uintptr(flags),
		uintptr(unsafe.Pointer(&hIcon)),
		0, 0,
	)
	if hr != 0 || hIcon == 0 {
		return 0, errs.ErrorFromHRESULT("IImageList.GetIcon", win.HRESULT(hr))
	}

	return Icon(hIcon), nil
}

func (l *iImageList) Release() {
	syscall.Syscall(l.vtbl.Release, 1, uintptr(unsafe.Pointer(l)), 0, 0)
}
