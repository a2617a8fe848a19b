//go:build windows
// +build windows

package shellicon

import (
	"fmt"
	"unsafe"

	"github.com/Gipcomp/win32/user32"
	"github.com/Gipcomp/win32/win"
	"golang.org/x/sys/windows"

	"github.com/Gipcomp/shellicon/errs"
)

// FetchIcon resolves path to a handle on the icon the shell displays for
// it, taken from the system image list of the given size class. The
// caller owns the handle and must pass it to DestroyIcon exactly once,
// after extraction.
func FetchIcon(path string, size SizeClass) (Icon, error) {
	index, err := systemIconIndex(path)
	if err != nil {
		return 0, err
	}

	list, err := imageListForSize(size)
	if err != nil {
		return 0, errs.WrapError(errs.KindResolutionFailed, err)
	}
	defer list.Release()

	icon, err := list.GetIcon(index, ildTransparent)
	if err != nil {
		return 0, errs.WrapError(errs.KindResolutionFailed, err)
	}

	return icon, nil
}

// DestroyIcon releases an icon handle obtained from FetchIcon.
func DestroyIcon(icon Icon) error {
	if !user32.DestroyIcon(user32.HICON(icon)) {
		return errs.LastError("DestroyIcon")
	}

	return nil
}

// FetchImage resolves path and converts the icon to RGBA in one call,
// destroying the intermediate icon handle before returning.
func FetchImage(path string, size SizeClass) (*Image, error) {
	icon, err := FetchIcon(path, size)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := DestroyIcon(icon); err != nil {
			errs.WrapErrorNoPanic(errs.KindResourceCleanupFailed, err)
		}
	}()

	return Extract(SystemDevice(), icon)
}

// systemIconIndex looks up path's icon index in the system image list. An
// index of zero is reported as a failed lookup.
func systemIconIndex(path string) (int32, error) {
	wpath, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, errs.WrapError(errs.KindResolutionFailed, err)
	}

	var info shFileInfo
	ret, _, _ := procSHGetFileInfoW.Call(
		uintptr(unsafe.Pointer(wpath)),
		0,
		uintptr(unsafe.Pointer(&info)),
		unsafe.Sizeof(info),
		shgfiSysIconIndex,
	)
	if ret == 0 || info.iIcon == 0 {
		return 0, errs.NewError(errs.KindResolutionFailed,
			fmt.Sprintf("no system image list entry for %q", path))
	}

	return info.iIcon, nil
}

func imageListForSize(size SizeClass) (*iImageList, error) {
	var p unsafe.Pointer
	hr, _, _ := procSHGetImageList.Call(
		uintptr(size),
		uintptr(unsafe.Pointer(&iidIImageList)),
		uintptr(unsafe.Pointer(&p)),
	)
	if hr != 0 || p == nil {
		return nil, errs.ErrorFromHRESULT("SHGetImageList", win.HRESULT(hr))
	}

	return (*iImageList)(p), nil
}
