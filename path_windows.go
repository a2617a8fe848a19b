// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows
// +build windows

package shellicon

import (
	"syscall"

	"github.com/Gipcomp/win32/kernel32"

	"github.com/Gipcomp/shellicon/errs"
)

// DriveNames returns the root paths of all logical drives, in the form
// `C:\`. Each root is a valid argument to FetchIcon and FetchImage, which
// makes this the starting point for dumping every volume icon.
func DriveNames() ([]string, error) {
	bufLen := kernel32.GetLogicalDriveStrings(0, nil)
	if bufLen == 0 {
		return nil, errs.LastError("GetLogicalDriveStrings")
	}
	buf := make([]uint16, bufLen+1)

	bufLen = kernel32.GetLogicalDriveStrings(bufLen+1, &buf[0])
	if bufLen == 0 {
		return nil, errs.LastError("GetLogicalDriveStrings")
	}

	var names []string

	for i := 0; i < len(buf)-2; {
		name := syscall.UTF16ToString(buf[i:])
		names = append(names, name)
		i += len(name) + 1
	}

	return names, nil
}
