// Copyright 2011 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows
// +build windows

package errs

import (
	"fmt"

	"github.com/Gipcomp/win32/kernel32"
	"github.com/Gipcomp/win32/win"
)

func LastError(win32FuncName string) error {
	if errno := kernel32.GetLastError(); errno != kernel32.ERROR_SUCCESS {
		return NewError(KindUnknown, fmt.Sprintf("%s: Error %d", win32FuncName, errno))
	}

	return NewError(KindUnknown, win32FuncName)
}

func ErrorFromHRESULT(funcName string, hr win.HRESULT) error {
	return NewError(KindUnknown, fmt.Sprintf("%s: Error %d", funcName, hr))
}
