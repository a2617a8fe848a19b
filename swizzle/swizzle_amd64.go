// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build gc && !noasm
// +build gc,!noasm

package swizzle

import "golang.org/x/sys/cpu"

// PSHUFB was introduced with SSSE3.
var haveSIMD16 = cpu.X86.HasSSSE3

//go:noescape
func bgra16(p []byte)
