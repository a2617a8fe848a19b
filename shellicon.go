// Package shellicon fetches the icons the Windows shell associates with
// filesystem paths and converts them into RGBA pixel buffers.
//
// The conversion pipeline (Extract) talks to the graphics subsystem only
// through the narrow Device interface, so it compiles and tests on every
// platform. The resolution layer (FetchIcon, FetchImage) and the
// production Device are Windows-only.
package shellicon

// SizeClass selects which of the shell's system image lists an icon is
// fetched from. The values are the native image list identifiers and are
// passed through to the shell uninterpreted.
type SizeClass int32

const (
	SizeSmall      SizeClass = 0x0 // 16x16
	SizeLarge      SizeClass = 0x1 // 32x32
	SizeExtraLarge SizeClass = 0x2 // 48x48
	SizeJumbo      SizeClass = 0x4 // 256x256, Windows Vista and later
)
