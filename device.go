package shellicon

// Handle types for the graphics objects the pipeline touches. The zero
// value is the null handle.
type (
	// DC is a device context, a drawing surface used here only to
	// mediate pixel transfer.
	DC uintptr

	// Bitmap is one of the two bitmaps an icon is composed of.
	Bitmap uintptr

	// Icon is a rasterized shell icon.
	Icon uintptr
)

// IconInfo describes an icon: its hotspot and its color and transparency
// mask bitmaps. Querying it allocates the two bitmap handles, which the
// receiver of the info owns and must delete.
type IconInfo struct {
	HotspotX int
	HotspotY int
	Color    Bitmap
	Mask     Bitmap
}

// Device is the narrow doorway between the extraction pipeline and the
// platform graphics subsystem. The production implementation calls GDI;
// tests substitute a fake so the pipeline runs without a windowing
// environment. Implementations need not be safe for concurrent use.
type Device interface {
	// IconInfo queries extended icon information for icon.
	IconInfo(icon Icon) (IconInfo, error)

	// CompatibleDC creates a device context compatible with ref. A zero
	// ref means the display.
	CompatibleDC(ref DC) (DC, error)

	// DeleteDC releases a device context created by CompatibleDC.
	DeleteDC(dc DC) error

	// SelectBitmap selects bmp into dc and returns the previously
	// selected bitmap.
	SelectBitmap(dc DC, bmp Bitmap) (Bitmap, error)

	// DeleteBitmap deletes a bitmap handle.
	DeleteBitmap(bmp Bitmap) error

	// ReadPixels copies the pixels of bmp, which must be selected into
	// dc, into dst as top-down rows of 32-bit samples in the platform's
	// native channel order. It returns the bit depth the platform
	// reports for the transfer, which the caller must verify is 32
	// before interpreting dst.
	ReadPixels(dc DC, bmp Bitmap, width, height int, dst []byte) (bitCount int, err error)
}
