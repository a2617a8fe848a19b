//go:build windows
// +build windows

// Command icondump saves the shell icon of a file, folder or drive as an
// image file.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gipcomp/shellicon"
	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	ico "github.com/sergeymakinen/go-ico"
	"golang.org/x/image/bmp"
)

var (
	sizeFlag    = flag.String("size", "l", "icon size class: s, l, xl or jumbo")
	widthFlag   = flag.Uint("w", 0, "resize the output to this width, 0 keeps the native size")
	outFlag     = flag.String("o", "", "output file, format chosen by extension (.png, .bmp, .ico)")
	montageFlag = flag.Bool("montage", false, "dump all four size classes side by side")
	drivesFlag  = flag.Bool("drives", false, "dump the icon of every logical drive")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: icondump [-size s|l|xl|jumbo] [-w WIDTH] [-o FILE] [-montage] PATH")
		fmt.Fprintln(os.Stderr, "       icondump [-size s|l|xl|jumbo] [-w WIDTH] -drives")
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "icondump:", err)
		os.Exit(1)
	}
}

func run() error {
	size, err := parseSize(*sizeFlag)
	if err != nil {
		return err
	}

	if *drivesFlag {
		if *montageFlag || flag.NArg() != 0 {
			flag.Usage()
		}
		return dumpDrives(size)
	}

	if flag.NArg() != 1 {
		flag.Usage()
	}
	path := flag.Arg(0)

	var img image.Image
	if *montageFlag {
		img, err = montage(path)
	} else {
		var im *shellicon.Image
		if im, err = shellicon.FetchImage(path, size); err == nil {
			img = im.RGBA()
		}
	}
	if err != nil {
		return err
	}

	if *widthFlag > 0 {
		img = resize.Resize(*widthFlag, 0, img, resize.Lanczos3)
	}

	out := *outFlag
	if out == "" {
		out = defaultOutName(path, size, *montageFlag)
	}
	if err := writeImage(out, img); err != nil {
		return err
	}

	fmt.Println("saved", out)
	return nil
}

// dumpDrives saves one icon per mounted volume. Volumes whose icon does
// not resolve are reported and skipped.
func dumpDrives(size shellicon.SizeClass) error {
	drives, err := shellicon.DriveNames()
	if err != nil {
		return err
	}

	for _, drive := range drives {
		im, err := shellicon.FetchImage(drive, size)
		if err != nil {
			fmt.Fprintf(os.Stderr, "icondump: %s: %v\n", drive, err)
			continue
		}

		var img image.Image = im.RGBA()
		if *widthFlag > 0 {
			img = resize.Resize(*widthFlag, 0, img, resize.Lanczos3)
		}

		out := strings.TrimRight(drive, `:\`) + sizeSuffix(size) + ".png"
		if err := writeImage(out, img); err != nil {
			return err
		}
		fmt.Println("saved", out)
	}

	return nil
}

func parseSize(s string) (shellicon.SizeClass, error) {
	switch strings.ToLower(s) {
	case "s", "small":
		return shellicon.SizeSmall, nil
	case "l", "large":
		return shellicon.SizeLarge, nil
	case "xl", "extralarge":
		return shellicon.SizeExtraLarge, nil
	case "jumbo":
		return shellicon.SizeJumbo, nil
	}

	return 0, fmt.Errorf("unknown size class %q", s)
}

// montage fetches every size class of the icon and lays them out bottom
// aligned on one transparent canvas, largest first.
func montage(path string) (image.Image, error) {
	const gap = 8

	var (
		images []*image.RGBA
		width  int
		height int
	)
	for _, size := range []shellicon.SizeClass{shellicon.SizeJumbo, shellicon.SizeExtraLarge, shellicon.SizeLarge, shellicon.SizeSmall} {
		im, err := shellicon.FetchImage(path, size)
		if err != nil {
			return nil, err
		}

		images = append(images, im.RGBA())
		width += im.Width + gap
		if im.Height > height {
			height = im.Height
		}
	}
	width -= gap

	dc := gg.NewContext(width, height)
	dc.SetColor(color.RGBA{0, 0, 0, 0})
	dc.Clear()

	x := 0
	for _, im := range images {
		dc.DrawImage(im, x, height-im.Rect.Dy())
		x += im.Rect.Dx() + gap
	}

	return dc.Image(), nil
}

func defaultOutName(path string, size shellicon.SizeClass, montage bool) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" {
		name = "icon"
	}

	if montage {
		return name + "_montage.png"
	}

	return name + sizeSuffix(size) + ".png"
}

func sizeSuffix(size shellicon.SizeClass) string {
	switch size {
	case shellicon.SizeSmall:
		return "_16"
	case shellicon.SizeExtraLarge:
		return "_48"
	case shellicon.SizeJumbo:
		return "_256"
	}

	return "_32"
}

func writeImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return bmp.Encode(f, img)
	case ".ico":
		return ico.Encode(f, img)
	}

	return png.Encode(f, img)
}
