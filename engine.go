package main

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	ico "github.com/sergeymakinen/go-ico"
	"golang.org/x/image/bmp"
)

// jpegQuality is used for all JPEG exports.
const jpegQuality = 90

// ColorMode describes the pixel layout of a decoded image, in the terms
// the info display shows.
type ColorMode string

const (
	ModeRGB     ColorMode = "RGB"
	ModeRGBA    ColorMode = "RGBA"
	ModeGray    ColorMode = "Gray"
	ModeIndexed ColorMode = "Indexed"
)

// HasAlpha reports whether the mode carries an alpha channel.
func (m ColorMode) HasAlpha() bool {
	return m == ModeRGBA
}

// ImageAsset is one decoded image file. Pixels holds the original decoded
// buffer and is never mutated; transforms always derive a new buffer from
// it, so repeated rotate/flip operations cannot accumulate damage.
type ImageAsset struct {
	Path   string
	Pixels image.Image
	Width  int
	Height int
	Mode   ColorMode
}

func detectColorMode(img image.Image) ColorMode {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16:
		return ModeGray
	case *image.Paletted:
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a < 0xffff {
				return ModeRGBA
			}
		}
		return ModeIndexed
	case *image.YCbCr, *image.CMYK:
		return ModeRGB
	default:
		return ModeRGBA
	}
}

// DecodeImage loads the file at path into an ImageAsset.
func DecodeImage(path string) (*ImageAsset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnsupportedImage, path, err)
	}
	defer f.Close()

	var img image.Image
	if strings.EqualFold(filepath.Ext(path), ".ico") {
		img, err = ico.Decode(f)
	} else {
		img, _, err = image.Decode(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnsupportedImage, path, err)
	}

	bounds := img.Bounds()
	return &ImageAsset{
		Path:   path,
		Pixels: img,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Mode:   detectColorMode(img),
	}, nil
}

// RenderTransform produces a new buffer by applying t to the asset's
// original pixels. Flips happen first, in the unrotated frame, then the
// rotation; the flip axes therefore always refer to the orientation the
// file was loaded in. Pure: the asset is never modified.
func RenderTransform(asset *ImageAsset, t Transform) image.Image {
	if t.IsIdentity() {
		return asset.Pixels
	}

	var buf image.Image = asset.Pixels
	if t.FlipH {
		buf = imaging.FlipH(buf)
	}
	if t.FlipV {
		buf = imaging.FlipV(buf)
	}

	// imaging rotates counter-clockwise; RotationSteps counts clockwise.
	switch t.RotationSteps {
	case 1:
		buf = imaging.Rotate270(buf)
	case 2:
		buf = imaging.Rotate180(buf)
	case 3:
		buf = imaging.Rotate90(buf)
	}
	return buf
}

// stripAlpha returns a copy of img with the alpha channel forced opaque.
// The color channels are kept as-is (straight alpha), not blended against
// a background.
func stripAlpha(img image.Image) *image.NRGBA {
	c := imaging.Clone(img)
	for i := 3; i < len(c.Pix); i += 4 {
		c.Pix[i] = 0xff
	}
	return c
}

// EncodeImage writes img to outPath, choosing the codec from the path's
// extension. JPEG cannot represent an alpha channel, so when mode carries
// one the buffer is converted to an opaque copy first.
func EncodeImage(img image.Image, mode ColorMode, outPath string) error {
	var encode func(f *os.File) error

	switch strings.ToLower(filepath.Ext(outPath)) {
	case ".jpg", ".jpeg":
		if mode.HasAlpha() {
			img = stripAlpha(img)
		}
		encode = func(f *os.File) error {
			return jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality})
		}
	case ".png":
		encode = func(f *os.File) error { return png.Encode(f, img) }
	case ".bmp":
		encode = func(f *os.File) error { return bmp.Encode(f, img) }
	case ".gif":
		encode = func(f *os.File) error { return gif.Encode(f, img, nil) }
	case ".ico":
		encode = func(f *os.File) error { return ico.Encode(f, img) }
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedSaveFormat, filepath.Ext(outPath))
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailed, outPath, err)
	}

	if err := encode(f); err != nil {
		f.Close()
		os.Remove(outPath)
		return fmt.Errorf("%w: %s: %v", ErrWriteFailed, outPath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailed, outPath, err)
	}
	return nil
}
