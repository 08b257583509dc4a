// Package iconimage rasterizes resolved icon files to square RGBA images.
package iconimage

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
)

// ErrUnsupportedFormat is returned for icon files that cannot be rasterized
var ErrUnsupportedFormat = errors.New("unsupported icon format")

// Render decodes the icon at path and draws it into a size x size image
func Render(path string, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid render size %d", size)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".svg":
		return renderSVG(f, size)
	case ".png":
		return renderPNG(f, size)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

func renderSVG(r io.Reader, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, fmt.Errorf("error decoding SVG file: %w", err)
	}

	icon.SetTarget(0, 0, float64(size), float64(size))
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

func renderPNG(r io.Reader, size int) (*image.RGBA, error) {
	src, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("error decoding PNG file: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	if src.Bounds().Dx() == size && src.Bounds().Dy() == size {
		draw.Draw(dst, dst.Rect, src, src.Bounds().Min, draw.Src)
		return dst, nil
	}
	draw.CatmullRom.Scale(dst, dst.Rect, src, src.Bounds(), draw.Over, nil)
	return dst, nil
}

// WritePNG encodes img to path, creating parent directories
func WritePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
