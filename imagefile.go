package swrast

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func SupportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff":
		return true
	}
	return false
}

// EncodeImage writes img in the format named by ext (".png", ".jpg",
// ".jpeg", ".bmp", ".tif" or ".tiff").
func EncodeImage(w io.Writer, ext string, img image.Image) error {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case ".bmp":
		return bmp.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("extension %q: %w", ext, ErrUnsupportedFormat)
}

// SaveImage encodes img into fileName, picking the encoder from its
// extension.
func SaveImage(fileName string, img image.Image) (err error) {
	ext := filepath.Ext(fileName)
	if !SupportedExtension(ext) {
		return fmt.Errorf("extension %q: %w", ext, ErrUnsupportedFormat)
	}

	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("could not create image file %s: %w", fileName, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", fileName, cerr)
		}
	}()

	if err := EncodeImage(file, ext, img); err != nil {
		return fmt.Errorf("encoding %s: %w", fileName, err)
	}
	return nil
}
