// Image loading and saving
package io

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

var supportedFormats = []string{".jpg", ".jpeg", ".png", ".tiff", ".tif", ".bmp", ".webp"}

// ImageLoader handles image file operations
type ImageLoader struct {
	resourceDir string
	logger      *logrus.Entry
}

// NewImageLoader creates a loader resolving bare names against resourceDir.
func NewImageLoader(resourceDir string, logger *logrus.Entry) *ImageLoader {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &ImageLoader{
		resourceDir: resourceDir,
		logger:      logger,
	}
}

func (il *ImageLoader) LoadImage(path string) (image.Image, error) {
	il.logger.WithField("filepath", path).Debug("Loading image")

	if !isSupportedImageFormat(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("invalid image dimensions: %dx%d", bounds.Dx(), bounds.Dy())
	}

	il.logger.WithFields(logrus.Fields{
		"filepath": path,
		"format":   format,
		"width":    bounds.Dx(),
		"height":   bounds.Dy(),
	}).Info("Image loaded successfully")

	return img, nil
}

// LoadNamed resolves name inside the resource directory. A name without an
// extension is tried with every supported extension in turn.
func (il *ImageLoader) LoadNamed(name string) (image.Image, error) {
	if filepath.Ext(name) != "" {
		return il.LoadImage(filepath.Join(il.resourceDir, name))
	}

	for _, ext := range supportedFormats {
		candidate := filepath.Join(il.resourceDir, name+ext)
		if _, err := os.Stat(candidate); err == nil {
			return il.LoadImage(candidate)
		}
	}

	return nil, fmt.Errorf("image %q not found in %s: %w", name, il.resourceDir, os.ErrNotExist)
}

func (il *ImageLoader) SaveImage(img image.Image, path string) error {
	il.logger.WithField("filepath", path).Debug("Saving image")

	if img == nil || img.Bounds().Empty() {
		return fmt.Errorf("cannot save empty image")
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !isSupportedImageFormat(path) || ext == ".webp" {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	switch ext {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
	case ".tif", ".tiff":
		err = tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate})
	case ".bmp":
		err = bmp.Encode(f, img)
	default:
		err = png.Encode(f, img)
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	il.logger.WithFields(logrus.Fields{
		"filepath": path,
		"width":    img.Bounds().Dx(),
		"height":   img.Bounds().Dy(),
	}).Info("Image saved successfully")

	return nil
}

// GetSupportedFormats lists the formats LoadImage accepts
func (il *ImageLoader) GetSupportedFormats() []string {
	return []string{"JPEG", "PNG", "TIFF", "BMP", "WebP"}
}

func isSupportedImageFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range supportedFormats {
		if ext == format {
			return true
		}
	}
	return false
}

// Open loads ref as a file path when it exists, otherwise as a named
// resource. An empty ref yields the sample image at the given size.
func (il *ImageLoader) Open(ref string, sampleWidth, sampleHeight int) (image.Image, error) {
	if ref == "" {
		il.logger.Debug("No image configured, using sample image")
		return SampleImage(sampleWidth, sampleHeight), nil
	}
	if _, err := os.Stat(ref); err == nil {
		return il.LoadImage(ref)
	}
	return il.LoadNamed(ref)
}
