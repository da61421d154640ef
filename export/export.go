// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package export encodes rendered frames to image files.
//
// PNG and JPEG come from the standard library, BMP and TIFF from
// golang.org/x/image. The format is chosen explicitly with WithFormat
// or inferred from the output path by WriteFile.
package export

import (
	"errors"
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

// ErrUnsupportedFormat is returned for formats this package cannot
// encode and for paths whose extension matches no known format.
var ErrUnsupportedFormat = errors.New("export: unsupported format")

// Format identifies an output encoding.
type Format int

const (
	// FormatPNG is lossless and keeps the alpha channel. The default.
	FormatPNG Format = iota

	// FormatJPEG is lossy and drops the alpha channel.
	FormatJPEG

	// FormatBMP is lossless and uncompressed.
	FormatBMP

	// FormatTIFF is lossless, deflate-compressed unless
	// WithTIFFUncompressed is given.
	FormatTIFF
)

// String returns the canonical lower-case format name.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// FormatFromPath infers the output format from a file extension.
// Recognized: .png, .jpg, .jpeg, .bmp, .tif, .tiff.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	}
	return FormatPNG, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Option configures encoding.
type Option func(*options)

type options struct {
	format      Format
	formatSet   bool
	jpegQuality int
	tiffDeflate bool
}

func defaultOptions() options {
	return options{
		format:      FormatPNG,
		jpegQuality: jpeg.DefaultQuality,
		tiffDeflate: true,
	}
}

// WithFormat selects the output encoding explicitly. WriteFile then
// ignores the path extension.
func WithFormat(f Format) Option {
	return func(o *options) {
		o.format = f
		o.formatSet = true
	}
}

// WithJPEGQuality sets the JPEG quality, clamped to 1-100.
// The default is jpeg.DefaultQuality.
func WithJPEGQuality(q int) Option {
	return func(o *options) {
		if q < 1 {
			q = 1
		}
		if q > 100 {
			q = 100
		}
		o.jpegQuality = q
	}
}

// WithTIFFUncompressed disables deflate compression for TIFF output.
func WithTIFFUncompressed() Option {
	return func(o *options) {
		o.tiffDeflate = false
	}
}

// Encode writes img to w in the configured format, PNG by default.
func Encode(w io.Writer, img image.Image, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return encode(w, img, o)
}

func encode(w io.Writer, img image.Image, o options) error {
	switch o.format {
	case FormatPNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("export: encode PNG: %w", err)
		}
	case FormatJPEG:
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: o.jpegQuality}); err != nil {
			return fmt.Errorf("export: encode JPEG: %w", err)
		}
	case FormatBMP:
		if err := bmp.Encode(w, img); err != nil {
			return fmt.Errorf("export: encode BMP: %w", err)
		}
	case FormatTIFF:
		topt := &tiff.Options{}
		if o.tiffDeflate {
			topt.Compression = tiff.Deflate
			topt.Predictor = true
		}
		if err := tiff.Encode(w, img, topt); err != nil {
			return fmt.Errorf("export: encode TIFF: %w", err)
		}
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, o.format)
	}
	return nil
}

// WriteFile encodes img to the file at path. Unless WithFormat is
// given, the format is inferred from the path extension.
func WriteFile(path string, img image.Image, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.formatSet {
		f, err := FormatFromPath(path)
		if err != nil {
			return err
		}
		o.format = f
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("export: create file: %w", err)
	}
	if err := encode(f, img, o); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
