// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package texfile decodes image files into the plain RGB float32
// buffers sgl.Context.EnvironmentMap and scene.NewTexture consume. It
// is a convenience call site only — neither sgl nor sgl/scene imports
// it; they depend solely on the decoded []float32 buffer, matching
// spec.md §1's "image loader" collaborator, specified there only by
// the interface it must satisfy ("decode RGB8 from a path").
package texfile

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// Load decodes the image at path into a row-major W*H*3 float32 RGB
// buffer with channels normalized to [0,1]. The format is chosen by
// file extension: .png uses image/png (grounded on the teacher's own
// load/png.go decode-from-reader helper); .bmp uses
// golang.org/x/image/bmp, reusing the golang.org/x/image dependency
// the teacher already carries for load/ttf.go's font atlas decoding.
func Load(path string) (w, h int, rgb []float32, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("texfile: open %s: %w", path, err)
	}
	defer f.Close()

	var img image.Image
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		img, err = png.Decode(f)
	case ".bmp":
		img, err = bmp.Decode(f)
	default:
		return 0, 0, nil, fmt.Errorf("texfile: unsupported image extension %q", filepath.Ext(path))
	}
	if err != nil {
		return 0, 0, nil, fmt.Errorf("texfile: decode %s: %w", path, err)
	}

	return decodeRGB(img)
}

// decodeRGB converts img into the row-major W*H*3 float32 RGB buffer
// shared by scene.Texture and Context.EnvironmentMap.
func decodeRGB(img image.Image) (w, h int, rgb []float32, err error) {
	bounds := img.Bounds()
	w, h = bounds.Dx(), bounds.Dy()
	rgb = make([]float32, w*h*3)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			rgb[i] = float32(r) / 65535
			rgb[i+1] = float32(g) / 65535
			rgb[i+2] = float32(b) / 65535
			i += 3
		}
	}
	return w, h, rgb, nil
}
