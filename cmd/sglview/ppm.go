// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"os"
)

// writePPM writes a row-major 3*w*h float32 RGB buffer (channels in
// [0,1]) as a binary PPM (P6) image at path.
func writePPM(path string, w, h int, rgb []float32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sglview: create %s: %w", path, err)
	}
	defer f.Close()

	out := bufio.NewWriter(f)
	fmt.Fprintf(out, "P6\n%d %d\n255\n", w, h)
	buf := make([]byte, w*h*3)
	for i, c := range rgb {
		buf[i] = toByte(c)
	}
	if _, err := out.Write(buf); err != nil {
		return fmt.Errorf("sglview: write %s: %w", path, err)
	}
	return out.Flush()
}

func toByte(c float32) byte {
	switch {
	case c <= 0:
		return 0
	case c >= 1:
		return 255
	default:
		return byte(c * 255)
	}
}
