// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Command sglview is used to demonstrate and smoke-test the sgl
// rendering core. Examples are run using:
//
//	sglview [example name]
//
// Invoking sglview without parameters lists the examples that can be run.
package main

import (
	"fmt"
	"log/slog"
	"os"
)

// example combines example code with a description, following the
// teacher's eg.go dispatch-table convention.
type example struct {
	tag         string
	description string
	function    func() error
}

func main() {
	examples := []example{
		{"pixel", "pixel: single red pixel via begin/end POINTS", pixel},
		{"occlude", "occlude: depth-test occlusion between two triangles", occlude},
		{"line", "line: Bresenham line endpoints", line},
		{"circle", "circle: scaled midpoint circle under a push/scale/pop", circle},
		{"sphere", "sphere: ray-traced sphere with a point light and shadow", sphere},
		{"refract", "refract: refractive sphere over a solid background", refract},
	}

	for _, arg := range os.Args[1:] {
		for _, eg := range examples {
			if arg == eg.tag {
				if err := eg.function(); err != nil {
					slog.Error("sglview: example failed", "example", eg.tag, "err", err)
					os.Exit(1)
				}
				return
			}
		}
	}

	fmt.Println("Usage: sglview [example]")
	fmt.Println("Examples are:")
	for _, eg := range examples {
		fmt.Printf("   %s\n", eg.description)
	}
}
