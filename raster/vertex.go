// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package raster

import "github.com/galvanized-logic/sgl/lin"

// Vertex is a pixel-space point (already run through PVM and
// perspective-divided) carried alongside its depth value.
type Vertex struct {
	X, Y float32
	Z    float32
}

// Color is an RGB draw color; a thin alias kept local to raster so
// this package only depends on lin, not on the scene/material model.
type Color = lin.Vec3
