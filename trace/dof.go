// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package trace

import (
	"math"

	"github.com/galvanized-logic/sgl/lin"
	"github.com/galvanized-logic/sgl/scene"
)

// dofColor renders pixel (px,py) with a thin-lens depth-of-field
// approximation: the sharp focal point is found along the primary
// ray, then DOFRays jittered rays are cast from nearby pixel
// positions toward that same focal point and averaged. Jittered rays
// are cast at depth 1, one recursion level below the primary ray they
// replace; depth-of-field sampling itself is started only by
// TraceFrame, never by castRay.
func (tr *Tracer) dofColor(px, py float32, w, h int, invPVM, invModelView lin.Mat4) lin.Vec3 {
	primary, pWorld, origin := primaryRay(px, py, w, h, invPVM, invModelView)
	focalDist := lin.Distance(pWorld, origin) * (1 + tr.Config.FocalLength)
	focalPoint := origin.Add(primary.Dir.Scale(focalDist))

	half := int(math.Sqrt(float64(tr.Config.Aperture)) / 2)

	var sum lin.Vec3
	for i := 0; i < tr.Config.DOFRays; i++ {
		jx := px + float32(tr.rng.Intn(2*half+1)-half)
		jy := py + float32(tr.rng.Intn(2*half+1)-half)

		ndcX, ndcY := pixelToNDC(jx, jy, w, h)
		clip := lin.V4(ndcX, ndcY, -1, 1)
		jOrigin := invPVM.MulV(clip).PerspectiveDivide().Vec3()
		jDir := focalPoint.Sub(jOrigin).Unit()

		sum = sum.Add(tr.castRay(scene.Ray{Origin: jOrigin, Dir: jDir}, 1, Normal))
	}
	return sum.Scale(1 / float32(tr.Config.DOFRays))
}
