// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "math"

// Epsilon is used to distinguish when a float32 is close enough to a
// number to be considered equal.
const Epsilon float32 = 1e-5

// AeqZ (~=) returns true if f is close enough to zero not to matter.
func AeqZ(f float32) bool { return float32(math.Abs(float64(f))) < Epsilon }

// Aeq (~=) returns true if a and b are close enough not to matter.
func Aeq(a, b float32) bool { return AeqZ(a - b) }

// Vec3Aeq returns true if v and w are componentwise almost-equal.
func Vec3Aeq(v, w Vec3) bool { return Aeq(v.X, w.X) && Aeq(v.Y, w.Y) && Aeq(v.Z, w.Z) }

// Mat4Aeq returns true if m and n are elementwise almost-equal.
func Mat4Aeq(m, n Mat4) bool {
	for c := 0; c < 4; c++ {
		if !Aeq(m.Col[c].X, n.Col[c].X) || !Aeq(m.Col[c].Y, n.Col[c].Y) ||
			!Aeq(m.Col[c].Z, n.Col[c].Z) || !Aeq(m.Col[c].W, n.Col[c].W) {
			return false
		}
	}
	return true
}
