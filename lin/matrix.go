// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Mat4 is a column-major 4x4 matrix: Col[i] is the i'th column, and
// Col[i][j] is row j of column i. Multiplication follows v' = M*v.
// Column-major storage lets external callers pass and receive flat
// 16-float arrays the way GL-style APIs expect (translation in
// elements 12-14).
type Mat4 struct {
	Col [4]Vec4
}

// Identity4 is the 4x4 identity matrix.
var Identity4 = Mat4{Col: [4]Vec4{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
}}

// At returns element (row, col).
func (m Mat4) At(row, col int) float32 { return m.Col[col].index(row) }

func (v Vec4) index(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		return v.W
	}
}

// FromColumnMajor builds a Mat4 from a 16-float column-major slice,
// the marshalling format expected by the load_matrix/mult_matrix
// entry points.
func FromColumnMajor(f [16]float32) Mat4 {
	var m Mat4
	for c := 0; c < 4; c++ {
		m.Col[c] = Vec4{f[c*4], f[c*4+1], f[c*4+2], f[c*4+3]}
	}
	return m
}

// ColumnMajor returns m as a flat 16-float column-major array.
func (m Mat4) ColumnMajor() [16]float32 {
	var f [16]float32
	for c := 0; c < 4; c++ {
		f[c*4], f[c*4+1], f[c*4+2], f[c*4+3] = m.Col[c].X, m.Col[c].Y, m.Col[c].Z, m.Col[c].W
	}
	return f
}

// Mul returns m * n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var r Mat4
	for c := 0; c < 4; c++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m.At(row, k) * n.At(k, c)
			}
			r.Col[c] = setIndex(r.Col[c], row, sum)
		}
	}
	return r
}

func setIndex(v Vec4, i int, f float32) Vec4 {
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	case 2:
		v.Z = f
	default:
		v.W = f
	}
	return v
}

// MulV returns M*v.
func (m Mat4) MulV(v Vec4) Vec4 {
	return Vec4{
		X: m.At(0, 0)*v.X + m.At(0, 1)*v.Y + m.At(0, 2)*v.Z + m.At(0, 3)*v.W,
		Y: m.At(1, 0)*v.X + m.At(1, 1)*v.Y + m.At(1, 2)*v.Z + m.At(1, 3)*v.W,
		Z: m.At(2, 0)*v.X + m.At(2, 1)*v.Y + m.At(2, 2)*v.Z + m.At(2, 3)*v.W,
		W: m.At(3, 0)*v.X + m.At(3, 1)*v.Y + m.At(3, 2)*v.Z + m.At(3, 3)*v.W,
	}
}

// Transpose returns the transpose of m.
func (m Mat4) Transpose() Mat4 {
	var r Mat4
	for c := 0; c < 4; c++ {
		for row := 0; row < 4; row++ {
			r.Col[row] = setIndex(r.Col[row], c, m.At(row, c))
		}
	}
	return r
}

// UpperLeft2x2Det returns the determinant of the top-left 2x2 block
// of m, used by the circle rasterizer to derive a scalar pixel-space
// radius from the combined PVM.
func (m Mat4) UpperLeft2x2Det() float32 {
	return m.At(0, 0)*m.At(1, 1) - m.At(0, 1)*m.At(1, 0)
}

// Inverse returns the inverse of m computed via Gauss-Jordan
// elimination with full (row and column) pivoting, and whether m was
// invertible. Full pivoting trades a little extra bookkeeping for
// better numerical stability than partial pivoting, which matters
// here since PVM inversion for ray generation is the dominant use.
func (m Mat4) Inverse() (Mat4, bool) {
	// Augment [m | I] as two parallel 4x4 arrays and reduce.
	var a, inv [4][4]float32
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			a[r][c] = m.At(r, c)
		}
	}
	for i := 0; i < 4; i++ {
		inv[i][i] = 1
	}

	colSwap := [4]int{0, 1, 2, 3}
	for k := 0; k < 4; k++ {
		// Find the largest-magnitude pivot in the untouched submatrix.
		pr, pc, best := k, k, float32(0)
		for r := k; r < 4; r++ {
			for c := k; c < 4; c++ {
				v := a[r][c]
				if v < 0 {
					v = -v
				}
				if v > best {
					best = v
					pr, pc = r, c
				}
			}
		}
		if best == 0 {
			return Mat4{}, false
		}
		if pr != k {
			a[k], a[pr] = a[pr], a[k]
			inv[k], inv[pr] = inv[pr], inv[k]
		}
		if pc != k {
			for r := 0; r < 4; r++ {
				a[r][pc], a[r][k] = a[r][k], a[r][pc]
			}
			colSwap[pc], colSwap[k] = colSwap[k], colSwap[pc]
		}

		piv := a[k][k]
		invPiv := 1 / piv
		for c := 0; c < 4; c++ {
			a[k][c] *= invPiv
			inv[k][c] *= invPiv
		}
		for r := 0; r < 4; r++ {
			if r == k {
				continue
			}
			f := a[r][k]
			if f == 0 {
				continue
			}
			for c := 0; c < 4; c++ {
				a[r][c] -= f * a[k][c]
				inv[r][c] -= f * inv[k][c]
			}
		}
	}

	// Undo the column pivoting: column swaps in a correspond to row
	// swaps in the result.
	var out Mat4
	var rows [4][4]float32
	for r := 0; r < 4; r++ {
		rows[colSwap[r]] = inv[r]
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out.Col[c] = setIndex(out.Col[c], r, rows[r][c])
		}
	}
	return out, true
}
