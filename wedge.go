// Copyright 2024 The Geomgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geomgen

import "cogentcore.org/core/math32"

// CreateWedge generates a wedge (right triangular ramp) centered at the
// origin: a box with the front face removed and replaced by a slanted quad
// rising from the front bottom edge (z = -depth/2) to the back top edge
// (z = +depth/2). Width runs along x. The 5 faces (bottom, back, slant,
// two triangular sides) are refined numSubdivisions times.
func CreateWedge(height, width, depth float32, numSubdivisions int) *MeshData {
	w2 := 0.5 * width
	h2 := 0.5 * height
	d2 := 0.5 * depth

	md := &MeshData{}

	// bottom (-y)
	addQuad(md,
		math32.Vec3(+w2, -h2, -d2),
		math32.Vec3(+w2, -h2, +d2),
		math32.Vec3(-w2, -h2, +d2),
		math32.Vec3(-w2, -h2, -d2))

	// back (+z)
	addQuad(md,
		math32.Vec3(+w2, -h2, +d2),
		math32.Vec3(+w2, +h2, +d2),
		math32.Vec3(-w2, +h2, +d2),
		math32.Vec3(-w2, -h2, +d2))

	// slanted top, facing up and toward -z
	addQuad(md,
		math32.Vec3(-w2, -h2, -d2),
		math32.Vec3(-w2, +h2, +d2),
		math32.Vec3(+w2, +h2, +d2),
		math32.Vec3(+w2, -h2, -d2))

	// triangular sides (-x, +x)
	addTri(md,
		math32.Vec3(-w2, -h2, -d2),
		math32.Vec3(-w2, -h2, +d2),
		math32.Vec3(-w2, +h2, +d2))
	addTri(md,
		math32.Vec3(+w2, -h2, +d2),
		math32.Vec3(+w2, -h2, -d2),
		math32.Vec3(+w2, +h2, +d2))

	subdivideN(md, numSubdivisions)
	return md
}
