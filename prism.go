// Copyright 2024 The Geomgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geomgen

import "cogentcore.org/core/math32"

// CreateTriangularPrism generates a triangular prism centered at the
// origin: a wedge whose ridge sits at the middle of the depth rather than
// at the back, giving two symmetric slanted faces that meet at the top
// edge (y = +height/2, z = 0). Width runs along x. The 5 faces (bottom,
// two slants, two triangular ends) are refined numSubdivisions times.
func CreateTriangularPrism(height, width, depth float32, numSubdivisions int) *MeshData {
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

	// front slant, facing up and toward -z
	addQuad(md,
		math32.Vec3(-w2, -h2, -d2),
		math32.Vec3(-w2, +h2, 0),
		math32.Vec3(+w2, +h2, 0),
		math32.Vec3(+w2, -h2, -d2))

	// back slant, facing up and toward +z
	addQuad(md,
		math32.Vec3(+w2, -h2, +d2),
		math32.Vec3(+w2, +h2, 0),
		math32.Vec3(-w2, +h2, 0),
		math32.Vec3(-w2, -h2, +d2))

	// triangular ends (-x, +x)
	addTri(md,
		math32.Vec3(-w2, -h2, -d2),
		math32.Vec3(-w2, -h2, +d2),
		math32.Vec3(-w2, +h2, 0))
	addTri(md,
		math32.Vec3(+w2, -h2, +d2),
		math32.Vec3(+w2, -h2, -d2),
		math32.Vec3(+w2, +h2, 0))

	subdivideN(md, numSubdivisions)
	return md
}
