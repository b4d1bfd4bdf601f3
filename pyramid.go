// Copyright 2024 The Geomgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geomgen

import "cogentcore.org/core/math32"

// CreatePyramid generates a square pyramid (or frustum) centered at the
// origin: a bottomSide x bottomSide base at y = -height/2 and a
// topSide x topSide top at y = +height/2. A topSide of 0 gives a true
// pyramid with a single apex and triangular sides; otherwise the 4 sides
// are slanted quads and a flat top quad closes the frustum. The triangular
// sides are already minimal, so there is no subdivision parameter.
func CreatePyramid(bottomSide, topSide, height float32) *MeshData {
	b2 := 0.5 * bottomSide
	t2 := 0.5 * topSide
	h2 := 0.5 * height

	md := &MeshData{}

	// bottom (-y)
	addQuad(md,
		math32.Vec3(+b2, -h2, -b2),
		math32.Vec3(+b2, -h2, +b2),
		math32.Vec3(-b2, -h2, +b2),
		math32.Vec3(-b2, -h2, -b2))

	if topSide == 0 {
		apex := math32.Vec3(0, h2, 0)
		addTri(md, math32.Vec3(-b2, -h2, +b2), math32.Vec3(+b2, -h2, +b2), apex) // +z
		addTri(md, math32.Vec3(+b2, -h2, +b2), math32.Vec3(+b2, -h2, -b2), apex) // +x
		addTri(md, math32.Vec3(+b2, -h2, -b2), math32.Vec3(-b2, -h2, -b2), apex) // -z
		addTri(md, math32.Vec3(-b2, -h2, -b2), math32.Vec3(-b2, -h2, +b2), apex) // -x
		return md
	}

	// slanted side quads
	addQuad(md, // +z
		math32.Vec3(+b2, -h2, +b2),
		math32.Vec3(+t2, +h2, +t2),
		math32.Vec3(-t2, +h2, +t2),
		math32.Vec3(-b2, -h2, +b2))
	addQuad(md, // +x
		math32.Vec3(+b2, -h2, -b2),
		math32.Vec3(+t2, +h2, -t2),
		math32.Vec3(+t2, +h2, +t2),
		math32.Vec3(+b2, -h2, +b2))
	addQuad(md, // -z
		math32.Vec3(-b2, -h2, -b2),
		math32.Vec3(-t2, +h2, -t2),
		math32.Vec3(+t2, +h2, -t2),
		math32.Vec3(+b2, -h2, -b2))
	addQuad(md, // -x
		math32.Vec3(-b2, -h2, +b2),
		math32.Vec3(-t2, +h2, +t2),
		math32.Vec3(-t2, +h2, -t2),
		math32.Vec3(-b2, -h2, -b2))

	// top (+y)
	addQuad(md,
		math32.Vec3(-t2, +h2, -t2),
		math32.Vec3(-t2, +h2, +t2),
		math32.Vec3(+t2, +h2, +t2),
		math32.Vec3(+t2, +h2, -t2))

	return md
}
