// Copyright 2024 The Geomgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geomgen

// CreateBox generates a box centered at the origin with the given
// dimensions. Each of the 6 faces carries its own 4 vertices so that every
// face has a correct flat normal, tangent, and [0,1] UV mapping; the base
// 12 triangles are then refined numSubdivisions times (clamped to 6).
func CreateBox(width, height, depth float32, numSubdivisions int) *MeshData {
	w2 := 0.5 * width
	h2 := 0.5 * height
	d2 := 0.5 * depth

	md := &MeshData{}
	md.Vertices = []Vertex{
		// front face (-z)
		V(-w2, -h2, -d2, 0, 0, -1, 1, 0, 0, 0, 1),
		V(-w2, +h2, -d2, 0, 0, -1, 1, 0, 0, 0, 0),
		V(+w2, +h2, -d2, 0, 0, -1, 1, 0, 0, 1, 0),
		V(+w2, -h2, -d2, 0, 0, -1, 1, 0, 0, 1, 1),
		// back face (+z)
		V(-w2, -h2, +d2, 0, 0, 1, -1, 0, 0, 1, 1),
		V(+w2, -h2, +d2, 0, 0, 1, -1, 0, 0, 0, 1),
		V(+w2, +h2, +d2, 0, 0, 1, -1, 0, 0, 0, 0),
		V(-w2, +h2, +d2, 0, 0, 1, -1, 0, 0, 1, 0),
		// top face (+y)
		V(-w2, +h2, -d2, 0, 1, 0, 1, 0, 0, 0, 1),
		V(-w2, +h2, +d2, 0, 1, 0, 1, 0, 0, 0, 0),
		V(+w2, +h2, +d2, 0, 1, 0, 1, 0, 0, 1, 0),
		V(+w2, +h2, -d2, 0, 1, 0, 1, 0, 0, 1, 1),
		// bottom face (-y)
		V(-w2, -h2, -d2, 0, -1, 0, -1, 0, 0, 1, 1),
		V(+w2, -h2, -d2, 0, -1, 0, -1, 0, 0, 0, 1),
		V(+w2, -h2, +d2, 0, -1, 0, -1, 0, 0, 0, 0),
		V(-w2, -h2, +d2, 0, -1, 0, -1, 0, 0, 1, 0),
		// left face (-x)
		V(-w2, -h2, +d2, -1, 0, 0, 0, 0, -1, 0, 1),
		V(-w2, +h2, +d2, -1, 0, 0, 0, 0, -1, 0, 0),
		V(-w2, +h2, -d2, -1, 0, 0, 0, 0, -1, 1, 0),
		V(-w2, -h2, -d2, -1, 0, 0, 0, 0, -1, 1, 1),
		// right face (+x)
		V(+w2, -h2, -d2, 1, 0, 0, 0, 0, 1, 0, 1),
		V(+w2, +h2, -d2, 1, 0, 0, 0, 0, 1, 0, 0),
		V(+w2, +h2, +d2, 1, 0, 0, 0, 0, 1, 1, 0),
		V(+w2, -h2, +d2, 1, 0, 0, 0, 0, 1, 1, 1),
	}

	md.Indices32 = []uint32{
		0, 1, 2, 0, 2, 3, // front
		4, 5, 6, 4, 6, 7, // back
		8, 9, 10, 8, 10, 11, // top
		12, 13, 14, 12, 14, 15, // bottom
		16, 17, 18, 16, 18, 19, // left
		20, 21, 22, 20, 22, 23, // right
	}

	subdivideN(md, numSubdivisions)
	return md
}
