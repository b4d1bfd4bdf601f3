// Copyright 2024 The Geomgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geomgen

// maxSubdivisions bounds refinement levels so a single call cannot
// allocate unboundedly (each level multiplies triangle count by 4).
const maxSubdivisions = 6

// MidPoint returns the vertex at the linear midpoint of the edge v0-v1:
// position and texture coordinate are averaged, normal and tangent are
// averaged and re-normalized to unit length. It is only meaningful for
// geometrically adjacent vertices, where linear interpolation is an
// acceptable approximation of the underlying surface.
func MidPoint(v0, v1 Vertex) Vertex {
	return Vertex{
		Position: v0.Position.Add(v1.Position).MulScalar(0.5),
		Normal:   v0.Normal.Add(v1.Normal).MulScalar(0.5).Normal(),
		TangentU: v0.TangentU.Add(v1.TangentU).MulScalar(0.5).Normal(),
		TexC:     v0.TexC.Add(v1.TexC).MulScalar(0.5),
	}
}

// Subdivide refines md in place by one level, replacing every triangle
// with 4: the three corner triangles plus the central triangle formed by
// the edge midpoints, preserving outward winding.
//
//	     v1
//	     *
//	    / \
//	m0 *---* m1
//	  / \ / \
//	 *---*---*
//	v0   m2   v2
//
// The 6 vertices of each refined triangle are emitted fresh, without
// deduplication against neighboring triangles, keeping the per-face
// duplication invariant of the generators.
func Subdivide(md *MeshData) {
	in := MeshData{Vertices: md.Vertices, Indices32: md.Indices32}

	numTris := len(in.Indices32) / 3
	md.Vertices = make([]Vertex, 0, numTris*6)
	md.Indices32 = make([]uint32, 0, numTris*12)
	md.indices16 = nil

	for i := 0; i < numTris; i++ {
		v0 := in.Vertices[in.Indices32[i*3+0]]
		v1 := in.Vertices[in.Indices32[i*3+1]]
		v2 := in.Vertices[in.Indices32[i*3+2]]

		m0 := MidPoint(v0, v1)
		m1 := MidPoint(v1, v2)
		m2 := MidPoint(v0, v2)

		md.Vertices = append(md.Vertices, v0, v1, v2, m0, m1, m2)

		n := uint32(i * 6)
		md.Indices32 = append(md.Indices32,
			n+0, n+3, n+5,
			n+3, n+4, n+5,
			n+5, n+4, n+2,
			n+3, n+1, n+4)
	}
}

// subdivideN applies Subdivide n times, clamped to [0, maxSubdivisions].
func subdivideN(md *MeshData, n int) {
	n = min(n, maxSubdivisions)
	for i := 0; i < n; i++ {
		Subdivide(md)
	}
}
