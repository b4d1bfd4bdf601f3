// Copyright 2024 The Geomgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geomgen procedurally generates indexed triangle meshes for common
// parametric solids: box, sphere, geosphere, cylinder / cone, wedge, pyramid,
// triangular prism, diamond, torus, grid, and screen-aligned quad.
//
// Every generator is a pure function from shape parameters to a [MeshData]
// holding per-vertex position, normal, tangent, and texture coordinates,
// plus 32-bit triangle indices, ready for upload to a GPU vertex / index
// buffer pair. All triangles are generated outward facing, in
// counter-clockwise winding order when viewed from outside the solid.
//
// Vertices are deliberately duplicated across faces and seams wherever the
// shared geometric position needs differing normals or texture coordinates
// (faceted shading, seam-correct texturing): geometric coincidence does not
// imply vertex-buffer sharing.
package geomgen

import "cogentcore.org/core/math32"

// Vertex is one point of a generated mesh, with the full tangent-space
// frame needed for lighting and normal mapping. Normal and TangentU are
// unit length; TangentU approximates the derivative of position with
// respect to the U texture coordinate.
type Vertex struct {
	Position math32.Vector3
	Normal   math32.Vector3
	TangentU math32.Vector3
	TexC     math32.Vector2
}

// V constructs a Vertex from position, normal, tangent, and texture
// coordinate components.
func V(px, py, pz, nx, ny, nz, tx, ty, tz, u, v float32) Vertex {
	return Vertex{
		Position: math32.Vec3(px, py, pz),
		Normal:   math32.Vec3(nx, ny, nz),
		TangentU: math32.Vec3(tx, ty, tz),
		TexC:     math32.Vec2(u, v),
	}
}

// MeshData is the output of every generator: an ordered vertex sequence and
// 32-bit indices, three per outward-wound triangle. A MeshData is owned
// solely by its caller and is not mutated by any generator after being
// returned, except by [Subdivide], which refines a mesh in place.
type MeshData struct {
	Vertices  []Vertex
	Indices32 []uint32

	// lazily computed 16-bit view of Indices32
	indices16 []uint16
}

// NumTriangles returns the number of triangles in the mesh.
func (md *MeshData) NumTriangles() int {
	return len(md.Indices32) / 3
}

// Indices16 returns the indices narrowed to 16 bits, for rendering backends
// with 16-bit index buffers. The narrowed view is computed once on first
// call and cached; it is only valid when every vertex index fits in 16 bits.
// Concurrent first calls on the same MeshData must be synchronized by the
// caller.
func (md *MeshData) Indices16() []uint16 {
	if md.indices16 == nil && len(md.Indices32) > 0 {
		md.indices16 = make([]uint16, len(md.Indices32))
		for i, ix := range md.Indices32 {
			md.indices16[i] = uint16(ix)
		}
	}
	return md.indices16
}

// BBox returns the axis-aligned bounding box of the mesh vertices.
func (md *MeshData) BBox() math32.Box3 {
	bb := math32.Box3{}
	bb.SetEmpty()
	for i := range md.Vertices {
		bb.ExpandByPoint(md.Vertices[i].Position)
	}
	return bb
}
