// Copyright 2024 The Geomgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geomgen

import "cogentcore.org/core/math32"

// CreateGrid generates an m x n vertex grid in the xz-plane, centered at
// the origin and spanning the given width (x) and depth (z), with a
// constant +y normal. UVs tile linearly across the grid, suitable for
// tiled ground textures. The grid has (m-1)*(n-1) cells of 2 triangles
// each; m and n are vertex counts, minimum 2.
func CreateGrid(width, depth float32, m, n int) *MeshData {
	md := &MeshData{}

	halfWidth := 0.5 * width
	halfDepth := 0.5 * depth

	dx := width / float32(n-1)
	dz := depth / float32(m-1)
	du := 1 / float32(n-1)
	dv := 1 / float32(m-1)

	md.Vertices = make([]Vertex, m*n)
	for i := 0; i < m; i++ {
		z := halfDepth - float32(i)*dz
		for j := 0; j < n; j++ {
			x := -halfWidth + float32(j)*dx

			v := &md.Vertices[i*n+j]
			v.Position = math32.Vec3(x, 0, z)
			v.Normal = math32.Vec3(0, 1, 0)
			v.TangentU = math32.Vec3(1, 0, 0)
			v.TexC = math32.Vec2(float32(j)*du, float32(i)*dv)
		}
	}

	md.Indices32 = make([]uint32, 0, (m-1)*(n-1)*6)
	for i := 0; i < m-1; i++ {
		for j := 0; j < n-1; j++ {
			md.Indices32 = append(md.Indices32,
				uint32(i*n+j),
				uint32(i*n+j+1),
				uint32((i+1)*n+j),

				uint32((i+1)*n+j),
				uint32(i*n+j+1),
				uint32((i+1)*n+j+1))
		}
	}

	return md
}
