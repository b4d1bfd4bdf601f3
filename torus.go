// Copyright 2024 The Geomgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geomgen

import "cogentcore.org/core/math32"

// CreateTorus generates a torus centered at the origin with its ring in
// the xz-plane: radius is the distance from the origin to the tube
// center, tubeRadius the radius of the solid tube. sliceCount divides the
// ring, tubeSliceCount the tube circumference (both minimum 3). The seam
// vertices of both circles are duplicated so U and V each run 0 to 1.
func CreateTorus(radius, tubeRadius float32, sliceCount, tubeSliceCount int) *MeshData {
	md := &MeshData{}

	for i := 0; i <= sliceCount; i++ {
		u := float32(i) / float32(sliceCount) * 2 * math32.Pi
		cu, su := math32.Cos(u), math32.Sin(u)

		center := math32.Vec3(radius*cu, 0, radius*su)

		for j := 0; j <= tubeSliceCount; j++ {
			v := float32(j) / float32(tubeSliceCount) * 2 * math32.Pi
			cv, sv := math32.Cos(v), math32.Sin(v)

			var vt Vertex
			vt.Position = math32.Vec3(
				(radius+tubeRadius*cv)*cu,
				tubeRadius*sv,
				(radius+tubeRadius*cv)*su)
			vt.Normal = vt.Position.Sub(center).Normal()
			vt.TangentU = math32.Vec3(-su, 0, cu)
			vt.TexC = math32.Vec2(
				float32(i)/float32(sliceCount),
				float32(j)/float32(tubeSliceCount))

			md.Vertices = append(md.Vertices, vt)
		}
	}

	ringVertexCount := tubeSliceCount + 1
	for i := 0; i < sliceCount; i++ {
		for j := 0; j < tubeSliceCount; j++ {
			md.Indices32 = append(md.Indices32,
				uint32(i*ringVertexCount+j),
				uint32(i*ringVertexCount+j+1),
				uint32((i+1)*ringVertexCount+j+1),

				uint32(i*ringVertexCount+j),
				uint32((i+1)*ringVertexCount+j+1),
				uint32((i+1)*ringVertexCount+j))
		}
	}

	return md
}
