// Copyright 2024 The Geomgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geomgen

import "cogentcore.org/core/math32"

// CreateCylinder generates a generalized cylinder (truncated cone) parallel
// to the y-axis and centered at the origin, with independently specified
// bottom and top radii, closed by flat end-cap disks. sliceCount (minimum 3)
// sets the radial tessellation, stackCount (minimum 1) the number of side
// rings between bottom (y = -height/2) and top (y = +height/2).
//
// The side-surface normal accounts for the slant of the frustum: its
// vertical component is proportional to (bottomRadius-topRadius)/height, so
// a true cylinder gets purely radial normals. Cap rim vertices are separate
// from the side-ring vertices at the same positions, since the caps need
// flat axial normals. A top radius of 0 produces a cone: the top cap is
// omitted and the apex is closed by the converging side rings.
func CreateCylinder(bottomRadius, topRadius, height float32, sliceCount, stackCount int) *MeshData {
	md := &MeshData{}

	stackHeight := height / float32(stackCount)
	radiusStep := (topRadius - bottomRadius) / float32(stackCount)
	ringCount := stackCount + 1

	dTheta := 2 * math32.Pi / float32(sliceCount)

	for i := 0; i < ringCount; i++ {
		y := -0.5*height + float32(i)*stackHeight
		r := bottomRadius + float32(i)*radiusStep

		for j := 0; j <= sliceCount; j++ {
			c := math32.Cos(float32(j) * dTheta)
			s := math32.Sin(float32(j) * dTheta)

			var v Vertex
			v.Position = math32.Vec3(r*c, y, r*s)
			v.TexC = math32.Vec2(
				float32(j)/float32(sliceCount),
				1-float32(i)/float32(stackCount))

			// tangent frame from the parametrization:
			// unit dTheta tangent, bitangent down the slant side
			v.TangentU = math32.Vec3(-s, 0, c)
			dr := bottomRadius - topRadius
			bitangent := math32.Vec3(dr*c, -height, dr*s)
			v.Normal = v.TangentU.Cross(bitangent).Normal()

			md.Vertices = append(md.Vertices, v)
		}
	}

	ringVertexCount := sliceCount + 1
	for i := 0; i < stackCount; i++ {
		for j := 0; j < sliceCount; j++ {
			md.Indices32 = append(md.Indices32,
				uint32(i*ringVertexCount+j),
				uint32((i+1)*ringVertexCount+j),
				uint32((i+1)*ringVertexCount+j+1),

				uint32(i*ringVertexCount+j),
				uint32((i+1)*ringVertexCount+j+1),
				uint32(i*ringVertexCount+j+1))
		}
	}

	buildCylinderTopCap(topRadius, height, sliceCount, md)
	buildCylinderBottomCap(bottomRadius, height, sliceCount, md)

	return md
}

// CreateCone generates a cone: a cylinder with a zero-radius top.
// The apex is a point and no flat top cap is emitted.
func CreateCone(bottomRadius, height float32, sliceCount, stackCount int) *MeshData {
	return CreateCylinder(bottomRadius, 0, height, sliceCount, stackCount)
}

// buildCylinderTopCap appends the top cap disk: a dedicated rim ring with
// flat +y normals plus a center vertex, fanned into triangles. Cap UVs map
// the disk footprint scaled by height, matching the original scheme.
// With a zero top radius there is no disk: the cone apex is already closed
// by the side surface.
func buildCylinderTopCap(topRadius, height float32, sliceCount int, md *MeshData) {
	if topRadius == 0 {
		return
	}
	baseIndex := len(md.Vertices)
	y := 0.5 * height
	dTheta := 2 * math32.Pi / float32(sliceCount)

	// duplicate the rim so the cap gets flat normals and planar UVs
	for j := 0; j <= sliceCount; j++ {
		x := topRadius * math32.Cos(float32(j)*dTheta)
		z := topRadius * math32.Sin(float32(j)*dTheta)

		u := x/height + 0.5
		v := z/height + 0.5
		md.Vertices = append(md.Vertices, V(x, y, z, 0, 1, 0, 1, 0, 0, u, v))
	}

	md.Vertices = append(md.Vertices, V(0, y, 0, 0, 1, 0, 1, 0, 0, 0.5, 0.5))
	centerIndex := len(md.Vertices) - 1

	for j := 0; j < sliceCount; j++ {
		md.Indices32 = append(md.Indices32,
			uint32(centerIndex),
			uint32(baseIndex+j+1),
			uint32(baseIndex+j))
	}
}

// buildCylinderBottomCap appends the bottom cap disk, the mirror of
// buildCylinderTopCap with -y normals and reversed fan winding.
func buildCylinderBottomCap(bottomRadius, height float32, sliceCount int, md *MeshData) {
	if bottomRadius == 0 {
		return
	}
	baseIndex := len(md.Vertices)
	y := -0.5 * height
	dTheta := 2 * math32.Pi / float32(sliceCount)

	for j := 0; j <= sliceCount; j++ {
		x := bottomRadius * math32.Cos(float32(j)*dTheta)
		z := bottomRadius * math32.Sin(float32(j)*dTheta)

		u := x/height + 0.5
		v := z/height + 0.5
		md.Vertices = append(md.Vertices, V(x, y, z, 0, -1, 0, 1, 0, 0, u, v))
	}

	md.Vertices = append(md.Vertices, V(0, y, 0, 0, -1, 0, 1, 0, 0, 0.5, 0.5))
	centerIndex := len(md.Vertices) - 1

	for j := 0; j < sliceCount; j++ {
		md.Indices32 = append(md.Indices32,
			uint32(centerIndex),
			uint32(baseIndex+j),
			uint32(baseIndex+j+1))
	}
}
