// Copyright 2024 The Geomgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geomgen

import "cogentcore.org/core/math32"

// CreateSphere generates a sphere centered at the origin with the given
// radius, tessellated by latitude / longitude: sliceCount azimuthal
// divisions (minimum 3) and stackCount polar divisions (minimum 2).
// A single vertex sits at each pole; each interior stack is a ring of
// sliceCount+1 vertices with the seam vertex duplicated so U runs
// continuously from 0 to 1 around the ring.
func CreateSphere(radius float32, sliceCount, stackCount int) *MeshData {
	md := &MeshData{}

	// poles get one vertex each; UV degeneracy there is unavoidable
	top := V(0, +radius, 0, 0, +1, 0, 1, 0, 0, 0, 0)
	bot := V(0, -radius, 0, 0, -1, 0, 1, 0, 0, 0, 1)

	md.Vertices = append(md.Vertices, top)

	phiStep := math32.Pi / float32(stackCount)
	thetaStep := 2 * math32.Pi / float32(sliceCount)

	for i := 1; i <= stackCount-1; i++ {
		phi := float32(i) * phiStep
		for j := 0; j <= sliceCount; j++ {
			theta := float32(j) * thetaStep

			var v Vertex
			v.Position = math32.Vec3(
				radius*math32.Sin(phi)*math32.Cos(theta),
				radius*math32.Cos(phi),
				radius*math32.Sin(phi)*math32.Sin(theta))

			// d(position)/d(theta)
			v.TangentU = math32.Vec3(
				-radius*math32.Sin(phi)*math32.Sin(theta),
				0,
				radius*math32.Sin(phi)*math32.Cos(theta)).Normal()

			v.Normal = v.Position.Normal()
			v.TexC = math32.Vec2(theta/(2*math32.Pi), phi/math32.Pi)

			md.Vertices = append(md.Vertices, v)
		}
	}

	md.Vertices = append(md.Vertices, bot)

	// top fan: pole is index 0, first ring starts at 1
	for j := 1; j <= sliceCount; j++ {
		md.Indices32 = append(md.Indices32, 0, uint32(j+1), uint32(j))
	}

	// body quads between adjacent rings
	baseIndex := 1
	ringVertexCount := sliceCount + 1
	for i := 0; i < stackCount-2; i++ {
		for j := 0; j < sliceCount; j++ {
			md.Indices32 = append(md.Indices32,
				uint32(baseIndex+i*ringVertexCount+j),
				uint32(baseIndex+i*ringVertexCount+j+1),
				uint32(baseIndex+(i+1)*ringVertexCount+j),

				uint32(baseIndex+(i+1)*ringVertexCount+j),
				uint32(baseIndex+i*ringVertexCount+j+1),
				uint32(baseIndex+(i+1)*ringVertexCount+j+1))
		}
	}

	// bottom fan into the last ring
	southPoleIndex := len(md.Vertices) - 1
	baseIndex = southPoleIndex - ringVertexCount
	for j := 0; j < sliceCount; j++ {
		md.Indices32 = append(md.Indices32,
			uint32(southPoleIndex),
			uint32(baseIndex+j),
			uint32(baseIndex+j+1))
	}

	return md
}
