// Copyright 2024 The Geomgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geomgen

import "cogentcore.org/core/math32"

// icosahedron base mesh for the geosphere: 12 vertices, 20 outward-wound
// faces, inscribed in the unit sphere. Fixed data inherent to the shape.
var (
	icoX = float32(0.525731)
	icoZ = float32(0.850651)

	icoPos = [12]math32.Vector3{
		{X: -icoX, Y: 0, Z: icoZ}, {X: icoX, Y: 0, Z: icoZ},
		{X: -icoX, Y: 0, Z: -icoZ}, {X: icoX, Y: 0, Z: -icoZ},
		{X: 0, Y: icoZ, Z: icoX}, {X: 0, Y: icoZ, Z: -icoX},
		{X: 0, Y: -icoZ, Z: icoX}, {X: 0, Y: -icoZ, Z: -icoX},
		{X: icoZ, Y: icoX, Z: 0}, {X: -icoZ, Y: icoX, Z: 0},
		{X: icoZ, Y: -icoX, Z: 0}, {X: -icoZ, Y: -icoX, Z: 0},
	}

	icoIdx = [60]uint32{
		1, 4, 0, 4, 9, 0, 4, 5, 9, 8, 5, 4, 1, 8, 4,
		1, 10, 8, 10, 3, 8, 8, 3, 5, 3, 2, 5, 3, 7, 2,
		3, 10, 7, 10, 6, 7, 6, 11, 7, 6, 0, 11, 6, 1, 0,
		10, 1, 6, 11, 0, 9, 2, 11, 9, 5, 2, 9, 11, 2, 7,
	}
)

// CreateGeosphere generates a sphere of the given radius by subdividing an
// icosahedron numSubdivisions times (clamped to 6) and projecting every
// vertex onto the sphere. Triangle density is much more uniform than the
// latitude / longitude tessellation of [CreateSphere]; texture coordinates
// are derived per vertex from the spherical angles of the projected
// position, so the azimuthal seam and poles show some UV distortion.
func CreateGeosphere(radius float32, numSubdivisions int) *MeshData {
	md := &MeshData{}

	md.Vertices = make([]Vertex, len(icoPos))
	for i, p := range icoPos {
		md.Vertices[i].Position = p
	}
	md.Indices32 = append(md.Indices32, icoIdx[:]...)

	subdivideN(md, numSubdivisions)

	// project onto sphere and derive the spherical frame
	for i := range md.Vertices {
		v := &md.Vertices[i]

		n := v.Position.Normal()
		p := n.MulScalar(radius)

		theta := math32.Atan2(p.Z, p.X)
		if theta < 0 {
			theta += 2 * math32.Pi
		}
		phi := math32.Acos(p.Y / radius)

		v.Position = p
		v.Normal = n
		v.TexC = math32.Vec2(theta/(2*math32.Pi), phi/math32.Pi)

		// subdivision can land a vertex exactly on a pole, where the
		// theta derivative vanishes; any horizontal direction serves
		tan := math32.Vec3(
			-radius*math32.Sin(phi)*math32.Sin(theta),
			0,
			radius*math32.Sin(phi)*math32.Cos(theta))
		if tan.Length() < 1.0e-6 {
			tan = math32.Vec3(1, 0, 0)
		}
		v.TangentU = tan.Normal()
	}

	return md
}
