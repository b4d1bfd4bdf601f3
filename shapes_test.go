// Copyright 2024 The Geomgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geomgen

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestBox(t *testing.T) {
	md := CreateBox(1, 2, 3, 0)
	validateMesh(t, md)
	assert.Equal(t, 24, len(md.Vertices))
	assert.Equal(t, 12, md.NumTriangles())

	bb := md.BBox()
	tolassert.EqualTol(t, -0.5, bb.Min.X, standardTol)
	tolassert.EqualTol(t, 0.5, bb.Max.X, standardTol)
	tolassert.EqualTol(t, -1, bb.Min.Y, standardTol)
	tolassert.EqualTol(t, 1, bb.Max.Y, standardTol)
	tolassert.EqualTol(t, -1.5, bb.Min.Z, standardTol)
	tolassert.EqualTol(t, 1.5, bb.Max.Z, standardTol)

	// tangent frames are orthogonal on a box
	for i := range md.Vertices {
		v := &md.Vertices[i]
		assert.Zero(t, v.Normal.Dot(v.TangentU))
	}

	sub := CreateBox(1, 2, 3, 2)
	validateMesh(t, sub)
	assert.Equal(t, 12*16, sub.NumTriangles())
}

func TestSphere(t *testing.T) {
	const radius = 2.5
	sliceCount, stackCount := 16, 8
	md := CreateSphere(radius, sliceCount, stackCount)
	validateMesh(t, md)

	assert.Equal(t, 2+(stackCount-1)*(sliceCount+1), len(md.Vertices))
	assert.Equal(t, 2*sliceCount*(stackCount-1), md.NumTriangles())

	for i := range md.Vertices {
		v := &md.Vertices[i]
		tolassert.EqualTol(t, radius, v.Position.Length(), standardTol)
		// normal is radial
		tolassert.EqualTol(t, 1, v.Normal.Dot(v.Position.Normal()), standardTol)
	}

	assert.Equal(t, math32.Vec3(0, 1, 0), md.Vertices[0].Normal)
	assert.Equal(t, math32.Vec3(0, -1, 0), md.Vertices[len(md.Vertices)-1].Normal)
}

func TestGeosphere(t *testing.T) {
	const radius = 3.0
	for k := 0; k <= 3; k++ {
		md := CreateGeosphere(radius, k)
		validateMesh(t, md)

		nt := 20
		for i := 0; i < k; i++ {
			nt *= 4
		}
		assert.Equal(t, nt, md.NumTriangles(), "subdivision level %d", k)

		for i := range md.Vertices {
			tolassert.EqualTol(t, radius, md.Vertices[i].Position.Length(), standardTol)
		}
	}
}

func TestCylinder(t *testing.T) {
	const (
		bottomRadius = 1.0
		topRadius    = 1.0
		height       = 2.0
	)
	sliceCount, stackCount := 16, 4
	md := CreateCylinder(bottomRadius, topRadius, height, sliceCount, stackCount)
	validateMesh(t, md)

	sideVerts := (stackCount + 1) * (sliceCount + 1)
	capVerts := sliceCount + 2
	assert.Equal(t, sideVerts+2*capVerts, len(md.Vertices))
	assert.Equal(t, 2*sliceCount*stackCount+2*sliceCount, md.NumTriangles())

	// a true cylinder has purely radial side normals
	for i := 0; i < sideVerts; i++ {
		assert.Zero(t, md.Vertices[i].Normal.Y, "side vertex %d", i)
	}
	// caps have flat axial normals
	for i := sideVerts; i < sideVerts+capVerts; i++ {
		assert.Equal(t, math32.Vec3(0, 1, 0), md.Vertices[i].Normal)
	}
	for i := sideVerts + capVerts; i < len(md.Vertices); i++ {
		assert.Equal(t, math32.Vec3(0, -1, 0), md.Vertices[i].Normal)
	}
}

func TestCylinderSlantNormals(t *testing.T) {
	// frustum: normal tilts up by (bottomRadius-topRadius)/height
	md := CreateCylinder(2, 1, 2, 8, 1)
	validateMesh(t, md)

	sideVerts := 2 * (8 + 1)
	for i := 0; i < sideVerts; i++ {
		assert.Positive(t, md.Vertices[i].Normal.Y, "side vertex %d", i)
	}
}

func TestCone(t *testing.T) {
	cone := CreateCone(1.5, 3, 16, 2)
	cyl := CreateCylinder(1.5, 0, 3, 16, 2)

	assert.Equal(t, cyl.Vertices, cone.Vertices)
	assert.Equal(t, cyl.Indices32, cone.Indices32)
	validateMesh(t, cone)

	// no top cap: side + bottom cap only
	assert.Equal(t, 3*17+18, len(cone.Vertices))

	// apex ring collapses to a point
	for j := 0; j <= 16; j++ {
		assert.Equal(t, math32.Vec3(0, 1.5, 0), cone.Vertices[2*17+j].Position)
	}
}

func TestWedge(t *testing.T) {
	md := CreateWedge(1, 2, 3, 0)
	validateMesh(t, md)
	assert.Equal(t, 18, len(md.Vertices))
	assert.Equal(t, 8, md.NumTriangles())

	sub := CreateWedge(1, 2, 3, 1)
	validateMesh(t, sub)
	assert.Equal(t, 32, sub.NumTriangles())
}

func TestPyramid(t *testing.T) {
	frustum := CreatePyramid(2, 1, 1.5)
	validateMesh(t, frustum)
	assert.Equal(t, 24, len(frustum.Vertices))
	assert.Equal(t, 12, frustum.NumTriangles())

	apex := CreatePyramid(2, 0, 1.5)
	validateMesh(t, apex)
	assert.Equal(t, 16, len(apex.Vertices))
	assert.Equal(t, 6, apex.NumTriangles())

	// side faces tilt up, bottom face does not
	for i := 4; i < len(apex.Vertices); i++ {
		assert.Positive(t, apex.Vertices[i].Normal.Y, "side vertex %d", i)
	}
	for i := 0; i < 4; i++ {
		assert.Equal(t, math32.Vec3(0, -1, 0), apex.Vertices[i].Normal)
	}
}

func TestTriangularPrism(t *testing.T) {
	md := CreateTriangularPrism(1, 2, 3, 0)
	validateMesh(t, md)
	assert.Equal(t, 18, len(md.Vertices))
	assert.Equal(t, 8, md.NumTriangles())

	sub := CreateTriangularPrism(1, 2, 3, 2)
	validateMesh(t, sub)
	assert.Equal(t, 8*16, sub.NumTriangles())
}

func TestDiamond(t *testing.T) {
	md := CreateDiamond(1, 2, 0)
	validateMesh(t, md)
	assert.Equal(t, 24, len(md.Vertices))
	assert.Equal(t, 8, md.NumTriangles())

	bb := md.BBox()
	tolassert.EqualTol(t, -1, bb.Min.Y, standardTol)
	tolassert.EqualTol(t, 1, bb.Max.Y, standardTol)

	sub := CreateDiamond(1, 2, 1)
	validateMesh(t, sub)
	assert.Equal(t, 32, sub.NumTriangles())
}

func TestTorus(t *testing.T) {
	const (
		radius     = 2.0
		tubeRadius = 0.5
	)
	sliceCount, tubeSliceCount := 16, 8
	md := CreateTorus(radius, tubeRadius, sliceCount, tubeSliceCount)
	validateMesh(t, md)

	assert.Equal(t, (sliceCount+1)*(tubeSliceCount+1), len(md.Vertices))
	assert.Equal(t, 2*sliceCount*tubeSliceCount, md.NumTriangles())

	// every vertex lies on the tube surface
	for i := range md.Vertices {
		p := md.Vertices[i].Position
		ring := math32.Sqrt(p.X*p.X+p.Z*p.Z) - radius
		tolassert.EqualTol(t, tubeRadius, math32.Sqrt(ring*ring+p.Y*p.Y), standardTol)
	}
}

func TestGrid(t *testing.T) {
	const (
		width = 10.0
		depth = 20.0
	)
	m, n := 5, 8
	md := CreateGrid(width, depth, m, n)
	validateMesh(t, md)

	assert.Equal(t, m*n, len(md.Vertices))
	assert.Equal(t, (m-1)*(n-1)*2, md.NumTriangles())

	bb := md.BBox()
	tolassert.EqualTol(t, -width/2, bb.Min.X, standardTol)
	tolassert.EqualTol(t, width/2, bb.Max.X, standardTol)
	tolassert.EqualTol(t, -depth/2, bb.Min.Z, standardTol)
	tolassert.EqualTol(t, depth/2, bb.Max.Z, standardTol)

	for i := range md.Vertices {
		assert.Zero(t, md.Vertices[i].Position.Y)
		assert.Equal(t, math32.Vec3(0, 1, 0), md.Vertices[i].Normal)
	}
}

func TestQuad(t *testing.T) {
	const depth = 0.5
	md := CreateQuad(-1, 1, 2, 2, depth)
	validateMesh(t, md)

	assert.Equal(t, 4, len(md.Vertices))
	assert.Equal(t, 2, md.NumTriangles())

	for i := range md.Vertices {
		assert.Equal(t, float32(depth), md.Vertices[i].Position.Z)
	}
}
