// Copyright 2024 The Geomgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geomgen

import "cogentcore.org/core/math32"

// CreateDiamond generates an octahedral diamond centered at the origin:
// a square girdle of the given width in the y = 0 plane with apexes at
// y = +-height/2, giving 8 triangular facets, refined numSubdivisions
// times. Each facet carries its own flat normal for crisp gem-like
// shading.
func CreateDiamond(width, height float32, numSubdivisions int) *MeshData {
	w2 := 0.5 * width
	h2 := 0.5 * height

	top := math32.Vec3(0, +h2, 0)
	bot := math32.Vec3(0, -h2, 0)

	// girdle corners, counter-clockwise seen from above
	ring := [4]math32.Vector3{
		{X: +w2, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: -w2},
		{X: -w2, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: +w2},
	}

	md := &MeshData{}
	for i := 0; i < 4; i++ {
		a := ring[i]
		b := ring[(i+1)%4]
		addTri(md, a, b, top)
		addTri(md, b, a, bot)
	}

	subdivideN(md, numSubdivisions)
	return md
}
