// Copyright 2024 The Geomgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geomgen

import "cogentcore.org/core/math32"

// face helpers for the flat-faced primitives (wedge, pyramid, prism,
// diamond). Each face gets its own 3 or 4 vertices with one flat normal /
// tangent / UV set, never shared with adjacent faces.

// addQuad appends one planar quad face from its corners in outward
// counter-clockwise order: bottom-left, top-left, top-right, bottom-right.
// U runs bottom-left to bottom-right, V top to bottom, so UVs span [0,1]
// without mirroring. The flat normal is computed from the corners.
func addQuad(md *MeshData, bl, tl, tr, br math32.Vector3) {
	n := tl.Sub(bl).Cross(br.Sub(bl)).Normal()
	t := br.Sub(bl).Normal()

	base := uint32(len(md.Vertices))
	md.Vertices = append(md.Vertices,
		Vertex{Position: bl, Normal: n, TangentU: t, TexC: math32.Vec2(0, 1)},
		Vertex{Position: tl, Normal: n, TangentU: t, TexC: math32.Vec2(0, 0)},
		Vertex{Position: tr, Normal: n, TangentU: t, TexC: math32.Vec2(1, 0)},
		Vertex{Position: br, Normal: n, TangentU: t, TexC: math32.Vec2(1, 1)})

	md.Indices32 = append(md.Indices32,
		base, base+1, base+2,
		base, base+2, base+3)
}

// addTri appends one triangular face from its corners in outward
// counter-clockwise order, with U running p0 to p1 and the third corner
// centered at the top of the UV range.
func addTri(md *MeshData, p0, p1, p2 math32.Vector3) {
	n := p1.Sub(p0).Cross(p2.Sub(p0)).Normal()
	t := p1.Sub(p0).Normal()

	base := uint32(len(md.Vertices))
	md.Vertices = append(md.Vertices,
		Vertex{Position: p0, Normal: n, TangentU: t, TexC: math32.Vec2(0, 1)},
		Vertex{Position: p1, Normal: n, TangentU: t, TexC: math32.Vec2(1, 1)},
		Vertex{Position: p2, Normal: n, TangentU: t, TexC: math32.Vec2(0.5, 0)})

	md.Indices32 = append(md.Indices32, base, base+1, base+2)
}
