// Copyright 2024 The Geomgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geomgen

// CreateQuad generates a single screen-aligned rectangle in
// screen-space-like coordinates: (x, y) is the top-left corner, w and h
// the extent, and depth the fixed z value for all 4 vertices. Intended
// for full-screen post-processing and UI-space effects rather than scene
// geometry.
func CreateQuad(x, y, w, h, depth float32) *MeshData {
	md := &MeshData{}

	md.Vertices = []Vertex{
		V(x, y-h, depth, 0, 0, -1, 1, 0, 0, 0, 1),
		V(x, y, depth, 0, 0, -1, 1, 0, 0, 0, 0),
		V(x+w, y, depth, 0, 0, -1, 1, 0, 0, 1, 0),
		V(x+w, y-h, depth, 0, 0, -1, 1, 0, 0, 1, 1),
	}

	md.Indices32 = []uint32{0, 1, 2, 0, 2, 3}

	return md
}
