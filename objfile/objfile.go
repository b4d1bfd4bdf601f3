// Copyright 2024 The Geomgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package objfile writes generated meshes in the Wavefront OBJ format
// (*.obj), the inverse of the usual OBJ model decoders. Only the geometry
// records are emitted (v, vt, vn, f); there is no material output.
// Basic format info: https://en.wikipedia.org/wiki/Wavefront_.obj_file
package objfile

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/meshforge/geomgen"
)

// Write writes the mesh to w as a named OBJ object. Faces reference
// position, texture, and normal per corner (f v/vt/vn), 1-based per the
// OBJ format. The V texture coordinate is flipped, since OBJ puts the
// texture origin at the bottom-left.
func Write(w io.Writer, md *geomgen.MeshData, name string) error {
	bw := bufio.NewWriter(w)

	if name != "" {
		fmt.Fprintf(bw, "o %s\n", name)
	}
	for i := range md.Vertices {
		p := md.Vertices[i].Position
		fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
	}
	for i := range md.Vertices {
		tc := md.Vertices[i].TexC
		fmt.Fprintf(bw, "vt %g %g\n", tc.X, 1-tc.Y)
	}
	for i := range md.Vertices {
		n := md.Vertices[i].Normal
		fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
	}
	for i := 0; i+2 < len(md.Indices32); i += 3 {
		a := md.Indices32[i] + 1
		b := md.Indices32[i+1] + 1
		c := md.Indices32[i+2] + 1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}
	return bw.Flush()
}

// Save writes the mesh to the given .obj file as an object with the
// given name.
func Save(filename string, md *geomgen.MeshData, name string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := Write(f, md, name); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
