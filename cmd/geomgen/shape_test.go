// Copyright 2024 The Geomgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

var shapesYAML = `
shapes:
  - name: crate
    type: box
    width: 1
    height: 1
    depth: 1
  - name: ball
    type: sphere
    radius: 2
    slices: 8
    stacks: 4
  - name: tower
    type: cylinder
    bottomRadius: 1
    topRadius: 0.5
    height: 4
`

func TestShapeFile(t *testing.T) {
	var sf ShapeFile
	err := yaml.Unmarshal([]byte(shapesYAML), &sf)
	assert.NoError(t, err)
	assert.Equal(t, 3, len(sf.Shapes))

	for i := range sf.Shapes {
		md, err := sf.Shapes[i].Mesh()
		assert.NoError(t, err)
		assert.NotZero(t, len(md.Vertices))
		assert.NotZero(t, md.NumTriangles())
	}

	// explicit tessellation wins over defaults
	ball := sf.Shapes[1]
	md, err := ball.Mesh()
	assert.NoError(t, err)
	assert.Equal(t, 2+(4-1)*(8+1), len(md.Vertices))
}

func TestShapeUnknownType(t *testing.T) {
	sh := Shape{Name: "what", Type: "dodecahedron"}
	_, err := sh.Mesh()
	assert.Error(t, err)
}
