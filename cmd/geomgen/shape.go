// Copyright 2024 The Geomgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/meshforge/geomgen"
)

// ShapeFile is the YAML shape-list file format: a list of named shapes.
type ShapeFile struct {
	Shapes []Shape `yaml:"shapes"`
}

// Shape is one YAML shape definition. Type selects the generator;
// the remaining fields parametrize it, with reasonable defaults for
// tessellation counts when omitted.
type Shape struct {
	Name string `yaml:"name"`

	// box, sphere, geosphere, cylinder, cone, wedge, pyramid, prism,
	// diamond, torus, grid, quad
	Type string `yaml:"type"`

	Width  float32 `yaml:"width,omitempty"`
	Height float32 `yaml:"height,omitempty"`
	Depth  float32 `yaml:"depth,omitempty"`

	Radius       float32 `yaml:"radius,omitempty"`
	TubeRadius   float32 `yaml:"tubeRadius,omitempty"`
	BottomRadius float32 `yaml:"bottomRadius,omitempty"`
	TopRadius    float32 `yaml:"topRadius,omitempty"`
	BottomSide   float32 `yaml:"bottomSide,omitempty"`
	TopSide      float32 `yaml:"topSide,omitempty"`

	Slices       int `yaml:"slices,omitempty"`
	Stacks       int `yaml:"stacks,omitempty"`
	TubeSlices   int `yaml:"tubeSlices,omitempty"`
	Rows         int `yaml:"rows,omitempty"`
	Columns      int `yaml:"columns,omitempty"`
	Subdivisions int `yaml:"subdivisions,omitempty"`

	// screen-space position for quad
	X float32 `yaml:"x,omitempty"`
	Y float32 `yaml:"y,omitempty"`
}

// default tessellation counts when a shape omits them
const (
	defaultSlices = 16
	defaultStacks = 16
	defaultRows   = 16
)

// Mesh generates the mesh for this shape definition.
func (sh *Shape) Mesh() (*geomgen.MeshData, error) {
	slices := sh.Slices
	if slices == 0 {
		slices = defaultSlices
	}
	stacks := sh.Stacks
	if stacks == 0 {
		stacks = defaultStacks
	}

	switch sh.Type {
	case "box":
		return geomgen.CreateBox(sh.Width, sh.Height, sh.Depth, sh.Subdivisions), nil
	case "sphere":
		return geomgen.CreateSphere(sh.Radius, slices, stacks), nil
	case "geosphere":
		return geomgen.CreateGeosphere(sh.Radius, sh.Subdivisions), nil
	case "cylinder":
		return geomgen.CreateCylinder(sh.BottomRadius, sh.TopRadius, sh.Height, slices, stacks), nil
	case "cone":
		return geomgen.CreateCone(sh.BottomRadius, sh.Height, slices, stacks), nil
	case "wedge":
		return geomgen.CreateWedge(sh.Height, sh.Width, sh.Depth, sh.Subdivisions), nil
	case "pyramid":
		return geomgen.CreatePyramid(sh.BottomSide, sh.TopSide, sh.Height), nil
	case "prism":
		return geomgen.CreateTriangularPrism(sh.Height, sh.Width, sh.Depth, sh.Subdivisions), nil
	case "diamond":
		return geomgen.CreateDiamond(sh.Width, sh.Height, sh.Subdivisions), nil
	case "torus":
		tubeSlices := sh.TubeSlices
		if tubeSlices == 0 {
			tubeSlices = slices
		}
		return geomgen.CreateTorus(sh.Radius, sh.TubeRadius, slices, tubeSlices), nil
	case "grid":
		rows := sh.Rows
		if rows == 0 {
			rows = defaultRows
		}
		cols := sh.Columns
		if cols == 0 {
			cols = rows
		}
		return geomgen.CreateGrid(sh.Width, sh.Depth, rows, cols), nil
	case "quad":
		return geomgen.CreateQuad(sh.X, sh.Y, sh.Width, sh.Height, sh.Depth), nil
	}
	return nil, fmt.Errorf("shape %q: unknown type %q", sh.Name, sh.Type)
}
