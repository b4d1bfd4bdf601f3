// Copyright 2024 The Geomgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command geomgen bakes parametric primitive meshes to Wavefront OBJ
// files, from a YAML shape-list file.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"github.com/meshforge/geomgen/objfile"
	"gopkg.in/yaml.v3"
)

// Config holds the command configuration.
type Config struct {

	// Shapes is the YAML file listing the shapes to generate
	Shapes string `flag:"s,shapes" default:"shapes.yaml"`

	// Output is the directory to write the .obj files into
	Output string `flag:"o,output" default:"."`
}

func main() {
	opts := cli.DefaultOptions("geomgen", "Geomgen bakes parametric primitive meshes (box, sphere, cylinder, ...) to Wavefront OBJ files from a YAML shape list.")
	cli.Run(opts, &Config{}, Generate)
}

// Generate reads the shape list and writes one .obj file per shape
// into the output directory. A failing shape does not stop the others;
// all failures are joined into the returned error.
func Generate(c *Config) error {
	b, err := os.ReadFile(c.Shapes)
	if err != nil {
		return err
	}
	var sf ShapeFile
	if err := yaml.Unmarshal(b, &sf); err != nil {
		return fmt.Errorf("%s: %w", c.Shapes, err)
	}
	if len(sf.Shapes) == 0 {
		return fmt.Errorf("%s: no shapes listed", c.Shapes)
	}
	if err := os.MkdirAll(c.Output, 0o755); err != nil {
		return err
	}
	var errs []error
	for i := range sf.Shapes {
		sh := &sf.Shapes[i]
		md, err := sh.Mesh()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		fname := filepath.Join(c.Output, sh.Name+".obj")
		if err := objfile.Save(fname, md, sh.Name); err != nil {
			errs = append(errs, err)
			continue
		}
		logx.PrintlnInfo("wrote", fname, "with", len(md.Vertices), "vertices,", md.NumTriangles(), "triangles")
	}
	return errors.Join(errs...)
}
