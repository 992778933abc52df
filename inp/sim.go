// Copyright 2025 Luke Griffiths. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Sim holds the definition of one run: a series of triaxial compression curves on one
// material, one curve per confining stress
type Sim struct {

	// input
	Desc    string    `json:"desc"`    // description of this run
	Matfile string    `json:"matfile"` // materials file path, relative to the .sim file
	Mat     string    `json:"mat"`     // name of material to use
	DirOut  string    `json:"dirout"`  // directory for output; e.g. /tmp/ashbysammis
	Fnkey   string    `json:"fnkey"`   // filename key for output files
	Sig3    []float64 `json:"sig3"`    // confining stresses [MPa]
	Plot    bool      `json:"plot"`    // save a figure with the curve family

	// derived
	DirIn    string    // directory where the .sim file is located
	MatDb    *MatDb    // materials database
	Material *Material // selected material
}

// ReadSim reads a run definition from a .sim JSON file and loads the corresponding
// materials database
func ReadSim(simfnpath string) (o *Sim, err error) {

	// new sim and defaults
	o = new(Sim)
	o.DirOut = "/tmp/ashbysammis"

	// read file
	b, err := io.ReadFile(simfnpath)
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, err
	}

	// derived data
	o.DirIn = filepath.Dir(simfnpath)
	if o.Fnkey == "" {
		o.Fnkey = io.FnKey(filepath.Base(simfnpath))
	}
	if len(o.Sig3) == 0 {
		o.Sig3 = []float64{0}
	}
	for _, s := range o.Sig3 {
		if s < 0 {
			return nil, chk.Err("sim: confining stress sig3=%g cannot be negative", s)
		}
	}

	// materials
	o.MatDb, err = ReadMat(o.DirIn, o.Matfile)
	if err != nil {
		return nil, err
	}
	o.Material = o.MatDb.Get(o.Mat)
	if o.Material == nil {
		return nil, chk.Err("sim: material %q cannot be found in %q", o.Mat, o.Matfile)
	}
	return
}
