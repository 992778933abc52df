// Copyright 2025 Luke Griffiths. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from (.sim) and (.mat) JSON files
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/lukegriffiths/ashby-sammis/mdl/damage"
)

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name"`  // name of material
	Type  string     `json:"type"`  // type of material; e.g. "damage"
	Model string     `json:"model"` // name of model; e.g. "as90"
	Extra string     `json:"extra"` // extra information about this material
	Prms  dbf.Params `json:"prms"`  // prms holds all model parameters for this material

	// derived
	Damage damage.Model // pointer to actual damage model
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Materials MatsData `json:"materials"` // all materials

	// derived
	Damages map[string]*Material // subset with materials/models: damage models
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// read file
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return
	}

	// subsets
	mdb.Damages = make(map[string]*Material)
	for _, m := range mdb.Materials {
		switch m.Type {
		case "damage":
			mdb.Damages[m.Name] = m
		default:
			err = chk.Err("material type %q is incorrect; only \"damage\" is available", m.Type)
			return
		}
	}

	// alloc/init: damage models
	for _, m := range mdb.Damages {
		m.Damage, err = damage.New(m.Model)
		if err != nil {
			return
		}
		err = m.Damage.Init(m.Prms)
		if err != nil {
			return
		}
	}
	return
}

// Get returns a material by name or nil if not found
func (o MatDb) Get(name string) *Material {
	for _, m := range o.Materials {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// String prints one material
func (o *Material) String() string {
	b, _ := json.MarshalIndent(o, "    ", "  ")
	return string(b)
}
