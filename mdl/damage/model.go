// Copyright 2025 Luke Griffiths. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package damage implements micromechanical damage models for brittle rock
//  References:
//   [1] Ashby MF and Sammis CG (1990) The damage mechanics of brittle solids in
//       compression. Pure and Applied Geophysics, 133(3), 489-521
//   [2] Baud P, Wong T-f and Zhu W (2014) Effects of porosity and crack density on
//       the compressive strength of rocks. Int J Rock Mech Min Sci, 67, 202-211
package damage

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// DStep is the damage increment used when sampling model curves
const DStep = 0.001

// Model defines the interface for micromechanical damage models. Sig1 returns the
// axial stress σ1 holding the crack population at damage level D under the confining
// stress given to Init. Sig1 follows IEEE-754 semantics and may return non-finite
// values outside the valid damage range.
type Model interface {
	Init(prms dbf.Params) error      // initialises damage model
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	D0() float64                     // returns the initial damage
	Sig1(D float64) float64          // computes σ1 at damage level D
	Curve() (D, sig1 []float64)      // samples σ1(D) from D0 up to (excluding) 1
}

// Onset returns the onset-of-dilatancy stress; i.e. the axial stress at which the
// wing cracks start to propagate (σ1 at D = D0)
func Onset(mdl Model) float64 {
	return mdl.Sig1(mdl.D0())
}

// Peak returns the peak stress of mdl's curve and the damage level where it occurs.
// Non-finite samples are skipped. For large D0 the curve has no interior maximum and
// the largest (last finite) sample is returned.
func Peak(mdl Model) (Dpk, sig1pk float64) {
	D, sig1 := mdl.Curve()
	sig1pk = math.Inf(-1)
	for i, s := range sig1 {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			continue
		}
		if s > sig1pk {
			Dpk, sig1pk = D[i], s
		}
	}
	return
}

// New returns new damage model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'damage' database", name)
	}
	return allocator(), nil
}

// allocators holds all available damage models; modelname => allocator
var allocators = map[string]func() Model{}
