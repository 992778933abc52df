// Copyright 2025 Luke Griffiths. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package damage

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// AshbySammis implements the sliding wing crack model of Ashby and Sammis [1]:
// inclined penny-shaped cracks slide under the remote stresses and nucleate tensile
// wing cracks whose growth is tracked by the damage variable D ∈ (D0, 1)
//
//   σ1(D) = σ3·(C1 + C4·r/den) + √(r + 0.1/cosγ) · C4·cst / (den·√cosγ)
//
//   r   = √(D/D0) − 1
//   den = 1 + √(π·D0)·r/(1 − √D)
//
// with the crack orientation angle fixed at γ = π/6. As D → 1 the denominator
// diverges and σ1 becomes non-finite; Curve never samples D ≥ 1
type AshbySammis struct {

	// parameters
	d0   float64 // initial damage
	sig3 float64 // confining stress σ3 [MPa]
	mu   float64 // friction coefficient on sliding crack faces
	cst  float64 // fracture toughness constant Kc/√(π·a) [MPa]

	// derived
	gam  float64 // crack orientation angle
	cosg float64 // cos(γ)
	c1   float64 // wedging coefficient C1
	c4   float64 // wedging coefficient C4
}

// add model to factory
func init() {
	allocators["as90"] = func() Model { return new(AshbySammis) }
}

// Init initialises model
func (o *AshbySammis) Init(prms dbf.Params) (err error) {

	// default values
	o.d0, o.sig3, o.mu, o.cst = 0.1, 0, 0.7, 50

	// parameters
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "d0":
			o.d0 = p.V
		case "sig3":
			o.sig3 = p.V
		case "mu":
			o.mu = p.V
		case "cst":
			o.cst = p.V
		default:
			return chk.Err("as90: parameter named %q is incorrect\n", p.N)
		}
	}

	// check
	if o.d0 <= 0 || o.d0 >= 1 {
		return chk.Err("as90: initial damage D0=%g must be within (0, 1)", o.d0)
	}
	if o.mu <= 0 {
		return chk.Err("as90: friction coefficient mu=%g must be positive", o.mu)
	}
	if o.cst <= 0 {
		return chk.Err("as90: toughness constant cst=%g must be positive", o.cst)
	}
	if o.sig3 < 0 {
		return chk.Err("as90: confining stress sig3=%g cannot be negative", o.sig3)
	}

	// derived
	o.gam = math.Pi / 6.0
	o.cosg = math.Cos(o.gam)
	f := math.Sqrt(1.0 + o.mu*o.mu)
	o.c1 = (f + o.mu) / (f - o.mu)
	o.c4 = math.Sqrt(30.0) * o.cosg / (f - o.mu)
	return
}

// GetPrms gets (an example) of parameters
func (o AshbySammis) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "D0", V: 0.1},
		&dbf.P{N: "sig3", V: 0},
		&dbf.P{N: "mu", V: 0.7},
		&dbf.P{N: "cst", V: 50},
	}
}

// D0 returns the initial damage
func (o AshbySammis) D0() float64 {
	return o.d0
}

// Sig3 returns the confining stress
func (o AshbySammis) Sig3() float64 {
	return o.sig3
}

// C1 returns the first wedging coefficient
func (o AshbySammis) C1() float64 {
	return o.c1
}

// C4 returns the second wedging coefficient
func (o AshbySammis) C4() float64 {
	return o.c4
}

// Sig1 computes the axial stress σ1 at damage level D
func (o AshbySammis) Sig1(D float64) float64 {
	r := math.Sqrt(D/o.d0) - 1.0
	den := 1.0 + math.Sqrt(math.Pi*o.d0)*r/(1.0-math.Sqrt(D))
	return o.sig3*(o.c1+o.c4*r/den) + math.Sqrt(r+0.1/o.cosg)*o.c4*o.cst/(den*math.Sqrt(o.cosg))
}

// Curve samples σ1 for damage levels from D0 up to but excluding 1, at DStep steps
func (o AshbySammis) Curve() (D, sig1 []float64) {
	n := int(math.Ceil((1.0 - o.d0) / DStep))
	for o.d0+float64(n-1)*DStep >= 1.0 {
		n--
	}
	D = make([]float64, n)
	sig1 = make([]float64, n)
	for i := 0; i < n; i++ {
		D[i] = o.d0 + float64(i)*DStep
		sig1[i] = o.Sig1(D[i])
	}
	return
}
