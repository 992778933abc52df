// Copyright 2025 Luke Griffiths. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// WedgingCoefs returns the wedging coefficients of the sliding wing crack model for
// friction coefficient μ and crack orientation angle γ
//
//   C1 = (√(1+μ²) + μ) / (√(1+μ²) − μ)
//   C4 = √30·cosγ / (√(1+μ²) − μ)
//
// The denominators vanish only if √(1+μ²) = μ, which no real μ > 0 satisfies
func WedgingCoefs(mu, gam float64) (c1, c4 float64) {
	f := math.Sqrt(1.0 + mu*mu)
	c1 = (f + mu) / (f - mu)
	c4 = math.Sqrt(30.0) * math.Cos(gam) / (f - mu)
	return
}

// WingCrackOnset computes the closed-form onset-of-dilatancy stress of the sliding
// wing crack model; i.e. the axial stress at which wing cracks first extend. At
// D = D0 the crack-growth ratio r vanishes and the stress reduces to
//
//   σ1 = C1·σ3 + C4·cst·√(0.1/cosγ)/√cosγ
type WingCrackOnset struct {

	// input
	sig3 float64 // confining stress
	mu   float64 // friction coefficient
	cst  float64 // fracture toughness constant

	// derived
	cosg   float64 // cosine of crack orientation angle
	c1, c4 float64 // wedging coefficients
}

// Init initialises this structure
func (o *WingCrackOnset) Init(prms dbf.Params) {

	// default values
	o.sig3 = 0
	o.mu = 0.7
	o.cst = 50

	// parameters
	for _, p := range prms {
		switch p.N {
		case "sig3":
			o.sig3 = p.V
		case "mu":
			o.mu = p.V
		case "cst":
			o.cst = p.V
		}
	}

	// derived
	gam := math.Pi / 6.0
	o.cosg = math.Cos(gam)
	o.c1, o.c4 = WedgingCoefs(o.mu, gam)
}

// Onset computes the onset-of-dilatancy stress
func (o WingCrackOnset) Onset() float64 {
	return o.c1*o.sig3 + o.c4*o.cst*math.Sqrt(0.1/o.cosg)/math.Sqrt(o.cosg)
}

// CheckOnset compares a computed onset stress against the closed form
func (o WingCrackOnset) CheckOnset(tst *testing.T, sig1onset, tol float64) {
	chk.Scalar(tst, "onset", tol, sig1onset, o.Onset())
}
