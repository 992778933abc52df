// Copyright 2025 Luke Griffiths. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output handling of damage model runs: curve families,
// scalar summaries and plots
package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/plt"

	"github.com/lukegriffiths/ashby-sammis/inp"
	"github.com/lukegriffiths/ashby-sammis/mdl/damage"
)

// Curve holds the σ1(D) curve computed for one confining stress
type Curve struct {
	Sig3  float64   // confining stress
	D     []float64 // damage values
	Sig1  []float64 // axial stress values
	Onset float64   // onset-of-dilatancy stress = Sig1[0]
	Dpk   float64   // damage level at peak stress
	Peak  float64   // peak stress = max(Sig1)
}

// Global variables
var (

	// data set by Start
	Sim *inp.Sim      // the run definition
	Mat *inp.Material // selected material
	Mdl damage.Model  // damage model of selected material

	// results computed by Compute
	Curves []*Curve    // one curve per confining stress
	SigMat [][]float64 // [nsig3][npts] σ1 values of all curves
)

// Start starts handling of results given a run input file
func Start(simfnpath string) (err error) {
	Sim, err = inp.ReadSim(simfnpath)
	if err != nil {
		return
	}
	Mat = Sim.Material
	Mdl = Mat.Damage
	Curves = nil
	SigMat = nil
	return
}

// Compute evaluates the model curve for each confining stress of the run definition.
// The model is fully re-initialised for every σ3 value; all other material parameters
// are kept as given in the .mat file
func Compute() (err error) {
	Curves = make([]*Curve, len(Sim.Sig3))
	for i, sig3 := range Sim.Sig3 {

		// override confinement
		prm := Mat.Prms.Find("sig3")
		if prm == nil {
			prm = &dbf.P{N: "sig3"}
			Mat.Prms = append(Mat.Prms, prm)
		}
		prm.V = sig3
		err = Mdl.Init(Mat.Prms)
		if err != nil {
			return
		}

		// curve and scalar summaries
		D, sig1 := Mdl.Curve()
		Dpk, peak := damage.Peak(Mdl)
		Curves[i] = &Curve{Sig3: sig3, D: D, Sig1: sig1, Onset: sig1[0], Dpk: Dpk, Peak: peak}
	}

	// results grid
	if len(Curves) > 0 {
		SigMat = la.MatAlloc(len(Curves), len(Curves[0].Sig1))
		for i, c := range Curves {
			copy(SigMat[i], c.Sig1)
		}
	}
	return
}

// Summary returns the formatted scalar summaries of one curve
func Summary(c *Curve) string {
	l := io.Sf("Peak stress: %.2f MPa\n", c.Peak)
	l += io.Sf("Onset of dilatancy: %.2f MPa\n", c.Onset)
	return l
}

// Report prints the scalar summaries of all computed curves
func Report() {
	io.Pf("material %q (%s) with model %q\n", Mat.Name, Mat.Extra, Mat.Model)
	for _, c := range Curves {
		io.Pfcyan("\n[sig3 = %g MPa]\n", c.Sig3)
		io.Pf("%s", Summary(c))
	}
}

// PlotCurves saves a figure with the family of σ1(D) curves, one curve per confining
// stress, with the peak of each curve marked
func PlotCurves() {
	if len(Curves) == 0 {
		chk.Panic("curves must be computed before plotting")
	}
	plt.Reset(true, &plt.A{Eps: true, Prop: 0.8, WidthPt: 455})
	for i, c := range Curves {
		plt.Plot(c.D, SigMat[i], &plt.A{L: io.Sf("$\\sigma_3 = %g$ MPa", c.Sig3), NoClip: true})
		plt.PlotOne(c.Dpk, c.Peak, &plt.A{C: "k", M: "."})
	}
	plt.Gll("$D$", "$\\sigma_1$ [MPa]", nil)
	err := plt.Save(Sim.DirOut, Sim.Fnkey)
	if err != nil {
		chk.Panic("cannot save figure:\n%v", err)
	}
}
