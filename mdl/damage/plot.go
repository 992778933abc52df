// Copyright 2025 Luke Griffiths. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package damage

import (
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Plot plots the σ1(D) curve of a damage model
//  argsCurve  -- arguments for the full curve sampled at DStep steps; e.g. &plt.A{C:"b"}
//                if argsCurve == nil, plot is skiped
//  argsDirect -- arguments for a coarse npts overlay computed by calling Sig1 directly
//                if argsDirect == nil, plot is skiped
func Plot(mdl Model, npts int, argsCurve, argsDirect *plt.A, label string) {

	// full curve
	D, sig1 := mdl.Curve()
	if argsCurve != nil {
		if argsCurve.L == "" {
			argsCurve.L = label
		}
		argsCurve.NoClip = true
		plt.Plot(D, sig1, argsCurve)
	}

	// coarse overlay
	if argsDirect != nil {
		Dc := utl.LinSpace(mdl.D0(), D[len(D)-1], npts)
		Sc := make([]float64, npts)
		for i, d := range Dc {
			Sc[i] = mdl.Sig1(d)
		}
		if argsDirect.L == "" {
			argsDirect.L = label + "_direct"
		}
		argsDirect.NoClip = true
		plt.Plot(Dc, Sc, argsDirect)
	}
}

// PlotEnd ends plot and show figure, if show==true
func PlotEnd(show bool) {
	plt.Gll("$D$", "$\\sigma_1$ [MPa]", nil)
	if show {
		plt.Show()
	}
}
