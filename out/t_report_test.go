// Copyright 2025 Luke Griffiths. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_out01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out01. curve family")

	err := Start("data/triaxial.sim")
	if err != nil {
		tst.Errorf("Start failed:\n%v", err)
		return
	}
	err = Compute()
	if err != nil {
		tst.Errorf("Compute failed:\n%v", err)
		return
	}

	chk.IntAssert(len(Curves), 4)
	chk.IntAssert(len(SigMat), 4)
	chk.IntAssert(len(SigMat[0]), len(Curves[0].Sig1))

	// onset and peak grow with confinement
	for i := 1; i < len(Curves); i++ {
		if Curves[i].Onset <= Curves[i-1].Onset {
			tst.Errorf("onset did not increase from sig3=%g to sig3=%g", Curves[i-1].Sig3, Curves[i].Sig3)
			return
		}
		if Curves[i].Peak <= Curves[i-1].Peak {
			tst.Errorf("peak did not increase from sig3=%g to sig3=%g", Curves[i-1].Sig3, Curves[i].Sig3)
			return
		}
	}

	// unconfined curve matches the reference scenario
	io.Pforan("sig3=0: onset = %v  peak = %v\n", Curves[0].Onset, Curves[0].Peak)
	chk.Scalar(tst, "onset", 0.5, Curves[0].Onset, 166.33)
	chk.Scalar(tst, "peak", 0.5, Curves[0].Peak, 251.12)

	if chk.Verbose {
		Report()
		PlotCurves()
	}
}

func Test_out02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out02. summary text")

	err := Start("data/triaxial.sim")
	if err != nil {
		tst.Errorf("Start failed:\n%v", err)
		return
	}
	err = Compute()
	if err != nil {
		tst.Errorf("Compute failed:\n%v", err)
		return
	}

	l := Summary(Curves[0])
	io.Pforan("summary:\n%v", l)
	if !strings.Contains(l, io.Sf("Peak stress: %.2f MPa", Curves[0].Peak)) {
		tst.Errorf("summary is missing the peak stress line:\n%v", l)
		return
	}
	if !strings.Contains(l, io.Sf("Onset of dilatancy: %.2f MPa", Curves[0].Onset)) {
		tst.Errorf("summary is missing the onset of dilatancy line:\n%v", l)
		return
	}
}
