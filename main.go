// Copyright 2025 Luke Griffiths. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/lukegriffiths/ashby-sammis/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	simfnpath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	doplot := io.ArgToBool(2, false)

	// message
	if verbose {
		io.PfWhite("\nAshby-Sammis -- sliding wing crack damage model\n")
		io.Pf("Copyright 2025 Luke Griffiths. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "simfnpath", simfnpath,
			"show messages", "verbose", verbose,
			"save curves figure", "doplot", doplot,
		))
	}

	// load run definition and materials
	err := out.Start(simfnpath)
	if err != nil {
		chk.Panic("cannot start run:\n%v", err)
	}

	// compute curves
	err = out.Compute()
	if err != nil {
		chk.Panic("computation failed:\n%v", err)
	}

	// report
	if verbose {
		out.Report()
	}

	// plot
	if doplot || out.Sim.Plot {
		out.PlotCurves()
		if verbose {
			io.Pf("\nfile <%s/%s.eps> written\n", out.Sim.DirOut, out.Sim.Fnkey)
		}
	}
}
