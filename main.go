package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/notargets/aeromdao/caseio"
	"github.com/notargets/aeromdao/cmd"
	"github.com/notargets/aeromdao/solve"
)

var (
	CaseFile = ""
)

// main mirrors the simplest direct invocation (a single wing solve,
// flag-driven, no subcommand) while delegating the richer "stability"
// and "streamlines" operations to the cmd package's cobra surface.
func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "stability", "streamlines", "wing":
			cmd.Execute()
			return
		}
	}

	CaseFileptr := flag.String("caseFile", CaseFile, "YAML case file describing geometry, freestream, and reference quantities")
	flag.Parse()
	CaseFile = *CaseFileptr

	if len(CaseFile) == 0 {
		fmt.Println("error: must supply -caseFile, or use a subcommand: wing, stability, streamlines")
		os.Exit(1)
	}

	data, err := ioutil.ReadFile(CaseFile)
	if err != nil {
		panic(err)
	}
	c := &caseio.Case{}
	if err := c.Parse(data); err != nil {
		panic(err)
	}
	c.Print()

	aircraft, cfgs, fs, ref, err := c.Build()
	if err != nil {
		panic(err)
	}
	res, err := solve.SolveCase(aircraft, cfgs, fs, ref)
	if err != nil {
		panic(err)
	}

	labels := []string{"CD", "CY", "CL", "Cl", "Cm", "Cn", "pbar", "qbar", "rbar"}
	for i, v := range res.NFCoeffs {
		fmt.Printf("%8s = %10.6f\n", labels[i], v)
	}
}
