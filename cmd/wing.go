/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/aeromdao/caseio"
	"github.com/notargets/aeromdao/solve"
)

var wingCmd = &cobra.Command{
	Use:   "wing",
	Short: "Solve one freestream condition and print near/far-field coefficients",
	Run: func(cmd *cobra.Command, args []string) {
		caseFile, err := cmd.Flags().GetString("caseFile")
		if err != nil || len(caseFile) == 0 {
			caseFile = viper.GetString("caseFile")
		}
		if len(caseFile) == 0 {
			fmt.Println("error: must supply a case file (-I, --caseFile), or set caseFile in $HOME/.aeromdao.yaml")
			os.Exit(1)
		}
		if doProfile, _ := cmd.Flags().GetBool("profile"); doProfile {
			defer profile.Start(profile.CPUProfile).Stop()
		}

		c := loadCase(caseFile)
		c.Print()

		aircraft, cfgs, fs, ref, err := c.Build()
		if err != nil {
			panic(err)
		}
		res, err := solve.SolveCase(aircraft, cfgs, fs, ref)
		if err != nil {
			panic(err)
		}
		printCoefficients(res)
	},
}

func loadCase(path string) *caseio.Case {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		panic(err)
	}
	c := &caseio.Case{}
	if err := c.Parse(data); err != nil {
		panic(err)
	}
	return c
}

func printCoefficients(res *solve.SolveResult) {
	labels := []string{"CD", "CY", "CL", "Cl", "Cm", "Cn", "pbar", "qbar", "rbar"}
	for i, v := range res.NFCoeffs {
		fmt.Printf("%8s = %10.6f\n", labels[i], v)
	}
	ffLabels := []string{"CDi", "CY", "CL"}
	for i, v := range res.FFCoeffs {
		fmt.Printf("%8s(ff) = %10.6f\n", ffLabels[i], v)
	}
	for name, comp := range res.Components {
		fmt.Printf("--- component %s ---\n", name)
		printCoefficients(comp)
	}
}

func init() {
	rootCmd.AddCommand(wingCmd)
	wingCmd.Flags().StringP("caseFile", "I", "", "YAML case file describing geometry, freestream, and reference quantities")
	wingCmd.Flags().Bool("profile", false, "write a CPU profile for the solve")
}
