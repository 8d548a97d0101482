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
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/aeromdao/stability"
)

var stabilityCmd = &cobra.Command{
	Use:   "stability",
	Short: "Solve a case plus its finite-difference stability derivative sweep",
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
		res, err := stability.SolveStabilityCase(aircraft, cfgs, fs, ref)
		if err != nil {
			panic(err)
		}
		printCoefficients(&res.Base)
		printDerivatives(res)
	},
}

func printDerivatives(res *stability.StabilityResult) {
	rows := []string{"CD", "CY", "CL", "Cl", "Cm", "Cn"}
	cols := []string{"alpha", "beta", "pbar", "qbar", "rbar"}
	for r, rowLabel := range rows {
		for c, colLabel := range cols {
			fmt.Printf("d%s/d%s = %12.6f\n", rowLabel, colLabel, res.Derivatives[r][c])
		}
	}
}

func init() {
	rootCmd.AddCommand(stabilityCmd)
	stabilityCmd.Flags().StringP("caseFile", "I", "", "YAML case file describing geometry, freestream, and reference quantities")
	stabilityCmd.Flags().Bool("profile", false, "write a CPU profile for the solve")
}
