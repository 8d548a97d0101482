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
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/notargets/aeromdao/flow"
	"github.com/notargets/aeromdao/geom"
	"github.com/notargets/aeromdao/plotting"
	"github.com/notargets/aeromdao/solve"
	"github.com/notargets/aeromdao/streamline"
)

func traceStreamlines(fs flow.Uniform3D, seeds []geom.Point3D, res *solve.SolveResult, length float64, steps int) ([][]geom.Point3D, error) {
	return streamline.Streamlines(fs, seeds, res.Horseshoes, res.Gamma, length, steps)
}

var streamlinesCmd = &cobra.Command{
	Use:   "streamlines",
	Short: "Trace streamlines through a solved case and plot them",
	Run: func(cmd *cobra.Command, args []string) {
		caseFile, err := cmd.Flags().GetString("caseFile")
		if err != nil || len(caseFile) == 0 {
			fmt.Println("error: must supply a case file (-I, --caseFile)")
			os.Exit(1)
		}
		seedSpec, _ := cmd.Flags().GetString("seeds")
		length, _ := cmd.Flags().GetFloat64("length")
		steps, _ := cmd.Flags().GetInt("steps")
		out, _ := cmd.Flags().GetString("out")

		c := loadCase(caseFile)
		aircraft, cfgs, fs, ref, err := c.Build()
		if err != nil {
			panic(err)
		}
		res, err := solve.SolveCase(aircraft, cfgs, fs, ref)
		if err != nil {
			panic(err)
		}

		seeds, err := parseSeeds(seedSpec)
		if err != nil {
			panic(err)
		}

		lines, err := traceStreamlines(fs, seeds, res, length, steps)
		if err != nil {
			panic(err)
		}
		if err := plotting.PlotStreamlines(lines, out); err != nil {
			panic(err)
		}
		fmt.Printf("wrote %d streamlines to %s\n", len(lines), out)
	},
}

// parseSeeds reads "x,y,z;x,y,z;..." into seed points.
func parseSeeds(spec string) ([]geom.Point3D, error) {
	if spec == "" {
		return nil, fmt.Errorf("cmd: must supply --seeds \"x,y,z;x,y,z;...\"")
	}
	groups := strings.Split(spec, ";")
	seeds := make([]geom.Point3D, 0, len(groups))
	for _, g := range groups {
		fields := strings.Split(g, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("cmd: malformed seed %q, want x,y,z", g)
		}
		var p geom.Point3D
		for i, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("cmd: malformed seed coordinate %q: %w", f, err)
			}
			p[i] = v
		}
		seeds = append(seeds, p)
	}
	return seeds, nil
}

func init() {
	rootCmd.AddCommand(streamlinesCmd)
	streamlinesCmd.Flags().StringP("caseFile", "I", "", "YAML case file describing geometry, freestream, and reference quantities")
	streamlinesCmd.Flags().String("seeds", "", "semicolon-separated seed points \"x,y,z;x,y,z\"")
	streamlinesCmd.Flags().Float64("length", 10.0, "streamline arc length")
	streamlinesCmd.Flags().Int("steps", 100, "number of forward-Euler steps")
	streamlinesCmd.Flags().StringP("out", "o", "streamlines.png", "PNG output path")
}
