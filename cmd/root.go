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

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "aeromdao",
	Short: "Potential-flow aerodynamics: 2D panel method and 3D vortex-lattice solver",
	Long: `aeromdao solves steady, incompressible, inviscid lifting-surface
aerodynamics: a constant-strength doublet-source panel method for
airfoils, and a vortex-lattice method for wings and full aircraft
assemblies.`,
}

// Execute runs the root command, exiting the process on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.aeromdao.yaml)")
}

// initConfig searches for a top-level aeromdao config (default case
// file, output directory, etc.) in $HOME/.aeromdao.yaml when --config
// isn't given, so a caseFile flag doesn't need to be repeated on every
// invocation.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".aeromdao")
	}
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}
