// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the command line interface
package cmd

import (
	"github.com/RaghuSivapuram/FinEALE/ele"
	"github.com/RaghuSivapuram/FinEALE/fem"
	"github.com/RaghuSivapuram/FinEALE/inp"

	// register element families
	_ "github.com/RaghuSivapuram/FinEALE/ele/diffusion"
	_ "github.com/RaghuSivapuram/FinEALE/ele/solid"

	"github.com/cpmech/gosl/la"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "fineale <simulation.yml>",
	Short: "Explicit dynamics finite element solver",
	Long: `fineale runs an explicit (centred-difference) dynamic finite element
simulation described by a YAML input file: mesh, materials, boundary
conditions and solver settings.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		switch {
		case verbose:
			logrus.SetLevel(logrus.DebugLevel)
		case quiet:
			logrus.SetLevel(logrus.WarnLevel)
		default:
			logrus.SetLevel(logrus.InfoLevel)
		}
		sim, err := inp.ReadSim(args[0])
		if err != nil {
			return err
		}
		var last *ele.Solution
		err = fem.Run(sim, func(sol *ele.Solution) {
			last = sol
			logrus.Debugf("t=%-12g step=%-6d |U|=%g", sol.T, sol.Steps, la.VecNorm(sol.U))
		})
		if err != nil {
			return err
		}
		if last != nil {
			logrus.Infof("finished: t=%g steps=%d |U|=%g |V|=%g", last.T, last.Steps, la.VecNorm(last.U), la.VecNorm(last.V))
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every time step")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "log warnings and errors only")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
