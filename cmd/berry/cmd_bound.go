package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tuneinsight/berry/bernstein"
	"github.com/tuneinsight/berry/bound"
	"github.com/tuneinsight/berry/config"
)

var (
	configPath string
	increase   int
	showCoeffs bool
)

// boundCmd bounds the polynomial of a configuration file
var boundCmd = &cobra.Command{
	Use:   "bound",
	Short: "Bound the polynomial of a configuration file on the unit box",
	Long: `Loads a YAML configuration (logging, parameters, polynomial), transforms the
polynomial to the Bernstein basis with the configured degree increase, and prints
the infimum and supremum bounds along with the infimum gap estimate.`,
	Example: `  berry bound --config problem.yaml
  berry bound --config problem.yaml --increase 4 -o json`,
	RunE: runBound,
}

func init() {
	boundCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the YAML configuration (required)")
	boundCmd.Flags().IntVar(&increase, "increase", 0, "Degree increase, overrides the configuration")
	boundCmd.Flags().BoolVar(&showCoeffs, "coeffs", false, "Print the Bernstein coefficients")
	_ = boundCmd.MarkFlagRequired("config")
}

func runBound(cmd *cobra.Command, args []string) error {

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// the configuration logger applies unless --log-level is given
	if !cmd.Flags().Changed("log-level") {
		l, err := cfg.Logger()
		if err != nil {
			return err
		}
		setLogger(l)
	}

	params, err := cfg.Params()
	if err != nil {
		return err
	}

	p, err := cfg.Build()
	if err != nil {
		return err
	}

	inc := params.DegreeIncrease()
	if cmd.Flags().Changed("increase") {
		inc = increase
	}

	logger.Info("bounding polynomial",
		zap.String("config", configPath),
		zap.Int("dim", p.Dim()),
		zap.Int("degree", p.Degree()),
		zap.Int("increase", inc))

	t := bernstein.NewTransformer(params, logger)

	res, err := bound.Compute(t, p, inc)
	if err != nil {
		return fmt.Errorf("failed to bound polynomial: %w", err)
	}

	logger.Debug("bound computed", zap.Object("result", res))

	return writeReport(cmd.OutOrStdout(), output, p, res, showCoeffs)
}
