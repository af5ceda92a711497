package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tuneinsight/berry/bernstein"
	"github.com/tuneinsight/berry/bound"
	"github.com/tuneinsight/berry/polynomial"
	"github.com/tuneinsight/berry/utils"
	"github.com/tuneinsight/berry/utils/sampling"
)

var (
	randomSeed     uint64
	randomDim      int
	randomDegree   int
	randomIncrease int
	randomLo       float64
	randomHi       float64
)

// randomCmd bounds a reproducible random polynomial
var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Bound a random polynomial",
	Long: `Samples a polynomial with coefficients uniform in [lo, hi) and prints its bounds.
With --seed the coefficients are drawn from a PRNG keyed with the seed, so that
runs are reproducible.`,
	Example: `  berry random --seed 7 --dim 2 --degree 4 --increase 2`,
	RunE:    runRandom,
}

func init() {
	randomCmd.Flags().Uint64Var(&randomSeed, "seed", 0, "Seed of the PRNG, random if not set")
	randomCmd.Flags().IntVar(&randomDim, "dim", 2, "Number of variables")
	randomCmd.Flags().IntVar(&randomDegree, "degree", 3, "Degree of the polynomial")
	randomCmd.Flags().IntVar(&randomIncrease, "increase", 0, "Degree increase of the Bernstein basis")
	randomCmd.Flags().Float64Var(&randomLo, "lo", -1, "Lower bound of the coefficients")
	randomCmd.Flags().Float64Var(&randomHi, "hi", 1, "Upper bound of the coefficients")
}

func runRandom(cmd *cobra.Command, args []string) error {

	if randomDim < 1 || randomDegree < 0 {
		return fmt.Errorf("invalid dimension %d or degree %d", randomDim, randomDegree)
	}

	if randomLo >= randomHi {
		return fmt.Errorf("invalid coefficient range [%g, %g)", randomLo, randomHi)
	}

	params, err := bernstein.NewParametersFromLiteral(bernstein.ParametersLiteral{
		Dim:       randomDim,
		MaxDegree: utils.Max(randomDegree+randomIncrease, bernstein.DefaultMaxDegree),
	})
	if err != nil {
		return err
	}

	// without --seed the coefficients are drawn from the system's secure source
	var prng sampling.PRNG
	if cmd.Flags().Changed("seed") {
		prng, err = sampling.NewSeededPRNG(randomSeed)
	} else {
		prng, err = sampling.NewPRNG()
	}

	if err != nil {
		return err
	}

	p, err := polynomial.NewRandomPower(randomDim, randomDegree, prng, randomLo, randomHi)
	if err != nil {
		return err
	}

	logger.Info("bounding random polynomial",
		zap.Uint64("seed", randomSeed),
		zap.Int("dim", randomDim),
		zap.Int("degree", randomDegree),
		zap.Binary("digest", digest(p)))

	res, err := bound.Compute(bernstein.NewTransformer(params, logger), p, randomIncrease)
	if err != nil {
		return fmt.Errorf("failed to bound polynomial: %w", err)
	}

	return writeReport(cmd.OutOrStdout(), output, p, res, false)
}

func digest(p *polynomial.Polynomial[polynomial.Power]) []byte {
	d := p.Digest()
	return d[:8]
}
