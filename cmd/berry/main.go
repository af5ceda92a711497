// Berry computes bounds of multivariate polynomials on the unit box from their
// Bernstein coefficients.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tuneinsight/berry/logging"
)

var (
	// Global flags
	logLevel string
	output   string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "berry",
	Short: "berry - polynomial bounds on the unit box",
	Long: `berry re-expresses multivariate polynomials in the Bernstein basis of the
unit box [0,1]^dim. The smallest (largest) Bernstein coefficient is a guaranteed
lower (upper) bound of the polynomial on the box, exact when attained at a corner.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {

		level, err := logging.ParseLevel(logLevel)
		if err != nil {
			return err
		}

		l, err := logging.New(level)
		if err != nil {
			return err
		}

		setLogger(l)

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Logging level (debug, info, warn, error, off)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "text", "Output format (text, json, yaml)")

	rootCmd.AddCommand(boundCmd)
	rootCmd.AddCommand(matrixCmd)
	rootCmd.AddCommand(randomCmd)
}

// setLogger replaces the global logger, flushing the previous one.
func setLogger(l *zap.Logger) {
	if logger != nil {
		_ = logger.Sync()
	}
	logger = l
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
