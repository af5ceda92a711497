package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"github.com/tuneinsight/berry/bernstein"
	"github.com/tuneinsight/berry/utils"
)

var (
	matrixDim      int
	matrixDegree   int
	matrixIncrease int
	matrixInverse  bool
)

// matrixCmd prints a change-of-basis matrix
var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Print a change-of-basis matrix",
	Long: `Prints the matrix mapping the flattened power-basis coefficients of a polynomial
of the given dimension and degree to its Bernstein coefficients of degree
degree+increase, or with --inverse the matrix mapping Bernstein coefficients back
to the power basis. Coefficients are flattened with axis 0 varying fastest.`,
	Example: `  berry matrix --dim 2 --degree 2 --increase 1
  berry matrix --dim 1 --degree 3 --inverse -o json`,
	RunE: runMatrix,
}

func init() {
	matrixCmd.Flags().IntVar(&matrixDim, "dim", 1, "Number of variables")
	matrixCmd.Flags().IntVar(&matrixDegree, "degree", 1, "Degree of the polynomial")
	matrixCmd.Flags().IntVar(&matrixIncrease, "increase", 0, "Degree increase of the Bernstein basis")
	matrixCmd.Flags().BoolVar(&matrixInverse, "inverse", false, "Print the Bernstein to power matrix")
}

func runMatrix(cmd *cobra.Command, args []string) error {

	params, err := bernstein.NewParametersFromLiteral(bernstein.ParametersLiteral{
		Dim:       matrixDim,
		MaxDegree: utils.Max(matrixDegree+matrixIncrease, bernstein.DefaultMaxDegree),
	})
	if err != nil {
		return err
	}

	if matrixInverse && matrixIncrease != 0 {
		return fmt.Errorf("--increase cannot be used with --inverse")
	}

	t := bernstein.NewTransformer(params, logger)

	var m *mat.Dense
	if matrixInverse {
		m, err = t.BernsteinToPowerMatrix(matrixDegree)
	} else {
		m, err = t.PowerToBernsteinMatrix(matrixDegree, matrixIncrease)
	}

	if err != nil {
		return err
	}

	r, c := m.Dims()
	logger.Debug("matrix built", zap.Int("rows", r), zap.Int("cols", c), zap.Bool("inverse", matrixInverse))

	w := cmd.OutOrStdout()

	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = mat.Row(nil, i, m)
	}

	switch output {
	case "json":
		return json.NewEncoder(w).Encode(rows)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(rows)
	case "text":
		_, err = fmt.Fprintf(w, "%v\n", mat.Formatted(m, mat.Squeeze()))
		return err
	default:
		return fmt.Errorf("invalid output format %q: valid formats are text, json and yaml", output)
	}
}
