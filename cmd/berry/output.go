package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/tuneinsight/berry/bound"
	"github.com/tuneinsight/berry/polynomial"
)

type report struct {
	Polynomial string       `json:"polynomial" yaml:"polynomial"`
	Bernstein  []float64    `json:"bernstein,omitempty" yaml:"bernstein,omitempty"`
	Bound      bound.Result `json:"bound" yaml:"bound"`
}

func writeReport(w io.Writer, format string, p *polynomial.Polynomial[polynomial.Power], res bound.Result, withCoeffs bool) error {

	r := report{
		Polynomial: p.String(),
		Bound:      res,
	}

	if withCoeffs {
		r.Bernstein = res.Bernstein.Coefficients()
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(r)
	case "text":
		fmt.Fprintf(w, "p(x)      = %s\n", r.Polynomial)
		fmt.Fprintf(w, "degree    = %d (bernstein %d)\n", p.Degree(), res.BernsteinDegree)
		fmt.Fprintf(w, "infimum   = %g (vertex=%t, gap<=%g) at %v\n", res.Infimum, res.InfimumVertex, res.InfimumGap, res.InfimumPoint)
		fmt.Fprintf(w, "supremum  = %g (vertex=%t) at %v\n", res.Supremum, res.SupremumVertex, res.SupremumPoint)
		fmt.Fprintf(w, "mean      = %g, median = %g, stddev = %g\n", res.Summary.Mean, res.Summary.Median, res.Summary.StdDev)
		if withCoeffs {
			fmt.Fprintf(w, "bernstein = %s\n", res.Bernstein)
		}
		return nil
	default:
		return fmt.Errorf("invalid output format %q: valid formats are text, json and yaml", format)
	}
}
