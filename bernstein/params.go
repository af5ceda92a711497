package bernstein

import (
	"encoding/json"
	"fmt"

	"github.com/google/go-cmp/cmp"
)

const (
	// DefaultMaxDegree is the largest target degree accepted by a [Transformer]
	// when ParametersLiteral.MaxDegree is left unset.
	DefaultMaxDegree = 32

	// DefaultMatrixCacheSize is the number of change-of-basis matrices kept by a
	// [Transformer] when ParametersLiteral.MatrixCacheSize is left unset.
	DefaultMatrixCacheSize = 8

	// DefaultResultCacheSize is the number of Bernstein coefficient tensors kept by
	// a [Transformer] when ParametersLiteral.ResultCacheSize is left unset.
	DefaultResultCacheSize = 64
)

// ParametersLiteral is a literal representation of the parameters of a [Transformer].
// It has public fields and is used to express unchecked user-defined parameters
// literally into Go programs or configuration files.
// The [NewParametersFromLiteral] function is used to generate the actual checked
// parameters from the literal representation.
//
// Users must set the dimension (Dim). Zero values of the other fields are
// substituted with defaults at parameter creation.
type ParametersLiteral struct {
	Dim             int `json:"dim" yaml:"dim"`
	DegreeIncrease  int `json:"degree_increase,omitempty" yaml:"degree_increase,omitempty"`
	MaxDegree       int `json:"max_degree,omitempty" yaml:"max_degree,omitempty"`
	MatrixCacheSize int `json:"matrix_cache_size,omitempty" yaml:"matrix_cache_size,omitempty"`
	ResultCacheSize int `json:"result_cache_size,omitempty" yaml:"result_cache_size,omitempty"`
}

// Parameters represents a checked set of parameters of a [Transformer].
// Its fields are private and immutable. See [ParametersLiteral] for user-specified parameters.
type Parameters struct {
	dim             int
	degreeIncrease  int
	maxDegree       int
	matrixCacheSize int
	resultCacheSize int
}

// NewParametersFromLiteral instantiates a set of [Parameters] from a [ParametersLiteral]
// specification. It returns the empty parameters [Parameters]{} and a non-nil error
// if the specified parameters are invalid.
func NewParametersFromLiteral(pl ParametersLiteral) (params Parameters, err error) {

	if pl.Dim < 1 {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: Dim must be at least 1 but is %d", pl.Dim)
	}

	for _, f := range []struct {
		name string
		val  int
	}{
		{"DegreeIncrease", pl.DegreeIncrease},
		{"MaxDegree", pl.MaxDegree},
		{"MatrixCacheSize", pl.MatrixCacheSize},
		{"ResultCacheSize", pl.ResultCacheSize},
	} {
		if f.val < 0 {
			return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %s must be non-negative but is %d", f.name, f.val)
		}
	}

	params = Parameters{
		dim:             pl.Dim,
		degreeIncrease:  pl.DegreeIncrease,
		maxDegree:       pl.MaxDegree,
		matrixCacheSize: pl.MatrixCacheSize,
		resultCacheSize: pl.ResultCacheSize,
	}

	if params.maxDegree == 0 {
		params.maxDegree = DefaultMaxDegree
	}

	if params.matrixCacheSize == 0 {
		params.matrixCacheSize = DefaultMatrixCacheSize
	}

	if params.resultCacheSize == 0 {
		params.resultCacheSize = DefaultResultCacheSize
	}

	if params.degreeIncrease > params.maxDegree {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: DegreeIncrease=%d is larger than MaxDegree=%d", params.degreeIncrease, params.maxDegree)
	}

	return
}

// ParametersLiteral returns the [ParametersLiteral] of the target [Parameters].
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{
		Dim:             p.dim,
		DegreeIncrease:  p.degreeIncrease,
		MaxDegree:       p.maxDegree,
		MatrixCacheSize: p.matrixCacheSize,
		ResultCacheSize: p.resultCacheSize,
	}
}

// Dim returns the number of variables of the polynomials.
func (p Parameters) Dim() int {
	return p.dim
}

// DegreeIncrease returns the default degree elevation applied by the transform to
// the Bernstein basis.
func (p Parameters) DegreeIncrease() int {
	return p.degreeIncrease
}

// MaxDegree returns the largest degree of a change-of-basis matrix.
func (p Parameters) MaxDegree() int {
	return p.maxDegree
}

// MatrixCacheSize returns the maximum number of cached change-of-basis matrices.
func (p Parameters) MatrixCacheSize() int {
	return p.matrixCacheSize
}

// ResultCacheSize returns the maximum number of cached Bernstein coefficient tensors.
func (p Parameters) ResultCacheSize() int {
	return p.resultCacheSize
}

// Equal returns true if the receiver and other are equal.
func (p Parameters) Equal(other *Parameters) bool {
	return cmp.Equal(p.ParametersLiteral(), other.ParametersLiteral())
}

// MarshalJSON returns a JSON representation of this parameter set. See Marshal from the [encoding/json] package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the receiver Parameter. See Unmarshal from the [encoding/json] package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var params ParametersLiteral
	if err = json.Unmarshal(data, &params); err != nil {
		return err
	}
	*p, err = NewParametersFromLiteral(params)
	return
}
