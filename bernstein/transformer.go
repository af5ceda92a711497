package bernstein

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gonum.org/v1/gonum/mat"

	"github.com/tuneinsight/berry/polynomial"
)

// ErrDegreeLimit is returned when a transform would require a change-of-basis
// matrix of degree larger than Parameters.MaxDegree.
var ErrDegreeLimit = errors.New("degree limit exceeded")

type matrixKind uint8

const (
	powerToBernstein matrixKind = iota
	bernsteinToPower
)

func (k matrixKind) String() string {
	if k == powerToBernstein {
		return "power-to-bernstein"
	}
	return "bernstein-to-power"
}

type matrixKey struct {
	kind     matrixKind
	degree   int
	increase int
}

func (k matrixKey) String() string {
	return fmt.Sprintf("%s/%d/%d", k.kind, k.degree, k.increase)
}

type resultKey struct {
	digest   [32]byte
	increase int
}

// CacheStats reports the activity of the caches of a [Transformer].
type CacheStats struct {
	MatrixHits      int
	MatrixMisses    int
	MatrixEntries   int
	ResultHits      int
	ResultMisses    int
	ResultEntries   int
	EvictedMatrices int
	EvictedResults  int
}

// Transformer converts polynomials of a fixed dimension between the power and the
// Bernstein bases. It caches the change-of-basis matrices by degree and the Bernstein
// coefficients by polynomial digest.
//
// Transformer is safe for concurrent use.
type Transformer struct {
	params Parameters
	logger *zap.Logger

	mu       sync.Mutex
	matrices *lruCache[matrixKey, *mat.Dense]
	results  *lruCache[resultKey, *polynomial.Polynomial[polynomial.Bernstein]]
	flight   singleflight.Group
}

// NewTransformer instantiates a new [Transformer] from the given parameters.
// A nil logger disables logging.
func NewTransformer(params Parameters, logger *zap.Logger) *Transformer {

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Transformer{
		params:   params,
		logger:   logger.Named("bernstein"),
		matrices: newLRUCache[matrixKey, *mat.Dense](params.MatrixCacheSize()),
		results:  newLRUCache[resultKey, *polynomial.Polynomial[polynomial.Bernstein]](params.ResultCacheSize()),
	}
}

// Parameters returns the parameters of the transformer.
func (t *Transformer) Parameters() Parameters {
	return t.params
}

// ToBernstein returns the Bernstein coefficients of degree p.Degree()+increase of p.
// The returned polynomial is a copy and can be freely modified.
func (t *Transformer) ToBernstein(p *polynomial.Polynomial[polynomial.Power], increase int) (*polynomial.Polynomial[polynomial.Bernstein], error) {

	if err := t.check(p.Dim(), p.Degree(), increase); err != nil {
		return nil, fmt.Errorf("cannot ToBernstein: %w", err)
	}

	key := resultKey{digest: p.Digest(), increase: increase}

	t.mu.Lock()
	b, ok := t.results.get(key)
	t.mu.Unlock()

	if ok {
		t.logger.Debug("result cache hit", zap.Int("degree", p.Degree()), zap.Int("increase", increase))
		return b.CopyNew(), nil
	}

	m, err := t.PowerToBernsteinMatrix(p.Degree(), increase)
	if err != nil {
		return nil, fmt.Errorf("cannot ToBernstein: %w", err)
	}

	if b, err = Transform[polynomial.Power, polynomial.Bernstein](p, m); err != nil {
		return nil, fmt.Errorf("cannot ToBernstein: %w", err)
	}

	t.mu.Lock()
	t.results.put(key, b)
	t.mu.Unlock()

	return b.CopyNew(), nil
}

// ToPower returns the power-basis coefficients of the Bernstein-basis polynomial b.
func (t *Transformer) ToPower(b *polynomial.Polynomial[polynomial.Bernstein]) (*polynomial.Polynomial[polynomial.Power], error) {

	if err := t.check(b.Dim(), b.Degree(), 0); err != nil {
		return nil, fmt.Errorf("cannot ToPower: %w", err)
	}

	m, err := t.BernsteinToPowerMatrix(b.Degree())
	if err != nil {
		return nil, fmt.Errorf("cannot ToPower: %w", err)
	}

	return Transform[polynomial.Bernstein, polynomial.Power](b, m)
}

// PowerToBernsteinMatrix returns the, possibly cached, power to Bernstein matrix of
// the dimension of the transformer. The returned matrix is shared and must not be modified.
func (t *Transformer) PowerToBernsteinMatrix(degree, increase int) (*mat.Dense, error) {

	if err := t.check(t.params.Dim(), degree, increase); err != nil {
		return nil, fmt.Errorf("cannot PowerToBernsteinMatrix: %w", err)
	}

	return t.matrix(matrixKey{kind: powerToBernstein, degree: degree, increase: increase})
}

// BernsteinToPowerMatrix returns the, possibly cached, Bernstein to power matrix of
// the dimension of the transformer. The returned matrix is shared and must not be modified.
func (t *Transformer) BernsteinToPowerMatrix(degree int) (*mat.Dense, error) {

	if err := t.check(t.params.Dim(), degree, 0); err != nil {
		return nil, fmt.Errorf("cannot BernsteinToPowerMatrix: %w", err)
	}

	return t.matrix(matrixKey{kind: bernsteinToPower, degree: degree})
}

// Stats returns a snapshot of the cache counters.
func (t *Transformer) Stats() CacheStats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return CacheStats{
		MatrixHits:      t.matrices.hits,
		MatrixMisses:    t.matrices.misses,
		MatrixEntries:   t.matrices.len(),
		ResultHits:      t.results.hits,
		ResultMisses:    t.results.misses,
		ResultEntries:   t.results.len(),
		EvictedMatrices: t.matrices.evictions,
		EvictedResults:  t.results.evictions,
	}
}

// Reset empties the caches.
func (t *Transformer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.matrices.clear()
	t.results.clear()
}

func (t *Transformer) check(dim, degree, increase int) error {

	if dim != t.params.Dim() {
		return fmt.Errorf("polynomial has dim=%d but transformer has dim=%d: %w", dim, t.params.Dim(), polynomial.ErrDimensionMismatch)
	}

	if degree < 0 || increase < 0 {
		return fmt.Errorf("degree=%d and increase=%d must be non-negative", degree, increase)
	}

	if degree+increase > t.params.MaxDegree() {
		return fmt.Errorf("degree %d+%d is larger than %d: %w", degree, increase, t.params.MaxDegree(), ErrDegreeLimit)
	}

	return nil
}

func (t *Transformer) matrix(key matrixKey) (*mat.Dense, error) {

	t.mu.Lock()
	m, ok := t.matrices.get(key)
	t.mu.Unlock()

	if ok {
		return m, nil
	}

	// concurrent misses on the same key build the matrix once
	v, err, _ := t.flight.Do(key.String(), func() (interface{}, error) {

		t.logger.Debug("building change-of-basis matrix",
			zap.Stringer("kind", key.kind),
			zap.Int("dim", t.params.Dim()),
			zap.Int("degree", key.degree),
			zap.Int("increase", key.increase))

		var m *mat.Dense
		switch key.kind {
		case powerToBernstein:
			m = PowerToBernsteinMatrix(t.params.Dim(), key.degree, key.increase)
		default:
			m = BernsteinToPowerMatrix(t.params.Dim(), key.degree)
		}

		t.mu.Lock()
		t.matrices.put(key, m)
		t.mu.Unlock()

		return m, nil
	})

	if err != nil {
		return nil, err
	}

	return v.(*mat.Dense), nil
}
