/*
Package berry bounds multivariate polynomials on the unit box [0,1]^d.

A polynomial given in the power basis is rewritten in the tensor-product Bernstein basis,
whose coefficients enclose the range of the polynomial: the smallest coefficient is a lower
bound of its infimum and the largest an upper bound of its supremum. Raising the degree of
the Bernstein basis tightens the enclosure.

The library is organized as follows:
  - multiindex: enumeration of multi-indices (exhaustive, bounded, fixed-norm)
  - polynomial: dense multivariate polynomials, arithmetic, evaluation and serialization
  - bernstein: change-of-basis matrices and a caching transformer
  - bound: infimum and supremum bounds computed from Bernstein coefficients
  - config, logging: YAML configuration and structured logging used by cmd/berry
*/
package berry
