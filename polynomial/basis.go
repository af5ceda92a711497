package polynomial

import (
	"fmt"
	"strings"
)

// Power tags a polynomial whose coefficients are expressed in the monomial basis
// x0^e0 * x1^e1 * ...
type Power struct{}

// Bernstein tags a polynomial whose coefficients are expressed in the tensor
// Bernstein basis of its degree on the unit box.
type Bernstein struct{}

// Basis is the type set of the basis tags of a [Polynomial].
type Basis interface {
	Power | Bernstein
	fmt.Stringer
	tag() uint8
	term(e []int) string
}

// String returns the name of the basis.
func (Power) String() string {
	return "power"
}

func (Power) tag() uint8 {
	return 0
}

func (Power) term(e []int) string {
	var sb strings.Builder
	for d, ed := range e {
		switch ed {
		case 0:
		case 1:
			fmt.Fprintf(&sb, "*x%d", d)
		default:
			fmt.Fprintf(&sb, "*x%d^%d", d, ed)
		}
	}
	return sb.String()
}

// String returns the name of the basis.
func (Bernstein) String() string {
	return "bernstein"
}

func (Bernstein) tag() uint8 {
	return 1
}

func (Bernstein) term(e []int) string {
	s := make([]string, len(e))
	for d, ed := range e {
		s[d] = fmt.Sprint(ed)
	}
	return "*B(" + strings.Join(s, ",") + ")"
}
