package rank

import "errors"

// Sentinel errors for estimator input validation and convergence.
var (
	// ErrInvalidInput indicates malformed arguments: an empty graph, a
	// damping factor outside [0, 1], a non-positive sample count or
	// tolerance, or an unknown starting page.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoConvergence indicates the iterative estimator failed to settle
	// within its iteration bound. Effectively unreachable for damping < 1
	// on a well-formed graph, but defined so the loop is always bounded.
	ErrNoConvergence = errors.New("no convergence within iteration limit")
)
