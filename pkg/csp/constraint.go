package csp

// constraint.go: the public constraint surface, lowered onto the kernel

// Constraint is a relation that can be posted to a model. The concrete
// constructors (LtXY, EqXYC, NeqXC, ...) all reduce to a small kernel:
// the two LtXYC half-propagators, the NeqXYC propagator, or a direct
// bound update on a single variable.
type Constraint interface {
	apply(m *Model) error
}

// constraintFunc adapts a lowering function to the Constraint interface.
type constraintFunc func(m *Model) error

func (f constraintFunc) apply(m *Model) error { return f(m) }

// checkVars verifies that every operand belongs to the posting model.
func (m *Model) checkVars(vars ...*Variable) error {
	for _, v := range vars {
		if !m.owns(v) {
			return ErrInvalidArgument
		}
	}
	return nil
}
