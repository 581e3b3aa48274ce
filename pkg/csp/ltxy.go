package csp

// ltxy.go: the ordering constraint family. Everything reduces to the
// two half-propagators of x < y + c, or to a direct bound update.

// LtXY constrains x < y.
func LtXY(x, y *Variable) Constraint { return LtXYC(x, y, 0) }

// LtXYC constrains x < y + c. It installs two half-propagators: one
// trims x's maximum when y's maximum drops, the other raises y's
// minimum when x's minimum rises.
func LtXYC(x, y *Variable, c int) Constraint {
	return constraintFunc(func(m *Model) error {
		if err := m.checkVars(x, y); err != nil {
			return err
		}
		if err := m.addProp(&ltXYCx{prop{len(m.props), m}, x, y, c}); err != nil {
			return err
		}
		return m.addProp(&ltXYCy{prop{len(m.props), m}, x, y, c})
	})
}

// LeXY constrains x <= y.
func LeXY(x, y *Variable) Constraint { return LtXYC(x, y, 1) }

// LeXYC constrains x <= y + c.
func LeXYC(x, y *Variable, c int) Constraint { return LtXYC(x, y, c+1) }

// GtXY constrains x > y.
func GtXY(x, y *Variable) Constraint { return LtXYC(y, x, 0) }

// GtXYC constrains x > y + c.
func GtXYC(x, y *Variable, c int) Constraint { return LtXYC(y, x, -c) }

// GeXY constrains x >= y.
func GeXY(x, y *Variable) Constraint { return LtXYC(y, x, 1) }

// GeXYC constrains x >= y + c.
func GeXYC(x, y *Variable, c int) Constraint { return LtXYC(y, x, 1-c) }

// LtXC constrains x < c by trimming the upper bound directly.
func LtXC(x *Variable, c int) Constraint { return LeXC(x, c-1) }

// LeXC constrains x <= c.
func LeXC(x *Variable, c int) Constraint {
	return constraintFunc(func(m *Model) error {
		if err := m.checkVars(x); err != nil {
			return err
		}
		wake, err := x.setMax(c)
		if err != nil {
			return err
		}
		return m.propagateAll(wake)
	})
}

// GtXC constrains x > c by raising the lower bound directly.
func GtXC(x *Variable, c int) Constraint { return GeXC(x, c+1) }

// GeXC constrains x >= c.
func GeXC(x *Variable, c int) Constraint {
	return constraintFunc(func(m *Model) error {
		if err := m.checkVars(x); err != nil {
			return err
		}
		wake, err := x.setMin(c)
		if err != nil {
			return err
		}
		return m.propagateAll(wake)
	})
}

// ltXYCx is the x-side half of x < y + c: it follows y's maximum and
// keeps x.max below it.
type ltXYCx struct {
	prop
	x, y *Variable
	c    int
}

func (p *ltXYCx) events() []subscription {
	return []subscription{{p.y.id, EventMax}}
}

func (p *ltXYCx) propagate() ([]int, error) {
	if p.x.Max() < p.y.Min()+p.c {
		// entailed: x can never reach y + c
		p.model.unregister(p)
		return nil, nil
	}
	if p.x.Max() > p.y.Max()+p.c-1 {
		return p.x.setMax(p.y.Max() + p.c - 1)
	}
	return nil, nil
}

// ltXYCy is the y-side half of x < y + c: it follows x's minimum and
// keeps y.min above it.
type ltXYCy struct {
	prop
	x, y *Variable
	c    int
}

func (p *ltXYCy) events() []subscription {
	return []subscription{{p.x.id, EventMin}}
}

func (p *ltXYCy) propagate() ([]int, error) {
	if p.x.Max() < p.y.Min()+p.c {
		p.model.unregister(p)
		return nil, nil
	}
	if p.y.Min() < p.x.Min()-p.c+1 {
		return p.y.setMin(p.x.Min() - p.c + 1)
	}
	return nil, nil
}
