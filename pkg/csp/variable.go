package csp

// variable.go: named finite-domain variables and event-emitting updates

import "fmt"

// Event classifies a domain change for subscription purposes.
type Event int

const (
	// EventMin fires when a variable's minimum strictly increases.
	EventMin Event = iota
	// EventMax fires when a variable's maximum strictly decreases.
	EventMax
	// EventIns fires when a variable becomes instantiated (min == max),
	// in addition to the EventMin or EventMax that caused it.
	EventIns
)

func (e Event) String() string {
	switch e {
	case EventMin:
		return "min"
	case EventMax:
		return "max"
	case EventIns:
		return "ins"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

// Variable is a named integer variable owned by a Model. Its identity
// is the pair (model, dense index); all domain mutation goes through
// the update methods below so subscribed propagators get woken.
type Variable struct {
	model *Model
	id    int
	name  string
	dom   *domain
}

// ID returns the variable's dense index within its model.
func (v *Variable) ID() int { return v.id }

// Name returns the name given at creation.
func (v *Variable) Name() string { return v.name }

// Min returns the smallest value in the variable's domain.
func (v *Variable) Min() int { return v.dom.min }

// Max returns the largest value in the variable's domain.
func (v *Variable) Max() int { return v.dom.max }

// Size returns the number of values left in the variable's domain.
func (v *Variable) Size() int { return v.dom.size() }

// Contains reports whether val is still in the variable's domain.
func (v *Variable) Contains(val int) bool { return v.dom.contains(val) }

// IsInstantiated reports whether the domain is a singleton.
func (v *Variable) IsInstantiated() bool { return v.dom.min == v.dom.max }

// setMin tightens the lower bound and returns the propagators to wake:
// the min subscribers, plus the instantiation subscribers if the
// update collapsed the domain to a single value.
func (v *Variable) setMin(min int) ([]int, error) {
	if min <= v.dom.min {
		return nil, nil
	}
	if err := v.dom.setMin(min); err != nil {
		return nil, err
	}
	v.model.monitor.RecordNarrowing()
	wake := v.model.waitingOn(v.id, EventMin)
	if v.IsInstantiated() {
		wake = append(wake, v.model.waitingOn(v.id, EventIns)...)
	}
	return wake, nil
}

// setMax tightens the upper bound; the mirror image of setMin.
func (v *Variable) setMax(max int) ([]int, error) {
	if max >= v.dom.max {
		return nil, nil
	}
	if err := v.dom.setMax(max); err != nil {
		return nil, err
	}
	v.model.monitor.RecordNarrowing()
	wake := v.model.waitingOn(v.id, EventMax)
	if v.IsInstantiated() {
		wake = append(wake, v.model.waitingOn(v.id, EventIns)...)
	}
	return wake, nil
}

// remove deletes one value from the domain. Removals at a bound are
// routed through setMin/setMax so the corresponding events fire;
// interior removals change no bound and wake nobody.
func (v *Variable) remove(val int) ([]int, error) {
	switch {
	case val < v.Min() || val > v.Max():
		return nil, nil
	case v.IsInstantiated():
		return nil, ErrDomainEmpty
	case val == v.Min():
		return v.setMin(val + 1)
	case val == v.Max():
		return v.setMax(val - 1)
	default:
		if !v.dom.contains(val) {
			return nil, nil
		}
		if err := v.dom.remove(val); err != nil {
			return nil, err
		}
		v.model.monitor.RecordNarrowing()
		return nil, nil
	}
}

// String renders the variable as "name (min, max) [lo..hi, ...]".
func (v *Variable) String() string {
	return fmt.Sprintf("%s %s", v.name, v.dom)
}
