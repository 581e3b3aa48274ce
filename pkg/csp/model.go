// Package csp implements a finite-domain constraint propagation engine.
// A Model owns integer variables with interval-list domains and a set of
// propagators that narrow those domains toward bound consistency. Posting
// a constraint installs propagators, each subscribed to the domain events
// it cares about; any narrowing wakes the subscribed propagators and the
// model drains the resulting work until a fixed point is reached.
//
// The engine performs propagation only. Search (labeling, backtracking)
// is left to callers, which can drive the model from outside.
package csp

// model.go: the model container, subscription index, and fixed-point loop

import (
	"errors"

	"github.com/tliron/commonlog"
)

var (
	// ErrInconsistent reports a tightening that contradicts the current
	// domain, or a posting to a model that has already failed.
	ErrInconsistent = errors.New("model is inconsistent")
	// ErrDomainEmpty reports an operation that would leave a domain with
	// no values.
	ErrDomainEmpty = errors.New("domain became empty")
	// ErrInvalidArgument reports malformed input such as inverted bounds
	// or a variable belonging to a different model.
	ErrInvalidArgument = errors.New("invalid argument")
)

// subKey addresses one slot of the subscription index.
type subKey struct {
	varID int
	event Event
}

// Model owns the variables and propagators of a constraint problem.
// Variables and propagators are stored in append-only slices, so their
// dense indices double as identifiers and are never reused.
//
// A Model is not safe for concurrent use; propagation is synchronous
// and completes before any posting call returns.
type Model struct {
	vars    []*Variable
	props   []propagator
	waiting map[subKey][]int
	failed  bool
	log     commonlog.Logger
	monitor *Monitor
}

// Option configures a Model at construction time.
type Option func(*Model) error

// WithLogger routes propagation tracing to the given logger instead of
// the default "csp" logger.
func WithLogger(log commonlog.Logger) Option {
	return func(m *Model) error {
		m.log = log
		return nil
	}
}

// WithMonitor attaches a Monitor that counts propagation activity.
func WithMonitor(monitor *Monitor) Option {
	return func(m *Model) error {
		m.monitor = monitor
		return nil
	}
}

// New creates an empty model.
func New(opts ...Option) (*Model, error) {
	m := &Model{
		waiting: make(map[subKey][]int),
		log:     commonlog.GetLogger("csp"),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// NewVariable creates a variable with domain [min, max] and registers
// it under the next dense identifier.
func (m *Model) NewVariable(min, max int, name string) (*Variable, error) {
	if min > max {
		return nil, ErrInvalidArgument
	}
	v := &Variable{
		model: m,
		id:    len(m.vars),
		name:  name,
		dom:   newDomain(min, max),
	}
	m.vars = append(m.vars, v)
	return v, nil
}

// NumVariables returns how many variables have been created.
func (m *Model) NumVariables() int { return len(m.vars) }

// NumPropagators returns how many propagators have been installed,
// including ones that have since become entailed.
func (m *Model) NumPropagators() int { return len(m.props) }

// Failed reports whether a previous posting or propagation failed.
// A failed model rejects further postings.
func (m *Model) Failed() bool { return m.failed }

// Post installs a constraint: the constraint lowers itself onto the
// propagator kernel, each new propagator registers its subscriptions
// and propagates once, and the model drains all resulting work. On
// failure the model is marked failed and the error returned; domains
// keep their last consistent-or-narrowed state.
func (m *Model) Post(c Constraint) error {
	if m.failed {
		return ErrInconsistent
	}
	m.monitor.RecordConstraint()
	if err := c.apply(m); err != nil {
		m.failed = true
		m.monitor.RecordFailure()
		return err
	}
	return nil
}

// owns reports whether v belongs to this model.
func (m *Model) owns(v *Variable) bool {
	return v != nil && v.model == m
}

// addProp stores a freshly constructed propagator, registers its
// subscriptions, and runs its initial propagation to a fixed point.
// The propagator must have been created with id == len(m.props).
func (m *Model) addProp(p propagator) error {
	m.props = append(m.props, p)
	m.register(p)
	return m.propagate(p.id())
}

// register adds every subscription the propagator declares.
func (m *Model) register(p propagator) {
	for _, s := range p.events() {
		m.addWaiting(s.varID, s.event, p.id())
	}
}

// unregister removes the propagator from every slot it subscribed to.
// Called exactly when a propagator detects entailment; afterwards it
// can never be woken again.
func (m *Model) unregister(p propagator) {
	for _, s := range p.events() {
		m.delWaiting(s.varID, s.event, p.id())
	}
	m.monitor.RecordEntailment()
}

func (m *Model) addWaiting(varID int, event Event, propID int) {
	k := subKey{varID, event}
	m.waiting[k] = append(m.waiting[k], propID)
}

// delWaiting removes the first occurrence of propID from the slot.
// Absent entries are tolerated: a propagator can be re-entered from
// work queued before it became entailed.
func (m *Model) delWaiting(varID int, event Event, propID int) {
	k := subKey{varID, event}
	list := m.waiting[k]
	for i, id := range list {
		if id == propID {
			m.waiting[k] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// waitingOn returns a copy of the subscription slot. Callers hold the
// result across propagations, during which the slot itself may shrink.
func (m *Model) waitingOn(varID int, event Event) []int {
	list := m.waiting[subKey{varID, event}]
	if len(list) == 0 {
		return nil
	}
	out := make([]int, len(list))
	copy(out, list)
	return out
}

// propagate runs the propagator and transitively everything it wakes,
// until no more work remains. The explicit stack reproduces depth-first
// order: a wake set is processed front-first, and everything a woken
// propagator triggers runs before the next entry of its wake set.
//
// Termination: every invocation either strictly narrows some finite
// domain or wakes nobody, so the stack drains.
func (m *Model) propagate(id int) error {
	stack := []int{id}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		m.log.Debugf("propagating for %d", id)
		m.monitor.RecordPropagation()
		woken, err := m.props[id].propagate()
		if err != nil {
			m.failed = true
			return err
		}
		if len(woken) > 0 {
			m.log.Debugf("waking %v", woken)
			for i := len(woken) - 1; i >= 0; i-- {
				stack = append(stack, woken[i])
			}
			m.monitor.RecordStackDepth(len(stack))
		}
	}
	return nil
}

// propagateAll drains a wake set in order.
func (m *Model) propagateAll(ids []int) error {
	for _, id := range ids {
		if err := m.propagate(id); err != nil {
			return err
		}
	}
	return nil
}
