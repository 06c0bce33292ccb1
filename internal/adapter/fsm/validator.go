package fsm

import (
	"context"
	"errors"
	"fmt"

	loopfsm "github.com/looplab/fsm"

	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/domain"
)

var _ domain.TransitionValidator = (*Validator)(nil)

// machineEvents is domain.Transitions in looplab/fsm form.
var machineEvents = eventDescs(domain.Transitions)

type edge struct {
	event domain.Event
	dst   domain.Status
}

// eventDescs folds rows sharing an event and destination into one
// EventDesc. delete reaches REMOVED from every stored status, so it ends
// up as a single EventDesc with three sources.
func eventDescs(table []domain.Transition) loopfsm.Events {
	var out loopfsm.Events
	at := make(map[edge]int, len(table))

	for _, t := range table {
		e := edge{event: t.Event, dst: t.Dst}
		i, ok := at[e]
		if !ok {
			i = len(out)
			at[e] = i
			out = append(out, loopfsm.EventDesc{Name: string(t.Event), Dst: string(t.Dst)})
		}
		out[i].Src = append(out[i].Src, string(t.Src))
	}
	return out
}

// Validator decides business transitions with looplab/fsm. Only statuses a
// stored business can carry are starting points; REMOVED is a sink and is
// refused like any unknown status.
type Validator struct{}

// New creates a transition validator.
func New() *Validator {
	return &Validator{}
}

// Apply returns the status event leads to from current, or a
// *domain.TransitionError when the table has no such row.
func (v *Validator) Apply(ctx context.Context, current domain.Status, event domain.Event) (domain.Status, error) {
	refused := &domain.TransitionError{Event: event, Current: current}
	if !current.Valid() {
		return "", refused
	}

	m := loopfsm.NewFSM(string(current), machineEvents, nil)
	err := m.Event(ctx, string(event))
	switch {
	case err == nil:
		return domain.Status(m.Current()), nil
	case isRefusal(err):
		return "", refused
	default:
		return "", fmt.Errorf("applying %s to %s business: %w", event, current, err)
	}
}

// isRefusal reports whether looplab/fsm turned the event down, as opposed
// to failing for another reason such as a canceled context.
func isRefusal(err error) bool {
	var invalid loopfsm.InvalidEventError
	var unknown loopfsm.UnknownEventError
	var noop loopfsm.NoTransitionError
	return errors.As(err, &invalid) || errors.As(err, &unknown) || errors.As(err, &noop)
}
