package services

import (
	"errors"

	"docdispatch/internal/core/domain/model/delegate"
	"docdispatch/internal/core/domain/model/order"
)

// ErrDelegateNotFound is returned when no delegate can serve an order's
// (city, service) territory. This occurs when the candidate list is empty or
// when every candidate is unavailable or registered for a different territory.
var ErrDelegateNotFound = errors.New("delegate not found")

// DelegateDispatcher is a domain service responsible for picking the delegate
// for an order and executing the assignment on the aggregate.
//
// Business rules:
//   - Orders must be valid and unassigned before dispatch
//   - Candidates are evaluated in the order provided; the directory supplies
//     them deterministically sorted, so with a healthy directory the first
//     candidate wins
//   - Only available delegates registered for the order's exact
//     (city, service) territory qualify
//
// Example usage:
//
//	dispatcher := NewDelegateDispatcher()
//	assigned, err := dispatcher.Dispatch(ord, candidates)
//	if errors.Is(err, ErrDelegateNotFound) {
//	    // escalate: no coverage for this territory
//	}
type DelegateDispatcher struct{}

// NewDelegateDispatcher creates a new DelegateDispatcher instance.
func NewDelegateDispatcher() DelegateDispatcher {
	return DelegateDispatcher{}
}

// Dispatch picks the first qualifying delegate and assigns the order to it.
//
// Returns ErrDelegateNotFound when no candidate qualifies, or the aggregate's
// transition error when the order cannot accept an assignment.
func (d DelegateDispatcher) Dispatch(
	o *order.Order, candidates []*delegate.Delegate,
) (*delegate.Delegate, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	chosen, err := d.findDelegate(o, candidates)
	if err != nil {
		return nil, err
	}

	if err = o.Assign(chosen.ID()); err != nil {
		return nil, err
	}

	return chosen, nil
}

func (d DelegateDispatcher) findDelegate(
	o *order.Order, candidates []*delegate.Delegate,
) (*delegate.Delegate, error) {
	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		if !candidate.IsAvailable() {
			continue
		}

		if !candidate.ServesTerritory(o.City(), o.Service()) {
			continue
		}

		return candidate, nil
	}

	return nil, ErrDelegateNotFound
}
