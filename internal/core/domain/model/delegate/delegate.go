package delegate

import (
	"errors"
	"fmt"

	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/pkg/errs"
	"docdispatch/internal/pkg/guard"
)

// Domain errors for delegate operations.
var (
	// ErrNameIsRequired is returned when attempting to create a delegate without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDelegateIsNotConstructed is returned when using an improperly initialized Delegate.
	ErrDelegateIsNotConstructed = errors.New("Delegate must be created via NewDelegate constructor")
)

// Delegate represents a field worker registered to carry out document
// procurement in exactly one (city, service) territory.
//
// A delegate is found through directory lookup — at most one active delegate
// should exist per (city, service) pair — and accrues completion bookkeeping
// as orders it served reach the end of their lifecycle.
//
// Business rules:
//   - Delegate must have a valid UUID, a linked account, a non-empty name,
//     and a valid (city, service) territory
//   - An unavailable delegate is excluded from directory lookup but keeps
//     its historical counters
//   - Completed-order count and accrued earnings only ever grow
type Delegate struct {
	// id uniquely identifies the delegate
	id kernel.UUID
	// accountID links the delegate to its login account
	accountID kernel.UUID
	// name is the human-readable name of the delegate
	name string
	// city is the territory the delegate serves
	city kernel.City
	// service is the administrative body type the delegate handles
	service kernel.ServiceCategory
	// available marks whether the delegate currently accepts new assignments
	available bool
	// completedOrders counts orders the delegate carried to completion
	completedOrders int
	// earnings is the accrued payout total, in minor currency units
	earnings int64
	// guard ensures the delegate was properly constructed
	guard guard.ConstructorGuard
}

// NewDelegate creates a new available Delegate for the given territory.
// This is the only way to create a fresh Delegate instance; counters start
// at zero.
func NewDelegate(
	id kernel.UUID,
	accountID kernel.UUID,
	name string,
	city kernel.City,
	service kernel.ServiceCategory,
) (*Delegate, error) {
	delegate := &Delegate{
		available: true,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		delegate.setID(id),
		delegate.setAccountID(accountID),
		delegate.setName(name),
		delegate.setCity(city),
		delegate.setService(service),
	); err != nil {
		return nil, err
	}

	return delegate, nil
}

// RestoreDelegateParams carries every persisted attribute needed to rebuild
// a Delegate aggregate from storage.
type RestoreDelegateParams struct {
	ID              kernel.UUID
	AccountID       kernel.UUID
	Name            string
	City            kernel.City
	Service         kernel.ServiceCategory
	Available       bool
	CompletedOrders int
	Earnings        int64
}

// RestoreDelegate reconstructs a Delegate from persistence, including its
// availability flag and bookkeeping counters.
func RestoreDelegate(p RestoreDelegateParams) (*Delegate, error) {
	delegate := &Delegate{
		available: p.Available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		delegate.setID(p.ID),
		delegate.setAccountID(p.AccountID),
		delegate.setName(p.Name),
		delegate.setCity(p.City),
		delegate.setService(p.Service),
		delegate.setCompletedOrders(p.CompletedOrders),
		delegate.setEarnings(p.Earnings),
	); err != nil {
		return nil, err
	}

	return delegate, nil
}

// IsEqual compares two delegates by their unique identifiers.
func (d *Delegate) IsEqual(other *Delegate) bool {
	if other == nil {
		return false
	}
	return d.id.IsEqual(other.id)
}

// Validate checks if the Delegate was properly constructed.
// The zero value of Delegate is invalid and will fail this validation.
func (d *Delegate) Validate() error {
	if d == nil {
		return ErrDelegateIsNotConstructed
	}
	return d.guard.Validate(ErrDelegateIsNotConstructed)
}

// ID returns the unique identifier of the delegate.
func (d *Delegate) ID() kernel.UUID {
	return d.id
}

// AccountID returns the login account linked to the delegate.
func (d *Delegate) AccountID() kernel.UUID {
	return d.accountID
}

// Name returns the human-readable name of the delegate.
func (d *Delegate) Name() string {
	return d.name
}

// City returns the territory the delegate serves.
func (d *Delegate) City() kernel.City {
	return d.city
}

// Service returns the administrative body type the delegate handles.
func (d *Delegate) Service() kernel.ServiceCategory {
	return d.service
}

// IsAvailable reports whether the delegate currently accepts new assignments.
func (d *Delegate) IsAvailable() bool {
	return d.available
}

// CompletedOrders returns the number of orders the delegate carried to completion.
func (d *Delegate) CompletedOrders() int {
	return d.completedOrders
}

// Earnings returns the accrued payout total, in minor currency units.
func (d *Delegate) Earnings() int64 {
	return d.earnings
}

// ServesTerritory reports whether the delegate covers the given (city, service)
// pair. Directory lookup relies on this match being exact.
func (d *Delegate) ServesTerritory(city kernel.City, service kernel.ServiceCategory) bool {
	return d.city.IsEqual(city) && d.service == service
}

// SetAvailable toggles whether the delegate accepts new assignments.
// Turning availability off does not touch orders already assigned.
func (d *Delegate) SetAvailable(available bool) {
	d.available = available
}

// RecordCompletedOrder accrues the bookkeeping for one completed order:
// the completion counter and the payout earned on that order.
func (d *Delegate) RecordCompletedOrder(payout int64) error {
	if payout < 0 {
		return errs.NewValueIsInvalidErrorWithCause("payout is invalid",
			fmt.Errorf("%d is negative", payout))
	}

	d.completedOrders++
	d.earnings += payout
	return nil
}

func (d *Delegate) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delegate) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	d.accountID = accountID
	return nil
}

func (d *Delegate) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Delegate) setCity(city kernel.City) error {
	if err := city.Validate(); err != nil {
		return err
	}
	d.city = city
	return nil
}

func (d *Delegate) setService(service kernel.ServiceCategory) error {
	if err := service.Validate(); err != nil {
		return err
	}
	d.service = service
	return nil
}

func (d *Delegate) setCompletedOrders(completedOrders int) error {
	if completedOrders < 0 {
		return errs.NewValueIsInvalidErrorWithCause("completed orders is invalid",
			fmt.Errorf("%d is negative", completedOrders))
	}
	d.completedOrders = completedOrders
	return nil
}

func (d *Delegate) setEarnings(earnings int64) error {
	if earnings < 0 {
		return errs.NewValueIsInvalidErrorWithCause("earnings is invalid",
			fmt.Errorf("%d is negative", earnings))
	}
	d.earnings = earnings
	return nil
}
