package kernel

import (
	"strings"

	"docdispatch/internal/pkg/errs"
	"docdispatch/internal/pkg/guard"
)

// ErrCityIsNotConstructed is returned when attempting to use an improperly initialized City.
// Cities must be created using the NewCity constructor to ensure validity.
var ErrCityIsNotConstructed = errs.NewValueIsRequiredError(
	"city must be created via NewCity constructor")

// City represents the city an order is fulfilled in.
// City is an immutable value object; matching between orders and delegates happens
// on the normalized (lower-cased, trimmed) city name.
// The zero value of City is invalid and will fail validation - use NewCity to create instances.
//
// Example:
//
//	city, err := kernel.NewCity("Casablanca")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(city.Name()) // Output: casablanca
type City struct { //nolint:recvcheck //using for validation
	name  string
	guard guard.ConstructorGuard
}

// NewCity creates a City from a human-entered name.
// The name is trimmed and lower-cased so that "Rabat" and " rabat " refer to the
// same dispatch territory. Returns an error if the name is empty after trimming.
func NewCity(name string) (City, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return City{}, errs.NewValueIsRequiredError("city")
	}

	return City{
		name:  normalized,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Name returns the normalized city name.
func (c City) Name() string {
	return c.name
}

// String implements fmt.Stringer.
func (c City) String() string {
	return c.name
}

// IsEqual compares two cities by their normalized names.
func (c City) IsEqual(other City) bool {
	return c.name == other.name
}

// Validate ensures the City was created through NewCity.
func (c City) Validate() error {
	return c.guard.Validate(ErrCityIsNotConstructed)
}
