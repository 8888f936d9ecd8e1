package kernel

import (
	"fmt"

	"docdispatch/internal/pkg/errs"
)

// ServiceCategory represents the administrative body type an order is routed through.
// It is a closed enumeration: every order and every delegate carries exactly one
// service category, and dispatch matches on the (city, service category) pair.
//
// ServiceCategory is a value object that validates membership in the enumeration
// and provides string representations for persistence and display.
type ServiceCategory int

const (
	// ServiceCategoryUnknown represents an invalid or undefined category.
	// This value (0) helps catch uninitialized ServiceCategory values.
	ServiceCategoryUnknown ServiceCategory = iota

	// ServiceMunicipalOffice routes orders through a municipal office.
	ServiceMunicipalOffice

	// ServiceSubPrefecture routes orders through a sub-prefecture.
	ServiceSubPrefecture

	// ServiceJudicial routes orders through a judicial body.
	ServiceJudicial
)

// getServiceCategoryStrings returns a map of ServiceCategory values to their string
// representations. All categories are included for string conversion.
func getServiceCategoryStrings() map[ServiceCategory]string {
	return map[ServiceCategory]string{
		ServiceCategoryUnknown: "unknown",
		ServiceMunicipalOffice: "municipal_office",
		ServiceSubPrefecture:   "sub_prefecture",
		ServiceJudicial:        "judicial",
	}
}

// getValidServiceCategoryStrings returns a map of only valid ServiceCategory values.
// Only valid categories are included to support validation and parsing.
func getValidServiceCategoryStrings() map[ServiceCategory]string {
	//nolint:exhaustive // ServiceCategoryUnknown is intentionally excluded as it's invalid
	return map[ServiceCategory]string{
		ServiceMunicipalOffice: "municipal_office",
		ServiceSubPrefecture:   "sub_prefecture",
		ServiceJudicial:        "judicial",
	}
}

// ServiceCategoryFromString parses a persisted or user-supplied category name.
// Returns an error for any string outside the closed enumeration.
func ServiceCategoryFromString(s string) (ServiceCategory, error) {
	for category, str := range getValidServiceCategoryStrings() {
		if str == s {
			return category, nil
		}
	}
	return ServiceCategoryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"service category is invalid",
		fmt.Errorf("%q is not a valid service category", s),
	)
}

// Validate checks if the ServiceCategory value is a member of the enumeration.
//
// Valid categories are: ServiceMunicipalOffice, ServiceSubPrefecture, ServiceJudicial.
// ServiceCategoryUnknown (0) and any other values are invalid.
func (s ServiceCategory) Validate() error {
	if _, ok := getValidServiceCategoryStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"service category is invalid",
			fmt.Errorf("%d is not a valid service category", s),
		)
	}
	return nil
}

// String returns the persisted name of the category.
// Returns "unknown" for invalid values. Implements fmt.Stringer.
func (s ServiceCategory) String() string {
	if str, ok := getServiceCategoryStrings()[s]; ok {
		return str
	}
	return "unknown"
}
