package order

import (
	"errors"
	"regexp"

	"docdispatch/internal/pkg/errs"
	"docdispatch/internal/pkg/guard"
)

// ErrDeliveryInfoIsNotConstructed is returned when using an improperly initialized DeliveryInfo.
var ErrDeliveryInfoIsNotConstructed = errors.New(
	"DeliveryInfo must be created via NewDeliveryInfo constructor")

// deliveryCodePattern matches the 4-digit confirmation code the recipient
// presents at hand-off.
var deliveryCodePattern = regexp.MustCompile(`^\d{4}$`)

// DeliveryInfo carries the recipient and delivery details an order needs before
// the delegate may mark it ready: who receives the documents, where, and the
// confirmation code that gates the final delivery transition.
//
// DeliveryInfo is an immutable value object; use NewDeliveryInfo.
type DeliveryInfo struct { //nolint:recvcheck //using for validation
	recipientName  string
	recipientPhone string
	address        string
	deliveryCode   string

	guard guard.ConstructorGuard
}

// NewDeliveryInfo creates validated delivery details.
// Recipient name, address and a 4-digit delivery code are mandatory;
// the phone number is optional.
func NewDeliveryInfo(recipientName, recipientPhone, address, deliveryCode string) (DeliveryInfo, error) {
	if recipientName == "" {
		return DeliveryInfo{}, errs.NewValueIsRequiredError("recipient name")
	}
	if address == "" {
		return DeliveryInfo{}, errs.NewValueIsRequiredError("address")
	}
	if !deliveryCodePattern.MatchString(deliveryCode) {
		return DeliveryInfo{}, errs.NewValueIsInvalidError("delivery code must be 4 digits")
	}

	return DeliveryInfo{
		recipientName:  recipientName,
		recipientPhone: recipientPhone,
		address:        address,
		deliveryCode:   deliveryCode,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// RecipientName returns the recipient's name.
func (d DeliveryInfo) RecipientName() string {
	return d.recipientName
}

// RecipientPhone returns the recipient's phone number, possibly empty.
func (d DeliveryInfo) RecipientPhone() string {
	return d.recipientPhone
}

// Address returns the delivery address.
func (d DeliveryInfo) Address() string {
	return d.address
}

// DeliveryCode returns the stored 4-digit confirmation code.
func (d DeliveryInfo) DeliveryCode() string {
	return d.deliveryCode
}

// MatchesCode reports whether the supplied code equals the stored one.
func (d DeliveryInfo) MatchesCode(code string) bool {
	return d.deliveryCode == code
}

// Validate ensures the DeliveryInfo was created through NewDeliveryInfo.
func (d DeliveryInfo) Validate() error {
	return d.guard.Validate(ErrDeliveryInfoIsNotConstructed)
}
