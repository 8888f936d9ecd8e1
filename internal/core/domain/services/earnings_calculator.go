package services

import (
	"github.com/shopspring/decimal"

	"docdispatch/internal/core/domain/model/order"
)

// EarningsCalculator is a domain service that computes the payout owed to a
// delegate for carrying one order to completion.
//
// Business rules:
//   - With an itemized billing breakdown, the payout is the sum of the
//     document line totals, plus half the service fee rounded half up,
//     plus the full shipping fee
//   - Without document lines, the payout falls back to the flat amount
//     stored on the order at creation time
//   - All amounts are in minor currency units
type EarningsCalculator struct{}

// NewEarningsCalculator creates a new EarningsCalculator instance.
func NewEarningsCalculator() EarningsCalculator {
	return EarningsCalculator{}
}

// Calculate returns the delegate payout for the given order.
func (c EarningsCalculator) Calculate(o *order.Order) (int64, error) {
	if err := o.Validate(); err != nil {
		return 0, err
	}

	billing := o.Billing()
	if !billing.HasDocumentLines() {
		return o.DelegatePayout(), nil
	}

	var documentsTotal int64
	for _, line := range billing.Documents() {
		documentsTotal += line.Total()
	}

	// The delegate keeps half the service fee; .5 halves round away from zero.
	halfServiceFee := decimal.NewFromInt(billing.ServiceFee()).
		DivRound(decimal.NewFromInt(2), 0).
		IntPart()

	return documentsTotal + halfServiceFee + billing.ShippingFee(), nil
}
