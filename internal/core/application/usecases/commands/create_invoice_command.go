package commands

import (
	"errors"

	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/core/domain/model/order"
	"docdispatch/internal/pkg/guard"
)

var (
	ErrCreateInvoiceCommandIsNotConstructed = errors.New(
		"CreateInvoiceCommand must be created via NewCreateInvoiceCommand constructor",
	)
	ErrReferenceIsRequired    = errors.New("reference is required")
	ErrDocumentTypeIsRequired = errors.New("document type is required")
	ErrCopiesIsInvalid        = errors.New("copies must be greater than 0")
	ErrAmountIsInvalid        = errors.New("amount must not be negative")
)

// CreateInvoiceCommand registers an order request as a pending invoice.
// The command captures everything the eventual order will need — document
// type, routing territory, copies, and the billing breakdown — so the
// payment-to-order conversion never re-derives prices.
type CreateInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID      kernel.UUID
	reference      string
	ownerID        kernel.UUID
	documentType   string
	service        kernel.ServiceCategory
	cityName       string
	copies         int
	amount         int64
	delegatePayout int64
	documents      []order.DocumentLine
	serviceFee     int64
	shippingFee    int64

	guard guard.ConstructorGuard
}

// CreateInvoiceParams carries the attributes for NewCreateInvoiceCommand.
type CreateInvoiceParams struct {
	InvoiceID      kernel.UUID
	Reference      string
	OwnerID        kernel.UUID
	DocumentType   string
	Service        kernel.ServiceCategory
	CityName       string
	Copies         int
	Amount         int64
	DelegatePayout int64
	Documents      []order.DocumentLine
	ServiceFee     int64
	ShippingFee    int64
}

// NewCreateInvoiceCommand creates a command to register an order request.
// Deep validation of the territory and billing happens in the handler, where
// the domain value objects are constructed.
func NewCreateInvoiceCommand(p CreateInvoiceParams) (CreateInvoiceCommand, error) {
	cmd := CreateInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInvoiceID(p.InvoiceID),
		cmd.setReference(p.Reference),
		cmd.setOwnerID(p.OwnerID),
		cmd.setDocumentType(p.DocumentType),
		cmd.setCopies(p.Copies),
		cmd.setAmount(p.Amount),
	); err != nil {
		return CreateInvoiceCommand{}, err
	}

	cmd.service = p.Service
	cmd.cityName = p.CityName
	cmd.delegatePayout = p.DelegatePayout
	cmd.documents = append([]order.DocumentLine(nil), p.Documents...)
	cmd.serviceFee = p.ServiceFee
	cmd.shippingFee = p.ShippingFee

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateInvoiceCommandIsNotConstructed)
}

// InvoiceID returns the identifier for the new invoice.
func (c CreateInvoiceCommand) InvoiceID() kernel.UUID { return c.invoiceID }

// Reference returns the payment reference code.
func (c CreateInvoiceCommand) Reference() string { return c.reference }

// OwnerID returns the requesting customer account.
func (c CreateInvoiceCommand) OwnerID() kernel.UUID { return c.ownerID }

// DocumentType returns the administrative document being procured.
func (c CreateInvoiceCommand) DocumentType() string { return c.documentType }

// Service returns the administrative body type.
func (c CreateInvoiceCommand) Service() kernel.ServiceCategory { return c.service }

// CityName returns the raw city name of the dispatch territory.
func (c CreateInvoiceCommand) CityName() string { return c.cityName }

// Copies returns the number of document copies ordered.
func (c CreateInvoiceCommand) Copies() int { return c.copies }

// Amount returns the total owed by the owner.
func (c CreateInvoiceCommand) Amount() int64 { return c.amount }

// DelegatePayout returns the flat payout fallback.
func (c CreateInvoiceCommand) DelegatePayout() int64 { return c.delegatePayout }

// Documents returns the itemized document lines.
func (c CreateInvoiceCommand) Documents() []order.DocumentLine {
	return append([]order.DocumentLine(nil), c.documents...)
}

// ServiceFee returns the flat service fee.
func (c CreateInvoiceCommand) ServiceFee() int64 { return c.serviceFee }

// ShippingFee returns the shipping fee, 0 when none.
func (c CreateInvoiceCommand) ShippingFee() int64 { return c.shippingFee }

func (c *CreateInvoiceCommand) setInvoiceID(invoiceID kernel.UUID) error {
	if err := invoiceID.Validate(); err != nil {
		return err
	}
	c.invoiceID = invoiceID
	return nil
}

func (c *CreateInvoiceCommand) setReference(reference string) error {
	if reference == "" {
		return ErrReferenceIsRequired
	}
	c.reference = reference
	return nil
}

func (c *CreateInvoiceCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	c.ownerID = ownerID
	return nil
}

func (c *CreateInvoiceCommand) setDocumentType(documentType string) error {
	if documentType == "" {
		return ErrDocumentTypeIsRequired
	}
	c.documentType = documentType
	return nil
}

func (c *CreateInvoiceCommand) setCopies(copies int) error {
	if copies <= 0 {
		return ErrCopiesIsInvalid
	}
	c.copies = copies
	return nil
}

func (c *CreateInvoiceCommand) setAmount(amount int64) error {
	if amount < 0 {
		return ErrAmountIsInvalid
	}
	c.amount = amount
	return nil
}
