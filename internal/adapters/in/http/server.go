// Package http exposes the order lifecycle over a REST API.
// It coordinates between HTTP handlers and application use cases: requests are
// bound, translated into commands or queries, and domain errors are mapped to
// HTTP status codes in one place.
package http

import (
	"errors"
	"net/http"
	"time"

	"docdispatch/internal/core/application/usecases/commands"
	"docdispatch/internal/core/application/usecases/queries"
	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/core/domain/model/order"
	"docdispatch/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the dispatch engine.
type Server struct {
	// Command handlers
	createInvoiceHandler   commands.CreateInvoiceCommandHandler
	confirmPaymentHandler  commands.ConfirmPaymentCommandHandler
	createDelegateHandler  commands.CreateDelegateCommandHandler
	assignDelegateHandler  commands.AssignDelegateCommandHandler
	startProcessingHandler commands.StartProcessingCommandHandler
	deliveryInfoHandler    commands.ProvideDeliveryInfoCommandHandler
	markReadyHandler       commands.MarkReadyCommandHandler
	shipOrderHandler       commands.ShipOrderCommandHandler
	assignCourierHandler   commands.AssignCourierCommandHandler
	handOffHandler         commands.HandOffCommandHandler
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler
	completeOrderHandler   commands.CompleteOrderCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	forceAssignHandler     commands.ForceAssignCommandHandler
	forceAdvanceHandler    commands.ForceAdvanceCommandHandler

	// Query handlers
	uncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler
	delegateBoardHandler     queries.GetDelegateBoardQueryHandler

	mediaStorage ports.MediaStorage
}

// ServerParams carries the handlers wired in by the composition root.
type ServerParams struct {
	CreateInvoiceHandler   commands.CreateInvoiceCommandHandler
	ConfirmPaymentHandler  commands.ConfirmPaymentCommandHandler
	CreateDelegateHandler  commands.CreateDelegateCommandHandler
	AssignDelegateHandler  commands.AssignDelegateCommandHandler
	StartProcessingHandler commands.StartProcessingCommandHandler
	DeliveryInfoHandler    commands.ProvideDeliveryInfoCommandHandler
	MarkReadyHandler       commands.MarkReadyCommandHandler
	ShipOrderHandler       commands.ShipOrderCommandHandler
	AssignCourierHandler   commands.AssignCourierCommandHandler
	HandOffHandler         commands.HandOffCommandHandler
	ConfirmDeliveryHandler commands.ConfirmDeliveryCommandHandler
	CompleteOrderHandler   commands.CompleteOrderCommandHandler
	CancelOrderHandler     commands.CancelOrderCommandHandler
	ForceAssignHandler     commands.ForceAssignCommandHandler
	ForceAdvanceHandler    commands.ForceAdvanceCommandHandler

	UncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler
	DelegateBoardHandler     queries.GetDelegateBoardQueryHandler

	MediaStorage ports.MediaStorage
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(p ServerParams) *Server {
	return &Server{
		createInvoiceHandler:     p.CreateInvoiceHandler,
		confirmPaymentHandler:    p.ConfirmPaymentHandler,
		createDelegateHandler:    p.CreateDelegateHandler,
		assignDelegateHandler:    p.AssignDelegateHandler,
		startProcessingHandler:   p.StartProcessingHandler,
		deliveryInfoHandler:      p.DeliveryInfoHandler,
		markReadyHandler:         p.MarkReadyHandler,
		shipOrderHandler:         p.ShipOrderHandler,
		assignCourierHandler:     p.AssignCourierHandler,
		handOffHandler:           p.HandOffHandler,
		confirmDeliveryHandler:   p.ConfirmDeliveryHandler,
		completeOrderHandler:     p.CompleteOrderHandler,
		cancelOrderHandler:       p.CancelOrderHandler,
		forceAssignHandler:       p.ForceAssignHandler,
		forceAdvanceHandler:      p.ForceAdvanceHandler,
		uncompletedOrdersHandler: p.UncompletedOrdersHandler,
		delegateBoardHandler:     p.DelegateBoardHandler,
		mediaStorage:             p.MediaStorage,
	}
}

// RegisterRoutes binds all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/invoices", s.CreateInvoice)
	api.POST("/invoices/:invoiceID/confirm-payment", s.ConfirmPayment)

	api.POST("/delegates", s.CreateDelegate)
	api.GET("/delegates/:delegateID/board", s.GetDelegateBoard)

	api.GET("/orders", s.GetUncompletedOrders)
	api.POST("/orders/:orderID/dispatch", s.DispatchOrder)
	api.POST("/orders/:orderID/start", s.StartProcessing)
	api.POST("/orders/:orderID/delivery-info", s.ProvideDeliveryInfo)
	api.POST("/orders/:orderID/ready", s.MarkReady)
	api.POST("/orders/:orderID/ship", s.ShipOrder)
	api.POST("/orders/:orderID/courier", s.AssignCourier)
	api.POST("/orders/:orderID/handoff", s.HandOff)
	api.POST("/orders/:orderID/confirm-delivery", s.ConfirmDelivery)
	api.POST("/orders/:orderID/complete", s.CompleteOrder)

	api.POST("/media/receipts", s.UploadReceipt)
	api.GET("/media/receipts/:reference", s.DownloadReceipt)

	api.POST("/admin/orders/:orderID/cancel", s.CancelOrder)
	api.POST("/admin/orders/:orderID/force-assign", s.ForceAssign)
	api.POST("/admin/orders/:orderID/force-advance", s.ForceAdvance)
}

type documentLineRequest struct {
	UnitPrice int64 `json:"unit_price"`
	Copies    int   `json:"copies"`
}

type createInvoiceRequest struct {
	Reference      string                `json:"reference"`
	OwnerID        string                `json:"owner_id"`
	DocumentType   string                `json:"document_type"`
	Service        string                `json:"service"`
	City           string                `json:"city"`
	Copies         int                   `json:"copies"`
	Amount         int64                 `json:"amount"`
	DelegatePayout int64                 `json:"delegate_payout"`
	ServiceFee     int64                 `json:"service_fee"`
	ShippingFee    int64                 `json:"shipping_fee"`
	Documents      []documentLineRequest `json:"documents"`
}

// CreateInvoice handles POST /api/v1/invoices - records an order request
// awaiting payment.
func (s *Server) CreateInvoice(ctx echo.Context) error {
	var req createInvoiceRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	ownerID, err := kernel.UUIDFromString(req.OwnerID)
	if err != nil {
		return badRequest(ctx, "invalid owner id")
	}

	service, err := kernel.ServiceCategoryFromString(req.Service)
	if err != nil {
		return badRequest(ctx, "invalid service category")
	}

	documents := make([]order.DocumentLine, 0, len(req.Documents))
	for _, line := range req.Documents {
		documents = append(documents, order.DocumentLine{
			UnitPrice: line.UnitPrice,
			Copies:    line.Copies,
		})
	}

	invoiceID := kernel.NewUUID()
	cmd, err := commands.NewCreateInvoiceCommand(commands.CreateInvoiceParams{
		InvoiceID:      invoiceID,
		Reference:      req.Reference,
		OwnerID:        ownerID,
		DocumentType:   req.DocumentType,
		Service:        service,
		CityName:       req.City,
		Copies:         req.Copies,
		Amount:         req.Amount,
		DelegatePayout: req.DelegatePayout,
		Documents:      documents,
		ServiceFee:     req.ServiceFee,
		ShippingFee:    req.ShippingFee,
	})
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.createInvoiceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": invoiceID.String()})
}

type confirmPaymentResponse struct {
	OrderID          string `json:"order_id"`
	AlreadyProcessed bool   `json:"already_processed"`
	DelegateAssigned bool   `json:"delegate_assigned"`
}

// ConfirmPayment handles POST /api/v1/invoices/:invoiceID/confirm-payment -
// the payment provider callback. Safe to replay: a duplicate confirmation
// reports the original order instead of creating a second one.
func (s *Server) ConfirmPayment(ctx echo.Context) error {
	invoiceID, err := kernel.UUIDFromString(ctx.Param("invoiceID"))
	if err != nil {
		return badRequest(ctx, "invalid invoice id")
	}

	cmd, err := commands.NewConfirmPaymentCommand(invoiceID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.confirmPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, confirmPaymentResponse{
		OrderID:          result.OrderID.String(),
		AlreadyProcessed: result.AlreadyProcessed,
		DelegateAssigned: result.DelegateAssigned,
	})
}

type createDelegateRequest struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	City      string `json:"city"`
	Service   string `json:"service"`
}

// CreateDelegate handles POST /api/v1/delegates - registers a delegate for a
// territory. Each (city, service) pair carries at most one delegate.
func (s *Server) CreateDelegate(ctx echo.Context) error {
	var req createDelegateRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	accountID, err := kernel.UUIDFromString(req.AccountID)
	if err != nil {
		return badRequest(ctx, "invalid account id")
	}

	service, err := kernel.ServiceCategoryFromString(req.Service)
	if err != nil {
		return badRequest(ctx, "invalid service category")
	}

	delegateID := kernel.NewUUID()
	cmd, err := commands.NewCreateDelegateCommand(delegateID, accountID, req.Name, req.City, service)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.createDelegateHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": delegateID.String()})
}

type dispatchResponse struct {
	Outcome    string  `json:"outcome"`
	DelegateID *string `json:"delegate_id,omitempty"`
}

// DispatchOrder handles POST /api/v1/orders/:orderID/dispatch - runs the
// dispatch engine for one order.
func (s *Server) DispatchOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewAssignDelegateCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.assignDelegateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	response := dispatchResponse{Outcome: outcomeString(result.Outcome)}
	if result.DelegateID != nil {
		id := result.DelegateID.String()
		response.DelegateID = &id
	}

	return ctx.JSON(http.StatusOK, response)
}

type actorRequest struct {
	DelegateID string `json:"delegate_id"`
}

// StartProcessing handles POST /api/v1/orders/:orderID/start.
func (s *Server) StartProcessing(ctx echo.Context) error {
	orderID, delegateID, err := s.bindOrderAndDelegate(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewStartProcessingCommand(orderID, delegateID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.startProcessingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type deliveryInfoRequest struct {
	RecipientName  string `json:"recipient_name"`
	RecipientPhone string `json:"recipient_phone"`
	Address        string `json:"address"`
	DeliveryCode   string `json:"delivery_code"`
}

// ProvideDeliveryInfo handles POST /api/v1/orders/:orderID/delivery-info.
func (s *Server) ProvideDeliveryInfo(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req deliveryInfoRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewProvideDeliveryInfoCommand(
		orderID, req.RecipientName, req.RecipientPhone, req.Address, req.DeliveryCode)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.deliveryInfoHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkReady handles POST /api/v1/orders/:orderID/ready.
func (s *Server) MarkReady(ctx echo.Context) error {
	orderID, delegateID, err := s.bindOrderAndDelegate(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewMarkReadyCommand(orderID, delegateID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.markReadyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type shipOrderRequest struct {
	DelegateID       string `json:"delegate_id"`
	TransportCompany string `json:"transport_company"`
	TrackingCode     string `json:"tracking_code"`
	ReceiptRef       string `json:"receipt_ref"`
}

// ShipOrder handles POST /api/v1/orders/:orderID/ship.
func (s *Server) ShipOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req shipOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	delegateID, err := kernel.UUIDFromString(req.DelegateID)
	if err != nil {
		return badRequest(ctx, "invalid delegate id")
	}

	cmd, err := commands.NewShipOrderCommand(
		orderID, delegateID, req.TransportCompany, req.TrackingCode, req.ReceiptRef)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.shipOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type courierRequest struct {
	CourierID string `json:"courier_id"`
}

// AssignCourier handles POST /api/v1/orders/:orderID/courier.
func (s *Server) AssignCourier(ctx echo.Context) error {
	orderID, courierID, err := s.bindOrderAndCourier(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAssignCourierCommand(orderID, courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.assignCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// HandOff handles POST /api/v1/orders/:orderID/handoff.
func (s *Server) HandOff(ctx echo.Context) error {
	orderID, courierID, err := s.bindOrderAndCourier(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewHandOffCommand(orderID, courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handOffHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type confirmDeliveryRequest struct {
	CourierID    string `json:"courier_id"`
	DeliveryCode string `json:"delivery_code"`
}

// ConfirmDelivery handles POST /api/v1/orders/:orderID/confirm-delivery.
// A wrong code is rejected without burning the attempt; the courier can retry.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req confirmDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "invalid courier id")
	}

	cmd, err := commands.NewConfirmDeliveryCommand(orderID, courierID, req.DeliveryCode)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:orderID/complete - settles the
// delegate's payout and closes the order.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/admin/orders/:orderID/cancel.
// Only orders that have not been assigned yet can be cancelled.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type forceAssignRequest struct {
	DelegateID string `json:"delegate_id"`
	AdminID    string `json:"admin_id"`
}

// ForceAssign handles POST /api/v1/admin/orders/:orderID/force-assign -
// an operator override of the territory mapping.
func (s *Server) ForceAssign(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req forceAssignRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	delegateID, err := kernel.UUIDFromString(req.DelegateID)
	if err != nil {
		return badRequest(ctx, "invalid delegate id")
	}

	adminID, err := kernel.UUIDFromString(req.AdminID)
	if err != nil {
		return badRequest(ctx, "invalid admin id")
	}

	cmd, err := commands.NewForceAssignCommand(orderID, delegateID, adminID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.forceAssignHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type forceAdvanceRequest struct {
	To      string `json:"to"`
	AdminID string `json:"admin_id"`
}

// ForceAdvance handles POST /api/v1/admin/orders/:orderID/force-advance -
// an operator override that moves an order forward past a stuck step.
func (s *Server) ForceAdvance(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req forceAdvanceRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	to, err := order.StatusFromString(req.To)
	if err != nil {
		return badRequest(ctx, "invalid target status")
	}

	adminID, err := kernel.UUIDFromString(req.AdminID)
	if err != nil {
		return badRequest(ctx, "invalid admin id")
	}

	cmd, err := commands.NewForceAdvanceCommand(orderID, to, adminID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.forceAdvanceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type uncompletedOrderResponse struct {
	ID           string    `json:"id"`
	Status       string    `json:"status"`
	DocumentType string    `json:"document_type"`
	City         string    `json:"city"`
	Service      string    `json:"service"`
	DelegateID   *string   `json:"delegate_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// GetUncompletedOrders handles GET /api/v1/orders - lists every order that is
// neither completed nor cancelled.
func (s *Server) GetUncompletedOrders(ctx echo.Context) error {
	query := queries.NewGetUncompletedOrdersQuery()

	orders, err := s.uncompletedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "failed to retrieve orders")
	}

	response := make([]uncompletedOrderResponse, len(orders))
	for i, o := range orders {
		item := uncompletedOrderResponse{
			ID:           o.ID.String(),
			Status:       o.Status,
			DocumentType: o.DocumentType,
			City:         o.City,
			Service:      o.Service,
			CreatedAt:    o.CreatedAt,
		}
		if o.DelegateID != nil {
			id := o.DelegateID.String()
			item.DelegateID = &id
		}
		response[i] = item
	}

	return ctx.JSON(http.StatusOK, response)
}

type delegateBoardOrderResponse struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	DocumentType string `json:"document_type"`
	City         string `json:"city"`
	Copies       int    `json:"copies"`
}

type delegateBoardResponse struct {
	DelegateID      string                       `json:"delegate_id"`
	Name            string                       `json:"name"`
	Available       bool                         `json:"available"`
	CompletedOrders int                          `json:"completed_orders"`
	Earnings        int64                        `json:"earnings"`
	ActiveOrders    []delegateBoardOrderResponse `json:"active_orders"`
}

// GetDelegateBoard handles GET /api/v1/delegates/:delegateID/board - the
// delegate's work board with active orders and lifetime bookkeeping.
func (s *Server) GetDelegateBoard(ctx echo.Context) error {
	delegateID, err := kernel.UUIDFromString(ctx.Param("delegateID"))
	if err != nil {
		return badRequest(ctx, "invalid delegate id")
	}

	query, err := queries.NewGetDelegateBoardQuery(delegateID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	board, err := s.delegateBoardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	activeOrders := make([]delegateBoardOrderResponse, len(board.ActiveOrders))
	for i, o := range board.ActiveOrders {
		activeOrders[i] = delegateBoardOrderResponse{
			ID:           o.ID.String(),
			Status:       o.Status,
			DocumentType: o.DocumentType,
			City:         o.City,
			Copies:       o.Copies,
		}
	}

	return ctx.JSON(http.StatusOK, delegateBoardResponse{
		DelegateID:      board.DelegateID.String(),
		Name:            board.Name,
		Available:       board.Available,
		CompletedOrders: board.CompletedOrders,
		Earnings:        board.Earnings,
		ActiveOrders:    activeOrders,
	})
}

func (s *Server) bindOrderAndDelegate(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("invalid order id")
	}

	var req actorRequest
	if err := ctx.Bind(&req); err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("invalid request body")
	}

	delegateID, err := kernel.UUIDFromString(req.DelegateID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("invalid delegate id")
	}

	return orderID, delegateID, nil
}

func (s *Server) bindOrderAndCourier(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("invalid order id")
	}

	var req courierRequest
	if err := ctx.Bind(&req); err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("invalid courier id")
	}

	return orderID, courierID, nil
}

func outcomeString(outcome commands.DispatchOutcome) string {
	switch outcome {
	case commands.DispatchAssigned:
		return "assigned"
	case commands.DispatchAlreadyAssigned:
		return "already_assigned"
	case commands.DispatchNoDelegateAvailable:
		return "no_delegate_available"
	default:
		return "unknown"
	}
}

type uploadReceiptResponse struct {
	Reference string `json:"reference"`
}

// UploadReceipt handles POST /api/v1/media/receipts - stores a receipt photo
// and returns the reference to put in the ship request.
func (s *Server) UploadReceipt(ctx echo.Context) error {
	contentType := ctx.Request().Header.Get(echo.HeaderContentType)
	if contentType == "" {
		return badRequest(ctx, "content type is required")
	}

	reference, err := s.mediaStorage.Store(ctx.Request().Context(), contentType, ctx.Request().Body)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, uploadReceiptResponse{Reference: reference})
}

// DownloadReceipt handles GET /api/v1/media/receipts/:reference.
func (s *Server) DownloadReceipt(ctx echo.Context) error {
	reference := ctx.Param("reference")
	if reference == "" {
		return badRequest(ctx, "reference is required")
	}

	content, err := s.mediaStorage.Load(ctx.Request().Context(), reference)
	if err != nil {
		return mapDomainError(ctx, err)
	}
	defer content.Close()

	return ctx.Stream(http.StatusOK, echo.MIMEOctetStream, content)
}
