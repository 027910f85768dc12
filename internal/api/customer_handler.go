package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Zadkiel26/web-420/internal/api/shared"
	"github.com/Zadkiel26/web-420/internal/domain"
	"github.com/Zadkiel26/web-420/internal/store"
)

// CustomerHandler handles the customer and invoice API requests.
// A customer that cannot be found on the invoice routes answers 500,
// not 401: these routes never had a not-found branch.
type CustomerHandler struct {
	customerStore store.CustomerStore
	logger        *slog.Logger
}

// NewCustomerHandler creates a new CustomerHandler with the given dependencies.
func NewCustomerHandler(customerStore store.CustomerStore, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerStore: customerStore,
		logger:        logger,
	}
}

// CreateCustomer godoc
//
//	@Summary		Create a new customer.
//	@Description	API for adding new customer objects.
//	@Tags			customers
//	@Accept			json
//	@Produce		json
//	@Param			customer	body		CustomerRequest	true	"Customer's information"
//	@Success		200			{object}	shared.EnvelopeResponse
//	@Failure		500			{object}	shared.MessageResponse
//	@Failure		501			{object}	shared.MessageResponse
//	@Router			/customers [post]
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req CustomerRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithStoreErrorDetail(w, r, err)
		return
	}

	customer := domain.NewCustomer(req.FirstName, req.LastName, req.UserName)
	if err := h.customerStore.Create(r.Context(), customer); err != nil {
		RespondWithStoreErrorDetail(w, r, err)
		return
	}

	h.logger.Info("customer created",
		"customer_id", customer.ID.Hex(),
		"user_name", customer.UserName)
	shared.RespondWithEnvelope(w, r, http.StatusOK, "Customer created successfully", customer)
}

// CreateInvoiceByUserName godoc
//
//	@Summary		Add an invoice to a customer.
//	@Description	API for appending an invoice to the customer found by
//	@Description	userName. Prior invoices are preserved unchanged.
//	@Tags			customers
//	@Accept			json
//	@Produce		json
//	@Param			username	path		string			true	"The customer's userName"
//	@Param			invoice		body		InvoiceRequest	true	"Invoice fields"
//	@Success		200			{object}	shared.EnvelopeResponse
//	@Failure		500			{object}	shared.MessageResponse
//	@Failure		501			{object}	shared.MessageResponse
//	@Router			/customers/{username}/invoices [post]
func (h *CustomerHandler) CreateInvoiceByUserName(w http.ResponseWriter, r *http.Request) {
	userName := chi.URLParam(r, "username")

	var req InvoiceRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithStoreErrorDetail(w, r, err)
		return
	}

	customer, err := h.customerStore.AppendInvoice(r.Context(), userName, req.ToDomain())
	if err != nil {
		RespondWithStoreErrorDetail(w, r, err)
		return
	}

	h.logger.Info("invoice added",
		"user_name", userName,
		"invoice_count", len(customer.Invoices))
	shared.RespondWithEnvelope(w, r, http.StatusOK,
		"Invoice added to customer successfully.", customer)
}

// FindAllInvoicesByUserName godoc
//
//	@Summary		Returns a customer's invoices.
//	@Description	API for listing the invoices of the customer found by
//	@Description	userName.
//	@Tags			customers
//	@Produce		json
//	@Param			username	path		string	true	"The customer's userName"
//	@Success		200			{object}	shared.EnvelopeResponse
//	@Failure		500			{object}	shared.MessageResponse
//	@Failure		501			{object}	shared.MessageResponse
//	@Router			/customers/{username}/invoices [get]
func (h *CustomerHandler) FindAllInvoicesByUserName(w http.ResponseWriter, r *http.Request) {
	userName := chi.URLParam(r, "username")

	customer, err := h.customerStore.FindByUserName(r.Context(), userName)
	if err != nil {
		RespondWithStoreErrorDetail(w, r, err)
		return
	}

	message := fmt.Sprintf("Array of %s %s's invoices.", customer.FirstName, customer.LastName)
	shared.RespondWithEnvelope(w, r, http.StatusOK, message, customer.Invoices)
}
