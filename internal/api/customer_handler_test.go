package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zadkiel26/web-420/internal/api/shared"
	"github.com/Zadkiel26/web-420/internal/domain"
	"github.com/Zadkiel26/web-420/internal/mocks"
)

// newRequestWithUserName builds a request carrying a chi "username" URL
// parameter, the way the router would populate it.
func newRequestWithUserName(method, target, userName string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("username", userName)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateCustomer(t *testing.T) {
	t.Parallel()

	customerStore := mocks.NewMockCustomerStore()
	handler := NewCustomerHandler(customerStore, newTestLogger())

	payload := []byte(`{"firstName":"John","lastName":"Smith","userName":"jsmith"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/customers", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	handler.CreateCustomer(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp shared.EnvelopeResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "Customer created successfully", resp.Message)

	created, ok := customerStore.Customers["jsmith"]
	require.True(t, ok, "customer should be written under its userName")
	assert.Equal(t, "John", created.FirstName)
	assert.NotNil(t, created.Invoices, "new customers carry an empty invoice collection")
	assert.Empty(t, created.Invoices)
}

func TestCreateInvoiceByUserName(t *testing.T) {
	t.Parallel()

	customerStore := mocks.NewMockCustomerStore()
	handler := NewCustomerHandler(customerStore, newTestLogger())

	customer := domain.NewCustomer("John", "Smith", "jsmith")
	require.NoError(t, customerStore.Create(context.Background(), customer))

	// Seed a prior invoice so the append can be checked against it
	prior := domain.Invoice{Subtotal: 10, Tax: 1, DateCreated: "2024-01-01"}
	_, err := customerStore.AppendInvoice(context.Background(), "jsmith", prior)
	require.NoError(t, err)

	payload := []byte(`{
		"subtotal": 99.99,
		"tax": 8.25,
		"dateCreated": "2024-06-01",
		"dateShipped": "2024-06-03",
		"lineItems": [{"name": "Widget", "price": 49.99, "quantity": 2}]
	}`)

	req := newRequestWithUserName(http.MethodPost, "/api/customers/jsmith/invoices", "jsmith", payload)
	recorder := httptest.NewRecorder()

	handler.CreateInvoiceByUserName(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp shared.EnvelopeResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "Invoice added to customer successfully.", resp.Message)

	// The append grew the collection by exactly one and left the prior
	// invoice untouched
	require.Len(t, customer.Invoices, 2)
	assert.Equal(t, prior, customer.Invoices[0])
	assert.Equal(t, 99.99, customer.Invoices[1].Subtotal)
	require.Len(t, customer.Invoices[1].LineItems, 1)
	assert.Equal(t, "Widget", customer.Invoices[1].LineItems[0].Name)
}

func TestCreateInvoiceUnknownCustomerAnswers500(t *testing.T) {
	t.Parallel()

	customerStore := mocks.NewMockCustomerStore()
	handler := NewCustomerHandler(customerStore, newTestLogger())

	payload := []byte(`{"subtotal": 5}`)
	req := newRequestWithUserName(http.MethodPost, "/api/customers/nobody/invoices", "nobody", payload)
	recorder := httptest.NewRecorder()

	handler.CreateInvoiceByUserName(recorder, req)

	// The invoice routes have no not-found branch; a missing customer
	// surfaces as a server fault with the error text interpolated
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var resp shared.MessageResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Contains(t, resp.Message, "Server Exception")
	assert.Contains(t, resp.Message, "customer")
}

func TestFindAllInvoicesByUserName(t *testing.T) {
	t.Parallel()

	customerStore := mocks.NewMockCustomerStore()
	handler := NewCustomerHandler(customerStore, newTestLogger())

	customer := domain.NewCustomer("John", "Smith", "jsmith")
	require.NoError(t, customerStore.Create(context.Background(), customer))
	_, err := customerStore.AppendInvoice(context.Background(), "jsmith",
		domain.Invoice{Subtotal: 42, Tax: 3.5})
	require.NoError(t, err)

	req := newRequestWithUserName(http.MethodGet, "/api/customers/jsmith/invoices", "jsmith", nil)
	recorder := httptest.NewRecorder()

	handler.FindAllInvoicesByUserName(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp shared.EnvelopeResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "Array of John Smith's invoices.", resp.Message)

	invoices, ok := resp.JSON.([]interface{})
	require.True(t, ok, "json payload should be the invoice array")
	assert.Len(t, invoices, 1)
}
