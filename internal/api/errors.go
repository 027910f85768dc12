package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Zadkiel26/web-420/internal/api/shared"
	"github.com/Zadkiel26/web-420/internal/store"
)

// isStoreFault reports whether err is a write-time validation failure
// or a driver/connectivity fault, the outcomes the API has always
// answered with 501.
func isStoreFault(err error) bool {
	var storeErr *store.StoreError
	return errors.Is(err, store.ErrInvalidEntity) || errors.As(err, &storeErr)
}

// logHandlerError records the failure with the request's trace ID so
// the response can be correlated with the log line.
func logHandlerError(r *http.Request, err error) {
	slog.Error("handler error",
		"error", err,
		"trace_id", shared.GetTraceID(r.Context()),
		"method", r.Method,
		"path", r.URL.Path)
}

// RespondWithStoreError writes the response for a failed repository
// call, preserving the API's historical status mapping: validation and
// driver faults answer 501 "MongoDB Exception", anything else answers
// 500 "Server Exception". Not-found outcomes are branched by each
// handler before calling this, because their status and body differ
// per endpoint.
func RespondWithStoreError(w http.ResponseWriter, r *http.Request, err error) {
	logHandlerError(r, err)
	if isStoreFault(err) {
		shared.RespondWithMessage(w, r, http.StatusNotImplemented, "MongoDB Exception")
		return
	}
	shared.RespondWithMessage(w, r, http.StatusInternalServerError, "Server Exception")
}

// RespondWithStoreErrorDetail is the variant the customer routes use:
// same mapping, but the error text is interpolated into the message,
// exactly as those routes have always answered.
func RespondWithStoreErrorDetail(w http.ResponseWriter, r *http.Request, err error) {
	logHandlerError(r, err)
	if isStoreFault(err) {
		shared.RespondWithMessage(w, r, http.StatusNotImplemented,
			fmt.Sprintf("MongoDB Exception: %v", err))
		return
	}
	shared.RespondWithMessage(w, r, http.StatusInternalServerError,
		fmt.Sprintf("Server Exception: %v", err))
}

// RespondWithStoreErrorText is the variant the signup and login routes
// use: same mapping, plain text bodies.
func RespondWithStoreErrorText(w http.ResponseWriter, r *http.Request, err error) {
	logHandlerError(r, err)
	if isStoreFault(err) {
		shared.RespondWithText(w, r, http.StatusNotImplemented, "MongoDB Exception")
		return
	}
	shared.RespondWithText(w, r, http.StatusInternalServerError, "Server Exception")
}
