package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zadkiel26/web-420/internal/api/shared"
	"github.com/Zadkiel26/web-420/internal/domain"
	"github.com/Zadkiel26/web-420/internal/mocks"
	"github.com/Zadkiel26/web-420/internal/store"
)

// newTestLogger returns a logger that discards output during tests.
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newRequestWithID builds a request carrying a chi "id" URL parameter,
// the way the router would populate it.
func newRequestWithID(method, target, id string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateComposer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		payload     map[string]interface{}
		wantStatus  int
		wantMessage string
	}{
		{
			name: "valid composer",
			payload: map[string]interface{}{
				"firstName": "Johann",
				"lastName":  "Bach",
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "missing lastName fails validation",
			payload: map[string]interface{}{
				"firstName": "Johann",
			},
			wantStatus:  http.StatusNotImplemented,
			wantMessage: "MongoDB Exception",
		},
		{
			name:        "empty payload fails validation",
			payload:     map[string]interface{}{},
			wantStatus:  http.StatusNotImplemented,
			wantMessage: "MongoDB Exception",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			composerStore := mocks.NewMockComposerStore()
			handler := NewComposerHandler(composerStore, newTestLogger())

			payloadBytes, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/api/composers", bytes.NewBuffer(payloadBytes))
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()

			handler.CreateComposer(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusOK {
				var composer domain.Composer
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&composer))
				assert.False(t, composer.ID.IsZero(), "document ID should be assigned")
				assert.Equal(t, tt.payload["firstName"], composer.FirstName)
				assert.Equal(t, tt.payload["lastName"], composer.LastName)
				assert.Len(t, composerStore.Composers, 1)
			} else {
				var resp shared.MessageResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.Equal(t, tt.wantMessage, resp.Message)
				assert.Empty(t, composerStore.Composers, "nothing should be written")
			}
		})
	}
}

func TestFindAllComposers(t *testing.T) {
	t.Parallel()

	composerStore := mocks.NewMockComposerStore()
	handler := NewComposerHandler(composerStore, newTestLogger())

	// Seed two composers through the store
	require.NoError(t, composerStore.Create(context.Background(), domain.NewComposer("Johann", "Bach")))
	require.NoError(t, composerStore.Create(context.Background(), domain.NewComposer("Wolfgang", "Mozart")))

	req := httptest.NewRequest(http.MethodGet, "/api/composers", nil)
	recorder := httptest.NewRecorder()

	handler.FindAllComposers(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var composers []domain.Composer
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&composers))
	assert.Len(t, composers, 2)
}

func TestFindAllComposersStoreFault(t *testing.T) {
	t.Parallel()

	composerStore := mocks.NewMockComposerStore()
	composerStore.FindError = store.NewStoreError("composer", "find", "connection reset", nil)
	handler := NewComposerHandler(composerStore, newTestLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/composers", nil)
	recorder := httptest.NewRecorder()

	handler.FindAllComposers(recorder, req)

	assert.Equal(t, http.StatusNotImplemented, recorder.Code)

	var resp shared.MessageResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "MongoDB Exception", resp.Message)
}

func TestFindComposerByID(t *testing.T) {
	t.Parallel()

	composerStore := mocks.NewMockComposerStore()
	handler := NewComposerHandler(composerStore, newTestLogger())

	seeded := domain.NewComposer("Ludwig", "Beethoven")
	require.NoError(t, composerStore.Create(context.Background(), seeded))

	t.Run("known id", func(t *testing.T) {
		req := newRequestWithID(http.MethodGet, "/api/composers/"+seeded.ID.Hex(), seeded.ID.Hex(), nil)
		recorder := httptest.NewRecorder()

		handler.FindComposerByID(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var composer domain.Composer
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&composer))
		assert.Equal(t, seeded.ID, composer.ID)
		assert.Equal(t, "Ludwig", composer.FirstName)
	})

	t.Run("unknown id answers 200 with null body", func(t *testing.T) {
		req := newRequestWithID(http.MethodGet, "/api/composers/ffffffffffffffffffffffff", "ffffffffffffffffffffffff", nil)
		recorder := httptest.NewRecorder()

		handler.FindComposerByID(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "null\n", recorder.Body.String())
	})
}

func TestUpdateComposerByID(t *testing.T) {
	t.Parallel()

	composerStore := mocks.NewMockComposerStore()
	handler := NewComposerHandler(composerStore, newTestLogger())

	seeded := domain.NewComposer("Johann", "Bach")
	require.NoError(t, composerStore.Create(context.Background(), seeded))

	payload := []byte(`{"firstName":"Richard","lastName":"Wagner"}`)

	t.Run("known id updates the document", func(t *testing.T) {
		req := newRequestWithID(http.MethodPut, "/api/composers/"+seeded.ID.Hex(), seeded.ID.Hex(), payload)
		recorder := httptest.NewRecorder()

		handler.UpdateComposerByID(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var composer domain.Composer
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&composer))
		assert.Equal(t, "Richard", composer.FirstName)
		assert.Equal(t, "Wagner", composer.LastName)
	})

	t.Run("unknown id answers 401", func(t *testing.T) {
		req := newRequestWithID(http.MethodPut, "/api/composers/ffffffffffffffffffffffff", "ffffffffffffffffffffffff", payload)
		recorder := httptest.NewRecorder()

		handler.UpdateComposerByID(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)

		var resp shared.MessageResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, "Invalid composerID", resp.Message)
	})
}

func TestDeleteComposerByID(t *testing.T) {
	t.Parallel()

	composerStore := mocks.NewMockComposerStore()
	handler := NewComposerHandler(composerStore, newTestLogger())

	seeded := domain.NewComposer("Gustav", "Mahler")
	require.NoError(t, composerStore.Create(context.Background(), seeded))

	t.Run("known id removes the document", func(t *testing.T) {
		req := newRequestWithID(http.MethodDelete, "/api/composers/"+seeded.ID.Hex(), seeded.ID.Hex(), nil)
		recorder := httptest.NewRecorder()

		handler.DeleteComposerByID(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Empty(t, composerStore.Composers)
	})

	t.Run("unknown id still answers 200 with null body", func(t *testing.T) {
		req := newRequestWithID(http.MethodDelete, "/api/composers/ffffffffffffffffffffffff", "ffffffffffffffffffffffff", nil)
		recorder := httptest.NewRecorder()

		handler.DeleteComposerByID(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "null\n", recorder.Body.String())
	})
}
