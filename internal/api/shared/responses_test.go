package shared

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()

	RespondWithJSON(recorder, req, http.StatusOK, map[string]string{"key": "value"})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	assert.Equal(t, "value", body["key"])
}

func TestRespondWithJSONNilEncodesNull(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()

	RespondWithJSON(recorder, req, http.StatusOK, nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "null\n", recorder.Body.String())
}

func TestRespondWithMessage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()

	RespondWithMessage(recorder, req, http.StatusUnauthorized, "Invalid composerID")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.JSONEq(t, `{"message": "Invalid composerID"}`, recorder.Body.String())
}

func TestRespondWithEnvelope(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()

	RespondWithEnvelope(recorder, req, http.StatusOK, "Team created successfully",
		map[string]string{"name": "Mud Hens"})

	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp EnvelopeResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "Team created successfully", resp.Message)

	payload, ok := resp.JSON.(map[string]interface{})
	require.True(t, ok, "the document should live under the json key")
	assert.Equal(t, "Mud Hens", payload["name"])
}

func TestRespondWithText(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	recorder := httptest.NewRecorder()

	RespondWithText(recorder, req, http.StatusOK, "Registered User")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Registered User", recorder.Body.String())
	assert.Contains(t, recorder.Header().Get("Content-Type"), "text/plain")
}
