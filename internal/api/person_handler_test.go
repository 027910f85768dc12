package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zadkiel26/web-420/internal/api/shared"
	"github.com/Zadkiel26/web-420/internal/domain"
	"github.com/Zadkiel26/web-420/internal/mocks"
)

func TestCreatePerson(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
	}{
		{
			name: "valid person with roles and dependents",
			payload: map[string]interface{}{
				"firstName": "John",
				"lastName":  "Smith",
				"roles": []map[string]interface{}{
					{"text": "principal"},
					{"text": "developer"},
				},
				"dependents": []map[string]interface{}{
					{"firstName": "Jane", "lastName": "Smith"},
				},
				"birthDate": "1980-01-01",
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "valid person with no roles",
			payload: map[string]interface{}{
				"firstName": "Mary",
				"lastName":  "Jones",
				"birthDate": "1990-06-15",
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "missing firstName fails validation",
			payload: map[string]interface{}{
				"lastName":  "Smith",
				"birthDate": "1980-01-01",
			},
			wantStatus: http.StatusNotImplemented,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			personStore := mocks.NewMockPersonStore()
			handler := NewPersonHandler(personStore, newTestLogger())

			payloadBytes, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/api/persons", bytes.NewBuffer(payloadBytes))
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()

			handler.CreatePerson(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusOK {
				var person domain.Person
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&person))
				assert.False(t, person.ID.IsZero(), "document ID should be assigned")
				assert.Equal(t, tt.payload["firstName"], person.FirstName)
				assert.Len(t, personStore.Persons, 1)
			} else {
				var resp shared.MessageResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.Equal(t, "MongoDB Exception", resp.Message)
				assert.Empty(t, personStore.Persons)
			}
		})
	}
}

func TestFindAllPersons(t *testing.T) {
	t.Parallel()

	personStore := mocks.NewMockPersonStore()
	handler := NewPersonHandler(personStore, newTestLogger())

	seeded := &domain.Person{
		FirstName: "John",
		LastName:  "Smith",
		Roles:     []domain.Role{{Text: "principal"}},
		BirthDate: "1980-01-01",
	}
	require.NoError(t, personStore.Create(context.Background(), seeded))

	req := httptest.NewRequest(http.MethodGet, "/api/persons", nil)
	recorder := httptest.NewRecorder()

	handler.FindAllPersons(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var persons []domain.Person
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&persons))
	require.Len(t, persons, 1)
	assert.Equal(t, "John", persons[0].FirstName)
	assert.Equal(t, []domain.Role{{Text: "principal"}}, persons[0].Roles)
}

func TestFindAllPersonsEmptyStoreAnswersEmptyArray(t *testing.T) {
	t.Parallel()

	personStore := mocks.NewMockPersonStore()
	handler := NewPersonHandler(personStore, newTestLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/persons", nil)
	recorder := httptest.NewRecorder()

	handler.FindAllPersons(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "[]\n", recorder.Body.String())
}
