package api

import (
	"log/slog"
	"net/http"

	"github.com/Zadkiel26/web-420/internal/api/shared"
	"github.com/Zadkiel26/web-420/internal/store"
)

// PersonHandler handles the person API requests.
type PersonHandler struct {
	personStore store.PersonStore
	logger      *slog.Logger
}

// NewPersonHandler creates a new PersonHandler with the given dependencies.
func NewPersonHandler(personStore store.PersonStore, logger *slog.Logger) *PersonHandler {
	return &PersonHandler{
		personStore: personStore,
		logger:      logger,
	}
}

// FindAllPersons godoc
//
//	@Summary		Returns an array of persons.
//	@Description	API to find all persons.
//	@Tags			persons
//	@Produce		json
//	@Success		200	{array}		domain.Person
//	@Failure		500	{object}	shared.MessageResponse
//	@Failure		501	{object}	shared.MessageResponse
//	@Router			/persons [get]
func (h *PersonHandler) FindAllPersons(w http.ResponseWriter, r *http.Request) {
	persons, err := h.personStore.FindAll(r.Context())
	if err != nil {
		RespondWithStoreError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, persons)
}

// CreatePerson godoc
//
//	@Summary		Create a new person.
//	@Description	API for adding new person objects with their roles and
//	@Description	dependents.
//	@Tags			persons
//	@Accept			json
//	@Produce		json
//	@Param			person	body		PersonRequest	true	"Person's information"
//	@Success		200		{object}	domain.Person
//	@Failure		500		{object}	shared.MessageResponse
//	@Failure		501		{object}	shared.MessageResponse
//	@Router			/persons [post]
func (h *PersonHandler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	var req PersonRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithStoreError(w, r, err)
		return
	}

	person := req.ToDomain()
	if err := h.personStore.Create(r.Context(), person); err != nil {
		RespondWithStoreError(w, r, err)
		return
	}

	h.logger.Info("person created", "person_id", person.ID.Hex())
	shared.RespondWithJSON(w, r, http.StatusOK, person)
}
