package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Zadkiel26/web-420/internal/api/shared"
	"github.com/Zadkiel26/web-420/internal/domain"
	"github.com/Zadkiel26/web-420/internal/store"
)

// ComposerHandler handles the composer API requests.
type ComposerHandler struct {
	composerStore store.ComposerStore
	logger        *slog.Logger
}

// NewComposerHandler creates a new ComposerHandler with the given dependencies.
func NewComposerHandler(composerStore store.ComposerStore, logger *slog.Logger) *ComposerHandler {
	return &ComposerHandler{
		composerStore: composerStore,
		logger:        logger,
	}
}

// FindAllComposers godoc
//
//	@Summary		Returns an array of composers.
//	@Description	API to find all composers.
//	@Tags			composers
//	@Produce		json
//	@Success		200	{array}		domain.Composer
//	@Failure		500	{object}	shared.MessageResponse
//	@Failure		501	{object}	shared.MessageResponse
//	@Router			/composers [get]
func (h *ComposerHandler) FindAllComposers(w http.ResponseWriter, r *http.Request) {
	composers, err := h.composerStore.FindAll(r.Context())
	if err != nil {
		RespondWithStoreError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, composers)
}

// FindComposerByID godoc
//
//	@Summary		Retrieves a composer by ID.
//	@Description	API for returning a single composer object from the store.
//	@Tags			composers
//	@Produce		json
//	@Param			id	path		string	true	"The composerId requested by the user."
//	@Success		200	{object}	domain.Composer
//	@Failure		500	{object}	shared.MessageResponse
//	@Failure		501	{object}	shared.MessageResponse
//	@Router			/composers/{id} [get]
func (h *ComposerHandler) FindComposerByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	composer, err := h.composerStore.FindByID(r.Context(), id)
	if store.IsNotFoundError(err) {
		// Unknown ids answer 200 with a null body on this route, as the
		// API always has.
		shared.RespondWithJSON(w, r, http.StatusOK, nil)
		return
	}
	if err != nil {
		RespondWithStoreError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, composer)
}

// CreateComposer godoc
//
//	@Summary		Create a new composer.
//	@Description	API for adding new composer objects.
//	@Tags			composers
//	@Accept			json
//	@Produce		json
//	@Param			composer	body		ComposerRequest	true	"Composer's information"
//	@Success		200			{object}	domain.Composer
//	@Failure		500			{object}	shared.MessageResponse
//	@Failure		501			{object}	shared.MessageResponse
//	@Router			/composers [post]
func (h *ComposerHandler) CreateComposer(w http.ResponseWriter, r *http.Request) {
	var req ComposerRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithStoreError(w, r, err)
		return
	}

	composer := domain.NewComposer(req.FirstName, req.LastName)
	if err := h.composerStore.Create(r.Context(), composer); err != nil {
		RespondWithStoreError(w, r, err)
		return
	}

	h.logger.Info("composer created", "composer_id", composer.ID.Hex())
	shared.RespondWithJSON(w, r, http.StatusOK, composer)
}

// UpdateComposerByID godoc
//
//	@Summary		Update a composer by ID.
//	@Description	API for updating an existing composer document.
//	@Tags			composers
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string			true	"The composerId requested by the user."
//	@Param			composer	body		ComposerRequest	true	"Composer's information"
//	@Success		200			{object}	domain.Composer
//	@Failure		401			{object}	shared.MessageResponse
//	@Failure		500			{object}	shared.MessageResponse
//	@Failure		501			{object}	shared.MessageResponse
//	@Router			/composers/{id} [put]
func (h *ComposerHandler) UpdateComposerByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req ComposerRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithStoreError(w, r, err)
		return
	}

	composer, err := h.composerStore.Update(r.Context(), id, req.FirstName, req.LastName)
	if store.IsNotFoundError(err) {
		shared.RespondWithMessage(w, r, http.StatusUnauthorized, "Invalid composerID")
		return
	}
	if err != nil {
		RespondWithStoreError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, composer)
}

// DeleteComposerByID godoc
//
//	@Summary		Delete a composer by ID.
//	@Description	API for deleting a composer document. The removal is
//	@Description	immediate and irreversible.
//	@Tags			composers
//	@Produce		json
//	@Param			id	path		string	true	"The composerId requested by the user."
//	@Success		200	{object}	domain.Composer
//	@Failure		500	{object}	shared.MessageResponse
//	@Failure		501	{object}	shared.MessageResponse
//	@Router			/composers/{id} [delete]
func (h *ComposerHandler) DeleteComposerByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	composer, err := h.composerStore.Delete(r.Context(), id)
	if store.IsNotFoundError(err) {
		// Deleting an unknown id still answers 200 with a null body.
		shared.RespondWithJSON(w, r, http.StatusOK, nil)
		return
	}
	if err != nil {
		RespondWithStoreError(w, r, err)
		return
	}

	h.logger.Info("composer deleted", "composer_id", composer.ID.Hex())
	shared.RespondWithJSON(w, r, http.StatusOK, composer)
}
