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

// TeamHandler handles the team API requests. The 401 bodies keep the
// historical casing drift: "Invalid teamId" on player assignment,
// "Invalid teamID" on the player list and team delete routes.
type TeamHandler struct {
	teamStore store.TeamStore
	logger    *slog.Logger
}

// NewTeamHandler creates a new TeamHandler with the given dependencies.
func NewTeamHandler(teamStore store.TeamStore, logger *slog.Logger) *TeamHandler {
	return &TeamHandler{
		teamStore: teamStore,
		logger:    logger,
	}
}

// CreateTeam godoc
//
//	@Summary		Create a new team.
//	@Description	API for adding new team objects.
//	@Tags			teams
//	@Accept			json
//	@Produce		json
//	@Param			team	body		TeamRequest	true	"Team's information"
//	@Success		200		{object}	shared.EnvelopeResponse
//	@Failure		500		{object}	shared.MessageResponse
//	@Failure		501		{object}	shared.MessageResponse
//	@Router			/teams [post]
func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req TeamRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithStoreError(w, r, err)
		return
	}

	team := domain.NewTeam(req.Name, req.Mascot)
	if err := h.teamStore.Create(r.Context(), team); err != nil {
		RespondWithStoreError(w, r, err)
		return
	}

	h.logger.Info("team created", "team_id", team.ID.Hex(), "name", team.Name)
	shared.RespondWithEnvelope(w, r, http.StatusOK, "Team created successfully", team)
}

// FindAllTeams godoc
//
//	@Summary		Returns an array of teams.
//	@Description	API to find all teams.
//	@Tags			teams
//	@Produce		json
//	@Success		200	{object}	shared.EnvelopeResponse
//	@Failure		500	{object}	shared.MessageResponse
//	@Failure		501	{object}	shared.MessageResponse
//	@Router			/teams [get]
func (h *TeamHandler) FindAllTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamStore.FindAll(r.Context())
	if err != nil {
		RespondWithStoreError(w, r, err)
		return
	}
	shared.RespondWithEnvelope(w, r, http.StatusOK, "Array of teams documents", teams)
}

// AssignPlayerToTeam godoc
//
//	@Summary		Assign a player to a team.
//	@Description	API for appending a player to the roster of the team
//	@Description	found by ID.
//	@Tags			teams
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"The teamId requested by the user."
//	@Param			player	body		PlayerRequest	true	"Player fields"
//	@Success		200		{object}	shared.EnvelopeResponse
//	@Failure		401		{object}	shared.MessageResponse
//	@Failure		500		{object}	shared.MessageResponse
//	@Failure		501		{object}	shared.MessageResponse
//	@Router			/teams/{id}/players [post]
func (h *TeamHandler) AssignPlayerToTeam(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req PlayerRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithStoreError(w, r, err)
		return
	}

	team, err := h.teamStore.AppendPlayer(r.Context(), id, req.ToDomain())
	if store.IsNotFoundError(err) {
		shared.RespondWithMessage(w, r, http.StatusUnauthorized, "Invalid teamId")
		return
	}
	if err != nil {
		RespondWithStoreError(w, r, err)
		return
	}

	h.logger.Info("player assigned",
		"team_id", id,
		"roster_size", len(team.Players))
	shared.RespondWithEnvelope(w, r, http.StatusOK, "Player added to team successfully", team)
}

// FindAllPlayersByTeamID godoc
//
//	@Summary		Returns a team's players.
//	@Description	API for listing the players of the team found by ID.
//	@Tags			teams
//	@Produce		json
//	@Param			id	path		string	true	"The teamId requested by the user."
//	@Success		200	{object}	shared.EnvelopeResponse
//	@Failure		401	{object}	shared.MessageResponse
//	@Failure		500	{object}	shared.MessageResponse
//	@Failure		501	{object}	shared.MessageResponse
//	@Router			/teams/{id}/players [get]
func (h *TeamHandler) FindAllPlayersByTeamID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	team, err := h.teamStore.FindByID(r.Context(), id)
	if store.IsNotFoundError(err) {
		shared.RespondWithMessage(w, r, http.StatusUnauthorized, "Invalid teamID")
		return
	}
	if err != nil {
		RespondWithStoreError(w, r, err)
		return
	}

	message := fmt.Sprintf("Array of players in team: %s", team.Name)
	shared.RespondWithEnvelope(w, r, http.StatusOK, message, team.Players)
}

// DeleteTeamByID godoc
//
//	@Summary		Delete a team by ID.
//	@Description	API for deleting a team document. The removal is
//	@Description	immediate and irreversible.
//	@Tags			teams
//	@Produce		json
//	@Param			id	path		string	true	"The teamId requested by the user."
//	@Success		200	{object}	shared.EnvelopeResponse
//	@Failure		401	{object}	shared.MessageResponse
//	@Failure		500	{object}	shared.MessageResponse
//	@Failure		501	{object}	shared.MessageResponse
//	@Router			/teams/{id} [delete]
func (h *TeamHandler) DeleteTeamByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	team, err := h.teamStore.Delete(r.Context(), id)
	if store.IsNotFoundError(err) {
		shared.RespondWithMessage(w, r, http.StatusUnauthorized, "Invalid teamID")
		return
	}
	if err != nil {
		RespondWithStoreError(w, r, err)
		return
	}

	h.logger.Info("team deleted", "team_id", id, "name", team.Name)
	message := fmt.Sprintf("%s was deleted successfully", team.Name)
	shared.RespondWithEnvelope(w, r, http.StatusOK, message, team)
}
