package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Zadkiel26/web-420/internal/api/shared"
	"github.com/Zadkiel26/web-420/internal/domain"
	"github.com/Zadkiel26/web-420/internal/service/auth"
	"github.com/Zadkiel26/web-420/internal/store"
)

// invalidCredentials is the single 401 body for login. A missing user
// and a wrong password answer identically so the response never
// reveals which field was wrong.
const invalidCredentials = "Invalid username and/or password"

// SessionHandler handles the signup and login API requests.
type SessionHandler struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	verifier  auth.PasswordVerifier
	logger    *slog.Logger
}

// NewSessionHandler creates a new SessionHandler with the given dependencies.
func NewSessionHandler(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	logger *slog.Logger,
) *SessionHandler {
	return &SessionHandler{
		userStore: userStore,
		hasher:    hasher,
		verifier:  verifier,
		logger:    logger,
	}
}

// Signup godoc
//
//	@Summary		User SignUp
//	@Description	API for registering a new user. The password is stored
//	@Description	as a salted hash, never plaintext.
//	@Tags			signup
//	@Accept			json
//	@Produce		plain
//	@Param			user	body		SignupRequest	true	"User fields"
//	@Success		200		{string}	string			"Registered User"
//	@Failure		401		{string}	string			"Username is already in use"
//	@Failure		500		{string}	string			"Server Exception"
//	@Failure		501		{string}	string			"MongoDB Exception"
//	@Router			/signup [post]
func (h *SessionHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithStoreErrorText(w, r, err)
		return
	}

	_, err := h.userStore.FindByUserName(r.Context(), req.UserName)
	if err == nil {
		shared.RespondWithText(w, r, http.StatusUnauthorized, "Username is already in use")
		return
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		RespondWithStoreErrorText(w, r, err)
		return
	}

	hashedPassword, err := h.hasher.Hash(req.Password)
	if err != nil {
		RespondWithStoreErrorText(w, r, err)
		return
	}

	user := domain.NewUser(req.UserName, hashedPassword, req.EmailAddress)
	if err := h.userStore.Create(r.Context(), user); err != nil {
		// The unique index can still reject the write if the same
		// userName was registered between the lookup and the insert.
		if store.IsDuplicateError(err) {
			shared.RespondWithText(w, r, http.StatusUnauthorized, "Username is already in use")
			return
		}
		RespondWithStoreErrorText(w, r, err)
		return
	}

	h.logger.Info("user registered", "user_id", user.ID.Hex())
	shared.RespondWithText(w, r, http.StatusOK, "Registered User")
}

// Login godoc
//
//	@Summary		User Login
//	@Description	API for logging a user in by comparing the supplied
//	@Description	password against the stored hash.
//	@Tags			login
//	@Accept			json
//	@Produce		plain
//	@Param			user	body		LoginRequest	true	"User fields"
//	@Success		200		{string}	string			"User logged in"
//	@Failure		401		{string}	string			"Invalid username and/or password"
//	@Failure		500		{string}	string			"Server Exception"
//	@Failure		501		{string}	string			"MongoDB Exception"
//	@Router			/login [post]
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithStoreErrorText(w, r, err)
		return
	}

	user, err := h.userStore.FindByUserName(r.Context(), req.UserName)
	if errors.Is(err, store.ErrUserNotFound) {
		shared.RespondWithText(w, r, http.StatusUnauthorized, invalidCredentials)
		return
	}
	if err != nil {
		RespondWithStoreErrorText(w, r, err)
		return
	}

	if err := h.verifier.Compare(user.Password, req.Password); err != nil {
		shared.RespondWithText(w, r, http.StatusUnauthorized, invalidCredentials)
		return
	}

	h.logger.Info("user logged in", "user_id", user.ID.Hex())
	shared.RespondWithText(w, r, http.StatusOK, "User logged in")
}
