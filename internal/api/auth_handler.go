package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/taskslite/tasks-lite-api/internal/api/shared"
	"github.com/taskslite/tasks-lite-api/internal/platform/logger"
	"github.com/taskslite/tasks-lite-api/internal/service/auth"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	authService *auth.AuthService
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(authService *auth.AuthService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		authService: authService,
		logger:      logger.With(slog.String("component", "auth_handler")),
	}
}

// Register handles POST /api/users/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"All fields are required: firstName, lastName, email, password")
		return
	}

	result, err := h.authService.Register(r.Context(), req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		status := MapErrorToStatusCode(err)
		if status == http.StatusInternalServerError {
			log.Error("registration failed", "error", err, "email", req.Email)
			shared.RespondWithErrorAndLog(w, r, status, "Failed to create user", err)
			return
		}
		shared.RespondWithError(w, r, status, GetSafeErrorMessage(err))
		return
	}

	shared.RespondWithData(w, r, http.StatusCreated, authResultToData(result))
}

// Login handles POST /api/users/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Email and password are required")
		return
	}

	result, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Error("login failed", "error", err)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to authenticate user", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, authResultToData(result))
}

// Profile handles GET /api/users/profile. The identity was resolved by the
// auth middleware; the handler only renders its public fields.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, ok := CurrentUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, ProfileData{User: userToResponse(user)})
}
