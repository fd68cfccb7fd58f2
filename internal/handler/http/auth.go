package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"offerdeck/internal/logger"
	"offerdeck/internal/service"
	"offerdeck/internal/utils"
	"offerdeck/models"
)

// sessionCookieMaxAge matches the token lifetime: 7 days.
const sessionCookieMaxAge = 7 * 24 * time.Hour

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	admin, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			log.Debug().Msg("login request with missing fields")
			utils.WriteJSONError(w, "Email and password are required", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Debug().Msg("login rejected")
			utils.WriteJSONError(w, msgInvalidCredentials, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			utils.WriteJSONError(w, msgInternalError, http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, admin)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSONError(w, msgInternalError, http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, h.sessionCookie(token.SignedString))

	utils.WriteJSON(w, models.LoginResponse{
		Success: true,
		Admin: models.AdminInfo{
			ID:    admin.ID,
			Email: admin.Email,
			Name:  admin.Name,
		},
	}, http.StatusOK)
}

// me returns the identity of the current session. It sits behind the
// session gate, so the identity is simply read back from the request
// context — no second verification, no database round trip.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	admin, ok := utils.AdminFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, msgAuthenticationRequired, http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, map[string]models.AdminInfo{"admin": admin}, http.StatusOK)
}

// logout clears the session cookie. There is no server-side session state
// to destroy — the token simply stops being presented.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.clearedSessionCookie())
	utils.WriteJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

// sessionCookie builds the http-only session cookie carrying the signed
// token. Secure is set only in production so local development over plain
// HTTP keeps working.
func (h *Handler) sessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(sessionCookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}

// clearedSessionCookie builds the expired twin of the session cookie.
func (h *Handler) clearedSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}
