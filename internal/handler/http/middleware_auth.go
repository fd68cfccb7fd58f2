// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. The session gate, request logging, and tracing concerns
// are all handled at this layer before requests are forwarded to the
// service layer.
package http

import (
	"net/http"

	"offerdeck/internal/logger"
	"offerdeck/internal/utils"
	"offerdeck/models"
)

// authCookieName is the session cookie the gate reads. The cookie is
// http-only and lax-SameSite; the token is never accepted from a URL or a
// header, and is never readable from page scripts.
const authCookieName = "auth-token"

// auth is the session gate for programmatic API routes.
//
// It extracts the bearer token from the session cookie, verifies it via
// [service.AuthService.ParseToken], and — on success — stores the verified
// administrator identity in the request context under utils.AdminCtxKey
// before delegating to the next handler. Downstream handlers receive the
// claims, never the raw token.
//
// Every rejection — missing cookie, malformed token, bad signature, expiry —
// produces the same 401 response with the same generic marker, so the
// response cannot be used to probe why a token failed. The gate runs before
// any handler side effect.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		admin, err := h.admitSession(r)
		if err != nil {
			utils.WriteJSONError(w, msgAuthenticationRequired, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.ContextWithAdmin(r.Context(), admin)))
	})
}

// authPage is the session gate for interactive pages: identical admission
// policy, but a rejected request is redirected to the login entry point
// instead of receiving an API error, and no page content is leaked.
func (h *Handler) authPage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		admin, err := h.admitSession(r)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.ContextWithAdmin(r.Context(), admin)))
	})
}

// admitSession performs the shared admission check: cookie extraction and
// token verification. It returns the verified identity or an error that the
// route-class wrappers translate into their rejection shape.
func (h *Handler) admitSession(r *http.Request) (models.AdminInfo, error) {
	log := logger.FromRequest(r)

	cookie, err := r.Cookie(authCookieName)
	if err != nil || cookie.Value == "" {
		log.Debug().Msg("request without session cookie rejected")
		return models.AdminInfo{}, ErrNoSessionCookie
	}

	token, err := h.services.AuthService.ParseToken(r.Context(), cookie.Value)
	if err != nil {
		// ParseToken already collapsed the reason; nothing further to hide.
		log.Debug().Msg("request with invalid session token rejected")
		return models.AdminInfo{}, err
	}

	return models.AdminInfo{
		ID:    token.AdminID(),
		Email: token.Claims.Email,
		Name:  token.Claims.Name,
	}, nil
}
