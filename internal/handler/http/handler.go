package http

import (
	"net/http"

	"offerdeck/internal/config"
	"offerdeck/internal/logger"
	"offerdeck/internal/service"
)

// Handler is the HTTP transport layer: it owns the router, the middleware
// chain, and every request handler, delegating all business decisions to
// the service layer.
type Handler struct {
	services *service.Services

	// secureCookies marks session cookies Secure. True only in production.
	secureCookies bool

	// adminPages, when set, is the external renderer of the interactive
	// administrator pages. It is mounted under /admin behind the redirecting
	// variant of the session gate. Page rendering itself is not this
	// server's concern.
	adminPages http.Handler

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler over the given services.
func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		secureCookies: cfg.Environment == "production",
		logger:        logger,
	}
}

// SetAdminPages installs an external page renderer to be served under
// /admin behind the session gate. Must be called before Init.
func (h *Handler) SetAdminPages(pages http.Handler) {
	h.adminPages = pages
}
