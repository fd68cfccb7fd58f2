package http

import (
	"net/http"

	"offerdeck/internal/logger"
	"offerdeck/internal/utils"
	"offerdeck/models"
)

// listPublicOffers is the unauthenticated projection: only offers that are
// inside their validity window and not hidden, newest first. It bypasses
// the session gate entirely.
func (h *Handler) listPublicOffers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	offers, err := h.services.OfferService.ListPublic(r.Context())
	if err != nil {
		log.Err(err).Msg("error fetching public offers")
		utils.WriteJSONError(w, "Failed to fetch offers", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.OffersResponse{Offers: offers}, http.StatusOK)
}
