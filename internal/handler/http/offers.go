package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"offerdeck/internal/logger"
	"offerdeck/internal/service"
	"offerdeck/internal/store"
	"offerdeck/internal/utils"
	"offerdeck/models"
)

// listOffers returns every offer for the administrator view, hidden and
// expired ones included.
func (h *Handler) listOffers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	offers, err := h.services.OfferService.ListAll(r.Context())
	if err != nil {
		log.Err(err).Msg("error fetching admin offers")
		utils.WriteJSONError(w, "Failed to fetch offers", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.OffersResponse{Offers: offers}, http.StatusOK)
}

func (h *Handler) createOffer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	input, ok := decodeOfferInput(w, r)
	if !ok {
		return
	}

	offer, err := h.services.OfferService.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			log.Debug().Err(err).Msg("offer creation rejected by validation")
			utils.WriteJSONError(w, validationMessage(err), http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("error creating offer")
		utils.WriteJSONError(w, "Failed to create offer", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.OfferResponse{Offer: offer}, http.StatusCreated)
}

func (h *Handler) getOffer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	offer, err := h.services.OfferService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrOfferNotFound) {
			utils.WriteJSONError(w, "Offer not found", http.StatusNotFound)
			return
		}
		log.Err(err).Msg("error fetching offer")
		utils.WriteJSONError(w, "Failed to fetch offer", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.OfferResponse{Offer: offer}, http.StatusOK)
}

func (h *Handler) updateOffer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	input, ok := decodeOfferInput(w, r)
	if !ok {
		return
	}

	offer, err := h.services.OfferService.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			log.Debug().Err(err).Msg("offer update rejected by validation")
			utils.WriteJSONError(w, validationMessage(err), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrOfferNotFound):
			utils.WriteJSONError(w, "Offer not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("error updating offer")
			utils.WriteJSONError(w, "Failed to update offer", http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.OfferResponse{Offer: offer}, http.StatusOK)
}

func (h *Handler) deleteOffer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.services.OfferService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, store.ErrOfferNotFound) {
			utils.WriteJSONError(w, "Offer not found", http.StatusNotFound)
			return
		}
		log.Err(err).Msg("error deleting offer")
		utils.WriteJSONError(w, "Failed to delete offer", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

func (h *Handler) toggleOffer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	offer, err := h.services.OfferService.ToggleVisibility(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrOfferNotFound) {
			utils.WriteJSONError(w, "Offer not found", http.StatusNotFound)
			return
		}
		log.Err(err).Msg("error toggling offer visibility")
		utils.WriteJSONError(w, "Failed to toggle offer visibility", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.OfferResponse{Offer: offer}, http.StatusOK)
}

// decodeOfferInput decodes the shared create/update request body. On
// malformed JSON it writes the 400 response itself and reports false.
func decodeOfferInput(w http.ResponseWriter, r *http.Request) (models.OfferInput, bool) {
	var input models.OfferInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, msgInvalidJSON, http.StatusBadRequest)
		return models.OfferInput{}, false
	}
	return input, true
}

// validationMessage strips the generic validation prefix so the response
// carries only the caller-safe description of the violated invariant.
func validationMessage(err error) string {
	msg := err.Error()
	if trimmed, ok := strings.CutPrefix(msg, service.ErrValidation.Error()+": "); ok {
		return trimmed
	}
	return msg
}
