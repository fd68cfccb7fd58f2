package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"offerdeck/internal/logger"
	"offerdeck/internal/service"
	"offerdeck/internal/utils"
	"offerdeck/models"
)

// createUploadGrant mints a presigned upload URL for an offer image. The
// actual byte transfer happens directly between the administrator's browser
// and the blob store; this server only issues the scoped capability.
func (h *Handler) createUploadGrant(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.UploadGrantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	grant, err := h.services.UploadService.RequestUploadGrant(r.Context(), req.FileName, req.FileType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			utils.WriteJSONError(w, "fileName and fileType are required", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrUnsupportedFileType):
			utils.WriteJSONError(w, "Only image files are allowed", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("error generating signed url")
			utils.WriteJSONError(w, "Failed to generate signed URL", http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, grant, http.StatusOK)
}
