package http

import (
	"net/http"

	"github.com/hirunaj/pawtrail/internal/logger"
	"github.com/hirunaj/pawtrail/internal/utils"
	"github.com/hirunaj/pawtrail/models"
)

// presignPhoto hands the client a presigned PUT URL for a fresh object key,
// paired with the GET URL it should store on the report record once the
// upload finishes.
func (h *Handler) presignPhoto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if _, ok := utils.GetUserIDFromContext(ctx); !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	upload, err := h.services.BlobService.PresignUpload(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.presignPhoto").Msg("error presigning photo upload")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, upload, http.StatusOK)
}

// resolvePhoto re-presigns a stored object key into a fresh GET URL.
func (h *Handler) resolvePhoto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if _, ok := utils.GetUserIDFromContext(ctx); !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	key := r.URL.Query().Get("key")
	getURL, err := h.services.BlobService.PresignDownload(ctx, key)
	if err != nil {
		log.Err(err).Str("func", "*Handler.resolvePhoto").Str("key", key).Msg("error presigning photo download")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.PresignedDownload{Key: key, GetURL: getURL}, http.StatusOK)
}
