package http

import (
	"net/http"

	"github.com/MKhiriev/geo-locations/internal/utils"
	"github.com/MKhiriev/geo-locations/models"
	"github.com/go-chi/chi/v5"
)

// addComment answers with the full comment list of the location, newest first.
func (h *Handler) addComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.CommentRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	authorID, _ := utils.GetUserIDFromContext(ctx)
	comments, err := h.services.LocationService.AddComment(ctx, models.NewComment{
		LocationID: chi.URLParam(r, locationIDParam),
		AuthorID:   authorID,
		Text:       request.Text,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, comments, http.StatusOK)
}
