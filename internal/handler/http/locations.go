package http

import (
	"net/http"

	"github.com/MKhiriev/geo-locations/internal/utils"
	"github.com/MKhiriev/geo-locations/models"
	"github.com/go-chi/chi/v5"
)

const locationIDParam = "id"

func (h *Handler) listLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.services.LocationService.ListLocations(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, locations, http.StatusOK)
}

func (h *Handler) createLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.CreateLocationRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}
	request.OwnerID, _ = utils.GetUserIDFromContext(ctx)

	location, err := h.services.LocationService.CreateLocation(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, location, http.StatusOK)
}

func (h *Handler) getLocation(w http.ResponseWriter, r *http.Request) {
	location, err := h.services.LocationService.GetLocation(r.Context(), chi.URLParam(r, locationIDParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, location, http.StatusOK)
}
