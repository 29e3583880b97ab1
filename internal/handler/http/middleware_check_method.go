// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/geo-locations/internal/utils"
)

// notFound is registered as both the NotFound and the MethodNotAllowed
// handler of the router: a known path called with an unregistered method is
// answered exactly like an unknown path.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, routeNotFoundMessage, http.StatusNotFound)
}
