package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/geo-locations/internal/config"
	"github.com/MKhiriev/geo-locations/internal/service"
	"github.com/MKhiriev/geo-locations/internal/store"
	"github.com/MKhiriev/geo-locations/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListLocations_EmptyIsArray(t *testing.T) {
	h, m := newTestHandler(t, config.Server{})
	m.locations.EXPECT().ListLocations(gomock.Any()).Return([]models.Location{}, nil)

	rec := serve(h, jsonRequest(http.MethodGet, "/api/locations", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListLocations_Public(t *testing.T) {
	h, m := newTestHandler(t, config.Server{})
	m.locations.EXPECT().ListLocations(gomock.Any()).Return([]models.Location{
		{LocationID: "l1", Owner: models.UserRef{UserID: testUserID, Username: "alice"}},
		{LocationID: "l2", Owner: models.UserRef{UserID: testUserID, Username: "alice"}},
	}, nil)

	rec := serve(h, jsonRequest(http.MethodGet, "/api/locations/", ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var locations []models.Location
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&locations))
	require.Len(t, locations, 2)
	assert.Equal(t, "l1", locations[0].LocationID)
	assert.Equal(t, "alice", locations[0].Owner.Username)
}

func TestCreateLocation_Success(t *testing.T) {
	h, m := newTestHandler(t, config.Server{})
	m.expectValidToken()

	m.locations.EXPECT().CreateLocation(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, request models.CreateLocationRequest) (models.Location, error) {
			assert.Equal(t, testUserID, request.OwnerID)
			require.NotNil(t, request.Latitude)
			require.NotNil(t, request.Longitude)
			assert.Equal(t, models.Latitude(1), *request.Latitude)
			assert.Equal(t, models.Longitude(2), *request.Longitude)
			assert.Equal(t, "park", request.Description)
			return models.Location{
				LocationID:  testLocationID,
				Owner:       models.UserRef{UserID: testUserID},
				Latitude:    1,
				Longitude:   2,
				Description: "park",
				ImageURLs:   models.ImageURLs{},
				Comments:    models.Comments{},
			}, nil
		},
	)

	rec := serve(h, authorized(jsonRequest(http.MethodPost, "/api/locations", `{"latitude":1,"longitude":2,"description":"park"}`)))

	require.Equal(t, http.StatusOK, rec.Code)

	var location models.Location
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&location))
	assert.Equal(t, testLocationID, location.LocationID)
	assert.Equal(t, "park", location.Description)
}

func TestCreateLocation_OwnerFromBodyIgnored(t *testing.T) {
	h, m := newTestHandler(t, config.Server{})
	m.expectValidToken()

	m.locations.EXPECT().CreateLocation(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, request models.CreateLocationRequest) (models.Location, error) {
			assert.Equal(t, testUserID, request.OwnerID)
			return models.Location{LocationID: testLocationID}, nil
		},
	)

	body := `{"latitude":1,"longitude":2,"OwnerID":"someone-else","owner_id":"someone-else"}`
	rec := serve(h, authorized(jsonRequest(http.MethodPost, "/api/locations", body)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateLocation_ValidationError(t *testing.T) {
	h, m := newTestHandler(t, config.Server{})
	m.expectValidToken()

	m.locations.EXPECT().CreateLocation(gomock.Any(), gomock.Any()).
		Return(models.Location{}, errors.Join(service.ErrInvalidDataProvided, models.ErrLatitudeOutOfRange))

	rec := serve(h, authorized(jsonRequest(http.MethodPost, "/api/locations", `{"latitude":100,"longitude":2}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeMessage(t, rec.Body), models.ErrLatitudeOutOfRange.Error())
}

func TestCreateLocation_Unauthenticated(t *testing.T) {
	h, _ := newTestHandler(t, config.Server{})

	rec := serve(h, jsonRequest(http.MethodPost, "/api/locations", `{"latitude":1,"longitude":2}`))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, noTokenMessage, decodeMessage(t, rec.Body))
}

func TestGetLocation_Success(t *testing.T) {
	h, m := newTestHandler(t, config.Server{})
	m.locations.EXPECT().GetLocation(gomock.Any(), testLocationID).Return(models.Location{
		LocationID: testLocationID,
		Owner:      models.UserRef{UserID: testUserID, Username: "alice"},
		Comments: models.Comments{
			{CommentID: "c1", Author: models.UserRef{UserID: testUserID, Username: "alice"}, Text: "nice"},
		},
	}, nil)

	rec := serve(h, jsonRequest(http.MethodGet, "/api/locations/"+testLocationID, ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var location models.Location
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&location))
	assert.Equal(t, "alice", location.Owner.Username)
	require.Len(t, location.Comments, 1)
	assert.Equal(t, "alice", location.Comments[0].Author.Username)
}

func TestGetLocation_NotFound(t *testing.T) {
	for _, id := range []string{testLocationID, "not-a-valid-id"} {
		t.Run(id, func(t *testing.T) {
			h, m := newTestHandler(t, config.Server{})
			m.locations.EXPECT().GetLocation(gomock.Any(), id).
				Return(models.Location{}, store.ErrLocationNotFound)

			rec := serve(h, jsonRequest(http.MethodGet, "/api/locations/"+id, ""))

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, locationNotFoundMessage, decodeMessage(t, rec.Body))
		})
	}
}

func TestGetLocation_InternalErrorDoesNotLeak(t *testing.T) {
	h, m := newTestHandler(t, config.Server{})
	m.locations.EXPECT().GetLocation(gomock.Any(), testLocationID).
		Return(models.Location{}, errors.New("relation \"locations\" does not exist"))

	rec := serve(h, jsonRequest(http.MethodGet, "/api/locations/"+testLocationID, ""))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, internalErrorMessage, decodeMessage(t, rec.Body))
	assert.NotContains(t, rec.Body.String(), "relation")
}

func TestLocationRoutes_NonCanonicalIDIs404(t *testing.T) {
	ids := map[string]string{
		"urn":      "urn:uuid:" + testLocationID,
		"braced":   "%7B" + testLocationID + "%7D",
		"undashed": strings.ReplaceAll(testLocationID, "-", ""),
	}

	for name, id := range ids {
		t.Run("get "+name, func(t *testing.T) {
			h, _ := newValidatedTestHandler(t, config.Server{})

			rec := serve(h, jsonRequest(http.MethodGet, "/api/locations/"+id, ""))

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, locationNotFoundMessage, decodeMessage(t, rec.Body))
		})

		t.Run("comment "+name, func(t *testing.T) {
			h, m := newValidatedTestHandler(t, config.Server{})
			m.expectValidToken()

			rec := serve(h, authorized(jsonRequest(http.MethodPost, "/api/locations/"+id+"/comments", `{"text":"nice"}`)))

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, locationNotFoundMessage, decodeMessage(t, rec.Body))
		})

		t.Run("images "+name, func(t *testing.T) {
			h, m := newValidatedTestHandler(t, config.Server{})
			m.expectValidToken()

			req := multipartRequest(t, "/api/locations/"+id+"/images", testFile{field: "images", name: "a.png", content: "png"})
			rec := serve(h, authorized(req))

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, locationNotFoundMessage, decodeMessage(t, rec.Body))
		})
	}
}
