package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/geo-locations/internal/logger"
	"github.com/MKhiriev/geo-locations/internal/mock"
	"github.com/MKhiriev/geo-locations/internal/store"
	"github.com/MKhiriev/geo-locations/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testLocationID = "0192f5e0-8c4a-7d3e-9b1a-2f6c8d4e5b02"
	testAuthorID   = "0192f5e0-8c4a-7d3e-9b1a-2f6c8d4e5c03"
	testCommentID  = "0192f5e0-8c4a-7d3e-9b1a-2f6c8d4e5d04"
)

type locationMocks struct {
	locations *mock.MockLocationRepository
	users     *mock.MockUserRepository
	images    *mock.MockImageStorage
	ids       *mock.MockIDGenerator
	fileNames *mock.MockFileNameGenerator
}

func newTestLocationService(t *testing.T, ctrl *gomock.Controller) (*locationService, locationMocks) {
	t.Helper()
	m := locationMocks{
		locations: mock.NewMockLocationRepository(ctrl),
		users:     mock.NewMockUserRepository(ctrl),
		images:    mock.NewMockImageStorage(ctrl),
		ids:       mock.NewMockIDGenerator(ctrl),
		fileNames: mock.NewMockFileNameGenerator(ctrl),
	}

	svc := NewLocationService(m.locations, m.users, m.images, m.ids, m.fileNames, logger.Nop()).(*locationService)
	return svc, m
}

func upload(fileName, content string) models.ImageUpload {
	return models.ImageUpload{
		FieldName:   models.ImagesFieldName,
		FileName:    fileName,
		ContentType: "image/png",
		Size:        int64(len(content)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}

// ── ListLocations ────────────────────────────────────────────────────────────

func TestLocationService_ListLocations_ResolvesOwners(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestLocationService(t, ctrl)
	ctx := context.Background()

	stored := []models.Location{
		{LocationID: "l1", Owner: models.UserRef{UserID: testUserID}},
		{LocationID: "l2", Owner: models.UserRef{UserID: testAuthorID}},
		{LocationID: "l3", Owner: models.UserRef{UserID: testUserID}},
	}

	m.locations.EXPECT().GetLocations(ctx).Return(stored, nil)
	m.users.EXPECT().FindUsernames(ctx, []string{testUserID, testAuthorID}).
		Return(map[string]string{testUserID: "alice", testAuthorID: "bob"}, nil)

	locations, err := svc.ListLocations(ctx)
	require.NoError(t, err)
	require.Len(t, locations, 3)
	assert.Equal(t, "l1", locations[0].LocationID)
	assert.Equal(t, "alice", locations[0].Owner.Username)
	assert.Equal(t, "bob", locations[1].Owner.Username)
	assert.Equal(t, "alice", locations[2].Owner.Username)
}

func TestLocationService_ListLocations_EmptyIsNotNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestLocationService(t, ctrl)
	ctx := context.Background()

	m.locations.EXPECT().GetLocations(ctx).Return(nil, nil)
	m.users.EXPECT().FindUsernames(ctx, []string{}).Return(map[string]string{}, nil)

	locations, err := svc.ListLocations(ctx)
	require.NoError(t, err)
	assert.NotNil(t, locations)
	assert.Empty(t, locations)
}

func TestLocationService_ListLocations_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestLocationService(t, ctrl)
	ctx := context.Background()

	dbErr := errors.New("db down")
	m.locations.EXPECT().GetLocations(ctx).Return(nil, dbErr)

	_, err := svc.ListLocations(ctx)
	assert.ErrorIs(t, err, dbErr)
}

// ── CreateLocation ───────────────────────────────────────────────────────────

func TestLocationService_CreateLocation_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestLocationService(t, ctrl)
	ctx := context.Background()

	lat, lon := models.Latitude(55.75), models.Longitude(37.61)
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	m.ids.EXPECT().Generate().Return(testLocationID)
	m.locations.EXPECT().CreateLocation(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, l models.Location) (models.Location, error) {
			assert.Equal(t, testLocationID, l.LocationID)
			assert.Equal(t, testUserID, l.Owner.UserID)
			assert.Equal(t, lat, l.Latitude)
			assert.Equal(t, lon, l.Longitude)
			assert.Equal(t, "Red Square", l.Description)
			assert.NotNil(t, l.ImageURLs)
			assert.NotNil(t, l.Comments)
			l.CreatedAt = createdAt
			return l, nil
		},
	)
	m.users.EXPECT().FindUsernames(ctx, []string{testUserID}).Return(map[string]string{testUserID: "alice"}, nil)

	location, err := svc.CreateLocation(ctx, models.CreateLocationRequest{
		Latitude:    &lat,
		Longitude:   &lon,
		Description: "Red Square",
		OwnerID:     testUserID,
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", location.Owner.Username)
	assert.Equal(t, createdAt, location.CreatedAt)
}

func TestLocationService_CreateLocation_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestLocationService(t, ctrl)
	ctx := context.Background()

	lat, lon := models.Latitude(0), models.Longitude(0)
	dbErr := errors.New("insert failed")

	m.ids.EXPECT().Generate().Return(testLocationID)
	m.locations.EXPECT().CreateLocation(ctx, gomock.Any()).Return(models.Location{}, dbErr)

	_, err := svc.CreateLocation(ctx, models.CreateLocationRequest{Latitude: &lat, Longitude: &lon, OwnerID: testUserID})
	assert.ErrorIs(t, err, dbErr)
}

// ── GetLocation ──────────────────────────────────────────────────────────────

func TestLocationService_GetLocation_PopulatesOwnerAndAuthors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestLocationService(t, ctrl)
	ctx := context.Background()

	stored := models.Location{
		LocationID: testLocationID,
		Owner:      models.UserRef{UserID: testUserID},
		Comments: models.Comments{
			{CommentID: "c2", Author: models.UserRef{UserID: testAuthorID}, Text: "second"},
			{CommentID: "c1", Author: models.UserRef{UserID: testUserID}, Text: "first"},
		},
	}

	m.locations.EXPECT().GetLocation(ctx, testLocationID).Return(stored, nil)
	m.users.EXPECT().FindUsernames(ctx, []string{testUserID, testAuthorID}).
		Return(map[string]string{testUserID: "alice", testAuthorID: "bob"}, nil)

	location, err := svc.GetLocation(ctx, testLocationID)
	require.NoError(t, err)
	assert.Equal(t, "alice", location.Owner.Username)
	assert.Equal(t, "bob", location.Comments[0].Author.Username)
	assert.Equal(t, "alice", location.Comments[1].Author.Username)
}

func TestLocationService_GetLocation_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestLocationService(t, ctrl)
	ctx := context.Background()

	m.locations.EXPECT().GetLocation(ctx, testLocationID).Return(models.Location{}, store.ErrLocationNotFound)

	_, err := svc.GetLocation(ctx, testLocationID)
	assert.ErrorIs(t, err, store.ErrLocationNotFound)
}

func TestLocationService_GetLocation_DeletedOwnerHasEmptyUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestLocationService(t, ctrl)
	ctx := context.Background()

	m.locations.EXPECT().GetLocation(ctx, testLocationID).
		Return(models.Location{LocationID: testLocationID, Owner: models.UserRef{UserID: testUserID}}, nil)
	m.users.EXPECT().FindUsernames(ctx, []string{testUserID}).Return(map[string]string{}, nil)

	location, err := svc.GetLocation(ctx, testLocationID)
	require.NoError(t, err)
	assert.Equal(t, testUserID, location.Owner.UserID)
	assert.Empty(t, location.Owner.Username)
}

// ── AddComment ───────────────────────────────────────────────────────────────

func TestLocationService_AddComment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestLocationService(t, ctrl)
	ctx := context.Background()

	now := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)
	svc.now = func() time.Time { return now }

	older := models.Comment{CommentID: "old", Author: models.UserRef{UserID: testUserID}, Text: "older"}

	m.ids.EXPECT().Generate().Return(testCommentID)
	m.locations.EXPECT().PrependComment(ctx, testLocationID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, c models.Comment) (models.Comments, error) {
			assert.Equal(t, testCommentID, c.CommentID)
			assert.Equal(t, testAuthorID, c.Author.UserID)
			assert.Equal(t, "nice place", c.Text)
			assert.Equal(t, now, c.CreatedAt)
			return models.Comments{c, older}, nil
		},
	)
	m.users.EXPECT().FindUsernames(ctx, []string{testAuthorID, testUserID}).
		Return(map[string]string{testUserID: "alice", testAuthorID: "bob"}, nil)

	comments, err := svc.AddComment(ctx, models.NewComment{
		LocationID: testLocationID,
		AuthorID:   testAuthorID,
		Text:       "nice place",
	})
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, testCommentID, comments[0].CommentID)
	assert.Equal(t, "bob", comments[0].Author.Username)
	assert.Equal(t, "alice", comments[1].Author.Username)
}

func TestLocationService_AddComment_LocationNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestLocationService(t, ctrl)
	ctx := context.Background()

	m.ids.EXPECT().Generate().Return(testCommentID)
	m.locations.EXPECT().PrependComment(ctx, testLocationID, gomock.Any()).Return(nil, store.ErrLocationNotFound)

	_, err := svc.AddComment(ctx, models.NewComment{LocationID: testLocationID, AuthorID: testAuthorID, Text: "hi"})
	assert.ErrorIs(t, err, store.ErrLocationNotFound)
}

// ── AddImages ────────────────────────────────────────────────────────────────

func TestLocationService_AddImages_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestLocationService(t, ctrl)
	ctx := context.Background()

	request := models.AddImagesRequest{
		LocationID: testLocationID,
		AuthorID:   testAuthorID,
		Images:     []models.ImageUpload{upload("a.PNG", "first"), upload("b.jpg", "second")},
	}

	gomock.InOrder(
		m.locations.EXPECT().LocationExists(ctx, testLocationID).Return(true, nil),
		m.fileNames.EXPECT().Generate(models.ImagesFieldName, "a.PNG").Return("images-1000.png"),
		m.images.EXPECT().Save(ctx, "images-1000.png", "image/png", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, r io.Reader) error {
				b, err := io.ReadAll(r)
				assert.NoError(t, err)
				assert.Equal(t, "first", string(b))
				return nil
			},
		),
		m.fileNames.EXPECT().Generate(models.ImagesFieldName, "b.jpg").Return("images-1001.jpg"),
		m.images.EXPECT().Save(ctx, "images-1001.jpg", "image/png", gomock.Any()).Return(nil),
		m.locations.EXPECT().AppendImageURLs(ctx, testLocationID, []string{"/uploads/images-1000.png", "/uploads/images-1001.jpg"}).
			Return(models.Location{
				LocationID: testLocationID,
				Owner:      models.UserRef{UserID: testUserID},
				ImageURLs:  models.ImageURLs{"/uploads/old.png", "/uploads/images-1000.png", "/uploads/images-1001.jpg"},
			}, nil),
		m.users.EXPECT().FindUsernames(ctx, []string{testUserID}).Return(map[string]string{testUserID: "alice"}, nil),
	)

	location, err := svc.AddImages(ctx, request)
	require.NoError(t, err)
	assert.Equal(t, "alice", location.Owner.Username)
	assert.Equal(t, models.ImageURLs{"/uploads/old.png", "/uploads/images-1000.png", "/uploads/images-1001.jpg"}, location.ImageURLs)
}

func TestLocationService_AddImages_LocationNotFoundStoresNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestLocationService(t, ctrl)
	ctx := context.Background()

	m.locations.EXPECT().LocationExists(ctx, testLocationID).Return(false, nil)

	_, err := svc.AddImages(ctx, models.AddImagesRequest{
		LocationID: testLocationID,
		AuthorID:   testAuthorID,
		Images:     []models.ImageUpload{upload("a.png", "x")},
	})
	assert.ErrorIs(t, err, store.ErrLocationNotFound)
}

func TestLocationService_AddImages_NoFilesReturnsLocationUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestLocationService(t, ctrl)
	ctx := context.Background()

	stored := models.Location{
		LocationID: testLocationID,
		Owner:      models.UserRef{UserID: testUserID},
		ImageURLs:  models.ImageURLs{"/uploads/old.png"},
	}

	m.locations.EXPECT().GetLocation(ctx, testLocationID).Return(stored, nil)
	m.users.EXPECT().FindUsernames(ctx, []string{testUserID}).Return(map[string]string{testUserID: "alice"}, nil)

	location, err := svc.AddImages(ctx, models.AddImagesRequest{LocationID: testLocationID, AuthorID: testAuthorID})
	require.NoError(t, err)
	assert.Equal(t, "alice", location.Owner.Username)
	assert.Equal(t, models.ImageURLs{"/uploads/old.png"}, location.ImageURLs)
}

func TestLocationService_AddImages_NoFilesLocationNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestLocationService(t, ctrl)
	ctx := context.Background()

	m.locations.EXPECT().GetLocation(ctx, testLocationID).Return(models.Location{}, store.ErrLocationNotFound)

	_, err := svc.AddImages(ctx, models.AddImagesRequest{LocationID: testLocationID, AuthorID: testAuthorID})
	assert.ErrorIs(t, err, store.ErrLocationNotFound)
}

func TestLocationService_AddImages_SaveErrorRemovesStoredFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestLocationService(t, ctrl)
	ctx := context.Background()

	saveErr := errors.New("disk full")

	m.locations.EXPECT().LocationExists(ctx, testLocationID).Return(true, nil)
	m.fileNames.EXPECT().Generate(models.ImagesFieldName, "a.png").Return("images-1.png")
	m.fileNames.EXPECT().Generate(models.ImagesFieldName, "b.png").Return("images-2.png")
	m.images.EXPECT().Save(ctx, "images-1.png", gomock.Any(), gomock.Any()).Return(nil)
	m.images.EXPECT().Save(ctx, "images-2.png", gomock.Any(), gomock.Any()).Return(saveErr)
	m.images.EXPECT().Delete(ctx, "images-1.png").Return(nil)

	_, err := svc.AddImages(ctx, models.AddImagesRequest{
		LocationID: testLocationID,
		AuthorID:   testAuthorID,
		Images:     []models.ImageUpload{upload("a.png", "x"), upload("b.png", "y")},
	})
	assert.ErrorIs(t, err, ErrStoringImages)
	assert.ErrorIs(t, err, saveErr)
}

func TestLocationService_AddImages_AppendErrorRemovesStoredFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestLocationService(t, ctrl)
	ctx := context.Background()

	m.locations.EXPECT().LocationExists(ctx, testLocationID).Return(true, nil)
	m.fileNames.EXPECT().Generate(models.ImagesFieldName, "a.png").Return("images-1.png")
	m.images.EXPECT().Save(ctx, "images-1.png", gomock.Any(), gomock.Any()).Return(nil)
	m.locations.EXPECT().AppendImageURLs(ctx, testLocationID, []string{"/uploads/images-1.png"}).
		Return(models.Location{}, store.ErrLocationNotFound)
	m.images.EXPECT().Delete(ctx, "images-1.png").Return(errors.New("already gone"))

	_, err := svc.AddImages(ctx, models.AddImagesRequest{
		LocationID: testLocationID,
		AuthorID:   testAuthorID,
		Images:     []models.ImageUpload{upload("a.png", "x")},
	})
	assert.ErrorIs(t, err, store.ErrLocationNotFound)
}

func TestLocationService_AddImages_OpenError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestLocationService(t, ctrl)
	ctx := context.Background()

	broken := upload("a.png", "x")
	broken.Open = func() (io.ReadCloser, error) { return nil, errors.New("temp file missing") }

	m.locations.EXPECT().LocationExists(ctx, testLocationID).Return(true, nil)
	m.fileNames.EXPECT().Generate(models.ImagesFieldName, "a.png").Return("images-1.png")

	_, err := svc.AddImages(ctx, models.AddImagesRequest{
		LocationID: testLocationID,
		AuthorID:   testAuthorID,
		Images:     []models.ImageUpload{broken},
	})
	assert.ErrorIs(t, err, ErrStoringImages)
}

func TestDistinct(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, distinct([]string{"a", "b", "a", "", "c", "b"}))
	assert.Equal(t, []string{}, distinct(nil))
}
