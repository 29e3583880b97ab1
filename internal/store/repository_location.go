package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/geo-locations/internal/logger"
	"github.com/MKhiriev/geo-locations/models"
	"github.com/jackc/pgerrcode"
)

// locationRepository is the PostgreSQL-backed implementation of
// [LocationRepository]. Comments and image urls live in JSONB columns of the
// "locations" row, so every mutation is a single-row statement.
type locationRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocationRepository constructs a [LocationRepository] backed by the
// provided database connection and logger.
func NewLocationRepository(db *DB, logger *logger.Logger) LocationRepository {
	logger.Debug().Msg("creating location repository")
	return &locationRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanLocation(row rowScanner) (models.Location, error) {
	var location models.Location
	err := row.Scan(
		&location.LocationID,
		&location.Owner.UserID,
		&location.Latitude,
		&location.Longitude,
		&location.Description,
		&location.ImageURLs,
		&location.Comments,
		&location.CreatedAt,
	)
	return location, err
}

func (l *locationRepository) CreateLocation(ctx context.Context, location models.Location) (models.Location, error) {
	log := logger.FromContext(ctx)

	if location.ImageURLs == nil {
		location.ImageURLs = models.ImageURLs{}
	}
	if location.Comments == nil {
		location.Comments = models.Comments{}
	}

	query, args, err := buildCreateLocationQuery(location)
	if err != nil {
		log.Err(err).Str("func", "locationRepository.CreateLocation").Msg("failed to build query")
		return models.Location{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanLocation(l.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "locationRepository.CreateLocation").
			Str("user_id", location.Owner.UserID).
			Msg("failed to insert location")
		return models.Location{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (l *locationRepository) GetLocations(ctx context.Context) ([]models.Location, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectLocationsQuery()
	if err != nil {
		log.Err(err).Str("func", "locationRepository.GetLocations").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "locationRepository.GetLocations").Msg("failed to execute query for getting locations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	locations := make([]models.Location, 0, 50)
	for rows.Next() {
		location, scanErr := scanLocation(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "locationRepository.GetLocations").Msg("failed to scan location row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		locations = append(locations, location)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "locationRepository.GetLocations").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return locations, nil
}

func (l *locationRepository) GetLocation(ctx context.Context, locationID string) (models.Location, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectLocationQuery(locationID)
	if err != nil {
		log.Err(err).Str("func", "locationRepository.GetLocation").Msg("failed to build query")
		return models.Location{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	location, err := scanLocation(l.DB.QueryRowContext(ctx, query, args...))
	if isLocationMissing(err) {
		return models.Location{}, ErrLocationNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "locationRepository.GetLocation").
			Str("location_id", locationID).
			Msg("failed to get location")
		return models.Location{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return location, nil
}

func (l *locationRepository) LocationExists(ctx context.Context, locationID string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLocationExistsQuery(locationID)
	if err != nil {
		log.Err(err).Str("func", "locationRepository.LocationExists").Msg("failed to build query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var exists bool
	err = l.DB.QueryRowContext(ctx, query, args...).Scan(&exists)
	if postgresError(err) == pgerrcode.InvalidTextRepresentation {
		return false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "locationRepository.LocationExists").
			Str("location_id", locationID).
			Msg("failed to check location existence")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

func (l *locationRepository) PrependComment(ctx context.Context, locationID string, comment models.Comment) (models.Comments, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPrependCommentQuery(locationID, comment)
	if err != nil {
		log.Err(err).Str("func", "locationRepository.PrependComment").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var comments models.Comments
	err = l.DB.QueryRowContext(ctx, query, args...).Scan(&comments)
	if isLocationMissing(err) {
		return nil, ErrLocationNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "locationRepository.PrependComment").
			Str("location_id", locationID).
			Msg("failed to add comment")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return comments, nil
}

func (l *locationRepository) AppendImageURLs(ctx context.Context, locationID string, urls []string) (models.Location, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildAppendImageURLsQuery(locationID, urls)
	if err != nil {
		log.Err(err).Str("func", "locationRepository.AppendImageURLs").Msg("failed to build query")
		return models.Location{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	location, err := scanLocation(l.DB.QueryRowContext(ctx, query, args...))
	if isLocationMissing(err) {
		return models.Location{}, ErrLocationNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "locationRepository.AppendImageURLs").
			Str("location_id", locationID).
			Int("images", len(urls)).
			Msg("failed to append image urls")
		return models.Location{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return location, nil
}

// isLocationMissing reports whether err means no row matched locationID.
// Postgres rejects ids that are not valid uuid text with 22P02.
func isLocationMissing(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || postgresError(err) == pgerrcode.InvalidTextRepresentation
}
