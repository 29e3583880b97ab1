package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/geo-locations/internal/config"
	"github.com/MKhiriev/geo-locations/internal/logger"
)

// Storages bundles every persistence component used by the service layer.
type Storages struct {
	UserRepository     UserRepository
	LocationRepository LocationRepository
	ImageStorage       ImageStorage

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and selects the image
// backend: S3 when a bucket is configured, the uploads directory otherwise.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	var images ImageStorage
	if cfg.S3.Enabled() {
		images, err = NewS3ImageStorage(ctx, cfg.S3, log)
	} else {
		images, err = NewDiskImageStorage(cfg.Files.UploadsDir, log)
	}
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error creating image storage: %w", err)
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		LocationRepository: NewLocationRepository(db, log),
		ImageStorage:       images,
		db:                 db,
	}, nil
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
