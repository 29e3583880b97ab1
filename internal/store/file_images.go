package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/geo-locations/internal/logger"
)

// diskImageStorage is the [ImageStorage] implementation that keeps images as
// plain files in a single directory.
type diskImageStorage struct {
	dir    string
	logger *logger.Logger
}

// NewDiskImageStorage constructs an [ImageStorage] writing to dir.
// The directory is created if it does not exist.
func NewDiskImageStorage(dir string, logger *logger.Logger) (ImageStorage, error) {
	logger.Debug().Str("dir", dir).Msg("creating disk image storage")

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating uploads directory: %w", err)
	}

	return &diskImageStorage{
		dir:    dir,
		logger: logger,
	}, nil
}

// Save writes content to a new file. An existing file with the same name is
// never overwritten.
func (d *diskImageStorage) Save(ctx context.Context, name string, contentType string, content io.Reader) error {
	log := logger.FromContext(ctx)

	path, err := d.path(name)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		log.Err(err).Str("func", "diskImageStorage.Save").Str("name", name).Msg("failed to create image file")
		return fmt.Errorf("%w: %w", ErrSavingImage, err)
	}

	if _, err = io.Copy(file, content); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		log.Err(err).Str("func", "diskImageStorage.Save").Str("name", name).Msg("failed to write image file")
		return fmt.Errorf("%w: %w", ErrSavingImage, err)
	}

	if err = file.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("%w: %w", ErrSavingImage, err)
	}

	log.Debug().Str("name", name).Str("content_type", contentType).Msg("image saved to disk")
	return nil
}

func (d *diskImageStorage) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	path, err := d.path(name)
	if err != nil {
		return nil, ErrImageNotFound
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && info.IsDir()) {
		return nil, ErrImageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error reading image: %w", err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening image: %w", err)
	}

	return file, nil
}

func (d *diskImageStorage) Delete(ctx context.Context, name string) error {
	path, err := d.path(name)
	if err != nil {
		return err
	}

	if err = os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error deleting image: %w", err)
	}

	return nil
}

// path resolves name inside the storage directory, rejecting anything that
// is not a plain file name.
func (d *diskImageStorage) path(name string) (string, error) {
	if !validImageName(name) {
		return "", ErrInvalidImageName
	}
	return filepath.Join(d.dir, name), nil
}

func validImageName(name string) bool {
	return name != "" && name != "." && name != ".." && filepath.Base(name) == name && filepath.IsLocal(name)
}
