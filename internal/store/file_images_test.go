package store

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/geo-locations/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDiskStorage(t *testing.T) (ImageStorage, string) {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "uploads")
	storage, err := NewDiskImageStorage(dir, logger.Nop())
	require.NoError(t, err)

	return storage, dir
}

func TestNewDiskImageStorage_CreatesDirectory(t *testing.T) {
	_, dir := newTestDiskStorage(t)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestDiskImageStorage_SaveAndOpen(t *testing.T) {
	storage, dir := newTestDiskStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Save(ctx, "images-1.png", "image/png", strings.NewReader("png-bytes")))

	onDisk, err := os.ReadFile(filepath.Join(dir, "images-1.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(onDisk))

	rc, err := storage.Open(ctx, "images-1.png")
	require.NoError(t, err)
	defer rc.Close()

	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))
}

func TestDiskImageStorage_SaveDoesNotOverwrite(t *testing.T) {
	storage, _ := newTestDiskStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Save(ctx, "images-1.png", "", strings.NewReader("first")))

	err := storage.Save(ctx, "images-1.png", "", strings.NewReader("second"))
	require.ErrorIs(t, err, ErrSavingImage)
}

func TestDiskImageStorage_RejectsPathNames(t *testing.T) {
	storage, _ := newTestDiskStorage(t)
	ctx := context.Background()

	for _, name := range []string{"", ".", "..", "../escape.png", "nested/file.png", "/etc/passwd"} {
		err := storage.Save(ctx, name, "", strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrInvalidImageName, "name %q", name)

		_, err = storage.Open(ctx, name)
		assert.ErrorIs(t, err, ErrImageNotFound, "name %q", name)
	}
}

func TestDiskImageStorage_OpenMissing(t *testing.T) {
	storage, _ := newTestDiskStorage(t)

	_, err := storage.Open(context.Background(), "missing.png")
	require.ErrorIs(t, err, ErrImageNotFound)
}

func TestDiskImageStorage_Delete(t *testing.T) {
	storage, dir := newTestDiskStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Save(ctx, "images-1.png", "", strings.NewReader("x")))
	require.NoError(t, storage.Delete(ctx, "images-1.png"))

	_, err := os.Stat(filepath.Join(dir, "images-1.png"))
	assert.True(t, os.IsNotExist(err))

	// deleting twice is fine
	require.NoError(t, storage.Delete(ctx, "images-1.png"))
}
