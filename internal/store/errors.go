package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same username or email already exists.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when a lookup by email produces an empty
	// result set.
	ErrUserNotFound = errors.New("user was not found")

	// ErrLocationNotFound is returned when a query or update targets a
	// location that does not exist.
	ErrLocationNotFound = errors.New("location was not found")

	// ErrImageNotFound is returned when a stored image with the requested
	// name does not exist.
	ErrImageNotFound = errors.New("image was not found")

	// ErrInvalidImageName is returned when an image name contains path
	// elements or is otherwise unusable as a storage key.
	ErrInvalidImageName = errors.New("invalid image name")
)

// Low-level operation errors. These are returned (or wrapped) by repository
// methods when an SQL or file-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrSavingImage is returned when an image cannot be written to the
	// image storage backend.
	ErrSavingImage = errors.New("failed to save image")
)
