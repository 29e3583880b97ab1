package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername     = errors.New("username is required")
	ErrEmptyEmail        = errors.New("email is required")
	ErrEmptyPassword     = errors.New("password is required")
	ErrInvalidUserID     = errors.New("invalid user ID")
	ErrInvalidLocationID = errors.New("invalid location ID")
	ErrMissingLatitude   = errors.New("latitude is required")
	ErrMissingLongitude  = errors.New("longitude is required")
	ErrEmptyCommentText  = errors.New("comment text is required")
	ErrTooManyImages     = errors.New("too many images in one upload")
)
