package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/geo-locations/internal/utils"
	"github.com/MKhiriev/geo-locations/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldUsername targets the username of a registration request.
	FieldUsername = "username"

	// FieldEmail targets the email of a registration or login request.
	FieldEmail = "email"

	// FieldPassword targets the plain-text password of a registration or login request.
	FieldPassword = "password"

	// FieldOwnerID targets the authenticated owner of a new location.
	FieldOwnerID = "owner_id"

	// FieldLatitude targets the latitude of a new location: required and within [-90, 90].
	FieldLatitude = "latitude"

	// FieldLongitude targets the longitude of a new location: required and within [-180, 180].
	FieldLongitude = "longitude"

	// FieldLocationID targets the id of the location a comment or image is attached to.
	FieldLocationID = "location_id"

	// FieldAuthorID targets the authenticated author of a comment or upload.
	FieldAuthorID = "author_id"

	// FieldText targets the comment text.
	FieldText = "text"

	// FieldImages targets the list of uploaded files: 1 to [models.MaxImagesPerUpload].
	FieldImages = "images"
)

// RequestValidator implements the Validator interface for the request models
// accepted by the service layer: RegisterRequest, LoginRequest,
// CreateLocationRequest, NewComment and AddImagesRequest.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type RequestValidator struct {
}

// NewRequestValidator constructs a new RequestValidator
// and returns it as the Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// every field of the model is validated.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)

	case models.CreateLocationRequest:
		return v.validateCreateLocationRequest(value, fields...)
	case *models.CreateLocationRequest:
		return v.validateCreateLocationRequest(*value, fields...)

	case models.NewComment:
		return v.validateNewComment(value, fields...)
	case *models.NewComment:
		return v.validateNewComment(*value, fields...)

	case models.AddImagesRequest:
		return v.validateAddImagesRequest(value, fields...)
	case *models.AddImagesRequest:
		return v.validateAddImagesRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRegisterRequest(request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(request.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldEmail:
			if strings.TrimSpace(request.Email) == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateLoginRequest(request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(request.Email) == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCreateLocationRequest(request models.CreateLocationRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldLatitude, FieldLongitude}
	}

	for _, f := range fields {
		switch f {
		case FieldOwnerID:
			if !utils.IsValidID(request.OwnerID) {
				return ErrInvalidUserID
			}
		case FieldLatitude:
			if request.Latitude == nil {
				return ErrMissingLatitude
			}
			if err := request.Latitude.Validate(); err != nil {
				return err
			}
		case FieldLongitude:
			if request.Longitude == nil {
				return ErrMissingLongitude
			}
			if err := request.Longitude.Validate(); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateNewComment(comment models.NewComment, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLocationID, FieldAuthorID, FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldLocationID:
			if !utils.IsValidID(comment.LocationID) {
				return ErrInvalidLocationID
			}
		case FieldAuthorID:
			if !utils.IsValidID(comment.AuthorID) {
				return ErrInvalidUserID
			}
		case FieldText:
			if strings.TrimSpace(comment.Text) == "" {
				return ErrEmptyCommentText
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateAddImagesRequest(request models.AddImagesRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLocationID, FieldAuthorID, FieldImages}
	}

	for _, f := range fields {
		switch f {
		case FieldLocationID:
			if !utils.IsValidID(request.LocationID) {
				return ErrInvalidLocationID
			}
		case FieldAuthorID:
			if !utils.IsValidID(request.AuthorID) {
				return ErrInvalidUserID
			}
		case FieldImages:
			if len(request.Images) > models.MaxImagesPerUpload {
				return ErrTooManyImages
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
