package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrTooLarge            = errors.New("request too large")
	ErrInternalServerError = errors.New("internal server error")

	ErrNoTokenInResponse = errors.New("no token in response")
)
