// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself, before a request
// reaches the service layer. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidMultipartForm is returned when an upload request is not a
	// readable multipart/form-data body.
	ErrInvalidMultipartForm = errors.New("invalid multipart form")

	// ErrRequestTooLarge is returned when a request body exceeds the
	// configured upload limit.
	ErrRequestTooLarge = errors.New("request body too large")
)

// Messages written in the "message" field of error responses.
const (
	noTokenMessage          = "No token, authorization denied"
	tokenNotValidMessage    = "Token is not valid"
	invalidCredentials      = "Invalid credentials"
	locationNotFoundMessage = "Location not found"
	imageNotFoundMessage    = "Image not found"
	routeNotFoundMessage    = "Not found"
	internalErrorMessage    = "Something went wrong!"
	connectionOKMessage     = "Backend connection successful!"
)
