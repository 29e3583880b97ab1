package models

// MessageResponse is the JSON body used for liveness answers and for every
// error returned by the API.
type MessageResponse struct {
	Message string `json:"message"`
}
