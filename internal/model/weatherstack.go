package model

import "fmt"

// RawResponse is a Weatherstack response body exactly as decoded, with no
// validation applied. The shape is owned by the external API; a successful
// current-conditions body carries a "location" and a "current" object.
type RawResponse map[string]any

// APIError is the error envelope Weatherstack returns in place of weather
// data. The API reports most failures with HTTP 200 and a body of the form
// {"success": false, "error": {...}}.
type APIError struct {
	Code int    `json:"code"`
	Type string `json:"type"`
	Info string `json:"info"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("weatherstack error %d (%s): %s", e.Code, e.Type, e.Info)
}
