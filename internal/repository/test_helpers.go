package repository

import "net/http"

// RoundTripperFunc allows us to easily mock http.Client transports in tests.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
