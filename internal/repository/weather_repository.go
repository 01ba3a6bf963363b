package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"getweather/internal/config"
	"getweather/internal/model"
)

// Custom error types
var (
	ErrLocationNotFound = errors.New("location not found")
	ErrAPIKeyMissing    = errors.New("API key missing")
	ErrExternalAPI      = errors.New("external API error")
)

// apiCodeRequestFailed is the Weatherstack error code reported when a query
// cannot be resolved to a location.
const apiCodeRequestFailed = 615

// WeatherRepository defines the interface for weather data access
type WeatherRepository interface {
	GetWeather(ctx context.Context, location string) (model.RawResponse, error)
}

// Config carries the Weatherstack endpoint and credential. Both are explicit
// constructor inputs; the fetch path never reads process-wide state.
type Config struct {
	APIURL string
	APIKey string
}

// weatherRepository implements WeatherRepository
type weatherRepository struct {
	cfg        Config
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

// NewWeatherRepository creates a new weather repository instance. An optional
// *http.Client may be injected; http.DefaultClient is used otherwise, so
// requests carry no timeout.
func NewWeatherRepository(cfg Config, httpClient ...*http.Client) WeatherRepository {
	client := http.DefaultClient
	if len(httpClient) > 0 && httpClient[0] != nil {
		client = httpClient[0]
	}
	return &weatherRepository{
		cfg:        cfg,
		httpClient: client,
		logger:     config.GetLogger(),
	}
}

// GetWeather performs a single GET against the Weatherstack current-conditions
// endpoint and returns the decoded body. There is no cache, no retry and no
// backoff; every call re-fetches. Failures are logged as diagnostics and
// returned as errors the caller can distinguish: a missing credential, a
// transport failure, an HTTP error status, an in-body API error (a location
// that cannot be resolved wraps ErrLocationNotFound) or a malformed body.
func (r *weatherRepository) GetWeather(ctx context.Context, location string) (model.RawResponse, error) {
	if r.cfg.APIKey == "" {
		return nil, ErrAPIKeyMissing
	}

	// The location and key are embedded as-is, without URL encoding.
	url := fmt.Sprintf("%s?query=%s&access_key=%s", r.cfg.APIURL, location, r.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build weatherstack request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.logger.Warnw("weatherstack request failed", "location", location, "error", err)
		return nil, fmt.Errorf("weatherstack request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		r.logger.Warnw("weatherstack returned an error status", "location", location, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: unexpected status %d", ErrExternalAPI, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		r.logger.Warnw("reading weatherstack response failed", "location", location, "error", err)
		return nil, fmt.Errorf("read weatherstack response: %w", err)
	}

	if apiErr := decodeAPIError(body); apiErr != nil {
		r.logger.Warnw("weatherstack rejected the request",
			"location", location, "code", apiErr.Code, "type", apiErr.Type)
		if apiErr.Code == apiCodeRequestFailed {
			return nil, fmt.Errorf("%w: %w", ErrLocationNotFound, apiErr)
		}
		return nil, fmt.Errorf("%w: %w", ErrExternalAPI, apiErr)
	}

	var raw model.RawResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		r.logger.Warnw("decoding weatherstack response failed", "location", location, "error", err)
		return nil, fmt.Errorf("decode weatherstack response: %w", err)
	}

	return raw, nil
}

// decodeAPIError returns the error envelope carried by body, or nil when body
// is not an envelope. Weatherstack reports failures with HTTP 200, so the body
// has to be inspected before it can be treated as weather data.
func decodeAPIError(body []byte) *model.APIError {
	var envelope struct {
		Success *bool          `json:"success"`
		Error   model.APIError `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil
	}
	if envelope.Success == nil || *envelope.Success {
		return nil
	}
	return &envelope.Error
}
