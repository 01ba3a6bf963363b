package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"getweather/internal/config"
	"getweather/internal/repository"
)

const testAPIKey = "test_api_key"

type GetWeatherE2ETestSuite struct {
	suite.Suite
	apiServer *httptest.Server
}

func (suite *GetWeatherE2ETestSuite) SetupSuite() {
	// Start a mock Weatherstack API server
	suite.apiServer = mockWeatherstackAPI()

	// Point the fetcher at the mock server's URL
	viper.Set("weatherstack.api_url", suite.apiServer.URL)
	config.ReloadConfigForTest()

	// In SetupSuite, set the environment variable for the API key
	os.Setenv("WEATHER_API", testAPIKey)
}

func (suite *GetWeatherE2ETestSuite) TearDownSuite() {
	if suite.apiServer != nil {
		suite.apiServer.Close()
	}
	os.Unsetenv("WEATHER_API")
}

func TestGetWeatherE2ETestSuite(t *testing.T) {
	suite.Run(t, new(GetWeatherE2ETestSuite))
}

func (suite *GetWeatherE2ETestSuite) TestRun() {
	tests := []struct {
		name     string
		setupEnv func()
		location string
		validate func(t *testing.T, out string, err error)
	}{
		{
			name:     "Success - Document then sentence",
			setupEnv: func() {},
			location: "Athens",
			validate: func(t *testing.T, out string, err error) {
				assert.NoError(t, err)

				lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
				assert.GreaterOrEqual(t, len(lines), 2)

				// Last line is the sentence; everything before it is the document.
				assert.Equal(t, "The temperature in Athens is 20 degrees Celcius and feels like 19 degrees.", lines[len(lines)-1])

				document := strings.Join(lines[:len(lines)-1], "\n")
				assert.True(t, strings.HasPrefix(document, "{"))
				assert.Contains(t, document, `"name": "Athens"`)
				assert.Contains(t, document, `"temperature": 20`)
				assert.Contains(t, document, `"feelslike": 19`)
			},
		},
		{
			name: "Failed - Missing credential",
			setupEnv: func() {
				os.Unsetenv("WEATHER_API")
			},
			location: "Athens",
			validate: func(t *testing.T, out string, err error) {
				// Restore the valid credential after the test
				os.Setenv("WEATHER_API", testAPIKey)

				assert.ErrorIs(t, err, repository.ErrAPIKeyMissing)
				assert.Empty(t, out)
			},
		},
		{
			name: "Failed - Rejected credential",
			setupEnv: func() {
				os.Setenv("WEATHER_API", "invalid_key")
			},
			location: "Athens",
			validate: func(t *testing.T, out string, err error) {
				// Restore the valid credential after the test
				os.Setenv("WEATHER_API", testAPIKey)

				assert.ErrorIs(t, err, repository.ErrExternalAPI)
				assert.Empty(t, out)
			},
		},
		{
			name:     "Failed - Unknown location",
			setupEnv: func() {},
			location: "Atlantis",
			validate: func(t *testing.T, out string, err error) {
				assert.ErrorIs(t, err, repository.ErrLocationNotFound)
				assert.Empty(t, out)
			},
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			tt.setupEnv()

			var out bytes.Buffer
			err := run(context.Background(), &out, tt.location)

			tt.validate(suite.T(), out.String(), err)
		})
	}
}

func mockWeatherstackAPI() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// Weatherstack reports failures with HTTP 200 and an error envelope.
		if r.URL.Query().Get("access_key") != testAPIKey {
			_, _ = w.Write([]byte(`{"success": false, "error": {"code": 101, "type": "invalid_access_key", "info": "You have not supplied a valid API Access Key."}}`))
			return
		}
		if r.URL.Query().Get("query") != "Athens" {
			_, _ = w.Write([]byte(`{"success": false, "error": {"code": 615, "type": "request_failed", "info": "Your API request failed. Please try again or contact support."}}`))
			return
		}
		_, _ = w.Write([]byte(`{"location": {"name": "Athens", "region": "Attica", "localtime": "2024-01-01 10:00"}, "current": {"temperature": 20, "feelslike": 19}}`))
	}))
}
