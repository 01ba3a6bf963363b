package service

import (
	"context"

	"getweather/internal/config"
	"getweather/internal/model"
	"getweather/internal/repository"
)

// WeatherServiceInterface defines the service-level weather operations
type WeatherServiceInterface interface {
	GetWeather(ctx context.Context, location string) (model.RawResponse, error)
}

// WeatherService fetches raw weather data through a WeatherRepository
type WeatherService struct {
	WeatherRepo repository.WeatherRepository
}

// NewWeatherService creates a weather service. An optional repository may be
// injected; one built from the process configuration is used otherwise.
func NewWeatherService(repo ...repository.WeatherRepository) *WeatherService {
	var weatherRepo repository.WeatherRepository
	if len(repo) > 0 && repo[0] != nil {
		weatherRepo = repo[0]
	} else {
		weatherRepo = repository.NewWeatherRepository(repository.Config{
			APIURL: config.GetWeatherstackAPIURL(),
			APIKey: config.GetWeatherAPIKey(),
		})
	}
	return &WeatherService{WeatherRepo: weatherRepo}
}

// GetWeather retrieves the raw current-conditions document for location.
func (s *WeatherService) GetWeather(ctx context.Context, location string) (model.RawResponse, error) {
	return s.WeatherRepo.GetWeather(ctx, location)
}
