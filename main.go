package main

import (
	"context"
	"io"
	"os"

	"getweather/internal/config"
	"getweather/internal/report"
	"getweather/internal/repository"
	"getweather/internal/service"
)

// defaultLocation is the single place this tool reports on. No flag or
// argument varies it; every run queries the same location.
const defaultLocation = "Athens"

func run(ctx context.Context, out io.Writer, location string) error {
	repo := repository.NewWeatherRepository(repository.Config{
		APIURL: config.GetWeatherstackAPIURL(),
		APIKey: config.GetWeatherAPIKey(),
	})
	svc := service.NewWeatherService(repo)
	reporter := report.NewWeatherReporter(out, svc)
	return reporter.Report(ctx, location)
}

func main() {
	if err := run(context.Background(), os.Stdout, defaultLocation); err != nil {
		config.GetLogger().Fatalw("weather report failed", "location", defaultLocation, "error", err)
	}
}
