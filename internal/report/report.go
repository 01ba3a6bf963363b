package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"getweather/internal/model"
	"getweather/internal/service"
)

// WeatherReporter writes the two-part weather report for a location: the raw
// API response as indented JSON, then a one-line summary sentence.
type WeatherReporter struct {
	WeatherService service.WeatherServiceInterface
	Out            io.Writer
}

// NewWeatherReporter creates a reporter writing to out. An optional service
// may be injected; the default config-backed service is used otherwise.
func NewWeatherReporter(out io.Writer, svc ...service.WeatherServiceInterface) *WeatherReporter {
	var weatherService service.WeatherServiceInterface
	if len(svc) > 0 && svc[0] != nil {
		weatherService = svc[0]
	} else {
		weatherService = service.NewWeatherService()
	}
	return &WeatherReporter{
		WeatherService: weatherService,
		Out:            out,
	}
}

// Report fetches current weather for location and writes the report to Out.
// The raw response is printed before extraction, so a body the summary cannot
// be built from is still visible in full. Any error aborts the sequence.
func (r *WeatherReporter) Report(ctx context.Context, location string) error {
	raw, err := r.WeatherService.GetWeather(ctx, location)
	if err != nil {
		return err
	}

	text, err := Indent(raw)
	if err != nil {
		return fmt.Errorf("format raw response: %w", err)
	}
	fmt.Fprintln(r.Out, text)

	summary, err := service.ExtractSummary(raw)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.Out, Sentence(summary))

	return nil
}

// Indent renders v as human-readable JSON indented with four spaces. It is a
// pure function of its input; object keys are emitted in sorted order, so the
// output is deterministic.
func Indent(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Sentence renders the fixed one-line summary for s. Integral temperatures
// print without a decimal point.
func Sentence(s *model.WeatherSummary) string {
	return fmt.Sprintf("The temperature in %s is %v degrees Celcius and feels like %v degrees.",
		s.Name, s.Temperature, s.FeelsLike)
}
