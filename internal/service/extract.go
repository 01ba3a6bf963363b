package service

import (
	"fmt"

	"getweather/internal/model"
)

// MissingFieldError reports a field the raw response was expected to carry but
// does not, either because it is absent or because its value has an unusable
// type. Field is the dotted path into the response.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("weather response missing field %q", e.Field)
}

// ExtractSummary projects the five summary fields out of a raw Weatherstack
// response. Values are copied through without transformation or unit
// conversion; any field that cannot be read yields a MissingFieldError naming
// its path. The projection is deterministic and has no side effects.
func ExtractSummary(raw model.RawResponse) (*model.WeatherSummary, error) {
	location, err := sectionField(raw, "location")
	if err != nil {
		return nil, err
	}
	current, err := sectionField(raw, "current")
	if err != nil {
		return nil, err
	}

	summary := &model.WeatherSummary{}
	if summary.Name, err = stringField(location, "location", "name"); err != nil {
		return nil, err
	}
	if summary.Region, err = stringField(location, "location", "region"); err != nil {
		return nil, err
	}
	if summary.LocalTime, err = stringField(location, "location", "localtime"); err != nil {
		return nil, err
	}
	if summary.Temperature, err = numberField(current, "current", "temperature"); err != nil {
		return nil, err
	}
	if summary.FeelsLike, err = numberField(current, "current", "feelslike"); err != nil {
		return nil, err
	}

	return summary, nil
}

func sectionField(raw model.RawResponse, key string) (map[string]any, error) {
	section, ok := raw[key].(map[string]any)
	if !ok {
		return nil, &MissingFieldError{Field: key}
	}
	return section, nil
}

func stringField(section map[string]any, sectionName, key string) (string, error) {
	value, ok := section[key].(string)
	if !ok {
		return "", &MissingFieldError{Field: sectionName + "." + key}
	}
	return value, nil
}

// numberField reads a JSON number; encoding/json decodes every number in a
// generic document as float64.
func numberField(section map[string]any, sectionName, key string) (float64, error) {
	value, ok := section[key].(float64)
	if !ok {
		return 0, &MissingFieldError{Field: sectionName + "." + key}
	}
	return value, nil
}
