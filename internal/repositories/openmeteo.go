package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	"weather-advisor/internal/models"
	"weather-advisor/pkg/logger"
)

const (
	OpenMeteoBaseURL      = "https://api.open-meteo.com/v1/forecast"
	OpenMeteoGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"

	openMeteoHourly = "temperature_2m,apparent_temperature,precipitation_probability,weather_code,wind_speed_10m,is_day"
)

// OpenMeteoRepository geocodes the city and reads the 3-hourly forecast for it.
type OpenMeteoRepository struct {
	BaseURL      string
	GeocodingURL string
	httpClient   HTTPClient
	l            *logger.Logger
}

func NewOpenMeteoRepository(l *logger.Logger, httpClient HTTPClient) *OpenMeteoRepository {
	return &OpenMeteoRepository{
		BaseURL:      OpenMeteoBaseURL,
		GeocodingURL: OpenMeteoGeocodingURL,
		httpClient:   httpClient,
		l:            l,
	}
}

func (o *OpenMeteoRepository) Name() string {
	return "open-meteo"
}

type OpenMeteoGeocodingResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Country   string  `json:"country"`
	} `json:"results"`
}

type OpenMeteoHourly struct {
	Time                     []int64    `json:"time"`
	Temperature2m            []*float64 `json:"temperature_2m"`
	ApparentTemperature      []*float64 `json:"apparent_temperature"`
	PrecipitationProbability []*float64 `json:"precipitation_probability"`
	WeatherCode              []*int     `json:"weather_code"`
	WindSpeed10m             []*float64 `json:"wind_speed_10m"`
	IsDay                    []*int     `json:"is_day"`
}

type OpenMeteoResponse struct {
	UTCOffsetSeconds int             `json:"utc_offset_seconds"`
	Hourly           OpenMeteoHourly `json:"hourly"`
}

func (o *OpenMeteoRepository) FetchObservations(ctx context.Context, city string) (models.Feed, error) {
	feed := models.Feed{
		Provider: o.Name(),
		City:     city,
	}

	var geo OpenMeteoGeocodingResponse
	if err := o.getJSON(ctx, o.GeocodingURL, url.Values{
		"name":     {city},
		"count":    {"1"},
		"language": {"en"},
		"format":   {"json"},
	}, &geo); err != nil {
		return feed, errors.Wrap(err, "geocoding")
	}
	if len(geo.Results) == 0 {
		return feed, errors.Wrapf(ErrLocationNotFound, "open-meteo: %s", city)
	}
	place := geo.Results[0]
	feed.City = place.Name

	o.l.Info("making openmeteo API request", map[string]any{
		"city": city,
		"lat":  place.Latitude,
		"lon":  place.Longitude,
	})

	var response OpenMeteoResponse
	if err := o.getJSON(ctx, o.BaseURL, url.Values{
		"latitude":            {strconv.FormatFloat(place.Latitude, 'f', 4, 64)},
		"longitude":           {strconv.FormatFloat(place.Longitude, 'f', 4, 64)},
		"hourly":              {openMeteoHourly},
		"temporal_resolution": {"hourly_3"},
		"timeformat":          {"unixtime"},
		"wind_speed_unit":     {"ms"},
		"timezone":            {"auto"},
		"forecast_days":       {"2"},
	}, &response); err != nil {
		return feed, errors.Wrap(err, "forecast")
	}

	o.l.Info("parsed API response", map[string]any{
		"entries": len(response.Hourly.Time),
	})

	// Validate that we have forecast data
	if len(response.Hourly.Time) == 0 {
		return feed, fmt.Errorf("no forecast data available")
	}

	feed.Offset = models.UTCOffset(response.UTCOffsetSeconds)
	feed.Observations = observationsOpenMeteo(response.Hourly)

	return feed, nil
}

func (o *OpenMeteoRepository) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := o.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	o.l.Debug("received openmeteo API response", map[string]any{
		"endpoint":   endpoint,
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Check for HTTP error status codes
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP error (status %d): %s", resp.StatusCode, resp.Status)
	}

	if err = json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse JSON response: %w", err)
	}
	return nil
}

// observationsOpenMeteo converts the column arrays into observations, skipping
// entries without a temperature.
func observationsOpenMeteo(hourly OpenMeteoHourly) []models.Observation {
	observations := make([]models.Observation, 0, len(hourly.Time))

	for i := range hourly.Time {
		if o, ok := createObservation(hourly, i); ok {
			observations = append(observations, o)
		}
	}

	return observations
}

func createObservation(hourly OpenMeteoHourly, index int) (models.Observation, bool) {
	temp := at(hourly.Temperature2m, index)
	if temp == nil {
		return models.Observation{}, false
	}

	o := models.Observation{
		Timestamp:   hourly.Time[index],
		Temperature: *temp,
		FeelsLike:   at(hourly.ApparentTemperature, index),
		WindSpeed:   at(hourly.WindSpeed10m, index),
	}
	if pop := at(hourly.PrecipitationProbability, index); pop != nil {
		o.PrecipProbability = models.Float(*pop / 100)
	}

	day := true
	if isDay := at(hourly.IsDay, index); isDay != nil {
		day = *isDay == 1
	}
	if code := at(hourly.WeatherCode, index); code != nil {
		o.Description, o.IconCode = describeWMO(*code, day)
	}

	return o, true
}

func at[T any](values []*T, index int) *T {
	if index >= len(values) {
		return nil
	}
	return values[index]
}

type wmoCondition struct {
	description string
	icon        string
}

// wmoConditions maps WMO weather interpretation codes to OpenWeatherMap-style texts and icons.
var wmoConditions = map[int]wmoCondition{
	0:  {"clear sky", "01"},
	1:  {"mainly clear", "02"},
	2:  {"partly cloudy", "03"},
	3:  {"overcast clouds", "04"},
	45: {"fog", "50"},
	48: {"depositing rime fog", "50"},
	51: {"light drizzle", "09"},
	53: {"moderate drizzle", "09"},
	55: {"dense drizzle", "09"},
	56: {"light freezing drizzle", "09"},
	57: {"dense freezing drizzle", "09"},
	61: {"slight rain", "10"},
	63: {"moderate rain", "10"},
	65: {"heavy rain", "10"},
	66: {"light freezing rain", "13"},
	67: {"heavy freezing rain", "13"},
	71: {"slight snow fall", "13"},
	73: {"moderate snow fall", "13"},
	75: {"heavy snow fall", "13"},
	77: {"snow grains", "13"},
	80: {"slight rain showers", "09"},
	81: {"moderate rain showers", "09"},
	82: {"violent rain showers", "09"},
	85: {"slight snow showers", "13"},
	86: {"heavy snow showers", "13"},
	95: {"thunderstorm", "11"},
	96: {"thunderstorm with slight hail", "11"},
	99: {"thunderstorm with heavy hail", "11"},
}

func describeWMO(code int, day bool) (description, icon string) {
	c, ok := wmoConditions[code]
	if !ok {
		return fmt.Sprintf("weather code %d", code), ""
	}
	suffix := "d"
	if !day {
		suffix = "n"
	}
	return c.description, c.icon + suffix
}
