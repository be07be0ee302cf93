package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"weather-advisor/internal/models"
	"weather-advisor/pkg/logger"
)

const (
	OpenWeatherMapBaseURL = "https://api.openweathermap.org/data/2.5/forecast"
)

// OpenWeatherMapRepository reads the 5 day / 3 hour forecast feed.
type OpenWeatherMapRepository struct {
	APIKey     string
	BaseURL    string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewOpenWeatherMapRepository(apiKey string, l *logger.Logger, httpClient HTTPClient) (*OpenWeatherMapRepository, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("API key cannot be empty")
	}

	return &OpenWeatherMapRepository{
		APIKey:     apiKey,
		BaseURL:    OpenWeatherMapBaseURL,
		httpClient: httpClient,
		l:          l,
	}, nil
}

func (w *OpenWeatherMapRepository) Name() string {
	return "openweathermap"
}

type OpenWeatherMapResponse struct {
	City struct {
		Name     string `json:"name"`
		Country  string `json:"country"`
		Timezone int    `json:"timezone"`
	} `json:"city"`
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp      float64  `json:"temp"`
			FeelsLike *float64 `json:"feels_like"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Pop  *float64 `json:"pop"`
		Wind *struct {
			Speed *float64 `json:"speed"`
		} `json:"wind"`
	} `json:"list"`
}

func (w *OpenWeatherMapRepository) FetchObservations(ctx context.Context, city string) (models.Feed, error) {
	feed := models.Feed{
		Provider: w.Name(),
		City:     city,
	}

	params := url.Values{}
	params.Add("q", city)
	params.Add("units", "metric")
	params.Add("appid", w.APIKey)

	w.l.Info("making openweathermap API request", map[string]any{
		"city": city,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return feed, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return feed, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	w.l.Info("received openweathermap API response", map[string]any{
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return feed, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return feed, errors.Wrapf(ErrLocationNotFound, "openweathermap: %s", city)
	}
	if resp.StatusCode != http.StatusOK {
		return feed, fmt.Errorf("HTTP error (status %d): %s", resp.StatusCode, resp.Status)
	}

	var response OpenWeatherMapResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return feed, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	w.l.Info("parsed API response", map[string]any{
		"items": len(response.List),
	})

	// Check if we have any data
	if len(response.List) == 0 {
		return feed, fmt.Errorf("no forecast data available")
	}

	feed.Offset = models.UTCOffset(response.City.Timezone)
	if response.City.Name != "" {
		feed.City = response.City.Name
	}
	feed.Observations = observationsOpenWeatherMap(response)

	w.l.Debug("built feed", map[string]any{"params": feed.RequestParams()})

	return feed, nil
}

// observationsOpenWeatherMap keeps the feed order; optional metrics stay nil when absent.
func observationsOpenWeatherMap(response OpenWeatherMapResponse) []models.Observation {
	observations := make([]models.Observation, 0, len(response.List))

	for _, item := range response.List {
		o := models.Observation{
			Timestamp:         item.Dt,
			Temperature:       item.Main.Temp,
			FeelsLike:         item.Main.FeelsLike,
			PrecipProbability: item.Pop,
		}
		if len(item.Weather) > 0 {
			o.Description = item.Weather[0].Description
			o.IconCode = item.Weather[0].Icon
		}
		if item.Wind != nil {
			o.WindSpeed = item.Wind.Speed
		}
		observations = append(observations, o)
	}

	return observations
}
