package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"weather-advisor/pkg/logger"
)

const IPLocationURL = "http://ip-api.com/json"

// IPLocationRepository resolves the city of the server's public IP address.
type IPLocationRepository struct {
	URL        string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewIPLocationRepository(url string, l *logger.Logger, httpClient HTTPClient) *IPLocationRepository {
	if url == "" {
		url = IPLocationURL
	}
	return &IPLocationRepository{
		URL:        url,
		httpClient: httpClient,
		l:          l,
	}
}

type ipLocationResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	City    string `json:"city"`
}

func (r *IPLocationRepository) CurrentCity(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.URL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP error (status %d): %s", resp.StatusCode, resp.Status)
	}

	var response ipLocationResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if !strings.EqualFold(response.Status, "success") {
		return "", errors.Errorf("location lookup failed: %s", response.Message)
	}
	city := strings.TrimSpace(response.City)
	if city == "" {
		return "", errors.New("city not available")
	}

	r.l.Info("resolved current city", map[string]any{"city": city})

	return city, nil
}
