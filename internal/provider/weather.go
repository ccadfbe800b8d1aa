// Package provider wraps the external weather and photo HTTP APIs. Both
// clients apply a request timeout and surface provider failures with the
// provider's own status code and response body attached.
package provider

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/alexivanou/orbis-api/internal/apperr"
	"github.com/alexivanou/orbis-api/internal/model"
)

const climaFailureMsg = "Falha ao obter dados climáticos. Verifique a chave da API ou as coordenadas."

// WeatherClient calls the OpenWeatherMap current-weather endpoint.
type WeatherClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewWeatherClient creates a weather client. A timeout of zero falls back to
// 10 seconds.
func NewWeatherClient(baseURL, apiKey string, timeout time.Duration) *WeatherClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WeatherClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// openWeatherPayload mirrors the subset of the provider response we consume.
type openWeatherPayload struct {
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Pressure  float64 `json:"pressure"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Name string `json:"name"`
}

// CurrentByCoords fetches the current weather for the given coordinates with
// metric units and pt_br locale. Coordinates are passed through verbatim; the
// provider validates their range.
func (c *WeatherClient) CurrentByCoords(ctx context.Context, lat, lon string) (*model.ClimaResponse, error) {
	params := url.Values{}
	params.Set("lat", lat)
	params.Set("lon", lon)
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")
	params.Set("lang", "pt_br")

	body, err := doGet(ctx, c.httpClient, c.baseURL+"/data/2.5/weather?"+params.Encode(), climaFailureMsg)
	if err != nil {
		return nil, err
	}

	var payload openWeatherPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, apperr.Internal(climaFailureMsg, err)
	}

	resp := &model.ClimaResponse{
		Temperatura:     payload.Main.Temp,
		SensacaoTermica: payload.Main.FeelsLike,
		TempMin:         payload.Main.TempMin,
		TempMax:         payload.Main.TempMax,
		Pressao:         payload.Main.Pressure,
		Umidade:         payload.Main.Humidity,
		VentoVelocidade: payload.Wind.Speed,
		Local:           payload.Name,
	}
	if len(payload.Weather) > 0 {
		resp.ClimaDescricao = payload.Weather[0].Description
	}
	return resp, nil
}

// doGet performs a provider request and normalizes failures: a non-2xx
// response propagates the provider's status and raw body, transport errors
// (timeouts included) become an ExternalServiceError without a provider
// status.
func doGet(ctx context.Context, client *http.Client, rawURL, failureMsg string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, apperr.Internal(failureMsg, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, apperr.External(0, failureMsg, nil, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.External(0, failureMsg, nil, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperr.External(resp.StatusCode, failureMsg, body, nil)
	}
	return body, nil
}
