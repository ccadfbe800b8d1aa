package service

import (
	"context"

	"github.com/alexivanou/orbis-api/internal/apperr"
	"github.com/alexivanou/orbis-api/internal/model"
)

// Clima looks up the current weather for the given coordinates. Validation
// happens before any external call. The snapshot is not persisted; the
// caller decides whether to store it on a city.
func (s *Service) Clima(ctx context.Context, lat, lon string) (*model.ClimaResponse, error) {
	if lat == "" || lon == "" {
		return nil, apperr.Validation("Parâmetros 'lat' e 'lon' são obrigatórios.")
	}
	if s.weather == nil {
		return nil, apperr.External(0, "Falha ao obter dados climáticos. Verifique a chave da API ou as coordenadas.", nil, nil)
	}
	return s.weather.CurrentByCoords(ctx, lat, lon)
}

// Foto looks up one photo for the given search term.
func (s *Service) Foto(ctx context.Context, query string) (*model.FotoResponse, error) {
	if query == "" {
		return nil, apperr.Validation("O parâmetro 'query' (termo de busca) é obrigatório.")
	}
	if s.photos == nil {
		return nil, apperr.External(0, "Falha ao obter dados do Unsplash.", nil, nil)
	}
	return s.photos.Search(ctx, query)
}
