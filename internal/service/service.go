package service

import (
	"context"

	"github.com/alexivanou/orbis-api/internal/model"
	"github.com/alexivanou/orbis-api/internal/repository"
	"go.uber.org/zap"
)

// WeatherProvider is the weather lookup dependency.
type WeatherProvider interface {
	CurrentByCoords(ctx context.Context, lat, lon string) (*model.ClimaResponse, error)
}

// PhotoProvider is the photo search dependency.
type PhotoProvider interface {
	Search(ctx context.Context, query string) (*model.FotoResponse, error)
}

// Service provides business logic for the API
type Service struct {
	continenteRepo repository.ContinenteRepository
	paisRepo       repository.PaisRepository
	cidadeRepo     repository.CidadeRepository
	usuarioRepo    repository.UsuarioRepository
	weather        WeatherProvider
	photos         PhotoProvider
	logger         *zap.Logger
}

// NewService creates a new service instance. The providers may be nil when
// the corresponding API keys are not configured; photo enrichment is then
// skipped and lookups report an external failure.
func NewService(
	repos *repository.Container,
	weather WeatherProvider,
	photos PhotoProvider,
	logger *zap.Logger,
) *Service {
	return &Service{
		continenteRepo: repos.Continente,
		paisRepo:       repos.Pais,
		cidadeRepo:     repos.Cidade,
		usuarioRepo:    repos.Usuario,
		weather:        weather,
		photos:         photos,
		logger:         logger,
	}
}
