package service

import (
	"context"

	"github.com/alexivanou/orbis-api/internal/model"
)

// ServiceInterface defines the service interface for testing
type ServiceInterface interface {
	CriarContinente(ctx context.Context, req model.CriarContinenteRequest) (*model.Continente, error)
	ListarContinentes(ctx context.Context) ([]model.Continente, error)
	AtualizarContinente(ctx context.Context, id int64, req model.AtualizarContinenteRequest) (*model.Continente, error)
	ExcluirContinente(ctx context.Context, id int64) error

	CriarPais(ctx context.Context, req model.CriarPaisRequest) (*model.PaisDetail, error)
	ListarPaises(ctx context.Context) ([]model.PaisDetail, error)
	AtualizarPais(ctx context.Context, id int64, req model.AtualizarPaisRequest) (*model.PaisDetail, error)
	ExcluirPais(ctx context.Context, id int64) error

	CriarCidade(ctx context.Context, req model.CriarCidadeRequest) (*model.CidadeDetail, error)
	ListarCidades(ctx context.Context) ([]model.CidadeDetail, error)
	AtualizarCidade(ctx context.Context, id int64, req model.AtualizarCidadeRequest) (*model.CidadeDetail, error)
	ExcluirCidade(ctx context.Context, id int64) error

	Cadastrar(ctx context.Context, req model.CadastroRequest) (*model.Usuario, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)

	Clima(ctx context.Context, lat, lon string) (*model.ClimaResponse, error)
	Foto(ctx context.Context, query string) (*model.FotoResponse, error)
}
