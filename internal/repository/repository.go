package repository

import (
	"context"

	"github.com/alexivanou/orbis-api/internal/model"
	"github.com/jmoiron/sqlx"
)

// ContinenteRepository defines operations for continents
type ContinenteRepository interface {
	Insert(ctx context.Context, c *model.Continente) (int64, error)
	List(ctx context.Context) ([]model.Continente, error)
	GetByID(ctx context.Context, id int64) (*model.Continente, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// PaisRepository defines operations for countries. Reads embed the parent
// continent.
type PaisRepository interface {
	Insert(ctx context.Context, p *model.Pais) (int64, error)
	List(ctx context.Context) ([]model.PaisDetail, error)
	GetDetail(ctx context.Context, id int64) (*model.PaisDetail, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// CidadeRepository defines operations for cities. Reads embed the parent
// country and its continent.
type CidadeRepository interface {
	Insert(ctx context.Context, c *model.Cidade) (int64, error)
	List(ctx context.Context) ([]model.CidadeDetail, error)
	GetDetail(ctx context.Context, id int64) (*model.CidadeDetail, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// UsuarioRepository defines operations for users
type UsuarioRepository interface {
	Insert(ctx context.Context, u *model.Usuario) (int64, error)
	GetByEmail(ctx context.Context, email string) (*model.Usuario, error)
}

// Container holds all repositories
type Container struct {
	Continente ContinenteRepository
	Pais       PaisRepository
	Cidade     CidadeRepository
	Usuario    UsuarioRepository
}

// NewRepositories creates repository implementations backed by the given
// connection pool. The SQL is written once with '?' placeholders and rebound
// per driver, so postgres and sqlite share one implementation; driver
// differences surface only in apperr's violation-code classification.
func NewRepositories(db *sqlx.DB) *Container {
	return &Container{
		Continente: &continenteRepository{db: db},
		Pais:       &paisRepository{db: db},
		Cidade:     &cidadeRepository{db: db},
		Usuario:    &usuarioRepository{db: db},
	}
}
