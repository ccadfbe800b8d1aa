package service

import (
	"context"

	"github.com/alexivanou/orbis-api/internal/apperr"
	"github.com/alexivanou/orbis-api/internal/model"
)

// CriarContinente validates and inserts a new continent.
func (s *Service) CriarContinente(ctx context.Context, req model.CriarContinenteRequest) (*model.Continente, error) {
	if req.Nome == "" || req.Descricao == "" {
		return nil, apperr.Validation("Nome e descrição são obrigatórios.")
	}

	continente := &model.Continente{
		Nome:           req.Nome,
		Descricao:      req.Descricao,
		AreaKm2:        req.AreaKm2,
		NumeroPaises:   req.NumeroPaises,
		PopulacaoTotal: req.PopulacaoTotal,
	}

	id, err := s.continenteRepo.Insert(ctx, continente)
	if err != nil {
		if apperr.IsUniqueViolation(err) {
			return nil, apperr.Conflict("Já existe um continente com este nome.")
		}
		return nil, apperr.Internal("Erro interno ao cadastrar continente.", err)
	}

	continente.ID = id
	return continente, nil
}

// ListarContinentes returns all continents ordered by name.
func (s *Service) ListarContinentes(ctx context.Context) ([]model.Continente, error) {
	continentes, err := s.continenteRepo.List(ctx)
	if err != nil {
		return nil, apperr.Internal("Erro interno ao listar continentes.", err)
	}
	return continentes, nil
}

// AtualizarContinente applies only the fields present in the request.
func (s *Service) AtualizarContinente(ctx context.Context, id int64, req model.AtualizarContinenteRequest) (*model.Continente, error) {
	fields := map[string]interface{}{}
	if req.Nome != nil {
		fields["nome"] = *req.Nome
	}
	if req.Descricao != nil {
		fields["descricao"] = *req.Descricao
	}
	if req.AreaKm2 != nil {
		fields["area_km2"] = *req.AreaKm2
	}
	if req.NumeroPaises != nil {
		fields["numero_paises"] = *req.NumeroPaises
	}
	if req.PopulacaoTotal != nil {
		fields["populacao_total"] = *req.PopulacaoTotal
	}
	if len(fields) == 0 {
		return nil, apperr.Validation("Nenhum dado para atualizar fornecido.")
	}

	affected, err := s.continenteRepo.Update(ctx, id, fields)
	if err != nil {
		if apperr.IsUniqueViolation(err) {
			return nil, apperr.Conflict("Já existe um continente com este nome.")
		}
		return nil, apperr.Internal("Erro interno ao atualizar continente.", err)
	}

	// affected == 0 is ambiguous: the row may be missing, or the update may
	// have been a no-op with identical values.
	if affected == 0 {
		exists, err := s.continenteRepo.Exists(ctx, id)
		if err != nil {
			return nil, apperr.Internal("Erro interno ao atualizar continente.", err)
		}
		if !exists {
			return nil, apperr.NotFound("Continente não encontrado.")
		}
	}

	continente, err := s.continenteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("Erro interno ao atualizar continente.", err)
	}
	if continente == nil {
		return nil, apperr.NotFound("Continente não encontrado.")
	}
	return continente, nil
}

// ExcluirContinente deletes a continent. Continents still referenced by
// countries are protected by the foreign key.
func (s *Service) ExcluirContinente(ctx context.Context, id int64) error {
	affected, err := s.continenteRepo.Delete(ctx, id)
	if err != nil {
		if apperr.IsForeignKeyViolation(err) {
			return apperr.Conflict("Não é possível excluir o continente pois ele possui países cadastrados.")
		}
		return apperr.Internal("Erro interno ao excluir continente.", err)
	}
	if affected == 0 {
		return apperr.NotFound("Continente não encontrado.")
	}
	return nil
}
