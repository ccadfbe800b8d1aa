package service

import (
	"context"

	"github.com/alexivanou/orbis-api/internal/apperr"
	"github.com/alexivanou/orbis-api/internal/model"
	"go.uber.org/zap"
)

// CriarPais validates and inserts a new country, embedding its continent in
// the response. When a photo provider is configured and the request carries
// no photo fields, the create triggers a best-effort enrichment: fetch one
// photo for the country name and persist the attribution fields with a
// second, independent write. Either step failing is logged and the create
// still succeeds (no compensation).
func (s *Service) CriarPais(ctx context.Context, req model.CriarPaisRequest) (*model.PaisDetail, error) {
	if req.IDContinente == 0 || req.Nome == "" || req.PopulacaoTotal == nil ||
		req.IdiomaOficial == "" || req.Moeda == "" {
		return nil, apperr.Validation("Todos os campos obrigatórios devem ser preenchidos.")
	}

	pais := &model.Pais{
		IDContinente:    req.IDContinente,
		Nome:            req.Nome,
		PopulacaoTotal:  *req.PopulacaoTotal,
		IdiomaOficial:   req.IdiomaOficial,
		Moeda:           req.Moeda,
		FotoURL:         req.FotoURL,
		FotoDescricao:   req.FotoDescricao,
		FotografoNome:   req.FotografoNome,
		FotografoPerfil: req.FotografoPerfil,
	}

	id, err := s.paisRepo.Insert(ctx, pais)
	if err != nil {
		if apperr.IsUniqueViolation(err) {
			return nil, apperr.Conflict("Já existe um país com este nome.")
		}
		if apperr.IsForeignKeyViolation(err) {
			return nil, apperr.Reference("O ID do continente fornecido não existe.")
		}
		return nil, apperr.Internal("Erro interno ao cadastrar país.", err)
	}

	if s.photos != nil && req.FotoURL == nil {
		s.enrichPaisFoto(ctx, id, req.Nome)
	}

	detail, err := s.paisRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, apperr.Internal("Erro interno ao cadastrar país.", err)
	}
	return detail, nil
}

func (s *Service) enrichPaisFoto(ctx context.Context, id int64, nome string) {
	foto, err := s.photos.Search(ctx, nome)
	if err != nil {
		s.logger.Warn("photo enrichment skipped",
			zap.String("pais", nome), zap.Error(err))
		return
	}
	fields := map[string]interface{}{
		"foto_url":         foto.FotoURL,
		"foto_descricao":   foto.FotoDescricao,
		"fotografo_nome":   foto.FotografoNome,
		"fotografo_perfil": foto.FotografoPerfil,
	}
	if _, err := s.paisRepo.Update(ctx, id, fields); err != nil {
		s.logger.Warn("photo enrichment not persisted",
			zap.String("pais", nome), zap.Error(err))
	}
}

// ListarPaises returns all countries ordered by name, each with its
// continent embedded.
func (s *Service) ListarPaises(ctx context.Context) ([]model.PaisDetail, error) {
	paises, err := s.paisRepo.List(ctx)
	if err != nil {
		return nil, apperr.Internal("Erro interno ao listar países.", err)
	}
	return paises, nil
}

// AtualizarPais applies only the fields present in the request and returns
// the updated country with its continent embedded.
func (s *Service) AtualizarPais(ctx context.Context, id int64, req model.AtualizarPaisRequest) (*model.PaisDetail, error) {
	fields := map[string]interface{}{}
	if req.IDContinente != nil {
		fields["id_continente"] = *req.IDContinente
	}
	if req.Nome != nil {
		fields["nome"] = *req.Nome
	}
	if req.PopulacaoTotal != nil {
		fields["populacao_total"] = *req.PopulacaoTotal
	}
	if req.IdiomaOficial != nil {
		fields["idioma_oficial"] = *req.IdiomaOficial
	}
	if req.Moeda != nil {
		fields["moeda"] = *req.Moeda
	}
	if req.FotoURL != nil {
		fields["foto_url"] = *req.FotoURL
	}
	if req.FotoDescricao != nil {
		fields["foto_descricao"] = *req.FotoDescricao
	}
	if req.FotografoNome != nil {
		fields["fotografo_nome"] = *req.FotografoNome
	}
	if req.FotografoPerfil != nil {
		fields["fotografo_perfil"] = *req.FotografoPerfil
	}
	if len(fields) == 0 {
		return nil, apperr.Validation("Nenhum dado para atualizar fornecido.")
	}

	affected, err := s.paisRepo.Update(ctx, id, fields)
	if err != nil {
		if apperr.IsUniqueViolation(err) {
			return nil, apperr.Conflict("Já existe um país com este nome.")
		}
		if apperr.IsForeignKeyViolation(err) {
			return nil, apperr.Reference("O ID do continente fornecido não existe.")
		}
		return nil, apperr.Internal("Erro interno ao atualizar país.", err)
	}

	if affected == 0 {
		exists, err := s.paisRepo.Exists(ctx, id)
		if err != nil {
			return nil, apperr.Internal("Erro interno ao atualizar país.", err)
		}
		if !exists {
			return nil, apperr.NotFound("País não encontrado.")
		}
	}

	detail, err := s.paisRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, apperr.Internal("Erro interno ao atualizar país.", err)
	}
	if detail == nil {
		return nil, apperr.NotFound("País não encontrado.")
	}
	return detail, nil
}

// ExcluirPais deletes a country. Countries still referenced by cities are
// protected by the foreign key.
func (s *Service) ExcluirPais(ctx context.Context, id int64) error {
	affected, err := s.paisRepo.Delete(ctx, id)
	if err != nil {
		if apperr.IsForeignKeyViolation(err) {
			return apperr.Conflict("Não é possível excluir o país pois ele possui cidades cadastradas.")
		}
		return apperr.Internal("Erro interno ao excluir país.", err)
	}
	if affected == 0 {
		return apperr.NotFound("País não encontrado.")
	}
	return nil
}
