package service

import (
	"context"

	"github.com/alexivanou/orbis-api/internal/apperr"
	"github.com/alexivanou/orbis-api/internal/model"
	"go.uber.org/zap"
)

// CriarCidade validates and inserts a new city, embedding its country and
// continent in the response. Photo enrichment follows the same best-effort
// two-step write as CriarPais.
func (s *Service) CriarCidade(ctx context.Context, req model.CriarCidadeRequest) (*model.CidadeDetail, error) {
	if req.IDPais == 0 || req.Nome == "" || req.PopulacaoTotal == nil ||
		req.Latitude == nil || req.Longitude == nil {
		return nil, apperr.Validation("Todos os campos obrigatórios (id_pais, nome, populacao_total, latitude, longitude) devem ser preenchidos.")
	}

	cidade := &model.Cidade{
		IDPais:          req.IDPais,
		Nome:            req.Nome,
		PopulacaoTotal:  *req.PopulacaoTotal,
		Latitude:        *req.Latitude,
		Longitude:       *req.Longitude,
		FotoURL:         req.FotoURL,
		FotoDescricao:   req.FotoDescricao,
		FotografoNome:   req.FotografoNome,
		FotografoPerfil: req.FotografoPerfil,
		ClimaDescricao:  req.ClimaDescricao,
		Temperatura:     req.Temperatura,
		Umidade:         req.Umidade,
		VentoVelocidade: req.VentoVelocidade,
	}

	id, err := s.cidadeRepo.Insert(ctx, cidade)
	if err != nil {
		if apperr.IsUniqueViolation(err) {
			return nil, apperr.Conflict("Já existe uma cidade com este nome no banco de dados.")
		}
		if apperr.IsForeignKeyViolation(err) {
			return nil, apperr.Reference("O ID do país fornecido não existe.")
		}
		return nil, apperr.Internal("Erro interno ao cadastrar cidade.", err)
	}

	if s.photos != nil && req.FotoURL == nil {
		s.enrichCidadeFoto(ctx, id, req.Nome)
	}

	detail, err := s.cidadeRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, apperr.Internal("Erro interno ao cadastrar cidade.", err)
	}
	return detail, nil
}

func (s *Service) enrichCidadeFoto(ctx context.Context, id int64, nome string) {
	foto, err := s.photos.Search(ctx, nome)
	if err != nil {
		s.logger.Warn("photo enrichment skipped",
			zap.String("cidade", nome), zap.Error(err))
		return
	}
	fields := map[string]interface{}{
		"foto_url":         foto.FotoURL,
		"foto_descricao":   foto.FotoDescricao,
		"fotografo_nome":   foto.FotografoNome,
		"fotografo_perfil": foto.FotografoPerfil,
	}
	if _, err := s.cidadeRepo.Update(ctx, id, fields); err != nil {
		s.logger.Warn("photo enrichment not persisted",
			zap.String("cidade", nome), zap.Error(err))
	}
}

// ListarCidades returns all cities ordered by name, each with its country
// and continent embedded.
func (s *Service) ListarCidades(ctx context.Context) ([]model.CidadeDetail, error) {
	cidades, err := s.cidadeRepo.List(ctx)
	if err != nil {
		return nil, apperr.Internal("Erro interno ao listar cidades.", err)
	}
	return cidades, nil
}

// AtualizarCidade applies only the fields present in the request and returns
// the updated city with its parents embedded.
func (s *Service) AtualizarCidade(ctx context.Context, id int64, req model.AtualizarCidadeRequest) (*model.CidadeDetail, error) {
	fields := map[string]interface{}{}
	if req.IDPais != nil {
		fields["id_pais"] = *req.IDPais
	}
	if req.Nome != nil {
		fields["nome"] = *req.Nome
	}
	if req.PopulacaoTotal != nil {
		fields["populacao_total"] = *req.PopulacaoTotal
	}
	if req.Latitude != nil {
		fields["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		fields["longitude"] = *req.Longitude
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
	if req.ClimaDescricao != nil {
		fields["clima_descricao"] = *req.ClimaDescricao
	}
	if req.Temperatura != nil {
		fields["temperatura"] = *req.Temperatura
	}
	if req.Umidade != nil {
		fields["umidade"] = *req.Umidade
	}
	if req.VentoVelocidade != nil {
		fields["vento_velocidade"] = *req.VentoVelocidade
	}
	if len(fields) == 0 {
		return nil, apperr.Validation("Nenhum dado para atualizar fornecido.")
	}

	affected, err := s.cidadeRepo.Update(ctx, id, fields)
	if err != nil {
		if apperr.IsUniqueViolation(err) {
			return nil, apperr.Conflict("Já existe uma cidade com este nome no banco de dados.")
		}
		if apperr.IsForeignKeyViolation(err) {
			return nil, apperr.Reference("O ID do país fornecido não existe.")
		}
		return nil, apperr.Internal("Erro interno ao atualizar cidade.", err)
	}

	if affected == 0 {
		exists, err := s.cidadeRepo.Exists(ctx, id)
		if err != nil {
			return nil, apperr.Internal("Erro interno ao atualizar cidade.", err)
		}
		if !exists {
			return nil, apperr.NotFound("Cidade não encontrada.")
		}
	}

	detail, err := s.cidadeRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, apperr.Internal("Erro interno ao atualizar cidade.", err)
	}
	if detail == nil {
		return nil, apperr.NotFound("Cidade não encontrada.")
	}
	return detail, nil
}

// ExcluirCidade deletes a city.
func (s *Service) ExcluirCidade(ctx context.Context, id int64) error {
	affected, err := s.cidadeRepo.Delete(ctx, id)
	if err != nil {
		return apperr.Internal("Erro interno ao excluir cidade.", err)
	}
	if affected == 0 {
		return apperr.NotFound("Cidade não encontrada.")
	}
	return nil
}
