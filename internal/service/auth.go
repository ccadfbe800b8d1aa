package service

import (
	"context"

	"github.com/alexivanou/orbis-api/internal/apperr"
	"github.com/alexivanou/orbis-api/internal/model"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// Cadastrar registers a new user, storing only a salted hash of the
// password.
func (s *Service) Cadastrar(ctx context.Context, req model.CadastroRequest) (*model.Usuario, error) {
	if req.Nome == "" || req.Email == "" || req.Senha == "" {
		return nil, apperr.Validation("Nome, email e senha são obrigatórios.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcryptCost)
	if err != nil {
		return nil, apperr.Internal("Erro interno ao cadastrar usuário.", err)
	}

	usuario := &model.Usuario{
		Nome:      req.Nome,
		Email:     req.Email,
		SenhaHash: string(hash),
	}

	id, err := s.usuarioRepo.Insert(ctx, usuario)
	if err != nil {
		if apperr.IsUniqueViolation(err) {
			return nil, apperr.Conflict("Este email já está cadastrado.")
		}
		return nil, apperr.Internal("Erro interno ao cadastrar usuário.", err)
	}

	usuario.ID = id
	return usuario, nil
}

// Login checks the credentials and returns the minimal identity. The hash
// never leaves the service.
func (s *Service) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	if req.Email == "" || req.Senha == "" {
		return nil, apperr.Validation("Email e senha são obrigatórios.")
	}

	usuario, err := s.usuarioRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperr.Internal("Erro interno ao realizar login.", err)
	}
	if usuario == nil {
		return nil, apperr.NotFound("Usuário não encontrado.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(req.Senha)); err != nil {
		return nil, apperr.Auth("Senha incorreta.")
	}

	return &model.LoginResponse{ID: usuario.ID, Nome: usuario.Nome}, nil
}
