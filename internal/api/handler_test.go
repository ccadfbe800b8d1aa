package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexivanou/orbis-api/internal/apperr"
	"github.com/alexivanou/orbis-api/internal/model"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockService implements service.ServiceInterface
type MockService struct {
	mock.Mock
}

func (m *MockService) CriarContinente(ctx context.Context, req model.CriarContinenteRequest) (*model.Continente, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Continente), args.Error(1)
}

func (m *MockService) ListarContinentes(ctx context.Context) ([]model.Continente, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Continente), args.Error(1)
}

func (m *MockService) AtualizarContinente(ctx context.Context, id int64, req model.AtualizarContinenteRequest) (*model.Continente, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Continente), args.Error(1)
}

func (m *MockService) ExcluirContinente(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockService) CriarPais(ctx context.Context, req model.CriarPaisRequest) (*model.PaisDetail, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaisDetail), args.Error(1)
}

func (m *MockService) ListarPaises(ctx context.Context) ([]model.PaisDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PaisDetail), args.Error(1)
}

func (m *MockService) AtualizarPais(ctx context.Context, id int64, req model.AtualizarPaisRequest) (*model.PaisDetail, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaisDetail), args.Error(1)
}

func (m *MockService) ExcluirPais(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockService) CriarCidade(ctx context.Context, req model.CriarCidadeRequest) (*model.CidadeDetail, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CidadeDetail), args.Error(1)
}

func (m *MockService) ListarCidades(ctx context.Context) ([]model.CidadeDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CidadeDetail), args.Error(1)
}

func (m *MockService) AtualizarCidade(ctx context.Context, id int64, req model.AtualizarCidadeRequest) (*model.CidadeDetail, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CidadeDetail), args.Error(1)
}

func (m *MockService) ExcluirCidade(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockService) Cadastrar(ctx context.Context, req model.CadastroRequest) (*model.Usuario, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Usuario), args.Error(1)
}

func (m *MockService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LoginResponse), args.Error(1)
}

func (m *MockService) Clima(ctx context.Context, lat, lon string) (*model.ClimaResponse, error) {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ClimaResponse), args.Error(1)
}

func (m *MockService) Foto(ctx context.Context, query string) (*model.FotoResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FotoResponse), args.Error(1)
}

func newTestHandler() (*Handler, *MockService) {
	svc := new(MockService)
	return NewHandler(svc, zap.NewNop()), svc
}

func decodeError(t *testing.T, body *bytes.Buffer) string {
	t.Helper()
	var e struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body.Bytes(), &e))
	return e.Error
}

func TestHandler_Root(t *testing.T) {
	handler, _ := newTestHandler()
	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	handler.Root(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Servidor funcionando!", w.Body.String())
}

func TestHandler_CriarContinente(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSetup      func(*MockService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "created",
			body: `{"nome":"América","descricao":"Continente americano"}`,
			mockSetup: func(m *MockService) {
				m.On("CriarContinente", mock.Anything, mock.Anything).
					Return(&model.Continente{ID: 1, Nome: "América", Descricao: "Continente americano"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "malformed body",
			body:           `{"nome":`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Corpo da requisição inválido.",
		},
		{
			name: "validation error",
			body: `{"nome":"América"}`,
			mockSetup: func(m *MockService) {
				m.On("CriarContinente", mock.Anything, mock.Anything).
					Return(nil, apperr.Validation("Nome e descrição são obrigatórios."))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Nome e descrição são obrigatórios.",
		},
		{
			name: "duplicate name",
			body: `{"nome":"América","descricao":"de novo"}`,
			mockSetup: func(m *MockService) {
				m.On("CriarContinente", mock.Anything, mock.Anything).
					Return(nil, apperr.Conflict("Já existe um continente com este nome."))
			},
			expectedStatus: http.StatusConflict,
			expectedError:  "Já existe um continente com este nome.",
		},
		{
			name: "internal error hides the cause",
			body: `{"nome":"América","descricao":"x"}`,
			mockSetup: func(m *MockService) {
				m.On("CriarContinente", mock.Anything, mock.Anything).
					Return(nil, apperr.Internal("Erro interno ao cadastrar continente.", assert.AnError))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Erro interno ao cadastrar continente.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, svc := newTestHandler()
			if tt.mockSetup != nil {
				tt.mockSetup(svc)
			}

			req := httptest.NewRequest("POST", "/continentes", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.CriarContinente(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, w.Body))
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestHandler_AtualizarContinente(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		handler, _ := newTestHandler()
		req := httptest.NewRequest("PUT", "/continentes/abc", bytes.NewBufferString(`{}`))
		req = mux.SetURLVars(req, map[string]string{"id": "abc"})
		w := httptest.NewRecorder()

		handler.AtualizarContinente(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "ID inválido.", decodeError(t, w.Body))
	})

	t.Run("not found", func(t *testing.T) {
		handler, svc := newTestHandler()
		svc.On("AtualizarContinente", mock.Anything, int64(99), mock.Anything).
			Return(nil, apperr.NotFound("Continente não encontrado."))

		req := httptest.NewRequest("PUT", "/continentes/99", bytes.NewBufferString(`{"nome":"X"}`))
		req = mux.SetURLVars(req, map[string]string{"id": "99"})
		w := httptest.NewRecorder()

		handler.AtualizarContinente(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_ExcluirContinente(t *testing.T) {
	t.Run("no content on success", func(t *testing.T) {
		handler, svc := newTestHandler()
		svc.On("ExcluirContinente", mock.Anything, int64(1)).Return(nil)

		req := httptest.NewRequest("DELETE", "/continentes/1", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "1"})
		w := httptest.NewRecorder()

		handler.ExcluirContinente(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("conflict when countries remain", func(t *testing.T) {
		handler, svc := newTestHandler()
		svc.On("ExcluirContinente", mock.Anything, int64(1)).
			Return(apperr.Conflict("Não é possível excluir o continente pois ele possui países cadastrados."))

		req := httptest.NewRequest("DELETE", "/continentes/1", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "1"})
		w := httptest.NewRecorder()

		handler.ExcluirContinente(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandler_CriarPais(t *testing.T) {
	t.Run("reference error is 400", func(t *testing.T) {
		handler, svc := newTestHandler()
		svc.On("CriarPais", mock.Anything, mock.Anything).
			Return(nil, apperr.Reference("O ID do continente fornecido não existe."))

		body := `{"id_continente":99,"nome":"Brasil","populacao_total":"215000000","idioma_oficial":"Português","moeda":"Real"}`
		req := httptest.NewRequest("POST", "/paises", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.CriarPais(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "O ID do continente fornecido não existe.", decodeError(t, w.Body))
	})

	t.Run("population survives as a decimal string", func(t *testing.T) {
		handler, svc := newTestHandler()
		detail := &model.PaisDetail{
			Pais: model.Pais{
				ID:             1,
				IDContinente:   1,
				Nome:           "Brasil",
				PopulacaoTotal: model.MustBigInt("12345678901234567"),
				IdiomaOficial:  "Português",
				Moeda:          "Real",
			},
			Continente: model.ContinenteRef{ID: 1, Nome: "América"},
		}
		svc.On("CriarPais", mock.Anything, mock.MatchedBy(func(req model.CriarPaisRequest) bool {
			return req.PopulacaoTotal != nil && req.PopulacaoTotal.String() == "12345678901234567"
		})).Return(detail, nil)

		body := `{"id_continente":1,"nome":"Brasil","populacao_total":"12345678901234567","idioma_oficial":"Português","moeda":"Real"}`
		req := httptest.NewRequest("POST", "/paises", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.CriarPais(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "12345678901234567", got["populacao_total"])
		continente, ok := got["continente"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "América", continente["nome"])
	})
}

func TestHandler_Cadastro(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		handler, svc := newTestHandler()
		svc.On("Cadastrar", mock.Anything, mock.Anything).
			Return(&model.Usuario{ID: 1, Nome: "Maria", Email: "maria@example.com"}, nil)

		body := `{"nome":"Maria","email":"maria@example.com","senha":"segredo123"}`
		req := httptest.NewRequest("POST", "/cadastro", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Cadastro(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NotContains(t, w.Body.String(), "senha")
	})

	t.Run("duplicate email maps to 400", func(t *testing.T) {
		handler, svc := newTestHandler()
		svc.On("Cadastrar", mock.Anything, mock.Anything).
			Return(nil, apperr.Conflict("Este email já está cadastrado."))

		body := `{"nome":"Maria","email":"maria@example.com","senha":"segredo123"}`
		req := httptest.NewRequest("POST", "/cadastro", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Cadastro(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Este email já está cadastrado.", decodeError(t, w.Body))
	})
}

func TestHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		mockSetup      func(*MockService)
		expectedStatus int
	}{
		{
			name: "success",
			mockSetup: func(m *MockService) {
				m.On("Login", mock.Anything, mock.Anything).
					Return(&model.LoginResponse{ID: 1, Nome: "Maria"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unknown email maps to 400",
			mockSetup: func(m *MockService) {
				m.On("Login", mock.Anything, mock.Anything).
					Return(nil, apperr.NotFound("Usuário não encontrado."))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "wrong password stays 401",
			mockSetup: func(m *MockService) {
				m.On("Login", mock.Anything, mock.Anything).
					Return(nil, apperr.Auth("Senha incorreta."))
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, svc := newTestHandler()
			tt.mockSetup(svc)

			body := `{"email":"maria@example.com","senha":"segredo123"}`
			req := httptest.NewRequest("POST", "/login", bytes.NewBufferString(body))
			w := httptest.NewRecorder()

			handler.Login(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestHandler_Clima(t *testing.T) {
	t.Run("passes query params through", func(t *testing.T) {
		handler, svc := newTestHandler()
		svc.On("Clima", mock.Anything, "-23.55", "-46.63").
			Return(&model.ClimaResponse{ClimaDescricao: "céu limpo", Local: "São Paulo"}, nil)

		req := httptest.NewRequest("GET", "/clima?lat=-23.55&lon=-46.63", nil)
		w := httptest.NewRecorder()

		handler.Clima(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("provider status propagates", func(t *testing.T) {
		handler, svc := newTestHandler()
		svc.On("Clima", mock.Anything, "x", "y").
			Return(nil, apperr.External(401, "Falha ao obter dados climáticos. Verifique a chave da API ou as coordenadas.", json.RawMessage(`{"cod":401}`), nil))

		req := httptest.NewRequest("GET", "/clima?lat=x&lon=y", nil)
		w := httptest.NewRecorder()

		handler.Clima(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"details"`)
	})
}

func TestHandler_Fotos(t *testing.T) {
	t.Run("no results is 404", func(t *testing.T) {
		handler, svc := newTestHandler()
		svc.On("Foto", mock.Anything, "Atlântida").
			Return(nil, apperr.NotFound(`Nenhuma foto encontrada para "Atlântida".`))

		req := httptest.NewRequest("GET", "/fotos?query=Atlântida", nil)
		w := httptest.NewRecorder()

		handler.Fotos(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
