package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/alexivanou/orbis-api/internal/apperr"
	"github.com/alexivanou/orbis-api/internal/model"
	"github.com/alexivanou/orbis-api/internal/service"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Handler handles HTTP requests
type Handler struct {
	service service.ServiceInterface
	logger  *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(service service.ServiceInterface, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// errorBody is the JSON error envelope. Details carries the opaque payload
// of a failed provider call, when there is one.
type errorBody struct {
	Error   string          `json:"error"`
	Details json.RawMessage `json:"details,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := apperr.HTTPStatus(err)
	body := errorBody{Error: "Erro interno no servidor."}

	var ae *apperr.Error
	if errors.As(err, &ae) {
		body.Error = ae.Message
		body.Details = ae.Details
	}
	if status == http.StatusInternalServerError || apperr.KindOf(err) == apperr.KindExternal {
		h.logger.Error("request failed", zap.Int("status", status), zap.Error(err))
	}

	h.writeJSON(w, status, body)
}

func (h *Handler) decode(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Validation("Corpo da requisição inválido.")
	}
	return nil
}

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, apperr.Validation("ID inválido.")
	}
	return id, nil
}

// Root handles GET /
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Servidor funcionando!"))
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// --- Continentes ---

// CriarContinente handles POST /continentes
func (h *Handler) CriarContinente(w http.ResponseWriter, r *http.Request) {
	var req model.CriarContinenteRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	continente, err := h.service.CriarContinente(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, continente)
}

// ListarContinentes handles GET /continentes
func (h *Handler) ListarContinentes(w http.ResponseWriter, r *http.Request) {
	continentes, err := h.service.ListarContinentes(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, continentes)
}

// AtualizarContinente handles PUT /continentes/{id}
func (h *Handler) AtualizarContinente(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	var req model.AtualizarContinenteRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	continente, err := h.service.AtualizarContinente(r.Context(), id, req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, continente)
}

// ExcluirContinente handles DELETE /continentes/{id}
func (h *Handler) ExcluirContinente(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.service.ExcluirContinente(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Paises ---

// CriarPais handles POST /paises
func (h *Handler) CriarPais(w http.ResponseWriter, r *http.Request) {
	var req model.CriarPaisRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	pais, err := h.service.CriarPais(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, pais)
}

// ListarPaises handles GET /paises
func (h *Handler) ListarPaises(w http.ResponseWriter, r *http.Request) {
	paises, err := h.service.ListarPaises(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, paises)
}

// AtualizarPais handles PUT /paises/{id}
func (h *Handler) AtualizarPais(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	var req model.AtualizarPaisRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	pais, err := h.service.AtualizarPais(r.Context(), id, req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, pais)
}

// ExcluirPais handles DELETE /paises/{id}
func (h *Handler) ExcluirPais(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.service.ExcluirPais(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Cidades ---

// CriarCidade handles POST /cidades
func (h *Handler) CriarCidade(w http.ResponseWriter, r *http.Request) {
	var req model.CriarCidadeRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	cidade, err := h.service.CriarCidade(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, cidade)
}

// ListarCidades handles GET /cidades
func (h *Handler) ListarCidades(w http.ResponseWriter, r *http.Request) {
	cidades, err := h.service.ListarCidades(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, cidades)
}

// AtualizarCidade handles PUT /cidades/{id}
func (h *Handler) AtualizarCidade(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	var req model.AtualizarCidadeRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	cidade, err := h.service.AtualizarCidade(r.Context(), id, req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, cidade)
}

// ExcluirCidade handles DELETE /cidades/{id}
func (h *Handler) ExcluirCidade(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.service.ExcluirCidade(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Auth ---

// Cadastro handles POST /cadastro. The route contract maps a duplicate
// email to 400 rather than the taxonomy's usual 409.
func (h *Handler) Cadastro(w http.ResponseWriter, r *http.Request) {
	var req model.CadastroRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	usuario, err := h.service.Cadastrar(r.Context(), req)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindConflict {
			var ae *apperr.Error
			errors.As(err, &ae)
			h.writeJSON(w, http.StatusBadRequest, errorBody{Error: ae.Message})
			return
		}
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, usuario)
}

// Login handles POST /login. An unknown email maps to 400 per the route
// contract; a wrong password stays 401.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	identity, err := h.service.Login(r.Context(), req)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			var ae *apperr.Error
			errors.As(err, &ae)
			h.writeJSON(w, http.StatusBadRequest, errorBody{Error: ae.Message})
			return
		}
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, identity)
}

// --- Enrichment ---

// Clima handles GET /clima
func (h *Handler) Clima(w http.ResponseWriter, r *http.Request) {
	lat := r.URL.Query().Get("lat")
	lon := r.URL.Query().Get("lon")

	clima, err := h.service.Clima(r.Context(), lat, lon)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, clima)
}

// Fotos handles GET /fotos
func (h *Handler) Fotos(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	foto, err := h.service.Foto(r.Context(), query)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, foto)
}
