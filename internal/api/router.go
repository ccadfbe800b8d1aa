package api

import (
	"net/http"

	"github.com/alexivanou/orbis-api/internal/service"
	"github.com/alexivanou/orbis-api/internal/stats"
	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// NewRouter creates the HTTP handler stack. Only the single configured
// browser origin is allowed, with credentials and all standard verbs. CORS
// wraps the router from the outside so preflight OPTIONS requests are
// answered even though no route registers that method.
func NewRouter(svc service.ServiceInterface, statsCollector *stats.Collector, logger *zap.Logger, corsOrigin string) http.Handler {
	handler := NewHandler(svc, logger)
	statsHandler := NewStatsHandler(statsCollector, logger)

	router := mux.NewRouter()

	router.HandleFunc("/", handler.Root).Methods("GET")
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	router.HandleFunc("/continentes", handler.CriarContinente).Methods("POST")
	router.HandleFunc("/continentes", handler.ListarContinentes).Methods("GET")
	router.HandleFunc("/continentes/{id}", handler.AtualizarContinente).Methods("PUT")
	router.HandleFunc("/continentes/{id}", handler.ExcluirContinente).Methods("DELETE")

	router.HandleFunc("/paises", handler.CriarPais).Methods("POST")
	router.HandleFunc("/paises", handler.ListarPaises).Methods("GET")
	router.HandleFunc("/paises/{id}", handler.AtualizarPais).Methods("PUT")
	router.HandleFunc("/paises/{id}", handler.ExcluirPais).Methods("DELETE")

	router.HandleFunc("/cidades", handler.CriarCidade).Methods("POST")
	router.HandleFunc("/cidades", handler.ListarCidades).Methods("GET")
	router.HandleFunc("/cidades/{id}", handler.AtualizarCidade).Methods("PUT")
	router.HandleFunc("/cidades/{id}", handler.ExcluirCidade).Methods("DELETE")

	router.HandleFunc("/cadastro", handler.Cadastro).Methods("POST")
	router.HandleFunc("/login", handler.Login).Methods("POST")

	router.HandleFunc("/clima", handler.Clima).Methods("GET")
	router.HandleFunc("/fotos", handler.Fotos).Methods("GET")

	router.HandleFunc("/stats", statsHandler.GetStats).Methods("GET")

	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowedMethods:   []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	})(router)
}
