package web

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	corecube "github.com/LarryWang2718/AI-Cube-Solver/internal/cube"
)

// Server wraps the gorilla/mux router with a pattern-database engine
// built once at startup and shared across every request: Engine.Solve
// only reads engine state and allocates fresh search-local state per
// call, so it is safe to call concurrently from the net/http
// goroutine-per-request model.
type Server struct {
	router *mux.Router
	engine *corecube.Engine
}

func NewServer() *Server {
	log.Info().Msg("building pattern databases for web server")
	s := &Server{
		router: mux.NewRouter(),
		engine: corecube.NewEngine(nil),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/solve", s.handleSolve).Methods("POST")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	s.router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("./internal/web/static/"))))
	s.router.HandleFunc("/", s.handleIndex).Methods("GET")
}

func (s *Server) Start(addr string) error {
	log.Info().Str("addr", addr).Msg("server starting")
	return http.ListenAndServe(addr, s.router)
}
