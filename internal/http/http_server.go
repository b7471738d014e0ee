package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"github.com/Ayanroy004/Leet-lab/internal/core/ports/primary"
	execsvc "github.com/Ayanroy004/Leet-lab/internal/core/services/execution"
	problemsvc "github.com/Ayanroy004/Leet-lab/internal/core/services/problem"
	subsvc "github.com/Ayanroy004/Leet-lab/internal/core/services/submission"
	"github.com/Ayanroy004/Leet-lab/internal/handlers"
	executionhdl "github.com/Ayanroy004/Leet-lab/internal/handlers/execution"
	problemshdl "github.com/Ayanroy004/Leet-lab/internal/handlers/problems"
	submissionshdl "github.com/Ayanroy004/Leet-lab/internal/handlers/submissions"
)

type ServiceProvider struct {
	executionService  execsvc.IExecutionService
	submissionService subsvc.ISubmissionService
	validationService problemsvc.IValidationService
}

func NewServiceProvider(
	executionService execsvc.IExecutionService,
	submissionService subsvc.ISubmissionService,
	validationService problemsvc.IValidationService,
) *ServiceProvider {
	return &ServiceProvider{
		executionService:  executionService,
		submissionService: submissionService,
		validationService: validationService,
	}
}

type Server struct {
	router          *mux.Router
	srv             *http.Server
	Port            int
	ServiceName     string
	ServiceProvider ServiceProvider
	middleware      *handlers.MiddlewareProvider
	logger          primary.Logger
}

func NewServer(port int, serviceName string, serviceProvider ServiceProvider, middleware *handlers.MiddlewareProvider, logger primary.Logger) *Server {
	return &Server{
		Port:            port,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		middleware:      middleware,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	r := mux.NewRouter()

	api := r.PathPrefix("/").Subrouter()
	api.Use(s.middleware.JWTMiddleware)

	executionhdl.
		NewExecutionHandler(s.ServiceProvider.executionService, s.logger).
		RegisterRoutes(api)
	submissionshdl.
		NewSubmissionHandler(s.ServiceProvider.submissionService, s.logger).
		RegisterRoutes(api)
	problemshdl.
		NewProblemHandler(s.ServiceProvider.validationService, s.logger).
		RegisterRoutes(api)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	s.router = r
	return nil
}

func (s *Server) Start(ctx context.Context) {
	// A judge round can outlive ordinary request timeouts, so the write
	// timeout must cover the polling deadline.
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 3 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}
	s.srv = srv

	// Start the server in a goroutine
	go func() {
		s.logger.Info("Server listening", "addr", srv.Addr, "service", s.ServiceName)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()
}

func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("Shutting down http server...")
	if s.srv != nil {
		if err := s.srv.Shutdown(ctx); err != nil {
			s.logger.Error("Server forced to shutdown", "error", err)
		}
	}
}
