package execution

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Ayanroy004/Leet-lab/internal/core/ports/primary"
	execsvc "github.com/Ayanroy004/Leet-lab/internal/core/services/execution"
	"github.com/Ayanroy004/Leet-lab/internal/handlers"
	"github.com/Ayanroy004/Leet-lab/internal/handlers/response"
)

// ExecutionHandler handles code execution API requests.
type ExecutionHandler struct {
	executionService execsvc.IExecutionService
	logger           primary.Logger
}

// NewExecutionHandler creates a new execution handler.
func NewExecutionHandler(executionService execsvc.IExecutionService, logger primary.Logger) *ExecutionHandler {
	return &ExecutionHandler{
		executionService: executionService,
		logger:           logger,
	}
}

// RegisterRoutes registers the API routes for ExecutionHandler.
func (h *ExecutionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/execute", h.Execute).Methods("POST")
}

// Execute handles one execute-and-judge request.
func (h *ExecutionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req ExecuteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode execute request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	cmd := execsvc.ExecuteCommand{
		UserID:          userID,
		ProblemID:       req.ProblemID,
		SourceCode:      req.SourceCode,
		LanguageID:      req.LanguageID,
		StdinCases:      req.Stdin,
		ExpectedOutputs: req.ExpectedOutput,
	}

	sub, err := h.executionService.Execute(r.Context(), cmd)
	if err != nil {
		h.logger.Error("Failed to execute code",
			"userId", userID,
			"problemId", req.ProblemID,
			"error", err)

		msg := response.ErrorMessage{
			Message:    err.Error(),
			StatusCode: response.StatusForError(err),
		}

		var timeout *execsvc.PollTimeoutError
		if errors.As(err, &timeout) {
			msg.Details = ToPartialResultDTOs(timeout.Partial)
		}

		response.WriteError(w, msg)
		return
	}

	response.WriteSuccess(w, ExecuteResponse{
		Message:    "Code executed successfully",
		Submission: ToSubmissionDTO(sub),
	})
}
