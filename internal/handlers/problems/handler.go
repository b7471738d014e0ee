package problems

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Ayanroy004/Leet-lab/internal/core/ports/primary"
	problemsvc "github.com/Ayanroy004/Leet-lab/internal/core/services/problem"
	"github.com/Ayanroy004/Leet-lab/internal/handlers/response"
)

// ProblemHandler handles reference-solution validation API requests.
// Problem content itself is stored elsewhere; this service only judges
// whether a reference solution passes its test cases.
type ProblemHandler struct {
	validationService problemsvc.IValidationService
	logger            primary.Logger
}

// NewProblemHandler creates a new problem handler.
func NewProblemHandler(validationService problemsvc.IValidationService, logger primary.Logger) *ProblemHandler {
	return &ProblemHandler{
		validationService: validationService,
		logger:            logger,
	}
}

// RegisterRoutes registers the API routes for ProblemHandler.
func (h *ProblemHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/problems/validate", h.Validate).Methods("POST")
}

type validateCase struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// ValidateRequest carries one reference solution with its test cases.
type ValidateRequest struct {
	SourceCode string         `json:"source_code"`
	Language   string         `json:"language"`
	TestCases  []validateCase `json:"testcases"`
}

// Validate handles one reference-solution validation request.
func (h *ProblemHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode validate request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	cmd := problemsvc.ValidateCommand{
		SourceCode: req.SourceCode,
		Language:   req.Language,
		Cases:      make([]problemsvc.ValidateCase, 0, len(req.TestCases)),
	}
	for _, testCase := range req.TestCases {
		cmd.Cases = append(cmd.Cases, problemsvc.ValidateCase{
			Input:          testCase.Input,
			ExpectedOutput: testCase.Output,
		})
	}

	report, err := h.validationService.Validate(r.Context(), cmd)
	if err != nil {
		h.logger.Error("Failed to validate reference solution", "language", req.Language, "error", err)
		response.WriteError(w, response.ErrorMessage{
			Message:    err.Error(),
			StatusCode: response.StatusForError(err),
		})
		return
	}

	if !report.Passed {
		response.WriteError(w, response.ErrorMessage{
			Message:    "Reference solution failed validation",
			StatusCode: http.StatusBadRequest,
			Details:    report,
		})
		return
	}

	response.WriteSuccess(w, report)
}
