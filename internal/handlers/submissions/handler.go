package submissions

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Ayanroy004/Leet-lab/internal/core/ports/primary"
	subsvc "github.com/Ayanroy004/Leet-lab/internal/core/services/submission"
	"github.com/Ayanroy004/Leet-lab/internal/handlers"
	executionhdl "github.com/Ayanroy004/Leet-lab/internal/handlers/execution"
	"github.com/Ayanroy004/Leet-lab/internal/handlers/response"
)

// SubmissionHandler handles submission listing API requests.
type SubmissionHandler struct {
	submissionService subsvc.ISubmissionService
	logger            primary.Logger
}

// NewSubmissionHandler creates a new submission handler.
func NewSubmissionHandler(submissionService subsvc.ISubmissionService, logger primary.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
		logger:            logger,
	}
}

// RegisterRoutes registers the API routes for SubmissionHandler.
func (h *SubmissionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/submissions", h.ListForUser).Methods("GET")
	router.HandleFunc("/api/submissions/{problemId}", h.ListForProblem).Methods("GET")
	router.HandleFunc("/api/submissions/{problemId}/count", h.CountForProblem).Methods("GET")
}

type listResponse struct {
	Submissions []executionhdl.SubmissionDTO `json:"submissions"`
	Solved      *bool                        `json:"solved,omitempty"`
}

type countResponse struct {
	Count int64 `json:"count"`
}

// ListForUser handles listing every submission of the authenticated user.
func (h *SubmissionHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	subs, err := h.submissionService.ListForUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list submissions", "userId", userID, "error", err)
		http.Error(w, "Failed to list submissions", http.StatusInternalServerError)
		return
	}

	resp := listResponse{Submissions: make([]executionhdl.SubmissionDTO, 0, len(subs))}
	for _, sub := range subs {
		resp.Submissions = append(resp.Submissions, executionhdl.ToSubmissionDTO(sub))
	}

	response.WriteSuccess(w, resp)
}

// ListForProblem handles listing the user's submissions for one problem,
// annotated with whether the problem was ever solved.
func (h *SubmissionHandler) ListForProblem(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	problemID := mux.Vars(r)["problemId"]
	if problemID == "" {
		http.Error(w, "Problem ID is required", http.StatusBadRequest)
		return
	}

	subs, err := h.submissionService.ListForProblem(r.Context(), userID, problemID)
	if err != nil {
		h.logger.Error("Failed to list submissions for problem",
			"userId", userID,
			"problemId", problemID,
			"error", err)
		http.Error(w, "Failed to list submissions", http.StatusInternalServerError)
		return
	}

	resp := listResponse{Submissions: make([]executionhdl.SubmissionDTO, 0, len(subs))}
	for _, sub := range subs {
		resp.Submissions = append(resp.Submissions, executionhdl.ToSubmissionDTO(sub))
	}

	solved, err := h.submissionService.IsSolved(r.Context(), userID, problemID)
	if err != nil {
		h.logger.Warn("Failed to check solved relation", "userId", userID, "problemId", problemID, "error", err)
	} else {
		resp.Solved = &solved
	}

	response.WriteSuccess(w, resp)
}

// CountForProblem handles counting the user's submissions for one problem.
func (h *SubmissionHandler) CountForProblem(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	problemID := mux.Vars(r)["problemId"]
	if problemID == "" {
		http.Error(w, "Problem ID is required", http.StatusBadRequest)
		return
	}

	count, err := h.submissionService.CountForProblem(r.Context(), userID, problemID)
	if err != nil {
		h.logger.Error("Failed to count submissions",
			"userId", userID,
			"problemId", problemID,
			"error", err)
		http.Error(w, "Failed to count submissions", http.StatusInternalServerError)
		return
	}

	response.WriteSuccess(w, countResponse{Count: count})
}
