package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sells-group/advisor-cli/internal/advisor"
	"github.com/sells-group/advisor-cli/internal/catalog"
	"github.com/sells-group/advisor-cli/internal/export"
	"github.com/sells-group/advisor-cli/internal/model"
	"github.com/sells-group/advisor-cli/internal/resilience"
	"github.com/sells-group/advisor-cli/internal/risk"
	"github.com/sells-group/advisor-cli/internal/store"
)

const (
	maxBodyBytes = 1 << 20
	xlsxMIME     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type assessmentRequest struct {
	UserID  string          `json:"user_id"`
	Answers model.AnswerSet `json:"answers"`
}

type planRequest struct {
	Answers     model.AnswerSet `json:"answers"`
	PortfolioID string          `json:"portfolio_id"`
}

type strategyRequest struct {
	Answers model.AnswerSet `json:"answers"`
}

type errorResponse struct {
	Error      string `json:"error"`
	QuestionID string `json:"question_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"store":  s.svc.HasStore(),
	})
}

func (s *Server) handleQuestions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"questions": s.svc.Questions()})
}

func (s *Server) handlePortfolios(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"portfolios": s.svc.Portfolios()})
}

func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	p, err := s.svc.Portfolio(chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleCreateAssessment(w http.ResponseWriter, r *http.Request) {
	var req assessmentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	a, err := s.svc.Assess(r.Context(), req.UserID, req.Answers)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (s *Server) handleListAssessments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.AssessmentFilter{
		UserID:    q.Get("user_id"),
		Tolerance: q.Get("risk_tolerance"),
	}
	for name, dst := range map[string]*int{"limit": &filter.Limit, "offset": &filter.Offset} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid "+name)
			return
		}
		*dst = n
	}
	if filter.Tolerance != "" {
		if _, err := model.ParseTolerance(filter.Tolerance); err != nil {
			writeError(w, http.StatusBadRequest, "invalid risk_tolerance")
			return
		}
	}

	list, err := s.svc.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"assessments": list})
}

func (s *Server) handleGetAssessment(w http.ResponseWriter, r *http.Request) {
	a, err := s.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleDeleteAssessment(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.PortfolioID == "" {
		writeError(w, http.StatusBadRequest, "portfolio_id is required")
		return
	}
	p, err := s.svc.Plan(req.Answers, req.PortfolioID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "xlsx" {
		w.Header().Set("Content-Type", xlsxMIME)
		w.Header().Set("Content-Disposition", `attachment; filename="plan_`+p.Summary.PortfolioID+`.xlsx"`)
		if err := export.WritePlan(w, p); err != nil {
			zap.L().Error("api: write plan workbook", zap.Error(err))
		}
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleStrategies(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"strategies": s.svc.Strategies()})
}

func (s *Server) handleRecommendStrategies(w http.ResponseWriter, r *http.Request) {
	var req strategyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	rep, err := s.svc.RecommendStrategies(req.Answers)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// writeServiceError maps advisor errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	var ae *risk.AnswerError
	switch {
	case errors.As(err, &ae):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: ae.Error(), QuestionID: ae.QuestionID})
	case errors.Is(err, catalog.ErrUnknownPortfolio):
		writeError(w, http.StatusNotFound, "unknown portfolio")
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "assessment not found")
	case errors.Is(err, advisor.ErrNoStore):
		writeError(w, http.StatusServiceUnavailable, "assessment history is disabled")
	case errors.Is(err, resilience.ErrCircuitOpen):
		writeError(w, http.StatusServiceUnavailable, "store temporarily unavailable")
	default:
		zap.L().Error("api: request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("api: encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
