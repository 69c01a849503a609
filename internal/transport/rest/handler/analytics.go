package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sulieman-Albuaeshi/survey-application/internal/model"
	"github.com/sulieman-Albuaeshi/survey-application/internal/service"
)

// AnalyticsHandler serves computed reports: per-question statistics, report
// tables, the correlation matrix, and CSV export.
type AnalyticsHandler struct {
	analyticsSvc *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsSvc *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsSvc: analyticsSvc}
}

// Summary handles GET /v1/surveys/{surveyId}/analytics
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	analytics, err := h.analyticsSvc.Summary(r.Context(), surveyID)
	if err != nil {
		writeAnalyticsError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, analytics)
}

// QuestionChart handles GET /v1/surveys/{surveyId}/analytics/questions/{questionId}/chart
func (h *AnalyticsHandler) QuestionChart(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	chart, err := h.analyticsSvc.QuestionChart(r.Context(), vars["surveyId"], vars["questionId"])
	if err != nil {
		writeAnalyticsError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, chart)
}

// Table handles GET /v1/surveys/{surveyId}/table?format=raw|numeric&by_section=true
func (h *AnalyticsHandler) Table(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	format, ok := parseFormat(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "format must be raw or numeric")
		return
	}

	if r.URL.Query().Get("by_section") == "true" {
		tables, err := h.analyticsSvc.SectionTables(r.Context(), surveyID, format)
		if err != nil {
			writeAnalyticsError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"sections": tables})
		return
	}

	table, err := h.analyticsSvc.Table(r.Context(), surveyID, format)
	if err != nil {
		writeAnalyticsError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, table)
}

// Correlation handles GET /v1/surveys/{surveyId}/correlation
func (h *AnalyticsHandler) Correlation(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	matrix, err := h.analyticsSvc.Correlation(r.Context(), surveyID)
	if err != nil {
		writeAnalyticsError(w, err)
		return
	}
	if matrix == nil {
		// Fewer than two numeric columns: a defined empty result.
		writeJSON(w, http.StatusOK, map[string]interface{}{"matrix": nil})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"matrix": matrix})
}

// Export handles GET /v1/surveys/{surveyId}/export?format=raw|numeric&by_section=true
func (h *AnalyticsHandler) Export(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	format, ok := parseFormat(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "format must be raw or numeric")
		return
	}
	bySection := r.URL.Query().Get("by_section") == "true"

	data, err := h.analyticsSvc.ExportCSV(r.Context(), surveyID, format, bySection)
	if err != nil {
		writeAnalyticsError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func parseFormat(r *http.Request) (model.TableFormat, bool) {
	switch r.URL.Query().Get("format") {
	case "", "raw":
		return model.FormatRaw, true
	case "numeric":
		return model.FormatNumeric, true
	default:
		return "", false
	}
}

func writeAnalyticsError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSurveyNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrQuestionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
