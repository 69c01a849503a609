package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sulieman-Albuaeshi/survey-application/internal/model"
	"github.com/sulieman-Albuaeshi/survey-application/internal/repository"
	"github.com/sulieman-Albuaeshi/survey-application/internal/service"
	"github.com/sulieman-Albuaeshi/survey-application/internal/transport/rest/middleware"
)

// SurveyHandler handles survey endpoints
type SurveyHandler struct {
	surveySvc *service.SurveyService
}

// NewSurveyHandler creates a new survey handler
func NewSurveyHandler(surveySvc *service.SurveyService) *SurveyHandler {
	return &SurveyHandler{surveySvc: surveySvc}
}

// SurveyRequest is the request body for creating or updating a survey
type SurveyRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	State       model.SurveyState `json:"state"`
	Questions   []model.Question  `json:"questions"`
}

// Create handles POST /v1/surveys
func (h *SurveyHandler) Create(w http.ResponseWriter, r *http.Request) {
	operatorID := middleware.GetOperatorID(r.Context())
	if operatorID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req SurveyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state := req.State
	if state == "" {
		state = model.StateDraft
	}

	survey := &model.Survey{
		OwnerID:     operatorID,
		Title:       req.Title,
		Description: req.Description,
		State:       state,
		Questions:   req.Questions,
	}

	id, err := h.surveySvc.Create(r.Context(), survey)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"surveyId": id})
}

// List handles GET /v1/surveys
func (h *SurveyHandler) List(w http.ResponseWriter, r *http.Request) {
	operatorID := middleware.GetOperatorID(r.Context())
	if operatorID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	filter := repository.SurveyFilter{
		Search: r.URL.Query().Get("search"),
		State:  model.SurveyState(r.URL.Query().Get("state")),
	}

	var hasResponses *bool
	switch r.URL.Query().Get("has_responses") {
	case "true":
		v := true
		hasResponses = &v
	case "false":
		v := false
		hasResponses = &v
	}

	surveys, err := h.surveySvc.List(r.Context(), operatorID, filter, hasResponses)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"surveys": surveys,
		"count":   len(surveys),
	})
}

// Get handles GET /v1/surveys/{surveyId}
func (h *SurveyHandler) Get(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	survey, err := h.surveySvc.GetByID(r.Context(), surveyID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if survey == nil {
		writeError(w, http.StatusNotFound, "survey not found")
		return
	}

	writeJSON(w, http.StatusOK, survey)
}

// Form handles GET /v1/surveys/{surveyId}/form — the public respondent view.
// Only published surveys are served.
func (h *SurveyHandler) Form(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	survey, err := h.surveySvc.GetByID(r.Context(), surveyID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if survey == nil || survey.State != model.StatePublished {
		writeError(w, http.StatusNotFound, "survey not found")
		return
	}

	writeJSON(w, http.StatusOK, survey)
}

// Update handles PUT /v1/surveys/{surveyId}
func (h *SurveyHandler) Update(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]
	operatorID := middleware.GetOperatorID(r.Context())
	if operatorID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	existing, err := h.surveySvc.GetByID(r.Context(), surveyID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "survey not found")
		return
	}

	var req SurveyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	existing.Title = req.Title
	existing.Description = req.Description
	if req.State != "" {
		existing.State = req.State
	}
	existing.Questions = req.Questions

	if err := h.surveySvc.Update(r.Context(), existing); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, existing)
}

// Delete handles DELETE /v1/surveys/{surveyId}
func (h *SurveyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]
	operatorID := middleware.GetOperatorID(r.Context())
	if operatorID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	existing, err := h.surveySvc.GetByID(r.Context(), surveyID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "survey not found")
		return
	}

	if err := h.surveySvc.Delete(r.Context(), surveyID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
