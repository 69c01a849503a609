package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sulieman-Albuaeshi/survey-application/internal/model"
	"github.com/sulieman-Albuaeshi/survey-application/internal/repository"
)

var ErrSurveyNotFound = errors.New("survey not found")

// SurveyService handles survey CRUD operations.
type SurveyService struct {
	surveyRepo   repository.SurveyRepo
	responseRepo repository.ResponseRepo
}

// NewSurveyService creates a new survey service.
func NewSurveyService(surveyRepo repository.SurveyRepo, responseRepo repository.ResponseRepo) *SurveyService {
	return &SurveyService{
		surveyRepo:   surveyRepo,
		responseRepo: responseRepo,
	}
}

// Create stores a new survey, assigning ids to the survey and any questions
// that lack one.
func (s *SurveyService) Create(ctx context.Context, survey *model.Survey) (string, error) {
	if survey.ID == "" {
		survey.ID = uuid.New().String()
	}
	for i := range survey.Questions {
		if survey.Questions[i].ID == "" {
			survey.Questions[i].ID = uuid.New().String()
		}
	}
	return s.surveyRepo.Create(ctx, survey)
}

// GetByID retrieves a survey by id.
func (s *SurveyService) GetByID(ctx context.Context, id string) (*model.Survey, error) {
	return s.surveyRepo.GetByID(ctx, id)
}

// List retrieves an owner's surveys, optionally filtered, each annotated with
// its response count. hasResponses filters on that count when non-nil.
func (s *SurveyService) List(ctx context.Context, ownerID string, filter repository.SurveyFilter, hasResponses *bool) ([]*model.Survey, error) {
	surveys, err := s.surveyRepo.ListByOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Survey, 0, len(surveys))
	for _, survey := range surveys {
		count, err := s.responseRepo.CountBySurvey(ctx, survey.ID)
		if err != nil {
			return nil, err
		}
		survey.ResponseCount = count
		if hasResponses != nil {
			if *hasResponses && count == 0 {
				continue
			}
			if !*hasResponses && count > 0 {
				continue
			}
		}
		out = append(out, survey)
	}
	return out, nil
}

// Update replaces an existing survey, assigning ids to new questions.
func (s *SurveyService) Update(ctx context.Context, survey *model.Survey) error {
	for i := range survey.Questions {
		if survey.Questions[i].ID == "" {
			survey.Questions[i].ID = uuid.New().String()
		}
	}
	return s.surveyRepo.Update(ctx, survey)
}

// Delete removes a survey and cascades to its responses.
func (s *SurveyService) Delete(ctx context.Context, id string) error {
	if err := s.responseRepo.DeleteBySurvey(ctx, id); err != nil {
		return err
	}
	return s.surveyRepo.Delete(ctx, id)
}
