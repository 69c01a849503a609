package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/sulieman-Albuaeshi/survey-application/internal/cache"
	"github.com/sulieman-Albuaeshi/survey-application/internal/model"
	"github.com/sulieman-Albuaeshi/survey-application/internal/repository"
)

var ErrSurveyNotPublished = errors.New("survey is not accepting responses")

// ResponseService handles response submission and listing.
type ResponseService struct {
	surveyRepo   repository.SurveyRepo
	responseRepo repository.ResponseRepo
	reportCache  cache.ReportCache
	broadcaster  Broadcaster
}

// NewResponseService creates a new response service.
func NewResponseService(surveyRepo repository.SurveyRepo, responseRepo repository.ResponseRepo, reportCache cache.ReportCache) *ResponseService {
	return &ResponseService{
		surveyRepo:   surveyRepo,
		responseRepo: responseRepo,
		reportCache:  reportCache,
	}
}

// SetBroadcaster sets the broadcaster for live dashboard events.
func (s *ResponseService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Submit stores a response for a published survey. Answers referencing
// unknown questions or section headers are dropped rather than rejected: one
// stale answer must not lose a whole submission. Cached analytics for the
// survey are invalidated and watchers are notified.
func (s *ResponseService) Submit(ctx context.Context, response *model.Response) (string, error) {
	survey, err := s.surveyRepo.GetByID(ctx, response.SurveyID)
	if err != nil {
		return "", err
	}
	if survey == nil {
		return "", ErrSurveyNotFound
	}
	if survey.State != model.StatePublished {
		return "", ErrSurveyNotPublished
	}

	kept := response.Answers[:0]
	for _, a := range response.Answers {
		q := survey.QuestionByID(a.QuestionID)
		if q == nil || !q.Answerable() {
			continue
		}
		if a.ID == "" {
			a.ID = uuid.New().String()
		}
		kept = append(kept, a)
	}
	response.Answers = kept

	if response.ID == "" {
		response.ID = uuid.New().String()
	}
	response.Completed = true
	response.CreatedAt = time.Now()

	id, err := s.responseRepo.Create(ctx, response)
	if err != nil {
		return "", err
	}

	if err := s.reportCache.Invalidate(ctx, response.SurveyID); err != nil {
		log.Printf("failed to invalidate report cache for survey %s: %v", response.SurveyID, err)
	}

	if s.broadcaster != nil {
		count, err := s.responseRepo.CountBySurvey(ctx, response.SurveyID)
		if err != nil {
			count = 0
		}
		s.broadcaster.BroadcastToWatchers(response.SurveyID, "response_received", map[string]interface{}{
			"responseId":     id,
			"totalResponses": count,
		})
	}

	return id, nil
}

// ListBySurvey returns a survey's responses most-recent-first with the total
// count.
func (s *ResponseService) ListBySurvey(ctx context.Context, surveyID string) ([]*model.Response, int64, error) {
	responses, err := s.responseRepo.ListBySurvey(ctx, surveyID)
	if err != nil {
		return nil, 0, err
	}
	count, err := s.responseRepo.CountBySurvey(ctx, surveyID)
	if err != nil {
		return nil, 0, err
	}
	return responses, count, nil
}
