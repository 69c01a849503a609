package service

import (
	"context"
	"errors"
	"log"

	"github.com/sulieman-Albuaeshi/survey-application/internal/cache"
	"github.com/sulieman-Albuaeshi/survey-application/internal/model"
	"github.com/sulieman-Albuaeshi/survey-application/internal/repository"
)

var ErrQuestionNotFound = errors.New("question not found")

// AnalyticsService computes report tables, per-question statistics, and the
// correlation matrix for a survey. Each computation reads one snapshot
// (survey + responses fetched once) and is side-effect-free on it; summaries
// are cached in Redis until the next submission invalidates them.
type AnalyticsService struct {
	surveyRepo   repository.SurveyRepo
	responseRepo repository.ResponseRepo
	reportCache  cache.ReportCache
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(surveyRepo repository.SurveyRepo, responseRepo repository.ResponseRepo, reportCache cache.ReportCache) *AnalyticsService {
	return &AnalyticsService{
		surveyRepo:   surveyRepo,
		responseRepo: responseRepo,
		reportCache:  reportCache,
	}
}

// snapshot is the fixed input one analytics computation works from.
type snapshot struct {
	survey    *model.Survey
	responses []*model.Response
}

func (s *AnalyticsService) loadSnapshot(ctx context.Context, surveyID string) (*snapshot, error) {
	survey, err := s.surveyRepo.GetByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}
	responses, err := s.responseRepo.ListBySurvey(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	return &snapshot{survey: survey, responses: responses}, nil
}

// Summary computes (or serves from cache) the per-question statistics
// dashboard for a survey. A survey with zero responses still yields a full
// summary with zero-seeded distributions.
func (s *AnalyticsService) Summary(ctx context.Context, surveyID string) (*model.SurveyAnalytics, error) {
	if cached, err := s.reportCache.GetAnalytics(ctx, surveyID); err != nil {
		log.Printf("report cache read failed for survey %s: %v", surveyID, err)
	} else if cached != nil {
		return cached, nil
	}

	snap, err := s.loadSnapshot(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	analytics := &model.SurveyAnalytics{
		SurveyID:       snap.survey.ID,
		Title:          snap.survey.Title,
		TotalResponses: len(snap.responses),
	}
	for i := range snap.survey.Questions {
		q := &snap.survey.Questions[i]
		stats := QuestionStats(q, CollectAnswers(snap.responses, q.ID))
		if stats != nil {
			analytics.Questions = append(analytics.Questions, *stats)
		}
	}

	if err := s.reportCache.SetAnalytics(ctx, analytics); err != nil {
		log.Printf("report cache write failed for survey %s: %v", surveyID, err)
	}
	return analytics, nil
}

// QuestionChart computes the chart payload for one question.
func (s *AnalyticsService) QuestionChart(ctx context.Context, surveyID, questionID string) (*model.ChartData, error) {
	snap, err := s.loadSnapshot(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	q := snap.survey.QuestionByID(questionID)
	if q == nil || !q.Answerable() {
		return nil, ErrQuestionNotFound
	}
	return ChartData(q, CollectAnswers(snap.responses, q.ID)), nil
}

// Table builds the flat report table in the requested format.
func (s *AnalyticsService) Table(ctx context.Context, surveyID string, format model.TableFormat) (*model.ResponseTable, error) {
	snap, err := s.loadSnapshot(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	return BuildResponseTable(snap.survey, snap.responses, format), nil
}

// SectionTables builds the per-section report tables in the requested format.
func (s *AnalyticsService) SectionTables(ctx context.Context, surveyID string, format model.TableFormat) ([]*model.SectionTable, error) {
	snap, err := s.loadSnapshot(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	return BuildSectionTables(snap.survey, snap.responses, format), nil
}

// Correlation computes (or serves from cache) the Pearson correlation matrix
// over the survey's numeric table. A nil matrix with a nil error is a defined
// "no result" — fewer than two usable columns.
func (s *AnalyticsService) Correlation(ctx context.Context, surveyID string) (*model.CorrelationMatrix, error) {
	if cached, ok, err := s.reportCache.GetCorrelation(ctx, surveyID); err != nil {
		log.Printf("report cache read failed for survey %s: %v", surveyID, err)
	} else if ok {
		return cached, nil
	}

	snap, err := s.loadSnapshot(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	matrix := BuildCorrelationMatrix(BuildResponseTable(snap.survey, snap.responses, model.FormatNumeric))

	if err := s.reportCache.SetCorrelation(ctx, surveyID, matrix); err != nil {
		log.Printf("report cache write failed for survey %s: %v", surveyID, err)
	}
	return matrix, nil
}

// ExportCSV renders the flat or sectioned table as CSV.
func (s *AnalyticsService) ExportCSV(ctx context.Context, surveyID string, format model.TableFormat, bySection bool) ([]byte, error) {
	snap, err := s.loadSnapshot(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if bySection {
		return ExportSectionsCSV(BuildSectionTables(snap.survey, snap.responses, format))
	}
	return ExportTableCSV(BuildResponseTable(snap.survey, snap.responses, format))
}
