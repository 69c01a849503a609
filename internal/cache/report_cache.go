package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sulieman-Albuaeshi/survey-application/internal/model"
)

// ReportCache handles Redis caching of computed analytics so dashboards
// don't recompute on every poll. Entries are invalidated whenever a new
// response arrives.
type ReportCache interface {
	GetAnalytics(ctx context.Context, surveyID string) (*model.SurveyAnalytics, error)
	SetAnalytics(ctx context.Context, analytics *model.SurveyAnalytics) error
	GetCorrelation(ctx context.Context, surveyID string) (*model.CorrelationMatrix, bool, error)
	SetCorrelation(ctx context.Context, surveyID string, matrix *model.CorrelationMatrix) error
	Invalidate(ctx context.Context, surveyID string) error
}

type reportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache creates a new report cache.
func NewReportCache(client *redis.Client) ReportCache {
	return &reportCache{
		client: client,
		ttl:    15 * time.Minute,
	}
}

func (c *reportCache) analyticsKey(surveyID string) string {
	return fmt.Sprintf("survey:%s:analytics", surveyID)
}

func (c *reportCache) correlationKey(surveyID string) string {
	return fmt.Sprintf("survey:%s:correlation", surveyID)
}

func (c *reportCache) GetAnalytics(ctx context.Context, surveyID string) (*model.SurveyAnalytics, error) {
	data, err := c.client.Get(ctx, c.analyticsKey(surveyID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var analytics model.SurveyAnalytics
	if err := json.Unmarshal([]byte(data), &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}

func (c *reportCache) SetAnalytics(ctx context.Context, analytics *model.SurveyAnalytics) error {
	data, err := json.Marshal(analytics)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.analyticsKey(analytics.SurveyID), data, c.ttl).Err()
}

// GetCorrelation distinguishes a cache miss from a cached "no result": the
// second return is true when any value (possibly nil) was cached.
func (c *reportCache) GetCorrelation(ctx context.Context, surveyID string) (*model.CorrelationMatrix, bool, error) {
	data, err := c.client.Get(ctx, c.correlationKey(surveyID)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if data == "null" {
		return nil, true, nil
	}
	var matrix model.CorrelationMatrix
	if err := json.Unmarshal([]byte(data), &matrix); err != nil {
		return nil, false, err
	}
	return &matrix, true, nil
}

func (c *reportCache) SetCorrelation(ctx context.Context, surveyID string, matrix *model.CorrelationMatrix) error {
	data, err := json.Marshal(matrix)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.correlationKey(surveyID), data, c.ttl).Err()
}

func (c *reportCache) Invalidate(ctx context.Context, surveyID string) error {
	return c.client.Del(ctx, c.analyticsKey(surveyID), c.correlationKey(surveyID)).Err()
}
