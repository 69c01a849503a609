package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sulieman-Albuaeshi/survey-application/internal/model"
)

// ResponseRepo handles MongoDB operations for responses with their embedded
// answers.
type ResponseRepo interface {
	Create(ctx context.Context, response *model.Response) (string, error)
	ListBySurvey(ctx context.Context, surveyID string) ([]*model.Response, error)
	CountBySurvey(ctx context.Context, surveyID string) (int64, error)
	DeleteBySurvey(ctx context.Context, surveyID string) error
}

type responseRepo struct {
	collection *mongo.Collection
}

// NewResponseRepo creates a new response repository.
func NewResponseRepo(db *mongo.Database) ResponseRepo {
	return &responseRepo{
		collection: db.Collection("responses"),
	}
}

func (r *responseRepo) Create(ctx context.Context, response *model.Response) (string, error) {
	if response.CreatedAt.IsZero() {
		response.CreatedAt = time.Now()
	}
	if _, err := r.collection.InsertOne(ctx, response); err != nil {
		return "", err
	}
	return response.ID, nil
}

// ListBySurvey returns a survey's responses most-recent-first, which is the
// row order the report tables use.
func (r *responseRepo) ListBySurvey(ctx context.Context, surveyID string) ([]*model.Response, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"surveyId": surveyID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []*model.Response
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *responseRepo) CountBySurvey(ctx context.Context, surveyID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"surveyId": surveyID})
}

// DeleteBySurvey removes all of a survey's responses; called when the survey
// itself is deleted.
func (r *responseRepo) DeleteBySurvey(ctx context.Context, surveyID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"surveyId": surveyID})
	return err
}
