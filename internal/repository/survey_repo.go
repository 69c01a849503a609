package repository

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sulieman-Albuaeshi/survey-application/internal/model"
)

// SurveyFilter narrows survey list queries.
type SurveyFilter struct {
	Search string            // matches title or description, case-insensitive
	State  model.SurveyState // empty means any state
}

// SurveyRepo handles MongoDB operations for surveys and their embedded
// questions.
type SurveyRepo interface {
	Create(ctx context.Context, survey *model.Survey) (string, error)
	GetByID(ctx context.Context, id string) (*model.Survey, error)
	ListByOwner(ctx context.Context, ownerID string, filter SurveyFilter) ([]*model.Survey, error)
	Update(ctx context.Context, survey *model.Survey) error
	Delete(ctx context.Context, id string) error
}

type surveyRepo struct {
	collection *mongo.Collection
}

// NewSurveyRepo creates a new survey repository.
func NewSurveyRepo(db *mongo.Database) SurveyRepo {
	return &surveyRepo{
		collection: db.Collection("surveys"),
	}
}

func (r *surveyRepo) Create(ctx context.Context, survey *model.Survey) (string, error) {
	survey.CreatedAt = time.Now()
	survey.UpdatedAt = time.Now()
	if survey.State == "" {
		survey.State = model.StateDraft
	}
	sortQuestions(survey)

	if _, err := r.collection.InsertOne(ctx, survey); err != nil {
		return "", err
	}
	return survey.ID, nil
}

func (r *surveyRepo) GetByID(ctx context.Context, id string) (*model.Survey, error) {
	var survey model.Survey
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&survey)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	sortQuestions(&survey)
	return &survey, nil
}

func (r *surveyRepo) ListByOwner(ctx context.Context, ownerID string, filter SurveyFilter) ([]*model.Survey, error) {
	query := bson.M{"ownerId": ownerID}
	if filter.State != "" {
		query["state"] = filter.State
	}
	if filter.Search != "" {
		pattern := bson.M{"$regex": filter.Search, "$options": "i"}
		query["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var surveys []*model.Survey
	if err := cursor.All(ctx, &surveys); err != nil {
		return nil, err
	}
	for _, s := range surveys {
		sortQuestions(s)
	}
	return surveys, nil
}

func (r *surveyRepo) Update(ctx context.Context, survey *model.Survey) error {
	survey.UpdatedAt = time.Now()
	sortQuestions(survey)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": survey.ID}, survey)
	return err
}

func (r *surveyRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// sortQuestions enforces the position total order; ties keep stored order.
func sortQuestions(s *model.Survey) {
	sort.SliceStable(s.Questions, func(i, j int) bool {
		return s.Questions[i].Position < s.Questions[j].Position
	})
}
