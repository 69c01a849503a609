package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sulieman-Albuaeshi/survey-application/internal/config"
	"github.com/sulieman-Albuaeshi/survey-application/internal/model"
)

// Seeds one demo survey covering every question variant, plus a handful of
// responses so the analytics endpoints have something to chew on.
func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDatabase)
	surveyColl := db.Collection("surveys")
	responseColl := db.Collection("responses")

	operatorID := "op_" + uuid.New().String()[:8]

	qSection1 := model.Question{ID: uuid.New().String(), Type: model.QuestionTypeSection, Label: "About You", Position: 0}
	qChoice := model.Question{
		ID:            uuid.New().String(),
		Type:          model.QuestionTypeMultiChoice,
		Label:         "Which features do you use?",
		Position:      1,
		AllowMultiple: true,
		Options:       []string{"Camera", "Battery Saver", "Face Unlock"},
	}
	qLikert := model.Question{
		ID:       uuid.New().String(),
		Type:     model.QuestionTypeLikert,
		Label:    "The device feels fast in daily use.",
		Position: 2,
		Options:  []string{"Strongly Disagree", "Disagree", "Neutral", "Agree", "Strongly Agree"},
	}
	qSection2 := model.Question{ID: uuid.New().String(), Type: model.QuestionTypeSection, Label: "Details", Position: 3}
	qMatrix := model.Question{
		ID:       uuid.New().String(),
		Type:     model.QuestionTypeMatrix,
		Label:    "Rate each aspect",
		Position: 4,
		Rows:     []string{"Display", "Battery", "Camera"},
		Columns:  []string{"Poor", "Okay", "Great"},
	}
	qRating := model.Question{
		ID:       uuid.New().String(),
		Type:     model.QuestionTypeRating,
		Label:    "Overall satisfaction",
		Position: 5,
		RangeMin: 1,
		RangeMax: 5,
	}
	qRank := model.Question{
		ID:       uuid.New().String(),
		Type:     model.QuestionTypeRank,
		Label:    "Rank what matters most",
		Position: 6,
		Options:  []string{"Price", "Performance", "Design"},
	}
	qText := model.Question{
		ID:           uuid.New().String(),
		Type:         model.QuestionTypeText,
		Label:        "Anything else we should know?",
		Position:     7,
		IsLongAnswer: true,
	}

	survey := model.Survey{
		ID:          uuid.New().String(),
		OwnerID:     operatorID,
		Title:       "Smartphone Launch Feedback",
		Description: "Post-launch satisfaction survey for the new device.",
		State:       model.StatePublished,
		Questions:   []model.Question{qSection1, qChoice, qLikert, qSection2, qMatrix, qRating, qRank, qText},
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if _, err := surveyColl.InsertOne(ctx, survey); err != nil {
		log.Fatalf("Failed to insert survey: %v", err)
	}

	scalar := func(s string) model.AnswerData {
		return model.AnswerData{Kind: model.KindScalar, Scalar: s}
	}
	list := func(vals ...string) model.AnswerData {
		return model.AnswerData{Kind: model.KindList, List: vals}
	}
	dict := func(m map[string]string) model.AnswerData {
		return model.AnswerData{Kind: model.KindDict, Dict: m}
	}

	responses := []model.Response{
		{
			Respondent: "Lina",
			Answers: []model.Answer{
				{QuestionID: qChoice.ID, Data: list("Camera", "Face Unlock")},
				{QuestionID: qLikert.ID, Data: scalar("Agree")},
				{QuestionID: qMatrix.ID, Data: dict(map[string]string{"Display": "Great", "Battery": "Okay", "Camera": "Great"})},
				{QuestionID: qRating.ID, Data: scalar("5")},
				{QuestionID: qRank.ID, Data: dict(map[string]string{"Price": "2", "Performance": "1", "Design": "3"})},
				{QuestionID: qText.ID, Data: scalar("Battery drains overnight.")},
			},
		},
		{
			// anonymous
			Answers: []model.Answer{
				{QuestionID: qChoice.ID, Data: list("Battery Saver")},
				{QuestionID: qLikert.ID, Data: scalar("Strongly Agree")},
				{QuestionID: qMatrix.ID, Data: dict(map[string]string{"Display": "Great", "Battery": "Poor", "Camera": "Okay"})},
				{QuestionID: qRating.ID, Data: scalar("4")},
				{QuestionID: qRank.ID, Data: dict(map[string]string{"Price": "1", "Performance": "2", "Design": "3"})},
			},
		},
		{
			Respondent: "Omar",
			Answers: []model.Answer{
				{QuestionID: qChoice.ID, Data: list("Camera")},
				{QuestionID: qLikert.ID, Data: scalar("Neutral")},
				{QuestionID: qMatrix.ID, Data: dict(map[string]string{"Display": "Okay", "Battery": "Okay", "Camera": "Great"})},
				{QuestionID: qRating.ID, Data: scalar("3")},
				{QuestionID: qRank.ID, Data: dict(map[string]string{"Price": "1", "Performance": "3", "Design": "2"})},
				{QuestionID: qText.ID, Data: scalar("Great value for the price.")},
			},
		},
	}

	for i := range responses {
		r := &responses[i]
		r.ID = uuid.New().String()
		r.SurveyID = survey.ID
		r.Completed = true
		r.CreatedAt = time.Now().Add(time.Duration(i) * time.Minute)
		for j := range r.Answers {
			r.Answers[j].ID = uuid.New().String()
		}
		if _, err := responseColl.InsertOne(ctx, r); err != nil {
			log.Fatalf("Failed to insert response: %v", err)
		}
	}

	fmt.Println("Seeded survey:", survey.ID)
	fmt.Println("Owner:", operatorID)
	fmt.Println("Responses:", len(responses))
	os.Exit(0)
}
