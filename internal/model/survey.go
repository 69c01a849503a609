package model

import "time"

// SurveyState is the authoring lifecycle state of a survey.
type SurveyState string

const (
	StateDraft     SurveyState = "draft"
	StatePublished SurveyState = "published"
	StateArchived  SurveyState = "archived"
)

// Survey is a survey template with its embedded question list. Questions are
// ordered by Position; ties keep insertion order.
type Survey struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	OwnerID     string      `json:"ownerId" bson:"ownerId"`
	Title       string      `json:"title" bson:"title"`
	Description string      `json:"description" bson:"description"`
	State       SurveyState `json:"state" bson:"state"`
	Questions   []Question  `json:"questions" bson:"questions"`
	CreatedAt   time.Time   `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt" bson:"updatedAt"`

	// Populated by list queries, not stored.
	ResponseCount int64 `json:"responseCount,omitempty" bson:"-"`
}

// QuestionByID returns the embedded question with the given id, or nil.
func (s *Survey) QuestionByID(id string) *Question {
	for i := range s.Questions {
		if s.Questions[i].ID == id {
			return &s.Questions[i]
		}
	}
	return nil
}
