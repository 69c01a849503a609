package model

import "fmt"

// QuestionType identifies one of the closed set of question variants.
type QuestionType string

const (
	QuestionTypeMultiChoice QuestionType = "MULTI_CHOICE" // One or more options from a fixed list
	QuestionTypeLikert      QuestionType = "LIKERT"       // Ordered agreement scale
	QuestionTypeMatrix      QuestionType = "MATRIX"       // Row x column grid, one column per row
	QuestionTypeRating      QuestionType = "RATING"       // Integer score within [RangeMin, RangeMax]
	QuestionTypeRank        QuestionType = "RANK"         // Rank/score per option
	QuestionTypeText        QuestionType = "TEXT"         // Free text
	QuestionTypeSection     QuestionType = "SECTION"      // Section header marker, never answered
)

// AnswerShape is the payload shape a variant expects.
type AnswerShape string

const (
	ShapeScalar AnswerShape = "scalar"
	ShapeList   AnswerShape = "list"
	ShapeDict   AnswerShape = "dict"
	ShapeNone   AnswerShape = "none"
)

// typeInfo is one row of the static variant registry.
type typeInfo struct {
	DisplayName string
	Shape       AnswerShape
	Answerable  bool
}

// questionTypes is the variant registry. The set is fixed; dispatch happens
// by switching on QuestionType, never by reflection.
var questionTypes = map[QuestionType]typeInfo{
	QuestionTypeMultiChoice: {DisplayName: "Multi-Choice Question", Shape: ShapeList, Answerable: true},
	QuestionTypeLikert:      {DisplayName: "Likert Question", Shape: ShapeScalar, Answerable: true},
	QuestionTypeMatrix:      {DisplayName: "Matrix Question", Shape: ShapeDict, Answerable: true},
	QuestionTypeRating:      {DisplayName: "Rating Question", Shape: ShapeScalar, Answerable: true},
	QuestionTypeRank:        {DisplayName: "Ranking Question", Shape: ShapeDict, Answerable: true},
	QuestionTypeText:        {DisplayName: "Text Question", Shape: ShapeScalar, Answerable: true},
	QuestionTypeSection:     {DisplayName: "Section Header", Shape: ShapeNone, Answerable: false},
}

// AvailableTypeNames lists the display names of all registered variants in a
// fixed order, for building the authoring type menu.
func AvailableTypeNames() []string {
	order := []QuestionType{
		QuestionTypeMultiChoice,
		QuestionTypeLikert,
		QuestionTypeMatrix,
		QuestionTypeRating,
		QuestionTypeRank,
		QuestionTypeText,
		QuestionTypeSection,
	}
	names := make([]string, 0, len(order))
	for _, t := range order {
		names = append(names, questionTypes[t].DisplayName)
	}
	return names
}

// Question is a survey question. Exactly one variant applies, tagged by Type;
// the config fields beyond the shared ones are meaningful only for the
// variants noted on each field.
type Question struct {
	ID       string       `json:"id" bson:"id"`
	Type     QuestionType `json:"type" bson:"type"`
	Label    string       `json:"label" bson:"label"`
	HelpText string       `json:"helpText,omitempty" bson:"helpText,omitempty"`
	Required bool         `json:"required" bson:"required"`
	Position int          `json:"position" bson:"position"`

	// MULTI_CHOICE, LIKERT, RANK
	Options []string `json:"options,omitempty" bson:"options,omitempty"`
	// MULTI_CHOICE
	AllowMultiple bool `json:"allowMultiple,omitempty" bson:"allowMultiple,omitempty"`
	// MATRIX
	Rows    []string `json:"rows,omitempty" bson:"rows,omitempty"`
	Columns []string `json:"columns,omitempty" bson:"columns,omitempty"`
	// RATING
	RangeMin int `json:"rangeMin,omitempty" bson:"rangeMin,omitempty"`
	RangeMax int `json:"rangeMax,omitempty" bson:"rangeMax,omitempty"`
	// TEXT
	IsLongAnswer bool `json:"isLongAnswer,omitempty" bson:"isLongAnswer,omitempty"`
	MinLength    int  `json:"minLength,omitempty" bson:"minLength,omitempty"`
	MaxLength    int  `json:"maxLength,omitempty" bson:"maxLength,omitempty"`
}

// DisplayName returns the registry display name for the question's variant.
func (q *Question) DisplayName() string {
	return questionTypes[q.Type].DisplayName
}

// ExpectedShape returns the payload shape the variant expects.
func (q *Question) ExpectedShape() AnswerShape {
	info, ok := questionTypes[q.Type]
	if !ok {
		return ShapeNone
	}
	return info.Shape
}

// Answerable reports whether the variant collects answers. Section headers do
// not and are excluded from all tabular output.
func (q *Question) Answerable() bool {
	return questionTypes[q.Type].Answerable
}

// NumericColumnCount is how many numeric columns one answer to this question
// expands to. Section headers contribute zero.
func (q *Question) NumericColumnCount() int {
	switch q.Type {
	case QuestionTypeMultiChoice, QuestionTypeLikert, QuestionTypeRank:
		return len(q.Options)
	case QuestionTypeMatrix:
		return len(q.Rows) * len(q.Columns)
	case QuestionTypeRating, QuestionTypeText:
		return 1
	default:
		return 0
	}
}

// ColumnLabels returns one header string per numeric column, in the exact
// order the normalizer emits cells. Matrix labels are row-major: the outer
// loop walks rows, the inner loop walks columns. Downstream consumers
// (export, correlation) rely on this ordering.
func (q *Question) ColumnLabels() []string {
	switch q.Type {
	case QuestionTypeMultiChoice, QuestionTypeLikert, QuestionTypeRank:
		labels := make([]string, 0, len(q.Options))
		for _, opt := range q.Options {
			labels = append(labels, fmt.Sprintf("%s [%s]", q.Label, opt))
		}
		return labels
	case QuestionTypeMatrix:
		labels := make([]string, 0, len(q.Rows)*len(q.Columns))
		for _, row := range q.Rows {
			for _, col := range q.Columns {
				labels = append(labels, fmt.Sprintf("%s [%s - %s]", q.Label, row, col))
			}
		}
		return labels
	case QuestionTypeRating, QuestionTypeText:
		return []string{q.Label}
	default:
		return nil
	}
}

// MatrixKeyCandidates returns the accepted answer-payload keys for the matrix
// row at index i (0-based), in precedence order. Historical responses used a
// "{row}_row{n}" suffix with a 1-based row number; the plain row label wins
// when both are present.
func (q *Question) MatrixKeyCandidates(i int) []string {
	if i < 0 || i >= len(q.Rows) {
		return nil
	}
	row := q.Rows[i]
	return []string{row, fmt.Sprintf("%s_row%d", row, i+1)}
}
