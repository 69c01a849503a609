package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// AnswerKind tags the runtime shape of an answer payload.
type AnswerKind string

const (
	KindNone   AnswerKind = "none"
	KindScalar AnswerKind = "scalar"
	KindList   AnswerKind = "list"
	KindDict   AnswerKind = "dict"
)

// AnswerData is the variant-typed answer payload: a scalar string (single
// choice, rating, text), a list of strings (multi-select), or a string map
// (matrix row->column, rank option->score). Absent answers are represented by
// the absence of the Answer record, not by an empty payload.
type AnswerData struct {
	Kind   AnswerKind        `json:"kind" bson:"kind"`
	Scalar string            `json:"scalar,omitempty" bson:"scalar,omitempty"`
	List   []string          `json:"list,omitempty" bson:"list,omitempty"`
	Dict   map[string]string `json:"dict,omitempty" bson:"dict,omitempty"`
}

// UnmarshalJSON accepts the wire shapes clients actually send: a JSON string,
// number, array, object, or null. Numbers and mixed-type elements are coerced
// to strings; anything unrecognized decodes to KindNone rather than erroring,
// since one malformed answer must not fail a whole submission.
func (d *AnswerData) UnmarshalJSON(data []byte) error {
	var raw interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	*d = CoerceAnswerData(raw)
	return nil
}

// MarshalJSON renders the payload back in its wire shape.
func (d AnswerData) MarshalJSON() ([]byte, error) {
	switch d.Kind {
	case KindScalar:
		return json.Marshal(d.Scalar)
	case KindList:
		return json.Marshal(d.List)
	case KindDict:
		return json.Marshal(d.Dict)
	default:
		return []byte("null"), nil
	}
}

// CoerceAnswerData converts an arbitrary decoded JSON value into an
// AnswerData, coercing scalars to strings and dropping non-scalar members.
func CoerceAnswerData(raw interface{}) AnswerData {
	switch v := raw.(type) {
	case nil:
		return AnswerData{Kind: KindNone}
	case string:
		return AnswerData{Kind: KindScalar, Scalar: v}
	case json.Number:
		return AnswerData{Kind: KindScalar, Scalar: v.String()}
	case bool:
		return AnswerData{Kind: KindScalar, Scalar: fmt.Sprintf("%t", v)}
	case []interface{}:
		list := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := scalarString(e); ok {
				list = append(list, s)
			}
		}
		return AnswerData{Kind: KindList, List: list}
	case map[string]interface{}:
		dict := make(map[string]string, len(v))
		for k, e := range v {
			if s, ok := scalarString(e); ok {
				dict[k] = s
			}
		}
		return AnswerData{Kind: KindDict, Dict: dict}
	default:
		return AnswerData{Kind: KindNone}
	}
}

func scalarString(v interface{}) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case json.Number:
		return s.String(), true
	case float64:
		return trimFloat(s), true
	case bool:
		return fmt.Sprintf("%t", s), true
	default:
		return "", false
	}
}

func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}

// Scalars returns the payload as a set of selected scalar values, which is
// how indicator encoding tests membership: a scalar payload is a one-element
// set, a list payload is the whole list. Dict payloads have no scalar view.
func (d AnswerData) Scalars() []string {
	switch d.Kind {
	case KindScalar:
		if d.Scalar == "" {
			return nil
		}
		return []string{d.Scalar}
	case KindList:
		return d.List
	default:
		return nil
	}
}

// Answer links a response to one question with its payload.
type Answer struct {
	ID         string     `json:"id" bson:"id"`
	QuestionID string     `json:"questionId" bson:"questionId"`
	Data       AnswerData `json:"data" bson:"data"`
}

// Response is one respondent's submission for a survey. Respondent is empty
// for anonymous submissions. Answers keep submission order.
type Response struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	SurveyID   string    `json:"surveyId" bson:"surveyId"`
	Respondent string    `json:"respondent,omitempty" bson:"respondent,omitempty"`
	Completed  bool      `json:"completed" bson:"completed"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
	Answers    []Answer  `json:"answers" bson:"answers"`
}

// AnswersByQuestion pre-indexes answers by question id for O(1) lookup while
// building table rows. The first answer wins on duplicates.
func (r *Response) AnswersByQuestion() map[string]*Answer {
	m := make(map[string]*Answer, len(r.Answers))
	for i := range r.Answers {
		a := &r.Answers[i]
		if _, ok := m[a.QuestionID]; !ok {
			m[a.QuestionID] = a
		}
	}
	return m
}
