package service

import (
	"reflect"
	"testing"

	"github.com/sulieman-Albuaeshi/survey-application/internal/model"
)

func scalarAnswer(v string) *model.Answer {
	return &model.Answer{Data: model.AnswerData{Kind: model.KindScalar, Scalar: v}}
}

func listAnswer(vals ...string) *model.Answer {
	return &model.Answer{Data: model.AnswerData{Kind: model.KindList, List: vals}}
}

func dictAnswer(m map[string]string) *model.Answer {
	return &model.Answer{Data: model.AnswerData{Kind: model.KindDict, Dict: m}}
}

func TestRawAnswerValue(t *testing.T) {
	matrix := &model.Question{
		Type:    model.QuestionTypeMatrix,
		Rows:    []string{"Display", "Battery"},
		Columns: []string{"Poor", "Good"},
	}
	rank := &model.Question{
		Type:    model.QuestionTypeRank,
		Options: []string{"Speed", "UI Design", "Security"},
	}
	text := &model.Question{Type: model.QuestionTypeText}

	tests := []struct {
		name string
		q    *model.Question
		a    *model.Answer
		want string
	}{
		{"nil answer", text, nil, "-"},
		{"scalar verbatim", text, scalarAnswer("Loved it"), "Loved it"},
		{"empty scalar", text, scalarAnswer(""), "-"},
		{"list joined", text, listAnswer("A", "C"), "A | C"},
		{"empty list", text, listAnswer(), "-"},
		{
			"matrix dict in row order",
			matrix,
			dictAnswer(map[string]string{"Battery": "Poor", "Display": "Good"}),
			"Display: 'Good' | Battery: 'Poor'",
		},
		{
			"matrix legacy keys",
			matrix,
			dictAnswer(map[string]string{"Display_row1": "Good", "Battery_row2": "Poor"}),
			"Display: 'Good' | Battery: 'Poor'",
		},
		{
			"rank dict in option order",
			rank,
			dictAnswer(map[string]string{"Security": "3", "Speed": "1", "UI Design": "2"}),
			"Speed: '1' | UI Design: '2' | Security: '3'",
		},
		{
			"undeclared keys dropped",
			rank,
			dictAnswer(map[string]string{"Speed": "1", "Bogus": "9"}),
			"Speed: '1'",
		},
		{"empty dict", matrix, dictAnswer(map[string]string{}), "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RawAnswerValue(tt.q, tt.a); got != tt.want {
				t.Fatalf("RawAnswerValue = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIndicatorEncoding(t *testing.T) {
	q := &model.Question{
		Type:    model.QuestionTypeMultiChoice,
		Options: []string{"Camera", "Battery Saver", "Face Unlock"},
	}

	got := NumericAnswerValues(q, listAnswer("Camera", "Face Unlock"))
	want := []string{"1", "0", "1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("multi-choice indicators = %v, want %v", got, want)
	}

	// Likert answers are scalar but use the same membership encoding.
	likert := &model.Question{
		Type:    model.QuestionTypeLikert,
		Options: []string{"Disagree", "Neutral", "Agree"},
	}
	got = NumericAnswerValues(likert, scalarAnswer("Agree"))
	want = []string{"0", "0", "1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("likert indicators = %v, want %v", got, want)
	}

	// Unknown selections count as not selected.
	got = NumericAnswerValues(likert, scalarAnswer("Maybe"))
	want = []string{"0", "0", "0"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unknown selection = %v, want %v", got, want)
	}
}

func TestMatrixNumericValuesRowMajor(t *testing.T) {
	q := &model.Question{
		Type:    model.QuestionTypeMatrix,
		Rows:    []string{"Display", "Battery"},
		Columns: []string{"Poor", "Fair", "Good"},
	}

	a := dictAnswer(map[string]string{"Display": "Good", "Battery": "Poor"})
	got := NumericAnswerValues(q, a)
	want := []string{"0", "0", "1", "1", "0", "0"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("matrix cells = %v, want %v", got, want)
	}

	// Legacy "{row}_row{n}" keys resolve; the plain label wins when both exist.
	a = dictAnswer(map[string]string{"Display_row1": "Fair", "Battery": "Good", "Battery_row2": "Poor"})
	got = NumericAnswerValues(q, a)
	want = []string{"0", "1", "0", "0", "0", "1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("legacy-key matrix cells = %v, want %v", got, want)
	}

	// An unanswered row contributes all-zero cells.
	a = dictAnswer(map[string]string{"Display": "Poor"})
	got = NumericAnswerValues(q, a)
	want = []string{"1", "0", "0", "0", "0", "0"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("partial matrix cells = %v, want %v", got, want)
	}
}

func TestRatingAndTextValues(t *testing.T) {
	rating := &model.Question{Type: model.QuestionTypeRating, RangeMin: 1, RangeMax: 5}

	if got := NumericAnswerValues(rating, scalarAnswer("4")); !reflect.DeepEqual(got, []string{"4"}) {
		t.Fatalf("rating value = %v", got)
	}
	if got := NumericAnswerValues(rating, scalarAnswer("great")); !reflect.DeepEqual(got, []string{""}) {
		t.Fatalf("non-numeric rating = %v, want absent", got)
	}
	if got := NumericAnswerValues(rating, nil); !reflect.DeepEqual(got, []string{""}) {
		t.Fatalf("nil rating = %v, want absent", got)
	}

	text := &model.Question{Type: model.QuestionTypeText}
	if got := NumericAnswerValues(text, scalarAnswer("fine")); !reflect.DeepEqual(got, []string{"fine"}) {
		t.Fatalf("text value = %v", got)
	}
}

func TestRankValues(t *testing.T) {
	q := &model.Question{
		Type:    model.QuestionTypeRank,
		Options: []string{"Speed", "UI Design", "Security"},
	}

	got := NumericAnswerValues(q, dictAnswer(map[string]string{"Speed": "1", "Security": "3"}))
	want := []string{"1", "", "3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("rank values = %v, want %v", got, want)
	}
}

func TestNumericColumnAlignment(t *testing.T) {
	// Every variant must emit exactly NumericColumnCount cells for any
	// payload, including a missing one.
	questions := []*model.Question{
		{Type: model.QuestionTypeMultiChoice, Options: []string{"A", "B", "C"}},
		{Type: model.QuestionTypeLikert, Options: []string{"No", "Yes"}},
		{Type: model.QuestionTypeMatrix, Rows: []string{"r1", "r2"}, Columns: []string{"c1", "c2", "c3"}},
		{Type: model.QuestionTypeRating, RangeMin: 1, RangeMax: 10},
		{Type: model.QuestionTypeRank, Options: []string{"X", "Y"}},
		{Type: model.QuestionTypeText},
	}

	for _, q := range questions {
		if got := len(NumericAnswerValues(q, nil)); got != q.NumericColumnCount() {
			t.Fatalf("%s: %d cells for nil answer, want %d", q.Type, got, q.NumericColumnCount())
		}
		if got := len(NumericAnswerValues(q, scalarAnswer("junk"))); got != q.NumericColumnCount() {
			t.Fatalf("%s: %d cells for wrong-shaped answer, want %d", q.Type, got, q.NumericColumnCount())
		}
	}
}
