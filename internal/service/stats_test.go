package service

import (
	"reflect"
	"testing"

	"github.com/sulieman-Albuaeshi/survey-application/internal/model"
)

var agreementScale = []string{"Strongly Disagree", "Disagree", "Neutral", "Agree", "Strongly Agree"}

// answersFromIndices maps 1-based option indices onto scale labels.
func answersFromIndices(options []string, indices []int) []*model.Answer {
	answers := make([]*model.Answer, 0, len(indices))
	for _, idx := range indices {
		answers = append(answers, scalarAnswer(options[idx-1]))
	}
	return answers
}

func TestLikertStatistics(t *testing.T) {
	q := &model.Question{
		ID:      "q1",
		Type:    model.QuestionTypeLikert,
		Label:   "Overall satisfaction",
		Options: agreementScale,
	}
	indices := []int{2, 3, 4, 4, 5, 2, 3, 4, 4, 5, 2, 3, 4, 4, 5}
	answers := answersFromIndices(agreementScale, indices)

	stats := QuestionStats(q, answers)
	if stats == nil {
		t.Fatal("stats is nil")
	}
	if stats.Mean != 3.6 {
		t.Fatalf("mean = %v, want 3.6", stats.Mean)
	}
	if stats.Median != 4 {
		t.Fatalf("median = %v, want 4", stats.Median)
	}
	if stats.Interpretation != "Agree" {
		t.Fatalf("interpretation = %q, want Agree", stats.Interpretation)
	}
	if stats.TTest == nil {
		t.Fatal("t-test is nil")
	}
	if stats.TTest.T != 2.2014 {
		t.Fatalf("t = %v, want 2.2014", stats.TTest.T)
	}
	if stats.TTest.DF != 14 {
		t.Fatalf("df = %d, want 14", stats.TTest.DF)
	}
	if stats.TTest.Midpoint != 3 {
		t.Fatalf("midpoint = %v, want 3", stats.TTest.Midpoint)
	}
	if stats.TTest.PValue <= 0 || stats.TTest.PValue >= 0.05 {
		t.Fatalf("two-sided p = %v, want significant at 0.05", stats.TTest.PValue)
	}
}

func TestLikertDistributionZeroSeeded(t *testing.T) {
	q := &model.Question{Type: model.QuestionTypeLikert, Options: agreementScale}
	answers := answersFromIndices(agreementScale, []int{4, 4, 5})

	stats := QuestionStats(q, answers)
	want := []model.DistributionEntry{
		{Value: "Strongly Disagree", Count: 0},
		{Value: "Disagree", Count: 0},
		{Value: "Neutral", Count: 0},
		{Value: "Agree", Count: 2},
		{Value: "Strongly Agree", Count: 1},
	}
	if !reflect.DeepEqual(stats.Distribution, want) {
		t.Fatalf("distribution = %v, want %v", stats.Distribution, want)
	}
}

func TestRatingStatistics(t *testing.T) {
	q := &model.Question{
		Type:     model.QuestionTypeRating,
		Label:    "Stars",
		RangeMin: 1,
		RangeMax: 5,
	}
	var answers []*model.Answer
	for _, s := range []string{"2", "3", "4", "4", "5", "2", "3", "4", "4", "5", "2", "3", "4", "4", "5"} {
		answers = append(answers, scalarAnswer(s))
	}

	stats := QuestionStats(q, answers)
	if stats.Mean != 3.6 {
		t.Fatalf("mean = %v, want 3.6", stats.Mean)
	}
	if stats.Median != 4 {
		t.Fatalf("median = %v, want 4", stats.Median)
	}
	// The numeric scale's own labels interpret the mean.
	if stats.Interpretation != "4" {
		t.Fatalf("interpretation = %q, want 4", stats.Interpretation)
	}
}

func TestMatrixRowStatistics(t *testing.T) {
	q := &model.Question{
		Type:    model.QuestionTypeMatrix,
		Rows:    []string{"Customer Support", "Product Quality"},
		Columns: []string{"Poor", "Fair", "Good", "Excellent"},
	}
	answers := []*model.Answer{
		dictAnswer(map[string]string{"Customer Support": "Excellent", "Product Quality": "Fair"}),
		dictAnswer(map[string]string{"Customer Support": "Good", "Product Quality": "Poor"}),
		dictAnswer(map[string]string{"Customer Support": "Excellent", "Product Quality": "Fair"}),
	}

	stats := QuestionStats(q, answers)
	if len(stats.RowStats) != 2 {
		t.Fatalf("got %d row stats, want 2", len(stats.RowStats))
	}

	support := stats.RowStats[0]
	if support.Row != "Customer Support" || support.Mean != 3.67 || support.Median != 4 {
		t.Fatalf("support stats = %+v, want mean 3.67 median 4", support)
	}
	quality := stats.RowStats[1]
	if quality.Row != "Product Quality" || quality.Mean != 1.67 || quality.Median != 2 {
		t.Fatalf("quality stats = %+v, want mean 1.67 median 2", quality)
	}
}

func TestAverageRanks(t *testing.T) {
	q := &model.Question{
		Type:    model.QuestionTypeRank,
		Options: []string{"Speed", "UI Design", "Security"},
	}
	answers := []*model.Answer{
		dictAnswer(map[string]string{"Speed": "1", "UI Design": "2", "Security": "3"}),
		dictAnswer(map[string]string{"Speed": "2", "UI Design": "1", "Security": "3"}),
		dictAnswer(map[string]string{"Speed": "1", "UI Design": "3", "Security": "2"}),
		dictAnswer(map[string]string{"Speed": "1", "UI Design": "2", "Security": "3"}),
	}

	standings := AverageRanks(q, answers)
	want := []model.RankStanding{
		{Option: "Speed", Average: 1.25, Count: 4},
		{Option: "UI Design", Average: 2.0, Count: 4},
		{Option: "Security", Average: 2.75, Count: 4},
	}
	if !reflect.DeepEqual(standings, want) {
		t.Fatalf("standings = %+v, want %+v", standings, want)
	}
}

func TestSortRankStandings(t *testing.T) {
	standings := []model.RankStanding{
		{Option: "A", Average: 1.5, Count: 2},
		{Option: "B", Count: 0}, // nobody ranked it
		{Option: "C", Average: 2.5, Count: 2},
	}

	SortRankStandings(standings, true)
	got := []string{standings[0].Option, standings[1].Option, standings[2].Option}
	want := []string{"C", "A", "B"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("descending order = %v, want %v (unranked last)", got, want)
	}
}

func TestInterpretMeanBanding(t *testing.T) {
	labels := agreementScale

	tests := []struct {
		mean float64
		want string
	}{
		{1.0, "Strongly Disagree"},
		{1.79, "Strongly Disagree"},
		{1.8, "Disagree"},
		{3.6, "Agree"},
		{4.4, "Strongly Agree"},
		{5.0, "Strongly Agree"}, // top boundary clamps instead of overflowing
	}
	for _, tt := range tests {
		if got := interpretMean(tt.mean, 1, 5, labels); got != tt.want {
			t.Fatalf("interpretMean(%v) = %q, want %q", tt.mean, got, tt.want)
		}
	}
}

func TestOneSampleTTestDegenerateCases(t *testing.T) {
	if got := OneSampleTTest([]float64{4}, 3); got != nil {
		t.Fatalf("n=1 t-test = %+v, want nil", got)
	}
	if got := OneSampleTTest(nil, 3); got != nil {
		t.Fatalf("empty t-test = %+v, want nil", got)
	}

	// Zero variance is a defined result, distinct from "not applicable".
	got := OneSampleTTest([]float64{4, 4, 4}, 3)
	if got == nil {
		t.Fatal("zero-variance t-test = nil, want degenerate result")
	}
	if got.T != 0 || got.PValue != 1 {
		t.Fatalf("zero-variance t-test = %+v, want T=0 PValue=1", got)
	}
}

func TestQuestionStatsSectionHeader(t *testing.T) {
	q := &model.Question{Type: model.QuestionTypeSection, Label: "About You"}
	if got := QuestionStats(q, nil); got != nil {
		t.Fatalf("section stats = %+v, want nil", got)
	}
}

func TestTextSamplesCapped(t *testing.T) {
	q := &model.Question{Type: model.QuestionTypeText, Label: "Comments"}
	var answers []*model.Answer
	for i := 0; i < 8; i++ {
		answers = append(answers, scalarAnswer("comment"))
	}
	answers = append(answers, scalarAnswer(""))

	stats := QuestionStats(q, answers)
	if stats.ChartType != "none" {
		t.Fatalf("chart type = %q, want none", stats.ChartType)
	}
	if len(stats.Samples) != textSampleLimit {
		t.Fatalf("got %d samples, want %d", len(stats.Samples), textSampleLimit)
	}
}

func TestCollectAnswers(t *testing.T) {
	responses := []*model.Response{
		{Answers: []model.Answer{{QuestionID: "q1", Data: model.AnswerData{Kind: model.KindScalar, Scalar: "a"}}}},
		{Answers: []model.Answer{{QuestionID: "q2", Data: model.AnswerData{Kind: model.KindScalar, Scalar: "x"}}}},
		{Answers: []model.Answer{{QuestionID: "q1", Data: model.AnswerData{Kind: model.KindScalar, Scalar: "b"}}}},
	}

	answers := CollectAnswers(responses, "q1")
	if len(answers) != 2 {
		t.Fatalf("collected %d answers, want 2", len(answers))
	}
	if answers[0].Data.Scalar != "a" || answers[1].Data.Scalar != "b" {
		t.Fatalf("answers out of response order: %v, %v", answers[0].Data.Scalar, answers[1].Data.Scalar)
	}
}

func TestChartDataFromDistribution(t *testing.T) {
	q := &model.Question{
		Type:    model.QuestionTypeMultiChoice,
		Label:   "Features",
		Options: []string{"Camera", "Battery"},
	}
	answers := []*model.Answer{
		listAnswer("Camera"),
		listAnswer("Camera", "Battery"),
	}

	data := ChartData(q, answers)
	if data.QuestionLabel != "Features" {
		t.Fatalf("label = %q", data.QuestionLabel)
	}
	if !reflect.DeepEqual(data.Labels, []string{"Camera", "Battery"}) {
		t.Fatalf("labels = %v", data.Labels)
	}
	if !reflect.DeepEqual(data.Values, []int{2, 1}) {
		t.Fatalf("values = %v", data.Values)
	}
}
