package model

// TableFormat selects how answers are rendered into table cells.
type TableFormat string

const (
	FormatRaw     TableFormat = "raw"     // one human-readable column per question
	FormatNumeric TableFormat = "numeric" // expanded indicator/numeric columns
)

// ResponseTable is a flat (header, rows) report: two identity columns
// followed by question columns in position order. Every row has exactly
// len(Header) cells.
type ResponseTable struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// SectionTable is one section's slice of the report, titled
// "{survey title} / {section label}".
type SectionTable struct {
	Title  string     `json:"title"`
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// DistributionEntry is one option/column occurrence count. Declared options
// always appear, seeded with zero when never selected.
type DistributionEntry struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// TTestResult is a one-sample t-test against a neutral midpoint. A nil
// *TTestResult means "not applicable" (fewer than two samples); a result with
// T == 0 and PValue == 1 is the distinct zero-variance degenerate case.
type TTestResult struct {
	T        float64 `json:"t"`
	PValue   float64 `json:"pValue"`
	DF       int     `json:"df"`
	Midpoint float64 `json:"midpoint"`
}

// RowStatistics is the mean/median pair for one matrix row, scored by
// 1-based column index.
type RowStatistics struct {
	Row    string  `json:"row"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
}

// RankStanding is one option's accumulated rank/score average.
type RankStanding struct {
	Option  string  `json:"option"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// QuestionStatistics is the per-question analytics dashboard payload. Only
// the fields meaningful for the question's variant are populated.
type QuestionStatistics struct {
	QuestionID   string              `json:"questionId"`
	Label        string              `json:"label"`
	Type         QuestionType        `json:"type"`
	ChartType    string              `json:"chartType"`
	AnswerCount  int                 `json:"answerCount"`
	Distribution []DistributionEntry `json:"distribution,omitempty"`

	Mean           float64      `json:"mean,omitempty"`
	Median         float64      `json:"median,omitempty"`
	Interpretation string       `json:"interpretation,omitempty"`
	TTest          *TTestResult `json:"tTest,omitempty"`

	// MATRIX
	RowStats []RowStatistics `json:"rowStats,omitempty"`
	// RANK
	Standings []RankStanding `json:"standings,omitempty"`
	// TEXT
	Samples []string `json:"samples,omitempty"`
}

// SurveyAnalytics is the full dashboard payload for one survey.
type SurveyAnalytics struct {
	SurveyID       string               `json:"surveyId"`
	Title          string               `json:"title"`
	TotalResponses int                  `json:"totalResponses"`
	Questions      []QuestionStatistics `json:"questions"`
}

// ChartData is the single-question chart payload.
type ChartData struct {
	QuestionLabel string   `json:"questionLabel"`
	Labels        []string `json:"labels"`
	Values        []int    `json:"values"`
	Average       float64  `json:"average,omitempty"`
}

// CorrelationMatrix is the pairwise Pearson matrix over the cleaned numeric
// table, column-labeled, plus a layout hint for the plotting collaborator.
type CorrelationMatrix struct {
	Labels []string    `json:"labels"`
	Values [][]float64 `json:"values"`
	Layout string      `json:"layout"` // "compact", or "large" above 12 variables
}
