package service

import (
	"math"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sulieman-Albuaeshi/survey-application/internal/model"
)

// textSampleLimit caps how many free-text answers the dashboard previews.
const textSampleLimit = 5

// CollectAnswers gathers every answer given to one question across a
// response set, in response order.
func CollectAnswers(responses []*model.Response, questionID string) []*model.Answer {
	var answers []*model.Answer
	for _, resp := range responses {
		if a := resp.AnswersByQuestion()[questionID]; a != nil {
			answers = append(answers, a)
		}
	}
	return answers
}

// QuestionStats computes the dashboard statistics for one question from its
// collected answers. Section headers yield nil. Malformed answers are
// skipped, never fatal.
func QuestionStats(q *model.Question, answers []*model.Answer) *model.QuestionStatistics {
	if !q.Answerable() {
		return nil
	}
	stats := &model.QuestionStatistics{
		QuestionID:  q.ID,
		Label:       q.Label,
		Type:        q.Type,
		AnswerCount: len(answers),
	}

	switch q.Type {
	case model.QuestionTypeMultiChoice:
		stats.ChartType = "bar"
		stats.Distribution = optionDistribution(q.Options, answers)

	case model.QuestionTypeLikert:
		stats.ChartType = "bar"
		stats.Distribution = optionDistribution(q.Options, answers)
		scores := likertScores(q, answers)
		fillScoreStats(stats, scores, 1, float64(len(q.Options)), q.Options)

	case model.QuestionTypeRating:
		stats.ChartType = "bar"
		stats.Distribution = ratingDistribution(q, answers)
		scores := ratingScores(answers)
		fillScoreStats(stats, scores, float64(q.RangeMin), float64(q.RangeMax), ratingValueLabels(q))

	case model.QuestionTypeMatrix:
		stats.ChartType = "heatmap"
		stats.Distribution = matrixDistribution(q, answers)
		stats.RowStats = matrixRowStats(q, answers)

	case model.QuestionTypeRank:
		stats.ChartType = "bar"
		stats.Standings = AverageRanks(q, answers)

	case model.QuestionTypeText:
		stats.ChartType = "none"
		stats.Samples = textSamples(answers)
	}

	return stats
}

// fillScoreStats derives mean, median, interval interpretation and the
// one-sample t-test from a numeric score series. The hypothesized midpoint is
// the center of the score range.
func fillScoreStats(out *model.QuestionStatistics, scores []float64, minScore, maxScore float64, labels []string) {
	if len(scores) == 0 {
		return
	}
	mean := stat.Mean(scores, nil)
	out.Mean = round2(mean)
	out.Median = round2(median(scores))
	out.Interpretation = interpretMean(mean, minScore, maxScore, labels)
	out.TTest = OneSampleTTest(scores, (minScore+maxScore)/2)
}

// optionDistribution counts how often each declared option was selected,
// seeding every option with zero so unselected options still appear.
func optionDistribution(options []string, answers []*model.Answer) []model.DistributionEntry {
	counts := make(map[string]int, len(options))
	for _, a := range answers {
		for _, v := range a.Data.Scalars() {
			counts[v]++
		}
	}
	entries := make([]model.DistributionEntry, 0, len(options))
	for _, opt := range options {
		entries = append(entries, model.DistributionEntry{Value: opt, Count: counts[opt]})
	}
	return entries
}

// ratingDistribution seeds every integer value in the declared range.
func ratingDistribution(q *model.Question, answers []*model.Answer) []model.DistributionEntry {
	counts := make(map[string]int)
	for _, a := range answers {
		if a.Data.Kind == model.KindScalar {
			counts[a.Data.Scalar]++
		}
	}
	entries := make([]model.DistributionEntry, 0, q.RangeMax-q.RangeMin+1)
	for v := q.RangeMin; v <= q.RangeMax; v++ {
		key := strconv.Itoa(v)
		entries = append(entries, model.DistributionEntry{Value: key, Count: counts[key]})
	}
	return entries
}

// matrixDistribution counts row/column selections row-major, seeding every
// cell with zero.
func matrixDistribution(q *model.Question, answers []*model.Answer) []model.DistributionEntry {
	counts := make(map[string]int)
	for _, a := range answers {
		if a.Data.Kind != model.KindDict {
			continue
		}
		for i, row := range q.Rows {
			if chosen, ok := matrixLookup(q, a.Data.Dict, i); ok {
				counts[row+" - "+chosen]++
			}
		}
	}
	entries := make([]model.DistributionEntry, 0, len(q.Rows)*len(q.Columns))
	for _, row := range q.Rows {
		for _, col := range q.Columns {
			key := row + " - " + col
			entries = append(entries, model.DistributionEntry{Value: key, Count: counts[key]})
		}
	}
	return entries
}

// likertScores maps each answer to the 1-based index of its selected option.
// Unknown or missing selections are skipped.
func likertScores(q *model.Question, answers []*model.Answer) []float64 {
	index := make(map[string]int, len(q.Options))
	for i, opt := range q.Options {
		index[opt] = i + 1
	}
	var scores []float64
	for _, a := range answers {
		if a.Data.Kind != model.KindScalar {
			continue
		}
		if score, ok := index[a.Data.Scalar]; ok {
			scores = append(scores, float64(score))
		}
	}
	return scores
}

// ratingScores parses each answer's literal numeric value.
func ratingScores(answers []*model.Answer) []float64 {
	var scores []float64
	for _, a := range answers {
		if a.Data.Kind != model.KindScalar {
			continue
		}
		if v, err := strconv.ParseFloat(a.Data.Scalar, 64); err == nil {
			scores = append(scores, v)
		}
	}
	return scores
}

func ratingValueLabels(q *model.Question) []string {
	labels := make([]string, 0, q.RangeMax-q.RangeMin+1)
	for v := q.RangeMin; v <= q.RangeMax; v++ {
		labels = append(labels, strconv.Itoa(v))
	}
	return labels
}

// matrixRowStats computes mean/median per matrix row, scoring answers by the
// 1-based index of the chosen column.
func matrixRowStats(q *model.Question, answers []*model.Answer) []model.RowStatistics {
	colIndex := make(map[string]int, len(q.Columns))
	for i, col := range q.Columns {
		colIndex[col] = i + 1
	}

	out := make([]model.RowStatistics, 0, len(q.Rows))
	for i, row := range q.Rows {
		var scores []float64
		for _, a := range answers {
			if a.Data.Kind != model.KindDict {
				continue
			}
			if chosen, ok := matrixLookup(q, a.Data.Dict, i); ok {
				if score, known := colIndex[chosen]; known {
					scores = append(scores, float64(score))
				}
			}
		}
		rs := model.RowStatistics{Row: row}
		if len(scores) > 0 {
			rs.Mean = round2(stat.Mean(scores, nil))
			rs.Median = round2(median(scores))
		}
		out = append(out, rs)
	}
	return out
}

// AverageRanks accumulates the rank/score assigned to each declared option
// and averages it over the answers that ranked the option. The result is
// sorted ascending by average (rank 1 = best); use SortRankStandings for the
// descending weighted-score convention.
func AverageRanks(q *model.Question, answers []*model.Answer) []model.RankStanding {
	sums := make(map[string]float64, len(q.Options))
	counts := make(map[string]int, len(q.Options))
	for _, a := range answers {
		if a.Data.Kind != model.KindDict {
			continue
		}
		for _, opt := range q.Options {
			raw, ok := a.Data.Dict[opt]
			if !ok {
				continue
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				continue
			}
			sums[opt] += v
			counts[opt]++
		}
	}

	standings := make([]model.RankStanding, 0, len(q.Options))
	for _, opt := range q.Options {
		s := model.RankStanding{Option: opt, Count: counts[opt]}
		if counts[opt] > 0 {
			s.Average = round2(sums[opt] / float64(counts[opt]))
		}
		standings = append(standings, s)
	}
	SortRankStandings(standings, false)
	return standings
}

// SortRankStandings orders standings by average score, ascending by default
// or descending when desc is true. Options nobody ranked sort last either
// way; equal averages keep option order.
func SortRankStandings(standings []model.RankStanding, desc bool) {
	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if (a.Count == 0) != (b.Count == 0) {
			return b.Count == 0
		}
		if desc {
			return a.Average > b.Average
		}
		return a.Average < b.Average
	})
}

// interpretMean snaps a continuous mean back onto the nearest declared
// ordinal label: interval = (max-min)/len(labels), index = floor((mean-min)/
// interval), clamped to the label range. A mean exactly at the top boundary
// clamps to the last label instead of indexing past it.
func interpretMean(mean, minScore, maxScore float64, labels []string) string {
	if len(labels) == 0 {
		return ""
	}
	interval := (maxScore - minScore) / float64(len(labels))
	if interval <= 0 {
		return labels[0]
	}
	idx := int(math.Floor((mean - minScore) / interval))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(labels) {
		idx = len(labels) - 1
	}
	return labels[idx]
}

// OneSampleTTest tests the sample mean against a hypothesized midpoint:
// t = (mean - midpoint) / (stdev / sqrt(n)). It returns nil for n < 2 (not
// applicable) and a zero-t result when the sample has no variance; the two
// degenerate cases stay distinct. The p-value is two-sided, from the
// Student's-t distribution with n-1 degrees of freedom.
func OneSampleTTest(scores []float64, midpoint float64) *model.TTestResult {
	n := len(scores)
	if n < 2 {
		return nil
	}
	mean := stat.Mean(scores, nil)
	sd := stat.StdDev(scores, nil)
	result := &model.TTestResult{DF: n - 1, Midpoint: midpoint}
	if sd == 0 {
		result.T = 0
		result.PValue = 1
		return result
	}
	t := (mean - midpoint) / (sd / math.Sqrt(float64(n)))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	p := 2 * dist.CDF(-math.Abs(t))
	result.T = round4(t)
	result.PValue = round4(p)
	return result
}

// median interpolates even-length samples, matching the conventional
// statistics definition rather than gonum's empirical quantile.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// ChartData shapes a single question's distribution for the chart endpoint.
func ChartData(q *model.Question, answers []*model.Answer) *model.ChartData {
	stats := QuestionStats(q, answers)
	if stats == nil {
		return nil
	}
	data := &model.ChartData{QuestionLabel: q.Label, Average: stats.Mean}
	for _, e := range stats.Distribution {
		data.Labels = append(data.Labels, e.Value)
		data.Values = append(data.Values, e.Count)
	}
	if len(stats.Standings) > 0 {
		for _, s := range stats.Standings {
			data.Labels = append(data.Labels, s.Option)
			data.Values = append(data.Values, s.Count)
		}
	}
	return data
}

func textSamples(answers []*model.Answer) []string {
	var samples []string
	for _, a := range answers {
		if a.Data.Kind != model.KindScalar || a.Data.Scalar == "" {
			continue
		}
		samples = append(samples, a.Data.Scalar)
		if len(samples) == textSampleLimit {
			break
		}
	}
	return samples
}
