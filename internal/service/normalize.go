package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sulieman-Albuaeshi/survey-application/internal/model"
)

// Sentinels used when a response carries no answer for a question.
const (
	// AnonymousName stands in for an unset respondent identity.
	AnonymousName = "Anonymous"
	// RawAbsent marks an unanswered question in raw-format cells.
	RawAbsent = "-"
	// NumericAbsent marks an unanswered scalar in numeric-format cells. It is
	// deliberately non-coercible so the correlation cleaner reads it as
	// missing.
	NumericAbsent = ""
)

// RawAnswerValue renders an answer as a single human-readable cell: scalars
// verbatim, lists joined with " | ", dict entries as "key: 'value'" joined
// with " | ". A nil answer or empty payload yields RawAbsent. Malformed
// payloads degrade to RawAbsent, never to an error.
func RawAnswerValue(q *model.Question, a *model.Answer) string {
	if a == nil {
		return RawAbsent
	}
	switch a.Data.Kind {
	case model.KindScalar:
		if a.Data.Scalar == "" {
			return RawAbsent
		}
		return a.Data.Scalar
	case model.KindList:
		if len(a.Data.List) == 0 {
			return RawAbsent
		}
		return strings.Join(a.Data.List, " | ")
	case model.KindDict:
		return rawDictValue(q, a.Data.Dict)
	default:
		return RawAbsent
	}
}

// rawDictValue walks the question's declared key order (matrix rows, rank
// options) so output is deterministic regardless of map iteration order.
// Keys the question does not declare are dropped.
func rawDictValue(q *model.Question, dict map[string]string) string {
	if len(dict) == 0 {
		return RawAbsent
	}
	var parts []string
	switch q.Type {
	case model.QuestionTypeMatrix:
		for i, row := range q.Rows {
			if v, ok := matrixLookup(q, dict, i); ok {
				parts = append(parts, fmt.Sprintf("%s: '%s'", row, v))
			}
		}
	case model.QuestionTypeRank:
		for _, opt := range q.Options {
			if v, ok := dict[opt]; ok {
				parts = append(parts, fmt.Sprintf("%s: '%s'", opt, v))
			}
		}
	default:
		return RawAbsent
	}
	if len(parts) == 0 {
		return RawAbsent
	}
	return strings.Join(parts, " | ")
}

// NumericAnswerValues renders an answer as its numeric-column expansion. The
// result always has exactly q.NumericColumnCount() cells, in the order of
// q.ColumnLabels(). A nil answer yields indicator zeros for choice-like
// variants and absent sentinels for scalar ones. Wrong-shaped or out-of-domain
// payloads count as "not selected".
func NumericAnswerValues(q *model.Question, a *model.Answer) []string {
	switch q.Type {
	case model.QuestionTypeMultiChoice, model.QuestionTypeLikert:
		return indicatorValues(q.Options, selectedSet(a))
	case model.QuestionTypeMatrix:
		return matrixValues(q, a)
	case model.QuestionTypeRating:
		return []string{ratingValue(a)}
	case model.QuestionTypeRank:
		return rankValues(q, a)
	case model.QuestionTypeText:
		return []string{textValue(a)}
	default:
		return nil
	}
}

// selectedSet collects the answer's scalar view into a membership set.
func selectedSet(a *model.Answer) map[string]bool {
	if a == nil {
		return nil
	}
	vals := a.Data.Scalars()
	if len(vals) == 0 {
		return nil
	}
	set := make(map[string]bool, len(vals))
	for _, v := range vals {
		set[v] = true
	}
	return set
}

// indicatorValues emits "1"/"0" per declared option, in declared order.
func indicatorValues(options []string, selected map[string]bool) []string {
	cells := make([]string, len(options))
	for i, opt := range options {
		if selected[opt] {
			cells[i] = "1"
		} else {
			cells[i] = "0"
		}
	}
	return cells
}

// matrixLookup resolves the chosen column for row index i, trying the plain
// row label before the legacy "{row}_row{n}" key.
func matrixLookup(q *model.Question, dict map[string]string, i int) (string, bool) {
	for _, key := range q.MatrixKeyCandidates(i) {
		if v, ok := dict[key]; ok {
			return v, true
		}
	}
	return "", false
}

// matrixValues expands a grid answer row-major: for each row in declared
// order, one indicator cell per declared column.
func matrixValues(q *model.Question, a *model.Answer) []string {
	cells := make([]string, 0, len(q.Rows)*len(q.Columns))
	var dict map[string]string
	if a != nil && a.Data.Kind == model.KindDict {
		dict = a.Data.Dict
	}
	for i := range q.Rows {
		chosen, ok := matrixLookup(q, dict, i)
		for _, col := range q.Columns {
			if ok && chosen == col {
				cells = append(cells, "1")
			} else {
				cells = append(cells, "0")
			}
		}
	}
	return cells
}

// ratingValue keeps the literal numeric value; anything non-numeric counts
// as absent.
func ratingValue(a *model.Answer) string {
	if a == nil || a.Data.Kind != model.KindScalar {
		return NumericAbsent
	}
	if _, err := strconv.ParseFloat(a.Data.Scalar, 64); err != nil {
		return NumericAbsent
	}
	return a.Data.Scalar
}

// rankValues emits the raw assigned rank/score per declared option, empty
// when the option was not ranked.
func rankValues(q *model.Question, a *model.Answer) []string {
	cells := make([]string, len(q.Options))
	var dict map[string]string
	if a != nil && a.Data.Kind == model.KindDict {
		dict = a.Data.Dict
	}
	for i, opt := range q.Options {
		if v, ok := dict[opt]; ok {
			cells[i] = v
		} else {
			cells[i] = NumericAbsent
		}
	}
	return cells
}

func textValue(a *model.Answer) string {
	if a == nil || a.Data.Kind != model.KindScalar {
		return NumericAbsent
	}
	return a.Data.Scalar
}
