package service

import (
	"fmt"
	"sort"

	"github.com/sulieman-Albuaeshi/survey-application/internal/model"
)

// timestampLayout formats the submission-time identity column.
const timestampLayout = "2006-01-02 15:04"

// BuildResponseTable joins a survey's questions with its responses into a
// flat (header, rows) table. The first two columns are respondent identity
// and submission timestamp; the rest follow question position order, one
// column per question in raw format or the full numeric expansion in numeric
// format. Rows keep the order of the responses slice (most-recent-first by
// repository convention). len(header) == len(row) holds for every row.
func BuildResponseTable(survey *model.Survey, responses []*model.Response, format model.TableFormat) *model.ResponseTable {
	questions := answerableQuestions(survey.Questions)
	return buildTable(questions, responses, format)
}

// BuildSectionTables builds one table per organized section, each restricted
// to that section's questions and titled "{survey title} / {section label}".
func BuildSectionTables(survey *model.Survey, responses []*model.Response, format model.TableFormat) []*model.SectionTable {
	ordered := make([]model.Question, len(survey.Questions))
	copy(ordered, survey.Questions)
	sortByPosition(ordered)

	sections := OrganizeSections(ordered)
	tables := make([]*model.SectionTable, 0, len(sections))
	for _, sec := range sections {
		questions := make([]*model.Question, 0, len(sec.Questions))
		for _, sq := range sec.Questions {
			questions = append(questions, sq.Question)
		}
		t := buildTable(questions, responses, format)
		tables = append(tables, &model.SectionTable{
			Title:  fmt.Sprintf("%s / %s", survey.Title, sec.Label),
			Header: t.Header,
			Rows:   t.Rows,
		})
	}
	return tables
}

func buildTable(questions []*model.Question, responses []*model.Response, format model.TableFormat) *model.ResponseTable {
	header := []string{"Respondent", "Submitted At"}
	for _, q := range questions {
		if format == model.FormatNumeric {
			header = append(header, q.ColumnLabels()...)
		} else {
			header = append(header, q.Label)
		}
	}

	rows := make([][]string, 0, len(responses))
	for _, resp := range responses {
		byQuestion := resp.AnswersByQuestion()

		row := make([]string, 0, len(header))
		name := resp.Respondent
		if name == "" {
			name = AnonymousName
		}
		row = append(row, name, resp.CreatedAt.Format(timestampLayout))

		for _, q := range questions {
			answer := byQuestion[q.ID]
			if format == model.FormatNumeric {
				row = append(row, NumericAnswerValues(q, answer)...)
			} else {
				row = append(row, RawAnswerValue(q, answer))
			}
		}
		rows = append(rows, row)
	}

	return &model.ResponseTable{Header: header, Rows: rows}
}

// answerableQuestions returns pointers to the survey's answerable questions
// in position order, leaving the input slice untouched.
func answerableQuestions(questions []model.Question) []*model.Question {
	ordered := make([]model.Question, len(questions))
	copy(ordered, questions)
	sortByPosition(ordered)

	out := make([]*model.Question, 0, len(ordered))
	for i := range ordered {
		if ordered[i].Answerable() {
			out = append(out, &ordered[i])
		}
	}
	return out
}

// sortByPosition orders questions by position, keeping insertion order for
// ties.
func sortByPosition(questions []model.Question) {
	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].Position < questions[j].Position
	})
}
