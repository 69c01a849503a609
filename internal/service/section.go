package service

import (
	"fmt"

	"github.com/sulieman-Albuaeshi/survey-application/internal/model"
)

// OrganizeSections partitions questions (already in position order) into
// sections, using section-header questions as boundaries. The leading section
// is implicit and labeled model.DefaultSectionLabel. Sections that end up
// with no answerable questions are dropped, including runs of consecutive
// headers and a trailing header with nothing after it. Display indexes are
// 1-based and continuous across section boundaries.
func OrganizeSections(questions []model.Question) []model.Section {
	var sections []model.Section

	current := model.Section{Label: model.DefaultSectionLabel}
	displayIndex := 0
	headerCount := 0

	flush := func() {
		if len(current.Questions) > 0 {
			sections = append(sections, current)
		}
	}

	for i := range questions {
		q := &questions[i]
		if q.Type == model.QuestionTypeSection {
			flush()
			headerCount++
			label := q.Label
			if label == "" {
				label = fmt.Sprintf("Section %d", headerCount)
			}
			current = model.Section{Label: label, Description: q.HelpText}
			continue
		}
		displayIndex++
		current.Questions = append(current.Questions, model.SectionQuestion{
			Question:     q,
			DisplayIndex: displayIndex,
		})
	}
	flush()

	return sections
}
