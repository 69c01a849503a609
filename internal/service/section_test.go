package service

import (
	"testing"

	"github.com/sulieman-Albuaeshi/survey-application/internal/model"
)

func header(label string) model.Question {
	return model.Question{Type: model.QuestionTypeSection, Label: label}
}

func textQ(id string) model.Question {
	return model.Question{ID: id, Type: model.QuestionTypeText, Label: id}
}

func TestOrganizeSectionsImplicitStart(t *testing.T) {
	sections := OrganizeSections([]model.Question{
		textQ("q1"),
		textQ("q2"),
		header("Details"),
		textQ("q3"),
	})

	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}
	if sections[0].Label != model.DefaultSectionLabel {
		t.Fatalf("leading section label = %q, want %q", sections[0].Label, model.DefaultSectionLabel)
	}
	if len(sections[0].Questions) != 2 {
		t.Fatalf("leading section has %d questions, want 2", len(sections[0].Questions))
	}
	if sections[1].Label != "Details" {
		t.Fatalf("second section label = %q", sections[1].Label)
	}
}

func TestOrganizeSectionsEmptyRunsDropped(t *testing.T) {
	sections := OrganizeSections([]model.Question{
		header("First"),
		header("Second"),
		textQ("q1"),
		header("Trailing"),
	})

	// "First" has no questions before "Second" flushes it, and "Trailing" ends
	// the survey with nothing after it. Only "Second" survives.
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if sections[0].Label != "Second" {
		t.Fatalf("surviving section = %q, want Second", sections[0].Label)
	}
}

func TestOrganizeSectionsAutoLabel(t *testing.T) {
	sections := OrganizeSections([]model.Question{
		header(""),
		textQ("q1"),
		header(""),
		textQ("q2"),
	})

	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}
	if sections[0].Label != "Section 1" || sections[1].Label != "Section 2" {
		t.Fatalf("auto labels = %q, %q", sections[0].Label, sections[1].Label)
	}
}

func TestOrganizeSectionsDisplayIndexContinuous(t *testing.T) {
	sections := OrganizeSections([]model.Question{
		textQ("q1"),
		header("Mid"),
		textQ("q2"),
		textQ("q3"),
	})

	var got []int
	for _, sec := range sections {
		for _, sq := range sec.Questions {
			got = append(got, sq.DisplayIndex)
		}
	}
	for i, idx := range got {
		if idx != i+1 {
			t.Fatalf("display indexes = %v, want 1-based continuous", got)
		}
	}
	if len(got) != 3 {
		t.Fatalf("indexed %d questions, want 3", len(got))
	}
}

func TestOrganizeSectionsDescriptionFromHelpText(t *testing.T) {
	h := header("Details")
	h.HelpText = "Tell us more"
	sections := OrganizeSections([]model.Question{h, textQ("q1")})

	if len(sections) != 1 || sections[0].Description != "Tell us more" {
		t.Fatalf("sections = %+v, want description carried from header help text", sections)
	}
}
