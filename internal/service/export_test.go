package service

import (
	"testing"

	"github.com/sulieman-Albuaeshi/survey-application/internal/model"
)

func TestExportTableCSV(t *testing.T) {
	table := &model.ResponseTable{
		Header: []string{"Respondent", "Submitted At", "Overall"},
		Rows: [][]string{
			{"Lina", "2026-03-14 09:30", "5"},
			{"Anonymous", "2026-03-14 09:45", "-"},
		},
	}

	data, err := ExportTableCSV(table)
	if err != nil {
		t.Fatalf("ExportTableCSV: %v", err)
	}

	want := "Respondent,Submitted At,Overall\n" +
		"Lina,2026-03-14 09:30,5\n" +
		"Anonymous,2026-03-14 09:45,-\n"
	if string(data) != want {
		t.Fatalf("csv = %q, want %q", data, want)
	}
}

func TestExportTableCSVQuoting(t *testing.T) {
	table := &model.ResponseTable{
		Header: []string{"Respondent", "Submitted At", "Comments"},
		Rows: [][]string{
			{"Omar", "2026-03-14 09:00", "fast, but heavy"},
		},
	}

	data, err := ExportTableCSV(table)
	if err != nil {
		t.Fatalf("ExportTableCSV: %v", err)
	}

	want := "Respondent,Submitted At,Comments\n" +
		"Omar,2026-03-14 09:00,\"fast, but heavy\"\n"
	if string(data) != want {
		t.Fatalf("csv = %q, want %q", data, want)
	}
}

func TestExportSectionsCSV(t *testing.T) {
	sections := []*model.SectionTable{
		{
			Title:  "Launch Feedback / Start",
			Header: []string{"Respondent", "Submitted At", "Feels fast"},
			Rows:   [][]string{{"Lina", "2026-03-14 09:30", "Agree"}},
		},
		{
			Title:  "Launch Feedback / Details",
			Header: []string{"Respondent", "Submitted At", "Overall"},
			Rows:   [][]string{{"Lina", "2026-03-14 09:30", "4"}},
		},
	}

	data, err := ExportSectionsCSV(sections)
	if err != nil {
		t.Fatalf("ExportSectionsCSV: %v", err)
	}

	want := "Launch Feedback / Start\n" +
		"Respondent,Submitted At,Feels fast\n" +
		"Lina,2026-03-14 09:30,Agree\n" +
		"\n" +
		"Launch Feedback / Details\n" +
		"Respondent,Submitted At,Overall\n" +
		"Lina,2026-03-14 09:30,4\n"
	if string(data) != want {
		t.Fatalf("csv = %q, want %q", data, want)
	}
}
