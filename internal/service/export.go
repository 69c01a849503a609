package service

import (
	"bytes"
	"encoding/csv"

	"github.com/sulieman-Albuaeshi/survey-application/internal/model"
)

// ExportTableCSV renders a flat table as CSV, header first.
func ExportTableCSV(table *model.ResponseTable) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(table.Header); err != nil {
		return nil, err
	}
	for _, row := range table.Rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// ExportSectionsCSV renders sectioned tables as one CSV document: each
// section starts with a single-cell title row, followed by its header and
// rows, with a blank line between sections.
func ExportSectionsCSV(sections []*model.SectionTable) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	for i, sec := range sections {
		if i > 0 {
			// csv.Writer has no blank-record concept; flush and add a raw newline.
			w.Flush()
			if err := w.Error(); err != nil {
				return nil, err
			}
			buf.WriteString("\n")
		}
		if err := w.Write([]string{sec.Title}); err != nil {
			return nil, err
		}
		if err := w.Write(sec.Header); err != nil {
			return nil, err
		}
		for _, row := range sec.Rows {
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
