package model

// DefaultSectionLabel names the implicit section that precedes the first
// section header of a survey.
const DefaultSectionLabel = "Start"

// SectionQuestion pairs a question with its 1-based display index. Indexes
// run continuously across section boundaries and skip section headers.
type SectionQuestion struct {
	Question     *Question `json:"question"`
	DisplayIndex int       `json:"displayIndex"`
}

// Section is a contiguous run of answerable questions between two section
// headers (or the survey start/end). Derived on demand, never stored.
type Section struct {
	Label       string            `json:"label"`
	Description string            `json:"description,omitempty"`
	Questions   []SectionQuestion `json:"questions"`
}
