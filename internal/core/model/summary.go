package model

// Summary is the serializable form of a successful Result, shared by the
// API responses and the command line outputs.
type Summary struct {
	Filename        string `json:"filename" yaml:"filename"`
	ExtractedLength int    `json:"extracted_length" yaml:"extracted_length"`
	Chunks          int    `json:"chunks" yaml:"chunks"`
	Summary         string `json:"summary" yaml:"summary"`
}

func NewSummary(result *Result) *Summary {
	return &Summary{
		Filename:        result.Filename,
		ExtractedLength: result.ExtractedLength,
		Chunks:          result.Chunks,
		Summary:         result.Summary,
	}
}
