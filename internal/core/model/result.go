package model

type Status string

const (
	StatusDone                Status = "done"
	StatusUnsupported         Status = "unsupported"
	StatusExtractionFailed    Status = "extraction_failed"
	StatusSummarizationFailed Status = "summarization_failed"
)

// Result is the outcome of a summarization request.
//
// Summary and Chunks are only meaningful when Status is StatusDone: a failed
// request never carries a partial summary.
type Result struct {
	Status          Status
	Filename        string
	ExtractedLength int
	Chunks          int
	Summary         string
	Message         string
}

func (r *Result) Done() bool {
	return r.Status == StatusDone
}

func NewUnsupportedResult(filename string) *Result {
	return &Result{
		Status:   StatusUnsupported,
		Filename: filename,
		Message:  "Unsupported file type.",
	}
}

func NewExtractionFailedResult(filename string) *Result {
	return &Result{
		Status:   StatusExtractionFailed,
		Filename: filename,
		Message:  "The document could not be read.",
	}
}

func NewSummarizationFailedResult(filename string, extractedLength int) *Result {
	return &Result{
		Status:          StatusSummarizationFailed,
		Filename:        filename,
		ExtractedLength: extractedLength,
		Message:         "The summary could not be generated.",
	}
}
