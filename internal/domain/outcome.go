package domain

// ReasonCode classifies why a request was rejected before image generation.
type ReasonCode int

const (
	ReasonNone ReasonCode = iota
	ReasonEmptyInput
	ReasonDegenerateInput
	ReasonLowConfidenceTranslation
	ReasonResponseTooShort
)

func (r ReasonCode) String() string {
	switch r {
	case ReasonEmptyInput:
		return "empty_input"
	case ReasonDegenerateInput:
		return "degenerate_input"
	case ReasonLowConfidenceTranslation:
		return "low_confidence_translation"
	case ReasonResponseTooShort:
		return "response_too_short"
	default:
		return "none"
	}
}

// GateVerdict is the result of running a quality gate over stage output.
type GateVerdict struct {
	Passed bool
	Reason ReasonCode
}

// Outcome is the terminal result of one request. It is one of Success,
// Rejected or Failed.
type Outcome interface {
	outcome()
}

// Success carries the location of the generated image.
type Success struct {
	ImageURL string
}

// Rejected means the input or an intermediate model output did not pass
// validation. Stage is empty for input rejections.
type Rejected struct {
	Reason ReasonCode
	Stage  string
}

// Failed means an external call failed. Cause is for logs only.
type Failed struct {
	Cause error
}

func (Success) outcome()  {}
func (Rejected) outcome() {}
func (Failed) outcome()   {}
