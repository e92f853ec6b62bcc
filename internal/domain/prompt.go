package domain

// PromptRequest is the raw inbound prompt as received from the client.
type PromptRequest struct {
	RawText string
}

// NormalizedPrompt is the trimmed, composed prompt that seeds the pipeline.
// Text is never empty once a NormalizedPrompt leaves the normalizer.
type NormalizedPrompt struct {
	Text string
}

// StageResult records the output of one executed pipeline stage.
type StageResult struct {
	Stage  string `json:"stage"`
	Output string `json:"output"`
}
