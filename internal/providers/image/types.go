package image

import "context"

// DefaultSize is the only resolution requested from providers.
const DefaultSize = "512x512"

// GenerateRequest describes a single image generation call.
type GenerateRequest struct {
	Prompt    string
	RequestID string
}

// Asset is the location of a generated image. The service never downloads
// the image itself.
type Asset struct {
	URL string
}

// Generator is the contract implemented by image providers.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (Asset, error)
}
