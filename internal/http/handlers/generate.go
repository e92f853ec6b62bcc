package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"promptimage/internal/domain"
	"promptimage/internal/middleware"
)

// maxGenerateBody bounds the accepted request body.
const maxGenerateBody = 64 << 10

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	ImageURL string `json:"image_url"`
}

// Generate handles POST /generate.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	locale := middleware.LocaleFromContext(r.Context())
	var req generateRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxGenerateBody)).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		a.error(w, http.StatusBadRequest, message(locale, msgInvalidRequest))
		return
	}
	outcome := a.Generator.Generate(r.Context(), domain.PromptRequest{RawText: req.Prompt})
	status, body := assemble(outcome, locale)
	a.json(w, status, body)
}

// assemble is the only place where outcomes become HTTP responses.
func assemble(outcome domain.Outcome, locale string) (int, any) {
	switch o := outcome.(type) {
	case domain.Success:
		return http.StatusOK, generateResponse{ImageURL: o.ImageURL}
	case domain.Rejected:
		return http.StatusBadRequest, errorResponse{Error: message(locale, reasonMessage(o.Reason))}
	default:
		return http.StatusInternalServerError, errorResponse{Error: message(locale, msgInternal)}
	}
}
