package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"promptimage/internal/domain"
)

// PromptGenerator turns one prompt into an outcome.
type PromptGenerator interface {
	Generate(ctx context.Context, req domain.PromptRequest) domain.Outcome
}

type App struct {
	Generator PromptGenerator
	Logger    zerolog.Logger
}

func NewApp(generator PromptGenerator, logger zerolog.Logger) *App {
	return &App{Generator: generator, Logger: logger}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (a *App) error(w http.ResponseWriter, code int, msg string) {
	a.json(w, code, errorResponse{Error: msg})
}
