package service

import (
	"context"
	"fmt"

	"github.com/ulisses177/Descritor-de-imagens-de-documentos/config"
)

// AIService is the chat-style completion collaborator. Implementations are
// expected to be blocking and to return the model's textual reply verbatim.
type AIService interface {
	// Chat sends a system instruction plus a user message and returns the
	// completion text.
	Chat(ctx context.Context, system, prompt string) (string, error)

	// DescribeImage sends a user message that combines prompt text with the
	// raw image bytes (ext identifies the encoding, e.g. "png").
	DescribeImage(ctx context.Context, system, prompt string, image []byte, ext string) (string, error)
}

// NewAIService builds the backend selected by configuration.
func NewAIService(cfg *config.Config) (AIService, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAIService(cfg.AOAIEndpoint, cfg.AOAIAPIKey, cfg.AOAIDeployment, cfg.AOAIAPIVersion), nil
	case config.ProviderGemini:
		return NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel)
	default:
		return nil, fmt.Errorf("unknown AI provider: %s", cfg.Provider)
	}
}
