package service

import (
	"context"
	"errors"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiService is the alternative backend, kept behind the same AIService
// interface so the pipeline does not care which provider is configured.
type GeminiService struct {
	client    *genai.Client
	modelName string
}

func NewGeminiService(apiKey, modelName string) (*GeminiService, error) {
	if apiKey == "" {
		return nil, errors.New("no API key provided")
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GeminiService{
		client:    client,
		modelName: modelName,
	}, nil
}

func (s *GeminiService) Chat(ctx context.Context, system, prompt string) (string, error) {
	model := s.model(system)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	return collectText(resp)
}

func (s *GeminiService) DescribeImage(ctx context.Context, system, prompt string, image []byte, ext string) (string, error) {
	model := s.model(system)
	resp, err := model.GenerateContent(ctx,
		genai.Text(prompt),
		genai.ImageData(normalizeImageMIME(ext), image),
	)
	if err != nil {
		return "", err
	}
	return collectText(resp)
}

func (s *GeminiService) Close() error {
	return s.client.Close()
}

func (s *GeminiService) model(system string) *genai.GenerativeModel {
	model := s.client.GenerativeModel(s.modelName)
	if system != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(system)},
		}
	}
	return model
}

func collectText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", errors.New("no response generated")
	}
	content := ""
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				content += string(text)
			}
		}
	}
	return content, nil
}
