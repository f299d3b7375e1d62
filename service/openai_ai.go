package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// OpenAIService talks to an Azure OpenAI deployment through the chat
// completions API.
type OpenAIService struct {
	client     *openai.Client
	deployment string
}

// NewOpenAIService creates a client for the given Azure endpoint. The
// deployment name doubles as the model identifier on every request.
func NewOpenAIService(endpoint, apiKey, deployment, apiVersion string) *OpenAIService {
	cfg := openai.DefaultAzureConfig(apiKey, endpoint)
	if apiVersion != "" {
		cfg.APIVersion = apiVersion
	}
	client := openai.NewClientWithConfig(cfg)
	return &OpenAIService{
		client:     client,
		deployment: deployment,
	}
}

func (s *OpenAIService) Chat(ctx context.Context, system, prompt string) (string, error) {
	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.deployment,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: system,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		},
	)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response generated")
	}
	return resp.Choices[0].Message.Content, nil
}

func (s *OpenAIService) DescribeImage(ctx context.Context, system, prompt string, image []byte, ext string) (string, error) {
	dataURL := fmt.Sprintf("data:image/%s;base64,%s", normalizeImageMIME(ext), base64.StdEncoding.EncodeToString(image))

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.deployment,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: system,
				},
				{
					Role: openai.ChatMessageRoleUser,
					MultiContent: []openai.ChatMessagePart{
						{
							Type: openai.ChatMessagePartTypeText,
							Text: prompt,
						},
						{
							Type: openai.ChatMessagePartTypeImageURL,
							ImageURL: &openai.ChatMessageImageURL{
								URL:    dataURL,
								Detail: openai.ImageURLDetailAuto,
							},
						},
					},
				},
			},
		},
	)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response generated")
	}
	return resp.Choices[0].Message.Content, nil
}

// normalizeImageMIME maps file extensions to their MIME subtype.
func normalizeImageMIME(ext string) string {
	switch ext {
	case "jpg":
		return "jpeg"
	case "tif":
		return "tiff"
	case "":
		return "png"
	default:
		return ext
	}
}
