package service

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/ulisses177/Descritor-de-imagens-de-documentos/types"
)

const (
	describeSystemPrompt = "Você é um assistente especializado em descrever imagens. " +
		"Descreva imagens com precisão, em português, usando o contexto fornecido."

	imageDescriptionPrompt = `Descreva esta imagem de forma objetiva e detalhada, considerando que ela faz parte de um tutorial de sistema.
Considere o contexto do documento ao fazer a descrição.`

	tutorialSystemPrompt = "Você é um redator técnico. A partir do texto fornecido, " +
		"escreva um tutorial completo, claro e bem estruturado, em português."

	tutorialPrompt = "Gere o tutorial completo a partir do conteúdo do documento abaixo:\n\n"
)

// DescribeService turns images into natural-language descriptions via the
// configured AI backend. Call failures degrade into Failed results instead
// of propagating, so one bad image never aborts the batch.
type DescribeService struct {
	ai AIService
}

func NewDescribeService(ai AIService) *DescribeService {
	return &DescribeService{ai: ai}
}

// DescribeImage requests a description using only the static instructional
// prompt (the batch pipeline carries no text context).
func (s *DescribeService) DescribeImage(ctx context.Context, img types.ImageRecord) types.DescriptionResult {
	return s.describe(ctx, img, imageDescriptionPrompt)
}

// DescribeImageWithContext prepends the accumulated document context to the
// instructional prompt before requesting a description.
func (s *DescribeService) DescribeImageWithContext(ctx context.Context, img types.ImageRecord, accumulated string) types.DescriptionResult {
	prompt := imageDescriptionPrompt
	if accumulated != "" {
		prompt = "Contexto do documento:\n" + accumulated + "\n\n" + imageDescriptionPrompt
	}
	return s.describe(ctx, img, prompt)
}

func (s *DescribeService) describe(ctx context.Context, img types.ImageRecord, prompt string) types.DescriptionResult {
	text, err := s.ai.DescribeImage(ctx, describeSystemPrompt, prompt, img.Data, img.Ext)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"image": img.Name,
			"page":  img.Page + 1,
		}).Errorf("failed to generate description: %v", err)
		return types.Failed(err.Error())
	}
	return types.Ok(text)
}

// GenerateTutorial regenerates the full tutorial text from the entire
// accumulated context. Unlike descriptions this returns the error: the
// caller keeps the previous tutorial text when a call fails.
func (s *DescribeService) GenerateTutorial(ctx context.Context, accumulated string) (string, error) {
	return s.ai.Chat(ctx, tutorialSystemPrompt, tutorialPrompt+accumulated)
}
