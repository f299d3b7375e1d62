package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/ulisses177/Descritor-de-imagens-de-documentos/types"
)

const sentencesPerParagraph = 5

// WriteMarkdown assembles the final document: the original text restored to
// paragraphs, one image block per record (skipping images whose file is
// missing on disk), then the tutorial text.
func WriteMarkdown(originalText string, records []types.ImageRecord, tutorial, path string) error {
	var sb strings.Builder

	sb.WriteString("# Documento\n\n")
	for _, para := range splitParagraphs(originalText) {
		sb.WriteString(para)
		sb.WriteString("\n\n")
	}

	sb.WriteString("## Imagens\n\n")
	for _, rec := range records {
		if _, err := os.Stat(rec.Path); err != nil {
			logrus.WithField("image", rec.Name).Warn("image file missing, skipping in markdown")
			continue
		}
		sb.WriteString(fmt.Sprintf("![%s](%s)\n\n", rec.Name, rec.Path))
		sb.WriteString(rec.Description.Render())
		sb.WriteString("\n\n---\n\n")
	}

	sb.WriteString("## Tutorial\n\n")
	sb.WriteString(tutorial)
	sb.WriteString("\n")

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// splitParagraphs regroups whitespace-normalized text into paragraphs of a
// few sentences each, since extraction flattened the original line breaks.
func splitParagraphs(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	var current strings.Builder
	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			sentences = append(sentences, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}
	if rest := strings.TrimSpace(current.String()); rest != "" {
		sentences = append(sentences, rest)
	}

	var paragraphs []string
	for start := 0; start < len(sentences); start += sentencesPerParagraph {
		end := start + sentencesPerParagraph
		if end > len(sentences) {
			end = len(sentences)
		}
		paragraphs = append(paragraphs, strings.Join(sentences[start:end], " "))
	}
	return paragraphs
}
