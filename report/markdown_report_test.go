package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ulisses177/Descritor-de-imagens-de-documentos/types"
)

func TestWriteMarkdown_Sections(t *testing.T) {
	dir := t.TempDir()

	imgPath := filepath.Join(dir, "image_1_1.png")
	if err := os.WriteFile(imgPath, []byte("png"), 0644); err != nil {
		t.Fatal(err)
	}

	records := []types.ImageRecord{
		{Name: "image_1_1.png", Path: imgPath, Description: types.Ok("tela de login")},
	}
	mdPath := filepath.Join(dir, "documento_final.md")

	err := WriteMarkdown("Primeira frase. Segunda frase.", records, "Passo a passo final.", mdPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(mdPath)
	if err != nil {
		t.Fatalf("expected markdown file: %v", err)
	}
	md := string(data)

	for _, want := range []string{
		"Primeira frase. Segunda frase.",
		"![image_1_1.png](" + imgPath + ")",
		"tela de login",
		"---",
		"Passo a passo final.",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}

	// Original text must come before images, images before the tutorial.
	if strings.Index(md, "Primeira frase") > strings.Index(md, "image_1_1.png") {
		t.Error("original text should precede the image blocks")
	}
	if strings.Index(md, "image_1_1.png") > strings.Index(md, "Passo a passo final") {
		t.Error("image blocks should precede the tutorial")
	}
}

func TestWriteMarkdown_SkipsMissingImageFiles(t *testing.T) {
	dir := t.TempDir()
	records := []types.ImageRecord{
		{Name: "image_1_1.png", Path: filepath.Join(dir, "nope.png"), Description: types.Ok("fantasma")},
	}
	mdPath := filepath.Join(dir, "documento_final.md")

	if err := WriteMarkdown("Texto.", records, "Tutorial.", mdPath); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, _ := os.ReadFile(mdPath)
	if strings.Contains(string(data), "fantasma") {
		t.Error("records whose image file is missing must be skipped")
	}
}

func TestSplitParagraphs_GroupsSentences(t *testing.T) {
	text := "Um. Dois. Três. Quatro. Cinco. Seis. Sete."
	paragraphs := splitParagraphs(text)

	if len(paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs for 7 sentences, got %d", len(paragraphs))
	}
	if !strings.HasSuffix(paragraphs[0], "Cinco.") {
		t.Errorf("expected first paragraph to end at the fifth sentence, got %q", paragraphs[0])
	}
}

func TestSplitParagraphs_Empty(t *testing.T) {
	if got := splitParagraphs("  "); got != nil {
		t.Errorf("expected nil for blank text, got %v", got)
	}
}
