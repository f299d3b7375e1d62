package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ulisses177/Descritor-de-imagens-de-documentos/types"
)

func TestWriteHTML(t *testing.T) {
	out := t.TempDir()
	docDir := filepath.Join(out, "manual")

	result := &types.DocumentResult{
		DocumentID: "manual",
		Images: []types.ImageRecord{
			{
				Name:        "image_1_1.png",
				Path:        filepath.Join(docDir, "images", "image_1_1.png"),
				Description: types.Ok("primeira tela"),
			},
			{
				Name:        "image_2_1.png",
				Path:        filepath.Join(docDir, "images", "image_2_1.png"),
				Description: types.Ok("segunda tela"),
			},
		},
	}

	if err := WriteHTML(result, docDir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(docDir, "report.html"))
	if err != nil {
		t.Fatalf("expected report.html: %v", err)
	}
	html := string(data)

	if !strings.Contains(html, "Relatório de Imagens - manual") {
		t.Error("expected the document id in the report header")
	}
	if !strings.Contains(html, `src="images/image_1_1.png"`) {
		t.Error("expected a relative image path in the img tag")
	}
	if !strings.Contains(html, "primeira tela") || !strings.Contains(html, "segunda tela") {
		t.Error("expected every description in the report")
	}
	if strings.Index(html, "image_1_1.png") > strings.Index(html, "image_2_1.png") {
		t.Error("rows must follow document order")
	}
}
