package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ulisses177/Descritor-de-imagens-de-documentos/types"
)

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "descricao_imagens.csv")
	records := []types.ImageRecord{
		{Name: "image_1_1.png", Description: types.Ok("primeira tela")},
		{Name: "image_1_2.png", Description: types.Failed("api down")},
	}

	if err := WriteCSV(records, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("expected CSV file: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "image_name" || rows[0][1] != "description" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][1] != "primeira tela" {
		t.Errorf("expected description text, got %q", rows[1][1])
	}
	if rows[2][1] != types.DescriptionUnavailable {
		t.Errorf("failed description must render the sentinel, got %q", rows[2][1])
	}
}

func TestWriteCSV_NoImages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "descricao_imagens.csv")

	if err := WriteCSV(nil, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected CSV file: %v", err)
	}
	if strings.TrimSpace(string(data)) != "image_name,description" {
		t.Errorf("expected header only, got %q", string(data))
	}
}
