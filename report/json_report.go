package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ulisses177/Descritor-de-imagens-de-documentos/types"
	"github.com/ulisses177/Descritor-de-imagens-de-documentos/utils"
)

type jsonDescription struct {
	ImageName   string `json:"image_name"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

type jsonResult struct {
	DocumentID   string            `json:"document_id"`
	Descriptions []jsonDescription `json:"descriptions"`
}

// WriteJSON dumps the document result to <docDir>/results.json with image
// paths relative to docDir.
func WriteJSON(result *types.DocumentResult, docDir string) error {
	if err := utils.EnsureDir(docDir); err != nil {
		return err
	}

	out := jsonResult{
		DocumentID:   result.DocumentID,
		Descriptions: make([]jsonDescription, 0, len(result.Images)),
	}
	for _, img := range result.Images {
		out.Descriptions = append(out.Descriptions, jsonDescription{
			ImageName:   img.Name,
			Path:        relativePath(img.Path, docDir),
			Description: img.Description.Render(),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling results: %w", err)
	}

	path := filepath.Join(docDir, "results.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// relativePath rebases path onto base, falling back to the original when it
// cannot be made relative.
func relativePath(path, base string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
