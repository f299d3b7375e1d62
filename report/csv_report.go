package report

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/ulisses177/Descritor-de-imagens-de-documentos/types"
)

// WriteCSV writes one image_name,description row per record, header
// included, in the order the records arrive (callers pass them sorted).
func WriteCSV(records []types.ImageRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"image_name", "description"}); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write([]string{rec.Name, rec.Description.Render()}); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", rec.Name, err)
		}
	}

	w.Flush()
	return w.Error()
}
